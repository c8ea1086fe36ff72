package chain

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-leo/docflow"
	"github.com/go-leo/docflow/event"
)

func TestFormatChecker_RecognizedTypes(t *testing.T) {
	for _, docType := range []docflow.DocumentType{docflow.PDF, docflow.TXT, docflow.DOCX} {
		checker := NewFormatChecker(Output(new(bytes.Buffer)))
		assert.True(t, checker.Handle(context.Background(), docType), "type %s", docType)
	}
}

func TestFormatChecker_UnrecognizedTypes(t *testing.T) {
	for _, docType := range []docflow.DocumentType{"XML", "pdf", "", "CSV"} {
		checker := NewFormatChecker(Output(new(bytes.Buffer)))
		assert.False(t, checker.Handle(context.Background(), docType), "type %q", docType)
	}
}

func TestFormatChecker_ShortCircuit(t *testing.T) {
	var securityRan bool
	checker := NewFormatChecker(Output(new(bytes.Buffer)))
	checker.SetNext(Func(func(ctx context.Context, docType docflow.DocumentType) bool {
		securityRan = true
		return true
	}))

	assert.False(t, checker.Handle(context.Background(), "XML"))
	assert.False(t, securityRan, "a failing format check must not delegate")
}

func TestFormatChecker_DelegatesInOrder(t *testing.T) {
	out := new(bytes.Buffer)
	head := Link(
		NewFormatChecker(Output(out)),
		NewSecurityChecker(Output(out)),
	)

	assert.True(t, head.Handle(context.Background(), docflow.PDF))
	assert.Equal(t, "[Chain] Checking format of PDF...\n[Chain] Security check passed for PDF.\n", out.String())
}

func TestFormatChecker_TerminalNodePasses(t *testing.T) {
	checker := NewFormatChecker(Output(new(bytes.Buffer)))
	assert.True(t, checker.Handle(context.Background(), docflow.TXT))
}

func TestSecurityChecker_AlwaysPasses(t *testing.T) {
	checker := NewSecurityChecker(Output(new(bytes.Buffer)))
	assert.True(t, checker.Handle(context.Background(), "XML"))
}

func TestLink_ReturnsHead(t *testing.T) {
	first := NewFormatChecker(Output(new(bytes.Buffer)))
	second := NewSecurityChecker(Output(new(bytes.Buffer)))
	head := Link(first, second)
	assert.Same(t, first, head)
}

func TestFunc_ShortCircuits(t *testing.T) {
	var reached bool
	head := Link(
		Func(func(ctx context.Context, docType docflow.DocumentType) bool { return false }),
		Func(func(ctx context.Context, docType docflow.DocumentType) bool {
			reached = true
			return true
		}),
	)
	assert.False(t, head.Handle(context.Background(), docflow.PDF))
	assert.False(t, reached)
}

type recordingListener struct {
	events []event.Event
}

func (l *recordingListener) Handle(e event.Event) error {
	l.events = append(l.events, e)
	return nil
}

func TestChecker_PublishesChainEvents(t *testing.T) {
	bus := event.NewBus()
	listener := &recordingListener{}
	assert.NoError(t, bus.On(event.StageChain, listener))

	head := Link(
		NewFormatChecker(Output(new(bytes.Buffer)), Bus(bus)),
		NewSecurityChecker(Output(new(bytes.Buffer)), Bus(bus)),
	)
	assert.True(t, head.Handle(context.Background(), docflow.PDF))

	assert.Len(t, listener.events, 2)
	assert.Equal(t, event.StageChain, listener.events[0].Stage())
	assert.Equal(t, docflow.PDF, listener.events[0].DocumentType())
	assert.Equal(t, "format of PDF accepted", listener.events[0].Message())
	assert.Equal(t, "security check passed for PDF", listener.events[1].Message())
}

func TestFormatChecker_PublishesRejection(t *testing.T) {
	bus := event.NewBus()
	listener := &recordingListener{}
	assert.NoError(t, bus.On(event.StageChain, listener))

	checker := NewFormatChecker(Output(new(bytes.Buffer)), Bus(bus))
	assert.False(t, checker.Handle(context.Background(), "XML"))

	assert.Len(t, listener.events, 1)
	assert.Equal(t, "format of XML not supported", listener.events[0].Message())
}
