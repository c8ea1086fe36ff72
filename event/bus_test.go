package event

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-leo/docflow"
)

type recordingListener struct {
	events []Event
}

func (l *recordingListener) Handle(e Event) error {
	l.events = append(l.events, e)
	return nil
}

func TestBus_EmitInRegistrationOrder(t *testing.T) {
	bus := NewBus()
	first := &recordingListener{}
	second := &recordingListener{}
	var order []string
	probe := func(name string, lis *recordingListener) Listener {
		return &namedListener{name: name, inner: lis, order: &order}
	}
	assert.NoError(t, bus.On(StageChain, probe("first", first)))
	assert.NoError(t, bus.On(StageChain, probe("second", second)))

	assert.NoError(t, bus.Emit(New(StageChain, docflow.PDF, "format of PDF accepted")))

	assert.Equal(t, []string{"first", "second"}, order)
	assert.Len(t, first.events, 1)
	assert.Equal(t, StageChain, first.events[0].Stage())
	assert.Equal(t, docflow.PDF, first.events[0].DocumentType())
	assert.NotEmpty(t, first.events[0].ID())
	assert.False(t, first.events[0].When().IsZero())
}

type namedListener struct {
	name  string
	inner Listener
	order *[]string
}

func (l *namedListener) Handle(e Event) error {
	*l.order = append(*l.order, l.name)
	return l.inner.Handle(e)
}

func TestBus_EmitIgnoresOtherStages(t *testing.T) {
	bus := NewBus()
	listener := &recordingListener{}
	assert.NoError(t, bus.On(StageStrategy, listener))

	assert.NoError(t, bus.Emit(New(StageChain, docflow.PDF, "format of PDF accepted")))
	assert.Empty(t, listener.events)
}

func TestBus_Prepend(t *testing.T) {
	bus := NewBus()
	var order []string
	a := &namedListener{name: "a", inner: &recordingListener{}, order: &order}
	b := &namedListener{name: "b", inner: &recordingListener{}, order: &order}
	assert.NoError(t, bus.On(StageChain, a))
	assert.NoError(t, bus.Prepend(StageChain, b))

	assert.NoError(t, bus.Emit(New(StageChain, docflow.TXT, "msg")))
	assert.Equal(t, []string{"b", "a"}, order)
}

func TestBus_OnceFiresOnce(t *testing.T) {
	bus := NewBus()
	listener := &recordingListener{}
	assert.NoError(t, bus.Once(StageVisitor, listener))

	assert.NoError(t, bus.Emit(New(StageVisitor, docflow.PDF, "visited PDF document")))
	assert.NoError(t, bus.Emit(New(StageVisitor, docflow.TXT, "visited TXT document")))

	assert.Len(t, listener.events, 1)
}

func TestBus_Off(t *testing.T) {
	bus := NewBus()
	listener := &recordingListener{}
	assert.NoError(t, bus.On(StageChain, listener))
	assert.NoError(t, bus.Off(StageChain, listener))

	assert.NoError(t, bus.Emit(New(StageChain, docflow.PDF, "msg")))
	assert.Empty(t, listener.events)
}

func TestBus_OffAll(t *testing.T) {
	bus := NewBus()
	listener := &recordingListener{}
	assert.NoError(t, bus.On(StageChain, listener))
	assert.NoError(t, bus.Once(StageChain, listener))
	assert.NoError(t, bus.OffAll(StageChain))

	assert.NoError(t, bus.Emit(New(StageChain, docflow.PDF, "msg")))
	assert.Empty(t, listener.events)
}

func TestBus_Checks(t *testing.T) {
	bus := NewBus()
	assert.ErrorIs(t, bus.On("", &recordingListener{}), ErrStageEmpty)
	assert.ErrorIs(t, bus.On(StageChain, nil), ErrListenerNil)
	assert.ErrorIs(t, bus.Emit(nil), ErrEventNil)
}

func TestBus_Close(t *testing.T) {
	bus := NewBus()
	listener := &recordingListener{}
	assert.NoError(t, bus.On(StageChain, listener))
	assert.NoError(t, bus.Close(context.Background()))

	assert.ErrorIs(t, bus.Emit(New(StageChain, docflow.PDF, "msg")), ErrBusClosed)
	assert.ErrorIs(t, bus.On(StageChain, listener), ErrBusClosed)
	assert.ErrorIs(t, bus.Close(context.Background()), ErrBusClosed)
}

func TestBus_AsyncEmit(t *testing.T) {
	bus := NewBus()
	listener := &recordingListener{}
	assert.NoError(t, bus.On(StageStrategy, listener))

	errC := bus.AsyncEmit(New(StageStrategy, docflow.PDF, "strategy executed for PDF"))
	for err := range errC {
		assert.NoError(t, err)
	}
	assert.NoError(t, bus.Close(context.Background()))
	assert.Len(t, listener.events, 1)
}

func TestBus_AsyncEmitWithoutListeners(t *testing.T) {
	bus := NewBus()
	errC := bus.AsyncEmit(New(StageStrategy, docflow.PDF, "msg"))
	err, ok := <-errC
	assert.True(t, ok)
	assert.IsType(t, ErrListener{}, err)
}

func TestEvent_WithContext(t *testing.T) {
	e := New(StageChain, docflow.PDF, "msg")
	assert.Equal(t, context.Background(), e.Context())

	type key struct{}
	ctx := context.WithValue(context.Background(), key{}, "v")
	copied := e.WithContext(ctx)
	assert.Equal(t, ctx, copied.Context())
	assert.Equal(t, e.ID(), copied.ID())
	assert.Equal(t, context.Background(), e.Context())

	assert.Panics(t, func() { e.WithContext(nil) })
}
