package event

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/go-leo/docflow"
)

// Stage names the part of the workflow an Event was observed in.
type Stage string

const (
	// StageChain covers the chain of responsibility checks.
	StageChain Stage = "chain"

	// StageStrategy covers strategy selection and execution.
	StageStrategy Stage = "strategy"

	// StageVisitor covers visits over the document collection.
	StageVisitor Stage = "visitor"
)

// Event is an immutable record of one workflow step, associated to the
// listeners registered for its Stage.
type Event interface {

	// ID return the unique id of the event.
	ID() string

	// When return the time of the event.
	When() time.Time

	// Stage return the workflow stage the event was observed in.
	Stage() Stage

	// DocumentType return the document type the step operated on.
	DocumentType() docflow.DocumentType

	// Message return the human-readable description of the step.
	Message() string

	// WithContext returns a shallow copy of e with its context changed to ctx.
	// The provided ctx must be non-nil.
	WithContext(ctx context.Context) Event

	// Context returns the context of the event. To change the context, use WithContext.
	Context() context.Context
}

type event struct {
	id         string
	stage      Stage
	docType    docflow.DocumentType
	message    string
	occurredOn time.Time
	ctx        context.Context
}

func (e *event) ID() string {
	return e.id
}

func (e *event) When() time.Time {
	return e.occurredOn
}

func (e *event) Stage() Stage {
	return e.stage
}

func (e *event) DocumentType() docflow.DocumentType {
	return e.docType
}

func (e *event) Message() string {
	return e.message
}

// WithContext returns a shallow copy of e with its context changed to ctx.
// The provided ctx must be non-nil.
func (e *event) WithContext(ctx context.Context) Event {
	if ctx == nil {
		panic("nil context")
	}
	copied := new(event)
	*copied = *e
	copied.ctx = ctx
	return copied
}

// Context returns the context of the event. To change the context, use WithContext.
func (e *event) Context() context.Context {
	if e.ctx != nil {
		return e.ctx
	}
	return context.Background()
}

// New creates an Event for the given stage, stamping a fresh id and the
// current time.
func New(stage Stage, docType docflow.DocumentType, message string) Event {
	return &event{
		id:         uuid.NewString(),
		stage:      stage,
		docType:    docType,
		message:    message,
		occurredOn: time.Now(),
	}
}
