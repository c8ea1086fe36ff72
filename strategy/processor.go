package strategy

import (
	"context"
	"fmt"

	"github.com/go-leo/docflow"
	"github.com/go-leo/docflow/event"
)

// Processor holds the single active strategy slot.
type Processor struct {
	strategy ProcessingStrategy
	options  *option
}

func NewProcessor(opts ...Option) *Processor {
	return &Processor{options: newOption(opts...)}
}

// SetStrategy replaces the active strategy unconditionally; the previous
// one, if any, is discarded. Last write wins.
func (p *Processor) SetStrategy(s ProcessingStrategy) {
	p.strategy = s
}

// Execute invokes the active strategy with docType. With no strategy set
// it reports the no-strategy notice; that is a normal outcome, not an
// error.
func (p *Processor) Execute(ctx context.Context, docType docflow.DocumentType) {
	if p.strategy == nil {
		fmt.Fprintln(p.options.Output, "No strategy selected.")
		p.publish(docType, "no strategy selected")
		return
	}
	p.strategy.Process(ctx, docType)
	p.publish(docType, fmt.Sprintf("strategy executed for %s", docType))
}

func (p *Processor) publish(docType docflow.DocumentType, message string) {
	if p.options.Bus == nil {
		return
	}
	_ = p.options.Bus.Emit(event.New(event.StageStrategy, docType, message))
}
