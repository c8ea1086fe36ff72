// Package strategy implements the interchangeable processing behavior
// applied to an admitted document type. A Processor holds at most one
// active strategy; having none is a valid, reportable state.
package strategy

import (
	"context"
	"fmt"
	"io"

	"github.com/go-leo/docflow"
)

// ProcessingStrategy is a single interchangeable processing behavior.
type ProcessingStrategy interface {
	// Process applies the behavior to the document type.
	Process(ctx context.Context, docType docflow.DocumentType)
}

// The StrategyFunc type is an adapter to allow the use of ordinary functions as ProcessingStrategy.
// If f is a function with the appropriate signature, StrategyFunc(f) is a ProcessingStrategy that calls f.
type StrategyFunc func(ctx context.Context, docType docflow.DocumentType)

// Process calls f(ctx, docType).
func (f StrategyFunc) Process(ctx context.Context, docType docflow.DocumentType) {
	f(ctx, docType)
}

var _ ProcessingStrategy = (*PrintStrategy)(nil)

// PrintStrategy reports the document as printed.
type PrintStrategy struct {
	out io.Writer
}

func NewPrintStrategy(opts ...Option) *PrintStrategy {
	return &PrintStrategy{out: newOption(opts...).Output}
}

func (s *PrintStrategy) Process(_ context.Context, docType docflow.DocumentType) {
	fmt.Fprintf(s.out, "[Strategy] Printing %s document...\n", docType)
}

var _ ProcessingStrategy = (*SaveStrategy)(nil)

// SaveStrategy reports the document as saved. It differs from
// PrintStrategy only in the emitted message.
type SaveStrategy struct {
	out io.Writer
}

func NewSaveStrategy(opts ...Option) *SaveStrategy {
	return &SaveStrategy{out: newOption(opts...).Output}
}

func (s *SaveStrategy) Process(_ context.Context, docType docflow.DocumentType) {
	fmt.Fprintf(s.out, "[Strategy] Saving %s document...\n", docType)
}
