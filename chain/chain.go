// Package chain implements the chain of responsibility that admits a
// document type into the workflow. Checks are linked into a singly
// linked sequence; each check either short-circuits with false or
// delegates to its successor.
package chain

import (
	"context"

	"github.com/go-leo/docflow"
	"github.com/go-leo/docflow/event"
)

// Handler is one check in the chain.
type Handler interface {
	// Handle reports whether docType passes this check and every check
	// linked after it.
	Handle(ctx context.Context, docType docflow.DocumentType) bool

	// SetNext links the successor check and returns it, so calls can be
	// chained when wiring the sequence by hand.
	SetNext(next Handler) Handler
}

// Link wires handlers into a chain in argument order and returns the head.
func Link(first Handler, rest ...Handler) Handler {
	prev := first
	for _, h := range rest {
		prev = prev.SetNext(h)
	}
	return first
}

// next holds the optional successor of a check. The terminal check of a
// chain has none and passes by default.
type next struct {
	handler Handler
}

func (n *next) SetNext(handler Handler) Handler {
	n.handler = handler
	return handler
}

// delegate forwards to the successor, or passes when this is the
// terminal check.
func (n *next) delegate(ctx context.Context, docType docflow.DocumentType) bool {
	if n.handler != nil {
		return n.handler.Handle(ctx, docType)
	}
	return true
}

// publish emits a chain-stage event when a bus is attached. Bus errors
// are observability-only and never affect the check result.
func publish(bus event.Bus, docType docflow.DocumentType, message string) {
	if bus == nil {
		return
	}
	_ = bus.Emit(event.New(event.StageChain, docType, message))
}
