package chain

import (
	"context"

	"github.com/go-leo/docflow"
)

var _ Handler = (*funcHandler)(nil)

// Func adapts an ordinary predicate into a chain Handler: a false
// predicate short-circuits the chain, a true one delegates onward.
func Func(f func(ctx context.Context, docType docflow.DocumentType) bool) Handler {
	return &funcHandler{f: f}
}

type funcHandler struct {
	next
	f func(ctx context.Context, docType docflow.DocumentType) bool
}

func (h *funcHandler) Handle(ctx context.Context, docType docflow.DocumentType) bool {
	if !h.f(ctx, docType) {
		return false
	}
	return h.delegate(ctx, docType)
}
