package chain

import (
	"context"
	"fmt"

	"github.com/go-leo/docflow"
)

var _ Handler = (*SecurityChecker)(nil)

// SecurityChecker always passes; it exists to show a delegating link in
// the middle of a chain.
type SecurityChecker struct {
	next
	options *option
}

func NewSecurityChecker(opts ...Option) *SecurityChecker {
	return &SecurityChecker{options: newOption(opts...)}
}

func (c *SecurityChecker) Handle(ctx context.Context, docType docflow.DocumentType) bool {
	fmt.Fprintf(c.options.Output, "[Chain] Security check passed for %s.\n", docType)
	publish(c.options.Bus, docType, fmt.Sprintf("security check passed for %s", docType))
	return c.delegate(ctx, docType)
}
