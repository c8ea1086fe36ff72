package chain

import (
	"context"
	"fmt"

	"github.com/go-leo/docflow"
)

var _ Handler = (*FormatChecker)(nil)

// FormatChecker admits only the recognized document types. An
// unrecognized type fails the whole chain immediately; nothing linked
// after this check runs.
type FormatChecker struct {
	next
	options *option
}

func NewFormatChecker(opts ...Option) *FormatChecker {
	return &FormatChecker{options: newOption(opts...)}
}

func (c *FormatChecker) Handle(ctx context.Context, docType docflow.DocumentType) bool {
	fmt.Fprintf(c.options.Output, "[Chain] Checking format of %s...\n", docType)
	if !docflow.Recognized(docType) {
		fmt.Fprintln(c.options.Output, "Format not supported.")
		publish(c.options.Bus, docType, fmt.Sprintf("format of %s not supported", docType))
		return false
	}
	publish(c.options.Bus, docType, fmt.Sprintf("format of %s accepted", docType))
	return c.delegate(ctx, docType)
}
