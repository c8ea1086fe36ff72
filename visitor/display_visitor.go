package visitor

import (
	"fmt"
	"io"
	"os"
)

var _ Visitor = (*DisplayVisitor)(nil)

// DisplayVisitor implements a display branch for each document variant.
type DisplayVisitor struct {
	out io.Writer
}

// NewDisplayVisitor creates a DisplayVisitor writing to out, or to
// os.Stdout when out is nil.
func NewDisplayVisitor(out io.Writer) *DisplayVisitor {
	if out == nil {
		out = os.Stdout
	}
	return &DisplayVisitor{out: out}
}

func (receiver *DisplayVisitor) Visit(doc Document) {
	switch doc := doc.(type) {
	case PDFDocument:
		fmt.Fprintln(receiver.out, "[Visitor] Displaying PDF content.")
	case TXTDocument:
		fmt.Fprintln(receiver.out, "[Visitor] Displaying TXT content.")
	default:
		panic(fmt.Errorf("%T", doc))
	}
}
