// Package visitor implements double dispatch over the closed set of
// document variants. Concrete visitors switch on the variant and panic
// on one they do not know, so extending the set forces every visitor
// site to be updated.
package visitor

import "github.com/go-leo/docflow"

// Document is an element of the closed variant set {PDF, TXT}.
type Document interface {
	// Accept calls back into the visitor with the concrete variant.
	Accept(visitor Visitor)

	// Kind return the document's type.
	Kind() docflow.DocumentType
}

// PDFDocument implements its accept method.
type PDFDocument struct{}

// Accept visitor.
func (receiver PDFDocument) Accept(visitor Visitor) {
	visitor.Visit(receiver)
}

func (receiver PDFDocument) Kind() docflow.DocumentType {
	return docflow.PDF
}

// TXTDocument implements its accept method.
type TXTDocument struct{}

// Accept visitor.
func (receiver TXTDocument) Accept(visitor Visitor) {
	visitor.Visit(receiver)
}

func (receiver TXTDocument) Kind() docflow.DocumentType {
	return docflow.TXT
}
