// Package docflow composes three classic design patterns into a small
// document workflow: a chain of responsibility admits a document type,
// a strategy processes it, and a visitor walks a document collection.
// The pattern implementations live in the chain, strategy and visitor
// sub-packages; this package holds the document type they share.
package docflow

import "golang.org/x/exp/slices"

// DocumentType identifies the format of a document.
type DocumentType string

const (
	PDF  DocumentType = "PDF"
	TXT  DocumentType = "TXT"
	DOCX DocumentType = "DOCX"
)

// recognizedTypes is the closed set of formats the workflow admits.
// Comparison is exact, case-sensitive string equality.
var recognizedTypes = []DocumentType{PDF, TXT, DOCX}

// Recognized reports whether t is one of the recognized document types.
func Recognized(t DocumentType) bool {
	return slices.Contains(recognizedTypes, t)
}

// RecognizedTypes returns a copy of the recognized document type set.
func RecognizedTypes() []DocumentType {
	return slices.Clone(recognizedTypes)
}
