package visitor

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"

	"github.com/go-leo/docflow"
)

var _ Visitor = (*ExportVisitor)(nil)

// ExportVisitor accumulates an inventory of the documents it visits and
// marshals it to JSON.
type ExportVisitor struct {
	entries []exportEntry
}

type exportEntry struct {
	Kind docflow.DocumentType `json:"kind"`
}

func NewExportVisitor() *ExportVisitor {
	return &ExportVisitor{}
}

func (receiver *ExportVisitor) Visit(doc Document) {
	switch doc := doc.(type) {
	case PDFDocument, TXTDocument:
		receiver.entries = append(receiver.entries, exportEntry{Kind: doc.Kind()})
	default:
		panic(fmt.Errorf("%T", doc))
	}
}

// JSON marshals the inventory in visit order. An empty inventory
// marshals as an empty array, not null.
func (receiver *ExportVisitor) JSON() ([]byte, error) {
	entries := receiver.entries
	if entries == nil {
		entries = []exportEntry{}
	}
	inventory := struct {
		Documents []exportEntry `json:"documents"`
	}{Documents: entries}
	return jsoniter.Marshal(inventory)
}
