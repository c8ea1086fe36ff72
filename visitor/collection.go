package visitor

import (
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/go-leo/docflow/event"
)

// DocumentCollection is an ordered sequence of documents. Insertion
// order is preserved; there is no deduplication and no removal.
type DocumentCollection struct {
	docs    []Document
	options *option
}

func NewDocumentCollection(opts ...Option) *DocumentCollection {
	return &DocumentCollection{options: newOption(opts...)}
}

// Add appends doc to the collection.
func (c *DocumentCollection) Add(doc Document) {
	c.docs = append(c.docs, doc)
}

// Process applies visitor to every document in insertion order. Every
// document is visited; there is no short-circuiting.
func (c *DocumentCollection) Process(visitor Visitor) {
	for _, doc := range c.docs {
		doc.Accept(visitor)
		c.publish(doc)
	}
}

// All returns a read-only view of the documents in insertion order. The
// returned slice is a copy; the collection keeps ownership of its members.
func (c *DocumentCollection) All() []Document {
	return slices.Clone(c.docs)
}

// Len returns the number of documents held.
func (c *DocumentCollection) Len() int {
	return len(c.docs)
}

func (c *DocumentCollection) publish(doc Document) {
	if c.options.Bus == nil {
		return
	}
	_ = c.options.Bus.Emit(event.New(event.StageVisitor, doc.Kind(), fmt.Sprintf("visited %s document", doc.Kind())))
}
