package visitor

// Visitor visits every document variant. Implementations switch on the
// concrete variant inside Visit and panic on an unknown one.
type Visitor interface {
	Visit(doc Document)
}
