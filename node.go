package drugstock

// Node is an element of a parsed HTML document. Lookups return an explicit
// found flag instead of a nil node.
type Node interface {
	// Find returns the first descendant matching the CSS selector.
	Find(selector string) (Node, bool)

	// FindAll returns every descendant matching the CSS selector,
	// in document order.
	FindAll(selector string) []Node

	// Children returns the direct children matching the CSS selector,
	// in document order.
	Children(selector string) []Node

	// Attr returns the named attribute and whether it is present.
	Attr(name string) (string, bool)

	// HasClass reports whether the element's class list contains class.
	HasClass(class string) bool

	// Text returns the combined text of the node and its descendants.
	Text() string

	// Without returns a detached copy of the node with every descendant
	// matching the CSS selector removed. The receiver is left unchanged.
	Without(selector string) Node
}
