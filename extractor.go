package drugstock

// Extractor extracts a Product from product page HTML.
type Extractor interface {
	// Extract parses html and returns the product found on it.
	// Returns EMISSINGID if the page has no product identifier.
	// Every other missing field resolves to its default.
	Extract(html string) (*Product, error)
}
