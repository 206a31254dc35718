package goquery

import "github.com/drugstock/drugstock"

// Ensure Extractor implements drugstock.Extractor at compile time.
var _ drugstock.Extractor = (*Extractor)(nil)

// Extractor extracts products from product card pages.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses html and reads the product card from it.
func (e *Extractor) Extract(html string) (*drugstock.Product, error) {
	doc, err := Parse(html)
	if err != nil {
		return nil, drugstock.Errorf(drugstock.EINVALID, "failed to parse HTML: %v", err)
	}
	return drugstock.ExtractProduct(doc)
}
