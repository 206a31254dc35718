package mock

import "github.com/drugstock/drugstock"

var _ drugstock.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of drugstock.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*drugstock.Product, error)
}

func (e *Extractor) Extract(html string) (*drugstock.Product, error) {
	return e.ExtractFn(html)
}
