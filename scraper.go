package drugstock

import "context"

// Scraper fetches a product page and extracts its product.
type Scraper struct {
	Fetcher   Fetcher
	Extractor Extractor
}

// Scrape fetches url once and extracts the product from the response.
// Failures are reported in the returned record, not as an error. The
// fetched HTML is returned alongside so callers can fingerprint it; it is
// empty when the fetch failed.
func (s *Scraper) Scrape(ctx context.Context, url string) (rec Record, html string) {
	html, err := s.Fetcher.Fetch(ctx, url)
	if err != nil {
		return ErrorRecord(err), ""
	}
	return s.Parse(html), html
}

// Parse extracts the product from already fetched html.
func (s *Scraper) Parse(html string) Record {
	product, err := s.Extractor.Extract(html)
	if err != nil {
		return ErrorRecord(err)
	}
	return NewRecord(product)
}
