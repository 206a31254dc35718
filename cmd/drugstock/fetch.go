package main

import "github.com/drugstock/drugstock"

// Run executes the fetch command.
func (c *FetchCmd) Run(deps *Dependencies) error {
	scraper := &drugstock.Scraper{
		Fetcher:   deps.Fetcher,
		Extractor: deps.Extractor,
	}

	rec, html := scraper.Scrape(deps.Ctx, c.URL)
	return emit(deps, rec, c.URL, html)
}
