package main

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/drugstock/drugstock"
)

// Run executes the parse command.
func (c *ParseCmd) Run(deps *Dependencies) error {
	b, err := os.ReadFile(c.File)
	if err != nil {
		rec := drugstock.ErrorRecord(fmt.Errorf("failed to read %s: %w", c.File, err))
		return emit(deps, rec, "", "")
	}
	html := string(b)

	scraper := &drugstock.Scraper{Extractor: deps.Extractor}
	return emit(deps, scraper.Parse(html), c.sourceURL(), html)
}

func (c *ParseCmd) sourceURL() string {
	if c.SourceURL != "" {
		return c.SourceURL
	}
	path, err := filepath.Abs(c.File)
	if err != nil {
		path = c.File
	}
	return (&url.URL{Scheme: "file", Path: filepath.ToSlash(path)}).String()
}
