package drugstock

import (
	"context"
	"fmt"
)

// Fetcher retrieves the HTML of a product page.
type Fetcher interface {
	// Fetch issues a single request for url and returns the page body.
	// A non-200 response or transport failure is returned as *FetchError.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases fetcher resources.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}

// FetchError reports a page that could not be loaded. StatusCode is zero
// when no HTTP response was received.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("Failed to load page, status code: %d", e.StatusCode)
	}
	if e.Err != nil {
		return "Failed to load page: " + e.Err.Error()
	}
	return "Failed to load page"
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
