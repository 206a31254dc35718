// Package slog provides log/slog decorators for drugstock services.
package slog

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/drugstock/drugstock"
)

// Ensure LoggingFetcher implements drugstock.Fetcher.
var _ drugstock.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with logging.
type LoggingFetcher struct {
	next   drugstock.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next drugstock.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch logs the URL being fetched and delegates to the wrapped fetcher.
// Pages rejected with an HTTP status are logged with that status.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (html string, err error) {
	defer func(begin time.Time) {
		attrs := []any{"url", url, "bytes", len(html), "duration", time.Since(begin)}
		var fetchErr *drugstock.FetchError
		if errors.As(err, &fetchErr) && fetchErr.StatusCode != 0 {
			attrs = append(attrs, "status", fetchErr.StatusCode)
		}
		if err != nil {
			attrs = append(attrs, "err", err)
		}
		f.logger.Info("fetch", attrs...)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
