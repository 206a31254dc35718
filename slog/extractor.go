package slog

import (
	"log/slog"
	"time"

	"github.com/drugstock/drugstock"
)

// Ensure LoggingExtractor implements drugstock.Extractor.
var _ drugstock.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with logging.
type LoggingExtractor struct {
	next   drugstock.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next drugstock.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs what it found.
func (e *LoggingExtractor) Extract(html string) (product *drugstock.Product, err error) {
	defer func(begin time.Time) {
		attrs := []any{"bytes", len(html), "duration", time.Since(begin)}
		if product != nil {
			attrs = append(attrs,
				"product_id", product.ProductID,
				"stores", len(product.Drugstores),
				"price", product.Price != nil,
			)
		}
		if err != nil {
			attrs = append(attrs, "err", drugstock.ErrorMessage(err))
		}
		e.logger.Info("extract", attrs...)
	}(time.Now())
	return e.next.Extract(html)
}
