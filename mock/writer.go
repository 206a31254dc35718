package mock

import (
	"context"

	"github.com/drugstock/drugstock"
)

var _ drugstock.RecordWriter = (*RecordWriter)(nil)

// RecordWriter is a mock implementation of drugstock.RecordWriter.
type RecordWriter struct {
	WriteRecordFn func(ctx context.Context, rec drugstock.Record) error
}

func (w *RecordWriter) WriteRecord(ctx context.Context, rec drugstock.Record) error {
	return w.WriteRecordFn(ctx, rec)
}
