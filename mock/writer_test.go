package mock_test

import (
	"context"
	"testing"

	"github.com/drugstock/drugstock"
	"github.com/drugstock/drugstock/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordWriter_WriteRecord(t *testing.T) {
	t.Parallel()

	t.Run("delegates to WriteRecordFn", func(t *testing.T) {
		t.Parallel()

		var calledWith drugstock.Record
		w := &mock.RecordWriter{
			WriteRecordFn: func(_ context.Context, rec drugstock.Record) error {
				calledWith = rec
				return nil
			},
		}

		rec := drugstock.Record{Err: "Product ID not found"}

		err := w.WriteRecord(context.Background(), rec)

		require.NoError(t, err)
		assert.Equal(t, rec, calledWith)
	})
}
