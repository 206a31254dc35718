package drugstock_test

import (
	"testing"

	"github.com/drugstock/drugstock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshot_Validate(t *testing.T) {
	t.Parallel()

	product := &drugstock.Product{ProductID: "1"}

	tests := []struct {
		name     string
		snapshot drugstock.Snapshot
		wantErr  bool
	}{
		{
			name:     "valid",
			snapshot: drugstock.Snapshot{ProductID: "1", SourceURL: "https://example.com/p", Product: product},
		},
		{
			name:     "missing product",
			snapshot: drugstock.Snapshot{ProductID: "1", SourceURL: "https://example.com/p"},
			wantErr:  true,
		},
		{
			name:     "missing product ID",
			snapshot: drugstock.Snapshot{SourceURL: "https://example.com/p", Product: product},
			wantErr:  true,
		},
		{
			name:     "missing source URL",
			snapshot: drugstock.Snapshot{ProductID: "1", Product: product},
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.snapshot.Validate()

			if !tt.wantErr {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, drugstock.EINVALID, drugstock.ErrorCode(err))
		})
	}
}
