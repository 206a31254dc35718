package drugstock_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/drugstock/drugstock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestWriteRecord(t *testing.T) {
	t.Parallel()

	t.Run("writes success shape in field order", func(t *testing.T) {
		t.Parallel()

		rec := drugstock.NewRecord(&drugstock.Product{
			Title:    "Ренгалин",
			ImageURL: strPtr("https://example.com/a.jpg?w=1&h=2"),
			Price:    strPtr("512"),
			Drugstores: []drugstock.Store{
				{ID: "1", Name: "Аптека", Address: "ул. Ленина", Quantity: "3", Status: drugstock.InStock},
			},
			ProductID: "48213",
		})

		var buf bytes.Buffer
		err := drugstock.WriteRecord(&buf, rec)

		require.NoError(t, err)
		expected := `{
  "title": "Ренгалин",
  "image_url": "https://example.com/a.jpg?w=1&h=2",
  "price": "512",
  "drugstores": [
    {
      "id": "1",
      "name": "Аптека",
      "address": "ул. Ленина",
      "quantity": "3",
      "status": "in_stock"
    }
  ],
  "product_id": "48213"
}
`
		assert.Equal(t, expected, buf.String())
	})

	t.Run("writes null for missing image and price", func(t *testing.T) {
		t.Parallel()

		rec := drugstock.NewRecord(&drugstock.Product{
			Title:      drugstock.DefaultTitle,
			Drugstores: []drugstock.Store{},
			ProductID:  "1",
		})

		var buf bytes.Buffer
		require.NoError(t, drugstock.WriteRecord(&buf, rec))

		var got map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		assert.Nil(t, got["image_url"])
		assert.Nil(t, got["price"])
		assert.Equal(t, []any{}, got["drugstores"])
		assert.Len(t, got, 5)
		assert.Contains(t, buf.String(), `"title": "Название не найдено"`)
	})

	t.Run("writes error shape with a single field", func(t *testing.T) {
		t.Parallel()

		rec := drugstock.ErrorRecord(&drugstock.FetchError{URL: "https://example.com", StatusCode: 404})

		var buf bytes.Buffer
		require.NoError(t, drugstock.WriteRecord(&buf, rec))

		assert.Equal(t, "{\n  \"error\": \"Failed to load page, status code: 404\"\n}\n", buf.String())
	})
}

func TestRecord_MarshalJSON(t *testing.T) {
	t.Parallel()

	b, err := json.Marshal(drugstock.Record{Err: "Product ID not found"})

	require.NoError(t, err)
	assert.JSONEq(t, `{"error":"Product ID not found"}`, string(b))
}

func TestErrorRecord(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "status code failure",
			err:  &drugstock.FetchError{StatusCode: 503},
			want: "Failed to load page, status code: 503",
		},
		{
			name: "transport failure",
			err:  &drugstock.FetchError{Err: errors.New("connection refused")},
			want: "Failed to load page: connection refused",
		},
		{
			name: "missing product ID",
			err:  drugstock.Errorf(drugstock.EMISSINGID, "Product ID not found"),
			want: "Product ID not found",
		},
		{
			name: "other error",
			err:  errors.New("open page.html: no such file or directory"),
			want: "open page.html: no such file or directory",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := drugstock.ErrorRecord(tt.err)

			assert.False(t, rec.OK())
			assert.Nil(t, rec.Product)
			assert.Equal(t, tt.want, rec.Err)
		})
	}
}
