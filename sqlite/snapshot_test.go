package sqlite_test

import (
	"context"
	"testing"

	"github.com/drugstock/drugstock"
	"github.com/drugstock/drugstock/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSnapshot(productID, html string) *drugstock.Snapshot {
	price := "512"
	return &drugstock.Snapshot{
		ProductID: productID,
		SourceURL: "https://apteka.example/product/" + productID,
		HTML:      html,
		Product: &drugstock.Product{
			Title:     "Ренгалин",
			Price:     &price,
			ProductID: productID,
			Drugstores: []drugstock.Store{
				{ID: "101", Name: "Аптека №1", Quantity: "5 шт.", Status: drugstock.InStock},
			},
		},
	}
}

func TestSnapshotService_CreateSnapshot(t *testing.T) {
	t.Parallel()

	t.Run("creates snapshot with generated ID, hash and timestamp", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSnapshotService(db)

		snapshot := newSnapshot("48213", "<html>page</html>")

		err := svc.CreateSnapshot(context.Background(), snapshot)
		require.NoError(t, err)

		assert.NotEmpty(t, snapshot.ID)
		assert.Len(t, snapshot.ContentHash, 16)
		assert.False(t, snapshot.FetchedAt.IsZero())
	})

	t.Run("hashes identical pages identically", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSnapshotService(db)
		ctx := context.Background()

		first := newSnapshot("1", "<html>same</html>")
		second := newSnapshot("1", "<html>same</html>")
		third := newSnapshot("1", "<html>changed</html>")
		require.NoError(t, svc.CreateSnapshot(ctx, first))
		require.NoError(t, svc.CreateSnapshot(ctx, second))
		require.NoError(t, svc.CreateSnapshot(ctx, third))

		assert.NotEqual(t, first.ID, second.ID)
		assert.Equal(t, first.ContentHash, second.ContentHash)
		assert.NotEqual(t, first.ContentHash, third.ContentHash)
	})

	t.Run("returns EINVALID for invalid snapshot", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSnapshotService(db)

		err := svc.CreateSnapshot(context.Background(), &drugstock.Snapshot{})

		require.Error(t, err)
		assert.Equal(t, drugstock.EINVALID, drugstock.ErrorCode(err))
	})
}

func TestSnapshotService_FindSnapshotByID(t *testing.T) {
	t.Parallel()

	t.Run("returns snapshot with decoded product", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSnapshotService(db)
		ctx := context.Background()

		snapshot := newSnapshot("48213", "<html>page</html>")
		require.NoError(t, svc.CreateSnapshot(ctx, snapshot))

		found, err := svc.FindSnapshotByID(ctx, snapshot.ID)
		require.NoError(t, err)
		assert.Equal(t, snapshot.ID, found.ID)
		assert.Equal(t, snapshot.ProductID, found.ProductID)
		assert.Equal(t, snapshot.SourceURL, found.SourceURL)
		assert.Equal(t, snapshot.ContentHash, found.ContentHash)
		assert.True(t, snapshot.FetchedAt.Equal(found.FetchedAt))
		assert.Equal(t, snapshot.Product, found.Product)
		assert.Empty(t, found.HTML)
	})

	t.Run("returns ENOTFOUND when not found", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSnapshotService(db)

		_, err := svc.FindSnapshotByID(context.Background(), "nonexistent")

		require.Error(t, err)
		assert.Equal(t, drugstock.ENOTFOUND, drugstock.ErrorCode(err))
	})
}

func TestSnapshotService_FindSnapshots(t *testing.T) {
	t.Parallel()

	t.Run("filters by product ID newest first", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSnapshotService(db)
		ctx := context.Background()

		older := newSnapshot("1", "a")
		other := newSnapshot("2", "b")
		newer := newSnapshot("1", "c")
		require.NoError(t, svc.CreateSnapshot(ctx, older))
		require.NoError(t, svc.CreateSnapshot(ctx, other))
		require.NoError(t, svc.CreateSnapshot(ctx, newer))

		productID := "1"
		snapshots, err := svc.FindSnapshots(ctx, drugstock.SnapshotFilter{ProductID: &productID})

		require.NoError(t, err)
		require.Len(t, snapshots, 2)
		assert.Equal(t, newer.ID, snapshots[0].ID)
		assert.Equal(t, older.ID, snapshots[1].ID)
	})

	t.Run("applies limit and offset", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSnapshotService(db)
		ctx := context.Background()

		var created []*drugstock.Snapshot
		for _, html := range []string{"a", "b", "c"} {
			s := newSnapshot("1", html)
			require.NoError(t, svc.CreateSnapshot(ctx, s))
			created = append(created, s)
		}

		limited, err := svc.FindSnapshots(ctx, drugstock.SnapshotFilter{Limit: 2})
		require.NoError(t, err)
		require.Len(t, limited, 2)
		assert.Equal(t, created[2].ID, limited[0].ID)

		offset, err := svc.FindSnapshots(ctx, drugstock.SnapshotFilter{Offset: 2})
		require.NoError(t, err)
		require.Len(t, offset, 1)
		assert.Equal(t, created[0].ID, offset[0].ID)
	})

	t.Run("returns empty slice when nothing matches", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSnapshotService(db)

		productID := "missing"
		snapshots, err := svc.FindSnapshots(context.Background(), drugstock.SnapshotFilter{ProductID: &productID})

		require.NoError(t, err)
		assert.NotNil(t, snapshots)
		assert.Empty(t, snapshots)
	})
}
