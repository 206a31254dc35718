package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/drugstock/drugstock"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ drugstock.SnapshotService = (*SnapshotService)(nil)

// SnapshotService implements drugstock.SnapshotService using SQLite.
type SnapshotService struct {
	db *DB
}

// NewSnapshotService creates a new SnapshotService.
func NewSnapshotService(db *DB) *SnapshotService {
	return &SnapshotService{db: db}
}

// CreateSnapshot stores a new snapshot.
func (s *SnapshotService) CreateSnapshot(ctx context.Context, snapshot *drugstock.Snapshot) error {
	if err := snapshot.Validate(); err != nil {
		return err
	}

	product, err := json.Marshal(snapshot.Product)
	if err != nil {
		return fmt.Errorf("failed to encode product: %w", err)
	}

	snapshot.ID = uuid.New().String()
	snapshot.FetchedAt = time.Now().UTC().Truncate(time.Second)
	snapshot.ContentHash = hashContent(snapshot.HTML)

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO snapshots (id, product_id, source_url, content_hash, product, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, snapshot.ID, snapshot.ProductID, snapshot.SourceURL, snapshot.ContentHash,
		string(product), snapshot.FetchedAt.Format(time.RFC3339))

	return err
}

// FindSnapshotByID retrieves a snapshot by ID.
func (s *SnapshotService) FindSnapshotByID(ctx context.Context, id string) (*drugstock.Snapshot, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, product_id, source_url, content_hash, product, fetched_at
		FROM snapshots
		WHERE id = ?
	`, id)

	snapshot, err := scanSnapshot(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, drugstock.Errorf(drugstock.ENOTFOUND, "snapshot not found")
	}
	if err != nil {
		return nil, err
	}
	return snapshot, nil
}

// FindSnapshots retrieves snapshots matching the filter, newest first.
func (s *SnapshotService) FindSnapshots(ctx context.Context, filter drugstock.SnapshotFilter) ([]*drugstock.Snapshot, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, product_id, source_url, content_hash, product, fetched_at FROM snapshots WHERE 1=1")

	if filter.ProductID != nil {
		query.WriteString(" AND product_id = ?")
		args = append(args, *filter.ProductID)
	}

	// rowid breaks ties between snapshots taken within the same second.
	query.WriteString(" ORDER BY fetched_at DESC, rowid DESC")

	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	snapshots := make([]*drugstock.Snapshot, 0)
	for rows.Next() {
		snapshot, err := scanSnapshot(rows)
		if err != nil {
			return nil, err
		}
		snapshots = append(snapshots, snapshot)
	}

	return snapshots, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSnapshot(row scanner) (*drugstock.Snapshot, error) {
	var snapshot drugstock.Snapshot
	var product, fetchedAt string

	if err := row.Scan(&snapshot.ID, &snapshot.ProductID, &snapshot.SourceURL,
		&snapshot.ContentHash, &product, &fetchedAt); err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(product), &snapshot.Product); err != nil {
		return nil, fmt.Errorf("failed to decode product: %w", err)
	}

	var err error
	snapshot.FetchedAt, err = parseRFC3339(fetchedAt, "fetched_at")
	if err != nil {
		return nil, err
	}

	return &snapshot, nil
}
