package drugstock

import (
	"context"
	"time"
)

// Snapshot is a stored successful extraction of a product page.
type Snapshot struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"product_id"`
	SourceURL   string    `json:"source_url"`
	ContentHash string    `json:"content_hash"`
	Product     *Product  `json:"product"`
	FetchedAt   time.Time `json:"fetched_at"`

	// HTML is the page the product was extracted from. It is hashed into
	// ContentHash on create and not stored.
	HTML string `json:"-"`
}

// Validate returns an error if the snapshot contains invalid fields.
func (s *Snapshot) Validate() error {
	if s.Product == nil {
		return Errorf(EINVALID, "snapshot product required")
	}
	if s.ProductID == "" {
		return Errorf(EINVALID, "snapshot product ID required")
	}
	if s.SourceURL == "" {
		return Errorf(EINVALID, "snapshot source URL required")
	}
	return nil
}

// SnapshotService represents a service for managing extraction history.
type SnapshotService interface {
	// CreateSnapshot stores a new snapshot, assigning its ID, content hash
	// and timestamp.
	CreateSnapshot(ctx context.Context, snapshot *Snapshot) error

	// FindSnapshotByID retrieves a snapshot by ID.
	// Returns ENOTFOUND if snapshot does not exist.
	FindSnapshotByID(ctx context.Context, id string) (*Snapshot, error)

	// FindSnapshots retrieves snapshots matching the filter, newest first.
	FindSnapshots(ctx context.Context, filter SnapshotFilter) ([]*Snapshot, error)
}

// SnapshotFilter represents a filter for FindSnapshots.
type SnapshotFilter struct {
	ProductID *string `json:"product_id"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// RecordWriter persists an emitted record outside of stdout.
type RecordWriter interface {
	WriteRecord(ctx context.Context, rec Record) error
}
