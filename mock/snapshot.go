package mock

import (
	"context"

	"github.com/drugstock/drugstock"
)

var _ drugstock.SnapshotService = (*SnapshotService)(nil)

// SnapshotService is a mock implementation of drugstock.SnapshotService.
type SnapshotService struct {
	CreateSnapshotFn   func(ctx context.Context, snapshot *drugstock.Snapshot) error
	FindSnapshotByIDFn func(ctx context.Context, id string) (*drugstock.Snapshot, error)
	FindSnapshotsFn    func(ctx context.Context, filter drugstock.SnapshotFilter) ([]*drugstock.Snapshot, error)
}

func (s *SnapshotService) CreateSnapshot(ctx context.Context, snapshot *drugstock.Snapshot) error {
	return s.CreateSnapshotFn(ctx, snapshot)
}

func (s *SnapshotService) FindSnapshotByID(ctx context.Context, id string) (*drugstock.Snapshot, error) {
	return s.FindSnapshotByIDFn(ctx, id)
}

func (s *SnapshotService) FindSnapshots(ctx context.Context, filter drugstock.SnapshotFilter) ([]*drugstock.Snapshot, error) {
	return s.FindSnapshotsFn(ctx, filter)
}
