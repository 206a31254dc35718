package main

import (
	"errors"
	"fmt"

	"github.com/drugstock/drugstock"
)

// emit prints rec to stdout, mirrors it to the output file and records a
// snapshot for successful extractions. An error record is returned as an
// error so the process exits non-zero.
func emit(deps *Dependencies, rec drugstock.Record, sourceURL, html string) error {
	if err := drugstock.WriteRecord(deps.Stdout, rec); err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}

	if deps.Output != nil {
		if err := deps.Output.WriteRecord(deps.Ctx, rec); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
	}

	if !rec.OK() {
		return errors.New(rec.Err)
	}

	if deps.Snapshots != nil {
		snapshot := &drugstock.Snapshot{
			ProductID: rec.Product.ProductID,
			SourceURL: sourceURL,
			Product:   rec.Product,
			HTML:      html,
		}
		if err := deps.Snapshots.CreateSnapshot(deps.Ctx, snapshot); err != nil {
			return fmt.Errorf("failed to save snapshot: %w", err)
		}
		if deps.Logger != nil {
			deps.Logger.Debug("snapshot", "id", snapshot.ID, "product_id", snapshot.ProductID, "content_hash", snapshot.ContentHash)
		}
	}

	return nil
}
