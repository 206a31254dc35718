package main

import (
	"encoding/json"
	"fmt"

	"github.com/drugstock/drugstock"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	if deps.Snapshots == nil {
		return fmt.Errorf("history requires a database. Set --db or DRUGSTOCK_DB")
	}

	snapshots, err := deps.Snapshots.FindSnapshots(deps.Ctx, drugstock.SnapshotFilter{
		ProductID: &c.ProductID,
		Limit:     c.Limit,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", drugstock.ErrorMessage(err))
		return err
	}
	if snapshots == nil {
		snapshots = []*drugstock.Snapshot{}
	}

	enc := json.NewEncoder(deps.Stdout)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(snapshots)
}
