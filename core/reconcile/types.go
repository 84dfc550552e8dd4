package reconcile

import "inventory-dashboard/core/ledger"

// Result is the output of one reconciliation batch.
// Inventory is always the complete replacement snapshot (not just touched
// rows) because the persistence layer does whole-table overwrite.
type Result struct {
	// Inventory is the updated ledger with LowStock recomputed.
	Inventory ledger.Inventory `json:"inventory"`

	// Warnings lists the lines that could not be applied. They are
	// non-fatal: the batch always runs to completion.
	Warnings []string `json:"warnings"`

	// Summary provides aggregate counts for the batch.
	Summary Summary `json:"summary"`
}

// Summary provides aggregate statistics for a reconciliation batch.
type Summary struct {
	// NewlyCompleted is the number of lines that transitioned to complete.
	NewlyCompleted int `json:"newly_completed"`

	// Applied counts lines whose consumption reached the ledger.
	Applied int `json:"applied"`

	// SkippedZeroQty counts silently skipped lines with qty <= 0.
	SkippedZeroQty int `json:"skipped_zero_qty"`

	// SkippedNoMapping counts lines whose SKU has no mapping entry.
	SkippedNoMapping int `json:"skipped_no_mapping"`

	// SkippedNoBalance counts lines whose mapped balance size is not
	// present in the inventory ledger.
	SkippedNoBalance int `json:"skipped_no_balance"`
}
