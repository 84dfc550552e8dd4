package reconcile

import (
	"fmt"

	"inventory-dashboard/core/ledger"
)

// DetectNewlyCompleted diffs two order-ledger snapshots and returns the
// LineIDs that transitioned from incomplete to complete, in after-snapshot
// order. A line absent from the before snapshot counts as previously
// incomplete, so a line inserted already-complete during editing is
// reported. Lines that were already complete, or that flip back to
// incomplete, are never reported; there is no reversal path.
func DetectNewlyCompleted(before, after ledger.Orders) []string {
	prev := before.Index()
	var ids []string
	for _, line := range after {
		if line.Completed && !prev[line.LineID].Completed {
			ids = append(ids, line.LineID)
		}
	}
	return ids
}

// Reconcile converts newly-completed order lines into inventory decrements.
//
// It is a pure function: the four inputs are never mutated, no I/O happens,
// and the same inputs always produce the same snapshot and warning set.
// Per-line failures (missing mapping, missing inventory row) become
// warnings, never aborts; the corresponding order line still ends up marked
// complete by the caller, the engine merely fails to decrement for it.
//
// Decrements within a batch accumulate: later lines see the effect of
// earlier ones on the working copy, so two lines resolving to the same
// balance size both apply.
func Reconcile(before, after ledger.Orders, inventory ledger.Inventory, entries []ledger.MapEntry) Result {
	work := inventory.Clone()
	lookup := ledger.BuildLookup(entries)
	prev := before.Index()

	var (
		warnings []string
		summary  Summary
	)
	for _, line := range after {
		if !line.Completed || prev[line.LineID].Completed {
			continue
		}
		summary.NewlyCompleted++

		// A non-positive quantity is a no-op line, not a warning.
		if line.Qty <= 0 {
			summary.SkippedZeroQty++
			continue
		}

		entry, ok := lookup.Resolve(line.SKU)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("no mapping for %s, line %s skipped", line.SKU, line.LineID))
			summary.SkippedNoMapping++
			continue
		}

		units := entry.UnitsPerOrder
		if units < 1 {
			units = 1
		}
		consume := line.Qty * units

		if !work.ApplyDelta(entry.BalanceSize, consume) {
			warnings = append(warnings, fmt.Sprintf("balance size %s not found, line %s skipped", entry.BalanceSize, line.LineID))
			summary.SkippedNoBalance++
			continue
		}
		summary.Applied++
	}

	work.RecomputeLowStock()
	return Result{Inventory: work, Warnings: warnings, Summary: summary}
}

// StampCompletions returns the after snapshot with CompletedAt filled in
// for every newly-completed line. A stamp is written exactly once: lines
// that already carry one keep it, and un-completing never clears it.
func StampCompletions(before, after ledger.Orders, at string) ledger.Orders {
	prev := before.Index()
	out := after.Clone()
	for i := range out {
		if out[i].Completed && !prev[out[i].LineID].Completed && out[i].CompletedAt == "" {
			out[i].CompletedAt = at
		}
	}
	return out
}
