// Package reconcile implements the order-completion to inventory-decrement
// reconciliation engine.
//
// Given two order-ledger snapshots (before and after an editing session),
// the current inventory ledger and the product-code mapping, the engine:
//
//  1. Diffs the snapshots to find lines whose completion state transitioned
//     from incomplete to complete.
//  2. Maps each line's product code to a (balance size, units-per-order)
//     pair via the mapping table.
//  3. Applies idempotent decrements to a working copy of the inventory,
//     accumulating decrements that target the same balance size.
//  4. Recomputes the low-stock flag for every record and returns the full
//     replacement snapshot.
//
// # Failure model
//
// The engine is a pure function and raises no fatal errors. Lines with a
// missing mapping or a missing inventory row are skipped with a per-line
// warning; lines with qty <= 0 are skipped silently. The batch always runs
// to completion, and the caller persists the result with two sequential
// whole-table saves (inventory first, then orders).
//
// Re-running the engine with identical before and after snapshots is a
// no-op, which is what makes a reload-and-retry after a failed save safe as
// long as the orders snapshot was not yet persisted.
package reconcile
