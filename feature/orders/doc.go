// Package orders serves the order ledger view of the dashboard and owns
// the completion commit: toggled lines are diffed against a fresh
// snapshot, reconciled into inventory decrements, and both tables are
// persisted with sequential whole-table overwrites.
package orders
