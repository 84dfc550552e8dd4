// Package ledger defines the typed tables the dashboard works with:
// the inventory ledger, the order ledger, and the product-code mapping.
//
// Each table has a fixed column order and a pair of codecs (FromRows/ToRows)
// that normalize the loosely-typed spreadsheet rows into fixed-shape records.
// Normalization never fails: missing columns become empty strings, zeros or
// false, and non-numeric quantity cells become 0.
//
// Derived state is recomputed, never trusted from storage: the LowStock flag
// is rederived from OnHand and MinLevel on every load and after every
// mutation.
package ledger
