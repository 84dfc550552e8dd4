package ledger

import (
	"strconv"
	"strings"

	"inventory-dashboard/core/store"
	"inventory-dashboard/core/utils"
)

// InventoryColumns is the fixed column order of the inventory table.
var InventoryColumns = []string{"Item", "SKU", "OnHand", "MinLevel"}

// InventoryRecord is one stocked item (a "balance size").
// LowStock is derived from OnHand and MinLevel on every read and update;
// it is never persisted. OnHand has no floor and may go negative, which
// signals over-commitment rather than being clamped away.
type InventoryRecord struct {
	// BalanceSize is the stocked item label (the Item column, unique key).
	BalanceSize string `json:"balanceSize"`
	// JamlinerLength is the product code the item corresponds to (SKU column).
	JamlinerLength string `json:"jamlinerLength"`
	// OnHand is the current stock count.
	OnHand int `json:"onHand"`
	// MinLevel is the reorder threshold.
	MinLevel int `json:"minLevel"`
	// LowStock is true when OnHand is at or below MinLevel.
	LowStock bool `json:"lowStock"`
}

// Inventory is a full snapshot of the inventory ledger.
type Inventory []InventoryRecord

// InventoryFromRows normalizes loaded rows into inventory records.
// Missing columns default to empty/zero and LowStock is recomputed.
func InventoryFromRows(rows []store.Row) Inventory {
	inv := make(Inventory, 0, len(rows))
	for _, row := range rows {
		rec := InventoryRecord{
			BalanceSize:    strings.TrimSpace(row["Item"]),
			JamlinerLength: strings.TrimSpace(row["SKU"]),
			OnHand:         utils.ToInt(row["OnHand"]),
			MinLevel:       utils.ToInt(row["MinLevel"]),
		}
		inv = append(inv, rec)
	}
	inv.RecomputeLowStock()
	return inv
}

// ToRows serializes the snapshot in the fixed column order.
func (inv Inventory) ToRows() []store.Row {
	rows := make([]store.Row, 0, len(inv))
	for _, rec := range inv {
		rows = append(rows, store.Row{
			"Item":     rec.BalanceSize,
			"SKU":      rec.JamlinerLength,
			"OnHand":   strconv.Itoa(rec.OnHand),
			"MinLevel": strconv.Itoa(rec.MinLevel),
		})
	}
	return rows
}

// Find returns the index of the record with the given balance size.
func (inv Inventory) Find(balanceSize string) (int, bool) {
	for i := range inv {
		if inv[i].BalanceSize == balanceSize {
			return i, true
		}
	}
	return -1, false
}

// ApplyDelta subtracts delta from the named record's OnHand.
// There is no bounds check and no clamping to zero. Returns false when no
// record carries the balance size; the ledger is left untouched in that case.
func (inv Inventory) ApplyDelta(balanceSize string, delta int) bool {
	i, ok := inv.Find(balanceSize)
	if !ok {
		return false
	}
	inv[i].OnHand -= delta
	return true
}

// RecomputeLowStock rederives the LowStock flag for every record.
// Callers must invoke this after any OnHand/MinLevel mutation and before
// persisting the snapshot.
func (inv Inventory) RecomputeLowStock() {
	for i := range inv {
		inv[i].LowStock = inv[i].OnHand <= inv[i].MinLevel
	}
}

// LowStockCount returns the number of records at or below their reorder level.
func (inv Inventory) LowStockCount() int {
	n := 0
	for i := range inv {
		if inv[i].LowStock {
			n++
		}
	}
	return n
}

// Clone deep-copies the snapshot.
func (inv Inventory) Clone() Inventory {
	out := make(Inventory, len(inv))
	copy(out, inv)
	return out
}
