package ledger

import (
	"strconv"
	"strings"

	"inventory-dashboard/core/store"
	"inventory-dashboard/core/utils"
)

// OrderColumns is the fixed column order of the orders table.
var OrderColumns = []string{
	"OrderId", "OrderName", "LineId", "SKU", "Qty",
	"Completed", "CompletedAt", "CreatedDate", "Note",
}

// OrderLine is one line of an order. LineID is the unique key; SKU is the
// manufactured product code (a jamliner length).
// CompletedAt is set exactly once, on the false-to-true completion
// transition, and is never cleared automatically; un-completing a line
// performs no inventory credit-back.
type OrderLine struct {
	OrderID     string `json:"orderId"`
	OrderName   string `json:"orderName"`
	LineID      string `json:"lineId"`
	SKU         string `json:"sku"`
	Qty         int    `json:"qty"`
	Completed   bool   `json:"completed"`
	CompletedAt string `json:"completedAt,omitempty"`
	CreatedDate string `json:"createdDate,omitempty"`
	Note        string `json:"note,omitempty"`
}

// Orders is a full snapshot of the order ledger.
type Orders []OrderLine

// OrdersFromRows normalizes loaded rows into order lines.
// Missing columns default to empty/zero/false; a negative Qty is kept as-is
// and treated as a no-op by the reconciliation engine.
func OrdersFromRows(rows []store.Row) Orders {
	orders := make(Orders, 0, len(rows))
	for _, row := range rows {
		orders = append(orders, OrderLine{
			OrderID:     strings.TrimSpace(row["OrderId"]),
			OrderName:   strings.TrimSpace(row["OrderName"]),
			LineID:      strings.TrimSpace(row["LineId"]),
			SKU:         strings.TrimSpace(row["SKU"]),
			Qty:         utils.ToInt(row["Qty"]),
			Completed:   utils.ToBool(row["Completed"]),
			CompletedAt: strings.TrimSpace(row["CompletedAt"]),
			CreatedDate: strings.TrimSpace(row["CreatedDate"]),
			Note:        row["Note"],
		})
	}
	return orders
}

// ToRows serializes the snapshot in the fixed column order.
func (o Orders) ToRows() []store.Row {
	rows := make([]store.Row, 0, len(o))
	for _, line := range o {
		rows = append(rows, store.Row{
			"OrderId":     line.OrderID,
			"OrderName":   line.OrderName,
			"LineId":      line.LineID,
			"SKU":         line.SKU,
			"Qty":         strconv.Itoa(line.Qty),
			"Completed":   utils.FormatBool(line.Completed),
			"CompletedAt": line.CompletedAt,
			"CreatedDate": line.CreatedDate,
			"Note":        line.Note,
		})
	}
	return rows
}

// Index returns the lines keyed by LineID. Duplicate LineIDs should not
// occur; if they do, the last line wins.
func (o Orders) Index() map[string]OrderLine {
	idx := make(map[string]OrderLine, len(o))
	for _, line := range o {
		idx[line.LineID] = line
	}
	return idx
}

// Clone deep-copies the snapshot.
func (o Orders) Clone() Orders {
	out := make(Orders, len(o))
	copy(out, o)
	return out
}
