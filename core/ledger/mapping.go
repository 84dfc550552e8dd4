package ledger

import (
	"strconv"
	"strings"

	"inventory-dashboard/core/store"
	"inventory-dashboard/core/utils"
)

// MapColumns is the fixed column order of the mapping table.
var MapColumns = []string{"JamlinerLength", "BalanceSize", "UnitsPerOrder"}

// MapEntry maps a product code to the stock unit it consumes.
// UnitsPerOrder converts one ordered unit into raw stock consumption and
// defaults to 1 when missing or invalid.
type MapEntry struct {
	JamlinerLength string `json:"jamlinerLength"`
	BalanceSize    string `json:"balanceSize"`
	UnitsPerOrder  int    `json:"unitsPerOrder"`
}

// MapFromRows normalizes loaded rows into mapping entries.
func MapFromRows(rows []store.Row) []MapEntry {
	entries := make([]MapEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, MapEntry{
			JamlinerLength: strings.TrimSpace(row["JamlinerLength"]),
			BalanceSize:    strings.TrimSpace(row["BalanceSize"]),
			UnitsPerOrder:  utils.ToInt(row["UnitsPerOrder"]),
		})
	}
	return entries
}

// MapToRows serializes mapping entries in the fixed column order.
func MapToRows(entries []MapEntry) []store.Row {
	rows := make([]store.Row, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, store.Row{
			"JamlinerLength": e.JamlinerLength,
			"BalanceSize":    e.BalanceSize,
			"UnitsPerOrder":  strconv.Itoa(e.UnitsPerOrder),
		})
	}
	return rows
}

// Lookup is a single-valued index from product code to map entry.
type Lookup map[string]MapEntry

// BuildLookup indexes entries by trimmed product code. Blank keys are
// excluded; duplicate keys are not an error, the last-seen entry wins.
func BuildLookup(entries []MapEntry) Lookup {
	l := make(Lookup, len(entries))
	for _, e := range entries {
		key := strings.TrimSpace(e.JamlinerLength)
		if key == "" {
			continue
		}
		l[key] = e
	}
	return l
}

// Resolve returns the entry for a product code. Absence is not an error;
// the second return value reports it.
func (l Lookup) Resolve(code string) (MapEntry, bool) {
	e, ok := l[strings.TrimSpace(code)]
	return e, ok
}
