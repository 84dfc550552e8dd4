package ledger

import (
	"testing"

	"inventory-dashboard/core/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapFromRows(t *testing.T) {
	rows := []store.Row{
		{"JamlinerLength": " J6 ", "BalanceSize": "6-String", "UnitsPerOrder": "2"},
		{"JamlinerLength": "J10", "BalanceSize": "10-String", "UnitsPerOrder": "bad"},
	}

	entries := MapFromRows(rows)

	require.Len(t, entries, 2)
	assert.Equal(t, MapEntry{JamlinerLength: "J6", BalanceSize: "6-String", UnitsPerOrder: 2}, entries[0])
	assert.Equal(t, 0, entries[1].UnitsPerOrder)
}

func TestBuildLookup(t *testing.T) {
	entries := []MapEntry{
		{JamlinerLength: "J6", BalanceSize: "6-String", UnitsPerOrder: 2},
		{JamlinerLength: "", BalanceSize: "Blank"},
		{JamlinerLength: "J6", BalanceSize: "6-String-v2", UnitsPerOrder: 3},
	}

	l := BuildLookup(entries)

	require.Len(t, l, 1)
	e, ok := l.Resolve("J6")
	require.True(t, ok)
	// Duplicates are not an error, the later entry wins.
	assert.Equal(t, "6-String-v2", e.BalanceSize)

	// Resolve trims its argument the same way the index was built.
	_, ok = l.Resolve(" J6 ")
	assert.True(t, ok)

	_, ok = l.Resolve("J12")
	assert.False(t, ok)
}
