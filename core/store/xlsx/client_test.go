package xlsx

import (
	"context"
	"path/filepath"
	"testing"

	"inventory-dashboard/core/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()

	c, err := NewClient(Config{
		Path:      filepath.Join(t.TempDir(), "dashboard.xlsx"),
		MetaTable: "Meta",
	})
	require.NoError(t, err)
	return c
}

func TestSaveAndLoadTable(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	header := []string{"Item", "SKU", "OnHand", "MinLevel"}
	rows := []store.Row{
		{"Item": "6-String", "SKU": "J6", "OnHand": "20", "MinLevel": "5"},
		{"Item": "10-String", "SKU": "J10", "OnHand": "50", "MinLevel": "10"},
	}

	require.NoError(t, c.SaveTable(ctx, "Inventory", header, rows))

	got, err := c.LoadTable(ctx, "Inventory")
	require.NoError(t, err)
	assert.Equal(t, rows, got)
}

func TestSaveTableOverwrites(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()
	header := []string{"Item"}

	require.NoError(t, c.SaveTable(ctx, "Inventory", header, []store.Row{
		{"Item": "A"}, {"Item": "B"}, {"Item": "C"},
	}))
	require.NoError(t, c.SaveTable(ctx, "Inventory", header, []store.Row{
		{"Item": "D"},
	}))

	got, err := c.LoadTable(ctx, "Inventory")
	require.NoError(t, err)
	// The shorter snapshot fully replaces the longer one, no leftover rows.
	assert.Equal(t, []store.Row{{"Item": "D"}}, got)
}

func TestLoadTableDropsBlankRows(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()
	header := []string{"Item", "OnHand"}

	require.NoError(t, c.SaveTable(ctx, "Inventory", header, []store.Row{
		{"Item": "A", "OnHand": "1"},
		{"Item": "", "OnHand": ""},
		{"Item": "B", "OnHand": "2"},
	}))

	got, err := c.LoadTable(ctx, "Inventory")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "A", got[0]["Item"])
	assert.Equal(t, "B", got[1]["Item"])
}

func TestLoadTableMissingSheet(t *testing.T) {
	c := newTestClient(t)

	_, err := c.LoadTable(context.Background(), "Nope")
	assert.Error(t, err)
}

func TestMetaRoundTrip(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	// Never written reads as empty, not as an error.
	stamp, err := c.ReadMeta(ctx)
	require.NoError(t, err)
	assert.Empty(t, stamp)

	require.NoError(t, c.WriteMeta(ctx, "2026-08-30 12:00:00 CDT"))

	stamp, err = c.ReadMeta(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2026-08-30 12:00:00 CDT", stamp)
}

func TestWorkbookPersistsAcrossClients(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dashboard.xlsx")
	ctx := context.Background()

	first, err := NewClient(Config{Path: path, MetaTable: "Meta"})
	require.NoError(t, err)
	require.NoError(t, first.SaveTable(ctx, "Orders", []string{"LineId"}, []store.Row{{"LineId": "L1"}}))

	second, err := NewClient(Config{Path: path, MetaTable: "Meta"})
	require.NoError(t, err)
	got, err := second.LoadTable(ctx, "Orders")
	require.NoError(t, err)
	assert.Equal(t, []store.Row{{"LineId": "L1"}}, got)
}
