package inventory

import (
	"context"
	"errors"
	"testing"
	"time"

	"inventory-dashboard/core/clock"
	"inventory-dashboard/core/ledger"
	"inventory-dashboard/core/store"
	"inventory-dashboard/core/store/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testTime = time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

func testConfig() store.Config {
	return store.Config{
		InventoryTable: "Inventory",
		OrdersTable:    "Orders",
		MapTable:       "Map",
		MetaTable:      "Meta",
		Timezone:       "UTC",
	}
}

func seededStore(cfg store.Config) *memory.Store {
	s := memory.New()
	s.Seed(cfg.InventoryTable, ledger.InventoryColumns, ledger.Inventory{
		{BalanceSize: "6-String", JamlinerLength: "J6", OnHand: 20, MinLevel: 5},
		{BalanceSize: "10-String", JamlinerLength: "J10", OnHand: 8, MinLevel: 10},
	}.ToRows())
	return s
}

func newTestService(st store.Store, cfg store.Config) *Service {
	return NewService(st, clock.NewFixed(testTime), zap.NewNop(), cfg)
}

func TestListAll(t *testing.T) {
	cfg := testConfig()
	st := seededStore(cfg)
	require.NoError(t, st.WriteMeta(context.Background(), "2026-08-29 09:00:00 UTC"))
	svc := newTestService(st, cfg)

	result, err := svc.List(context.Background(), "", false)
	require.NoError(t, err)

	require.Len(t, result.Items, 2)
	assert.Equal(t, 1, result.LowStockCount)
	assert.True(t, result.Items[1].LowStock)
	assert.Equal(t, "2026-08-29 09:00:00 UTC", result.LastUpdated)
	assert.Equal(t, "2026-08-30 12:00:00 UTC", result.LastFetched)
}

func TestListFilters(t *testing.T) {
	cfg := testConfig()
	svc := newTestService(seededStore(cfg), cfg)
	ctx := context.Background()

	tests := []struct {
		name    string
		query   string
		lowOnly bool
		want    []string
	}{
		{"SubstringOnItem", "10-str", false, []string{"10-String"}},
		{"SubstringOnCode", "j6", false, []string{"6-String"}},
		{"CaseInsensitive", "STRING", false, []string{"6-String", "10-String"}},
		{"LowOnly", "", true, []string{"10-String"}},
		{"CombinedNoMatch", "6-str", true, nil},
		{"NoMatch", "zither", false, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := svc.List(ctx, tt.query, tt.lowOnly)
			require.NoError(t, err)

			var got []string
			for _, rec := range result.Items {
				got = append(got, rec.BalanceSize)
			}
			assert.Equal(t, tt.want, got)
			// The KPI always covers the full ledger, not the filtered view.
			assert.Equal(t, 1, result.LowStockCount)
		})
	}
}

func TestReplaceMergesBySKU(t *testing.T) {
	cfg := testConfig()
	st := seededStore(cfg)
	svc := newTestService(st, cfg)
	ctx := context.Background()

	inv, err := svc.Replace(ctx, []Edit{
		{Item: "6-String", SKU: "J6", OnHand: 4, MinLevel: 5},
	})
	require.NoError(t, err)

	i, ok := inv.Find("6-String")
	require.True(t, ok)
	assert.Equal(t, 4, inv[i].OnHand)
	assert.True(t, inv[i].LowStock)

	// Persisted as a whole-table overwrite with the fixed header.
	rows, err := st.LoadTable(ctx, cfg.InventoryTable)
	require.NoError(t, err)
	saved := ledger.InventoryFromRows(rows)
	j, _ := saved.Find("6-String")
	assert.Equal(t, 4, saved[j].OnHand)
	assert.Equal(t, ledger.InventoryColumns, st.Header(cfg.InventoryTable))

	// A successful save stamps the metadata cell.
	stamp, err := st.ReadMeta(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2026-08-30 12:00:00 UTC", stamp)
}

func TestReplaceMergesByItemWhenSKUsCollide(t *testing.T) {
	cfg := testConfig()
	st := memory.New()
	st.Seed(cfg.InventoryTable, ledger.InventoryColumns, ledger.Inventory{
		{BalanceSize: "6-String", JamlinerLength: "J6", OnHand: 20, MinLevel: 5},
		{BalanceSize: "6-String-alt", JamlinerLength: "J6", OnHand: 7, MinLevel: 2},
	}.ToRows())
	svc := newTestService(st, cfg)

	inv, err := svc.Replace(context.Background(), []Edit{
		{Item: "6-String-alt", SKU: "J6", OnHand: 9, MinLevel: 2},
	})
	require.NoError(t, err)

	i, _ := inv.Find("6-String-alt")
	assert.Equal(t, 9, inv[i].OnHand)
	j, _ := inv.Find("6-String")
	assert.Equal(t, 20, inv[j].OnHand)
}

func TestReplaceAppendsNewItems(t *testing.T) {
	cfg := testConfig()
	svc := newTestService(seededStore(cfg), cfg)

	inv, err := svc.Replace(context.Background(), []Edit{
		{Item: "12-String", SKU: "J12", OnHand: 30, MinLevel: 6},
		{},
	})
	require.NoError(t, err)

	// The blank edit is dropped; the new item lands at the end.
	require.Len(t, inv, 3)
	assert.Equal(t, "12-String", inv[2].BalanceSize)
	assert.Equal(t, 30, inv[2].OnHand)
}

func TestReplaceSaveFails(t *testing.T) {
	cfg := testConfig()
	st := seededStore(cfg)
	st.FailSaves = map[string]error{cfg.InventoryTable: errors.New("quota exceeded")}
	svc := newTestService(st, cfg)

	_, err := svc.Replace(context.Background(), []Edit{
		{Item: "6-String", SKU: "J6", OnHand: 4, MinLevel: 5},
	})
	require.Error(t, err)

	// The stamp is only written after a successful save.
	stamp, merr := st.ReadMeta(context.Background())
	require.NoError(t, merr)
	assert.Empty(t, stamp)
}

func TestReplaceMetaFailureSwallowed(t *testing.T) {
	cfg := testConfig()
	st := seededStore(cfg)
	st.FailMeta = errors.New("meta tab missing")
	svc := newTestService(st, cfg)

	_, err := svc.Replace(context.Background(), []Edit{
		{Item: "6-String", SKU: "J6", OnHand: 4, MinLevel: 5},
	})
	require.NoError(t, err)
}
