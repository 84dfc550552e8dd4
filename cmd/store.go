package cmd

import (
	"context"
	"fmt"
	"time"

	"inventory-dashboard/core/ledger"
	"inventory-dashboard/core/store"
	"inventory-dashboard/core/store/memory"
	"inventory-dashboard/core/store/sheets"
	"inventory-dashboard/core/store/xlsx"
)

// buildStore creates the configured persistence backend, wrapped in the
// TTL read cache when store.cache_ttl_seconds is positive.
func buildStore(ctx context.Context, cfg store.Config) (store.Store, error) {
	var (
		inner store.Store
		err   error
	)
	switch cfg.Backend {
	case store.BackendSheets:
		inner, err = sheets.NewClient(ctx, sheets.Config{
			SpreadsheetID:   cfg.Sheet.SpreadsheetID,
			CredentialsFile: cfg.Sheet.CredentialsFile,
			MetaTable:       cfg.MetaTable,
		})
	case store.BackendXlsx:
		inner, err = xlsx.NewClient(xlsx.Config{
			Path:           cfg.Xlsx.Path,
			Endpoint:       cfg.Xlsx.Endpoint,
			AccessKey:      cfg.Xlsx.AccessKey,
			SecretKey:      cfg.Xlsx.SecretKey,
			UseSSL:         cfg.Xlsx.UseSSL,
			Bucket:         cfg.Xlsx.Bucket,
			Object:         cfg.Xlsx.Object,
			TimeoutSeconds: cfg.Xlsx.TimeoutSeconds,
			MetaTable:      cfg.MetaTable,
		})
	case store.BackendMemory:
		inner = seededMemoryStore(cfg)
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create %s store: %w", cfg.Backend, err)
	}

	return store.NewCached(inner, time.Duration(cfg.CacheTTLSeconds)*time.Second), nil
}

// seededMemoryStore returns an in-memory backend with a small sample
// dataset so the server can be explored without a remote spreadsheet.
func seededMemoryStore(cfg store.Config) *memory.Store {
	s := memory.New()
	s.Seed(cfg.InventoryTable, ledger.InventoryColumns, ledger.Inventory{
		{BalanceSize: "6-String", JamlinerLength: "J6", OnHand: 20, MinLevel: 5},
		{BalanceSize: "10-String", JamlinerLength: "J10", OnHand: 50, MinLevel: 10},
	}.ToRows())
	s.Seed(cfg.OrdersTable, ledger.OrderColumns, ledger.Orders{
		{OrderID: "O-1", OrderName: "Sample order", LineID: "L1", SKU: "J6", Qty: 3, CreatedDate: "2026-01-05"},
		{OrderID: "O-1", OrderName: "Sample order", LineID: "L2", SKU: "J10", Qty: 1, CreatedDate: "2026-01-05"},
	}.ToRows())
	s.Seed(cfg.MapTable, ledger.MapColumns, ledger.MapToRows([]ledger.MapEntry{
		{JamlinerLength: "J6", BalanceSize: "6-String", UnitsPerOrder: 2},
		{JamlinerLength: "J10", BalanceSize: "10-String", UnitsPerOrder: 1},
	}))
	return s
}
