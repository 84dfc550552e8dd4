package inventory

import (
	"context"
	"fmt"
	"strings"

	"inventory-dashboard/core/clock"
	"inventory-dashboard/core/ledger"
	"inventory-dashboard/core/store"

	"go.uber.org/zap"
)

// Service handles inventory operations.
type Service struct {
	store  store.Store
	clock  clock.Clock
	logger *zap.Logger
	cfg    store.Config
}

// NewService creates a new inventory service.
func NewService(st store.Store, clk clock.Clock, logger *zap.Logger, cfg store.Config) *Service {
	return &Service{store: st, clock: clk, logger: logger, cfg: cfg}
}

// ListResult is the dashboard view of the inventory ledger.
type ListResult struct {
	// Items is the filtered inventory with LowStock recomputed.
	Items ledger.Inventory `json:"items"`
	// LowStockCount is the low-stock KPI over the full (unfiltered) ledger.
	LowStockCount int `json:"lowStockCount"`
	// LastUpdated is the stamp from the metadata cell; empty if never written.
	LastUpdated string `json:"lastUpdated,omitempty"`
	// LastFetched is when this snapshot was read.
	LastFetched string `json:"lastFetched"`
}

// List loads the inventory ledger and applies the dashboard filters:
// an optional case-insensitive substring match on item or product code,
// and an optional low-stock-only toggle.
func (s *Service) List(ctx context.Context, query string, lowOnly bool) (*ListResult, error) {
	rows, err := s.store.LoadTable(ctx, s.cfg.InventoryTable)
	if err != nil {
		return nil, fmt.Errorf("failed to load inventory: %w", err)
	}
	inv := ledger.InventoryFromRows(rows)

	result := &ListResult{
		Items:         filter(inv, query, lowOnly),
		LowStockCount: inv.LowStockCount(),
		LastFetched:   clock.Stamp(s.clock, s.cfg.Timezone),
	}

	// The stamp is best-effort display data; a failed read never blocks the view.
	if stamp, err := s.store.ReadMeta(ctx); err == nil {
		result.LastUpdated = stamp
	} else {
		s.logger.Warn("Failed to read last_updated stamp", zap.Error(err))
	}
	return result, nil
}

// Edit is one edited inventory row from the editor grid.
type Edit struct {
	Item     string `json:"item"`
	SKU      string `json:"sku"`
	OnHand   int    `json:"onHand"`
	MinLevel int    `json:"minLevel"`
}

// Replace merges edited counts into a freshly loaded ledger and persists
// the result as a full-table overwrite.
//
// Edits are matched by SKU when SKUs are unique across the ledger, by Item
// otherwise. Edits whose key matches no record are appended as new items.
func (s *Service) Replace(ctx context.Context, edits []Edit) (ledger.Inventory, error) {
	rows, err := s.store.LoadTable(ctx, s.cfg.InventoryTable)
	if err != nil {
		return nil, fmt.Errorf("failed to load inventory: %w", err)
	}
	inv := ledger.InventoryFromRows(rows)

	bySKU := skusUnique(inv)
	index := make(map[string]int, len(inv))
	for i, rec := range inv {
		index[mergeKey(rec.BalanceSize, rec.JamlinerLength, bySKU)] = i
	}

	for _, edit := range edits {
		key := mergeKey(edit.Item, edit.SKU, bySKU)
		if key == "" {
			continue
		}
		if i, ok := index[key]; ok {
			inv[i].OnHand = edit.OnHand
			inv[i].MinLevel = edit.MinLevel
			continue
		}
		inv = append(inv, ledger.InventoryRecord{
			BalanceSize:    edit.Item,
			JamlinerLength: edit.SKU,
			OnHand:         edit.OnHand,
			MinLevel:       edit.MinLevel,
		})
		index[key] = len(inv) - 1
	}
	inv.RecomputeLowStock()

	if err := s.store.SaveTable(ctx, s.cfg.InventoryTable, ledger.InventoryColumns, inv.ToRows()); err != nil {
		return nil, fmt.Errorf("failed to save inventory: %w", err)
	}
	s.stampMeta(ctx)
	return inv, nil
}

// stampMeta records the last_updated stamp after a successful save.
// A metadata write failure never surfaces or blocks the primary save.
func (s *Service) stampMeta(ctx context.Context) {
	stamp := clock.Stamp(s.clock, s.cfg.Timezone)
	if err := s.store.WriteMeta(ctx, stamp); err != nil {
		s.logger.Warn("Failed to write last_updated stamp", zap.Error(err))
	}
}

func filter(inv ledger.Inventory, query string, lowOnly bool) ledger.Inventory {
	if query == "" && !lowOnly {
		return inv
	}
	q := strings.ToLower(query)
	out := make(ledger.Inventory, 0, len(inv))
	for _, rec := range inv {
		if lowOnly && !rec.LowStock {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(rec.BalanceSize), q) &&
			!strings.Contains(strings.ToLower(rec.JamlinerLength), q) {
			continue
		}
		out = append(out, rec)
	}
	return out
}

func skusUnique(inv ledger.Inventory) bool {
	seen := make(map[string]struct{}, len(inv))
	for _, rec := range inv {
		if _, dup := seen[rec.JamlinerLength]; dup {
			return false
		}
		seen[rec.JamlinerLength] = struct{}{}
	}
	return true
}

func mergeKey(item, sku string, bySKU bool) string {
	if bySKU {
		return strings.TrimSpace(sku)
	}
	return strings.TrimSpace(item)
}
