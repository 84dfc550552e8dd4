package orders

import (
	"context"
	"fmt"
	"strings"

	"inventory-dashboard/core/clock"
	"inventory-dashboard/core/ledger"
	"inventory-dashboard/core/reconcile"
	"inventory-dashboard/core/store"

	"go.uber.org/zap"
)

// Service handles order operations, including the completion commit that
// drives inventory reconciliation.
type Service struct {
	store  store.Store
	clock  clock.Clock
	logger *zap.Logger
	cfg    store.Config
}

// NewService creates a new orders service.
func NewService(st store.Store, clk clock.Clock, logger *zap.Logger, cfg store.Config) *Service {
	return &Service{store: st, clock: clk, logger: logger, cfg: cfg}
}

// List loads the order ledger with optional filters: a case-insensitive
// substring match on order name, line id or product code, and a completion
// state filter (nil means both).
func (s *Service) List(ctx context.Context, query string, completed *bool) (ledger.Orders, error) {
	rows, err := s.store.LoadTable(ctx, s.cfg.OrdersTable)
	if err != nil {
		return nil, fmt.Errorf("failed to load orders: %w", err)
	}
	orders := ledger.OrdersFromRows(rows)
	if query == "" && completed == nil {
		return orders, nil
	}

	q := strings.ToLower(query)
	out := make(ledger.Orders, 0, len(orders))
	for _, line := range orders {
		if completed != nil && line.Completed != *completed {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(line.OrderName), q) &&
			!strings.Contains(strings.ToLower(line.LineID), q) &&
			!strings.Contains(strings.ToLower(line.SKU), q) {
			continue
		}
		out = append(out, line)
	}
	return out, nil
}

// LineEdit is one edited order line from the checkbox list or editor grid.
// Qty and Note are optional; when nil the loaded values are kept.
type LineEdit struct {
	LineID    string  `json:"lineId"`
	Completed bool    `json:"completed"`
	Qty       *int    `json:"qty,omitempty"`
	Note      *string `json:"note,omitempty"`
}

// CommitResult reports the outcome of a completion commit.
type CommitResult struct {
	// NewlyCompleted lists the line ids that transitioned to complete.
	NewlyCompleted []string `json:"newlyCompleted"`
	// Inventory is the persisted replacement snapshot.
	Inventory ledger.Inventory `json:"inventory"`
	// Warnings lists non-fatal per-line issues; the commit still succeeded.
	Warnings []string `json:"warnings"`
	// Summary provides the batch counts from the engine.
	Summary reconcile.Summary `json:"summary"`
	// CompletedAt is the stamp written on newly-completed lines.
	CompletedAt string `json:"completedAt"`
}

// Complete applies line edits against a freshly loaded order snapshot,
// reconciles the resulting completions into the inventory ledger, and
// persists both tables.
//
// The two saves are sequential whole-table overwrites with no shared
// transaction: if the orders save fails after the inventory save
// succeeded, the decrements are already applied but the completions are
// not recorded, and a blind retry would re-apply them. That window is
// surfaced in the returned error rather than silently papered over.
func (s *Service) Complete(ctx context.Context, edits []LineEdit) (*CommitResult, error) {
	orderRows, err := s.store.LoadTable(ctx, s.cfg.OrdersTable)
	if err != nil {
		return nil, fmt.Errorf("failed to load orders: %w", err)
	}
	before := ledger.OrdersFromRows(orderRows)

	after := before.Clone()
	position := make(map[string]int, len(after))
	for i, line := range after {
		position[line.LineID] = i
	}

	var editWarnings []string
	for _, edit := range edits {
		i, ok := position[edit.LineID]
		if !ok {
			editWarnings = append(editWarnings, fmt.Sprintf("line %s not found, edit ignored", edit.LineID))
			continue
		}
		after[i].Completed = edit.Completed
		if edit.Qty != nil {
			after[i].Qty = *edit.Qty
		}
		if edit.Note != nil {
			after[i].Note = *edit.Note
		}
	}

	invRows, err := s.store.LoadTable(ctx, s.cfg.InventoryTable)
	if err != nil {
		return nil, fmt.Errorf("failed to load inventory: %w", err)
	}
	mapRows, err := s.store.LoadTable(ctx, s.cfg.MapTable)
	if err != nil {
		return nil, fmt.Errorf("failed to load mapping: %w", err)
	}

	inventory := ledger.InventoryFromRows(invRows)
	entries := ledger.MapFromRows(mapRows)

	result := reconcile.Reconcile(before, after, inventory, entries)
	newlyCompleted := reconcile.DetectNewlyCompleted(before, after)

	at := clock.Stamp(s.clock, s.cfg.Timezone)
	stamped := reconcile.StampCompletions(before, after, at)

	if err := s.store.SaveTable(ctx, s.cfg.InventoryTable, ledger.InventoryColumns, result.Inventory.ToRows()); err != nil {
		return nil, fmt.Errorf("failed to save inventory, nothing was applied: %w", err)
	}
	if err := s.store.SaveTable(ctx, s.cfg.OrdersTable, ledger.OrderColumns, stamped.ToRows()); err != nil {
		return nil, fmt.Errorf("inventory was saved but completions were not recorded; retrying the commit would re-apply the decrements: %w", err)
	}

	// Metadata stamp failures are swallowed, never blocking the commit.
	if err := s.store.WriteMeta(ctx, at); err != nil {
		s.logger.Warn("Failed to write last_updated stamp", zap.Error(err))
	}

	for _, w := range result.Warnings {
		s.logger.Warn("Reconciliation warning", zap.String("warning", w))
	}

	return &CommitResult{
		NewlyCompleted: newlyCompleted,
		Inventory:      result.Inventory,
		Warnings:       append(editWarnings, result.Warnings...),
		Summary:        result.Summary,
		CompletedAt:    at,
	}, nil
}
