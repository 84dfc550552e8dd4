package cmd

import (
	"context"
	"fmt"

	"inventory-dashboard/core/clock"
	"inventory-dashboard/core/config"
	"inventory-dashboard/core/ledger"
	"inventory-dashboard/core/logger"
	"inventory-dashboard/core/reconcile"
	"inventory-dashboard/feature/orders"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the reconcile command
	completeLines []string
	applyCommit   bool
)

// reconcileCmd runs a completion batch from the CLI.
var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Reconcile order completions into the inventory ledger",
	Long: `Marks the given order lines complete, diffs them against the stored
snapshot, and reports the inventory decrements that would result.

The default is a dry-run that prints the plan. With --apply the commit is
executed: inventory is saved first, then orders with completion stamps.

Examples:
  # Show what completing two lines would do
  reconcile --complete L1 --complete L2

  # Actually commit the batch
  reconcile --complete L1 --apply`,
	RunE: runReconcile,
}

func init() {
	reconcileCmd.Flags().StringArrayVar(&completeLines, "complete", nil, "Line id to mark complete (repeatable)")
	reconcileCmd.Flags().BoolVar(&applyCommit, "apply", false, "Execute the commit instead of dry-running")

	RootCmd.AddCommand(reconcileCmd)
}

func runReconcile(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	st, err := buildStore(ctx, cfg.Store)
	if err != nil {
		return err
	}

	if len(completeLines) == 0 {
		return fmt.Errorf("nothing to do: pass at least one --complete line id")
	}

	edits := make([]orders.LineEdit, 0, len(completeLines))
	for _, id := range completeLines {
		edits = append(edits, orders.LineEdit{LineID: id, Completed: true})
	}

	if applyCommit {
		svc := orders.NewService(st, clock.NewSystem(), l, cfg.Store)
		result, err := svc.Complete(ctx, edits)
		if err != nil {
			return err
		}
		printPlan(result.NewlyCompleted, result.Inventory, result.Warnings, result.Summary)
		fmt.Printf("committed at %s\n", result.CompletedAt)
		return nil
	}

	// Dry-run: compute the plan without touching storage.
	orderRows, err := st.LoadTable(ctx, cfg.Store.OrdersTable)
	if err != nil {
		return fmt.Errorf("failed to load orders: %w", err)
	}
	invRows, err := st.LoadTable(ctx, cfg.Store.InventoryTable)
	if err != nil {
		return fmt.Errorf("failed to load inventory: %w", err)
	}
	mapRows, err := st.LoadTable(ctx, cfg.Store.MapTable)
	if err != nil {
		return fmt.Errorf("failed to load mapping: %w", err)
	}

	before := ledger.OrdersFromRows(orderRows)
	after := before.Clone()
	known := make(map[string]int, len(after))
	for i, line := range after {
		known[line.LineID] = i
	}
	for _, edit := range edits {
		if i, ok := known[edit.LineID]; ok {
			after[i].Completed = true
		} else {
			l.Warn("Line id not found", zap.String("line_id", edit.LineID))
		}
	}

	result := reconcile.Reconcile(before, after, ledger.InventoryFromRows(invRows), ledger.MapFromRows(mapRows))
	printPlan(reconcile.DetectNewlyCompleted(before, after), result.Inventory, result.Warnings, result.Summary)
	fmt.Println("dry-run, nothing saved (use --apply to commit)")
	return nil
}

func printPlan(newlyCompleted []string, inv ledger.Inventory, warnings []string, summary reconcile.Summary) {
	fmt.Printf("newly completed lines: %v\n", newlyCompleted)
	fmt.Printf("applied=%d skipped: zero_qty=%d no_mapping=%d no_balance=%d\n",
		summary.Applied, summary.SkippedZeroQty, summary.SkippedNoMapping, summary.SkippedNoBalance)
	for _, w := range warnings {
		fmt.Printf("warning: %s\n", w)
	}
	for _, rec := range inv {
		marker := ""
		if rec.LowStock {
			marker = "  LOW"
		}
		fmt.Printf("%-20s %-10s on_hand=%-6d min=%-6d%s\n",
			rec.BalanceSize, rec.JamlinerLength, rec.OnHand, rec.MinLevel, marker)
	}
}
