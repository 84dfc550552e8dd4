package cmd

import (
	"context"
	"fmt"

	"inventory-dashboard/core/config"
	"inventory-dashboard/core/ledger"
	"inventory-dashboard/core/store/xlsx"

	"github.com/spf13/cobra"
)

var exportOut string

// exportCmd dumps the three tables into a local xlsx workbook.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the dashboard tables to an xlsx workbook",
	Long: `Loads the Inventory, Orders and Map tables from the configured backend
and writes them as sheets of a local workbook, for offline inspection or
as a one-shot migration into the xlsx backend.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportOut, "out", "export.xlsx", "Output workbook path")

	RootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	src, err := buildStore(ctx, cfg.Store)
	if err != nil {
		return err
	}

	dst, err := xlsx.NewClient(xlsx.Config{Path: exportOut, MetaTable: cfg.Store.MetaTable})
	if err != nil {
		return err
	}

	tables := []struct {
		name   string
		header []string
	}{
		{cfg.Store.InventoryTable, ledger.InventoryColumns},
		{cfg.Store.OrdersTable, ledger.OrderColumns},
		{cfg.Store.MapTable, ledger.MapColumns},
	}
	for _, t := range tables {
		rows, err := src.LoadTable(ctx, t.name)
		if err != nil {
			return fmt.Errorf("failed to load %s: %w", t.name, err)
		}
		if err := dst.SaveTable(ctx, t.name, t.header, rows); err != nil {
			return fmt.Errorf("failed to write %s: %w", t.name, err)
		}
		fmt.Printf("exported %s (%d rows)\n", t.name, len(rows))
	}

	if stamp, err := src.ReadMeta(ctx); err == nil && stamp != "" {
		if err := dst.WriteMeta(ctx, stamp); err != nil {
			return fmt.Errorf("failed to write meta stamp: %w", err)
		}
	}

	fmt.Printf("workbook written to %s\n", exportOut)
	return nil
}
