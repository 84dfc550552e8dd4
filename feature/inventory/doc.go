// Package inventory serves the inventory ledger view of the dashboard:
// listing with low-stock KPI and filters, and the editor-gated grid
// replace that persists edited counts back to the spreadsheet.
package inventory
