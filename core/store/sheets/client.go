package sheets

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/api/option"
	sheets "google.golang.org/api/sheets/v4"

	"inventory-dashboard/core/store"
)

// Config holds configuration for the Google Sheets backend.
type Config struct {
	// SpreadsheetID identifies the backing spreadsheet.
	SpreadsheetID string
	// CredentialsFile is the service-account JSON key path.
	CredentialsFile string
	// MetaTable is the tab holding the last_updated cell.
	MetaTable string
}

// Client is a store.Store backed by a Google Sheets spreadsheet.
// Each logical table is a tab whose first row is the header.
type Client struct {
	svc       *sheets.Service
	sheetID   string
	metaTable string
}

// NewClient creates a Sheets-backed store using service-account credentials.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.SpreadsheetID == "" {
		return nil, fmt.Errorf("sheet.spreadsheet_id is required for the sheets backend")
	}
	svc, err := sheets.NewService(ctx,
		option.WithCredentialsFile(cfg.CredentialsFile),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}
	return &Client{svc: svc, sheetID: cfg.SpreadsheetID, metaTable: cfg.MetaTable}, nil
}

func (c *Client) LoadTable(ctx context.Context, name string) ([]store.Row, error) {
	resp, err := c.svc.Spreadsheets.Values.Get(c.sheetID, name).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read tab %s: %w", name, err)
	}
	if len(resp.Values) == 0 {
		return nil, nil
	}

	header := make([]string, 0, len(resp.Values[0]))
	for _, cell := range resp.Values[0] {
		header = append(header, strings.TrimSpace(fmt.Sprint(cell)))
	}

	rows := make([]store.Row, 0, len(resp.Values)-1)
	for _, raw := range resp.Values[1:] {
		row := make(store.Row, len(header))
		blank := true
		for i, col := range header {
			if col == "" {
				continue
			}
			var val string
			if i < len(raw) {
				val = fmt.Sprint(raw[i])
			}
			if strings.TrimSpace(val) != "" {
				blank = false
			}
			row[col] = val
		}
		// Sheets pads the used range with fully empty rows; drop them.
		if blank {
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (c *Client) SaveTable(ctx context.Context, name string, header []string, rows []store.Row) error {
	if _, err := c.svc.Spreadsheets.Values.Clear(c.sheetID, name, &sheets.ClearValuesRequest{}).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to clear tab %s: %w", name, err)
	}

	values := make([][]any, 0, len(rows)+1)
	headerRow := make([]any, len(header))
	for i, col := range header {
		headerRow[i] = col
	}
	values = append(values, headerRow)
	for _, row := range rows {
		out := make([]any, len(header))
		for i, col := range header {
			out[i] = row[col]
		}
		values = append(values, out)
	}

	_, err := c.svc.Spreadsheets.Values.
		Update(c.sheetID, name+"!A1", &sheets.ValueRange{Values: values}).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to write tab %s: %w", name, err)
	}
	return nil
}

func (c *Client) ReadMeta(ctx context.Context) (string, error) {
	resp, err := c.svc.Spreadsheets.Values.Get(c.sheetID, c.metaTable+"!B1").Context(ctx).Do()
	if err != nil {
		// A missing meta tab means the stamp was never written.
		return "", nil
	}
	if len(resp.Values) == 0 || len(resp.Values[0]) == 0 {
		return "", nil
	}
	return strings.TrimSpace(fmt.Sprint(resp.Values[0][0])), nil
}

func (c *Client) WriteMeta(ctx context.Context, stamp string) error {
	err := c.updateMeta(ctx, stamp)
	if err == nil {
		return nil
	}

	// The meta tab may not exist yet; create it and retry once.
	addReq := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			AddSheet: &sheets.AddSheetRequest{
				Properties: &sheets.SheetProperties{Title: c.metaTable},
			},
		}},
	}
	if _, addErr := c.svc.Spreadsheets.BatchUpdate(c.sheetID, addReq).Context(ctx).Do(); addErr != nil {
		return fmt.Errorf("failed to write meta stamp: %w", err)
	}
	return c.updateMeta(ctx, stamp)
}

func (c *Client) updateMeta(ctx context.Context, stamp string) error {
	vr := &sheets.ValueRange{Values: [][]any{{"last_updated", stamp}}}
	_, err := c.svc.Spreadsheets.Values.
		Update(c.sheetID, c.metaTable+"!A1:B1", vr).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to update meta cell: %w", err)
	}
	return nil
}
