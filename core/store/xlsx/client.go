package xlsx

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"

	"inventory-dashboard/core/store"
)

// Config holds configuration for the xlsx workbook backend.
type Config struct {
	// Path is the local workbook path, used when Endpoint is empty.
	Path string
	// Endpoint, AccessKey, SecretKey, UseSSL, Bucket and Object describe
	// the object-storage location of the workbook.
	Endpoint       string
	AccessKey      string
	SecretKey      string
	UseSSL         bool
	Bucket         string
	Object         string
	TimeoutSeconds int
	// MetaTable is the sheet holding the last_updated cell.
	MetaTable string
}

// source abstracts where the workbook bytes live (local disk or a bucket).
type source interface {
	open(ctx context.Context) (*excelize.File, error)
	write(ctx context.Context, f *excelize.File) error
}

// Client is a store.Store backed by a single xlsx workbook.
// Each logical table is a sheet whose first row is the header. Every
// operation reads or rewrites the whole workbook, which matches the
// full-snapshot semantics of the persistence boundary.
type Client struct {
	src       source
	metaTable string
}

// NewClient creates a workbook-backed store. With an object-storage
// endpoint configured the workbook is fetched and stored as one object;
// otherwise it lives at the configured local path.
func NewClient(cfg Config) (*Client, error) {
	var src source
	if cfg.Endpoint != "" {
		obj, err := newObjectSource(cfg)
		if err != nil {
			return nil, err
		}
		src = obj
	} else {
		src = &localSource{path: cfg.Path}
	}
	return &Client{src: src, metaTable: cfg.MetaTable}, nil
}

func (c *Client) LoadTable(ctx context.Context, name string) ([]store.Row, error) {
	f, err := c.src.open(ctx)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	raw, err := f.GetRows(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", name, err)
	}
	if len(raw) == 0 {
		return nil, nil
	}

	header := make([]string, len(raw[0]))
	for i, col := range raw[0] {
		header[i] = strings.TrimSpace(col)
	}

	rows := make([]store.Row, 0, len(raw)-1)
	for _, cells := range raw[1:] {
		row := make(store.Row, len(header))
		blank := true
		for i, col := range header {
			if col == "" {
				continue
			}
			var val string
			if i < len(cells) {
				val = cells[i]
			}
			if strings.TrimSpace(val) != "" {
				blank = false
			}
			row[col] = val
		}
		if blank {
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (c *Client) SaveTable(ctx context.Context, name string, header []string, rows []store.Row) error {
	f, err := c.src.open(ctx)
	if err != nil {
		return err
	}
	defer f.Close()

	// Overwrite semantics: drop the sheet entirely and rebuild it.
	if idx, _ := f.GetSheetIndex(name); idx >= 0 {
		if err := f.DeleteSheet(name); err != nil {
			return fmt.Errorf("failed to clear sheet %s: %w", name, err)
		}
	}
	if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", name, err)
	}

	headerRow := make([]any, len(header))
	for i, col := range header {
		headerRow[i] = col
	}
	if err := f.SetSheetRow(name, "A1", &headerRow); err != nil {
		return fmt.Errorf("failed to write header of %s: %w", name, err)
	}
	for i, row := range rows {
		cells := make([]any, len(header))
		for j, col := range header {
			cells[j] = row[col]
		}
		addr, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(name, addr, &cells); err != nil {
			return fmt.Errorf("failed to write row %d of %s: %w", i+2, name, err)
		}
	}

	return c.src.write(ctx, f)
}

func (c *Client) ReadMeta(ctx context.Context) (string, error) {
	f, err := c.src.open(ctx)
	if err != nil {
		return "", err
	}
	defer f.Close()

	val, err := f.GetCellValue(c.metaTable, "B1")
	if err != nil {
		// Missing meta sheet means the stamp was never written.
		return "", nil
	}
	return strings.TrimSpace(val), nil
}

func (c *Client) WriteMeta(ctx context.Context, stamp string) error {
	f, err := c.src.open(ctx)
	if err != nil {
		return err
	}
	defer f.Close()

	if idx, _ := f.GetSheetIndex(c.metaTable); idx < 0 {
		if _, err := f.NewSheet(c.metaTable); err != nil {
			return fmt.Errorf("failed to create meta sheet: %w", err)
		}
	}
	if err := f.SetCellValue(c.metaTable, "A1", "last_updated"); err != nil {
		return fmt.Errorf("failed to write meta key: %w", err)
	}
	if err := f.SetCellValue(c.metaTable, "B1", stamp); err != nil {
		return fmt.Errorf("failed to write meta stamp: %w", err)
	}
	return c.src.write(ctx, f)
}

// localSource reads and writes the workbook on local disk.
// A missing file opens as a fresh workbook so first use needs no setup.
type localSource struct {
	path string
}

func (s *localSource) open(context.Context) (*excelize.File, error) {
	f, err := excelize.OpenFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return excelize.NewFile(), nil
		}
		return nil, fmt.Errorf("failed to open workbook %s: %w", s.path, err)
	}
	return f, nil
}

func (s *localSource) write(_ context.Context, f *excelize.File) error {
	if err := f.SaveAs(s.path); err != nil {
		return fmt.Errorf("failed to save workbook %s: %w", s.path, err)
	}
	return nil
}
