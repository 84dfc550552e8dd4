package store

import "context"

// Row is a single spreadsheet row keyed by header-derived column name.
// Missing columns are absent from the map; table codecs are responsible
// for filling type-appropriate defaults.
type Row map[string]string

// Store defines the interface for the spreadsheet persistence boundary.
// All writes are full-table overwrites: SaveTable clears existing content
// and writes header plus rows, so two concurrent sessions race at table
// granularity (last writer wins).
type Store interface {
	// LoadTable returns all rows of the named table.
	LoadTable(ctx context.Context, name string) ([]Row, error)
	// SaveTable overwrites the named table with header + rows.
	SaveTable(ctx context.Context, name string, header []string, rows []Row) error
	// ReadMeta returns the last_updated stamp from the metadata cell,
	// or empty string if it was never written.
	ReadMeta(ctx context.Context) (string, error)
	// WriteMeta records the last_updated stamp in the metadata cell.
	WriteMeta(ctx context.Context, stamp string) error
}

// CloneRows deep-copies a row set so cached or stored snapshots cannot be
// mutated through aliasing.
func CloneRows(rows []Row) []Row {
	if rows == nil {
		return nil
	}
	out := make([]Row, len(rows))
	for i, r := range rows {
		c := make(Row, len(r))
		for k, v := range r {
			c[k] = v
		}
		out[i] = c
	}
	return out
}
