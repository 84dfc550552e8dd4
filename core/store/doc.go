// Package store provides an abstraction layer for the remote spreadsheet
// that backs the dashboard.
//
// The backing data lives in three logical tables (Inventory, Orders, Map)
// plus a single metadata cell holding a last_updated stamp. Every write is
// a full-table overwrite: clear, then header, then rows. There is no
// per-row update and no transaction spanning tables; concurrent sessions
// race at table granularity with last-writer-wins semantics.
//
// # Store Interface
//
// The Store interface abstracts the backend, making it easy to mock
// persistence for unit testing (see core/store/mocks).
//
// # Backends
//
//   - sheets: a Google Sheets spreadsheet via the Sheets API v4.
//   - xlsx: an excelize workbook on local disk or in an object-storage bucket.
//   - memory: an in-process store for tests and demo mode.
//
// # Caching
//
// NewCached wraps any Store with a TTL read cache (singleflight-collapsed)
// so dashboard refreshes do not hammer the remote service. Saves invalidate
// the affected table.
package store
