package memory

import (
	"context"
	"fmt"
	"sync"

	"inventory-dashboard/core/store"
)

type table struct {
	header []string
	rows   []store.Row
}

// Store is an in-process spreadsheet store.
// It is used by tests and by the demo mode of the server; it honors the
// same whole-table overwrite semantics as the remote backends.
type Store struct {
	mu     sync.Mutex
	tables map[string]*table
	meta   string

	// FailSaves maps table names to errors that the next SaveTable call
	// should return, for exercising partial-commit paths in tests.
	FailSaves map[string]error
	// FailMeta makes WriteMeta fail when set.
	FailMeta error
}

// New returns an empty in-memory store.
func New() *Store {
	return &Store{tables: make(map[string]*table)}
}

// Seed replaces the named table without overwrite bookkeeping.
func (s *Store) Seed(name string, header []string, rows []store.Row) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tables[name] = &table{header: append([]string(nil), header...), rows: store.CloneRows(rows)}
}

func (s *Store) LoadTable(_ context.Context, name string) ([]store.Row, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tables[name]
	if !ok {
		return nil, fmt.Errorf("table %s not found", name)
	}
	return store.CloneRows(t.rows), nil
}

func (s *Store) SaveTable(_ context.Context, name string, header []string, rows []store.Row) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.FailSaves[name]; err != nil {
		return err
	}
	s.tables[name] = &table{header: append([]string(nil), header...), rows: store.CloneRows(rows)}
	return nil
}

func (s *Store) ReadMeta(context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.meta, nil
}

func (s *Store) WriteMeta(_ context.Context, stamp string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailMeta != nil {
		return s.FailMeta
	}
	s.meta = stamp
	return nil
}

// Header returns the saved header of the named table, for round-trip checks.
func (s *Store) Header(name string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.tables[name]; ok {
		return append([]string(nil), t.header...)
	}
	return nil
}
