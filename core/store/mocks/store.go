package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"inventory-dashboard/core/store"
)

// Store is a mock implementation of store.Store
type Store struct {
	mock.Mock
}

func (m *Store) LoadTable(ctx context.Context, name string) ([]store.Row, error) {
	args := m.Called(ctx, name)
	if rows, ok := args.Get(0).([]store.Row); ok {
		return rows, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Store) SaveTable(ctx context.Context, name string, header []string, rows []store.Row) error {
	args := m.Called(ctx, name, header, rows)
	return args.Error(0)
}

func (m *Store) ReadMeta(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *Store) WriteMeta(ctx context.Context, stamp string) error {
	args := m.Called(ctx, stamp)
	return args.Error(0)
}
