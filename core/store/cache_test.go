package store_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"inventory-dashboard/core/store"
	"inventory-dashboard/core/store/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCachedZeroTTLReturnsInner(t *testing.T) {
	inner := new(mocks.Store)
	assert.Same(t, store.Store(inner), store.NewCached(inner, 0))
}

func TestCachedLoadTable(t *testing.T) {
	ctx := context.Background()
	rows := []store.Row{{"Item": "6-String", "OnHand": "20"}}

	inner := new(mocks.Store)
	inner.On("LoadTable", ctx, "Inventory").Return(rows, nil)

	cached := store.NewCached(inner, time.Minute)

	for i := 0; i < 3; i++ {
		got, err := cached.LoadTable(ctx, "Inventory")
		require.NoError(t, err)
		assert.Equal(t, rows, got)
	}

	// All three reads within the TTL hit the backend once.
	inner.AssertNumberOfCalls(t, "LoadTable", 1)
}

func TestCachedLoadTableReturnsCopies(t *testing.T) {
	ctx := context.Background()
	inner := new(mocks.Store)
	inner.On("LoadTable", ctx, "Inventory").Return([]store.Row{{"OnHand": "20"}}, nil)

	cached := store.NewCached(inner, time.Minute)

	first, err := cached.LoadTable(ctx, "Inventory")
	require.NoError(t, err)
	first[0]["OnHand"] = "0"

	second, err := cached.LoadTable(ctx, "Inventory")
	require.NoError(t, err)
	assert.Equal(t, "20", second[0]["OnHand"])
}

func TestCachedLoadTableErrorNotCached(t *testing.T) {
	ctx := context.Background()
	inner := new(mocks.Store)
	inner.On("LoadTable", ctx, "Inventory").Return(nil, errors.New("network down")).Once()
	inner.On("LoadTable", ctx, "Inventory").Return([]store.Row{{"Item": "A"}}, nil).Once()

	cached := store.NewCached(inner, time.Minute)

	_, err := cached.LoadTable(ctx, "Inventory")
	require.Error(t, err)

	rows, err := cached.LoadTable(ctx, "Inventory")
	require.NoError(t, err)
	assert.Len(t, rows, 1)
	inner.AssertNumberOfCalls(t, "LoadTable", 2)
}

func TestCachedSaveInvalidates(t *testing.T) {
	ctx := context.Background()
	header := []string{"Item"}
	stale := []store.Row{{"Item": "old"}}
	fresh := []store.Row{{"Item": "new"}}

	inner := new(mocks.Store)
	inner.On("LoadTable", ctx, "Inventory").Return(stale, nil).Once()
	inner.On("SaveTable", ctx, "Inventory", header, fresh).Return(nil)
	inner.On("LoadTable", ctx, "Inventory").Return(fresh, nil).Once()

	cached := store.NewCached(inner, time.Minute)

	got, err := cached.LoadTable(ctx, "Inventory")
	require.NoError(t, err)
	assert.Equal(t, stale, got)

	require.NoError(t, cached.SaveTable(ctx, "Inventory", header, fresh))

	// The save dropped the cached snapshot, so this read goes to the backend.
	got, err = cached.LoadTable(ctx, "Inventory")
	require.NoError(t, err)
	assert.Equal(t, fresh, got)
	inner.AssertNumberOfCalls(t, "LoadTable", 2)
}

func TestCachedSaveErrorKeepsCache(t *testing.T) {
	ctx := context.Background()
	rows := []store.Row{{"Item": "A"}}

	inner := new(mocks.Store)
	inner.On("LoadTable", ctx, "Inventory").Return(rows, nil)
	inner.On("SaveTable", ctx, "Inventory", []string{"Item"}, rows).Return(errors.New("quota exceeded"))

	cached := store.NewCached(inner, time.Minute)

	_, err := cached.LoadTable(ctx, "Inventory")
	require.NoError(t, err)

	require.Error(t, cached.SaveTable(ctx, "Inventory", []string{"Item"}, rows))

	_, err = cached.LoadTable(ctx, "Inventory")
	require.NoError(t, err)
	inner.AssertNumberOfCalls(t, "LoadTable", 1)
}

func TestCachedMeta(t *testing.T) {
	ctx := context.Background()

	inner := new(mocks.Store)
	inner.On("ReadMeta", ctx).Return("2026-08-30 12:00:00 CDT", nil)
	inner.On("WriteMeta", ctx, "2026-08-30 13:00:00 CDT").Return(nil)

	cached := store.NewCached(inner, time.Minute)

	stamp, err := cached.ReadMeta(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2026-08-30 12:00:00 CDT", stamp)

	stamp, err = cached.ReadMeta(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2026-08-30 12:00:00 CDT", stamp)
	inner.AssertNumberOfCalls(t, "ReadMeta", 1)

	// A write refreshes the cached stamp without a backend read.
	require.NoError(t, cached.WriteMeta(ctx, "2026-08-30 13:00:00 CDT"))
	stamp, err = cached.ReadMeta(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2026-08-30 13:00:00 CDT", stamp)
	inner.AssertNumberOfCalls(t, "ReadMeta", 1)
}

func TestCachedInvalidateAll(t *testing.T) {
	ctx := context.Background()
	inner := new(mocks.Store)
	inner.On("LoadTable", ctx, "Orders").Return([]store.Row{{"LineId": "L1"}}, nil)

	cached := store.NewCached(inner, time.Minute)

	_, err := cached.LoadTable(ctx, "Orders")
	require.NoError(t, err)

	cached.(*store.Cached).InvalidateAll()

	_, err = cached.LoadTable(ctx, "Orders")
	require.NoError(t, err)
	inner.AssertNumberOfCalls(t, "LoadTable", 2)
}
