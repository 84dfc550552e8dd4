package store

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// cacheEntry holds one cached table snapshot.
type cacheEntry struct {
	rows    []Row
	fetched time.Time
}

func (e *cacheEntry) expired(ttl time.Duration) bool {
	return time.Since(e.fetched) > ttl
}

// metaEntry holds the cached last_updated stamp.
type metaEntry struct {
	stamp   string
	fetched time.Time
}

// Cached is a read-through TTL cache over a Store.
//
// Loads are collapsed with singleflight so a burst of dashboard refreshes
// performs a single remote read per table. A successful save invalidates
// the saved table immediately so the next read observes the write.
type Cached struct {
	inner Store
	ttl   time.Duration

	mu     sync.RWMutex
	tables map[string]*cacheEntry
	meta   *metaEntry
	sf     singleflight.Group
}

// NewCached wraps inner with a TTL read cache. A non-positive ttl returns
// inner unchanged.
func NewCached(inner Store, ttl time.Duration) Store {
	if ttl <= 0 {
		return inner
	}
	return &Cached{
		inner:  inner,
		ttl:    ttl,
		tables: make(map[string]*cacheEntry),
	}
}

func (c *Cached) LoadTable(ctx context.Context, name string) ([]Row, error) {
	c.mu.RLock()
	entry, ok := c.tables[name]
	c.mu.RUnlock()
	if ok && !entry.expired(c.ttl) {
		return CloneRows(entry.rows), nil
	}

	result, err, _ := c.sf.Do("table:"+name, func() (any, error) {
		c.mu.RLock()
		entry, ok := c.tables[name]
		c.mu.RUnlock()
		if ok && !entry.expired(c.ttl) {
			return entry.rows, nil
		}

		rows, err := c.inner.LoadTable(ctx, name)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.tables[name] = &cacheEntry{rows: CloneRows(rows), fetched: time.Now()}
		c.mu.Unlock()
		return rows, nil
	})
	if err != nil {
		return nil, err
	}
	return CloneRows(result.([]Row)), nil
}

func (c *Cached) SaveTable(ctx context.Context, name string, header []string, rows []Row) error {
	if err := c.inner.SaveTable(ctx, name, header, rows); err != nil {
		return err
	}
	c.Invalidate(name)
	return nil
}

func (c *Cached) ReadMeta(ctx context.Context) (string, error) {
	c.mu.RLock()
	entry := c.meta
	c.mu.RUnlock()
	if entry != nil && time.Since(entry.fetched) <= c.ttl {
		return entry.stamp, nil
	}

	result, err, _ := c.sf.Do("meta", func() (any, error) {
		stamp, err := c.inner.ReadMeta(ctx)
		if err != nil {
			return "", err
		}
		c.mu.Lock()
		c.meta = &metaEntry{stamp: stamp, fetched: time.Now()}
		c.mu.Unlock()
		return stamp, nil
	})
	if err != nil {
		return "", err
	}
	return result.(string), nil
}

func (c *Cached) WriteMeta(ctx context.Context, stamp string) error {
	if err := c.inner.WriteMeta(ctx, stamp); err != nil {
		return err
	}
	c.mu.Lock()
	c.meta = &metaEntry{stamp: stamp, fetched: time.Now()}
	c.mu.Unlock()
	return nil
}

// Invalidate drops the cached snapshot of one table.
func (c *Cached) Invalidate(name string) {
	c.mu.Lock()
	delete(c.tables, name)
	c.mu.Unlock()
}

// InvalidateAll drops every cached snapshot, forcing fresh reads.
func (c *Cached) InvalidateAll() {
	c.mu.Lock()
	c.tables = make(map[string]*cacheEntry)
	c.meta = nil
	c.mu.Unlock()
}
