package storage

import (
	"context"
	"sync"
	"time"

	"overcooked-menu/menu-svc/internal/domain"
	"overcooked-menu/menu-svc/internal/service"
)

type memoryEntry struct {
	version   domain.VersionPointer
	createdAt time.Time
}

// MemoryVersionCache is an in-process VersionCache for single-instance
// deployments without Redis. Entries older than TTL are treated as absent
// and are swept on writes, at most once per TTL.
type MemoryVersionCache struct {
	TTL time.Duration
	Now func() time.Time

	mu        sync.RWMutex
	entries   map[string]memoryEntry
	lastSweep time.Time
}

func NewMemoryVersionCache(ttl time.Duration) *MemoryVersionCache {
	return &MemoryVersionCache{
		TTL:     ttl,
		Now:     time.Now,
		entries: map[string]memoryEntry{},
	}
}

func (c *MemoryVersionCache) Get(_ context.Context, key string) (*domain.VersionPointer, bool, error) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}

	if c.Now().Sub(entry.createdAt) >= c.TTL {
		c.mu.Lock()
		if current, still := c.entries[key]; still && current.createdAt.Equal(entry.createdAt) {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		return nil, false, nil
	}

	version := entry.version
	return &version, true, nil
}

func (c *MemoryVersionCache) Put(_ context.Context, key string, version domain.VersionPointer) error {
	now := c.Now()
	c.mu.Lock()
	if now.Sub(c.lastSweep) >= c.TTL {
		c.sweep(now)
	}
	c.entries[key] = memoryEntry{version: version, createdAt: now}
	c.mu.Unlock()
	return nil
}

// sweep must be called with mu held.
func (c *MemoryVersionCache) sweep(now time.Time) {
	for key, entry := range c.entries {
		if now.Sub(entry.createdAt) >= c.TTL {
			delete(c.entries, key)
		}
	}
	c.lastSweep = now
}

func (c *MemoryVersionCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
	return nil
}

func (c *MemoryVersionCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

var _ service.VersionCache = (*MemoryVersionCache)(nil)
