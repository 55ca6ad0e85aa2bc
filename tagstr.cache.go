package tagstr

import (
	"sync"

	"go.uber.org/zap"
)

// staticCache memoizes per-template static state by chunk-sequence
// identity. Entries hold the outcome of exactly one computeStatic run:
// a value or an error, whichever the first call produced. Failures are
// cached like successes, so a broken template fails the same way on
// every call without re-running user code.
//
// The table is bounded: when full, the oldest entry is evicted. This
// substitutes for a weak identity map, which Go does not offer for
// arbitrary keys; a template evicted under memory pressure is simply
// recomputed on next use.
type staticCache[T any] struct {
	mu        sync.RWMutex
	entries   map[uint64]*cacheEntry[T]
	evictList []uint64 // insertion-order eviction tracking
	config    CacheConfig
	stats     CacheStats
	logger    *zap.Logger
}

// cacheEntry holds one memoized static computation. once guards the
// computation so it runs at most once per identity even when two
// goroutines race on first use.
type cacheEntry[T any] struct {
	once  sync.Once
	value T
	err   error
}

// CacheStats tracks static cache performance counters.
type CacheStats struct {
	Hits       int64
	Misses     int64
	Bypasses   int64
	Evictions  int64
	EntryCount int
}

func newStaticCache[T any](config CacheConfig, logger *zap.Logger) *staticCache[T] {
	if config.MaxEntries == 0 {
		config.MaxEntries = DefaultMaxEntries
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &staticCache[T]{
		entries:   make(map[uint64]*cacheEntry[T]),
		evictList: make([]uint64, 0, config.MaxEntries),
		config:    config,
		logger:    logger,
	}
}

// do returns the memoized outcome for key, running compute at most once
// per key. The entry placeholder is inserted before computing, so a
// racing second caller blocks on the same sync.Once instead of
// computing again.
func (c *staticCache[T]) do(key uint64, compute func() (T, error)) (T, error) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if ok {
		c.mu.Lock()
		c.stats.Hits++
		c.mu.Unlock()
		c.logger.Debug(LogMsgCacheHit, zap.Uint64(LogFieldKey, key))
	} else {
		c.mu.Lock()
		if entry, ok = c.entries[key]; ok {
			// Lost the race: another caller inserted first.
			c.stats.Hits++
			c.mu.Unlock()
			c.logger.Debug(LogMsgCacheHit, zap.Uint64(LogFieldKey, key))
		} else {
			if len(c.entries) >= c.config.MaxEntries {
				c.evictOldest()
			}
			entry = &cacheEntry[T]{}
			c.entries[key] = entry
			c.evictList = append(c.evictList, key)
			c.stats.Misses++
			c.stats.EntryCount = len(c.entries)
			c.mu.Unlock()
			c.logger.Debug(LogMsgCacheMiss, zap.Uint64(LogFieldKey, key))
		}
	}

	entry.once.Do(func() {
		entry.value, entry.err = compute()
		if entry.err != nil {
			c.logger.Debug(LogMsgStaticFailed,
				zap.Uint64(LogFieldKey, key),
				zap.String(LogFieldError, entry.err.Error()))
		}
	})
	return entry.value, entry.err
}

// evictOldest removes the oldest entry. Caller must hold the write lock.
func (c *staticCache[T]) evictOldest() {
	if len(c.evictList) == 0 {
		return
	}
	oldest := c.evictList[0]
	c.evictList = c.evictList[1:]
	if _, ok := c.entries[oldest]; ok {
		delete(c.entries, oldest)
		c.stats.Evictions++
		c.stats.EntryCount = len(c.entries)
		c.logger.Debug(LogMsgCacheEviction, zap.Uint64(LogFieldKey, oldest))
	}
}

// recordBypass counts a cache-ineligible invocation.
func (c *staticCache[T]) recordBypass() {
	c.mu.Lock()
	c.stats.Bypasses++
	c.mu.Unlock()
	c.logger.Debug(LogMsgCacheBypass)
}

// snapshot returns a copy of the current counters.
func (c *staticCache[T]) snapshot() CacheStats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.stats
}

// purge drops every entry. Counters other than EntryCount survive.
func (c *staticCache[T]) purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[uint64]*cacheEntry[T])
	c.evictList = c.evictList[:0]
	c.stats.EntryCount = 0
	c.logger.Debug(LogMsgCachePurged, zap.Int(LogFieldEntries, 0))
}
