package app

import (
	"container/list"

	"driftwatch/domain/drift"
)

// resultCache memoizes detection results keyed by the order-sensitive
// fingerprint of the current-data array. LRU: looking an entry up
// refreshes it, inserting past capacity evicts the oldest.
type resultCache struct {
	capacity int
	order    *list.List               // front = most recently used
	entries  map[uint64]*list.Element // fingerprint -> order element
}

type cacheEntry struct {
	key    uint64
	result drift.Result
}

func newResultCache(capacity int) *resultCache {
	return &resultCache{
		capacity: capacity,
		order:    list.New(),
		entries:  make(map[uint64]*list.Element, capacity),
	}
}

func (c *resultCache) get(key uint64) (drift.Result, bool) {
	elem, ok := c.entries[key]
	if !ok {
		return drift.Result{}, false
	}
	c.order.MoveToFront(elem)
	return elem.Value.(*cacheEntry).result, true
}

func (c *resultCache) put(key uint64, result drift.Result) {
	if elem, ok := c.entries[key]; ok {
		elem.Value.(*cacheEntry).result = result
		c.order.MoveToFront(elem)
		return
	}

	c.entries[key] = c.order.PushFront(&cacheEntry{key: key, result: result})
	if c.order.Len() > c.capacity {
		oldest := c.order.Back()
		c.order.Remove(oldest)
		delete(c.entries, oldest.Value.(*cacheEntry).key)
	}
}

func (c *resultCache) len() int {
	return c.order.Len()
}
