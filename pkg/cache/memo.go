package cache

import (
	"container/list"
	"sync"
)

type memoEntry[K comparable, V any] struct {
	key   K
	value V
}

// Stats reports cumulative cache activity.
type Stats struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// Memo is a thread-safe LRU cache for memoized values.
// When the cache reaches its capacity, the least recently used entry is evicted.
type Memo[K comparable, V any] struct {
	capacity int
	items    map[K]*list.Element
	order    *list.List
	stats    Stats
	mu       sync.Mutex
}

// NewMemo creates a memo cache holding at most capacity entries.
// The capacity must be positive, otherwise it panics.
func NewMemo[K comparable, V any](capacity int) *Memo[K, V] {
	if capacity <= 0 {
		panic("memo cache capacity must be positive")
	}
	return &Memo[K, V]{
		capacity: capacity,
		items:    make(map[K]*list.Element, capacity),
		order:    list.New(),
	}
}

// Get returns the memoized value for key and marks it as recently used.
func (m *Memo[K, V]) Get(key K) (V, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if elem, ok := m.items[key]; ok {
		m.order.MoveToFront(elem)
		m.stats.Hits++
		return elem.Value.(*memoEntry[K, V]).value, true
	}

	m.stats.Misses++
	var zero V
	return zero, false
}

// Put stores value under key, evicting the least recently used entry when
// the cache is full.
func (m *Memo[K, V]) Put(key K, value V) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if elem, ok := m.items[key]; ok {
		m.order.MoveToFront(elem)
		elem.Value.(*memoEntry[K, V]).value = value
		return
	}

	m.items[key] = m.order.PushFront(&memoEntry[K, V]{key: key, value: value})

	if m.order.Len() > m.capacity {
		m.evictOldest()
	}
}

// GetOrCompute returns the memoized value for key, calling compute and
// storing its result on a miss.
func (m *Memo[K, V]) GetOrCompute(key K, compute func(K) V) V {
	if v, ok := m.Get(key); ok {
		return v
	}
	v := compute(key)
	m.Put(key, v)
	return v
}

// Len returns the number of entries currently held.
func (m *Memo[K, V]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.order.Len()
}

// Stats returns a snapshot of the hit, miss and eviction counters.
func (m *Memo[K, V]) Stats() Stats {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stats
}

// Must be called with lock held.
func (m *Memo[K, V]) evictOldest() {
	elem := m.order.Back()
	if elem == nil {
		return
	}
	m.order.Remove(elem)
	delete(m.items, elem.Value.(*memoEntry[K, V]).key)
	m.stats.Evictions++
}
