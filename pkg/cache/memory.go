package cache

import (
	"container/list"
	"sync"

	"golang.org/x/sync/singleflight"
)

// entry holds a cached value with its key.
type entry[V any] struct {
	value V
	key   string
}

// Memory is an in-memory cache with optional LRU eviction when a maximum
// entry count is configured. Without a bound it only grows.
//
// It uses a hash map for O(1) lookups and a doubly-linked list for O(1)
// LRU eviction ordering. The most recently accessed items are at the
// front of the list; the least recently used are at the back.
type Memory[V any] struct {
	items    map[string]*list.Element
	eviction *list.List
	opts     *memoryOptions
	onEvict  func(key string, value V)
	group    singleflight.Group
	mu       sync.Mutex
}

// NewMemory creates a new in-memory cache.
//
// Example:
//
//	c := cache.NewMemory[*locale.Locale](
//	    cache.WithMaxEntries(1000),
//	)
func NewMemory[V any](opts ...MemoryOption) *Memory[V] {
	o := defaultMemoryOptions()
	for _, opt := range opts {
		opt(o)
	}

	return &Memory[V]{
		items:    make(map[string]*list.Element),
		eviction: list.New(),
		opts:     o,
	}
}

// SetEvictCallback sets a callback function that is called when items
// are evicted from the cache. This includes LRU eviction, manual deletion
// and clearing.
func (m *Memory[V]) SetEvictCallback(fn func(key string, value V)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onEvict = fn
}

// Get retrieves a value by key.
// Returns ErrNotFound if the key does not exist.
// Accessing a key marks it as recently used for LRU purposes.
func (m *Memory[V]) Get(key string) (V, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	elem, ok := m.items[key]
	if !ok {
		var zero V
		return zero, ErrNotFound
	}

	m.eviction.MoveToFront(elem)

	return elem.Value.(*entry[V]).value, nil
}

// Set stores a value, replacing any previous one.
func (m *Memory[V]) Set(key string, value V) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if elem, ok := m.items[key]; ok {
		elem.Value.(*entry[V]).value = value
		m.eviction.MoveToFront(elem)
		return
	}

	if m.opts.maxEntries > 0 && len(m.items) >= m.opts.maxEntries {
		m.evictOldest()
	}

	elem := m.eviction.PushFront(&entry[V]{key: key, value: value})
	m.items[key] = elem
}

// Delete removes a key from the cache.
func (m *Memory[V]) Delete(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if elem, ok := m.items[key]; ok {
		m.removeElement(elem)
	}
}

// Len returns the number of stored entries.
func (m *Memory[V]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.items)
}

// Clear removes all entries from the cache.
func (m *Memory[V]) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.onEvict != nil {
		for elem := m.eviction.Front(); elem != nil; elem = elem.Next() {
			e := elem.Value.(*entry[V])
			m.onEvict(e.key, e.value)
		}
	}

	m.items = make(map[string]*list.Element)
	m.eviction.Init()
}

// GetOrLoad returns the cached value for key, or calls load on a miss and
// stores its result. Concurrent misses for the same key share one load call,
// so every caller observes the same value. Failed loads are not stored.
func (m *Memory[V]) GetOrLoad(key string, load Loader[V]) (V, error) {
	if v, err := m.Get(key); err == nil {
		return v, nil
	}

	res, err, _ := m.group.Do(key, func() (any, error) {
		// Another caller may have stored the value between the fast path and Do.
		if v, err := m.Get(key); err == nil {
			return v, nil
		}
		v, err := load()
		if err != nil {
			return nil, err
		}
		m.Set(key, v)
		return v, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}

	v, ok := res.(V)
	if !ok {
		var zero V
		return zero, ErrUnexpectedValue
	}
	return v, nil
}

// evictOldest removes the least recently used entry.
// Caller must hold the mutex.
func (m *Memory[V]) evictOldest() {
	if elem := m.eviction.Back(); elem != nil {
		m.removeElement(elem)
	}
}

// removeElement removes a specific element and triggers the eviction callback.
// Caller must hold the mutex.
func (m *Memory[V]) removeElement(elem *list.Element) {
	m.eviction.Remove(elem)
	e := elem.Value.(*entry[V])
	delete(m.items, e.key)

	if m.onEvict != nil {
		m.onEvict(e.key, e.value)
	}
}

var _ Cache[any] = (*Memory[any])(nil)
