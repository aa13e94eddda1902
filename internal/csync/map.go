package csync

import "sync"

// Map is a thread-safe map. When created with a limit it evicts the
// oldest inserted key once the limit is exceeded.
type Map[K comparable, V any] struct {
	data  map[K]V
	order []K
	limit int
	mu    sync.RWMutex
}

// NewMap creates an unbounded map
func NewMap[K comparable, V any]() *Map[K, V] {
	return NewBoundedMap[K, V](0)
}

// NewBoundedMap creates a map holding at most limit keys. A limit <= 0
// means unbounded.
func NewBoundedMap[K comparable, V any](limit int) *Map[K, V] {
	return &Map[K, V]{
		data:  make(map[K]V),
		limit: limit,
	}
}

// Set stores a value, evicting the oldest key if the map is full
func (m *Map[K, V]) Set(key K, value V) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.data[key]; !exists {
		m.order = append(m.order, key)
	}
	m.data[key] = value

	for m.limit > 0 && len(m.order) > m.limit {
		oldest := m.order[0]
		m.order = m.order[1:]
		delete(m.data, oldest)
	}
}

// Get retrieves a value by key
func (m *Map[K, V]) Get(key K) (V, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, exists := m.data[key]
	return value, exists
}

// Delete removes a key
func (m *Map[K, V]) Delete(key K) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.data[key]; !exists {
		return
	}
	delete(m.data, key)
	for i, k := range m.order {
		if k == key {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
}

// Len returns the number of keys
func (m *Map[K, V]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}

// Clear removes every key
func (m *Map[K, V]) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = make(map[K]V)
	m.order = nil
}
