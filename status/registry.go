// Package status collects session statistics shown in the status bar.
package status

import (
	"sync"
	"sync/atomic"
)

// Session metric keys
const (
	KeyScore     = "score"
	KeyKeys      = "keys"
	KeyHits      = "hits"
	KeyMisses    = "misses"
	KeyCleared   = "cleared"
	KeySpawned   = "spawned"
	KeyAbandoned = "abandoned"
	KeyLive      = "live"

	// KeyAccuracy holds hits per keystroke in basis points
	KeyAccuracy = "accuracy"

	KeySession = "session"
	KeyMode    = "mode"
)

// accuracyScale is one hundred percent in basis points
const accuracyScale = 10000

// metrics lazily creates one atomic cell per key
type metrics[T any] struct {
	mu    sync.RWMutex
	items map[string]*T
}

func newMetrics[T any]() *metrics[T] {
	return &metrics[T]{items: make(map[string]*T)}
}

// get returns the cell for key, creating it on first use
func (m *metrics[T]) get(key string) *T {
	m.mu.RLock()
	ptr, ok := m.items[key]
	m.mu.RUnlock()
	if ok {
		return ptr
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if ptr, ok := m.items[key]; ok {
		return ptr
	}
	ptr = new(T)
	m.items[key] = ptr
	return ptr
}

// Registry is the session statistics store.
// The game loop writes, the renderer and the exit summary read.
type Registry struct {
	ints    *metrics[atomic.Int64]
	strings *metrics[atomic.Value]
}

// NewRegistry creates an empty Registry
func NewRegistry() *Registry {
	return &Registry{
		ints:    newMetrics[atomic.Int64](),
		strings: newMetrics[atomic.Value](),
	}
}

// Add adds delta to an integer metric and returns the new value
func (r *Registry) Add(key string, delta int64) int64 {
	return r.ints.get(key).Add(delta)
}

// SetInt stores an integer metric
func (r *Registry) SetInt(key string, v int64) {
	r.ints.get(key).Store(v)
}

// Int loads an integer metric, 0 if never written
func (r *Registry) Int(key string) int64 {
	return r.ints.get(key).Load()
}

// SetString stores a string metric
func (r *Registry) SetString(key, v string) {
	r.strings.get(key).Store(v)
}

// String loads a string metric, "" if never written
func (r *Registry) String(key string) string {
	s, _ := r.strings.get(key).Load().(string)
	return s
}

// UpdateAccuracy recomputes the hit ratio from keys and hits and returns it
func (r *Registry) UpdateAccuracy() float64 {
	var bp int64
	if keys := r.Int(KeyKeys); keys > 0 {
		bp = r.Int(KeyHits) * accuracyScale / keys
	}
	r.SetInt(KeyAccuracy, bp)
	return float64(bp) / accuracyScale
}

// Accuracy returns the last computed hit ratio in [0, 1]
func (r *Registry) Accuracy() float64 {
	return float64(r.Int(KeyAccuracy)) / accuracyScale
}
