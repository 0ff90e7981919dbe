// Package memory implements the in-process map backend for the prototype
// registry. It is the default backend: no query engine, no allocation beyond
// the map, process-scoped lifetime.
package memory

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/dukaforge/swatch/pkg/types"
)

var _ types.Registry = (*Registry)(nil)

// Registry stores prototypes in a map guarded by a RWMutex. The core design
// is single-caller and sequential; the guard is the external synchronization
// required once the registry is shared across CLI plumbing.
type Registry struct {
	mu     sync.RWMutex
	closed bool
	colors map[string]*types.Color
}

// NewRegistry creates an empty memory registry.
func NewRegistry() *Registry {
	return &Registry{
		colors: make(map[string]*types.Color),
	}
}

// Set inserts a prototype under key. When key is empty a UUID v7 is
// generated. Returns ErrDuplicateKey if the key is already present; the
// stored entry is untouched on failure.
func (r *Registry) Set(key string, c *types.Color) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return "", types.ErrRegistryClosed
	}
	if c == nil {
		return "", types.ErrInvalidColor
	}

	if key == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return "", fmt.Errorf("generating UUID v7: %w", err)
		}
		key = id.String()
	} else if strings.TrimSpace(key) == "" {
		return "", types.ErrInvalidKey
	}

	if _, ok := r.colors[key]; ok {
		return "", types.ErrDuplicateKey
	}
	r.colors[key] = c
	return key, nil
}

// Get returns the registered prototype for key, a handle to the stored
// instance rather than a copy. Returns ErrKeyNotFound if absent.
func (r *Registry) Get(key string) (*types.Color, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.closed {
		return nil, types.ErrRegistryClosed
	}
	if key == "" {
		return nil, types.ErrInvalidKey
	}

	c, ok := r.colors[key]
	if !ok {
		return nil, types.ErrKeyNotFound
	}
	return c, nil
}

// Keys returns the registered keys in sorted order.
func (r *Registry) Keys() ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.closed {
		return nil, types.ErrRegistryClosed
	}

	keys := make([]string, 0, len(r.colors))
	for k := range r.colors {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

// Close releases the backing map. Idempotent.
func (r *Registry) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.closed = true
	r.colors = nil
	return nil
}
