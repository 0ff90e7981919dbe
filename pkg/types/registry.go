package types

import "errors"

// Registry is a keyed store of named Color prototypes. Callers query it for
// a prototype to copy; the registry never copies on their behalf.
type Registry interface {
	// Set inserts a prototype under key and returns the key actually used.
	// When key is empty a new UUID v7 is generated. Returns ErrDuplicateKey
	// if the key is already present; the existing entry is left untouched.
	Set(key string, c *Color) (string, error)

	// Get returns the stored prototype for key. The result is a handle to
	// the registered instance, not a copy; callers wanting an independent
	// object must invoke a copy operation on it. Returns ErrKeyNotFound if
	// the key is absent.
	Get(key string) (*Color, error)

	// Keys returns the registered keys in sorted order.
	Keys() ([]string, error)

	// Close releases backend resources. Idempotent: multiple calls succeed.
	// After Close, Set, Get, and Keys return ErrRegistryClosed.
	Close() error
}

// Registry operation errors.
var (
	ErrDuplicateKey   = errors.New("key already registered")
	ErrKeyNotFound    = errors.New("key not found")
	ErrInvalidKey     = errors.New("invalid key")
	ErrInvalidColor   = errors.New("color must not be nil")
	ErrRegistryClosed = errors.New("registry is closed")
)

// ErrCopyUnsupported reports a copy operation whose duplication mechanism
// cannot represent the record's current state. Unreachable for the
// scalar-only Color, but part of the copy contract.
var ErrCopyUnsupported = errors.New("copy mechanism cannot represent value")
