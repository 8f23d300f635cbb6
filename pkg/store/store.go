// Package store adapts in-memory cache libraries to a common keyed-store
// interface so pop-with-default idioms can be compared across them.
package store

import (
	"errors"
	"fmt"
)

// Key is the key TryPop and CheckPop remove.
const Key = "a"

var (
	// ErrNotFound is returned by Take when the key is absent.
	ErrNotFound = errors.New("key not found")
	// ErrUnknownBackend is returned by New for an unregistered name.
	ErrUnknownBackend = errors.New("unknown backend")
)

// Store is a string-keyed store of int values.
type Store interface {
	// Get looks key up without removing it.
	Get(key string) (int, bool)

	// Set stores value under key. Once Set returns, Get observes the value.
	Set(key string, value int)

	// Take removes key and returns its value, or ErrNotFound.
	Take(key string) (int, error)

	// Close releases background resources, if any.
	Close()
}

// Backends lists the registered store names in display order.
var Backends = []string{"map", "lru", "otter", "ristretto", "tinylfu", "freecache"}

// New returns an empty store of the named backend sized for at least size entries.
func New(name string, size int) (Store, error) {
	switch name {
	case "map":
		return NewMap(size), nil
	case "lru":
		s, err := NewLRU(size)
		if err != nil {
			return nil, err
		}
		return s, nil
	case "otter":
		return NewOtter(size), nil
	case "ristretto":
		s, err := NewRistretto(size)
		if err != nil {
			return nil, err
		}
		return s, nil
	case "tinylfu":
		return NewTinyLFU(size), nil
	case "freecache":
		return NewFreecache(size), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
	}
}

// TryPop attempts to take Key and maps ErrNotFound to absence.
// Any present key is removed, including one holding 0.
// Other store errors are returned unchanged.
func TryPop(s Store) (int, bool, error) {
	v, err := s.Take(Key)
	if errors.Is(err, ErrNotFound) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return v, true, nil
}

// CheckPop removes Key only when it is present and non-zero.
// A key holding 0 is left in place, unlike TryPop.
func CheckPop(s Store) (int, bool, error) {
	if v, ok := s.Get(Key); !ok || v == 0 {
		return 0, false, nil
	}
	v, err := s.Take(Key)
	if err != nil {
		return 0, false, err
	}
	return v, true, nil
}
