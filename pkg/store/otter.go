package store

import "github.com/maypok86/otter/v2"

// Otter wraps maypok86/otter.
type Otter struct {
	c *otter.Cache[string, int]
}

// NewOtter returns an Otter bounded to size entries.
func NewOtter(size int) *Otter {
	return &Otter{c: otter.Must(&otter.Options[string, int]{MaximumSize: size})}
}

func (s *Otter) Get(key string) (int, bool) { return s.c.GetIfPresent(key) }

func (s *Otter) Set(key string, value int) { s.c.Set(key, value) }

// Take relies on Invalidate returning the removed value.
func (s *Otter) Take(key string) (int, error) {
	v, ok := s.c.Invalidate(key)
	if !ok {
		return 0, ErrNotFound
	}
	return v, nil
}

func (s *Otter) Close() { s.c.InvalidateAll() }
