package store

import (
	"fmt"

	"github.com/dgraph-io/ristretto"
)

// Ristretto wraps dgraph-io/ristretto. Sets are buffered by the library,
// so Set waits for the write to be applied.
type Ristretto struct {
	c *ristretto.Cache
}

// NewRistretto returns a Ristretto with capacity for size unit-cost entries.
func NewRistretto(size int) (*Ristretto, error) {
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters:        int64(size * 10),
		MaxCost:            int64(size),
		BufferItems:        64,
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, fmt.Errorf("ristretto: %w", err)
	}
	return &Ristretto{c: c}, nil
}

func (s *Ristretto) Get(key string) (int, bool) {
	v, ok := s.c.Get(key)
	if !ok {
		return 0, false
	}
	n, ok := v.(int)
	return n, ok
}

func (s *Ristretto) Set(key string, value int) {
	s.c.Set(key, value, 1)
	s.c.Wait()
}

func (s *Ristretto) Take(key string) (int, error) {
	v, ok := s.Get(key)
	if !ok {
		return 0, ErrNotFound
	}
	s.c.Del(key)
	return v, nil
}

func (s *Ristretto) Close() { s.c.Close() }
