package store

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// LRU wraps hashicorp/golang-lru.
type LRU struct {
	c *lru.Cache[string, int]
}

// NewLRU returns an LRU holding at most size entries.
func NewLRU(size int) (*LRU, error) {
	c, err := lru.New[string, int](size)
	if err != nil {
		return nil, fmt.Errorf("lru: %w", err)
	}
	return &LRU{c: c}, nil
}

// Get uses Peek so lookups do not change recency.
func (s *LRU) Get(key string) (int, bool) { return s.c.Peek(key) }

func (s *LRU) Set(key string, value int) { s.c.Add(key, value) }

// Take peeks then removes; Remove alone does not return the value.
func (s *LRU) Take(key string) (int, error) {
	v, ok := s.c.Peek(key)
	if !ok {
		return 0, ErrNotFound
	}
	s.c.Remove(key)
	return v, nil
}

func (s *LRU) Close() { s.c.Purge() }
