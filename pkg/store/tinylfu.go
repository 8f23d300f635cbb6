package store

import "github.com/vmihailenco/go-tinylfu"

// TinyLFU wraps vmihailenco/go-tinylfu.
type TinyLFU struct {
	c *tinylfu.T
}

// NewTinyLFU returns a TinyLFU holding about size entries.
func NewTinyLFU(size int) *TinyLFU {
	return &TinyLFU{c: tinylfu.New(size, size*10)}
}

func (s *TinyLFU) Get(key string) (int, bool) {
	v, ok := s.c.Get(key)
	if !ok {
		return 0, false
	}
	n, ok := v.(int)
	return n, ok
}

func (s *TinyLFU) Set(key string, value int) {
	s.c.Set(&tinylfu.Item{Key: key, Value: value})
}

func (s *TinyLFU) Take(key string) (int, error) {
	v, ok := s.Get(key)
	if !ok {
		return 0, ErrNotFound
	}
	s.c.Del(key)
	return v, nil
}

func (*TinyLFU) Close() {}
