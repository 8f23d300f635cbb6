package store

// Map is a plain Go map.
type Map struct {
	m map[string]int
}

// NewMap returns an empty Map with room for size entries.
func NewMap(size int) *Map {
	return &Map{m: make(map[string]int, size)}
}

func (s *Map) Get(key string) (int, bool) {
	v, ok := s.m[key]
	return v, ok
}

func (s *Map) Set(key string, value int) { s.m[key] = value }

func (s *Map) Take(key string) (int, error) {
	v, ok := s.m[key]
	if !ok {
		return 0, ErrNotFound
	}
	delete(s.m, key)
	return v, nil
}

// Close is a no-op.
func (*Map) Close() {}
