package store

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/coocood/freecache"
)

// freecache rounds smaller sizes up to this.
const minFreecacheBytes = 512 * 1024

// Freecache wraps coocood/freecache. Values are stored as 8-byte little endian.
type Freecache struct {
	c *freecache.Cache
}

// NewFreecache returns a Freecache sized for about size small entries.
func NewFreecache(size int) *Freecache {
	n := size * 256
	if n < minFreecacheBytes {
		n = minFreecacheBytes
	}
	return &Freecache{c: freecache.NewCache(n)}
}

func (s *Freecache) Get(key string) (int, bool) {
	v, err := s.c.Get([]byte(key))
	if err != nil || len(v) != 8 {
		return 0, false
	}
	return int(int64(binary.LittleEndian.Uint64(v))), true
}

func (s *Freecache) Set(key string, value int) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(int64(value)))
	_ = s.c.Set([]byte(key), buf[:], 0) //nolint:errcheck // only fails for oversized entries
}

// Take translates freecache.ErrNotFound into ErrNotFound.
func (s *Freecache) Take(key string) (int, error) {
	k := []byte(key)
	v, err := s.c.Get(k)
	if errors.Is(err, freecache.ErrNotFound) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("freecache get %q: %w", key, err)
	}
	if len(v) != 8 {
		return 0, fmt.Errorf("freecache get %q: value is %d bytes, want 8", key, len(v))
	}
	s.c.Del(k)
	return int(int64(binary.LittleEndian.Uint64(v))), nil
}

func (s *Freecache) Close() { s.c.Clear() }
