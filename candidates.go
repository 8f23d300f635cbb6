// Package popbench compares two ways of removing a key from a map and
// falling back to a default when the key is absent.
package popbench

import (
	"errors"
	"fmt"
)

// TargetKey is the key both candidates try to remove.
const TargetKey = "a"

// ErrKeyNotFound is returned by the removal primitive when the key is missing.
var ErrKeyNotFound = errors.New("key not found")

// Mapping is the key-value structure the candidates operate on.
type Mapping map[string]any

// Result is the outcome of a candidate call: the removed value, or the
// absence marker (the zero Result).
type Result struct {
	Value any
	Found bool
}

// String renders the absence marker as None.
func (r Result) String() string {
	if !r.Found {
		return "None"
	}
	return fmt.Sprint(r.Value)
}

// Candidate is a named pop-with-default implementation.
// Extra arguments from the runner are forwarded to Pop.
type Candidate struct {
	Name string
	Pop  func(m Mapping, args ...any) Result
}

// pop removes key from m and returns its value, or ErrKeyNotFound.
func pop(m Mapping, key string) (any, error) {
	v, ok := m[key]
	if !ok {
		return nil, fmt.Errorf("pop %q: %w", key, ErrKeyNotFound)
	}
	delete(m, key)
	return v, nil
}

// PopTry unconditionally attempts to remove TargetKey and recovers from
// ErrKeyNotFound by returning the absence marker.
//
// Any present key is removed, including one holding a falsy value such as 0.
// PopGet does not remove those; see its doc.
func PopTry(m Mapping, _ ...any) Result {
	v, err := pop(m, TargetKey)
	if errors.Is(err, ErrKeyNotFound) {
		return Result{}
	}
	return Result{Value: v, Found: true}
}

// PopGet looks TargetKey up first and removes it only when its value is truthy.
//
// A present key whose value is falsy (0, "", false, nil, empty collection)
// is treated as absent and left in the map. This differs from PopTry and is
// kept deliberately: both idioms are measured as they are written in practice.
func PopGet(m Mapping, _ ...any) Result {
	if !Truthy(m[TargetKey]) {
		return Result{}
	}
	v, _ := pop(m, TargetKey) //nolint:errcheck // presence checked by Truthy
	return Result{Value: v, Found: true}
}

var (
	// TryCandidate wraps PopTry for the runner.
	TryCandidate = Candidate{Name: "pop_try", Pop: PopTry}
	// GetCandidate wraps PopGet for the runner.
	GetCandidate = Candidate{Name: "get_pop", Pop: PopGet}
)
