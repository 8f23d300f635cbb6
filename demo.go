package popbench

import (
	"fmt"
	"io"
	"strings"
)

// Demonstrate walks through each candidate once on {"b": 1} and narrates
// what happened to the mapping.
func Demonstrate(w io.Writer) error {
	var b strings.Builder
	b.WriteString("--------- CONTEXT ---------\n")
	b.WriteString("---------------------------\n")

	steps := []struct {
		title string
		idiom string
		fn    func(Mapping, ...any) Result
	}{
		{"1. Pop", `pop "a" and recover from ErrKeyNotFound`, PopTry},
		{"2. Get+Pop", `look "a" up first, pop only if truthy`, PopGet},
	}
	for _, s := range steps {
		m := Mapping{"b": 1}
		fmt.Fprintln(&b, s.title)
		fmt.Fprintln(&b, "- Create obj:", formatMapping(m))
		fmt.Fprintf(&b, "- Running: %s, default None\n", s.idiom)
		res := s.fn(m)
		fmt.Fprintln(&b, "- After obj:", formatMapping(m))
		fmt.Fprintln(&b, "- Result:", res)
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}
