package popbench

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"
)

func report(cfg *config, template Mapping, m Measurement) error {
	switch {
	case cfg.verbosity <= 0:
		return nil
	case cfg.verbosity == 1:
		_, err := fmt.Fprintln(cfg.out, m.Iterations, "it", m.Name, m.Seconds(), "sec")
		return err
	default:
		return writeSummary(cfg.out, template, cfg.args, m)
	}
}

func writeSummary(w io.Writer, template Mapping, args []any, m Measurement) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Func: %s | obj: %s | args: %s | res: %s\n",
		m.Name, formatMapping(template), formatArgs(args), m.Last)
	fmt.Fprintf(&b, "Iterations: %d\n", m.Iterations)
	fmt.Fprintf(&b, "Time %.5f sec\n", m.Seconds())
	if tp := m.Throughput(); tp > 0 {
		fmt.Fprintf(&b, "It/sec: %.5f\n\n", tp)
	} else {
		b.WriteString("It/sec: n/a\n\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// formatMapping prints keys in sorted order so output is stable.
func formatMapping(m Mapping) string {
	if m == nil {
		return "None"
	}
	keys := slices.Sorted(maps.Keys(m))
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%q: %v", k, m[k])
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func formatArgs(args []any) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = fmt.Sprint(a)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
