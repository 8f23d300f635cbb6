package popbench

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
)

// Scenario is one fixed benchmark run.
type Scenario struct {
	Template  Mapping
	Title     string
	Candidate Candidate
}

// Scenarios returns the four runs in order: key absent then key present,
// each for PopTry and PopGet.
func Scenarios() []Scenario {
	return []Scenario{
		{Title: "Pop (try/recover, None)", Candidate: TryCandidate, Template: Mapping{"b": 123}},
		{Title: "Get+Pop (get, None)", Candidate: GetCandidate, Template: Mapping{"b": 123}},
		{Title: "Pop (try/recover, 123)", Candidate: TryCandidate, Template: Mapping{"a": 123}},
		{Title: "Get+Pop (get, 123)", Candidate: GetCandidate, Template: Mapping{"a": 123}},
	}
}

// RunScenarios runs every scenario in order, writing titles and reports to w.
// It stops at the first error.
func RunScenarios(w io.Writer, opts ...Option) ([]Measurement, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.verbosity >= 2 {
		if _, err := fmt.Fprintf(w, "--------- RUNNING ---------\n"+
			"---------------------------\n"+
			"- Iterations: %s\n"+
			"---------------------------\n\n", humanize.Comma(int64(cfg.iterations))); err != nil {
			return nil, err
		}
	}

	// Output goes to w regardless of what opts said.
	opts = append(opts[:len(opts):len(opts)], WithOutput(w))

	var out []Measurement
	for _, s := range Scenarios() {
		if _, err := fmt.Fprintln(w, s.Title); err != nil {
			return out, err
		}
		m, err := Run(s.Candidate, s.Template, opts...)
		if err != nil {
			return out, fmt.Errorf("%s: %w", s.Title, err)
		}
		out = append(out, m)
	}
	return out, nil
}
