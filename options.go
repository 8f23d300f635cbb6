package popbench

import (
	"io"
	"os"
	"time"
)

const (
	// DefaultVerbosity prints the full summary for every run.
	DefaultVerbosity = 2
	// DefaultIterations is the batch size used when none is given.
	DefaultIterations = 10_000_000
)

// Clock supplies timestamps for a run.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

// Now returns time.Now, which carries a monotonic reading.
func (systemClock) Now() time.Time { return time.Now() }

// config holds the settings for a single Run.
type config struct {
	out        io.Writer
	clock      Clock
	args       []any
	iterations int
	verbosity  int
}

func defaultConfig() *config {
	return &config{
		out:        os.Stdout,
		clock:      systemClock{},
		iterations: DefaultIterations,
		verbosity:  DefaultVerbosity,
	}
}

// Option configures a Run.
type Option func(*config)

// WithIterations sets how many copies of the template are popped.
func WithIterations(n int) Option {
	return func(c *config) {
		c.iterations = n
	}
}

// WithVerbosity sets the report level: 0 silent, 1 one line, 2 or more full summary.
func WithVerbosity(v int) Option {
	return func(c *config) {
		c.verbosity = v
	}
}

// WithOutput sets where reports are written. Default is os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		c.out = w
	}
}

// WithArgs sets extra arguments forwarded to the candidate on every call.
func WithArgs(args ...any) Option {
	return func(c *config) {
		c.args = args
	}
}

// WithClock replaces the timing source.
func WithClock(clk Clock) Option {
	return func(c *config) {
		c.clock = clk
	}
}
