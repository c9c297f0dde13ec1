package progress

import (
	"fmt"
	"io"
	"time"
)

// Stopwatch measures the consecutive phases of one build: reading the
// listing, sorting entries, structuring the tree. A Stopwatch belongs to a
// single goroutine; concurrent builds each keep their own.
type Stopwatch struct {
	last  time.Time
	spans []span
}

type span struct {
	label   string
	elapsed time.Duration
}

// NewStopwatch starts timing from now.
func NewStopwatch() *Stopwatch {
	return &Stopwatch{last: time.Now()}
}

// Mark closes the running phase under the given label, starts the next one,
// and returns the phase duration.
func (s *Stopwatch) Mark(label string) time.Duration {
	now := time.Now()
	elapsed := now.Sub(s.last)
	s.last = now
	s.spans = append(s.spans, span{label: label, elapsed: elapsed})
	return elapsed
}

// Report writes one line per recorded phase plus a total.
func (s *Stopwatch) Report(w io.Writer) {
	var total time.Duration
	for _, sp := range s.spans {
		total += sp.elapsed
		fmt.Fprintf(w, "  %-12s %s\n", sp.label+":", formatDuration(sp.elapsed))
	}
	fmt.Fprintf(w, "  %-12s %s\n", "total:", formatDuration(total))
}

// formatDuration renders durations in milliseconds for easy comparison
// across phases.
func formatDuration(d time.Duration) string {
	return fmt.Sprintf("%.2f ms", float64(d.Nanoseconds())/1e6)
}
