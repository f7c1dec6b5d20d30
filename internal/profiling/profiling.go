package profiling

import (
	"strconv"
	"strings"
	"sync"
	"time"
)

// Startup stage timer. Stages keep the order in which they were first
// recorded so a summary reads like the pipeline did.

// Stage is one timed step.
type Stage struct {
	Name     string
	Duration time.Duration
}

var (
	mu     sync.Mutex
	order  []string
	totals = make(map[string]time.Duration)
)

// Track returns a stop function that records the elapsed time under name.
// Usage: defer profiling.Track("platform.extract")()
func Track(name string) func() {
	start := time.Now()
	return func() {
		d := time.Since(start)
		mu.Lock()
		if _, ok := totals[name]; !ok {
			order = append(order, name)
		}
		totals[name] += d
		mu.Unlock()
	}
}

// Reset forgets every recorded stage.
func Reset() {
	mu.Lock()
	order = nil
	for k := range totals {
		delete(totals, k)
	}
	mu.Unlock()
}

// Stages returns the recorded stages in first-recorded order.
func Stages() []Stage {
	mu.Lock()
	defer mu.Unlock()
	out := make([]Stage, 0, len(order))
	for _, name := range order {
		out = append(out, Stage{Name: name, Duration: totals[name]})
	}
	return out
}

// Total sums every recorded stage.
func Total() time.Duration {
	var sum time.Duration
	for _, s := range Stages() {
		sum += s.Duration
	}
	return sum
}

// Summary formats the stages, e.g. "platform.detect:0.1ms, backend.init:42.3ms".
func Summary() string {
	stages := Stages()
	parts := make([]string, 0, len(stages))
	for _, s := range stages {
		parts = append(parts, s.Name+":"+formatMs(s.Duration))
	}
	return strings.Join(parts, ", ")
}

// formatMs keeps one decimal and drops a trailing ".0".
func formatMs(d time.Duration) string {
	ms := float64(d.Microseconds()) / 1000.0
	s := strconv.FormatFloat(ms, 'f', 1, 64)
	return strings.TrimSuffix(s, ".0") + "ms"
}
