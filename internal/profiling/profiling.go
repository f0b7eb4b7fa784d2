// Package profiling accumulates per-tick wall time by task name.
package profiling

import (
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Tracker sums durations per name until Reset. Safe for concurrent use.
type Tracker struct {
	mu     sync.Mutex
	totals map[string]time.Duration
}

// New returns an empty tracker.
func New() *Tracker {
	return &Tracker{totals: make(map[string]time.Duration)}
}

// Track returns a stop function that records the elapsed time under name.
// Usage: defer tracker.Track("world.UpdateChunkLODs")()
// A nil tracker records nothing.
func (t *Tracker) Track(name string) func() {
	if t == nil {
		return func() {}
	}
	start := time.Now()
	return func() {
		d := time.Since(start)
		t.mu.Lock()
		t.totals[name] += d
		t.mu.Unlock()
	}
}

// Reset clears the totals. Call at the start of each tick.
func (t *Tracker) Reset() {
	t.mu.Lock()
	clear(t.totals)
	t.mu.Unlock()
}

// Snapshot returns a copy of the current totals.
func (t *Tracker) Snapshot() map[string]time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make(map[string]time.Duration, len(t.totals))
	for k, v := range t.totals {
		out[k] = v
	}
	return out
}

// TopN formats the n largest totals, longest first.
// Example: "world.UpdateChunkLODs:4.2ms, meshing.Extract:3.9ms"
func (t *Tracker) TopN(n int) string {
	ss := t.Snapshot()
	type pair struct {
		name string
		dur  time.Duration
	}
	list := make([]pair, 0, len(ss))
	for k, v := range ss {
		list = append(list, pair{name: k, dur: v})
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].dur != list[j].dur {
			return list[i].dur > list[j].dur
		}
		return list[i].name < list[j].name
	})
	n = min(max(n, 0), len(list))
	parts := make([]string, 0, n)
	for _, p := range list[:n] {
		parts = append(parts, p.name+":"+formatMs(p.dur))
	}
	return strings.Join(parts, ", ")
}

// formatMs keeps one decimal and drops a trailing ".0".
func formatMs(d time.Duration) string {
	ms := float64(d.Microseconds()) / 1000.0
	s := strconv.FormatFloat(ms, 'f', 1, 64)
	return strings.TrimSuffix(s, ".0") + "ms"
}
