// Package profiling keeps per-tick timing totals and event counters so slow ticks and
// frames can be logged with what they spent their time on.
package profiling

import (
	"cmp"
	"math"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"
)

var (
	mu          sync.Mutex
	frameTotals = make(map[string]time.Duration)
	counters    = make(map[string]uint64)
)

// Track returns a stop function that adds the elapsed time to name.
//
//	defer profiling.Track("storage.Save")()
func Track(name string) func() {
	start := time.Now()
	return func() {
		d := time.Since(start)
		mu.Lock()
		frameTotals[name] += d
		mu.Unlock()
	}
}

// ResetFrame clears the timing totals. The session calls it at the start of every tick.
func ResetFrame() {
	mu.Lock()
	clear(frameTotals)
	mu.Unlock()
}

// Count bumps a named event counter. Counters survive ResetFrame.
func Count(name string) {
	mu.Lock()
	counters[name]++
	mu.Unlock()
}

// Counter returns the current value of a counter.
func Counter(name string) uint64 {
	mu.Lock()
	defer mu.Unlock()
	return counters[name]
}

// ResetCounters zeroes every counter.
func ResetCounters() {
	mu.Lock()
	clear(counters)
	mu.Unlock()
}

// Snapshot returns a copy of the current timing totals.
func Snapshot() map[string]time.Duration {
	mu.Lock()
	defer mu.Unlock()
	out := make(map[string]time.Duration, len(frameTotals))
	for k, v := range frameTotals {
		out[k] = v
	}
	return out
}

type entry struct {
	name string
	dur  time.Duration
}

// TopN formats the n largest totals, longest first, as
// "container.Engine.Refresh:4.2ms, meshing.BuildChunk:2.1ms".
func TopN(n int) string {
	snap := Snapshot()
	list := make([]entry, 0, len(snap))
	for k, v := range snap {
		list = append(list, entry{name: k, dur: v})
	}
	slices.SortFunc(list, func(a, b entry) int {
		if c := cmp.Compare(b.dur, a.dur); c != 0 {
			return c
		}
		return strings.Compare(a.name, b.name)
	})

	var sb strings.Builder
	for i, e := range list[:max(0, min(n, len(list)))] {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(e.name)
		sb.WriteByte(':')
		sb.WriteString(formatMs(float64(e.dur.Microseconds()) / 1000))
	}
	return sb.String()
}

// formatMs truncates to one decimal and drops a trailing ".0".
func formatMs(ms float64) string {
	return strconv.FormatFloat(math.Floor(ms*10)/10, 'f', -1, 64) + "ms"
}
