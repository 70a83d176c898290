package app

import (
	"sync"
	"time"
)

// RateMeter tracks the ingest rate (lines/sec) over a trailing 1-second
// window, for ApplicationState.rate_meter (spec.md §4.9 step 3).
//
// Grounded on eviltik-docker-tui's LogRateTracker (ratetracker.go),
// generalized from one tracker per container to the single global
// tracker spec.md's data model calls for, since bark's rate meter
// measures ingest across every source combined.
type RateMeter struct {
	mu         sync.Mutex
	timestamps []time.Time
	lastUpdate time.Time
}

// maxTrackedLines bounds memory even under a pathological burst; the
// sliding window is only ever queried for its length, so a burst beyond
// this cap simply reports a floor rate rather than growing unbounded.
const maxTrackedLines = 5000

// NewRateMeter creates an empty meter.
func NewRateMeter() *RateMeter { return &RateMeter{} }

// Record marks one ingested line at the current time.
func (r *RateMeter) Record(now time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastUpdate = now
	r.timestamps = prune(r.timestamps, now)

	if len(r.timestamps) >= maxTrackedLines {
		drop := maxTrackedLines / 4
		r.timestamps = append(r.timestamps[:0], r.timestamps[drop:]...)
	}
	r.timestamps = append(r.timestamps, now)
}

// Rate returns the number of lines recorded in the trailing 1-second
// window as of now. It reports 0 once the meter has been idle for more
// than 2s, so a quiet pane doesn't show a stale nonzero rate.
func (r *RateMeter) Rate(now time.Time) float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.lastUpdate.IsZero() || now.Sub(r.lastUpdate) > 2*time.Second {
		return 0
	}
	r.timestamps = prune(r.timestamps, now)
	return float64(len(r.timestamps))
}

func prune(timestamps []time.Time, now time.Time) []time.Time {
	cutoff := now.Add(-time.Second)
	i := 0
	for i < len(timestamps) && !timestamps[i].After(cutoff) {
		i++
	}
	if i == 0 {
		return timestamps
	}
	return append(timestamps[:0], timestamps[i:]...)
}
