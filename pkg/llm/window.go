package llm

import (
	"sync"
	"time"
)

// slidingWindows tracks per-agent call timestamps over a rolling window.
// In-memory only; windows do not survive process restart.
type slidingWindows struct {
	mu      sync.Mutex
	window  time.Duration
	byAgent map[string][]time.Time
}

func newSlidingWindows(window time.Duration) *slidingWindows {
	return &slidingWindows{
		window:  window,
		byAgent: make(map[string][]time.Time),
	}
}

// allow reports whether the agent is under limit at now. It prunes expired
// timestamps but does not record — recording happens only when the call is
// actually issued.
func (w *slidingWindows) allow(agentID string, limit int, now time.Time) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	pruned := w.prune(agentID, now)
	return len(pruned) < limit
}

// record appends a call timestamp for the agent.
func (w *slidingWindows) record(agentID string, now time.Time) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.byAgent[agentID] = append(w.prune(agentID, now), now)
}

// prune drops timestamps older than the window. Caller holds the lock.
func (w *slidingWindows) prune(agentID string, now time.Time) []time.Time {
	cutoff := now.Add(-w.window)
	stamps := w.byAgent[agentID]
	kept := stamps[:0]
	for _, ts := range stamps {
		if ts.After(cutoff) {
			kept = append(kept, ts)
		}
	}
	w.byAgent[agentID] = kept
	return kept
}
