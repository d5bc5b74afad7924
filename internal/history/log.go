// Package history keeps a bounded, append-only log of human-readable events.
// It is ephemeral: nothing here is persisted.
package history

import "time"

// DefaultCap matches the retention of the activity log when no cap is
// configured.
const DefaultCap = 1000

type Entry struct {
	At          time.Time `json:"at"`
	Description string    `json:"description"`
}

// Log retains at most cap entries, newest last, evicting the oldest first.
type Log struct {
	cap     int
	entries []Entry
	now     func() time.Time
}

func NewLog(cap int) *Log {
	if cap <= 0 {
		cap = DefaultCap
	}
	return &Log{cap: cap, now: time.Now}
}

// Record appends a timestamped entry, evicting the oldest entry once the cap
// is exceeded.
func (l *Log) Record(description string) {
	l.entries = append(l.entries, Entry{At: l.now(), Description: description})
	if len(l.entries) > l.cap {
		l.entries = l.entries[len(l.entries)-l.cap:]
	}
}

// Recent returns up to n entries, newest first.
func (l *Log) Recent(n int) []Entry {
	if n <= 0 {
		return []Entry{}
	}
	if n > len(l.entries) {
		n = len(l.entries)
	}
	out := make([]Entry, 0, n)
	for i := len(l.entries) - 1; i >= len(l.entries)-n; i-- {
		out = append(out, l.entries[i])
	}
	return out
}

// Len returns the number of retained entries.
func (l *Log) Len() int {
	return len(l.entries)
}
