package logger

import (
	"context"
	"sync"
)

// Recorder keeps every entry in memory. Tests install it with SetLogger to
// assert on what a handler logged.
type Recorder struct {
	mu      sync.Mutex
	entries []LogEntry
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Log(_ context.Context, entry LogEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entry)
}

func (r *Recorder) Shutdown(context.Context) error { return nil }

func (r *Recorder) Entries() []LogEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]LogEntry(nil), r.entries...)
}

// Find returns the last entry logged with message.
func (r *Recorder) Find(message string) (LogEntry, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := len(r.entries) - 1; i >= 0; i-- {
		if r.entries[i].Message == message {
			return r.entries[i], true
		}
	}
	return LogEntry{}, false
}
