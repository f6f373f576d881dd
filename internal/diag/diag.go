// Package diag accumulates advisory complaints raised while decoding.
package diag

import (
	"context"
	"fmt"
	"log/slog"
)

// Log collects human-readable specification violations. It never aborts a
// parse. A zero Log is ready to use.
type Log struct {
	// Revision is the revision of the block being decoded; AddBefore compares
	// against it.
	Revision int
	// Logger, when set, receives every complaint at debug level.
	Logger *slog.Logger

	entries []string
}

// New returns a Log for a block with the given revision.
func New(revision int, logger *slog.Logger) *Log {
	return &Log{Revision: revision, Logger: logger}
}

// Add appends a complaint unconditionally.
func (l *Log) Add(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	l.entries = append(l.entries, msg)
	if l.Logger != nil {
		l.Logger.LogAttrs(context.Background(), slog.LevelDebug, msg, slog.Int("revision", l.Revision))
	}
}

// AddBefore appends a complaint only while Revision <= maxRevision. Rules
// relaxed by later amendments use this.
func (l *Log) AddBefore(maxRevision int, format string, args ...any) {
	if l.Revision > maxRevision {
		return
	}
	l.Add(format, args...)
}

// Entries returns a copy of the collected complaints.
func (l *Log) Entries() []string {
	if len(l.entries) == 0 {
		return nil
	}
	out := make([]string, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of complaints.
func (l *Log) Len() int {
	return len(l.entries)
}
