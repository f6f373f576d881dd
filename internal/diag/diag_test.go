package diag

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestLog_Add(t *testing.T) {
	l := New(3, nil)
	l.Add("Offset is %d, but should be %d.", 10, 12)
	got := l.Entries()
	if len(got) != 1 || got[0] != "Offset is 10, but should be 12." {
		t.Fatalf("entries=%q", got)
	}
}

func TestLog_AddBefore(t *testing.T) {
	tests := []struct {
		name     string
		revision int
		want     int
	}{
		{name: "older revision", revision: 2, want: 1},
		{name: "same revision", revision: 3, want: 1},
		{name: "newer revision", revision: 4, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New(tt.revision, nil)
			l.AddBefore(3, "Unknown VIC %d.", 0)
			if l.Len() != tt.want {
				t.Fatalf("len=%d want=%d", l.Len(), tt.want)
			}
		})
	}
}

func TestLog_MirrorsToLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	l := New(3, logger)
	l.Add("Padding: Contains non-zero bytes.")
	if !strings.Contains(buf.String(), "Padding: Contains non-zero bytes.") {
		t.Fatalf("logger output missing complaint: %q", buf.String())
	}
	if !strings.Contains(buf.String(), "revision=3") {
		t.Fatalf("logger output missing revision attr: %q", buf.String())
	}
}

func TestLog_ZeroValue(t *testing.T) {
	var l Log
	if l.Entries() != nil {
		t.Fatalf("zero Log should have no entries")
	}
	l.Add("x")
	if l.Len() != 1 {
		t.Fatalf("len=%d want=1", l.Len())
	}
}
