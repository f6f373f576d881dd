package settings

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "edidinfo.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write settings: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	s := Default()
	if err := s.Validate(); err != nil {
		t.Fatalf("Default().Validate() error = %v", err)
	}
	if s.Format != FormatText || s.ReportFileName != "-" || !s.ShowDiagnostics {
		t.Fatalf("unexpected defaults: %+v", s)
	}
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeFile(t, "format: yaml\nshow_uncommon: true\nlog_level: debug\n")
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if s.Format != FormatYAML || !s.ShowUncommon {
		t.Fatalf("got %+v", s)
	}
	// Untouched keys keep defaults.
	if !s.ShowDiagnostics || s.ReportFileName != "-" {
		t.Fatalf("defaults lost: %+v", s)
	}
	level, err := s.Level()
	if err != nil || level != slog.LevelDebug {
		t.Fatalf("Level()=%v, %v want debug", level, err)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "bad yaml", body: "format: [text\n"},
		{name: "unknown format", body: "format: xml\n"},
		{name: "unknown level", body: "log_level: chatty\n"},
		{name: "empty report name", body: "report_file_name: \"\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeFile(t, tt.body)); err == nil {
				t.Fatalf("expected error")
			}
		})
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
