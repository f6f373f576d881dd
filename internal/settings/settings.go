package settings

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// Report formats.
const (
	FormatText = "text"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Settings mirrors the edidinfo options.
type Settings struct {
	Format          string `yaml:"format"`
	ShowDiagnostics bool   `yaml:"show_diagnostics"`
	ShowUncommon    bool   `yaml:"show_uncommon"`
	// ReportFileName is "-" for stdout. "{0}" is replaced with the input's
	// base name.
	ReportFileName string `yaml:"report_file_name"`
	LogLevel       string `yaml:"log_level"`
}

func Default() Settings {
	return Settings{
		Format:          FormatText,
		ShowDiagnostics: true,
		ShowUncommon:    false,
		ReportFileName:  "-",
		LogLevel:        "info",
	}
}

// Load reads a YAML settings file over the defaults. Keys missing from the
// file keep their default value.
func Load(path string) (Settings, error) {
	s := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("read settings: %w", err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parse settings %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return s, fmt.Errorf("settings %s: %w", path, err)
	}
	return s, nil
}

// Validate checks enumerated fields.
func (s Settings) Validate() error {
	switch s.Format {
	case FormatText, FormatYAML, FormatJSON:
	default:
		return fmt.Errorf("unknown format %q", s.Format)
	}
	if _, err := s.Level(); err != nil {
		return err
	}
	if s.ReportFileName == "" {
		return errors.New("report file name is empty")
	}
	return nil
}

// Level parses LogLevel.
func (s Settings) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s.LogLevel)
	}
	return level, nil
}
