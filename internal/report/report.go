package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/s0up4200/go-edidinfo/internal/cta"
	"github.com/s0up4200/go-edidinfo/internal/edid"
	"github.com/s0up4200/go-edidinfo/internal/settings"
)

// UncommonFeatures lists rarely seen features present in a decoded EDID.
type UncommonFeatures struct {
	TransferCharacteristics bool `yaml:"transfer_characteristics" json:"transfer_characteristics"`
}

// Any reports whether at least one uncommon feature was found.
func (u UncommonFeatures) Any() bool {
	return u.TransferCharacteristics
}

// DetectUncommon walks every CTA extension of e.
func DetectUncommon(e *edid.EDID) UncommonFeatures {
	var u UncommonFeatures
	for _, ext := range e.CTA() {
		for _, block := range ext.DataBlocks() {
			if block.Tag() == cta.DataBlockVESATransferCharacteristics {
				u.TransferCharacteristics = true
			}
		}
	}
	return u
}

// Render formats e according to s.Format.
func Render(e *edid.EDID, s settings.Settings) (string, UncommonFeatures, error) {
	uncommon := DetectUncommon(e)
	switch s.Format {
	case settings.FormatText, "":
		return renderText(e, s, uncommon), uncommon, nil
	case settings.FormatYAML:
		v, err := buildView(e, s, uncommon)
		if err != nil {
			return "", uncommon, fmt.Errorf("render yaml: %w", err)
		}
		out, err := yaml.Marshal(v)
		if err != nil {
			return "", uncommon, fmt.Errorf("render yaml: %w", err)
		}
		return string(out), uncommon, nil
	case settings.FormatJSON:
		v, err := buildView(e, s, uncommon)
		if err != nil {
			return "", uncommon, fmt.Errorf("render json: %w", err)
		}
		out, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return "", uncommon, fmt.Errorf("render json: %w", err)
		}
		return string(out) + "\n", uncommon, nil
	default:
		return "", uncommon, fmt.Errorf("unknown report format %q", s.Format)
	}
}

// ResolvePath picks the report destination. An explicit path wins over the
// configured report file name, whose "{0}" is replaced with the input's base
// name. "-" means stdout.
func ResolvePath(path, input string, s settings.Settings) string {
	if path != "" {
		return path
	}
	reportName := s.ReportFileName
	if reportName == "-" {
		return reportName
	}
	if strings.Contains(reportName, "{0}") {
		reportName = strings.ReplaceAll(reportName, "{0}", inputName(input))
	}

	ext := strings.ToLower(filepath.Ext(reportName))
	switch ext {
	case ".txt", ".yaml", ".yml", ".json":
	default:
		reportName += defaultExt(s.Format)
	}
	return reportName
}

func inputName(input string) string {
	if input == "" || input == "-" {
		return "stdin"
	}
	base := filepath.Base(input)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func defaultExt(format string) string {
	switch format {
	case settings.FormatYAML:
		return ".yaml"
	case settings.FormatJSON:
		return ".json"
	default:
		return ".txt"
	}
}

// WriteReport writes text to reportPath, or to stdout for "-". An existing
// file is renamed with a unix timestamp suffix first.
func WriteReport(stdout io.Writer, reportPath, text string) error {
	if reportPath == "-" {
		if _, err := io.WriteString(stdout, text); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		return nil
	}
	if _, err := os.Stat(reportPath); err == nil {
		backup := fmt.Sprintf("%s.%d", reportPath, time.Now().Unix())
		_ = os.Rename(reportPath, backup)
	}
	if err := os.WriteFile(reportPath, []byte(text), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
