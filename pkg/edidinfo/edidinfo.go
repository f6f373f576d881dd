// Package edidinfo decodes EDID blobs, including their CTA-861 extension
// blocks, and renders edid-decode style reports.
package edidinfo

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/s0up4200/go-edidinfo/internal/cta"
	"github.com/s0up4200/go-edidinfo/internal/edid"
	"github.com/s0up4200/go-edidinfo/internal/report"
	internalsettings "github.com/s0up4200/go-edidinfo/internal/settings"
)

// Object model.
type (
	EDID             = edid.EDID
	Extension        = edid.Extension
	ExtensionBlock   = cta.ExtensionBlock
	DataBlock        = cta.DataBlock
	UncommonFeatures = report.UncommonFeatures
)

var (
	// ErrInvalidEDID matches every rejected input.
	ErrInvalidEDID = edid.ErrInvalid
	// ErrInvalidExtension matches malformed CTA-861 extension blocks.
	ErrInvalidExtension = cta.ErrInvalid
)

// Report formats.
const (
	FormatText = internalsettings.FormatText
	FormatYAML = internalsettings.FormatYAML
	FormatJSON = internalsettings.FormatJSON
)

// Stage represents a coarse progress stage for Run.
type Stage string

const (
	StageStarting        Stage = "starting"
	StageRead            Stage = "read"
	StageDecoded         Stage = "decoded"
	StageRenderingReport Stage = "rendering_report"
	StageDone            Stage = "done"
)

// ProgressEvent is emitted when Run transitions between major phases.
type ProgressEvent struct {
	Stage       Stage
	Path        string
	Bytes       int
	Blocks      int
	Diagnostics int
	Elapsed     time.Duration
	OccurredAt  time.Time
}

// Settings are library-facing report controls.
type Settings struct {
	Format          string
	ShowDiagnostics bool
	ShowUncommon    bool
	ReportFileName  string
}

// DefaultSettings returns library defaults equivalent to CLI defaults.
func DefaultSettings() Settings {
	return fromInternalSettings(internalsettings.Default())
}

// Options configure one Run call.
type Options struct {
	// Path names the EDID file. "-" reads Input instead.
	Path string
	// Input is read when Path is "-". Defaults to os.Stdin.
	Input      io.Reader
	ReportPath string
	Settings   Settings
	OnProgress func(ProgressEvent)
	// Logger receives decoder diagnostics at debug level.
	Logger *slog.Logger
}

// Result contains the decoded EDID plus rendered report content.
type Result struct {
	EDID       *EDID
	Uncommon   UncommonFeatures
	Report     string
	ReportPath string
}

// Run decodes one EDID and returns the object model plus report content.
// The API does not write files; callers own output persistence behavior.
func Run(ctx context.Context, options Options) (Result, error) {
	if options.Path == "" {
		return Result{}, errors.New("path is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	start := time.Now()
	emit(options.OnProgress, ProgressEvent{
		Stage:      StageStarting,
		Path:       options.Path,
		OccurredAt: time.Now(),
	})

	data, err := readInput(options)
	if err != nil {
		return Result{}, err
	}
	emit(options.OnProgress, ProgressEvent{
		Stage:      StageRead,
		Path:       options.Path,
		Bytes:      len(data),
		Blocks:     len(data) / edid.BlockSize,
		OccurredAt: time.Now(),
	})

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	e, err := edid.Parse(data, edid.Options{Logger: options.Logger})
	if err != nil {
		return Result{}, err
	}
	emit(options.OnProgress, ProgressEvent{
		Stage:       StageDecoded,
		Path:        options.Path,
		Bytes:       len(data),
		Blocks:      len(e.Extensions) + 1,
		Diagnostics: countDiagnostics(e),
		Elapsed:     time.Since(start),
		OccurredAt:  time.Now(),
	})

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	emit(options.OnProgress, ProgressEvent{
		Stage:      StageRenderingReport,
		Path:       options.Path,
		OccurredAt: time.Now(),
	})
	cfg := toInternalSettings(options.Settings)
	text, uncommon, err := report.Render(e, cfg)
	if err != nil {
		return Result{}, err
	}

	result := Result{
		EDID:       e,
		Uncommon:   uncommon,
		Report:     text,
		ReportPath: report.ResolvePath(options.ReportPath, options.Path, cfg),
	}

	emit(options.OnProgress, ProgressEvent{
		Stage:      StageDone,
		Path:       options.Path,
		Elapsed:    time.Since(start),
		OccurredAt: time.Now(),
	})

	return result, nil
}

// Parse decodes an EDID blob without rendering a report.
func Parse(data []byte) (*EDID, error) {
	return edid.Parse(data, edid.Options{})
}

// ParseExtension decodes a single 128-byte CTA-861 extension block.
func ParseExtension(data []byte) (*ExtensionBlock, error) {
	return cta.Parse(data, cta.Options{})
}

func emit(cb func(ProgressEvent), event ProgressEvent) {
	if cb != nil {
		cb(event)
	}
}

func countDiagnostics(e *EDID) int {
	n := len(e.Diagnostics())
	for _, ext := range e.CTA() {
		n += len(ext.Diagnostics())
	}
	return n
}

func readInput(options Options) ([]byte, error) {
	var (
		raw []byte
		err error
	)
	if options.Path == "-" {
		in := options.Input
		if in == nil {
			in = os.Stdin
		}
		raw, err = io.ReadAll(in)
	} else {
		raw, err = os.ReadFile(options.Path)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", options.Path, err)
	}
	return DecodeInput(raw)
}

// DecodeInput accepts a raw EDID blob or a hex dump of one. Hex dumps may
// carry "0x" prefixes, trailing commas, an offset column ("0010:" or
// hexdump -C style) and a trailing ASCII column.
func DecodeInput(raw []byte) ([]byte, error) {
	if len(raw) > 0 && len(raw)%edid.BlockSize == 0 && raw[0] == 0x00 && raw[1] == 0xFF {
		return raw, nil
	}

	var digits strings.Builder
	offsets := false
	for _, line := range strings.Split(string(raw), "\n") {
		fields := strings.Fields(line)
		for i, f := range fields {
			fields[i] = trimHexPrefix(strings.TrimSuffix(f, ","))
		}
		if len(fields) > 1 && len(fields[0]) > 2 && isHex(fields[0]) && len(fields[1]) == 2 && isHex(fields[1]) {
			offsets = true
			fields = fields[1:]
		} else if offsets && len(fields) == 1 {
			// hexdump -C closes with a bare offset.
			continue
		}
		digits.WriteString(hexFields(fields))
	}

	data, err := hex.DecodeString(digits.String())
	if err == nil && len(data) == 0 {
		err = errors.New("no hex bytes found")
	}
	if err != nil {
		return nil, fmt.Errorf("%w: input is neither binary EDID nor hex: %w", ErrInvalidEDID, err)
	}
	return data, nil
}

// hexFields returns the hex digits of one dump line. Leading labels and
// offsets ending in ':' are skipped and the first other non-hex field ends
// the line. A line that starts with single bytes only takes single bytes.
func hexFields(fields []string) string {
	var b strings.Builder
	spaced := false
	for _, f := range fields {
		if strings.HasSuffix(f, ":") {
			if b.Len() == 0 {
				continue
			}
			break
		}
		if !isHex(f) || (spaced && len(f) != 2) {
			break
		}
		if b.Len() == 0 {
			spaced = len(f) == 2
		}
		b.WriteString(f)
	}
	return b.String()
}

func trimHexPrefix(s string) string {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return s[2:]
	}
	return s
}

func isHex(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !('0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F') {
			return false
		}
	}
	return true
}

func fromInternalSettings(s internalsettings.Settings) Settings {
	return Settings{
		Format:          s.Format,
		ShowDiagnostics: s.ShowDiagnostics,
		ShowUncommon:    s.ShowUncommon,
		ReportFileName:  s.ReportFileName,
	}
}

func toInternalSettings(s Settings) internalsettings.Settings {
	out := internalsettings.Default()
	out.Format = s.Format
	out.ShowDiagnostics = s.ShowDiagnostics
	out.ShowUncommon = s.ShowUncommon
	if s.ReportFileName != "" {
		out.ReportFileName = s.ReportFileName
	}
	return out
}
