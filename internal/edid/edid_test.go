package edid

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/s0up4200/go-edidinfo/internal/cta"
)

var dtd1080p = []byte{
	0x02, 0x3A, 0x80, 0x18, 0x71, 0x38, 0x2D, 0x40, 0x58,
	0x2C, 0x45, 0x00, 0x50, 0x2D, 0x31, 0x00, 0x00, 0x1E,
}

func fixChecksum(block []byte) {
	var sum byte
	for _, b := range block[:BlockSize-1] {
		sum += b
	}
	block[BlockSize-1] = -sum
}

// newEDID builds a base block for "DEL" product 0x4321 followed by the given
// extension blocks.
func newEDID(extensions ...[]byte) []byte {
	base := make([]byte, BlockSize)
	copy(base, fixedHeader)
	base[8], base[9] = 0x10, 0xAC
	base[10], base[11] = 0x21, 0x43
	base[12] = 0x01
	base[16], base[17] = 12, 30
	base[18], base[19] = 1, 3
	copy(base[54:], dtd1080p)
	copy(base[72:], []byte{0, 0, 0, descriptorProductName, 0, 'T', 'E', 'S', 'T', '\n', ' ', ' ', ' ', ' ', ' ', ' ', ' ', ' '})
	copy(base[90:], []byte{0, 0, 0, descriptorProductSerial, 0, 'A', 'B', 'C', '1', '2', '3', '\n', ' ', ' ', ' ', ' ', ' ', ' '})
	copy(base[108:], []byte{0, 0, 0, 0x10, 0})
	base[extensionCountOffset] = byte(len(extensions))
	fixChecksum(base)

	out := base
	for _, ext := range extensions {
		out = append(out, ext...)
	}
	return out
}

func newCTA(dtdStart byte) []byte {
	block := make([]byte, BlockSize)
	block[0] = cta.ExtensionTag
	block[1] = 3
	block[2] = dtdStart
	fixChecksum(block)
	return block
}

func TestParse_BaseBlock(t *testing.T) {
	e, err := Parse(newEDID(), Options{})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if e.Version != 1 || e.Revision != 3 {
		t.Fatalf("version=%d.%d want 1.3", e.Version, e.Revision)
	}
	if e.ManufacturerID != "DEL" || e.ProductCode != 0x4321 || e.SerialNumber != 1 {
		t.Fatalf("got id=%q product=0x%x serial=%d", e.ManufacturerID, e.ProductCode, e.SerialNumber)
	}
	if e.ManufactureWeek != 12 || e.ManufactureYear != 2020 {
		t.Fatalf("got week=%d year=%d", e.ManufactureWeek, e.ManufactureYear)
	}
	if e.ProductName != "TEST" || e.ProductSerial != "ABC123" {
		t.Fatalf("got name=%q serial=%q", e.ProductName, e.ProductSerial)
	}
	if len(e.DetailedTimingDefs) != 1 || e.DetailedTimingDefs[0].HorizActive != 1920 {
		t.Fatalf("detailed timings=%+v", e.DetailedTimingDefs)
	}
	if len(e.Extensions) != 0 || e.ExtensionCount != 0 {
		t.Fatalf("unexpected extensions: %+v", e.Extensions)
	}
	if len(e.Diagnostics()) != 0 {
		t.Fatalf("unexpected diagnostics: %q", e.Diagnostics())
	}
}

func TestParse_CTAExtension(t *testing.T) {
	e, err := Parse(newEDID(newCTA(4), newCTA(0)), Options{})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(e.Extensions) != 2 {
		t.Fatalf("extensions=%d want 2", len(e.Extensions))
	}
	for i, ext := range e.Extensions {
		if ext.Index != i+1 || ext.Tag != cta.ExtensionTag || ext.CTA == nil {
			t.Fatalf("idx=%d got %+v", i, ext)
		}
	}
	if got := len(e.CTA()); got != 2 {
		t.Fatalf("CTA()=%d want 2", got)
	}
}

func TestParse_SoftComplaints(t *testing.T) {
	tests := []struct {
		name   string
		mutate func([]byte) []byte
		diag   string
	}{
		{
			name:   "base checksum",
			mutate: func(d []byte) []byte { d[BlockSize-1]++; return d },
			diag:   "Block 0: Checksum is",
		},
		{
			name:   "extension checksum",
			mutate: func(d []byte) []byte { d[2*BlockSize-1]++; return d },
			diag:   "Block 1: Checksum is",
		},
		{
			name: "extension count",
			mutate: func(d []byte) []byte {
				d[extensionCountOffset] = 2
				fixChecksum(d[:BlockSize])
				return d
			},
			diag: "Extension count is 2, but 1 extension blocks are present.",
		},
		{
			name: "unsupported extension",
			mutate: func(d []byte) []byte {
				d[BlockSize] = 0x70
				fixChecksum(d[BlockSize:])
				return d
			},
			diag: "Block 1: Unsupported extension block tag 0x70.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := tt.mutate(newEDID(newCTA(4)))
			e, err := Parse(data, Options{})
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			found := slices.ContainsFunc(e.Diagnostics(), func(s string) bool {
				return strings.Contains(s, tt.diag)
			})
			if !found {
				t.Fatalf("diagnostics=%q want %q", e.Diagnostics(), tt.diag)
			}
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{name: "empty", data: nil},
		{name: "partial block", data: newEDID()[:100]},
		{name: "trailing bytes", data: append(newEDID(), 0)},
		{name: "bad header", data: func() []byte { d := newEDID(); d[1] = 0; return d }()},
		{name: "version 2", data: func() []byte { d := newEDID(); d[18] = 2; return d }()},
		{name: "broken base timing", data: func() []byte { d := newEDID(); d[56] = 0; d[58] = 0; return d }()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := Parse(tt.data, Options{})
			if !errors.Is(err, ErrInvalid) {
				t.Fatalf("err=%v want ErrInvalid", err)
			}
			if e != nil {
				t.Fatalf("expected no partial result")
			}
		})
	}
}

func TestParse_CTAFailurePropagates(t *testing.T) {
	_, err := Parse(newEDID(newCTA(2)), Options{})
	if !errors.Is(err, ErrInvalid) || !errors.Is(err, cta.ErrInvalid) {
		t.Fatalf("err=%v want both edid and cta ErrInvalid", err)
	}
}

func TestDecodeManufacturerID(t *testing.T) {
	tests := []struct {
		hi, lo byte
		want   string
	}{
		{0x10, 0xAC, "DEL"},
		{0x4C, 0x2D, "SAM"},
		{0x1E, 0x6D, "GSM"},
	}
	for _, tt := range tests {
		if got := decodeManufacturerID(tt.hi, tt.lo); got != tt.want {
			t.Fatalf("0x%02x%02x: got %q want %q", tt.hi, tt.lo, got, tt.want)
		}
	}
}
