package edidinfo

import (
	"bytes"
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixChecksum(block []byte) {
	var sum byte
	for _, b := range block[:127] {
		sum += b
	}
	block[127] = -sum
}

// sampleEDID is a base block with one 1080p timing and an empty CTA block.
func sampleEDID() []byte {
	base := make([]byte, 128)
	copy(base, []byte{0x00, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x00})
	base[8], base[9] = 0x10, 0xAC
	base[18], base[19] = 1, 4
	copy(base[54:], []byte{
		0x02, 0x3A, 0x80, 0x18, 0x71, 0x38, 0x2D, 0x40, 0x58,
		0x2C, 0x45, 0x00, 0x50, 0x2D, 0x31, 0x00, 0x00, 0x1E,
	})
	base[126] = 1
	fixChecksum(base)

	ext := make([]byte, 128)
	ext[0], ext[1], ext[2] = 0x02, 3, 4
	fixChecksum(ext)
	return append(base, ext...)
}

func writeSample(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "monitor.bin")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestRun(t *testing.T) {
	path := writeSample(t, sampleEDID())

	var stages []Stage
	res, err := Run(context.Background(), Options{
		Path:       path,
		Settings:   DefaultSettings(),
		OnProgress: func(ev ProgressEvent) { stages = append(stages, ev.Stage) },
	})
	require.NoError(t, err)

	assert.Equal(t, []Stage{StageStarting, StageRead, StageDecoded, StageRenderingReport, StageDone}, stages)
	require.NotNil(t, res.EDID)
	assert.Equal(t, "DEL", res.EDID.ManufacturerID)
	require.Len(t, res.EDID.CTA(), 1)
	assert.Equal(t, 3, res.EDID.CTA()[0].Revision())
	assert.Equal(t, "-", res.ReportPath)
	assert.True(t, strings.HasPrefix(res.Report, "Block 0, Base EDID:"))
	assert.False(t, res.Uncommon.Any())
}

func TestRun_ReportPathAndFormat(t *testing.T) {
	path := writeSample(t, sampleEDID())
	s := DefaultSettings()
	s.Format = FormatJSON
	s.ReportFileName = "EDID_{0}"

	res, err := Run(context.Background(), Options{Path: path, Settings: s})
	require.NoError(t, err)
	assert.Equal(t, "EDID_monitor.json", res.ReportPath)
	assert.True(t, strings.HasPrefix(res.Report, "{"))

	// Run never writes the report itself.
	_, err = os.Stat(res.ReportPath)
	assert.True(t, os.IsNotExist(err))
}

func TestRun_StdinHex(t *testing.T) {
	dump := hex.EncodeToString(sampleEDID())
	var spaced strings.Builder
	for i := 0; i < len(dump); i += 32 {
		spaced.WriteString(dump[i:min(i+32, len(dump))])
		spaced.WriteString("\n")
	}

	res, err := Run(context.Background(), Options{
		Path:     "-",
		Input:    strings.NewReader(spaced.String()),
		Settings: DefaultSettings(),
	})
	require.NoError(t, err)
	assert.Len(t, res.EDID.Extensions, 1)
}

func TestRun_Errors(t *testing.T) {
	_, err := Run(context.Background(), Options{})
	assert.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Run(ctx, Options{Path: writeSample(t, sampleEDID())})
	assert.True(t, errors.Is(err, context.Canceled), "err=%v", err)

	_, err = Run(context.Background(), Options{Path: filepath.Join(t.TempDir(), "missing.bin")})
	assert.True(t, errors.Is(err, os.ErrNotExist), "err=%v", err)

	bad := sampleEDID()
	bad[128+2] = 2
	fixChecksum(bad[128:])
	_, err = Run(context.Background(), Options{Path: writeSample(t, bad)})
	assert.True(t, errors.Is(err, ErrInvalidEDID), "err=%v", err)
	assert.True(t, errors.Is(err, ErrInvalidExtension), "err=%v", err)
}

func TestDecodeInput(t *testing.T) {
	raw := sampleEDID()

	got, err := DecodeInput(raw)
	require.NoError(t, err)
	assert.True(t, bytes.Equal(raw, got))

	tests := []struct {
		name string
		dump string
	}{
		{name: "0x prefixed", dump: prefixedDump(raw, "0x", " ")},
		{name: "0X prefixed with commas", dump: prefixedDump(raw, "0X", ", ")},
		{name: "offset and ascii columns", dump: offsetDump(raw)},
		{name: "hexdump -C", dump: canonicalDump(raw)},
		{name: "compact lines", dump: "EDID:\n" + hex.EncodeToString(raw[:128]) + "\n" + strings.ToUpper(hex.EncodeToString(raw[128:])) + "\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeInput([]byte(tt.dump))
			require.NoError(t, err)
			assert.Equal(t, hex.EncodeToString(raw), hex.EncodeToString(got))
		})
	}

	for _, bad := range []string{"not an edid", "", "0000: 0"} {
		_, err := DecodeInput([]byte(bad))
		assert.True(t, errors.Is(err, ErrInvalidEDID), "input=%q err=%v", bad, err)
	}
}

func prefixedDump(data []byte, prefix, sep string) string {
	var b strings.Builder
	for _, v := range data {
		b.WriteString(prefix + hex.EncodeToString([]byte{v}) + sep)
	}
	return b.String()
}

func asciiColumn(row []byte) string {
	out := make([]byte, len(row))
	for i, v := range row {
		out[i] = '.'
		if v >= 0x20 && v < 0x7F {
			out[i] = v
		}
	}
	return string(out)
}

// offsetDump lays data out as "0010: 00 ff ... ASCII" rows.
func offsetDump(data []byte) string {
	var b strings.Builder
	b.WriteString("edid-decode (hex):\n\n")
	for off := 0; off < len(data); off += 16 {
		row := data[off:min(off+16, len(data))]
		fmt.Fprintf(&b, "%04x: % x  %s\n", off, row, asciiColumn(row))
	}
	return b.String()
}

// canonicalDump mimics hexdump -C, including the closing offset line.
func canonicalDump(data []byte) string {
	var b strings.Builder
	for off := 0; off < len(data); off += 16 {
		row := data[off:min(off+16, len(data))]
		fmt.Fprintf(&b, "%08x  % x  % x  |%s|\n", off, row[:8], row[8:], asciiColumn(row))
	}
	fmt.Fprintf(&b, "%08x\n", len(data))
	return b.String()
}

func TestParseExtension(t *testing.T) {
	ext, err := ParseExtension(sampleEDID()[128:])
	require.NoError(t, err)
	assert.Empty(t, ext.DataBlocks())

	_, err = ParseExtension(make([]byte, 10))
	assert.True(t, errors.Is(err, ErrInvalidExtension), "err=%v", err)
}
