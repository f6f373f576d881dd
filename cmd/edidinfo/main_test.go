package main

import (
	"bytes"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func sampleEDID() []byte {
	base := make([]byte, 128)
	copy(base, []byte{0x00, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x00})
	base[8], base[9] = 0x4C, 0x2D
	base[18], base[19] = 1, 3
	copy(base[54:], []byte{
		0x02, 0x3A, 0x80, 0x18, 0x71, 0x38, 0x2D, 0x40, 0x58,
		0x2C, 0x45, 0x00, 0x50, 0x2D, 0x31, 0x00, 0x00, 0x1E,
	})
	var sum byte
	for _, b := range base[:127] {
		sum += b
	}
	base[127] = -sum
	return base
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRoot_Stdout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "edid.bin")
	if err := os.WriteFile(path, sampleEDID(), 0o644); err != nil {
		t.Fatalf("write edid: %v", err)
	}

	out, err := execute(t, "", path)
	if err != nil {
		t.Fatalf("execute error = %v", err)
	}
	if !strings.Contains(out, "    Manufacturer: SAM\n") {
		t.Fatalf("unexpected report:\n%s", out)
	}
	if !strings.Contains(out, "EDID conformity: PASS") {
		t.Fatalf("missing conformity line:\n%s", out)
	}
}

func TestRoot_ReportFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "edid.bin")
	if err := os.WriteFile(path, sampleEDID(), 0o644); err != nil {
		t.Fatalf("write edid: %v", err)
	}
	reportPath := filepath.Join(tmpDir, "report.json")

	out, err := execute(t, "", "--format", "json", "-o", reportPath, path)
	if err != nil {
		t.Fatalf("execute error = %v", err)
	}
	if !strings.Contains(out, "Report written: "+reportPath) {
		t.Fatalf("output=%q", out)
	}
	data, err := os.ReadFile(reportPath)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	if !strings.Contains(string(data), `"manufacturer": "SAM"`) {
		t.Fatalf("report=%s", data)
	}
}

func TestRoot_ConfigAndFlagPrecedence(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "edid.bin")
	if err := os.WriteFile(path, sampleEDID(), 0o644); err != nil {
		t.Fatalf("write edid: %v", err)
	}
	config := filepath.Join(tmpDir, "edidinfo.yaml")
	if err := os.WriteFile(config, []byte("format: yaml\nshow_diagnostics: false\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	out, err := execute(t, "", "--config", config, path)
	if err != nil {
		t.Fatalf("execute error = %v", err)
	}
	if !strings.Contains(out, "manufacturer: SAM") || strings.Contains(out, "diagnostics") {
		t.Fatalf("config not applied:\n%s", out)
	}

	// Explicit flags beat the config file.
	out, err = execute(t, "", "--config", config, "--format", "text", "--diagnostics", path)
	if err != nil {
		t.Fatalf("execute error = %v", err)
	}
	if !strings.Contains(out, "Block 0, Base EDID:") || !strings.Contains(out, "EDID conformity") {
		t.Fatalf("flags not applied:\n%s", out)
	}
}

func TestRoot_StdinHex(t *testing.T) {
	var dump strings.Builder
	for i, b := range sampleEDID() {
		dump.WriteString(strings.ToUpper(hex.EncodeToString([]byte{b})))
		if i%16 == 15 {
			dump.WriteString("\n")
		} else {
			dump.WriteString(" ")
		}
	}

	out, err := execute(t, dump.String(), "-")
	if err != nil {
		t.Fatalf("execute error = %v", err)
	}
	if !strings.Contains(out, "Manufacturer: SAM") {
		t.Fatalf("unexpected report:\n%s", out)
	}
}

func TestRoot_Errors(t *testing.T) {
	if _, err := execute(t, ""); err == nil {
		t.Fatalf("expected error without a path")
	}
	if _, err := execute(t, "", "--format", "xml", "x.bin"); err == nil {
		t.Fatalf("expected error for unknown format")
	}
	if _, err := execute(t, "not hex", "-"); err == nil {
		t.Fatalf("expected error for garbage input")
	}
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "", "version")
	if err != nil {
		t.Fatalf("execute error = %v", err)
	}
	if out != "edidinfo version: dev\n" {
		t.Fatalf("output=%q", out)
	}
}

func TestSelfUpdate_DevBuild(t *testing.T) {
	if _, err := execute(t, "", "update"); err == nil {
		t.Fatalf("expected error for dev build")
	}
}
