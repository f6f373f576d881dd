package cta

import (
	"errors"
	"testing"
)

func TestSpeakerAlloc_Bits(t *testing.T) {
	d := &decoder{log: newTestLog(3)}

	sa, err := d.parseSpeakerAlloc([]byte{0x80, 0x00, 0x00})
	if err != nil {
		t.Fatalf("parseSpeakerAlloc() error = %v", err)
	}
	if *sa != (SpeakerAlloc{FLW_FRW: true}) {
		t.Fatalf("got %+v want only FLW/FRW", *sa)
	}

	sa, err = d.parseSpeakerAlloc([]byte{0x3F, 0xFF, 0x07})
	if err != nil {
		t.Fatalf("parseSpeakerAlloc() error = %v", err)
	}
	want := SpeakerAlloc{
		FLC_FRC: true, BC: true, BL_BR: true, FC: true, LFE1: true, FL_FR: true,
		TpSiL_TpSiR: true, SiL_SiR: true, TpBC: true, LFE2: true, LS_RS: true,
		TpFC: true, TpC: true, TpFL_TpFR: true,
		BtFL_BtFR: true, BtFC: true, TpBL_TpBR: true,
	}
	if *sa != want {
		t.Fatalf("got %+v want %+v", *sa, want)
	}
	if d.log.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %q", d.log.Entries())
	}
}

func TestSpeakerAlloc_DeprecatedF16(t *testing.T) {
	tests := []struct {
		revision int
		blBR     bool
		diag     bool
	}{
		{revision: 2, blBR: true},
		{revision: 3, diag: true},
	}
	for _, tt := range tests {
		d := &decoder{log: newTestLog(tt.revision)}
		sa, err := d.parseSpeakerAlloc([]byte{0x40, 0x00, 0x00})
		if err != nil {
			t.Fatalf("rev=%d error = %v", tt.revision, err)
		}
		if sa.BL_BR != tt.blBR {
			t.Fatalf("rev=%d BL_BR=%v want %v", tt.revision, sa.BL_BR, tt.blBR)
		}
		if got := d.log.Len() != 0; got != tt.diag {
			t.Fatalf("rev=%d diagnostics=%q", tt.revision, d.log.Entries())
		}
	}
}

func TestSpeakerAlloc_ReservedBits(t *testing.T) {
	d := &decoder{log: newTestLog(3)}
	if _, err := d.parseSpeakerAlloc([]byte{0x01, 0x00, 0x18}); err != nil {
		t.Fatalf("parseSpeakerAlloc() error = %v", err)
	}
	want := []string{
		"Speaker Allocation Data Block: Bits F37, F36, F34 must be 0.",
		"Speaker Allocation Data Block: Deprecated bit F33 must be 0.",
	}
	got := d.log.Entries()
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("diagnostics=%q want %q", got, want)
	}
}

func TestSpeakerAlloc_Short(t *testing.T) {
	_, err := Parse(newBlock(3, 0, [][]byte{dataBlock(tagSpeakerAlloc, 0x01, 0x00)}), Options{})
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("err=%v want ErrInvalid", err)
	}
}
