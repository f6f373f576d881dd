package cta

import (
	"errors"
	"testing"
)

func TestColorimetry(t *testing.T) {
	ext := mustParse(t, newBlock(3, 0, [][]byte{extBlock(extColorimetry, 0xC1, 0x80)}))
	c := ext.DataBlocks()[0].Colorimetry()
	if c == nil {
		t.Fatalf("expected a colorimetry block")
	}
	want := Colorimetry{BT2020RGB: true, BT2020YCC: true, XvYCC601: true, ST2113RGB: true}
	if *c != want {
		t.Fatalf("got %+v want %+v", *c, want)
	}
	if len(ext.Diagnostics()) != 0 {
		t.Fatalf("unexpected diagnostics: %q", ext.Diagnostics())
	}
}

func TestColorimetry_ReservedMetadataBits(t *testing.T) {
	for _, rev := range []int{3, 4} {
		d := &decoder{log: newTestLog(rev)}
		if _, err := d.parseColorimetry([]byte{0x00, 0x41}); err != nil {
			t.Fatalf("rev=%d error = %v", rev, err)
		}
		wantDiag := rev == 3
		if got := d.log.Len() == 1; got != wantDiag {
			t.Fatalf("rev=%d diagnostics=%q", rev, d.log.Entries())
		}
	}
}

func TestColorimetry_Short(t *testing.T) {
	_, err := Parse(newBlock(3, 0, [][]byte{extBlock(extColorimetry, 0xC1)}), Options{})
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("err=%v want ErrInvalid", err)
	}
}
