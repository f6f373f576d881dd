package cta

import (
	"errors"
	"testing"
)

func FuzzParse(f *testing.F) {
	f.Add(newBlock(3, 0x40, [][]byte{
		dataBlock(tagAudio, 0x09, 0x07, 0x07),
		dataBlock(tagVideo, 0x90, 0x04),
		dataBlock(tagSpeakerAlloc, 0x01, 0x00, 0x00),
		extBlock(extVideoCap, 0x40),
		extBlock(extColorimetry, 0xC1, 0x00),
		extBlock(extHDRStaticMetadata, 0x05, 0x01, 0x60),
	}, dtd1080p))
	f.Add(newBlock(3, 0, [][]byte{extBlock(extVESADisplayDevice, dddbPayload...)}))
	f.Add(newBlock(3, 0, [][]byte{extBlock(extInfoFrame, 0x00, 0x01, 0x02, 0x01, 0xAA, 0xBB, 0xCC, 0x07)}))
	f.Add(newBlock(3, 0, [][]byte{extBlock(extHDRDynamicMetadata, 0x03, 0x01, 0x00, 0x02)}))
	f.Add(newBlock(1, 0, nil))

	f.Fuzz(func(t *testing.T, data []byte) {
		// Only full blocks are interesting; shorter input fails the length check.
		if len(data) > BlockSize {
			data = data[:BlockSize]
		}
		ext, err := Parse(data, Options{})
		if err != nil {
			if !errors.Is(err, ErrInvalid) {
				t.Fatalf("unexpected error type: %v", err)
			}
			if ext != nil {
				t.Fatalf("partial result alongside error")
			}
			return
		}
		if len(ext.DataBlocks()) > MaxDataBlocks {
			t.Fatalf("data blocks=%d", len(ext.DataBlocks()))
		}
		if len(ext.DetailedTimingDefs()) > MaxDetailedTimingDefs {
			t.Fatalf("dtds=%d", len(ext.DetailedTimingDefs()))
		}
		for _, b := range ext.DataBlocks() {
			if len(b.SVDs()) > MaxSVDs || len(b.YCbCr420SVDs()) > MaxSVDs {
				t.Fatalf("too many SVDs")
			}
			if len(b.SADs()) > MaxSADs {
				t.Fatalf("too many SADs")
			}
			if ifb := b.InfoFrame(); ifb != nil && len(ifb.InfoFrames) > MaxInfoFrameDescriptors {
				t.Fatalf("too many InfoFrame descriptors")
			}
		}
	})
}
