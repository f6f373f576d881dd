package cta

import "github.com/s0up4200/go-edidinfo/internal/buffer"

// OverUnderscan describes the scan behaviour of a class of video formats.
type OverUnderscan uint8

const (
	ScanUnknown OverUnderscan = iota
	ScanAlwaysOverscan
	ScanAlwaysUnderscan
	ScanBoth
)

func (s OverUnderscan) String() string {
	switch s {
	case ScanAlwaysOverscan:
		return "Always Overscanned"
	case ScanAlwaysUnderscan:
		return "Always Underscanned"
	case ScanBoth:
		return "Supports both over- and underscan"
	default:
		return "Unknown"
	}
}

// VideoCap is the Video Capability Data Block.
type VideoCap struct {
	SelectableYCCQuantizationRange bool
	SelectableRGBQuantizationRange bool
	PTOverUnderscan                OverUnderscan
	ITOverUnderscan                OverUnderscan
	CEOverUnderscan                OverUnderscan
}

func (d *decoder) parseVideoCap(data []byte) (*VideoCap, error) {
	if len(data) < 1 {
		return nil, invalidf("Video Capability Data Block: Empty Data Block with length %d.", len(data))
	}

	vc := &VideoCap{
		SelectableYCCQuantizationRange: buffer.Bit(data[0], 7),
		SelectableRGBQuantizationRange: buffer.Bit(data[0], 6),
		PTOverUnderscan:                OverUnderscan(buffer.BitRange(data[0], 5, 4)),
		ITOverUnderscan:                OverUnderscan(buffer.BitRange(data[0], 3, 2)),
		CEOverUnderscan:                OverUnderscan(buffer.BitRange(data[0], 1, 0)),
	}

	if !vc.SelectableRGBQuantizationRange && d.revision() >= 3 {
		d.log.Add("Video Capability Data Block: Set Selectable RGB Quantization to avoid interop issues.")
	}

	switch vc.ITOverUnderscan {
	case ScanAlwaysOverscan:
		if d.flags.ITUnderscan {
			d.log.Add("Video Capability Data Block: IT video formats are always overscanned, " +
				"but bit 7 of Byte 3 of the CTA-861 Extension header is set to underscanned.")
		}
	case ScanAlwaysUnderscan:
		if !d.flags.ITUnderscan {
			d.log.Add("Video Capability Data Block: IT video formats are always underscanned, " +
				"but bit 7 of Byte 3 of the CTA-861 Extension header is set to overscanned.")
		}
	}

	return vc, nil
}
