// Package timing decodes 18-byte Detailed Timing Definitions shared by the
// base EDID block and its extensions.
package timing

import (
	"errors"
	"fmt"

	"github.com/s0up4200/go-edidinfo/internal/buffer"
)

// Size is the length of one Detailed Timing Definition.
const Size = 18

// ErrInvalid reports a descriptor that cannot be decoded as a timing.
var ErrInvalid = errors.New("timing: invalid detailed timing definition")

type SignalType uint8

const (
	SignalAnalogComposite SignalType = iota
	SignalBipolarAnalogComposite
	SignalDigitalComposite
	SignalDigitalSeparate
)

type StereoType uint8

const (
	StereoNone StereoType = iota
	StereoFieldSeqRight
	StereoFieldSeqLeft
	StereoTwoWayInterleavedRight
	StereoTwoWayInterleavedLeft
	StereoFourWayInterleaved
	StereoSideBySideInterleaved
)

type SyncPolarity uint8

const (
	SyncNegative SyncPolarity = iota
	SyncPositive
)

// DetailedTimingDef is one decoded timing descriptor.
type DetailedTimingDef struct {
	PixelClockHz    int64
	HorizActive     int
	VertActive      int
	HorizBlank      int
	VertBlank       int
	HorizFrontPorch int
	VertFrontPorch  int
	HorizSyncPulse  int
	VertSyncPulse   int
	HorizImageMM    int
	VertImageMM     int
	HorizBorder     int
	VertBorder      int
	Interlaced      bool
	Stereo          StereoType
	Signal          SignalType

	// Analog signals only.
	SyncOnAllRGB bool
	// Composite signals only.
	SyncSerrations bool
	// Digital signals only. VSyncPolarity is only meaningful for separate sync.
	HSyncPolarity SyncPolarity
	VSyncPolarity SyncPolarity
}

// HorizBackPorch returns the blanking left after front porch and sync.
func (d *DetailedTimingDef) HorizBackPorch() int {
	return d.HorizBlank - d.HorizFrontPorch - d.HorizSyncPulse
}

// VertBackPorch returns the blanking left after front porch and sync.
func (d *DetailedTimingDef) VertBackPorch() int {
	return d.VertBlank - d.VertFrontPorch - d.VertSyncPulse
}

// RefreshHz returns the field rate, or 0 when the totals are zero.
func (d *DetailedTimingDef) RefreshHz() float64 {
	hTotal := float64(d.HorizActive + d.HorizBlank)
	vTotal := float64(d.VertActive + d.VertBlank)
	if d.Interlaced {
		vTotal += 0.5
	}
	if hTotal == 0 || vTotal == 0 {
		return 0
	}
	return float64(d.PixelClockHz) / (hTotal * vTotal)
}

// Parse decodes one 18-byte Detailed Timing Definition.
func Parse(data []byte) (*DetailedTimingDef, error) {
	if len(data) != Size {
		return nil, fmt.Errorf("%w: length %d", ErrInvalid, len(data))
	}

	clock := buffer.Uint16LE(data, 0)
	if clock == 0 {
		return nil, fmt.Errorf("%w: display descriptor in timing position", ErrInvalid)
	}

	d := &DetailedTimingDef{
		PixelClockHz: int64(clock) * 10_000,
		HorizActive:  int(data[2]) | int(buffer.BitRange(data[4], 7, 4))<<8,
		HorizBlank:   int(data[3]) | int(buffer.BitRange(data[4], 3, 0))<<8,
		VertActive:   int(data[5]) | int(buffer.BitRange(data[7], 7, 4))<<8,
		VertBlank:    int(data[6]) | int(buffer.BitRange(data[7], 3, 0))<<8,

		HorizFrontPorch: int(data[8]) | int(buffer.BitRange(data[11], 7, 6))<<8,
		HorizSyncPulse:  int(data[9]) | int(buffer.BitRange(data[11], 5, 4))<<8,
		VertFrontPorch:  int(buffer.BitRange(data[10], 7, 4)) | int(buffer.BitRange(data[11], 3, 2))<<4,
		VertSyncPulse:   int(buffer.BitRange(data[10], 3, 0)) | int(buffer.BitRange(data[11], 1, 0))<<4,

		HorizImageMM: int(data[12]) | int(buffer.BitRange(data[14], 7, 4))<<8,
		VertImageMM:  int(data[13]) | int(buffer.BitRange(data[14], 3, 0))<<8,
		HorizBorder:  int(data[15]),
		VertBorder:   int(data[16]),
	}
	if d.HorizActive == 0 || d.VertActive == 0 {
		return nil, fmt.Errorf("%w: zero active area %dx%d", ErrInvalid, d.HorizActive, d.VertActive)
	}

	flags := data[17]
	d.Interlaced = buffer.Bit(flags, 7)
	d.Stereo = parseStereo(flags)

	switch buffer.BitRange(flags, 4, 3) {
	case 0b00:
		d.Signal = SignalAnalogComposite
	case 0b01:
		d.Signal = SignalBipolarAnalogComposite
	case 0b10:
		d.Signal = SignalDigitalComposite
	case 0b11:
		d.Signal = SignalDigitalSeparate
	}

	switch d.Signal {
	case SignalAnalogComposite, SignalBipolarAnalogComposite:
		d.SyncSerrations = buffer.Bit(flags, 2)
		d.SyncOnAllRGB = buffer.Bit(flags, 1)
	case SignalDigitalComposite:
		d.SyncSerrations = buffer.Bit(flags, 2)
		d.HSyncPolarity = polarity(buffer.Bit(flags, 1))
	case SignalDigitalSeparate:
		d.VSyncPolarity = polarity(buffer.Bit(flags, 2))
		d.HSyncPolarity = polarity(buffer.Bit(flags, 1))
	}

	return d, nil
}

func parseStereo(flags byte) StereoType {
	low := buffer.Bit(flags, 0)
	switch buffer.BitRange(flags, 6, 5) {
	case 0b01:
		if low {
			return StereoTwoWayInterleavedRight
		}
		return StereoFieldSeqRight
	case 0b10:
		if low {
			return StereoTwoWayInterleavedLeft
		}
		return StereoFieldSeqLeft
	case 0b11:
		if low {
			return StereoSideBySideInterleaved
		}
		return StereoFourWayInterleaved
	default:
		return StereoNone
	}
}

func polarity(set bool) SyncPolarity {
	if set {
		return SyncPositive
	}
	return SyncNegative
}
