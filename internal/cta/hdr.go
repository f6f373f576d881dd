package cta

import (
	"math"

	"github.com/s0up4200/go-edidinfo/internal/buffer"
)

// HDRStaticMetadataEOTFs lists the supported electro-optical transfer
// functions.
type HDRStaticMetadataEOTFs struct {
	TraditionalSDR bool
	TraditionalHDR bool
	PQ             bool
	HLG            bool
}

type HDRStaticMetadataDescriptors struct {
	Type1 bool
}

// HDRStaticMetadata is the HDR Static Metadata Data Block. Luminance values
// are in cd/m² and zero when absent.
type HDRStaticMetadata struct {
	EOTFs       HDRStaticMetadataEOTFs
	Descriptors HDRStaticMetadataDescriptors

	DesiredContentMaxLuminance         float64
	DesiredContentMaxFrameAvgLuminance float64
	DesiredContentMinLuminance         float64
}

// MaxLuminance decodes a max or max frame-average luminance code value.
// Zero means the value is not provided.
func MaxLuminance(raw uint8) float64 {
	if raw == 0 {
		return 0
	}
	return 50 * math.Pow(2, float64(raw)/32)
}

// MinLuminance decodes a min luminance code value relative to max.
func MinLuminance(raw uint8, maxLuminance float64) float64 {
	if raw == 0 {
		return 0
	}
	r := float64(raw) / 255
	return maxLuminance * r * r / 100
}

func (d *decoder) parseHDRStaticMetadata(data []byte) (*HDRStaticMetadata, error) {
	if len(data) < 2 {
		return nil, invalidf("HDR Static Metadata Data Block: Empty Data Block with length %d.", len(data))
	}

	m := &HDRStaticMetadata{
		EOTFs: HDRStaticMetadataEOTFs{
			TraditionalSDR: buffer.Bit(data[0], 0),
			TraditionalHDR: buffer.Bit(data[0], 1),
			PQ:             buffer.Bit(data[0], 2),
			HLG:            buffer.Bit(data[0], 3),
		},
		Descriptors: HDRStaticMetadataDescriptors{Type1: buffer.Bit(data[1], 0)},
	}
	if buffer.BitRange(data[0], 7, 4) != 0 {
		d.log.AddBefore(3, "HDR Static Metadata Data Block: Unknown EOTF.")
	}
	if buffer.BitRange(data[1], 7, 1) != 0 {
		d.log.AddBefore(3, "HDR Static Metadata Data Block: Unknown descriptor type.")
	}

	if len(data) > 2 {
		m.DesiredContentMaxLuminance = MaxLuminance(data[2])
	}
	if len(data) > 3 {
		m.DesiredContentMaxFrameAvgLuminance = MaxLuminance(data[3])
	}
	if len(data) > 4 {
		if m.DesiredContentMaxLuminance == 0 {
			d.log.Add("HDR Static Metadata Data Block: Desired content min luminance is set, but max luminance is unset.")
		} else {
			m.DesiredContentMinLuminance = MinLuminance(data[4], m.DesiredContentMaxLuminance)
		}
	}

	return m, nil
}

// HDR dynamic metadata types.
const (
	hdrDynamicType1   = 0x0001
	hdrDynamicType2   = 0x0002
	hdrDynamicType3   = 0x0003
	hdrDynamicType4   = 0x0004
	hdrDynamicType256 = 0x0100
)

type HDRDynamicMetadataType1 struct {
	Version int
}

// HDRDynamicMetadataType2 describes ETSI TS 103 433 support.
type HDRDynamicMetadataType2 struct {
	TS103433SpecVersion int
	TS103433_1Capable   bool
	TS103433_2Capable   bool
	TS103433_3Capable   bool
}

// HDRDynamicMetadataType3 carries no fields.
type HDRDynamicMetadataType3 struct{}

type HDRDynamicMetadataType4 struct {
	Version int
}

type HDRDynamicMetadataType256 struct {
	GraphicsOverlayFlagVersion int
}

// HDRDynamicMetadata is the HDR Dynamic Metadata Data Block. Each type is nil
// unless the sink advertises it.
type HDRDynamicMetadata struct {
	Type1   *HDRDynamicMetadataType1
	Type2   *HDRDynamicMetadataType2
	Type3   *HDRDynamicMetadataType3
	Type4   *HDRDynamicMetadataType4
	Type256 *HDRDynamicMetadataType256
}

func (d *decoder) parseHDRDynamicMetadata(data []byte) (*HDRDynamicMetadata, error) {
	const prefix = "HDR Dynamic Metadata Data Block"

	if len(data) < 3 {
		return nil, invalidf("%s: Empty Data Block with length %d.", prefix, len(data))
	}

	m := &HDRDynamicMetadata{}
	for len(data) >= 3 {
		length := int(data[0])
		if len(data) < length+1 {
			return nil, invalidf("%s: Length of type bigger than block size.", prefix)
		}
		if length < 2 {
			return nil, invalidf("%s: Type has wrong length.", prefix)
		}

		typ := int(data[2])<<8 | int(data[1])
		switch typ {
		case hdrDynamicType1, hdrDynamicType4, hdrDynamicType256:
			name := hdrDynamicTypeName(typ)
			if length < 3 {
				d.log.Add("%s: %s missing Support Flags.", prefix, name)
				break
			}
			if length != 3 {
				d.log.Add("%s: %s length must be 3.", prefix, name)
			}
			version := int(buffer.BitRange(data[3], 3, 0))
			switch typ {
			case hdrDynamicType1:
				m.Type1 = &HDRDynamicMetadataType1{Version: version}
			case hdrDynamicType4:
				m.Type4 = &HDRDynamicMetadataType4{Version: version}
			default:
				m.Type256 = &HDRDynamicMetadataType256{GraphicsOverlayFlagVersion: version}
			}
			if buffer.BitRange(data[3], 7, 4) != 0 {
				d.log.Add("%s: %s support flags bits 7-4 must be 0.", prefix, name)
			}
		case hdrDynamicType2:
			if length < 3 {
				d.log.Add("%s: Type 2 missing Support Flags.", prefix)
				break
			}
			if length != 3 {
				d.log.Add("%s: Type 2 length must be 3.", prefix)
			}
			version := int(buffer.BitRange(data[3], 3, 0))
			if version == 0 {
				d.log.Add("%s: Type 2 spec version of 0 is not allowed.", prefix)
				break
			}
			m.Type2 = &HDRDynamicMetadataType2{
				TS103433SpecVersion: version,
				TS103433_1Capable:   buffer.Bit(data[3], 4),
				TS103433_2Capable:   buffer.Bit(data[3], 5),
				TS103433_3Capable:   buffer.Bit(data[3], 6),
			}
			if buffer.Bit(data[3], 7) {
				d.log.Add("%s: Type 2 support flags bit 7 must be 0.", prefix)
			}
		case hdrDynamicType3:
			if length != 2 {
				d.log.Add("%s: Type 3 length must be 2.", prefix)
			}
			m.Type3 = &HDRDynamicMetadataType3{}
		default:
			d.log.Add("%s: Unknown Type 0x%04x.", prefix, typ)
		}

		data = data[length+1:]
	}

	return m, nil
}

func hdrDynamicTypeName(typ int) string {
	switch typ {
	case hdrDynamicType1:
		return "Type 1"
	case hdrDynamicType4:
		return "Type 4"
	default:
		return "Type 256"
	}
}
