package cta

import "github.com/s0up4200/go-edidinfo/internal/buffer"

// InfoFrameType is the type of a Short InfoFrame Descriptor.
type InfoFrameType uint8

const (
	InfoFrameAuxiliaryVideoInformation InfoFrameType = 2 + iota
	InfoFrameSourceProductDescription
	InfoFrameAudio
	InfoFrameMPEGSource
	InfoFrameNTSCVBI
	InfoFrameDynamicRangeAndMastering
)

func (t InfoFrameType) String() string {
	switch t {
	case InfoFrameAuxiliaryVideoInformation:
		return "Auxiliary Video Information InfoFrame (2)"
	case InfoFrameSourceProductDescription:
		return "Source Product Description InfoFrame (3)"
	case InfoFrameAudio:
		return "Audio InfoFrame (4)"
	case InfoFrameMPEGSource:
		return "MPEG Source InfoFrame (5)"
	case InfoFrameNTSCVBI:
		return "NTSC VBI InfoFrame (6)"
	case InfoFrameDynamicRangeAndMastering:
		return "Dynamic Range and Mastering InfoFrame (7)"
	default:
		return "Unknown InfoFrame"
	}
}

type InfoFrameDescriptor struct {
	Type InfoFrameType
}

// InfoFrameBlock is the InfoFrame Data Block.
type InfoFrameBlock struct {
	// NumSimultaneousVSIFs is the number of Vendor-Specific InfoFrames the
	// sink can receive at once.
	NumSimultaneousVSIFs int
	InfoFrames           []InfoFrameDescriptor
}

const (
	infoFrameTypeForbidden      = 0x00
	infoFrameTypeVendorSpecific = 0x01
)

func (d *decoder) parseInfoFrame(data []byte) (*InfoFrameBlock, error) {
	const prefix = "InfoFrame Data Block"

	if len(data) < 2 {
		return nil, invalidf("%s: Empty Data Block with length %d.", prefix, len(data))
	}

	ifb := &InfoFrameBlock{NumSimultaneousVSIFs: int(data[1]) + 1}

	index := int(buffer.BitRange(data[0], 7, 5)) + 2
	if buffer.BitRange(data[0], 4, 0) != 0 {
		d.log.Add("%s: InfoFrame Processing Descriptor Header bits F14-F10 shall be 0.", prefix)
	}

	for index != len(data) {
		if index > len(data) {
			return nil, invalidf("%s: Payload length exceeds block size.", prefix)
		}

		length := int(buffer.BitRange(data[index], 7, 5))
		typ := buffer.BitRange(data[index], 4, 0)
		switch typ {
		case infoFrameTypeForbidden:
			return nil, invalidf("%s: Short InfoFrame Descriptor with type 0 is forbidden.", prefix)
		case infoFrameTypeVendorSpecific:
			// The IEEE OUI follows the header byte.
			length += 4
		default:
			length++
		}
		if index+length > len(data) {
			return nil, invalidf("%s: Payload length exceeds block size.", prefix)
		}

		switch {
		case typ == infoFrameTypeVendorSpecific:
			// No vendor-specific InfoFrames are decoded.
		case typ >= 0x08:
			d.log.Add("%s: Type code %d is reserved.", prefix, typ)
		default:
			if len(ifb.InfoFrames) == MaxInfoFrameDescriptors {
				return nil, invalidf("%s: more than %d descriptors", prefix, MaxInfoFrameDescriptors)
			}
			ifb.InfoFrames = append(ifb.InfoFrames, InfoFrameDescriptor{Type: InfoFrameType(typ)})
		}

		index += length
	}

	return ifb, nil
}
