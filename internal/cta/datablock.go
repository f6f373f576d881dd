package cta

// DataBlockTag identifies the kind of a data block, folding the primary and
// extended tag spaces together.
type DataBlockTag uint8

const (
	DataBlockAudio DataBlockTag = iota + 1
	DataBlockVideo
	DataBlockSpeakerAlloc
	DataBlockVESATransferCharacteristics
	DataBlockVideoFormat
	DataBlockVideoCap
	DataBlockVESADisplayDevice
	DataBlockColorimetry
	DataBlockHDRStaticMetadata
	DataBlockHDRDynamicMetadata
	DataBlockNativeVideoResolution
	DataBlockVideoFormatPref
	DataBlockYCbCr420
	DataBlockYCbCr420CapMap
	DataBlockHDMIAudio
	DataBlockRoomConfig
	DataBlockSpeakerLocation
	DataBlockInfoFrame
	DataBlockDisplayIDVideoTimingVII
	DataBlockDisplayIDVideoTimingVIII
	DataBlockDisplayIDVideoTimingX
	DataBlockHDMIEDIDExtOverride
	DataBlockHDMISinkCap
)

func (t DataBlockTag) String() string {
	switch t {
	case DataBlockAudio:
		return "Audio Data Block"
	case DataBlockVideo:
		return "Video Data Block"
	case DataBlockSpeakerAlloc:
		return "Speaker Allocation Data Block"
	case DataBlockVESATransferCharacteristics:
		return "VESA Display Transfer Characteristics Data Block"
	case DataBlockVideoFormat:
		return "Video Format Data Block"
	case DataBlockVideoCap:
		return "Video Capability Data Block"
	case DataBlockVESADisplayDevice:
		return "VESA Video Display Device Data Block"
	case DataBlockColorimetry:
		return "Colorimetry Data Block"
	case DataBlockHDRStaticMetadata:
		return "HDR Static Metadata Data Block"
	case DataBlockHDRDynamicMetadata:
		return "HDR Dynamic Metadata Data Block"
	case DataBlockNativeVideoResolution:
		return "Native Video Resolution Data Block"
	case DataBlockVideoFormatPref:
		return "Video Format Preference Data Block"
	case DataBlockYCbCr420:
		return "YCbCr 4:2:0 Video Data Block"
	case DataBlockYCbCr420CapMap:
		return "YCbCr 4:2:0 Capability Map Data Block"
	case DataBlockHDMIAudio:
		return "HDMI Audio Data Block"
	case DataBlockRoomConfig:
		return "Room Configuration Data Block"
	case DataBlockSpeakerLocation:
		return "Speaker Location Data Block"
	case DataBlockInfoFrame:
		return "InfoFrame Data Block"
	case DataBlockDisplayIDVideoTimingVII:
		return "DisplayID Type VII Video Timing Data Block"
	case DataBlockDisplayIDVideoTimingVIII:
		return "DisplayID Type VIII Video Timing Data Block"
	case DataBlockDisplayIDVideoTimingX:
		return "DisplayID Type X Video Timing Data Block"
	case DataBlockHDMIEDIDExtOverride:
		return "HDMI Forum EDID Extension Override Data Block"
	case DataBlockHDMISinkCap:
		return "HDMI Forum Sink Capability Data Block"
	default:
		return "Unknown Data Block"
	}
}

// DataBlock is one decoded data block. Only the accessor matching Tag returns
// a value; every other accessor returns nil.
type DataBlock struct {
	tag     DataBlockTag
	payload any
}

// Tag returns the kind of the block.
func (b *DataBlock) Tag() DataBlockTag { return b.tag }

// SVDs returns the short video descriptors of a Video Data Block.
func (b *DataBlock) SVDs() []SVD {
	if b.tag != DataBlockVideo {
		return nil
	}
	p, _ := b.payload.([]SVD)
	return p
}

// YCbCr420SVDs returns the short video descriptors of a YCbCr 4:2:0 Video
// Data Block. These formats support YCbCr 4:2:0 sampling only.
func (b *DataBlock) YCbCr420SVDs() []SVD {
	if b.tag != DataBlockYCbCr420 {
		return nil
	}
	p, _ := b.payload.([]SVD)
	return p
}

// SADs returns the short audio descriptors of an Audio Data Block.
func (b *DataBlock) SADs() []SAD {
	if b.tag != DataBlockAudio {
		return nil
	}
	p, _ := b.payload.([]SAD)
	return p
}

func (b *DataBlock) SpeakerAlloc() *SpeakerAlloc {
	p, _ := b.payload.(*SpeakerAlloc)
	return p
}

func (b *DataBlock) VideoCap() *VideoCap {
	p, _ := b.payload.(*VideoCap)
	return p
}

func (b *DataBlock) VESADisplayDevice() *VESADisplayDevice {
	p, _ := b.payload.(*VESADisplayDevice)
	return p
}

func (b *DataBlock) Colorimetry() *Colorimetry {
	p, _ := b.payload.(*Colorimetry)
	return p
}

func (b *DataBlock) HDRStaticMetadata() *HDRStaticMetadata {
	p, _ := b.payload.(*HDRStaticMetadata)
	return p
}

func (b *DataBlock) HDRDynamicMetadata() *HDRDynamicMetadata {
	p, _ := b.payload.(*HDRDynamicMetadata)
	return p
}

func (b *DataBlock) VESATransferCharacteristics() *VESATransferCharacteristics {
	p, _ := b.payload.(*VESATransferCharacteristics)
	return p
}

func (b *DataBlock) YCbCr420CapMap() *YCbCr420CapMap {
	p, _ := b.payload.(*YCbCr420CapMap)
	return p
}

func (b *DataBlock) InfoFrame() *InfoFrameBlock {
	p, _ := b.payload.(*InfoFrameBlock)
	return p
}
