package cta

// Primary data block tags.
const (
	tagAudio          = 1
	tagVideo          = 2
	tagVendorSpecific = 3
	tagSpeakerAlloc   = 4
	tagVESATransfer   = 5
	tagVideoFormat    = 6
	tagExtended       = 7
)

// Extended tags, carried in the first payload byte of a tag 7 block.
const (
	extVideoCap              = 0
	extVendorSpecificVideo   = 1
	extVESADisplayDevice     = 2
	extColorimetry           = 5
	extHDRStaticMetadata     = 6
	extHDRDynamicMetadata    = 7
	extNativeVideoResolution = 8
	extVideoFormatPref       = 13
	extYCbCr420              = 14
	extYCbCr420CapMap        = 15
	extVendorSpecificAudio   = 17
	extHDMIAudio             = 18
	extRoomConfig            = 19
	extSpeakerLocation       = 20
	extInfoFrame             = 32
	extDisplayIDTimingVII    = 34
	extDisplayIDTimingVIII   = 35
	extDisplayIDTimingX      = 42
	extHDMIEDIDExtOverride   = 120
	extHDMISinkCap           = 121
)

// Extended tags recorded without a decoded payload.
var tagOnlyExtended = map[uint8]DataBlockTag{
	extNativeVideoResolution: DataBlockNativeVideoResolution,
	extVideoFormatPref:       DataBlockVideoFormatPref,
	extHDMIAudio:             DataBlockHDMIAudio,
	extRoomConfig:            DataBlockRoomConfig,
	extSpeakerLocation:       DataBlockSpeakerLocation,
	extDisplayIDTimingVII:    DataBlockDisplayIDVideoTimingVII,
	extDisplayIDTimingVIII:   DataBlockDisplayIDVideoTimingVIII,
	extDisplayIDTimingX:      DataBlockDisplayIDVideoTimingX,
	extHDMIEDIDExtOverride:   DataBlockHDMIEDIDExtOverride,
	extHDMISinkCap:           DataBlockHDMISinkCap,
}

// decodeDataBlock decodes one data block payload. A nil block with a nil
// error means the block was skipped.
func (d *decoder) decodeDataBlock(rawTag uint8, data []byte) (*DataBlock, error) {
	var (
		payload any
		err     error
		tag     DataBlockTag
	)

	switch rawTag {
	case tagAudio:
		tag = DataBlockAudio
		payload, err = d.parseAudio(data)
	case tagVideo:
		tag = DataBlockVideo
		payload, err = d.parseSVDs(data, "Video Data Block")
	case tagVendorSpecific:
		return nil, nil
	case tagSpeakerAlloc:
		tag = DataBlockSpeakerAlloc
		payload, err = d.parseSpeakerAlloc(data)
	case tagVESATransfer:
		tag = DataBlockVESATransferCharacteristics
		payload, err = d.parseVESATransferCharacteristics(data)
	case tagVideoFormat:
		tag = DataBlockVideoFormat
	case tagExtended:
		return d.decodeExtendedDataBlock(data)
	default:
		d.log.AddBefore(3, "Unknown CTA-861 Data Block (tag 0x%x, length %d).", rawTag, len(data))
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &DataBlock{tag: tag, payload: payload}, nil
}

func (d *decoder) decodeExtendedDataBlock(data []byte) (*DataBlock, error) {
	if len(data) < 1 {
		d.log.Add("Empty block with extended tag.")
		return nil, nil
	}

	extTag := data[0]
	data = data[1:]

	var (
		payload any
		err     error
		tag     DataBlockTag
	)

	switch extTag {
	case extVideoCap:
		tag = DataBlockVideoCap
		payload, err = d.parseVideoCap(data)
	case extVESADisplayDevice:
		tag = DataBlockVESADisplayDevice
		payload, err = d.parseVESADisplayDevice(data)
	case extColorimetry:
		tag = DataBlockColorimetry
		payload, err = d.parseColorimetry(data)
	case extHDRStaticMetadata:
		tag = DataBlockHDRStaticMetadata
		payload, err = d.parseHDRStaticMetadata(data)
	case extHDRDynamicMetadata:
		tag = DataBlockHDRDynamicMetadata
		payload, err = d.parseHDRDynamicMetadata(data)
	case extYCbCr420:
		tag = DataBlockYCbCr420
		payload, err = d.parseSVDs(data, "YCbCr 4:2:0 Video Data Block")
	case extYCbCr420CapMap:
		tag = DataBlockYCbCr420CapMap
		payload = parseYCbCr420CapMap(data)
	case extInfoFrame:
		tag = DataBlockInfoFrame
		payload, err = d.parseInfoFrame(data)
	case extVendorSpecificVideo, extVendorSpecificAudio:
		return nil, nil
	default:
		known, ok := tagOnlyExtended[extTag]
		if !ok {
			d.log.AddBefore(3, "Unknown CTA-861 Data Block (extended tag 0x%x, length %d).", extTag, len(data))
			return nil, nil
		}
		tag = known
	}
	if err != nil {
		return nil, err
	}
	return &DataBlock{tag: tag, payload: payload}, nil
}
