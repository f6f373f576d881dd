package cta

import (
	"strconv"

	"github.com/s0up4200/go-edidinfo/internal/buffer"
)

const sadSize = 3

// AudioFormat is the resolved audio format of a Short Audio Descriptor.
type AudioFormat uint8

const (
	AudioFormatLPCM AudioFormat = iota + 1
	AudioFormatAC3
	AudioFormatMPEG1
	AudioFormatMP3
	AudioFormatMPEG2
	AudioFormatAACLC
	AudioFormatDTS
	AudioFormatATRAC
	AudioFormatOneBitAudio
	AudioFormatEnhancedAC3
	AudioFormatDTSHD
	AudioFormatMAT
	AudioFormatDST
	AudioFormatWMAPro
	AudioFormatMPEG4HEAAC
	AudioFormatMPEG4HEAACv2
	AudioFormatMPEG4AACLC
	AudioFormatDRA
	AudioFormatMPEG4HEAACMPEGSurround
	AudioFormatMPEG4AACLCMPEGSurround
	AudioFormatMPEGH3D
	AudioFormatAC4
	AudioFormatLPCM3D
)

func (f AudioFormat) String() string {
	switch f {
	case AudioFormatLPCM:
		return "Linear PCM"
	case AudioFormatAC3:
		return "AC-3"
	case AudioFormatMPEG1:
		return "MPEG 1 (Layers 1 & 2)"
	case AudioFormatMP3:
		return "MPEG 1 Layer 3 (MP3)"
	case AudioFormatMPEG2:
		return "MPEG2 (multichannel)"
	case AudioFormatAACLC:
		return "AAC LC"
	case AudioFormatDTS:
		return "DTS"
	case AudioFormatATRAC:
		return "ATRAC"
	case AudioFormatOneBitAudio:
		return "One Bit Audio"
	case AudioFormatEnhancedAC3:
		return "Enhanced AC-3 (DD+)"
	case AudioFormatDTSHD:
		return "DTS-HD"
	case AudioFormatMAT:
		return "MAT (MLP)"
	case AudioFormatDST:
		return "DST"
	case AudioFormatWMAPro:
		return "WMA Pro"
	case AudioFormatMPEG4HEAAC:
		return "MPEG-4 HE AAC"
	case AudioFormatMPEG4HEAACv2:
		return "MPEG-4 HE AAC v2"
	case AudioFormatMPEG4AACLC:
		return "MPEG-4 AAC LC"
	case AudioFormatDRA:
		return "DRA"
	case AudioFormatMPEG4HEAACMPEGSurround:
		return "MPEG-4 HE AAC + MPEG Surround"
	case AudioFormatMPEG4AACLCMPEGSurround:
		return "MPEG-4 AAC LC + MPEG Surround"
	case AudioFormatMPEGH3D:
		return "MPEG-H 3D Audio"
	case AudioFormatAC4:
		return "AC-4"
	case AudioFormatLPCM3D:
		return "L-PCM 3D Audio"
	default:
		return "Unknown"
	}
}

// Format families used by the per-format decode rules.
func (f AudioFormat) isClassic() bool {
	switch f {
	case AudioFormatAC3, AudioFormatMPEG1, AudioFormatMP3, AudioFormatMPEG2,
		AudioFormatAACLC, AudioFormatDTS, AudioFormatATRAC:
		return true
	}
	return false
}

func (f AudioFormat) isMPEG4AAC() bool {
	switch f {
	case AudioFormatMPEG4HEAAC, AudioFormatMPEG4HEAACv2, AudioFormatMPEG4AACLC,
		AudioFormatMPEG4HEAACMPEGSurround, AudioFormatMPEG4AACLCMPEGSurround:
		return true
	}
	return false
}

// SampleRates is the set of supported sample rates.
type SampleRates struct {
	Has32kHz    bool
	Has44_1kHz  bool
	Has48kHz    bool
	Has88_2kHz  bool
	Has96kHz    bool
	Has176_4kHz bool
	Has192kHz   bool
}

type SADLPCM struct {
	HasSampleSize24Bits bool
	HasSampleSize20Bits bool
	HasSampleSize16Bits bool
}

type MPEGH3DLevel uint8

const (
	MPEGH3DLevelUnspecified MPEGH3DLevel = iota
	MPEGH3DLevel1
	MPEGH3DLevel2
	MPEGH3DLevel3
	MPEGH3DLevel4
	MPEGH3DLevel5
)

func (l MPEGH3DLevel) String() string {
	if l == MPEGH3DLevelUnspecified {
		return "Unspecified"
	}
	return "Level " + strconv.Itoa(int(l))
}

type SADMPEGH3D struct {
	Level                MPEGH3DLevel
	LowComplexityProfile bool
	BaselineProfile      bool
}

type SADMPEGAAC struct {
	HasFrameLength1024 bool
	HasFrameLength960  bool
}

type MPEGSurroundSignaling uint8

const (
	// MPEGSurroundImplicit means only implicitly signaled MPEG Surround data.
	MPEGSurroundImplicit MPEGSurroundSignaling = iota
	// MPEGSurroundImplicitAndExplicit adds explicitly signaled MPEG Surround.
	MPEGSurroundImplicitAndExplicit
)

func (s MPEGSurroundSignaling) String() string {
	return enumName(int(s), "Implicit", "Implicit and Explicit")
}

type SADMPEGSurround struct {
	Signaling MPEGSurroundSignaling
}

// SADMPEGAACLE carries MPEG-4 AAC LC extras.
type SADMPEGAACLE struct {
	SupportsMultichannelSound bool
}

type SADEnhancedAC3 struct {
	SupportsJointObjectCoding        bool
	SupportsJointObjectCodingACMOD28 bool
}

type SADMAT struct {
	SupportsObjectAudioAndChannelBased bool
	// RequiresHashCalculation is only meaningful when
	// SupportsObjectAudioAndChannelBased is set.
	RequiresHashCalculation bool
}

type SADWMAPro struct {
	Profile int
}

// SAD is a Short Audio Descriptor. Each optional sub-record is non-nil only
// for the formats that define it.
type SAD struct {
	Format AudioFormat
	// MaxChannels is zero for MPEG-H 3D Audio and AC-4.
	MaxChannels int
	SampleRates *SampleRates
	// MaxBitrateKbs is zero unless the format defines it.
	MaxBitrateKbs int

	LPCM         *SADLPCM
	MPEGH3D      *SADMPEGH3D
	MPEGAAC      *SADMPEGAAC
	MPEGSurround *SADMPEGSurround
	MPEGAACLE    *SADMPEGAACLE
	EnhancedAC3  *SADEnhancedAC3
	MAT          *SADMAT
	WMAPro       *SADWMAPro
}

func (d *decoder) parseAudio(data []byte) ([]SAD, error) {
	if len(data)%sadSize != 0 {
		d.log.Add("Broken CTA-861 audio block length %d.", len(data))
	}
	if len(data)/sadSize > MaxSADs {
		return nil, invalidf("Audio Data Block: %d descriptors exceed %d", len(data)/sadSize, MaxSADs)
	}

	sads := make([]SAD, 0, len(data)/sadSize)
	for i := 0; i+sadSize <= len(data); i += sadSize {
		sad, ok := d.parseSAD(data[i : i+sadSize])
		if ok {
			sads = append(sads, sad)
		}
	}
	return sads, nil
}

func (d *decoder) parseSADFormat(data []byte) (AudioFormat, bool) {
	code := buffer.BitRange(data[0], 6, 3)
	switch code {
	case 0x0:
		d.log.AddBefore(3, "Audio Data Block: Audio Format Code 0x00 is reserved.")
		return 0, false
	case 0xF:
		ext := buffer.BitRange(data[2], 7, 3)
		switch ext {
		case 0x04:
			return AudioFormatMPEG4HEAAC, true
		case 0x05:
			return AudioFormatMPEG4HEAACv2, true
		case 0x06:
			return AudioFormatMPEG4AACLC, true
		case 0x07:
			return AudioFormatDRA, true
		case 0x08:
			return AudioFormatMPEG4HEAACMPEGSurround, true
		case 0x0A:
			return AudioFormatMPEG4AACLCMPEGSurround, true
		case 0x0B:
			return AudioFormatMPEGH3D, true
		case 0x0C:
			return AudioFormatAC4, true
		case 0x0D:
			return AudioFormatLPCM3D, true
		}
		d.log.AddBefore(3, "Audio Data Block: Unknown Audio Ext Format 0x%02x.", ext)
		return 0, false
	default:
		// Codes 1 through 14 map onto the first fourteen formats in order.
		return AudioFormat(code), true
	}
}

func (d *decoder) parseSAD(data []byte) (SAD, bool) {
	format, ok := d.parseSADFormat(data)
	if !ok {
		return SAD{}, false
	}
	sad := SAD{Format: format}

	switch format {
	case AudioFormatMPEGH3D, AudioFormatAC4:
	case AudioFormatLPCM3D:
		sad.MaxChannels = int(buffer.BitRange(data[0], 2, 0)|
			buffer.BitRange(data[0], 7, 7)<<3|
			buffer.BitRange(data[1], 7, 7)<<4) + 1
	default:
		sad.MaxChannels = int(buffer.BitRange(data[0], 2, 0)) + 1
	}

	sad.SampleRates = parseSampleRates(format, data[1])

	if format.isClassic() {
		sad.MaxBitrateKbs = int(data[2]) * 8
	}

	if format == AudioFormatLPCM || format == AudioFormatLPCM3D {
		sad.LPCM = &SADLPCM{
			HasSampleSize24Bits: buffer.Bit(data[2], 2),
			HasSampleSize20Bits: buffer.Bit(data[2], 1),
			HasSampleSize16Bits: buffer.Bit(data[2], 0),
		}
	}

	if format.isMPEG4AAC() {
		sad.MPEGAAC = &SADMPEGAAC{
			HasFrameLength1024: buffer.Bit(data[2], 2),
			HasFrameLength960:  buffer.Bit(data[2], 1),
		}
	}

	if format == AudioFormatMPEG4AACLC {
		sad.MPEGAACLE = &SADMPEGAACLE{SupportsMultichannelSound: buffer.Bit(data[2], 0)}
	}

	if format == AudioFormatMPEG4HEAACMPEGSurround || format == AudioFormatMPEG4AACLCMPEGSurround {
		signaling := MPEGSurroundImplicit
		if buffer.Bit(data[2], 0) {
			signaling = MPEGSurroundImplicitAndExplicit
		}
		sad.MPEGSurround = &SADMPEGSurround{Signaling: signaling}
	}

	switch format {
	case AudioFormatMPEGH3D:
		level := MPEGH3DLevel(buffer.BitRange(data[0], 2, 0))
		if level > MPEGH3DLevel5 {
			d.log.AddBefore(3, "Audio Data Block: Unknown MPEG-H 3D Audio Level 0x%02x.", uint8(level))
			level = MPEGH3DLevelUnspecified
		}
		sad.MPEGH3D = &SADMPEGH3D{
			Level:                level,
			LowComplexityProfile: buffer.Bit(data[2], 0),
			BaselineProfile:      buffer.Bit(data[2], 1),
		}
	case AudioFormatEnhancedAC3:
		sad.EnhancedAC3 = &SADEnhancedAC3{
			SupportsJointObjectCoding:        buffer.Bit(data[2], 0),
			SupportsJointObjectCodingACMOD28: buffer.Bit(data[2], 1),
		}
	case AudioFormatMAT:
		mat := &SADMAT{SupportsObjectAudioAndChannelBased: buffer.Bit(data[2], 0)}
		if mat.SupportsObjectAudioAndChannelBased {
			// Bit 1 set means hash calculation is not required.
			mat.RequiresHashCalculation = !buffer.Bit(data[2], 1)
		}
		sad.MAT = mat
	case AudioFormatWMAPro:
		sad.WMAPro = &SADWMAPro{Profile: int(buffer.BitRange(data[2], 2, 0))}
	}

	d.checkSADReservedBits(format, data)
	return sad, true
}

func parseSampleRates(format AudioFormat, b byte) *SampleRates {
	rates := &SampleRates{}
	switch {
	case format == AudioFormatAC4:
		rates.Has192kHz = buffer.Bit(b, 6)
		rates.Has96kHz = buffer.Bit(b, 4)
		rates.Has48kHz = buffer.Bit(b, 2)
		rates.Has44_1kHz = buffer.Bit(b, 1)
		return rates
	case !format.isMPEG4AAC():
		rates.Has192kHz = buffer.Bit(b, 6)
		rates.Has176_4kHz = buffer.Bit(b, 5)
	}
	rates.Has96kHz = buffer.Bit(b, 4)
	rates.Has88_2kHz = buffer.Bit(b, 3)
	rates.Has48kHz = buffer.Bit(b, 2)
	rates.Has44_1kHz = buffer.Bit(b, 1)
	rates.Has32kHz = buffer.Bit(b, 0)
	return rates
}

func (d *decoder) checkSADReservedBits(format AudioFormat, data []byte) {
	f17 := buffer.Bit(data[0], 7)
	f27 := buffer.Bit(data[1], 7)

	switch {
	case format == AudioFormatLPCM || format == AudioFormatWMAPro:
		if f17 || f27 || buffer.BitRange(data[2], 7, 3) != 0 {
			d.log.AddBefore(3, "Audio Data Block: Bits F17, F27, F37:F33 must be 0.")
		}
	case format.isClassic(), format == AudioFormatOneBitAudio, format == AudioFormatEnhancedAC3,
		format == AudioFormatDTSHD, format == AudioFormatMAT, format == AudioFormatDST:
		if f17 || f27 {
			d.log.AddBefore(3, "Audio Data Block: Bits F17, F27 must be 0.")
		}
	case format.isMPEG4AAC():
		// F27:F25 are the 192 and 176.4 kHz bits of other formats.
		if f17 || buffer.BitRange(data[1], 7, 5) != 0 {
			d.log.AddBefore(3, "Audio Data Block: Bits F17, F27:F25 must be 0.")
		}
	case format == AudioFormatMPEGH3D:
		if f17 || f27 || buffer.Bit(data[2], 2) {
			d.log.AddBefore(3, "Audio Data Block: Bits F17, F27, F32 must be 0.")
		}
	case format == AudioFormatAC4:
		if data[0]&0x87 != 0 || data[1]&0xA9 != 0 {
			d.log.AddBefore(3, "Audio Data Block: Bits F17, F12:F10, F27, F25, F23, F20 must be 0.")
		}
	}
}
