package cta

import "github.com/s0up4200/go-edidinfo/internal/buffer"

// SpeakerAlloc lists the speaker positions present in the sink.
type SpeakerAlloc struct {
	FLW_FRW     bool // front left/right wide
	FLC_FRC     bool // front left/right of center
	BC          bool // back center
	BL_BR       bool // back left/right
	FC          bool // front center
	LFE1        bool // low frequency effects 1
	FL_FR       bool // front left/right
	TpSiL_TpSiR bool // top side left/right
	SiL_SiR     bool // side left/right
	TpBC        bool // top back center
	LFE2        bool // low frequency effects 2
	LS_RS       bool // left/right surround
	TpFC        bool // top front center
	TpC         bool // top center
	TpFL_TpFR   bool // top front left/right
	BtFL_BtFR   bool // bottom front left/right
	BtFC        bool // bottom front center
	TpBL_TpBR   bool // top back left/right
}

func (d *decoder) parseSpeakerAlloc(data []byte) (*SpeakerAlloc, error) {
	if len(data) < 3 {
		return nil, invalidf("Speaker Allocation Data Block: Empty Data Block with length %d.", len(data))
	}

	sa := &SpeakerAlloc{
		FLW_FRW: buffer.Bit(data[0], 7),
		FLC_FRC: buffer.Bit(data[0], 5),
		BC:      buffer.Bit(data[0], 4),
		BL_BR:   buffer.Bit(data[0], 3),
		FC:      buffer.Bit(data[0], 2),
		LFE1:    buffer.Bit(data[0], 1),
		FL_FR:   buffer.Bit(data[0], 0),

		TpSiL_TpSiR: buffer.Bit(data[1], 7),
		SiL_SiR:     buffer.Bit(data[1], 6),
		TpBC:        buffer.Bit(data[1], 5),
		LFE2:        buffer.Bit(data[1], 4),
		LS_RS:       buffer.Bit(data[1], 3),
		TpFC:        buffer.Bit(data[1], 2),
		TpC:         buffer.Bit(data[1], 1),
		TpFL_TpFR:   buffer.Bit(data[1], 0),

		BtFL_BtFR: buffer.Bit(data[2], 2),
		BtFC:      buffer.Bit(data[2], 1),
		TpBL_TpBR: buffer.Bit(data[2], 0),
	}

	// F16 used to be RLC/RRC; older revisions treat it as BL/BR.
	if buffer.Bit(data[0], 6) {
		if d.revision() >= 3 {
			d.log.Add("Speaker Allocation Data Block: Deprecated bit F16 must be 0.")
		} else {
			sa.BL_BR = true
		}
	}

	if buffer.BitRange(data[2], 7, 4) != 0 {
		d.log.Add("Speaker Allocation Data Block: Bits F37, F36, F34 must be 0.")
	}
	if d.revision() >= 3 && buffer.Bit(data[2], 3) {
		d.log.Add("Speaker Allocation Data Block: Deprecated bit F33 must be 0.")
	}

	return sa, nil
}
