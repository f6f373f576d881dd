package cta

import "github.com/s0up4200/go-edidinfo/internal/buffer"

// Colorimetry lists the additional colorimetry standards the sink supports.
type Colorimetry struct {
	XvYCC601   bool
	XvYCC709   bool
	SYCC601    bool
	OpYCC601   bool
	OpRGB      bool
	BT2020CYCC bool
	BT2020YCC  bool
	BT2020RGB  bool
	ST2113RGB  bool
	ICtCp      bool
}

func (d *decoder) parseColorimetry(data []byte) (*Colorimetry, error) {
	if len(data) < 2 {
		return nil, invalidf("Colorimetry Data Block: Empty Data Block with length %d.", len(data))
	}

	c := &Colorimetry{
		BT2020RGB:  buffer.Bit(data[0], 7),
		BT2020YCC:  buffer.Bit(data[0], 6),
		BT2020CYCC: buffer.Bit(data[0], 5),
		OpRGB:      buffer.Bit(data[0], 4),
		OpYCC601:   buffer.Bit(data[0], 3),
		SYCC601:    buffer.Bit(data[0], 2),
		XvYCC709:   buffer.Bit(data[0], 1),
		XvYCC601:   buffer.Bit(data[0], 0),
		ST2113RGB:  buffer.Bit(data[1], 7),
		ICtCp:      buffer.Bit(data[1], 6),
	}

	if buffer.BitRange(data[1], 5, 0) != 0 {
		d.log.AddBefore(3, "Colorimetry Data Block: Reserved bits MD0-MD5 must be 0.")
	}

	return c, nil
}
