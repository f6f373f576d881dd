package cta

import "github.com/s0up4200/go-edidinfo/internal/buffer"

// TransferUsage selects the channel a transfer curve applies to.
type TransferUsage uint8

const (
	TransferUsageWhite TransferUsage = iota
	TransferUsageRed
	TransferUsageGreen
	TransferUsageBlue
)

func (u TransferUsage) String() string {
	return enumName(int(u), "white", "red", "green", "blue")
}

// VESATransferCharacteristics is the VESA Display Transfer Characteristics
// Data Block. Points are normalized luminance values in [0, 1], evenly spaced
// along the input range.
type VESATransferCharacteristics struct {
	Usage  TransferUsage
	Points []float64
}

func (d *decoder) parseVESATransferCharacteristics(data []byte) (*VESATransferCharacteristics, error) {
	switch len(data) {
	case 7, 15, 31:
	default:
		return nil, invalidf("VESA Display Transfer Characteristics Data Block: Invalid length %d.", len(data))
	}

	tc := &VESATransferCharacteristics{
		Usage:  TransferUsage(buffer.BitRange(data[0], 7, 6)),
		Points: make([]float64, len(data)+1),
	}
	tc.Points[0] = float64(buffer.BitRange(data[0], 5, 0)) / 1023
	for i := 1; i < len(data); i++ {
		tc.Points[i] = tc.Points[i-1] + float64(data[i])/1023
	}
	tc.Points[len(data)] = 1.0

	return tc, nil
}
