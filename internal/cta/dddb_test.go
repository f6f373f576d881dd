package cta

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dddbPayload is a DisplayPort panel with four lanes and one additional
// primary.
var dddbPayload = []byte{
	0x94,       // 0x02 DisplayPort, 4 lanes
	0x12,       // 0x03 version 1, release 2
	0x01,       // 0x04 HDCP
	0x29, 0x2C, // 0x05 10 to 300 MHz
	0x80, 0x07, // 0x07 1920
	0x38, 0x04, // 0x09 1080
	78,         // 0x0B aspect ratio
	0x11,       // 0x0C landscape, rotates clockwise, upper left, long axis
	0x01,       // 0x0D subpixel layout
	25, 25,     // 0x0E pitch
	0xA0,       // 0x10 temporal dithering, direct drive
	0x80,       // 0x11 audio supported
	0x85,       // 0x12 +10 ms
	0x45,       // 0x13 single buffering, 5 Hz range
	60,         // 0x14 native rate
	0x77,       // 0x15 8 bit
	0x50, 0x01, // 0x16 low bits, one primary
	0x80, 0x40, // 0x18 primary 1
	0, 0, 0, 0, // 0x1A unused primaries
	0x85,       // 0x1E white to black, 5 ms
	0x23,       // 0x1F overscan
}

func TestVESADisplayDevice(t *testing.T) {
	require.Len(t, dddbPayload, 30)

	ext := mustParse(t, newBlock(3, 0, [][]byte{extBlock(extVESADisplayDevice, dddbPayload...)}))
	dev := ext.DataBlocks()[0].VESADisplayDevice()
	require.NotNil(t, dev)
	assert.Empty(t, ext.Diagnostics())

	assert.Equal(t, DDDBInterfaceDisplayPort, dev.InterfaceType)
	assert.Equal(t, 4, dev.NumChannels)
	assert.Equal(t, 1, dev.InterfaceVersion)
	assert.Equal(t, 2, dev.InterfaceRelease)
	assert.Equal(t, DDDBContentProtectionHDCP, dev.ContentProtection)
	assert.Equal(t, 10, dev.MinClockFreqMHz)
	assert.Equal(t, 300, dev.MaxClockFreqMHz)
	assert.Equal(t, 1920, dev.NativeHorizPixels)
	assert.Equal(t, 1080, dev.NativeVertPixels)
	assert.InDelta(t, 1.78, dev.AspectRatio, 1e-9)
	assert.Equal(t, DDDBOrientationLandscape, dev.DefaultOrientation)
	assert.Equal(t, DDDBRotation90DegCW, dev.RotationCap)
	assert.Equal(t, DDDBZeroPixelUpperLeft, dev.ZeroPixelLocation)
	assert.Equal(t, DDDBScanDirectionFastLongSlowShort, dev.ScanDirection)
	assert.Equal(t, DDDBSubpixelLayout(1), dev.SubpixelLayout)
	assert.InDelta(t, 0.25, dev.HorizPitchMM, 1e-9)
	assert.InDelta(t, 0.25, dev.VertPitchMM, 1e-9)
	assert.Equal(t, DDDBDitheringTemporal, dev.DitheringType)
	assert.True(t, dev.DirectDrive)
	assert.False(t, dev.OverdriveNotRecommended)
	assert.False(t, dev.Deinterlacing)
	assert.True(t, dev.AudioSupport)
	assert.False(t, dev.SeparateAudioInputs)
	assert.True(t, dev.AudioDelayProvided)
	assert.Equal(t, 10, dev.AudioDelayMS)
	assert.Equal(t, DDDBFrameRateConversionSingleBuffering, dev.FrameRateConversion)
	assert.Equal(t, 5, dev.FrameRateRangeHz)
	assert.Equal(t, 60, dev.FrameRateNativeHz)
	assert.Equal(t, 8, dev.BitDepthInterface)
	assert.Equal(t, 8, dev.BitDepthDisplay)
	assert.Equal(t, []Chromaticity{{X: 513.0 / 1024, Y: 257.0 / 1024}}, dev.AdditionalPrimaryChromaticities)
	assert.Equal(t, DDDBResponseTimeWhiteToBlack, dev.ResponseTimeTransition)
	assert.Equal(t, 5, dev.ResponseTimeMS)
	assert.Equal(t, 2, dev.OverscanHorizPct)
	assert.Equal(t, 3, dev.OverscanVertPct)
}

func TestVESADisplayDevice_AudioDelaySign(t *testing.T) {
	payload := slices.Clone(dddbPayload)
	payload[0x12-2] = 0x05
	d := &decoder{log: newTestLog(3)}
	dev, err := d.parseVESADisplayDevice(payload)
	require.NoError(t, err)
	assert.Equal(t, -10, dev.AudioDelayMS)

	payload[0x12-2] = 0x00
	dev, err = d.parseVESADisplayDevice(payload)
	require.NoError(t, err)
	assert.False(t, dev.AudioDelayProvided)
}

func TestVESADisplayDevice_Complaints(t *testing.T) {
	tests := []struct {
		name   string
		offset int
		value  byte
		diag   string
	}{
		{name: "HDMI-A with two channels", offset: 0x02, value: 0x62, diag: "Invalid number of lanes/channels 2."},
		{name: "content protection", offset: 0x04, value: 0x07, diag: "Invalid content protection 0x7."},
		{name: "clock range", offset: 0x05, value: 0xFC, diag: "Minimum clock frequency (63 MHz) greater than maximum (44 MHz)."},
		{name: "scan direction", offset: 0x0C, value: 0x03, diag: "Invalid scan direction 0x3."},
		{name: "subpixel layout", offset: 0x0D, value: 0x20, diag: "Invalid subpixel layout 0x20."},
		{name: "misc reserved", offset: 0x10, value: 0x01, diag: "Reserved miscellaneous display capabilities bits 2-0 must be 0."},
		{name: "audio reserved", offset: 0x11, value: 0x01, diag: "Reserved audio bits 4-0 must be 0."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := slices.Clone(dddbPayload)
			payload[tt.offset-2] = tt.value
			d := &decoder{log: newTestLog(3)}
			_, err := d.parseVESADisplayDevice(payload)
			require.NoError(t, err)
			assert.Equal(t, []string{"VESA Video Display Device Data Block: " + tt.diag}, d.log.Entries())
		})
	}
}

func TestVESADisplayDevice_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		payload []byte
	}{
		{name: "short", payload: dddbPayload[:29]},
		{name: "unknown analog subtype", payload: func() []byte { p := slices.Clone(dddbPayload); p[0] = 0x03; return p }()},
		{name: "unknown interface", payload: func() []byte { p := slices.Clone(dddbPayload); p[0] = 0xD1; return p }()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(newBlock(3, 0, [][]byte{extBlock(extVESADisplayDevice, tt.payload...)}), Options{})
			assert.True(t, errors.Is(err, ErrInvalid), "err=%v", err)
		})
	}
}
