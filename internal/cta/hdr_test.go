package cta

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHDRStaticMetadata(t *testing.T) {
	ext := mustParse(t, newBlock(3, 0, [][]byte{extBlock(extHDRStaticMetadata, 0x05, 0x01, 0x60, 0x40, 0x20)}))
	m := ext.DataBlocks()[0].HDRStaticMetadata()
	require.NotNil(t, m)

	assert.Equal(t, HDRStaticMetadataEOTFs{TraditionalSDR: true, PQ: true}, m.EOTFs)
	assert.True(t, m.Descriptors.Type1)
	assert.InDelta(t, 400, m.DesiredContentMaxLuminance, 1e-9)
	assert.InDelta(t, 200, m.DesiredContentMaxFrameAvgLuminance, 1e-9)
	assert.InDelta(t, 400*math.Pow(32.0/255, 2)/100, m.DesiredContentMinLuminance, 1e-9)
	assert.Empty(t, ext.Diagnostics())
}

func TestHDRStaticMetadata_OptionalLuminance(t *testing.T) {
	d := &decoder{log: newTestLog(3)}

	m, err := d.parseHDRStaticMetadata([]byte{0x01, 0x01})
	require.NoError(t, err)
	assert.Zero(t, m.DesiredContentMaxLuminance)
	assert.Zero(t, m.DesiredContentMaxFrameAvgLuminance)
	assert.Zero(t, m.DesiredContentMinLuminance)

	m, err = d.parseHDRStaticMetadata([]byte{0x01, 0x01, 0x00, 0x40, 0x20})
	require.NoError(t, err)
	assert.Zero(t, m.DesiredContentMinLuminance)
	assert.Equal(t, []string{
		"HDR Static Metadata Data Block: Desired content min luminance is set, but max luminance is unset.",
	}, d.log.Entries())
}

func TestHDRStaticMetadata_UnknownBits(t *testing.T) {
	d := &decoder{log: newTestLog(3)}
	_, err := d.parseHDRStaticMetadata([]byte{0x11, 0x03})
	require.NoError(t, err)
	assert.Len(t, d.log.Entries(), 2)

	d = &decoder{log: newTestLog(4)}
	_, err = d.parseHDRStaticMetadata([]byte{0x11, 0x03})
	require.NoError(t, err)
	assert.Empty(t, d.log.Entries())
}

func TestLuminance(t *testing.T) {
	assert.Zero(t, MaxLuminance(0))
	assert.InDelta(t, 100, MaxLuminance(32), 1e-9)
	assert.InDelta(t, 50*math.Pow(2, 255.0/32), MaxLuminance(255), 1e-9)

	prev := 0.0
	for raw := 1; raw <= 255; raw++ {
		v := MaxLuminance(uint8(raw))
		require.Greater(t, v, prev, "raw=%d", raw)
		prev = v
	}

	assert.Zero(t, MinLuminance(0, 400))
	assert.InDelta(t, 4, MinLuminance(255, 400), 1e-9)
	for raw := 1; raw <= 255; raw++ {
		assert.LessOrEqual(t, MinLuminance(uint8(raw), 400), 400/100.0)
	}
}

func TestHDRDynamicMetadata(t *testing.T) {
	d := &decoder{log: newTestLog(3)}
	m, err := d.parseHDRDynamicMetadata([]byte{
		0x03, 0x01, 0x00, 0x02, // type 1, version 2
		0x03, 0x02, 0x00, 0x31, // type 2, version 1, TS 103 433-1 and -2
		0x02, 0x03, 0x00,       // type 3
		0x03, 0x04, 0x00, 0x01, // type 4
		0x03, 0x00, 0x01, 0x05, // type 256
		0x02, 0x05, 0x00,       // unknown
	})
	require.NoError(t, err)

	require.NotNil(t, m.Type1)
	assert.Equal(t, 2, m.Type1.Version)
	require.NotNil(t, m.Type2)
	assert.Equal(t, HDRDynamicMetadataType2{TS103433SpecVersion: 1, TS103433_1Capable: true, TS103433_2Capable: true}, *m.Type2)
	assert.NotNil(t, m.Type3)
	require.NotNil(t, m.Type4)
	assert.Equal(t, 1, m.Type4.Version)
	require.NotNil(t, m.Type256)
	assert.Equal(t, 5, m.Type256.GraphicsOverlayFlagVersion)
	assert.Equal(t, []string{"HDR Dynamic Metadata Data Block: Unknown Type 0x0005."}, d.log.Entries())
}

func TestHDRDynamicMetadata_Type2VersionZero(t *testing.T) {
	d := &decoder{log: newTestLog(3)}
	m, err := d.parseHDRDynamicMetadata([]byte{0x03, 0x02, 0x00, 0x10})
	require.NoError(t, err)
	assert.Nil(t, m.Type2)
	assert.Len(t, d.log.Entries(), 1)
}

func TestHDRDynamicMetadata_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		payload []byte
	}{
		{name: "too short", payload: []byte{0x01, 0x00}},
		{name: "type overflows block", payload: []byte{0x05, 0x01, 0x00}},
		{name: "type length below 2", payload: []byte{0x01, 0x01, 0x00}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(newBlock(3, 0, [][]byte{extBlock(extHDRDynamicMetadata, tt.payload...)}), Options{})
			assert.True(t, errors.Is(err, ErrInvalid), "err=%v", err)
		})
	}
}
