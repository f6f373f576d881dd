package cta

import "github.com/s0up4200/go-edidinfo/internal/buffer"

// VESADisplayDevice is the VESA Video Display Device Data Block (DDDB).
type VESADisplayDevice struct {
	InterfaceType DDDBInterfaceType
	// NumChannels is the lane/channel count, zero for analog interfaces or
	// when the advertised value does not fit the interface.
	NumChannels      int
	InterfaceVersion int
	InterfaceRelease int

	ContentProtection DDDBContentProtection

	// Clock bounds in MHz. Both are zero when min exceeds max.
	MinClockFreqMHz int
	MaxClockFreqMHz int

	NativeHorizPixels int
	NativeVertPixels  int

	AspectRatio        float64
	DefaultOrientation DDDBDefaultOrientation
	RotationCap        DDDBRotationCap
	ZeroPixelLocation  DDDBZeroPixelLocation
	ScanDirection      DDDBScanDirection
	SubpixelLayout     DDDBSubpixelLayout

	HorizPitchMM float64
	VertPitchMM  float64

	DitheringType           DDDBDitheringType
	DirectDrive             bool
	OverdriveNotRecommended bool
	Deinterlacing           bool

	AudioSupport        bool
	SeparateAudioInputs bool
	AudioInputOverride  bool
	AudioDelayProvided  bool
	// AudioDelayMS is negative when audio lags video.
	AudioDelayMS int

	FrameRateConversion DDDBFrameRateConversion
	FrameRateRangeHz    int
	FrameRateNativeHz   int

	BitDepthInterface int
	BitDepthDisplay   int

	AdditionalPrimaryChromaticities []Chromaticity

	ResponseTimeTransition DDDBResponseTimeTransition
	ResponseTimeMS         int

	OverscanHorizPct int
	OverscanVertPct  int
}

// Chromaticity is a CIE 1931 xy coordinate.
type Chromaticity struct {
	X float64
	Y float64
}

type DDDBInterfaceType uint8

const (
	DDDBInterfaceVGA DDDBInterfaceType = iota
	DDDBInterfaceNaviV
	DDDBInterfaceNaviD
	DDDBInterfaceLVDS
	DDDBInterfaceRSDS
	DDDBInterfaceDVID
	DDDBInterfaceDVIIAnalog
	DDDBInterfaceDVIIDigital
	DDDBInterfaceHDMIA
	DDDBInterfaceHDMIB
	DDDBInterfaceMDDI
	DDDBInterfaceDisplayPort
	DDDBInterfaceIEEE1394
	DDDBInterfaceM1Analog
	DDDBInterfaceM1Digital
)

func (t DDDBInterfaceType) String() string {
	switch t {
	case DDDBInterfaceVGA:
		return "Analog (15HD/VGA)"
	case DDDBInterfaceNaviV:
		return "Analog (VESA NAVI-V (15HD))"
	case DDDBInterfaceNaviD:
		return "Analog (VESA NAVI-D)"
	case DDDBInterfaceLVDS:
		return "LVDS"
	case DDDBInterfaceRSDS:
		return "RSDS"
	case DDDBInterfaceDVID:
		return "DVI-D"
	case DDDBInterfaceDVIIAnalog:
		return "DVI-I analog"
	case DDDBInterfaceDVIIDigital:
		return "DVI-I digital"
	case DDDBInterfaceHDMIA:
		return "HDMI-A"
	case DDDBInterfaceHDMIB:
		return "HDMI-B"
	case DDDBInterfaceMDDI:
		return "MDDI"
	case DDDBInterfaceDisplayPort:
		return "DisplayPort"
	case DDDBInterfaceIEEE1394:
		return "IEEE-1394"
	case DDDBInterfaceM1Analog:
		return "M1 analog"
	case DDDBInterfaceM1Digital:
		return "M1 digital"
	default:
		return "Unknown"
	}
}

// validChannels reports whether n lanes/channels make sense for t.
func (t DDDBInterfaceType) validChannels(n int) bool {
	switch t {
	case DDDBInterfaceVGA, DDDBInterfaceNaviV, DDDBInterfaceNaviD,
		DDDBInterfaceDVIIAnalog, DDDBInterfaceIEEE1394, DDDBInterfaceM1Analog:
		return n == 0
	case DDDBInterfaceLVDS, DDDBInterfaceRSDS:
		return true
	case DDDBInterfaceDVID, DDDBInterfaceDVIIDigital, DDDBInterfaceMDDI, DDDBInterfaceM1Digital:
		return n == 1 || n == 2
	case DDDBInterfaceHDMIA:
		return n == 1
	case DDDBInterfaceHDMIB:
		return n == 2
	case DDDBInterfaceDisplayPort:
		return n == 1 || n == 2 || n == 4
	}
	return false
}

type DDDBContentProtection uint8

const (
	DDDBContentProtectionNone DDDBContentProtection = iota
	DDDBContentProtectionHDCP
	DDDBContentProtectionDTCP
	DDDBContentProtectionDPCP
)

func (c DDDBContentProtection) String() string {
	return enumName(int(c), "None", "HDCP", "DTCP", "DPCP")
}

type DDDBDefaultOrientation uint8

const (
	DDDBOrientationLandscape DDDBDefaultOrientation = iota
	DDDBOrientationPortrait
	DDDBOrientationUnfixed
	DDDBOrientationUndefined
)

func (o DDDBDefaultOrientation) String() string {
	return enumName(int(o), "Landscape", "Portrait", "Not Fixed", "Undefined")
}

type DDDBRotationCap uint8

const (
	DDDBRotationNone DDDBRotationCap = iota
	DDDBRotation90DegCW
	DDDBRotation90DegCCW
	DDDBRotation90DegEither
)

func (r DDDBRotationCap) String() string {
	return enumName(int(r), "None",
		"Can rotate 90 degrees clockwise",
		"Can rotate 90 degrees counterclockwise",
		"Can rotate 90 degrees in either direction")
}

type DDDBZeroPixelLocation uint8

const (
	DDDBZeroPixelUpperLeft DDDBZeroPixelLocation = iota
	DDDBZeroPixelUpperRight
	DDDBZeroPixelLowerLeft
	DDDBZeroPixelLowerRight
)

func (z DDDBZeroPixelLocation) String() string {
	return enumName(int(z), "Upper Left", "Upper Right", "Lower Left", "Lower Right")
}

type DDDBScanDirection uint8

const (
	DDDBScanDirectionUndefined DDDBScanDirection = iota
	DDDBScanDirectionFastLongSlowShort
	DDDBScanDirectionFastShortSlowLong
)

func (s DDDBScanDirection) String() string {
	return enumName(int(s), "Not defined",
		"Fast Scan is on the Major (Long) Axis and Slow Scan is on the Minor Axis",
		"Fast Scan is on the Minor (Short) Axis and Slow Scan is on the Major Axis")
}

type DDDBSubpixelLayout uint8

const (
	DDDBSubpixelUndefined DDDBSubpixelLayout = iota
	DDDBSubpixelRGBVert
	DDDBSubpixelRGBHoriz
	DDDBSubpixelEDIDChromVert
	DDDBSubpixelEDIDChromHoriz
	DDDBSubpixelQuadRGGB
	DDDBSubpixelQuadGBRG
	DDDBSubpixelDeltaRGB
	DDDBSubpixelMosaic
	DDDBSubpixelQuadAny
	DDDBSubpixelFive
	DDDBSubpixelSix
	DDDBSubpixelClairvoyantePentile
)

func (l DDDBSubpixelLayout) String() string {
	return enumName(int(l), "Not defined",
		"RGB vertical stripes",
		"RGB horizontal stripes",
		"Vertical stripes using primary order",
		"Horizontal stripes using primary order",
		"Quad sub-pixels, red at top left",
		"Quad sub-pixels, red at bottom left",
		"Delta (triad) RGB sub-pixels",
		"Mosaic",
		"Quad sub-pixels, RGB + 1 additional color",
		"Five sub-pixels, RGB + 2 additional colors",
		"Six sub-pixels, RGB + 3 additional colors",
		"Clairvoyante, Inc. PenTile Matrix (tm) layout")
}

type DDDBDitheringType uint8

const (
	DDDBDitheringNone DDDBDitheringType = iota
	DDDBDitheringSpatial
	DDDBDitheringTemporal
	DDDBDitheringSpatialAndTemporal
)

func (t DDDBDitheringType) String() string {
	return enumName(int(t), "None", "Spatial", "Temporal", "Spatial and Temporal")
}

type DDDBFrameRateConversion uint8

const (
	DDDBFrameRateConversionNone DDDBFrameRateConversion = iota
	DDDBFrameRateConversionSingleBuffering
	DDDBFrameRateConversionDoubleBuffering
	DDDBFrameRateConversionAdvanced
)

func (c DDDBFrameRateConversion) String() string {
	return enumName(int(c), "None", "Single Buffering", "Double Buffering", "Advanced Frame Rate Conversion")
}

type DDDBResponseTimeTransition uint8

const (
	DDDBResponseTimeBlackToWhite DDDBResponseTimeTransition = iota
	DDDBResponseTimeWhiteToBlack
)

func (t DDDBResponseTimeTransition) String() string {
	return enumName(int(t), "Black -> White", "White -> Black")
}

func enumName(v int, names ...string) string {
	if v < 0 || v >= len(names) {
		return "Unknown"
	}
	return names[v]
}

// dddbLength is the full block length including the tag and extended tag.
const dddbLength = 32

func (d *decoder) parseVESADisplayDevice(data []byte) (*VESADisplayDevice, error) {
	const prefix = "VESA Video Display Device Data Block"

	if len(data)+2 != dddbLength {
		return nil, invalidf("%s: Invalid length %d.", prefix, len(data))
	}
	// Offsets below follow the VESA DDDB standard, which counts the two
	// header bytes.
	at := func(offset int) byte { return data[offset-2] }

	dev := &VESADisplayDevice{}

	ifaceType := buffer.BitRange(at(0x02), 7, 4)
	channels := int(buffer.BitRange(at(0x02), 3, 0))
	switch ifaceType {
	case 0x0:
		// Analog interfaces reuse the channel nibble as a subtype.
		switch channels {
		case 0x0:
			dev.InterfaceType = DDDBInterfaceVGA
		case 0x1:
			dev.InterfaceType = DDDBInterfaceNaviV
		case 0x2:
			dev.InterfaceType = DDDBInterfaceNaviD
		default:
			return nil, invalidf("%s: Unknown analog interface type 0x%x.", prefix, channels)
		}
		channels = 0
	case 0x1, 0x2, 0x3, 0x4, 0x5, 0x6, 0x7, 0x8, 0x9, 0xA, 0xB, 0xC:
		dev.InterfaceType = DDDBInterfaceLVDS + DDDBInterfaceType(ifaceType-1)
	default:
		return nil, invalidf("%s: Unknown interface type 0x%x.", prefix, ifaceType)
	}

	if dev.InterfaceType.validChannels(channels) {
		dev.NumChannels = channels
	} else {
		d.log.Add("%s: Invalid number of lanes/channels %d.", prefix, channels)
	}

	dev.InterfaceVersion = int(buffer.BitRange(at(0x03), 7, 4))
	dev.InterfaceRelease = int(buffer.BitRange(at(0x03), 3, 0))

	if cp := at(0x04); cp <= byte(DDDBContentProtectionDPCP) {
		dev.ContentProtection = DDDBContentProtection(cp)
	} else {
		d.log.Add("%s: Invalid content protection 0x%x.", prefix, cp)
	}

	dev.MinClockFreqMHz = int(buffer.BitRange(at(0x05), 7, 2))
	dev.MaxClockFreqMHz = int(buffer.BitRange(at(0x05), 1, 0))<<8 | int(at(0x06))
	if dev.MinClockFreqMHz > dev.MaxClockFreqMHz {
		d.log.Add("%s: Minimum clock frequency (%d MHz) greater than maximum (%d MHz).",
			prefix, dev.MinClockFreqMHz, dev.MaxClockFreqMHz)
		dev.MinClockFreqMHz, dev.MaxClockFreqMHz = 0, 0
	}

	dev.NativeHorizPixels = int(buffer.Uint16LE(data, 0x07-2))
	dev.NativeVertPixels = int(buffer.Uint16LE(data, 0x09-2))

	dev.AspectRatio = float64(at(0x0B))/100 + 1
	dev.DefaultOrientation = DDDBDefaultOrientation(buffer.BitRange(at(0x0C), 7, 6))
	dev.RotationCap = DDDBRotationCap(buffer.BitRange(at(0x0C), 5, 4))
	dev.ZeroPixelLocation = DDDBZeroPixelLocation(buffer.BitRange(at(0x0C), 3, 2))
	if scan := buffer.BitRange(at(0x0C), 1, 0); scan != 3 {
		dev.ScanDirection = DDDBScanDirection(scan)
	} else {
		d.log.Add("%s: Invalid scan direction 0x%x.", prefix, scan)
	}

	if layout := at(0x0D); layout <= byte(DDDBSubpixelClairvoyantePentile) {
		dev.SubpixelLayout = DDDBSubpixelLayout(layout)
	} else {
		d.log.Add("%s: Invalid subpixel layout 0x%x.", prefix, layout)
	}

	dev.HorizPitchMM = float64(at(0x0E)) * 0.01
	dev.VertPitchMM = float64(at(0x0F)) * 0.01

	misc := at(0x10)
	dev.DitheringType = DDDBDitheringType(buffer.BitRange(misc, 7, 6))
	dev.DirectDrive = buffer.Bit(misc, 5)
	dev.OverdriveNotRecommended = buffer.Bit(misc, 4)
	dev.Deinterlacing = buffer.Bit(misc, 3)
	if buffer.BitRange(misc, 2, 0) != 0 {
		d.log.Add("%s: Reserved miscellaneous display capabilities bits 2-0 must be 0.", prefix)
	}

	audio := at(0x11)
	dev.AudioSupport = buffer.Bit(audio, 7)
	dev.SeparateAudioInputs = buffer.Bit(audio, 6)
	dev.AudioInputOverride = buffer.Bit(audio, 5)
	if buffer.BitRange(audio, 4, 0) != 0 {
		d.log.Add("%s: Reserved audio bits 4-0 must be 0.", prefix)
	}

	delay := at(0x12)
	dev.AudioDelayProvided = delay != 0
	dev.AudioDelayMS = 2 * int(buffer.BitRange(delay, 6, 0))
	if !buffer.Bit(delay, 7) {
		dev.AudioDelayMS = -dev.AudioDelayMS
	}

	dev.FrameRateConversion = DDDBFrameRateConversion(buffer.BitRange(at(0x13), 7, 6))
	dev.FrameRateRangeHz = int(buffer.BitRange(at(0x13), 5, 0))
	dev.FrameRateNativeHz = int(at(0x14))

	dev.BitDepthInterface = int(buffer.BitRange(at(0x15), 7, 4)) + 1
	dev.BitDepthDisplay = int(buffer.BitRange(at(0x15), 3, 0)) + 1

	lows := [3]byte{
		buffer.BitRange(at(0x16), 7, 4),
		buffer.BitRange(at(0x16), 3, 0),
		buffer.BitRange(at(0x17), 7, 4),
	}
	count := int(buffer.BitRange(at(0x17), 1, 0))
	dev.AdditionalPrimaryChromaticities = make([]Chromaticity, 0, count)
	for i := range count {
		dev.AdditionalPrimaryChromaticities = append(dev.AdditionalPrimaryChromaticities,
			parseChromaticity(lows[i], at(0x18+2*i), at(0x19+2*i)))
	}
	if buffer.BitRange(at(0x17), 3, 2) != 0 {
		d.log.Add("%s: Reserved additional primary chromaticities bits 3-2 of byte 0x17 must be 0.", prefix)
	}

	dev.ResponseTimeTransition = DDDBResponseTimeTransition(buffer.BitRange(at(0x1E), 7, 7))
	dev.ResponseTimeMS = int(buffer.BitRange(at(0x1E), 6, 0))

	dev.OverscanHorizPct = int(buffer.BitRange(at(0x1F), 7, 4))
	dev.OverscanVertPct = int(buffer.BitRange(at(0x1F), 3, 0))

	return dev, nil
}

// parseChromaticity combines the 8 high bits of each coordinate with the two
// low bits packed into a shared nibble.
func parseChromaticity(low, highX, highY byte) Chromaticity {
	rawX := int(highX)<<2 | int(buffer.BitRange(low, 3, 2))
	rawY := int(highY)<<2 | int(buffer.BitRange(low, 1, 0))
	return Chromaticity{X: float64(rawX) / 1024, Y: float64(rawY) / 1024}
}
