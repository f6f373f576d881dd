package report

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/s0up4200/go-edidinfo/internal/cta"
	"github.com/s0up4200/go-edidinfo/internal/edid"
	"github.com/s0up4200/go-edidinfo/internal/settings"
	"github.com/s0up4200/go-edidinfo/internal/timing"
)

func renderText(e *edid.EDID, s settings.Settings, uncommon UncommonFeatures) string {
	var b strings.Builder

	writeBaseBlock(&b, e)
	for _, ext := range e.Extensions {
		b.WriteString("\n")
		if ext.CTA == nil {
			fmt.Fprintf(&b, "Block %d, Unknown Extension Block (0x%02x)\n", ext.Index, ext.Tag)
			continue
		}
		fmt.Fprintf(&b, "Block %d, CTA-861 Extension Block:\n", ext.Index)
		writeCTABlock(&b, ext.CTA)
	}

	if s.ShowUncommon && uncommon.Any() {
		b.WriteString("\nUncommon features:\n")
		if uncommon.TransferCharacteristics {
			b.WriteString("  VESA Display Transfer Characteristics\n")
		}
	}

	if s.ShowDiagnostics {
		writeDiagnostics(&b, e)
	}
	return b.String()
}

func writeBaseBlock(b *strings.Builder, e *edid.EDID) {
	b.WriteString("Block 0, Base EDID:\n")
	fmt.Fprintf(b, "  EDID Structure Version & Revision: %d.%d\n", e.Version, e.Revision)
	b.WriteString("  Vendor & Product Identification:\n")
	fmt.Fprintf(b, "    Manufacturer: %s\n", e.ManufacturerID)
	fmt.Fprintf(b, "    Model: %d\n", e.ProductCode)
	if e.SerialNumber != 0 {
		fmt.Fprintf(b, "    Serial Number: %d\n", e.SerialNumber)
	}
	switch e.ManufactureWeek {
	case 0:
		fmt.Fprintf(b, "    Made in: %d\n", e.ManufactureYear)
	case 0xFF:
		fmt.Fprintf(b, "    Model year: %d\n", e.ManufactureYear)
	default:
		fmt.Fprintf(b, "    Made in: week %d of %d\n", e.ManufactureWeek, e.ManufactureYear)
	}
	if e.ProductName != "" {
		fmt.Fprintf(b, "  Display Product Name: '%s'\n", e.ProductName)
	}
	if e.ProductSerial != "" {
		fmt.Fprintf(b, "  Display Product Serial Number: '%s'\n", e.ProductSerial)
	}
	for _, s := range e.DataStrings {
		fmt.Fprintf(b, "  Alphanumeric Data String: '%s'\n", s)
	}
	writeDTDs(b, e.DetailedTimingDefs)
	if e.ExtensionCount > 0 {
		fmt.Fprintf(b, "  Extension blocks: %d\n", e.ExtensionCount)
	}
}

func writeDTDs(b *strings.Builder, dtds []*timing.DetailedTimingDef) {
	if len(dtds) == 0 {
		return
	}
	b.WriteString("  Detailed Timing Descriptors:\n")
	for i, d := range dtds {
		writeDTD(b, i+1, d)
	}
}

func writeDTD(b *strings.Builder, n int, d *timing.DetailedTimingDef) {
	vActive := strconv.Itoa(d.VertActive)
	if d.Interlaced {
		vActive += "i"
	}
	hTotal := d.HorizActive + d.HorizBlank
	var hFreqKHz float64
	if hTotal > 0 {
		hFreqKHz = float64(d.PixelClockHz) / float64(hTotal) / 1000
	}
	fmt.Fprintf(b, "    DTD %d: %5dx%-5s %10.6f Hz %8.3f kHz %13.6f MHz (%d mm x %d mm)\n",
		n, d.HorizActive, vActive, d.RefreshHz(), hFreqKHz, float64(d.PixelClockHz)/1e6,
		d.HorizImageMM, d.VertImageMM)

	hPol, vPol := "", ""
	switch d.Signal {
	case timing.SignalDigitalSeparate:
		hPol = " Hpol " + polarity(d.HSyncPolarity)
		vPol = " Vpol " + polarity(d.VSyncPolarity)
	case timing.SignalDigitalComposite:
		hPol = " Hpol " + polarity(d.HSyncPolarity)
	}
	fmt.Fprintf(b, "                 Hfront %4d Hsync %3d Hback %4d%s", d.HorizFrontPorch, d.HorizSyncPulse, d.HorizBackPorch(), hPol)
	if d.HorizBorder != 0 {
		fmt.Fprintf(b, " Hborder %d", d.HorizBorder)
	}
	b.WriteString("\n")
	fmt.Fprintf(b, "                 Vfront %4d Vsync %3d Vback %4d%s", d.VertFrontPorch, d.VertSyncPulse, d.VertBackPorch(), vPol)
	if d.VertBorder != 0 {
		fmt.Fprintf(b, " Vborder %d", d.VertBorder)
	}
	b.WriteString("\n")
}

func polarity(p timing.SyncPolarity) string {
	if p == timing.SyncPositive {
		return "P"
	}
	return "N"
}

func writeCTABlock(b *strings.Builder, ext *cta.ExtensionBlock) {
	fmt.Fprintf(b, "  Revision: %d\n", ext.Revision())
	if ext.Revision() >= 2 {
		flags := ext.Flags()
		if flags.ITUnderscan {
			b.WriteString("  Underscans IT Video Formats by default\n")
		}
		if flags.BasicAudio {
			b.WriteString("  Basic audio support\n")
		}
		if flags.YCC444 {
			b.WriteString("  Supports YCbCr 4:4:4\n")
		}
		if flags.YCC422 {
			b.WriteString("  Supports YCbCr 4:2:2\n")
		}
		fmt.Fprintf(b, "  Native detailed modes: %d\n", flags.NativeDTDs)
	}

	var svds []cta.SVD
	for _, block := range ext.DataBlocks() {
		svds = append(svds, block.SVDs()...)
	}

	for _, block := range ext.DataBlocks() {
		fmt.Fprintf(b, "  %s:\n", block.Tag())
		switch block.Tag() {
		case cta.DataBlockVideo:
			writeSVDs(b, block.SVDs())
		case cta.DataBlockYCbCr420:
			writeSVDs(b, block.YCbCr420SVDs())
		case cta.DataBlockAudio:
			writeSADs(b, block.SADs())
		case cta.DataBlockSpeakerAlloc:
			writeSpeakerAlloc(b, block.SpeakerAlloc())
		case cta.DataBlockVideoCap:
			writeVideoCap(b, block.VideoCap())
		case cta.DataBlockVESADisplayDevice:
			writeDisplayDevice(b, block.VESADisplayDevice())
		case cta.DataBlockColorimetry:
			writeColorimetry(b, block.Colorimetry())
		case cta.DataBlockHDRStaticMetadata:
			writeHDRStatic(b, block.HDRStaticMetadata())
		case cta.DataBlockHDRDynamicMetadata:
			writeHDRDynamic(b, block.HDRDynamicMetadata())
		case cta.DataBlockVESATransferCharacteristics:
			writeTransfer(b, block.VESATransferCharacteristics())
		case cta.DataBlockYCbCr420CapMap:
			writeCapMap(b, block.YCbCr420CapMap(), svds)
		case cta.DataBlockInfoFrame:
			writeInfoFrame(b, block.InfoFrame())
		}
	}

	writeDTDs(b, ext.DetailedTimingDefs())
}

func writeSVDs(b *strings.Builder, svds []cta.SVD) {
	for _, svd := range svds {
		writeVIC(b, svd)
	}
}

func writeVIC(b *strings.Builder, svd cta.SVD) {
	native := ""
	if svd.Native {
		native = " (native)"
	}
	f, ok := cta.VideoFormatFromVIC(svd.VIC)
	if !ok {
		fmt.Fprintf(b, "    VIC %3d: Unknown%s\n", svd.VIC, native)
		return
	}

	hTotal := f.HorizActive + f.HorizFront + f.HorizSync + f.HorizBack
	vActive := float64(f.VertActive)
	suffix := "p"
	if f.Interlaced {
		vActive /= 2
		suffix = "i"
	}
	vTotal := vActive + float64(f.VertFront+f.VertSync+f.VertBack)
	if f.Interlaced {
		vTotal += 0.5
	}
	refresh := float64(f.PixelClockHz) / (float64(hTotal) * vTotal)
	hFreqKHz := float64(f.PixelClockHz) / float64(hTotal) / 1000

	fmt.Fprintf(b, "    VIC %3d: %5dx%-5s %10.6f Hz %-7s %8.3f kHz %13.6f MHz%s\n",
		svd.VIC, f.HorizActive, strconv.Itoa(f.VertActive)+suffix, refresh,
		f.PictureAspectRatio, hFreqKHz, float64(f.PixelClockHz)/1e6, native)
}

func writeSADs(b *strings.Builder, sads []cta.SAD) {
	for _, sad := range sads {
		fmt.Fprintf(b, "    %s:\n", sad.Format)
		if sad.MaxChannels != 0 {
			fmt.Fprintf(b, "      Max channels: %d\n", sad.MaxChannels)
		}
		if r := sad.SampleRates; r != nil {
			b.WriteString("      Supported sample rates (kHz):")
			writeFlags(b, []flagName{
				{r.Has192kHz, "192"},
				{r.Has176_4kHz, "176.4"},
				{r.Has96kHz, "96"},
				{r.Has88_2kHz, "88.2"},
				{r.Has48kHz, "48"},
				{r.Has44_1kHz, "44.1"},
				{r.Has32kHz, "32"},
			})
		}
		if l := sad.LPCM; l != nil {
			b.WriteString("      Supported sample sizes (bits):")
			writeFlags(b, []flagName{
				{l.HasSampleSize24Bits, "24"},
				{l.HasSampleSize20Bits, "20"},
				{l.HasSampleSize16Bits, "16"},
			})
		}
		if sad.MaxBitrateKbs != 0 {
			fmt.Fprintf(b, "      Maximum bit rate: %d kb/s\n", sad.MaxBitrateKbs)
		}
		if m := sad.EnhancedAC3; m != nil {
			if m.SupportsJointObjectCoding {
				b.WriteString("      Supports Joint Object Coding\n")
			}
			if m.SupportsJointObjectCodingACMOD28 {
				b.WriteString("      Supports Joint Object Coding with ACMOD28\n")
			}
		}
		if m := sad.MAT; m != nil {
			if m.SupportsObjectAudioAndChannelBased {
				b.WriteString("      Supports Dolby TrueHD, object audio PCM and channel-based PCM\n")
				not := ""
				if !m.RequiresHashCalculation {
					not = "not "
				}
				fmt.Fprintf(b, "      Hash calculation %srequired for object audio PCM or channel-based PCM\n", not)
			} else {
				b.WriteString("      Supports only Dolby TrueHD\n")
			}
		}
		if m := sad.WMAPro; m != nil {
			fmt.Fprintf(b, "      Profile: %d\n", m.Profile)
		}
		if m := sad.MPEGH3D; m != nil {
			fmt.Fprintf(b, "      MPEG-H 3D Audio Level: %s\n", m.Level)
			if m.LowComplexityProfile {
				b.WriteString("      Supports MPEG-H 3D Audio Low Complexity Profile\n")
			}
			if m.BaselineProfile {
				b.WriteString("      Supports MPEG-H 3D Audio Baseline Profile\n")
			}
		}
		if m := sad.MPEGAAC; m != nil {
			b.WriteString("      AAC audio frame lengths:")
			writeFlags(b, []flagName{
				{m.HasFrameLength1024, "1024_TL"},
				{m.HasFrameLength960, "960_TL"},
			})
		}
		if m := sad.MPEGSurround; m != nil {
			if m.Signaling == cta.MPEGSurroundImplicitAndExplicit {
				b.WriteString("      Supports implicitly and explicitly signaled MPEG Surround data\n")
			} else {
				b.WriteString("      Supports only implicitly signaled MPEG Surround data\n")
			}
		}
		if m := sad.MPEGAACLE; m != nil && m.SupportsMultichannelSound {
			b.WriteString("      Supports 22.2ch System H\n")
		}
	}
}

type flagName struct {
	set  bool
	name string
}

// writeFlags finishes a line with the names of the set flags.
func writeFlags(b *strings.Builder, flags []flagName) {
	for _, f := range flags {
		if f.set {
			b.WriteString(" " + f.name)
		}
	}
	b.WriteString("\n")
}

func writeFlagLines(b *strings.Builder, flags []flagName) {
	for _, f := range flags {
		if f.set {
			fmt.Fprintf(b, "    %s\n", f.name)
		}
	}
}

func writeSpeakerAlloc(b *strings.Builder, sa *cta.SpeakerAlloc) {
	writeFlagLines(b, []flagName{
		{sa.FL_FR, "FL/FR - Front Left/Right"},
		{sa.LFE1, "LFE1 - Low Frequency Effects 1"},
		{sa.FC, "FC - Front Center"},
		{sa.BL_BR, "BL/BR - Back Left/Right"},
		{sa.BC, "BC - Back Center"},
		{sa.FLC_FRC, "FLc/FRc - Front Left/Right of Center"},
		{sa.FLW_FRW, "FLw/FRw - Front Left/Right Wide"},
		{sa.TpFL_TpFR, "TpFL/TpFR - Top Front Left/Right"},
		{sa.TpC, "TpC - Top Center"},
		{sa.TpFC, "TpFC - Top Front Center"},
		{sa.LS_RS, "LS/RS - Left/Right Surround"},
		{sa.LFE2, "LFE2 - Low Frequency Effects 2"},
		{sa.TpBC, "TpBC - Top Back Center"},
		{sa.SiL_SiR, "SiL/SiR - Side Left/Right"},
		{sa.TpSiL_TpSiR, "TpSiL/TpSiR - Top Side Left/Right"},
		{sa.TpBL_TpBR, "TpBL/TpBR - Top Back Left/Right"},
		{sa.BtFC, "BtFC - Bottom Front Center"},
		{sa.BtFL_BtFR, "BtFL/BtFR - Bottom Front Left/Right"},
	})
}

func writeVideoCap(b *strings.Builder, vc *cta.VideoCap) {
	quant := func(selectable bool, via string) string {
		if selectable {
			return "Selectable (via AVI " + via + ")"
		}
		return "No Data"
	}
	scan := func(s cta.OverUnderscan, unknown string) string {
		if s == cta.ScanUnknown {
			return unknown
		}
		return s.String()
	}
	fmt.Fprintf(b, "    YCbCr quantization: %s\n", quant(vc.SelectableYCCQuantizationRange, "YQ"))
	fmt.Fprintf(b, "    RGB quantization: %s\n", quant(vc.SelectableRGBQuantizationRange, "Q"))
	fmt.Fprintf(b, "    PT scan behavior: %s\n", scan(vc.PTOverUnderscan, "No Data"))
	fmt.Fprintf(b, "    IT scan behavior: %s\n", scan(vc.ITOverUnderscan, "IT video formats not supported"))
	fmt.Fprintf(b, "    CE scan behavior: %s\n", scan(vc.CEOverUnderscan, "CE video formats not supported"))
}

func writeColorimetry(b *strings.Builder, c *cta.Colorimetry) {
	writeFlagLines(b, []flagName{
		{c.XvYCC601, "xvYCC601"},
		{c.XvYCC709, "xvYCC709"},
		{c.SYCC601, "sYCC601"},
		{c.OpYCC601, "opYCC601"},
		{c.OpRGB, "opRGB"},
		{c.BT2020CYCC, "BT2020cYCC"},
		{c.BT2020YCC, "BT2020YCC"},
		{c.BT2020RGB, "BT2020RGB"},
		{c.ST2113RGB, "ST2113RGB"},
		{c.ICtCp, "ICtCp"},
	})
}

func writeHDRStatic(b *strings.Builder, h *cta.HDRStaticMetadata) {
	b.WriteString("    Electro optical transfer functions:\n")
	for _, f := range []flagName{
		{h.EOTFs.TraditionalSDR, "Traditional gamma - SDR luminance range"},
		{h.EOTFs.TraditionalHDR, "Traditional gamma - HDR luminance range"},
		{h.EOTFs.PQ, "SMPTE ST2084"},
		{h.EOTFs.HLG, "Hybrid Log-Gamma"},
	} {
		if f.set {
			fmt.Fprintf(b, "      %s\n", f.name)
		}
	}
	b.WriteString("    Supported static metadata descriptors:\n")
	if h.Descriptors.Type1 {
		b.WriteString("      Static metadata type 1\n")
	}
	if v := h.DesiredContentMaxLuminance; v > 0 {
		fmt.Fprintf(b, "    Desired content max luminance: %d (%.3f cd/m^2)\n", maxLuminanceCode(v), v)
	}
	if v := h.DesiredContentMaxFrameAvgLuminance; v > 0 {
		fmt.Fprintf(b, "    Desired content max frame-average luminance: %d (%.3f cd/m^2)\n", maxLuminanceCode(v), v)
	}
	if v := h.DesiredContentMinLuminance; v > 0 && h.DesiredContentMaxLuminance > 0 {
		code := math.Round(255 * math.Sqrt(v*100/h.DesiredContentMaxLuminance))
		fmt.Fprintf(b, "    Desired content min luminance: %d (%.3f cd/m^2)\n", int(code), v)
	}
}

// maxLuminanceCode inverts cta.MaxLuminance.
func maxLuminanceCode(v float64) int {
	return int(math.Round(32 * math.Log2(v/50)))
}

func writeHDRDynamic(b *strings.Builder, h *cta.HDRDynamicMetadata) {
	if t := h.Type1; t != nil {
		b.WriteString("    HDR Dynamic Metadata Type 1\n")
		fmt.Fprintf(b, "      Version: %d\n", t.Version)
	}
	if t := h.Type2; t != nil {
		b.WriteString("    HDR Dynamic Metadata Type 2\n")
		fmt.Fprintf(b, "      Version: %d\n", t.TS103433SpecVersion)
		if t.TS103433_1Capable {
			b.WriteString("      ETSI TS 103 433-1 capable\n")
		}
		if t.TS103433_2Capable {
			b.WriteString("      ETSI TS 103 433-2 [i.12] capable\n")
		}
		if t.TS103433_3Capable {
			b.WriteString("      ETSI TS 103 433-3 [i.13] capable\n")
		}
	}
	if h.Type3 != nil {
		b.WriteString("    HDR Dynamic Metadata Type 3\n")
	}
	if t := h.Type4; t != nil {
		b.WriteString("    HDR Dynamic Metadata Type 4\n")
		fmt.Fprintf(b, "      Version: %d\n", t.Version)
	}
	if t := h.Type256; t != nil {
		b.WriteString("    HDR Dynamic Metadata Type 256\n")
		fmt.Fprintf(b, "      Version: %d\n", t.GraphicsOverlayFlagVersion)
	}
}

func writeTransfer(b *strings.Builder, tc *cta.VESATransferCharacteristics) {
	usage := tc.Usage.String()
	if usage != "" {
		usage = strings.ToUpper(usage[:1]) + usage[1:]
	}
	fmt.Fprintf(b, "    %s transfer characteristics:", usage)
	for _, p := range tc.Points {
		fmt.Fprintf(b, " %d", int(math.Round(p*1023)))
	}
	b.WriteString("\n")
}

func writeCapMap(b *strings.Builder, m *cta.YCbCr420CapMap, svds []cta.SVD) {
	if m.All() {
		b.WriteString("    All VDB SVDs\n")
		return
	}
	found := false
	for i, svd := range svds {
		if m.Supported(i) {
			writeVIC(b, svd)
			found = true
		}
	}
	if !found {
		b.WriteString("    Empty Capability Map\n")
	}
}

func writeInfoFrame(b *strings.Builder, ifb *cta.InfoFrameBlock) {
	fmt.Fprintf(b, "    Simultaneous VSIFs: %d\n", ifb.NumSimultaneousVSIFs)
	for _, d := range ifb.InfoFrames {
		fmt.Fprintf(b, "    %s\n", d.Type)
	}
}

func writeDisplayDevice(b *strings.Builder, d *cta.VESADisplayDevice) {
	yesNo := func(v bool) string {
		if v {
			return "Yes"
		}
		return "No"
	}

	fmt.Fprintf(b, "    Interface Type: %s", d.InterfaceType)
	if d.NumChannels > 0 {
		fmt.Fprintf(b, " %d lanes/channels", d.NumChannels)
	}
	b.WriteString("\n")
	fmt.Fprintf(b, "    Interface Standard Version: %d.%d\n", d.InterfaceVersion, d.InterfaceRelease)
	fmt.Fprintf(b, "    Content Protection Support: %s\n", d.ContentProtection)
	if d.MaxClockFreqMHz > 0 {
		fmt.Fprintf(b, "    Minimum Clock Frequency: %d MHz\n", d.MinClockFreqMHz)
		fmt.Fprintf(b, "    Maximum Clock Frequency: %d MHz\n", d.MaxClockFreqMHz)
	}
	fmt.Fprintf(b, "    Device Native Pixel Format: %dx%d\n", d.NativeHorizPixels, d.NativeVertPixels)
	fmt.Fprintf(b, "    Aspect Ratio: %.2f\n", d.AspectRatio)
	fmt.Fprintf(b, "    Default Orientation: %s\n", d.DefaultOrientation)
	fmt.Fprintf(b, "    Rotation Capability: %s\n", d.RotationCap)
	fmt.Fprintf(b, "    Zero Pixel Location: %s\n", d.ZeroPixelLocation)
	fmt.Fprintf(b, "    Scan Direction: %s\n", d.ScanDirection)
	fmt.Fprintf(b, "    Subpixel Information: %s\n", d.SubpixelLayout)
	fmt.Fprintf(b, "    Horizontal and vertical dot/pixel pitch: %.2f x %.2f mm\n", d.HorizPitchMM, d.VertPitchMM)
	fmt.Fprintf(b, "    Dithering: %s\n", d.DitheringType)
	fmt.Fprintf(b, "    Direct Drive: %s\n", yesNo(d.DirectDrive))
	if d.OverdriveNotRecommended {
		b.WriteString("    Overdrive not recommended\n")
	} else {
		b.WriteString("    Overdrive recommended\n")
	}
	fmt.Fprintf(b, "    Deinterlacing: %s\n", yesNo(d.Deinterlacing))
	fmt.Fprintf(b, "    Audio Support: %s\n", yesNo(d.AudioSupport))
	fmt.Fprintf(b, "    Separate Audio Inputs Provided: %s\n", yesNo(d.SeparateAudioInputs))
	fmt.Fprintf(b, "    Audio Input Override: %s\n", yesNo(d.AudioInputOverride))
	if d.AudioDelayProvided {
		fmt.Fprintf(b, "    Audio Delay: %d ms\n", d.AudioDelayMS)
	} else {
		b.WriteString("    Audio Delay: no information provided\n")
	}
	fmt.Fprintf(b, "    Frame Rate/Mode Conversion: %s\n", d.FrameRateConversion)
	if d.FrameRateRangeHz > 0 {
		fmt.Fprintf(b, "    Frame Rate Range: %d fps\n", d.FrameRateRangeHz)
	}
	fmt.Fprintf(b, "    Native Frame Rate: %d fps\n", d.FrameRateNativeHz)
	fmt.Fprintf(b, "    Color Bit Depth: %d @ interface, %d @ display\n", d.BitDepthInterface, d.BitDepthDisplay)
	if len(d.AdditionalPrimaryChromaticities) > 0 {
		b.WriteString("    Additional Primary Chromaticities:\n")
		for i, c := range d.AdditionalPrimaryChromaticities {
			fmt.Fprintf(b, "      Primary %d:   %.4f, %.4f\n", i+4, c.X, c.Y)
		}
	}
	fmt.Fprintf(b, "    Response Time %s: %d ms\n", d.ResponseTimeTransition, d.ResponseTimeMS)
	fmt.Fprintf(b, "    Overscan: %d%% x %d%%\n", d.OverscanHorizPct, d.OverscanVertPct)
}

func writeDiagnostics(b *strings.Builder, e *edid.EDID) {
	type section struct {
		title   string
		entries []string
	}
	sections := []section{{"Block 0, Base EDID", e.Diagnostics()}}
	for _, ext := range e.Extensions {
		if ext.CTA != nil {
			sections = append(sections, section{
				fmt.Sprintf("Block %d, CTA-861 Extension Block", ext.Index),
				ext.CTA.Diagnostics(),
			})
		}
	}

	total := 0
	for _, s := range sections {
		total += len(s.entries)
	}
	if total == 0 {
		b.WriteString("\nEDID conformity: PASS\n")
		return
	}
	fmt.Fprintf(b, "\nDiagnostics (%d):\n", total)
	for _, s := range sections {
		if len(s.entries) == 0 {
			continue
		}
		fmt.Fprintf(b, "  %s:\n", s.title)
		for _, entry := range s.entries {
			fmt.Fprintf(b, "    %s\n", entry)
		}
	}
	b.WriteString("\nEDID conformity: FAIL\n")
}
