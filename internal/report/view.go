package report

import (
	"encoding/json"
	"fmt"

	"github.com/s0up4200/go-edidinfo/internal/cta"
	"github.com/s0up4200/go-edidinfo/internal/edid"
	"github.com/s0up4200/go-edidinfo/internal/settings"
	"github.com/s0up4200/go-edidinfo/internal/timing"
)

// The view types shape the YAML and JSON reports.

type edidView struct {
	Version         string            `yaml:"version" json:"version"`
	Manufacturer    string            `yaml:"manufacturer" json:"manufacturer"`
	ProductCode     uint16            `yaml:"product_code" json:"product_code"`
	SerialNumber    uint32            `yaml:"serial_number,omitempty" json:"serial_number,omitempty"`
	ManufactureWeek int               `yaml:"manufacture_week,omitempty" json:"manufacture_week,omitempty"`
	ManufactureYear int               `yaml:"manufacture_year" json:"manufacture_year"`
	ProductName     string            `yaml:"product_name,omitempty" json:"product_name,omitempty"`
	ProductSerial   string            `yaml:"product_serial,omitempty" json:"product_serial,omitempty"`
	DataStrings     []string          `yaml:"data_strings,omitempty" json:"data_strings,omitempty"`
	DetailedTimings []timingView      `yaml:"detailed_timings,omitempty" json:"detailed_timings,omitempty"`
	Extensions      []extensionView   `yaml:"extensions,omitempty" json:"extensions,omitempty"`
	Diagnostics     []string          `yaml:"diagnostics,omitempty" json:"diagnostics,omitempty"`
	Uncommon        *UncommonFeatures `yaml:"uncommon,omitempty" json:"uncommon,omitempty"`
}

type timingView struct {
	HorizActive  int     `yaml:"horiz_active" json:"horiz_active"`
	VertActive   int     `yaml:"vert_active" json:"vert_active"`
	Interlaced   bool    `yaml:"interlaced,omitempty" json:"interlaced,omitempty"`
	RefreshHz    float64 `yaml:"refresh_hz" json:"refresh_hz"`
	PixelClockHz int64   `yaml:"pixel_clock_hz" json:"pixel_clock_hz"`
	HorizImageMM int     `yaml:"horiz_image_mm" json:"horiz_image_mm"`
	VertImageMM  int     `yaml:"vert_image_mm" json:"vert_image_mm"`
}

type extensionView struct {
	Block           int             `yaml:"block" json:"block"`
	Tag             string          `yaml:"tag" json:"tag"`
	Revision        int             `yaml:"revision,omitempty" json:"revision,omitempty"`
	Flags           *flagsView      `yaml:"flags,omitempty" json:"flags,omitempty"`
	DataBlocks      []dataBlockView `yaml:"data_blocks,omitempty" json:"data_blocks,omitempty"`
	DetailedTimings []timingView    `yaml:"detailed_timings,omitempty" json:"detailed_timings,omitempty"`
	Diagnostics     []string        `yaml:"diagnostics,omitempty" json:"diagnostics,omitempty"`
}

type flagsView struct {
	ITUnderscan bool `yaml:"it_underscan" json:"it_underscan"`
	BasicAudio  bool `yaml:"basic_audio" json:"basic_audio"`
	YCC444      bool `yaml:"ycc444" json:"ycc444"`
	YCC422      bool `yaml:"ycc422" json:"ycc422"`
	NativeDTDs  int  `yaml:"native_dtds" json:"native_dtds"`
}

type dataBlockView struct {
	Type    string `yaml:"type" json:"type"`
	Payload any    `yaml:"payload,omitempty" json:"payload,omitempty"`
}

type capMapView struct {
	All           bool  `yaml:"all" json:"all"`
	SupportedSVDs []int `yaml:"supported_svds,omitempty" json:"supported_svds,omitempty"`
}

func buildView(e *edid.EDID, s settings.Settings, uncommon UncommonFeatures) (edidView, error) {
	v := edidView{
		Version:         fmt.Sprintf("%d.%d", e.Version, e.Revision),
		Manufacturer:    e.ManufacturerID,
		ProductCode:     e.ProductCode,
		SerialNumber:    e.SerialNumber,
		ManufactureWeek: e.ManufactureWeek,
		ManufactureYear: e.ManufactureYear,
		ProductName:     e.ProductName,
		ProductSerial:   e.ProductSerial,
		DataStrings:     e.DataStrings,
		DetailedTimings: timingViews(e.DetailedTimingDefs),
	}
	if s.ShowDiagnostics {
		v.Diagnostics = e.Diagnostics()
	}
	if s.ShowUncommon {
		v.Uncommon = &uncommon
	}

	for _, ext := range e.Extensions {
		ev := extensionView{
			Block: ext.Index,
			Tag:   fmt.Sprintf("0x%02x", ext.Tag),
		}
		if ext.CTA != nil {
			ev.Revision = ext.CTA.Revision()
			if ext.CTA.Revision() >= 2 {
				f := ext.CTA.Flags()
				ev.Flags = &flagsView{
					ITUnderscan: f.ITUnderscan,
					BasicAudio:  f.BasicAudio,
					YCC444:      f.YCC444,
					YCC422:      f.YCC422,
					NativeDTDs:  f.NativeDTDs,
				}
			}
			ev.DetailedTimings = timingViews(ext.CTA.DetailedTimingDefs())
			blocks, err := dataBlockViews(ext.CTA)
			if err != nil {
				return v, fmt.Errorf("block %d: %w", ext.Index, err)
			}
			ev.DataBlocks = blocks
			if s.ShowDiagnostics {
				ev.Diagnostics = ext.CTA.Diagnostics()
			}
		}
		v.Extensions = append(v.Extensions, ev)
	}
	return v, nil
}

func timingViews(dtds []*timing.DetailedTimingDef) []timingView {
	out := make([]timingView, 0, len(dtds))
	for _, d := range dtds {
		out = append(out, timingView{
			HorizActive:  d.HorizActive,
			VertActive:   d.VertActive,
			Interlaced:   d.Interlaced,
			RefreshHz:    d.RefreshHz(),
			PixelClockHz: d.PixelClockHz,
			HorizImageMM: d.HorizImageMM,
			VertImageMM:  d.VertImageMM,
		})
	}
	return out
}

func dataBlockViews(ext *cta.ExtensionBlock) ([]dataBlockView, error) {
	svdCount := 0
	for _, block := range ext.DataBlocks() {
		svdCount += len(block.SVDs())
	}

	out := make([]dataBlockView, 0, len(ext.DataBlocks()))
	for _, block := range ext.DataBlocks() {
		payload, err := plainPayload(blockPayload(block, svdCount))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", block.Tag(), err)
		}
		out = append(out, dataBlockView{
			Type:    block.Tag().String(),
			Payload: payload,
		})
	}
	return out, nil
}

// plainPayload flattens a decoder value into maps and slices through its
// JSON form, so YAML and JSON reports share the same keys and enum names.
func plainPayload(v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// blockPayload returns the decoded payload of block, or nil for blocks that
// are only identified.
func blockPayload(block *cta.DataBlock, svdCount int) any {
	switch block.Tag() {
	case cta.DataBlockVideo:
		return block.SVDs()
	case cta.DataBlockYCbCr420:
		return block.YCbCr420SVDs()
	case cta.DataBlockAudio:
		return block.SADs()
	case cta.DataBlockSpeakerAlloc:
		return block.SpeakerAlloc()
	case cta.DataBlockVideoCap:
		return block.VideoCap()
	case cta.DataBlockVESADisplayDevice:
		return block.VESADisplayDevice()
	case cta.DataBlockColorimetry:
		return block.Colorimetry()
	case cta.DataBlockHDRStaticMetadata:
		return block.HDRStaticMetadata()
	case cta.DataBlockHDRDynamicMetadata:
		return block.HDRDynamicMetadata()
	case cta.DataBlockVESATransferCharacteristics:
		return block.VESATransferCharacteristics()
	case cta.DataBlockYCbCr420CapMap:
		m := block.YCbCr420CapMap()
		view := capMapView{All: m.All()}
		if !view.All {
			for i := range svdCount {
				if m.Supported(i) {
					view.SupportedSVDs = append(view.SupportedSVDs, i)
				}
			}
		}
		return view
	case cta.DataBlockInfoFrame:
		return block.InfoFrame()
	default:
		return nil
	}
}
