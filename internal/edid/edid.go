// Package edid splits an EDID blob into its base block and extensions and
// hands CTA-861 extensions to the cta decoder.
package edid

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/s0up4200/go-edidinfo/internal/cta"
	"github.com/s0up4200/go-edidinfo/internal/diag"
	"github.com/s0up4200/go-edidinfo/internal/timing"
)

const (
	// BlockSize is the size of the base block and of every extension block.
	BlockSize = 128

	// MaxBlocks bounds the number of blocks accepted, base block included.
	MaxBlocks = 256

	extensionCountOffset = 126
	descriptorsOffset    = 54
	descriptorCount      = 4
)

// ErrInvalid reports a malformed EDID.
var ErrInvalid = errors.New("edid: invalid EDID")

var fixedHeader = []byte{0x00, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x00}

// Display descriptor tags found in the base block.
const (
	descriptorProductSerial = 0xFF
	descriptorDataString    = 0xFE
	descriptorProductName   = 0xFC
)

// Options tune Parse.
type Options struct {
	// Logger, when set, receives every diagnostic at debug level.
	Logger *slog.Logger
}

// Extension is one extension block.
type Extension struct {
	// Index is the block number, starting at 1 for the first extension.
	Index int
	Tag   uint8
	// CTA is set for CTA-861 extension blocks.
	CTA *cta.ExtensionBlock
}

// EDID is a decoded EDID blob.
type EDID struct {
	Version  int
	Revision int

	ManufacturerID string
	ProductCode    uint16
	SerialNumber   uint32
	// ManufactureWeek is zero when unspecified; 0xFF marks ManufactureYear as
	// the model year.
	ManufactureWeek int
	ManufactureYear int

	ProductName   string
	ProductSerial string
	DataStrings   []string

	DetailedTimingDefs []*timing.DetailedTimingDef

	// ExtensionCount is the count announced by the base block.
	ExtensionCount int
	Extensions     []Extension

	diagnostics []string
}

// Diagnostics returns the base block complaints.
func (e *EDID) Diagnostics() []string { return e.diagnostics }

// CTA returns the CTA-861 extension blocks in order.
func (e *EDID) CTA() []*cta.ExtensionBlock {
	var out []*cta.ExtensionBlock
	for _, ext := range e.Extensions {
		if ext.CTA != nil {
			out = append(out, ext.CTA)
		}
	}
	return out
}

// Parse decodes an EDID blob made of whole 128-byte blocks.
func Parse(data []byte, opts Options) (*EDID, error) {
	if len(data) < BlockSize || len(data)%BlockSize != 0 {
		return nil, fmt.Errorf("%w: length %d is not a multiple of %d", ErrInvalid, len(data), BlockSize)
	}
	if len(data)/BlockSize > MaxBlocks {
		return nil, fmt.Errorf("%w: %d blocks exceed %d", ErrInvalid, len(data)/BlockSize, MaxBlocks)
	}
	base := data[:BlockSize]
	if !bytes.Equal(base[:len(fixedHeader)], fixedHeader) {
		return nil, fmt.Errorf("%w: missing fixed header pattern", ErrInvalid)
	}

	e := &EDID{
		Version:  int(base[18]),
		Revision: int(base[19]),
	}
	if e.Version != 1 {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrInvalid, e.Version)
	}
	log := diag.New(e.Revision, opts.Logger)

	checkChecksum(log, 0, base)

	e.ManufacturerID = decodeManufacturerID(base[8], base[9])
	e.ProductCode = uint16(base[10]) | uint16(base[11])<<8
	e.SerialNumber = uint32(base[12]) | uint32(base[13])<<8 | uint32(base[14])<<16 | uint32(base[15])<<24
	e.ManufactureWeek = int(base[16])
	e.ManufactureYear = int(base[17]) + 1990

	if err := e.parseDescriptors(log, base); err != nil {
		return nil, err
	}

	e.ExtensionCount = int(base[extensionCountOffset])
	present := len(data)/BlockSize - 1
	if e.ExtensionCount != present {
		log.Add("Base EDID: Extension count is %d, but %d extension blocks are present.", e.ExtensionCount, present)
	}

	ctaOpts := cta.Options{Logger: opts.Logger}
	for i := 1; i <= present; i++ {
		block := data[i*BlockSize : (i+1)*BlockSize]
		checkChecksum(log, i, block)

		ext := Extension{Index: i, Tag: block[0]}
		if ext.Tag == cta.ExtensionTag {
			parsed, err := cta.Parse(block, ctaOpts)
			if err != nil {
				return nil, fmt.Errorf("%w: block %d: %w", ErrInvalid, i, err)
			}
			ext.CTA = parsed
		} else {
			log.Add("Block %d: Unsupported extension block tag 0x%02x.", i, ext.Tag)
		}
		e.Extensions = append(e.Extensions, ext)
	}

	e.diagnostics = log.Entries()
	return e, nil
}

func checkChecksum(log *diag.Log, index int, block []byte) {
	var sum byte
	for _, b := range block {
		sum += b
	}
	if sum != 0 {
		want := block[BlockSize-1] - sum
		log.Add("Block %d: Checksum is 0x%02x, should be 0x%02x.", index, block[BlockSize-1], want)
	}
}

// decodeManufacturerID unpacks the three compressed ASCII letters.
func decodeManufacturerID(hi, lo byte) string {
	v := uint16(hi)<<8 | uint16(lo)
	letters := [3]byte{
		byte(v>>10&0x1F) + 'A' - 1,
		byte(v>>5&0x1F) + 'A' - 1,
		byte(v&0x1F) + 'A' - 1,
	}
	return string(letters[:])
}

func (e *EDID) parseDescriptors(log *diag.Log, base []byte) error {
	for n := range descriptorCount {
		offset := descriptorsOffset + n*timing.Size
		desc := base[offset : offset+timing.Size]

		if desc[0] != 0 || desc[1] != 0 {
			dtd, err := timing.Parse(desc)
			if err != nil {
				return fmt.Errorf("%w: base block detailed timing %d: %w", ErrInvalid, n+1, err)
			}
			e.DetailedTimingDefs = append(e.DetailedTimingDefs, dtd)
			continue
		}

		switch desc[3] {
		case descriptorProductName:
			e.ProductName = descriptorString(desc)
		case descriptorProductSerial:
			e.ProductSerial = descriptorString(desc)
		case descriptorDataString:
			e.DataStrings = append(e.DataStrings, descriptorString(desc))
		}
		if desc[2] != 0 || desc[4] != 0 {
			log.Add("Base EDID: Display Descriptor #%d: Reserved bytes must be 0.", n+1)
		}
	}
	if len(e.DetailedTimingDefs) == 0 {
		log.Add("Base EDID: Missing preferred timing.")
	}
	return nil
}

// descriptorString returns the 13-byte text payload, which ends at the first
// line feed.
func descriptorString(desc []byte) string {
	text := desc[5:timing.Size]
	if i := bytes.IndexByte(text, '\n'); i >= 0 {
		text = text[:i]
	}
	return strings.TrimRight(string(text), " ")
}
