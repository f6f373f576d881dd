// Package cta decodes CTA-861 EDID extension blocks into a typed object model.
//
// Failures come in two tiers. Structural problems that would make the rest of
// the block unreadable abort the parse with an error wrapping ErrInvalid.
// Everything else is recorded as a human-readable diagnostic and decoding
// carries on.
package cta

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/s0up4200/go-edidinfo/internal/buffer"
	"github.com/s0up4200/go-edidinfo/internal/diag"
	"github.com/s0up4200/go-edidinfo/internal/timing"
)

const (
	// ExtensionTag is the first byte of every CTA-861 extension block.
	ExtensionTag = 0x02
	// BlockSize is the length of an EDID extension block.
	BlockSize = 128

	headerSize = 4
	// Byte 127 holds the block checksum.
	dtdRegionEnd = 127
)

// Protocol-derived upper bounds. The parser never produces longer sequences.
const (
	MaxDataBlocks           = 123
	MaxDetailedTimingDefs   = 6
	MaxSVDs                 = 63
	MaxSADs                 = 21
	MaxInfoFrameDescriptors = 61
)

// ErrInvalid is returned for structurally malformed extension blocks.
var ErrInvalid = errors.New("cta: invalid extension block")

// Flags holds the byte 3 capability flags of revision 2+ blocks.
type Flags struct {
	// ITUnderscan is set when IT video formats are underscanned by default.
	ITUnderscan bool
	BasicAudio  bool
	YCC444      bool
	YCC422      bool
	// NativeDTDs is the number of native detailed timing definitions.
	NativeDTDs int
}

// Options tunes Parse.
type Options struct {
	// Logger, when set, receives every diagnostic at debug level.
	Logger *slog.Logger
}

// ExtensionBlock is a fully decoded CTA-861 extension block. It is immutable
// once Parse returns.
type ExtensionBlock struct {
	revision    int
	flags       Flags
	dataBlocks  []*DataBlock
	dtds        []*timing.DetailedTimingDef
	diagnostics []string
}

// Revision returns the CTA extension revision from byte 1.
func (e *ExtensionBlock) Revision() int { return e.revision }

// Flags returns the header flags. They are all zero below revision 2.
func (e *ExtensionBlock) Flags() Flags { return e.flags }

// DataBlocks returns the decoded data blocks in block order.
func (e *ExtensionBlock) DataBlocks() []*DataBlock { return e.dataBlocks }

// DetailedTimingDefs returns the detailed timing definitions in block order.
func (e *ExtensionBlock) DetailedTimingDefs() []*timing.DetailedTimingDef { return e.dtds }

// Diagnostics returns the specification violations found while decoding.
func (e *ExtensionBlock) Diagnostics() []string { return e.diagnostics }

// Parse decodes one 128-byte CTA-861 extension block. On failure no partial
// result is returned and diagnostics gathered so far are dropped.
func Parse(data []byte, opts Options) (*ExtensionBlock, error) {
	if len(data) != BlockSize {
		return nil, fmt.Errorf("%w: block length %d, want %d", ErrInvalid, len(data), BlockSize)
	}
	if data[0] != ExtensionTag {
		return nil, fmt.Errorf("%w: extension tag 0x%02x, want 0x%02x", ErrInvalid, data[0], ExtensionTag)
	}

	ext := &ExtensionBlock{revision: int(data[1])}
	log := diag.New(ext.revision, opts.Logger)

	dtdStart := int(data[2])
	flags := data[3]
	if ext.revision >= 2 {
		ext.flags = Flags{
			ITUnderscan: buffer.Bit(flags, 7),
			BasicAudio:  buffer.Bit(flags, 6),
			YCC444:      buffer.Bit(flags, 5),
			YCC422:      buffer.Bit(flags, 4),
			NativeDTDs:  int(buffer.BitRange(flags, 3, 0)),
		}
	} else if flags != 0 {
		log.Add("Non-zero byte 3.")
	}

	if dtdStart == 0 {
		ext.diagnostics = log.Entries()
		return ext, nil
	}
	if dtdStart < headerSize || dtdStart >= BlockSize {
		return nil, fmt.Errorf("%w: DTD start offset %d out of range", ErrInvalid, dtdStart)
	}

	dec := &decoder{log: log, flags: ext.flags}
	i, err := dec.decodeDataBlocks(ext, data, dtdStart)
	if err != nil {
		return nil, err
	}
	if i != dtdStart {
		log.Add("Offset is %d, but should be %d.", i, dtdStart)
	}

	for i = dtdStart; i+timing.Size <= dtdRegionEnd; i += timing.Size {
		if data[i] == 0 {
			break
		}
		if len(ext.dtds) == MaxDetailedTimingDefs {
			return nil, fmt.Errorf("%w: more than %d detailed timing definitions", ErrInvalid, MaxDetailedTimingDefs)
		}
		dtd, err := timing.Parse(data[i : i+timing.Size])
		if err != nil {
			return nil, fmt.Errorf("%w: detailed timing at offset %d: %w", ErrInvalid, i, err)
		}
		ext.dtds = append(ext.dtds, dtd)
	}

	for ; i < dtdRegionEnd; i++ {
		if data[i] != 0 {
			log.Add("Padding: Contains non-zero bytes.")
			break
		}
	}

	ext.diagnostics = log.Entries()
	return ext, nil
}

// decodeDataBlocks walks the data block collection and returns the offset it
// stopped at.
func (d *decoder) decodeDataBlocks(ext *ExtensionBlock, data []byte, dtdStart int) (int, error) {
	i := headerSize
	for i < dtdStart {
		tag := buffer.BitRange(data[i], 7, 5)
		size := int(buffer.BitRange(data[i], 4, 0))
		if i+1+size > dtdStart {
			return i, fmt.Errorf("%w: data block at offset %d (length %d) overruns DTD start %d",
				ErrInvalid, i, size, dtdStart)
		}

		block, err := d.decodeDataBlock(tag, data[i+1:i+1+size])
		if err != nil {
			return i, fmt.Errorf("data block at offset %d: %w", i, err)
		}
		if block != nil {
			if len(ext.dataBlocks) == MaxDataBlocks {
				return i, fmt.Errorf("%w: more than %d data blocks", ErrInvalid, MaxDataBlocks)
			}
			ext.dataBlocks = append(ext.dataBlocks, block)
		}
		i += 1 + size
	}
	return i, nil
}

// decoder carries the per-parse context every sub-record decoder needs.
type decoder struct {
	log   *diag.Log
	flags Flags
}

func (d *decoder) revision() int { return d.log.Revision }

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}
