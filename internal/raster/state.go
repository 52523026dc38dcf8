package raster

import (
	"bytes"
	"io"
	"time"

	"github.com/XC-Zero/pngraster/internal/chunkio"
	"github.com/XC-Zero/pngraster/internal/pngerr"
)

// docState is one of the states in the chunk-ordering state machine (§4.4).
// ExpectSignature is not modelled here — the signature is checked before a
// Document is ever constructed.
type docState int

const (
	stateExpectIhdr docState = iota
	stateAfterIhdr
	stateAfterPlte
	stateInIdat
	stateAfterIdat
	stateAtEnd
)

// Document accumulates the chunk stream's parsed state: the header, the
// optional palette and transparency, and the concatenated IDAT payload.
type Document struct {
	state   docState
	Header  Header
	Palette *Palette
	Trns    *Transparency
	idat    bytes.Buffer

	// Ancillary metadata, captured best-effort as encountered. A chunk this
	// decoder cannot parse is skipped rather than treated as fatal — these
	// chunks carry no pixel data and the PNG spec itself only recommends,
	// never requires, that a decoder understand them.
	Texts     []TextEntry
	Timestamp *time.Time
	Physical  *PhysicalDimensions
}

// captureAncillary best-effort decodes the handful of ancillary chunk types
// this decoder gives metadata treatment to (tEXt, zTXt, tIME, pHYs). Any
// other ancillary type, or one that fails to parse, is silently skipped.
func (d *Document) captureAncillary(c *chunkio.Chunk) {
	switch c.Type.String() {
	case "tEXt":
		if e, ok := parseText(c.Data); ok {
			d.Texts = append(d.Texts, e)
		}
	case "zTXt":
		if e, ok := parseCompressedText(c.Data); ok {
			d.Texts = append(d.Texts, e)
		}
	case "tIME":
		if ts, ok := parseTime(c.Data); ok {
			d.Timestamp = &ts
		}
	case "pHYs":
		if p, ok := parsePhysical(c.Data); ok {
			d.Physical = &p
		}
	}
}

// IDATBytes returns the concatenation of every IDAT chunk's payload, in
// stream order.
func (d *Document) IDATBytes() []byte { return d.idat.Bytes() }

// Run drives the chunk-ordering state machine to completion, reading chunks
// from cr until IEND and then confirming nothing follows it.
func (d *Document) Run(cr *chunkio.Reader) error {
	for {
		c, err := cr.Next()
		if err != nil {
			if err == io.EOF {
				return pngerr.New(pngerr.OrderingViolation, "", cr.Offset(), "unexpected end of stream before IEND")
			}
			return err
		}

		if err := d.dispatch(c, cr.Offset()); err != nil {
			return err
		}

		if d.state == stateAtEnd {
			return d.checkNothingFollows(cr)
		}
	}
}

// checkNothingFollows enforces "IEND must be last": a further successful
// chunk read, or any error other than a clean EOF, means bytes remain.
func (d *Document) checkNothingFollows(cr *chunkio.Reader) error {
	_, err := cr.Next()
	if err == io.EOF {
		return nil
	}
	if err == nil {
		return pngerr.New(pngerr.OrderingViolation, "", cr.Offset(), "data found after IEND")
	}
	return pngerr.New(pngerr.OrderingViolation, "", cr.Offset(), "data found after IEND: %v", err)
}

func (d *Document) dispatch(c *chunkio.Chunk, offset int64) error {
	switch d.state {
	case stateExpectIhdr:
		return d.dispatchExpectIhdr(c, offset)
	case stateAfterIhdr, stateAfterPlte:
		return d.dispatchAfterIhdrOrPlte(c, offset)
	case stateInIdat:
		return d.dispatchInIdat(c, offset)
	case stateAfterIdat:
		return d.dispatchAfterIdat(c, offset)
	default:
		return pngerr.New(pngerr.OrderingViolation, c.Type.String(), offset, "chunk received in terminal state")
	}
}

func (d *Document) dispatchExpectIhdr(c *chunkio.Chunk, offset int64) error {
	if c.Type != chunkio.IHDR {
		return pngerr.New(pngerr.OrderingViolation, c.Type.String(), offset, "IHDR must be the first chunk")
	}
	h, err := ParseHeader(c.Data)
	if err != nil {
		return err
	}
	d.Header = h
	d.state = stateAfterIhdr
	return nil
}

func (d *Document) dispatchAfterIhdrOrPlte(c *chunkio.Chunk, offset int64) error {
	switch c.Type {
	case chunkio.IHDR:
		return pngerr.New(pngerr.OrderingViolation, "IHDR", offset, "duplicate IHDR")

	case chunkio.PLTE:
		if d.state == stateAfterPlte {
			return pngerr.New(pngerr.OrderingViolation, "PLTE", offset, "duplicate PLTE")
		}
		if d.Header.ColorType == ColorGray || d.Header.ColorType == ColorGrayAlpha {
			return pngerr.New(pngerr.OrderingViolation, "PLTE", offset, "PLTE forbidden for colour type %s", d.Header.ColorType)
		}
		p, err := ParsePalette(c.Data)
		if err != nil {
			return err
		}
		d.Palette = &p
		d.state = stateAfterPlte
		return nil

	case chunkio.TRNS:
		if d.Trns != nil {
			return pngerr.New(pngerr.OrderingViolation, "tRNS", offset, "duplicate tRNS")
		}
		if d.Header.ColorType == ColorPalette && d.Palette == nil {
			return pngerr.New(pngerr.OrderingViolation, "tRNS", offset, "tRNS for a PALETTE image must follow PLTE")
		}
		paletteSize := 0
		if d.Palette != nil {
			paletteSize = d.Palette.Size()
		}
		t, err := ParseTransparency(d.Header.ColorType, c.Data, paletteSize)
		if err != nil {
			return err
		}
		d.Trns = &t
		return nil

	case chunkio.IDAT:
		if d.Header.ColorType == ColorPalette && d.Palette == nil {
			return pngerr.New(pngerr.OrderingViolation, "IDAT", offset, "PALETTE image missing mandatory PLTE")
		}
		d.idat.Write(c.Data)
		d.state = stateInIdat
		return nil

	case chunkio.IEND:
		return pngerr.New(pngerr.OrderingViolation, "IEND", offset, "IEND before any IDAT")

	default:
		d.captureAncillary(c)
		return nil
	}
}

func (d *Document) dispatchInIdat(c *chunkio.Chunk, offset int64) error {
	switch c.Type {
	case chunkio.IDAT:
		d.idat.Write(c.Data)
		return nil
	case chunkio.PLTE, chunkio.TRNS:
		return pngerr.New(pngerr.OrderingViolation, c.Type.String(), offset, "%s must precede the first IDAT", c.Type)
	case chunkio.IHDR:
		return pngerr.New(pngerr.OrderingViolation, "IHDR", offset, "duplicate IHDR")
	case chunkio.IEND:
		return d.finishAtIend(c, offset)
	default:
		d.captureAncillary(c)
		d.state = stateAfterIdat
		return nil
	}
}

func (d *Document) dispatchAfterIdat(c *chunkio.Chunk, offset int64) error {
	switch c.Type {
	case chunkio.IDAT:
		return pngerr.New(pngerr.OrderingViolation, "IDAT", offset, "IDAT chunks must be contiguous")
	case chunkio.PLTE, chunkio.TRNS, chunkio.IHDR:
		return pngerr.New(pngerr.OrderingViolation, c.Type.String(), offset, "%s not allowed once the IDAT run has ended", c.Type)
	case chunkio.IEND:
		return d.finishAtIend(c, offset)
	default:
		d.captureAncillary(c)
		return nil
	}
}

func (d *Document) finishAtIend(c *chunkio.Chunk, offset int64) error {
	if c.Length != 0 {
		return pngerr.New(pngerr.OrderingViolation, "IEND", offset, "IEND payload must be empty, got %d bytes", c.Length)
	}
	d.state = stateAtEnd
	return nil
}
