// Package raster implements everything downstream of the PNG container:
// IHDR/PLTE/tRNS validation, the document ordering state machine, DEFLATE
// decompression, per-scanline filter reversal (including Adam7 descatter),
// and RGBA normalisation.
package raster

import (
	"encoding/binary"

	"github.com/XC-Zero/pngraster/internal/pngerr"
)

// ColorType is the tagged colour-model variant carried by IHDR.
type ColorType uint8

const (
	ColorGray      ColorType = 0
	ColorRGB       ColorType = 2
	ColorPalette   ColorType = 3
	ColorGrayAlpha ColorType = 4
	ColorRGBA      ColorType = 6
)

func (c ColorType) String() string {
	switch c {
	case ColorGray:
		return "GRAY"
	case ColorRGB:
		return "RGB"
	case ColorPalette:
		return "PALETTE"
	case ColorGrayAlpha:
		return "GRAY_ALPHA"
	case ColorRGBA:
		return "RGBA"
	default:
		return "UNKNOWN"
	}
}

// legalBitDepths maps each colour type to its allowed IHDR bit depths.
var legalBitDepths = map[ColorType][]uint8{
	ColorGray:      {1, 2, 4, 8, 16},
	ColorRGB:       {8, 16},
	ColorPalette:   {1, 2, 4, 8},
	ColorGrayAlpha: {8, 16},
	ColorRGBA:      {8, 16},
}

// Header is the parsed, validated contents of the mandatory 13-byte IHDR
// chunk.
type Header struct {
	Width             uint32
	Height            uint32
	BitDepth          uint8
	ColorType         ColorType
	CompressionMethod uint8
	FilterMethod      uint8
	InterlaceMethod   uint8
}

// ParseHeader validates and decodes an IHDR payload.
func ParseHeader(data []byte) (Header, error) {
	if len(data) != 13 {
		return Header{}, pngerr.New(pngerr.BadHeader, "IHDR", -1, "IHDR length must be 13, got %d", len(data))
	}

	width := binary.BigEndian.Uint32(data[0:4])
	height := binary.BigEndian.Uint32(data[4:8])
	if width == 0 || width > 0x7fffffff {
		return Header{}, pngerr.New(pngerr.BadHeader, "IHDR", -1, "illegal width %d", width)
	}
	if height == 0 || height > 0x7fffffff {
		return Header{}, pngerr.New(pngerr.BadHeader, "IHDR", -1, "illegal height %d", height)
	}

	h := Header{
		Width:             width,
		Height:            height,
		BitDepth:          data[8],
		ColorType:         ColorType(data[9]),
		CompressionMethod: data[10],
		FilterMethod:      data[11],
		InterlaceMethod:   data[12],
	}

	if h.CompressionMethod != 0 {
		return Header{}, pngerr.New(pngerr.BadHeader, "IHDR", -1, "unsupported compression method %d", h.CompressionMethod)
	}
	if h.FilterMethod != 0 {
		return Header{}, pngerr.New(pngerr.BadHeader, "IHDR", -1, "unsupported filter method %d", h.FilterMethod)
	}
	if h.InterlaceMethod != 0 && h.InterlaceMethod != 1 {
		return Header{}, pngerr.New(pngerr.BadHeader, "IHDR", -1, "unsupported interlace method %d", h.InterlaceMethod)
	}

	depths, ok := legalBitDepths[h.ColorType]
	if !ok {
		return Header{}, pngerr.New(pngerr.BadHeader, "IHDR", -1, "unrecognised colour type %d", data[9])
	}
	legal := false
	for _, d := range depths {
		if d == h.BitDepth {
			legal = true
			break
		}
	}
	if !legal {
		return Header{}, pngerr.New(pngerr.BadHeader, "IHDR", -1, "bit depth %d not legal for colour type %s", h.BitDepth, h.ColorType)
	}

	return h, nil
}

// Channels is the number of samples per pixel (not counting a palette
// index's implicit RGB expansion — PALETTE is 1 channel, the index itself).
func (h Header) Channels() int {
	switch h.ColorType {
	case ColorGray, ColorPalette:
		return 1
	case ColorRGB:
		return 3
	case ColorGrayAlpha:
		return 2
	case ColorRGBA:
		return 4
	default:
		return 0
	}
}

// BytesPerPixel is the filter offset unit: ceil(channels*bit_depth/8), never
// less than 1.
func (h Header) BytesPerPixel() int {
	bits := h.Channels() * int(h.BitDepth)
	bpp := (bits + 7) / 8
	if bpp < 1 {
		bpp = 1
	}
	return bpp
}

// ScanlineStride is the packed byte width of one scanline of width pixels
// (excluding the leading filter-type byte).
func (h Header) ScanlineStride(width int) int {
	bits := h.Channels() * width * int(h.BitDepth)
	return (bits + 7) / 8
}

// Interlaced reports whether IHDR selected Adam7.
func (h Header) Interlaced() bool { return h.InterlaceMethod == 1 }
