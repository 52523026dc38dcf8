package raster

import (
	"encoding/binary"

	"github.com/XC-Zero/pngraster/internal/pngerr"
)

// Transparency is the parsed tRNS payload. Exactly one of its fields is
// meaningful, selected by the image's colour type.
type Transparency struct {
	GrayValue    uint16  // ColorGray: full-precision transparent sample.
	RGB          [3]uint16 // ColorRGB: full-precision transparent triple.
	PaletteAlpha []uint8 // ColorPalette: per-index alpha, index < len(PaletteAlpha).
}

// ParseTransparency validates and decodes a tRNS payload against the image's
// colour type (and, for PALETTE, the already-parsed palette size — tRNS
// must follow PLTE).
func ParseTransparency(ct ColorType, data []byte, paletteSize int) (Transparency, error) {
	switch ct {
	case ColorGray:
		if len(data) != 2 {
			return Transparency{}, pngerr.New(pngerr.BadTransparency, "tRNS", -1, "GRAY tRNS must be 2 bytes, got %d", len(data))
		}
		return Transparency{GrayValue: binary.BigEndian.Uint16(data)}, nil

	case ColorRGB:
		if len(data) != 6 {
			return Transparency{}, pngerr.New(pngerr.BadTransparency, "tRNS", -1, "RGB tRNS must be 6 bytes, got %d", len(data))
		}
		return Transparency{RGB: [3]uint16{
			binary.BigEndian.Uint16(data[0:2]),
			binary.BigEndian.Uint16(data[2:4]),
			binary.BigEndian.Uint16(data[4:6]),
		}}, nil

	case ColorPalette:
		if len(data) == 0 || len(data) > paletteSize {
			return Transparency{}, pngerr.New(pngerr.BadTransparency, "tRNS", -1, "PALETTE tRNS length %d must be in 1..%d", len(data), paletteSize)
		}
		alpha := make([]uint8, len(data))
		copy(alpha, data)
		return Transparency{PaletteAlpha: alpha}, nil

	case ColorGrayAlpha, ColorRGBA:
		return Transparency{}, pngerr.New(pngerr.BadTransparency, "tRNS", -1, "tRNS is forbidden for colour type %s", ct)

	default:
		return Transparency{}, pngerr.New(pngerr.BadTransparency, "tRNS", -1, "tRNS unsupported for colour type %d", ct)
	}
}

// AlphaForIndex returns the alpha value for a palette index, 255 (opaque)
// for indices beyond the supplied tRNS entries.
func (t Transparency) AlphaForIndex(index int) uint8 {
	if index < len(t.PaletteAlpha) {
		return t.PaletteAlpha[index]
	}
	return 255
}
