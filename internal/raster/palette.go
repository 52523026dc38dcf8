package raster

import "github.com/XC-Zero/pngraster/internal/pngerr"

// Palette is the ordered sequence of RGB triples carried by PLTE. Entry i is
// referenced by pixel/index value i.
type Palette struct {
	Entries [][3]uint8
}

// ParsePalette validates and decodes a PLTE payload: length must be a
// multiple of 3 and at most 768 bytes (256 entries).
func ParsePalette(data []byte) (Palette, error) {
	if len(data) == 0 || len(data)%3 != 0 {
		return Palette{}, pngerr.New(pngerr.BadPalette, "PLTE", -1, "palette length %d is not a positive multiple of 3", len(data))
	}
	if len(data) > 768 {
		return Palette{}, pngerr.New(pngerr.BadPalette, "PLTE", -1, "palette length %d exceeds 768 bytes (256 entries)", len(data))
	}
	n := len(data) / 3
	entries := make([][3]uint8, n)
	for i := 0; i < n; i++ {
		entries[i] = [3]uint8{data[i*3], data[i*3+1], data[i*3+2]}
	}
	return Palette{Entries: entries}, nil
}

// Size is the number of palette entries.
func (p Palette) Size() int { return len(p.Entries) }
