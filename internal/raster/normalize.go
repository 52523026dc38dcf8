package raster

import "github.com/XC-Zero/pngraster/internal/pngerr"

// decodeNonInterlaced defilters the single full-image scanline run and
// normalises it straight to RGBA/BGRA.
func decodeNonInterlaced(raw []byte, h Header, palette *Palette, trns *Transparency, order ByteOrder) ([]byte, error) {
	pixels, err := defilter(raw, h, int(h.Width), int(h.Height))
	if err != nil {
		return nil, err
	}
	return normalize(pixels, h, int(h.Width), int(h.Height), palette, trns, order)
}

// decodeAdam7 defilters each of the seven passes independently and scatters
// their normalised pixels directly into the full-resolution output buffer,
// skipping the intermediate step of re-packing the passes into one
// synthetic full-width raw raster (which would require re-deriving
// sub-byte bit packing at scatter time for no benefit).
func decodeAdam7(raw []byte, h Header, palette *Palette, trns *Transparency, order ByteOrder) ([]byte, error) {
	fullW, fullH := int(h.Width), int(h.Height)
	out := make([]byte, fullW*fullH*4)

	offset := 0
	for _, p := range adam7Passes {
		pw, ph := p.dims(h)
		if pw == 0 || ph == 0 {
			continue
		}
		stride := h.ScanlineStride(pw)
		need := ph * (1 + stride)
		if offset+need > len(raw) {
			return nil, pngerr.New(pngerr.BadPixelData, "", -1, "insufficient data for interlace pass (need %d more bytes)", need)
		}
		passRaw := raw[offset : offset+need]
		offset += need

		passPixels, err := defilter(passRaw, h, pw, ph)
		if err != nil {
			return nil, err
		}

		for py := 0; py < ph; py++ {
			row := passPixels[py*stride : py*stride+stride]
			for px := 0; px < pw; px++ {
				r, g, b, a, err := samplePixel(row, px, h, palette, trns)
				if err != nil {
					return nil, err
				}
				finalX := p.xStart + px*p.xStep
				finalY := p.yStart + py*p.yStep
				o := (finalY*fullW + finalX) * 4
				writePixel(out[o:o+4], r, g, b, a, order)
			}
		}
	}
	return out, nil
}

// normalize converts a tightly packed, unfiltered raster of width x height
// pixels in the source (colour type, bit depth) into packed 8-bit RGBA (or
// BGRA), per §4.7.
func normalize(pixels []byte, h Header, width, height int, palette *Palette, trns *Transparency, order ByteOrder) ([]byte, error) {
	stride := h.ScanlineStride(width)
	need := height * stride
	if len(pixels) < need {
		return nil, pngerr.New(pngerr.BadPixelData, "", -1, "insufficient raw pixel data: need %d bytes, have %d", need, len(pixels))
	}

	out := make([]byte, width*height*4)
	for y := 0; y < height; y++ {
		row := pixels[y*stride : y*stride+stride]
		for x := 0; x < width; x++ {
			r, g, b, a, err := samplePixel(row, x, h, palette, trns)
			if err != nil {
				return nil, err
			}
			o := (y*width + x) * 4
			writePixel(out[o:o+4], r, g, b, a, order)
		}
	}
	return out, nil
}

func writePixel(dst []byte, r, g, b, a uint8, order ByteOrder) {
	if order == BGRA {
		dst[0], dst[1], dst[2], dst[3] = b, g, r, a
		return
	}
	dst[0], dst[1], dst[2], dst[3] = r, g, b, a
}

// samplePixel derives (R, G, B, A) for pixel x of a single scanline row,
// dispatching on the image's colour type.
func samplePixel(row []byte, x int, h Header, palette *Palette, trns *Transparency) (r, g, b, a uint8, err error) {
	switch h.ColorType {
	case ColorGray:
		return sampleGray(row, x, h, trns)
	case ColorRGB:
		return sampleRGB(row, x, h, trns)
	case ColorPalette:
		return samplePalette(row, x, h, palette, trns)
	case ColorGrayAlpha:
		return sampleGrayAlpha(row, x, h)
	default: // ColorRGBA
		return sampleRGBA(row, x, h)
	}
}

func sampleGray(row []byte, x int, h Header, trns *Transparency) (uint8, uint8, uint8, uint8, error) {
	var full uint16
	var scaled uint8

	switch h.BitDepth {
	case 16:
		hi, lo := row[x*2], row[x*2+1]
		full = uint16(hi)<<8 | uint16(lo)
		scaled = hi
	case 8:
		full = uint16(row[x])
		scaled = row[x]
	default: // 1, 2, 4
		v := extractSample(row, x, int(h.BitDepth))
		full = uint16(v)
		maxVal := (uint32(1) << uint(h.BitDepth)) - 1
		scaled = uint8(uint32(v) * 255 / maxVal)
	}

	alpha := uint8(255)
	if trns != nil && full == trns.GrayValue {
		alpha = 0
	}
	return scaled, scaled, scaled, alpha, nil
}

func sampleRGB(row []byte, x int, h Header, trns *Transparency) (uint8, uint8, uint8, uint8, error) {
	var r, g, b uint8
	var fr, fg, fb uint16

	if h.BitDepth == 16 {
		o := x * 6
		r, g, b = row[o], row[o+2], row[o+4]
		fr = uint16(row[o])<<8 | uint16(row[o+1])
		fg = uint16(row[o+2])<<8 | uint16(row[o+3])
		fb = uint16(row[o+4])<<8 | uint16(row[o+5])
	} else {
		o := x * 3
		r, g, b = row[o], row[o+1], row[o+2]
		fr, fg, fb = uint16(r), uint16(g), uint16(b)
	}

	alpha := uint8(255)
	if trns != nil && fr == trns.RGB[0] && fg == trns.RGB[1] && fb == trns.RGB[2] {
		alpha = 0
	}
	return r, g, b, alpha, nil
}

func samplePalette(row []byte, x int, h Header, palette *Palette, trns *Transparency) (uint8, uint8, uint8, uint8, error) {
	idx := int(extractSample(row, x, int(h.BitDepth)))
	if palette == nil {
		return 0, 0, 0, 0, pngerr.New(pngerr.BadPixelData, "", -1, "PALETTE image has no PLTE chunk")
	}
	if idx >= palette.Size() {
		return 0, 0, 0, 0, pngerr.New(pngerr.BadPixelData, "", -1, "palette index %d out of range (palette has %d entries)", idx, palette.Size())
	}
	e := palette.Entries[idx]
	alpha := uint8(255)
	if trns != nil {
		alpha = trns.AlphaForIndex(idx)
	}
	return e[0], e[1], e[2], alpha, nil
}

func sampleGrayAlpha(row []byte, x int, h Header) (uint8, uint8, uint8, uint8, error) {
	if h.BitDepth == 16 {
		o := x * 4
		gray, alpha := row[o], row[o+2]
		return gray, gray, gray, alpha, nil
	}
	o := x * 2
	gray, alpha := row[o], row[o+1]
	return gray, gray, gray, alpha, nil
}

func sampleRGBA(row []byte, x int, h Header) (uint8, uint8, uint8, uint8, error) {
	if h.BitDepth == 16 {
		o := x * 8
		return row[o], row[o+2], row[o+4], row[o+6], nil
	}
	o := x * 4
	return row[o], row[o+1], row[o+2], row[o+3], nil
}
