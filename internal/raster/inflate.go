package raster

import (
	"bytes"
	"compress/zlib"
	"io"

	"github.com/XC-Zero/pngraster/internal/pngerr"
)

// inflateIDAT decompresses the concatenated IDAT payload — a single
// zlib-wrapped (RFC 1950) DEFLATE (RFC 1951) stream — and checks the result
// against the byte count implied by the image geometry. The output buffer
// grows as io.Copy/bytes.Buffer see fit; callers needing the original
// source's fixed doubling-from-4KiB behaviour get the same effect for free
// since bytes.Buffer already grows geometrically.
func inflateIDAT(idat []byte, expected int) ([]byte, error) {
	zr, err := zlib.NewReader(bytes.NewReader(idat))
	if err != nil {
		return nil, pngerr.Wrap(err, pngerr.DecompressError, "IDAT", -1, "opening zlib stream")
	}
	defer zr.Close()

	out := bytes.NewBuffer(make([]byte, 0, 4096))
	if _, err := io.Copy(out, zr); err != nil {
		return nil, pngerr.Wrap(err, pngerr.DecompressError, "IDAT", -1, "inflating IDAT stream")
	}

	if out.Len() != expected {
		return nil, pngerr.New(pngerr.DecompressError, "IDAT", -1, "inflated size %d does not match expected %d", out.Len(), expected)
	}
	return out.Bytes(), nil
}

// expectedRawSize is the byte count the inflated IDAT stream must equal:
// for each active scanline (each Adam7 pass, or the single full image when
// not interlaced), one filter-type byte plus that scanline's packed stride.
func expectedRawSize(h Header) int {
	if !h.Interlaced() {
		return int(h.Height) * (1 + h.ScanlineStride(int(h.Width)))
	}
	total := 0
	for _, p := range adam7Passes {
		pw, ph := p.dims(h)
		if pw == 0 || ph == 0 {
			continue
		}
		total += ph * (1 + h.ScanlineStride(pw))
	}
	return total
}
