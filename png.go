// Package png is a from-scratch PNG decoder: it turns a byte stream
// conforming to the PNG file format (ISO/IEC 15948) into a rectangular
// raster of packed 8-bit RGBA pixels, without delegating to any external
// image library. It owns every stage of the pipeline — signature check,
// chunked container parsing with CRC verification, DEFLATE decompression,
// per-scanline reverse filtering (including Adam7 descatter), and
// colour-space/bit-depth normalisation.
//
// A decode is synchronous and single-threaded: a call to Decode owns its
// buffers from entry to return, and every error is fatal — there is no
// retry and no partial result.
package png

import (
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/XC-Zero/pngraster/internal/raster"
)

// Image is the decoder's output: a packed RGBA (or BGRA, per Options)
// raster, its geometry, and whatever ancillary metadata (tEXt/zTXt/tIME/
// pHYs) was found along the way. The caller owns Pixels outright — no
// internal decode buffer survives a successful call beyond it.
type Image struct {
	Width    uint32
	Height   uint32
	Pixels   []byte // len(Pixels) == Width*Height*4
	Metadata Metadata
}

// Decode turns a PNG byte stream into an Image per opts. The returned error
// is non-nil if and only if img is nil; see IsKind to inspect the failure
// kind.
func Decode(r io.Reader, opts Options) (*Image, error) {
	width, height, pixels, meta, err := raster.Decode(r, opts)
	if err != nil {
		return nil, err
	}
	return &Image{Width: width, Height: height, Pixels: pixels, Metadata: meta}, nil
}

// DecodeFile opens path and decodes it with DefaultOptions.
func DecodeFile(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "png: opening %s", path)
	}
	defer f.Close()
	return Decode(f, DefaultOptions())
}
