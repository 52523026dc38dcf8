package raster

import (
	"io"
	"time"

	"github.com/XC-Zero/pngraster/internal/chunkio"
	"github.com/XC-Zero/pngraster/internal/pngerr"
)

// Metadata is the ancillary, non-pixel information a decode picked up along
// the way. Every field is best-effort: a chunk this decoder cannot parse is
// simply absent here rather than failing the decode.
type Metadata struct {
	Texts     []TextEntry
	Timestamp *time.Time
	Physical  *PhysicalDimensions
}

// Decode runs the full pipeline over r — signature check, chunked
// container parsing with CRC verification, zlib/DEFLATE inflate,
// per-scanline filter reversal (including Adam7 descatter when present),
// and RGBA normalisation — returning the image's geometry, a tightly packed
// width*height*4 byte pixel buffer in the channel order opts requests, and
// whatever ancillary metadata was found along the way.
func Decode(r io.Reader, opts Options) (width, height uint32, pixels []byte, meta Metadata, err error) {
	if err := chunkio.CheckSignature(r); err != nil {
		return 0, 0, nil, Metadata{}, err
	}

	cr := chunkio.NewReader(r, opts.MaxChunkBytes)
	doc := &Document{}
	if err := doc.Run(cr); err != nil {
		return 0, 0, nil, Metadata{}, err
	}
	meta = Metadata{Texts: doc.Texts, Timestamp: doc.Timestamp, Physical: doc.Physical}

	h := doc.Header
	if h.Interlaced() && !opts.AllowInterlace {
		return 0, 0, nil, meta, pngerr.New(pngerr.UnsupportedInterlace, "IHDR", -1, "Adam7-interlaced image rejected by configuration")
	}

	raw, err := inflateIDAT(doc.IDATBytes(), expectedRawSize(h))
	if err != nil {
		return 0, 0, nil, meta, err
	}

	var out []byte
	if h.Interlaced() {
		out, err = decodeAdam7(raw, h, doc.Palette, doc.Trns, opts.ByteOrder)
	} else {
		out, err = decodeNonInterlaced(raw, h, doc.Palette, doc.Trns, opts.ByteOrder)
	}
	if err != nil {
		return 0, 0, nil, meta, err
	}

	return h.Width, h.Height, out, meta, nil
}
