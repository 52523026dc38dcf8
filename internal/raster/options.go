package raster

import "github.com/XC-Zero/pngraster/internal/chunkio"

// ByteOrder selects the destination channel order the RGBA normaliser
// writes, per §6. BGRA is what device-independent bitmaps on Windows want;
// RGBA is canonical for everything else.
type ByteOrder uint8

const (
	RGBA ByteOrder = iota
	BGRA
)

// Options configures a decode. See spec §6.
type Options struct {
	// MaxChunkBytes caps any single chunk's payload length; chunks larger
	// than this fail with BadChunk. Zero selects chunkio.DefaultMaxChunkBytes.
	MaxChunkBytes uint32
	// ByteOrder selects the destination channel order.
	ByteOrder ByteOrder
	// AllowInterlace, when false, rejects Adam7-interlaced images with
	// UnsupportedInterlace instead of decoding them.
	AllowInterlace bool
}

// DefaultOptions is MaxChunkBytes=100MiB, ByteOrder=RGBA, AllowInterlace=true.
func DefaultOptions() Options {
	return Options{
		MaxChunkBytes:  chunkio.DefaultMaxChunkBytes,
		ByteOrder:      RGBA,
		AllowInterlace: true,
	}
}
