package png

import "github.com/XC-Zero/pngraster/internal/raster"

// ByteOrder selects the destination channel order the RGBA normaliser
// writes. BGRA is the order device-independent bitmaps on the host
// presentation surface want; RGBA is canonical everywhere else.
type ByteOrder = raster.ByteOrder

// The two supported output channel orders.
const (
	OrderRGBA = raster.RGBA
	OrderBGRA = raster.BGRA
)

// Options configures a Decode call.
type Options = raster.Options

// DefaultOptions is MaxChunkBytes=100MiB, ByteOrder=OrderRGBA,
// AllowInterlace=true.
func DefaultOptions() Options {
	return raster.DefaultOptions()
}
