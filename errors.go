package png

import "github.com/XC-Zero/pngraster/internal/pngerr"

// ErrorKind is one of the fatal-error categories a Decode call can fail
// with. Every decode error is fatal — there is no retry and no partial
// result.
type ErrorKind = pngerr.Kind

// The eleven error kinds a Decode call can surface.
const (
	ErrIO                   = pngerr.IoError
	ErrBadSignature         = pngerr.BadSignature
	ErrBadChunk             = pngerr.BadChunk
	ErrBadHeader            = pngerr.BadHeader
	ErrOrderingViolation    = pngerr.OrderingViolation
	ErrBadPalette           = pngerr.BadPalette
	ErrBadTransparency      = pngerr.BadTransparency
	ErrDecompress           = pngerr.DecompressError
	ErrBadFilter            = pngerr.BadFilter
	ErrBadPixelData         = pngerr.BadPixelData
	ErrUnsupportedInterlace = pngerr.UnsupportedInterlace
)

// IsKind reports whether err is a decode error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	return pngerr.As(err, kind)
}
