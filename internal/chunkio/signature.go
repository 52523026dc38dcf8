package chunkio

import (
	"io"

	"github.com/XC-Zero/pngraster/internal/pngerr"
)

// Signature is the 8-octet magic prefix every PNG datastream begins with.
var Signature = [8]byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

// CheckSignature consumes the first 8 octets of r and fails with
// BadSignature on any mismatch, short read, or I/O error.
func CheckSignature(r io.Reader) error {
	var got [8]byte
	if _, err := io.ReadFull(r, got[:]); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return pngerr.Wrap(err, pngerr.BadSignature, "", 0, "short read of PNG signature")
		}
		return pngerr.Wrap(err, pngerr.BadSignature, "", 0, "reading PNG signature")
	}
	if got != Signature {
		return pngerr.New(pngerr.BadSignature, "", 0, "bad PNG signature: got % x", got)
	}
	return nil
}
