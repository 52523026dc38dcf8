package chunkio

import (
	"encoding/binary"
	"io"

	"github.com/XC-Zero/pngraster/internal/pngerr"
)

// DefaultMaxChunkBytes is the recommended per-chunk length cap (§3, 100 MiB).
const DefaultMaxChunkBytes = 100 * 1024 * 1024

// Chunk is one length-prefixed, type-tagged, CRC-checked unit of the PNG
// container. Recognized is false for chunk types this decoder does not
// give first-class treatment to (any type other than IHDR/PLTE/IDAT/
// IEND/tRNS) — such chunks are always ancillary (Type.Critical() is already
// checked by Read, which fails before returning one that is both unknown
// and critical) and the caller should simply skip them.
type Chunk struct {
	Type       Type
	Length     uint32
	Data       []byte
	Recognized bool
}

// Reader pulls chunks one at a time off an underlying stream, tracking the
// byte offset for diagnostics and enforcing the configured per-chunk size
// cap.
type Reader struct {
	r            io.Reader
	maxChunkSize uint32
	offset       int64
}

// NewReader wraps r. maxChunkSize of 0 selects DefaultMaxChunkBytes.
func NewReader(r io.Reader, maxChunkSize uint32) *Reader {
	if maxChunkSize == 0 {
		maxChunkSize = DefaultMaxChunkBytes
	}
	return &Reader{r: r, maxChunkSize: maxChunkSize}
}

// Offset returns the number of bytes consumed from the underlying stream so
// far, for use in diagnostics.
func (cr *Reader) Offset() int64 { return cr.offset }

// Next reads one chunk: a 4-byte big-endian length, a 4-byte type code,
// `length` payload octets, and a 4-byte big-endian CRC, verifying the CRC
// against the type+payload. Fails with BadChunk (ChunkTooLarge or
// CrcMismatch/UnknownCriticalChunk) or IoError (short read).
//
// Next returns io.EOF, unwrapped, when the stream ends cleanly exactly on a
// chunk boundary (no bytes at all consumed for the next chunk) — this lets
// callers distinguish "nothing more to read" from a truncated chunk, which
// callers use to detect trailing bytes after IEND.
func (cr *Reader) Next() (*Chunk, error) {
	startOffset := cr.offset

	var lenBuf [4]byte
	n, err := io.ReadFull(cr.r, lenBuf[:])
	cr.offset += int64(n)
	if err != nil {
		if err == io.EOF && n == 0 {
			return nil, io.EOF
		}
		return nil, pngerr.Wrap(err, pngerr.IoError, "", startOffset, "reading chunk length")
	}
	length := binary.BigEndian.Uint32(lenBuf[:])
	if length > 0x7fffffff {
		return nil, pngerr.New(pngerr.BadChunk, "", startOffset, "chunk length %d exceeds the 2^31-1 protocol limit", length)
	}
	if length > cr.maxChunkSize {
		return nil, pngerr.New(pngerr.BadChunk, "", startOffset, "chunk length %d exceeds the configured cap of %d bytes", length, cr.maxChunkSize)
	}

	var typ Type
	if err := cr.readFull(typ[:]); err != nil {
		return nil, pngerr.Wrap(err, pngerr.IoError, "", startOffset, "reading chunk type")
	}

	data := make([]byte, length)
	if err := cr.readFull(data); err != nil {
		return nil, pngerr.Wrap(err, pngerr.IoError, typ.String(), startOffset, "reading chunk payload")
	}

	var crcBuf [4]byte
	if err := cr.readFull(crcBuf[:]); err != nil {
		return nil, pngerr.Wrap(err, pngerr.IoError, typ.String(), startOffset, "reading chunk CRC")
	}
	stored := binary.BigEndian.Uint32(crcBuf[:])
	computed := crc32Of(typ, data)
	if stored != computed {
		return nil, pngerr.New(pngerr.BadChunk, typ.String(), startOffset, "CRC mismatch: stored %#08x, computed %#08x", stored, computed)
	}

	recognized := typ.Recognized()
	if !recognized && typ.Critical() {
		return nil, pngerr.New(pngerr.BadChunk, typ.String(), startOffset, "unknown critical chunk")
	}

	return &Chunk{Type: typ, Length: length, Data: data, Recognized: recognized}, nil
}

func (cr *Reader) readFull(p []byte) error {
	n, err := io.ReadFull(cr.r, p)
	cr.offset += int64(n)
	if err == io.EOF && n == 0 {
		return io.ErrUnexpectedEOF
	}
	return err
}
