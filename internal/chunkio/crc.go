package chunkio

import (
	"sync"

	"github.com/snksoft/crc"
)

// engine is the table-driven CRC-32 (reflected polynomial 0xEDB88320, init
// 0xFFFFFFFF, final XOR 0xFFFFFFFF) every chunk's trailing four bytes are
// checked against. The 256-entry lookup table is built once, behind
// sync.Once, on first use rather than on every chunk read — the
// single-initialisation guarantee the original write-once-flag-plus-static-
// array pattern was reaching for.
var (
	engineOnce sync.Once
	engine     *crc.Table
)

func crcEngine() *crc.Table {
	engineOnce.Do(func() {
		engine = crc.NewTable(crc.CRC32)
	})
	return engine
}

// crc32Of computes the CRC-32 over a chunk's type code followed by its
// payload, the two fields the trailing CRC covers (length is excluded).
func crc32Of(typ Type, data []byte) uint32 {
	buf := make([]byte, 4+len(data))
	copy(buf, typ[:])
	copy(buf[4:], data)
	t := crcEngine()
	return uint32(t.CRC(t.UpdateCrc(t.InitCrc(), buf)))
}
