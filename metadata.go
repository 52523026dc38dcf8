package png

import "github.com/XC-Zero/pngraster/internal/raster"

// Metadata is the ancillary, non-pixel information a decode picked up along
// the way (tEXt/zTXt comments, a tIME timestamp, pHYs physical dimensions).
// Every field is best-effort and may be absent even when the source chunk
// was present, if this decoder could not parse it.
type Metadata = raster.Metadata

// TextEntry is one keyword/text pair from a tEXt or zTXt chunk.
type TextEntry = raster.TextEntry

// PhysicalDimensions is the parsed payload of a pHYs chunk.
type PhysicalDimensions = raster.PhysicalDimensions
