package raster

// adam7Pass describes one of the seven regular sub-grids Adam7 splits an
// interlaced image into: pixel (xStart + col*xStep, yStart + row*yStep) of
// the full image is sub-image column col, row row of this pass.
type adam7Pass struct {
	xStart, yStart, xStep, yStep int
}

var adam7Passes = [7]adam7Pass{
	{0, 0, 8, 8},
	{4, 0, 8, 8},
	{0, 4, 4, 8},
	{2, 0, 4, 4},
	{0, 2, 2, 4},
	{1, 0, 2, 2},
	{0, 1, 1, 2},
}

// dims returns the pass's sub-image width and height for a full image of
// h.Width x h.Height, 0,0 if the pass contributes no pixels at all (the
// image is narrower/shorter than the pass's start offset).
func (p adam7Pass) dims(h Header) (width, height int) {
	fullW, fullH := int(h.Width), int(h.Height)
	if fullW <= p.xStart || fullH <= p.yStart {
		return 0, 0
	}
	width = (fullW - p.xStart + p.xStep - 1) / p.xStep
	height = (fullH - p.yStart + p.yStep - 1) / p.yStep
	return width, height
}
