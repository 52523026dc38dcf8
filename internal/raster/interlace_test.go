package raster

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAdam7Pass_Dims(t *testing.T) {
	h := Header{Width: 8, Height: 8}
	var total int
	for _, p := range adam7Passes {
		w, ht := p.dims(h)
		total += w * ht
	}
	require.Equal(t, 64, total, "the seven passes must partition every pixel of an 8x8 image exactly once")
}

func TestAdam7Pass_SmallerThanOnePass(t *testing.T) {
	h := Header{Width: 1, Height: 1}
	w, ht := adam7Passes[0].dims(h)
	require.Equal(t, 1, w)
	require.Equal(t, 1, ht)
	for _, p := range adam7Passes[1:] {
		w, ht := p.dims(h)
		require.Equal(t, 0, w*ht)
	}
}

func TestAdam7Pass_NonMultipleDims(t *testing.T) {
	h := Header{Width: 5, Height: 5}
	var total int
	for _, p := range adam7Passes {
		w, ht := p.dims(h)
		total += w * ht
	}
	require.Equal(t, 25, total)
}
