package raster

import (
	"bytes"
	"compress/zlib"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseText_OK(t *testing.T) {
	e, ok := parseText([]byte("Author\x00Jane Doe"))
	require.True(t, ok)
	require.Equal(t, "Author", e.Keyword)
	require.Equal(t, "Jane Doe", e.Text)
	require.False(t, e.Compressed)
}

func TestParseText_MissingSeparator(t *testing.T) {
	_, ok := parseText([]byte("no separator here"))
	require.False(t, ok)
}

func TestParseText_EmptyKeyword(t *testing.T) {
	_, ok := parseText([]byte("\x00orphaned text"))
	require.False(t, ok)
}

func TestParseCompressedText_OK(t *testing.T) {
	var z bytes.Buffer
	w := zlib.NewWriter(&z)
	_, err := w.Write([]byte("a long comment"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	payload := append([]byte("Comment\x00\x00"), z.Bytes()...)
	e, ok := parseCompressedText(payload)
	require.True(t, ok)
	require.Equal(t, "Comment", e.Keyword)
	require.Equal(t, "a long comment", e.Text)
	require.True(t, e.Compressed)
}

func TestParseCompressedText_UnsupportedCompressionMethod(t *testing.T) {
	_, ok := parseCompressedText([]byte("Comment\x00\x01garbage"))
	require.False(t, ok)
}

func TestParseTime_OK(t *testing.T) {
	ts, ok := parseTime([]byte{0x07, 0xE8, 3, 15, 12, 30, 0}) // 2024-03-15 12:30:00
	require.True(t, ok)
	require.Equal(t, 2024, ts.Year())
	require.Equal(t, 3, int(ts.Month()))
	require.Equal(t, 15, ts.Day())
}

func TestParseTime_WrongLength(t *testing.T) {
	_, ok := parseTime([]byte{1, 2, 3})
	require.False(t, ok)
}

func TestParsePhysical_OK(t *testing.T) {
	p, ok := parsePhysical([]byte{0, 0, 0x0B, 0x88, 0, 0, 0x0B, 0x88, 1})
	require.True(t, ok)
	require.EqualValues(t, 2952, p.PixelsPerUnitX)
	require.EqualValues(t, 2952, p.PixelsPerUnitY)
	require.True(t, p.UnitIsMeter)
}

func TestParsePhysical_WrongLength(t *testing.T) {
	_, ok := parsePhysical([]byte{0, 0})
	require.False(t, ok)
}
