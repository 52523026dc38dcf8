package chunkio

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/XC-Zero/pngraster/internal/pngerr"
)

func TestCheckSignature_OK(t *testing.T) {
	r := bytes.NewReader(Signature[:])
	require.NoError(t, CheckSignature(r))
}

func TestCheckSignature_Mismatch(t *testing.T) {
	bad := Signature
	bad[1] = 0x00
	err := CheckSignature(bytes.NewReader(bad[:]))
	require.Error(t, err)
	require.True(t, pngerr.As(err, pngerr.BadSignature))
}

func TestCheckSignature_ShortRead(t *testing.T) {
	err := CheckSignature(bytes.NewReader(Signature[:4]))
	require.Error(t, err)
	require.True(t, pngerr.As(err, pngerr.BadSignature))
}
