package shapefile

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHeaderRoundTrip(t *testing.T) {
	require := require.New(t)

	h := Header{
		FileLength: 1234,
		ShapeType:  ShapeTypePolygon,
		Version:    1000,
		XMin:       -10, YMin: -20, XMax: 10, YMax: 20,
		ZMin: 0, ZMax: 0,
		MMin: 0, MMax: 0,
	}

	var buf bytes.Buffer
	require.NoError(WriteHeader(&buf, h))
	require.Equal(headerSize, buf.Len())

	got, err := ReadHeader(&buf)
	require.NoError(err)
	require.Equal(h, got)
}

func TestDefaultHeader(t *testing.T) {
	require := require.New(t)

	h := DefaultHeader()
	require.Equal(int32(headerSize/2), h.FileLength)
	require.Equal(ShapeTypeNull, h.ShapeType)
	require.Equal(int32(1000), h.Version)
}

func TestReadHeaderRejectsBadFileCode(t *testing.T) {
	require := require.New(t)

	var buf bytes.Buffer
	require.NoError(writeI32BE(&buf, 1))
	buf.Write(make([]byte, headerSize-4))

	_, err := ReadHeader(&buf)
	require.Error(err)
	var codeErr *ErrInvalidFileCode
	require.ErrorAs(err, &codeErr)
	require.Equal(int32(1), codeErr.Value)
}
