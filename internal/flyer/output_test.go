package flyer

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/png"
	"testing"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/stretchr/testify/require"
)

// pngPPM returns the pixels-per-meter stored in the pHYs chunk.
func pngPPM(t *testing.T, b []byte) (uint32, bool) {
	t.Helper()
	off := pngSigLen
	for off+8 <= len(b) {
		n := int(binary.BigEndian.Uint32(b[off : off+4]))
		typ := string(b[off+4 : off+8])
		if typ == "pHYs" {
			return binary.BigEndian.Uint32(b[off+8 : off+12]), b[off+16] == 1
		}
		off += 12 + n
	}
	return 0, false
}

func TestEncodePNG_WritesDensity(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 30, 40))
	b, err := EncodePNG(img, 300)
	require.NoError(t, err)

	ppm, meters := pngPPM(t, b)
	require.True(t, meters)
	require.Equal(t, uint32(11811), ppm)

	dec, err := png.Decode(bytes.NewReader(b))
	require.NoError(t, err)
	require.Equal(t, img.Bounds(), dec.Bounds())
}

func TestEncodePDF_PageSize(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 85, 110))
	pngData, err := EncodePNG(img, 10)
	require.NoError(t, err)

	pdfData, err := EncodePDF(pngData, Letter)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(pdfData, []byte("%PDF-")))

	dims, err := api.PageDims(bytes.NewReader(pdfData), nil)
	require.NoError(t, err)
	require.Len(t, dims, 1)
	require.InDelta(t, 612.0, dims[0].Width, 0.01)
	require.InDelta(t, 792.0, dims[0].Height, 0.01)
}
