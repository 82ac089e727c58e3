package flyer

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"image"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"sync"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

const (
	pngSigLen = 8
	// IHDR is always the first chunk: length + type + 13 data bytes + crc.
	ihdrChunkLen = 4 + 4 + 13 + 4

	metersPerInch = 0.0254
)

// EncodePNG encodes img as PNG and records dpi in a pHYs chunk so print
// tools pick up the intended physical size.
func EncodePNG(img image.Image, dpi int) ([]byte, error) {
	var buf bytes.Buffer
	enc := png.Encoder{CompressionLevel: png.DefaultCompression}
	if err := enc.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("png encode: %w", err)
	}
	b := buf.Bytes()
	if len(b) < pngSigLen+ihdrChunkLen {
		return nil, fmt.Errorf("png encode: short output (%d bytes)", len(b))
	}

	ppm := uint32(math.Round(float64(dpi) / metersPerInch))
	data := make([]byte, 9)
	binary.BigEndian.PutUint32(data[0:4], ppm)
	binary.BigEndian.PutUint32(data[4:8], ppm)
	data[8] = 1 // unit: meter

	chunk := make([]byte, 0, 4+4+len(data)+4)
	chunk = binary.BigEndian.AppendUint32(chunk, uint32(len(data)))
	chunk = append(chunk, "pHYs"...)
	chunk = append(chunk, data...)
	chunk = binary.BigEndian.AppendUint32(chunk, crc32.ChecksumIEEE(chunk[4:]))

	at := pngSigLen + ihdrChunkLen
	out := make([]byte, 0, len(b)+len(chunk))
	out = append(out, b[:at]...)
	out = append(out, chunk...)
	out = append(out, b[at:]...)
	return out, nil
}

var disableConfigDir sync.Once

// EncodePDF wraps a PNG into a single-page PDF whose media box is the page
// size in points. The image is stretched over the whole page.
func EncodePDF(pngData []byte, page Page) ([]byte, error) {
	// pdfcpu would otherwise create a config dir under the user's home.
	disableConfigDir.Do(api.DisableConfigDir)

	w, h := page.Points()
	imp := pdfcpu.DefaultImportConfig()
	imp.PageDim = &types.Dim{Width: w, Height: h}
	imp.UserDim = true
	imp.Pos = types.Full
	imp.InpUnit = types.POINTS

	var buf bytes.Buffer
	if err := api.ImportImages(nil, &buf, []io.Reader{bytes.NewReader(pngData)}, imp, nil); err != nil {
		return nil, fmt.Errorf("pdf import image: %w", err)
	}
	return buf.Bytes(), nil
}

// writeFileAtomic writes data to a temp file beside path and renames it into place.
func writeFileAtomic(path string, data []byte) error {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmp := f.Name()
	if _, err := f.Write(data); err != nil {
		f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	if err := os.Chmod(tmp, 0o644); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, path)
}
