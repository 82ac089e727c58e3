package flyer

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

type faceKey struct {
	size float64
	bold bool
}

// Fonts holds the regular and bold typefaces and caches sized faces.
type Fonts struct {
	regular *opentype.Font
	bold    *opentype.Font

	mu    sync.Mutex
	faces map[faceKey]font.Face
}

// LoadFonts parses the TTF/OTF files at the given paths. An empty or missing
// path falls back to the embedded Go fonts; unreadable or corrupt files are
// an error.
func LoadFonts(regularPath, boldPath string) (*Fonts, error) {
	regular, err := loadFont(regularPath, goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("regular font: %w", err)
	}
	bold, err := loadFont(boldPath, gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("bold font: %w", err)
	}
	return &Fonts{
		regular: regular,
		bold:    bold,
		faces:   map[faceKey]font.Face{},
	}, nil
}

func loadFont(path string, fallback []byte) (*opentype.Font, error) {
	src := fallback
	if strings.TrimSpace(path) != "" {
		b, err := os.ReadFile(path)
		switch {
		case err == nil:
			src = b
		case errors.Is(err, fs.ErrNotExist):
			// fall back to the embedded font
		default:
			return nil, err
		}
	}
	f, err := opentype.Parse(src)
	if err != nil {
		return nil, fmt.Errorf("parse %q: %w", path, err)
	}
	return f, nil
}

// Face returns a face whose em size is sizePx pixels.
func (f *Fonts) Face(sizePx float64, bold bool) (font.Face, error) {
	key := faceKey{size: sizePx, bold: bold}

	f.mu.Lock()
	defer f.mu.Unlock()
	if face, ok := f.faces[key]; ok {
		return face, nil
	}
	src := f.regular
	if bold {
		src = f.bold
	}
	// DPI 72 makes Size a pixel size.
	face, err := opentype.NewFace(src, &opentype.FaceOptions{
		Size:    sizePx,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("new face size=%g bold=%t: %w", sizePx, bold, err)
	}
	f.faces[key] = face
	return face, nil
}

func (f *Fonts) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	var errs []error
	for k, face := range f.faces {
		errs = append(errs, face.Close())
		delete(f.faces, k)
	}
	return errors.Join(errs...)
}
