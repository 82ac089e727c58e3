package flyer

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidPage = errors.New("invalid page")

const (
	minDPI = 72
	maxDPI = 1200

	pointsPerInch = 72.0

	// Layout and font sizes are authored against this resolution.
	designDPI = 300
)

// Page is the physical output size of a flyer.
type Page struct {
	Name     string
	WidthIn  float64
	HeightIn float64
	DPI      int
}

// Letter is US Letter at print resolution: 2550x3300 px, 612x792 pt.
var Letter = Page{Name: "letter", WidthIn: 8.5, HeightIn: 11, DPI: 300}

func (p Page) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: name must not be empty", ErrInvalidPage)
	}
	if !slugPattern.MatchString(p.Name) {
		return fmt.Errorf("%w: name %q must match %s", ErrInvalidPage, p.Name, slugPattern)
	}
	if p.WidthIn <= 0 || p.HeightIn <= 0 {
		return fmt.Errorf("%w: size %gx%g in", ErrInvalidPage, p.WidthIn, p.HeightIn)
	}
	if p.DPI < minDPI || p.DPI > maxDPI {
		return fmt.Errorf("%w: dpi %d outside %d..%d", ErrInvalidPage, p.DPI, minDPI, maxDPI)
	}
	return nil
}

// Px converts inches to whole pixels, truncating.
func (p Page) Px(in float64) int {
	return int(in * float64(p.DPI))
}

// Size returns the raster size in pixels.
func (p Page) Size() (w, h int) {
	return p.Px(p.WidthIn), p.Px(p.HeightIn)
}

// Points returns the page size in PDF points.
func (p Page) Points() (w, h float64) {
	return p.WidthIn * pointsPerInch, p.HeightIn * pointsPerInch
}

// fontPx scales a font size authored at designDPI to this page.
func (p Page) fontPx(size int) float64 {
	return float64(size) * float64(p.DPI) / designDPI
}
