package flyer

import (
	"image"
	"image/color"
	"strings"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

func textWidth(face font.Face, s string) int {
	return font.MeasureString(face, s).Ceil()
}

// wrapText greedily packs words into lines no wider than maxW pixels.
// A single word wider than maxW gets a line of its own.
func wrapText(face font.Face, text string, maxW int) []string {
	var (
		lines []string
		cur   string
	)
	for _, w := range strings.Fields(text) {
		test := strings.TrimSpace(cur + " " + w)
		if textWidth(face, test) <= maxW {
			cur = test
			continue
		}
		if cur != "" {
			lines = append(lines, cur)
		}
		cur = w
	}
	if cur != "" {
		lines = append(lines, cur)
	}
	return lines
}

// drawText draws s with its top-left corner at (x, y).
func drawText(dst draw.Image, face font.Face, x, y int, s string, c color.Color) {
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(x, y+face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(s)
}

// drawCentered draws s horizontally centered in a column of width w starting at x.
func drawCentered(dst draw.Image, face font.Face, x, y, w int, s string, c color.Color) {
	drawText(dst, face, x+floorDiv(w-textWidth(face, s), 2), y, s, c)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// fillRect fills the inclusive box (x0,y0)-(x1,y1).
func fillRect(dst draw.Image, x0, y0, x1, y1 int, c color.Color) {
	r := image.Rect(x0, y0, x1+1, y1+1).Intersect(dst.Bounds())
	draw.Draw(dst, r, image.NewUniform(c), image.Point{}, draw.Src)
}

// strokeRect outlines the inclusive box (x0,y0)-(x1,y1) with a border of
// width w drawn inwards.
func strokeRect(dst draw.Image, x0, y0, x1, y1, w int, c color.Color) {
	fillRect(dst, x0, y0, x1, y0+w-1, c)
	fillRect(dst, x0, y1-w+1, x1, y1, c)
	fillRect(dst, x0, y0, x0+w-1, y1, c)
	fillRect(dst, x1-w+1, y0, x1, y1, c)
}
