package flyer

import (
	"fmt"
	"image"
	"image/color"

	"github.com/boombuler/barcode/qr"
	"golang.org/x/image/draw"
)

// qrModules encodes content at error correction level Q and returns an image
// with one pixel per module, surrounded by a white quiet zone of border modules.
func qrModules(content string, border int) (*image.Gray, error) {
	code, err := qr.Encode(content, qr.Q, qr.Auto)
	if err != nil {
		return nil, fmt.Errorf("qr encode %q: %w", content, err)
	}
	b := code.Bounds()
	n := b.Dx() + 2*border
	img := image.NewGray(image.Rect(0, 0, n, n))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if color.GrayModel.Convert(code.At(x, y)).(color.Gray).Y < 128 {
				img.SetGray(x-b.Min.X+border, y-b.Min.Y+border, color.Gray{Y: 0})
			}
		}
	}
	return img, nil
}

// drawQR renders content as a QR code scaled into the square at (x, y).
func drawQR(dst draw.Image, content string, x, y, size, border int) error {
	src, err := qrModules(content, border)
	if err != nil {
		return err
	}
	r := image.Rect(x, y, x+size, y+size)
	draw.NearestNeighbor.Scale(dst, r, src, src.Bounds(), draw.Src, nil)
	return nil
}
