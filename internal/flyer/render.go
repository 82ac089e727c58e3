package flyer

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
)

var (
	greenDark  = color.RGBA{45, 80, 22, 255}
	greenMid   = color.RGBA{74, 124, 40, 255}
	greenLight = color.RGBA{124, 179, 66, 255}
	orange     = color.RGBA{245, 124, 0, 255}
	gray       = color.RGBA{55, 55, 55, 255}
	grayMuted  = color.RGBA{90, 90, 90, 255}
	grayBorder = color.RGBA{180, 180, 180, 255}
	subtitleFg = color.RGBA{235, 235, 235, 255}
	footerBg   = color.RGBA{245, 245, 245, 255}
)

// Copy is the text shared by every flyer.
type Copy struct {
	CTA        string
	Bullets    []string
	FooterLead string
	SiteURL    string
	Disclosure string
}

func DefaultCopy() Copy {
	return Copy{
		CTA: "This weekend: 1–2 hours makes a difference.",
		Bullets: []string{
			"Bring: gloves (optional), sturdy shoes. We'll take care of the plan.",
			"Do: pick up litter, fill 1–2 bags, take quick before/after photos.",
			"Post: comment on the linked GitHub issue to claim the cleanup and share results.",
		},
		FooterLead: "More info + safety checklist:",
		SiteURL:    SiteURL,
		Disclosure: "AI Village: a public project of AI Digest (theaidigest.org/village).",
	}
}

// Renderer draws flyers for one page size.
type Renderer struct {
	page  Page
	fonts *Fonts
	copy  Copy
}

func NewRenderer(page Page, fonts *Fonts, c Copy) (*Renderer, error) {
	if err := page.Validate(); err != nil {
		return nil, err
	}
	if fonts == nil {
		return nil, fmt.Errorf("renderer: fonts are required")
	}
	return &Renderer{page: page, fonts: fonts, copy: c}, nil
}

func (r *Renderer) Page() Page { return r.page }

type faceSet struct {
	title, sub, body, bodyBold, small font.Face
}

func (r *Renderer) faces() (faceSet, error) {
	var (
		fs  faceSet
		err error
	)
	load := func(dst *font.Face, size int, bold bool) {
		if err != nil {
			return
		}
		*dst, err = r.fonts.Face(r.page.fontPx(size), bold)
	}
	load(&fs.title, 74, true)
	load(&fs.sub, 36, false)
	load(&fs.body, 32, false)
	load(&fs.bodyBold, 32, true)
	load(&fs.small, 24, false)
	return fs, err
}

// Render draws spec onto a new page-sized image.
func (r *Renderer) Render(spec Spec) (*image.RGBA, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	fs, err := r.faces()
	if err != nil {
		return nil, err
	}

	p := r.page
	W, H := p.Size()
	img := image.NewRGBA(image.Rect(0, 0, W, H))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	// Header band.
	headerH := p.Px(1.6)
	fillRect(img, 0, 0, W, headerH, greenDark)
	fillRect(img, 0, headerH-p.Px(0.15), W, headerH, greenLight)

	pad := p.Px(0.6)
	drawText(img, fs.title, pad, p.Px(0.28), spec.Title, color.White)
	drawText(img, fs.sub, pad, p.Px(0.95), spec.Subtitle, subtitleFg)

	// Call to action and bullets, left column.
	y := headerH + p.Px(0.55)
	drawText(img, fs.bodyBold, pad, y, r.copy.CTA, gray)
	y += p.Px(0.55)

	qrSize := p.Px(3.2)
	bulletIndent := p.Px(0.25)
	for _, b := range r.copy.Bullets {
		lines := wrapText(fs.body, b, W-2*pad-qrSize)
		for i, line := range lines {
			prefix := "  "
			if i == 0 {
				prefix = "• "
			}
			drawText(img, fs.body, pad+bulletIndent, y, prefix+line, gray)
			y += p.Px(0.43)
		}
		y += p.Px(0.1)
	}

	// Primary QR, right column.
	qrX := W - pad - qrSize
	qrY := headerH + p.Px(0.7)
	border := p.Px(0.06)
	strokeRect(img, qrX-border, qrY-border, qrX+qrSize+border, qrY+qrSize+border, border, greenMid)
	if err := drawQR(img, spec.PrimaryURL, qrX, qrY, qrSize, 2); err != nil {
		return nil, err
	}

	ly := qrY + qrSize + p.Px(0.15)
	for _, line := range wrapText(fs.small, spec.PrimaryLabel, qrSize) {
		drawCentered(img, fs.small, qrX, ly, qrSize, line, gray)
		ly += p.Px(0.32)
	}
	for _, line := range wrapText(fs.small, strings.TrimPrefix(spec.PrimaryURL, "https://"), qrSize) {
		drawCentered(img, fs.small, qrX, ly, qrSize, line, grayMuted)
		ly += p.Px(0.30)
	}

	if spec.HasSecondary() {
		qr2Size := p.Px(2.05)
		qr2X := W - pad - qr2Size
		qr2Y := ly + p.Px(0.35)
		strokeRect(img, qr2X-border, qr2Y-border, qr2X+qr2Size+border, qr2Y+qr2Size+border, border, grayBorder)
		if err := drawQR(img, spec.SecondaryURL, qr2X, qr2Y, qr2Size, 2); err != nil {
			return nil, err
		}
		l2y := qr2Y + qr2Size + p.Px(0.12)
		for _, line := range wrapText(fs.small, spec.SecondaryLabel, qr2Size) {
			drawCentered(img, fs.small, qr2X, l2y, qr2Size, line, gray)
			l2y += p.Px(0.30)
		}
	}

	// Footer band.
	footerH := p.Px(1.15)
	fillRect(img, 0, H-footerH, W, H, footerBg)
	fillRect(img, 0, H-footerH, W, H-footerH+p.Px(0.08), orange)

	footerY := H - footerH + p.Px(0.25)
	footer := strings.TrimSpace(r.copy.FooterLead + " " + r.copy.SiteURL)
	drawText(img, fs.small, pad, footerY, footer, gray)
	drawText(img, fs.small, pad, footerY+p.Px(0.32), r.copy.Disclosure, grayMuted)

	return img, nil
}
