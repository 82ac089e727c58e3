package flyer

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Result lists the files written for one spec.
type Result struct {
	Slug string
	PNG  string
	PDF  string
}

// Generator renders specs one after another into OutDir.
type Generator struct {
	Renderer *Renderer
	OutDir   string
	Log      *slog.Logger

	// OnWrite, when set, is called after each spec's files are in place.
	OnWrite func(Result)
}

// Generate renders every spec and writes flyer_<slug>_<page>.png and .pdf.
// It stops at the first error or when ctx is cancelled between specs;
// results for specs already written are returned either way.
func (g *Generator) Generate(ctx context.Context, specs []Spec) ([]Result, error) {
	if g.Renderer == nil {
		return nil, fmt.Errorf("generator: renderer is required")
	}
	log := g.Log
	if log == nil {
		log = slog.Default()
	}
	for _, s := range specs {
		if err := s.Validate(); err != nil {
			return nil, err
		}
	}
	if err := os.MkdirAll(g.OutDir, 0o755); err != nil {
		return nil, fmt.Errorf("create out dir: %w", err)
	}

	page := g.Renderer.Page()
	out := make([]Result, 0, len(specs))
	for _, s := range specs {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		res, err := g.one(s, page)
		if err != nil {
			return out, fmt.Errorf("flyer %s: %w", s.Slug, err)
		}
		log.Debug("flyer written", "slug", s.Slug, "png", res.PNG, "pdf", res.PDF)
		out = append(out, res)
		if g.OnWrite != nil {
			g.OnWrite(res)
		}
	}
	return out, nil
}

func (g *Generator) one(s Spec, page Page) (Result, error) {
	img, err := g.Renderer.Render(s)
	if err != nil {
		return Result{}, err
	}
	pngData, err := EncodePNG(img, page.DPI)
	if err != nil {
		return Result{}, err
	}
	pdfData, err := EncodePDF(pngData, page)
	if err != nil {
		return Result{}, err
	}

	base := filepath.Join(g.OutDir, s.baseName(page))
	res := Result{Slug: s.Slug, PNG: base + ".png", PDF: base + ".pdf"}
	if err := writeFileAtomic(res.PNG, pngData); err != nil {
		return Result{}, fmt.Errorf("write png: %w", err)
	}
	if err := writeFileAtomic(res.PDF, pdfData); err != nil {
		return Result{}, fmt.Errorf("write pdf: %w", err)
	}
	return res, nil
}
