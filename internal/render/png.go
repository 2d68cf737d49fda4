// Package render rasterises a matching surface to PNG with fogleman/gg.
package render

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"math"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/robalobadob/wordmatch/internal/match"
)

const fontSize = 16.0

// PNG is a match.Canvas backed by a gg context. The context is (re)created
// on every Clear, so one PNG can render many frames.
type PNG struct {
	dc   *gg.Context
	face font.Face
}

// NewPNG parses the embedded Go font once.
func NewPNG() (*PNG, error) {
	ttf, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	face := truetype.NewFace(ttf, &truetype.Options{
		Size:    fontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	return &PNG{face: face}, nil
}

// Clear starts a white frame of the given size.
func (p *PNG) Clear(width, height float64) {
	w := int(math.Ceil(width))
	h := int(math.Ceil(height))
	if h < 1 {
		h = 1
	}
	p.dc = gg.NewContext(w, h)
	p.dc.SetFontFace(p.face)
	p.dc.SetColor(color.White)
	p.dc.Clear()
	p.dc.SetColor(color.Black)
	p.dc.SetLineWidth(1.0)
}

func (p *PNG) StrokeLine(from, to match.Position) {
	p.dc.DrawLine(from.X, from.Y, to.X, to.Y)
	p.dc.Stroke()
}

func (p *PNG) FillText(s string, at match.Position) {
	p.dc.DrawStringAnchored(s, at.X, at.Y, 0.5, 0.5)
}

// Image returns the last frame, or nil before the first Clear.
func (p *PNG) Image() image.Image {
	if p.dc == nil {
		return nil
	}
	return p.dc.Image()
}

// Encode writes the last frame as PNG.
func (p *PNG) Encode(w io.Writer) error {
	if p.dc == nil {
		return fmt.Errorf("render: nothing drawn")
	}
	return p.dc.EncodePNG(w)
}

// Surface renders r (a game or surface) and writes the PNG to w.
func Surface(w io.Writer, r interface{ Render(match.Canvas) error }) error {
	p, err := NewPNG()
	if err != nil {
		return err
	}
	if err := r.Render(p); err != nil {
		return err
	}
	return p.Encode(w)
}
