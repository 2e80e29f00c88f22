// Package render draws engine frames into images for headless output:
// PNG snapshots, numbered frame sequences and animated GIFs.
package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/san-kum/backdrop/internal/turtle"
)

const captionSize = 12.0

// Raster is a turtle.Surface backed by a gg context.
type Raster struct {
	dc   *gg.Context
	face font.Face
}

func NewRaster(width, height int) (*Raster, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("raster %dx%d: %w", width, height, turtle.ErrNoCanvas)
	}
	dc := gg.NewContext(width, height)
	dc.SetColor(turtle.BackgroundColor)
	dc.Clear()
	return &Raster{dc: dc}, nil
}

func (r *Raster) Width() int  { return r.dc.Width() }
func (r *Raster) Height() int { return r.dc.Height() }

func (r *Raster) Fill(col color.NRGBA) {
	r.dc.SetColor(col)
	r.dc.DrawRectangle(0, 0, float64(r.dc.Width()), float64(r.dc.Height()))
	r.dc.Fill()
}

func (r *Raster) FillCircle(c turtle.Vec, radius float64, col color.NRGBA) {
	r.dc.SetColor(col)
	r.dc.DrawCircle(c.X, c.Y, radius)
	r.dc.Fill()
}

func (r *Raster) StrokeCircle(c turtle.Vec, radius, width float64, col color.NRGBA) {
	r.dc.SetColor(col)
	r.dc.SetLineWidth(width)
	r.dc.DrawCircle(c.X, c.Y, radius)
	r.dc.Stroke()
}

func (r *Raster) FillPolygon(pts []turtle.Vec, col color.NRGBA) {
	if len(pts) < 3 {
		return
	}
	r.dc.SetColor(col)
	r.dc.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		r.dc.LineTo(p.X, p.Y)
	}
	r.dc.ClosePath()
	r.dc.Fill()
}

func (r *Raster) StrokeLine(a, b turtle.Vec, width float64, col color.NRGBA) {
	r.dc.SetColor(col)
	r.dc.SetLineWidth(width)
	r.dc.DrawLine(a.X, a.Y, b.X, b.Y)
	r.dc.Stroke()
}

// Caption writes a line of monospace text in the top-left corner.
func (r *Raster) Caption(text string) error {
	if r.face == nil {
		ttf, err := truetype.Parse(gomono.TTF)
		if err != nil {
			return fmt.Errorf("failed to parse font: %w", err)
		}
		r.face = truetype.NewFace(ttf, &truetype.Options{
			Size:    captionSize,
			DPI:     72,
			Hinting: font.HintingFull,
		})
	}
	r.dc.SetFontFace(r.face)
	r.dc.SetColor(color.NRGBA{R: 255, G: 255, B: 255, A: 200})
	r.dc.DrawStringAnchored(text, 8, 8, 0, 1)
	return nil
}

// Image is the live backing image; it changes as frames are drawn.
func (r *Raster) Image() image.Image {
	return r.dc.Image()
}

func (r *Raster) SavePNG(path string) error {
	return r.dc.SavePNG(path)
}
