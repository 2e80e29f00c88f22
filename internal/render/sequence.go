package render

import (
	"context"
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"io"
	"path/filepath"

	"github.com/san-kum/backdrop/internal/turtle"
)

// Sequence drives an engine headlessly onto a Raster.
type Sequence struct {
	Engine *turtle.Engine
	Raster *Raster
	// Warmup frames are stepped and drawn before the first capture so the
	// fade has built up trails.
	Warmup int
	// Every captures one image per this many frames.
	Every int
	// Caption, if set, is drawn onto each captured copy.
	Caption func(frame int) string
}

// Run draws frames frames and calls capture with a copy of every captured
// image. It checks ctx between frames.
func (s *Sequence) Run(ctx context.Context, frames int, capture func(frame int, img image.Image) error) error {
	every := s.Every
	if every <= 0 {
		every = 1
	}
	for i := 0; i < s.Warmup; i++ {
		s.Engine.Frame(s.Raster)
	}
	for f := 0; f < frames; f++ {
		if err := ctx.Err(); err != nil {
			return &turtle.FrameError{Frame: f, Mode: s.Engine.Mode(), Wrapped: err}
		}
		s.Engine.Frame(s.Raster)
		if f%every != 0 {
			continue
		}
		img, err := s.snapshot(f)
		if err != nil {
			return err
		}
		if err := capture(f, img); err != nil {
			return fmt.Errorf("frame %d: %w", f, err)
		}
	}
	return nil
}

func (s *Sequence) snapshot(frame int) (image.Image, error) {
	if s.Caption == nil {
		return cloneImage(s.Raster.Image()), nil
	}
	cp, err := NewRaster(s.Raster.Width(), s.Raster.Height())
	if err != nil {
		return nil, err
	}
	cp.dc.DrawImage(s.Raster.Image(), 0, 0)
	if err := cp.Caption(s.Caption(frame)); err != nil {
		return nil, err
	}
	return cp.Image(), nil
}

// FramePath names frame files so they sort in capture order.
func FramePath(dir string, frame int) string {
	return filepath.Join(dir, fmt.Sprintf("frame_%05d.png", frame))
}

// GIF accumulates frames for an animated GIF.
type GIF struct {
	Delay int // hundredths of a second per frame
	anim  gif.GIF
}

func NewGIF(fps int) *GIF {
	delay := 4
	if fps > 0 {
		delay = 100 / fps
	}
	if delay < 2 {
		delay = 2
	}
	return &GIF{Delay: delay}
}

// Add quantizes img to the Plan 9 palette with dithering.
func (g *GIF) Add(img image.Image) {
	b := img.Bounds()
	pal := image.NewPaletted(b, palette.Plan9)
	draw.FloydSteinberg.Draw(pal, b, img, b.Min)
	g.anim.Image = append(g.anim.Image, pal)
	g.anim.Delay = append(g.anim.Delay, g.Delay)
}

func (g *GIF) Len() int { return len(g.anim.Image) }

func (g *GIF) Encode(w io.Writer) error {
	if len(g.anim.Image) == 0 {
		return fmt.Errorf("gif: no frames")
	}
	return gif.EncodeAll(w, &g.anim)
}

func cloneImage(src image.Image) *image.RGBA {
	b := src.Bounds()
	dst := image.NewRGBA(b)
	draw.Draw(dst, b, src, b.Min, draw.Src)
	return dst
}
