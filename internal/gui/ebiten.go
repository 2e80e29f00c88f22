package gui

import (
	"errors"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/san-kum/backdrop/internal/turtle"
)

var ebitenKeys = map[ebiten.Key]action{
	ebiten.KeyQ:      actQuit,
	ebiten.KeyEscape: actQuit,
	ebiten.KeySpace:  actPause,
	ebiten.Key1:      actGeometric,
	ebiten.Key2:      actOrganic,
	ebiten.Key3:      actNetwork,
	ebiten.KeyM:      actNextMode,
	ebiten.KeyC:      actNextScheme,
	ebiten.KeyR:      actReset,
	ebiten.KeyH:      actHUD,
}

// whiteSubImage is the source texture for solid DrawTriangles fills.
var whiteSubImage = func() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}()

type ebitenSurface struct {
	dst *ebiten.Image
}

func (s ebitenSurface) Fill(col color.NRGBA) {
	b := s.dst.Bounds()
	vector.DrawFilledRect(s.dst, 0, 0, float32(b.Dx()), float32(b.Dy()), col, false)
}

func (s ebitenSurface) FillCircle(c turtle.Vec, r float64, col color.NRGBA) {
	vector.DrawFilledCircle(s.dst, float32(c.X), float32(c.Y), float32(r), col, true)
}

func (s ebitenSurface) StrokeCircle(c turtle.Vec, r, width float64, col color.NRGBA) {
	vector.StrokeCircle(s.dst, float32(c.X), float32(c.Y), float32(r), float32(width), col, true)
}

func (s ebitenSurface) FillPolygon(pts []turtle.Vec, col color.NRGBA) {
	if len(pts) < 3 {
		return
	}
	var path vector.Path
	path.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r, g, b, a := float32(col.R)/255, float32(col.G)/255, float32(col.B)/255, float32(col.A)/255
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR, vs[i].ColorG, vs[i].ColorB, vs[i].ColorA = r, g, b, a
	}
	s.dst.DrawTriangles(vs, is, whiteSubImage, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func (s ebitenSurface) StrokeLine(a, b turtle.Vec, width float64, col color.NRGBA) {
	vector.StrokeLine(s.dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), float32(width), col, true)
}

// Ebiten is the pure Go window. The engine steps in Update at the tick
// rate and renders into an offscreen image that persists between frames.
type Ebiten struct {
	opts   Options
	ctrl   *controller
	canvas *ebiten.Image
	lastX  int
	lastY  int
}

func NewEbiten(eng *turtle.Engine, o Options) *Ebiten {
	o = o.withDefaults()
	return &Ebiten{opts: o, ctrl: newController(eng, o.Logger)}
}

// Run opens the window and blocks until it is closed.
func (g *Ebiten) Run() error {
	ebiten.SetWindowSize(g.opts.Width, g.opts.Height)
	ebiten.SetWindowTitle(g.opts.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(g.opts.FPS)

	g.opts.Logger.Info("window open", "backend", "ebiten", "width", g.opts.Width, "height", g.opts.Height)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

func (g *Ebiten) Update() error {
	for key, act := range ebitenKeys {
		if inpututil.IsKeyJustPressed(key) && g.ctrl.apply(act) {
			return ebiten.Termination
		}
	}

	x, y := ebiten.CursorPosition()
	p := turtle.Vec{X: float64(x), Y: float64(y)}
	if x != g.lastX || y != g.lastY {
		g.ctrl.eng.PointerMove(p)
		g.lastX, g.lastY = x, y
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.ctrl.eng.Click(p)
	}

	if !g.ctrl.paused {
		g.ctrl.eng.Step()
		if g.canvas != nil {
			g.ctrl.eng.Render(ebitenSurface{dst: g.canvas})
		}
	}
	return nil
}

func (g *Ebiten) Draw(screen *ebiten.Image) {
	if g.canvas != nil {
		screen.DrawImage(g.canvas, nil)
	}
	if g.ctrl.showHUD {
		ebitenutil.DebugPrintAt(screen, g.ctrl.hud(int(ebiten.ActualFPS())), 12, screen.Bounds().Dy()-40)
	}
}

// Layout follows the window size so the canvas is always 1:1 with pixels.
func (g *Ebiten) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.canvas == nil || g.canvas.Bounds().Dx() != outsideWidth || g.canvas.Bounds().Dy() != outsideHeight {
		if g.canvas != nil {
			g.canvas.Deallocate()
		}
		g.canvas = ebiten.NewImage(outsideWidth, outsideHeight)
		g.canvas.Fill(turtle.BackgroundColor)
		g.ctrl.resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}
