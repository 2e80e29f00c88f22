package gui

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/backdrop/internal/turtle"
)

var raylibKeys = map[int32]action{
	rl.KeyQ:     actQuit,
	rl.KeySpace: actPause,
	rl.KeyOne:   actGeometric,
	rl.KeyTwo:   actOrganic,
	rl.KeyThree: actNetwork,
	rl.KeyM:     actNextMode,
	rl.KeyC:     actNextScheme,
	rl.KeyR:     actReset,
	rl.KeyH:     actHUD,
}

// raylibSurface draws into whatever render target is active.
type raylibSurface struct {
	w, h int32
}

func rlColor(c color.NRGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

func rlVec(v turtle.Vec) rl.Vector2 {
	return rl.NewVector2(float32(v.X), float32(v.Y))
}

func (s raylibSurface) Fill(col color.NRGBA) {
	rl.DrawRectangle(0, 0, s.w, s.h, rlColor(col))
}

func (s raylibSurface) FillCircle(c turtle.Vec, r float64, col color.NRGBA) {
	rl.DrawCircleV(rlVec(c), float32(r), rlColor(col))
}

func (s raylibSurface) StrokeCircle(c turtle.Vec, r, width float64, col color.NRGBA) {
	inner := float32(max(r-width/2, 0))
	rl.DrawRing(rlVec(c), inner, float32(r+width/2), 0, 360, 48, rlColor(col))
}

// FillPolygon draws a triangle fan. raylib culls clockwise triangles, so
// clockwise outlines are reversed first.
func (s raylibSurface) FillPolygon(pts []turtle.Vec, col color.NRGBA) {
	if len(pts) < 3 {
		return
	}
	vs := make([]rl.Vector2, len(pts))
	for i, p := range pts {
		vs[i] = rlVec(p)
	}
	if turtle.SignedArea(pts) > 0 {
		for i, j := 0, len(vs)-1; i < j; i, j = i+1, j-1 {
			vs[i], vs[j] = vs[j], vs[i]
		}
	}
	rl.DrawTriangleFan(vs, rlColor(col))
}

func (s raylibSurface) StrokeLine(a, b turtle.Vec, width float64, col color.NRGBA) {
	rl.DrawLineEx(rlVec(a), rlVec(b), float32(width), rlColor(col))
}

// Raylib is the raylib window. Frames accumulate in a render texture so
// the translucent fill can fade them.
type Raylib struct {
	opts   Options
	ctrl   *controller
	target rl.RenderTexture2D
	w, h   int32
}

func NewRaylib(eng *turtle.Engine, o Options) *Raylib {
	o = o.withDefaults()
	return &Raylib{opts: o, ctrl: newController(eng, o.Logger)}
}

// Run opens the window and blocks until it is closed.
func (a *Raylib) Run() error {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(a.opts.Width), int32(a.opts.Height), a.opts.Title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(a.opts.FPS))
	rl.SetExitKey(0)

	a.loadTarget(int32(a.opts.Width), int32(a.opts.Height))
	defer rl.UnloadRenderTexture(a.target)

	a.opts.Logger.Info("window open", "backend", "raylib", "width", a.w, "height", a.h)
	for !rl.WindowShouldClose() {
		if a.Update() {
			break
		}
		a.Draw()
	}
	return nil
}

func (a *Raylib) loadTarget(w, h int32) {
	if a.target.ID != 0 {
		rl.UnloadRenderTexture(a.target)
	}
	a.w, a.h = w, h
	a.target = rl.LoadRenderTexture(w, h)
	rl.BeginTextureMode(a.target)
	rl.ClearBackground(rlColor(turtle.BackgroundColor))
	rl.EndTextureMode()
	a.ctrl.resize(int(w), int(h))
}

// Update handles input. It reports whether the window should close.
func (a *Raylib) Update() bool {
	if rl.IsWindowResized() {
		a.loadTarget(int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight()))
	}
	for key, act := range raylibKeys {
		if rl.IsKeyPressed(key) && a.ctrl.apply(act) {
			return true
		}
	}

	mouse := rl.GetMousePosition()
	p := turtle.Vec{X: float64(mouse.X), Y: float64(mouse.Y)}
	delta := rl.GetMouseDelta()
	if delta.X != 0 || delta.Y != 0 {
		a.ctrl.eng.PointerMove(p)
	}
	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		a.ctrl.eng.Click(p)
	}
	return false
}

func (a *Raylib) Draw() {
	if !a.ctrl.paused {
		rl.BeginTextureMode(a.target)
		a.ctrl.eng.Frame(raylibSurface{w: a.w, h: a.h})
		rl.EndTextureMode()
	}

	rl.BeginDrawing()
	rl.ClearBackground(rlColor(turtle.BackgroundColor))
	// Render textures are stored upside down.
	src := rl.NewRectangle(0, 0, float32(a.target.Texture.Width), -float32(a.target.Texture.Height))
	rl.DrawTextureRec(a.target.Texture, src, rl.NewVector2(0, 0), rl.White)
	if a.ctrl.showHUD {
		rl.DrawText(a.ctrl.hud(int(rl.GetFPS())), 20, a.h-50, 14, rl.NewColor(224, 230, 240, 160))
	}
	rl.EndDrawing()
}
