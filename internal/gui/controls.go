// Package gui holds the desktop front ends: a raylib window and a pure Go
// ebiten window. Both drive a turtle.Engine once per display refresh and
// share the same key bindings.
package gui

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/san-kum/backdrop/internal/turtle"
)

// Options configures a desktop window.
type Options struct {
	Width, Height int
	FPS           int
	Title         string
	Logger        *log.Logger
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = 1280
	}
	if o.Height <= 0 {
		o.Height = 720
	}
	if o.FPS <= 0 {
		o.FPS = 60
	}
	if o.Title == "" {
		o.Title = "backdrop"
	}
	if o.Logger == nil {
		o.Logger = log.Default()
	}
	return o
}

type action int

const (
	actNone action = iota
	actQuit
	actPause
	actGeometric
	actOrganic
	actNetwork
	actNextMode
	actNextScheme
	actReset
	actHUD
)

// controller applies key actions to an engine. Backends translate their
// own key codes into actions.
type controller struct {
	eng     *turtle.Engine
	log     *log.Logger
	paused  bool
	showHUD bool
}

func newController(eng *turtle.Engine, logger *log.Logger) *controller {
	return &controller{eng: eng, log: logger, showHUD: true}
}

// apply reports whether the window should close.
func (c *controller) apply(a action) bool {
	switch a {
	case actQuit:
		return true
	case actPause:
		c.paused = !c.paused
	case actGeometric:
		c.setMode(turtle.ModeGeometric)
	case actOrganic:
		c.setMode(turtle.ModeOrganic)
	case actNetwork:
		c.setMode(turtle.ModeNetwork)
	case actNextMode:
		c.setMode(c.eng.Mode().Next())
	case actNextScheme:
		if err := c.eng.NextScheme(); err != nil {
			c.log.Error("scheme switch failed", "err", err)
			return false
		}
		c.log.Info("scheme", "name", c.eng.Options().Scheme)
	case actReset:
		c.eng.Reset()
	case actHUD:
		c.showHUD = !c.showHUD
	}
	return false
}

func (c *controller) setMode(m turtle.Mode) {
	if err := c.eng.SetMode(m); err != nil {
		c.log.Error("mode switch failed", "mode", m, "err", err)
		return
	}
	c.log.Info("mode", "mode", m, "entities", len(c.eng.State().Entities))
}

func (c *controller) resize(w, h int) {
	c.eng.Resize(float64(w), float64(h))
	c.log.Debug("resize", "width", w, "height", h)
}

func (c *controller) hud(fps int) string {
	status := "RUNNING"
	if c.paused {
		status = "PAUSED"
	}
	s := c.eng.State()
	return fmt.Sprintf("%s  %s  frame %d  %d fps\n[1/2/3] MODE  [C] SCHEME  [SPACE] PAUSE  [R] RESET  [H] HUD  [Q] QUIT",
		c.eng.Mode(), status, s.Frame, fps)
}
