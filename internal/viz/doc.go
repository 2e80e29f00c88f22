// Package viz is the terminal front end for the canvas engine.
//
// The package implements a Bubble Tea program around a turtle.Engine:
//
//   - [Model]: the program model; ticks drive Engine.Frame
//   - [Canvas]: braille pixel grid that implements turtle.Surface
//   - Theme selection with 4 built-in color schemes
//
// # Key Bindings
//
//	Space - Pause/Resume
//	1/2/3 - Geometric / organic / network mode
//	M     - Next mode
//	C     - Cycle color schemes
//	T     - Cycle TUI themes
//	R     - Respawn entities
//	S     - Save a snapshot
//	?     - Show help overlay
//
// Mouse motion repels entities and a left click scatters them, as on the
// web canvas. Run the program with mouse motion reporting enabled.
package viz
