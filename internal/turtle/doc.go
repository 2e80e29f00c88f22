// Package turtle provides the entity engine behind the decorative canvas
// backgrounds.
//
// The package defines the core types and the per-frame pipeline:
//
//   - [State]: canvas extent, entities, background particles, static links
//   - [Options]: the recognized option set (count, speed, palette, mode, ...)
//   - [Strategy]: per-mode spawn/update/draw behaviour
//   - [Surface]: drawing target implemented by every front end
//   - [Engine]: owns one State and drives it frame by frame
//
// # Example
//
//	eng, err := turtle.New(turtle.Options{Mode: turtle.ModeOrganic}, 1280, 720)
//	if err != nil {
//	    return err
//	}
//	for {
//	    eng.Frame(surface)
//	}
//
// [Step] is pure with respect to its inputs and the supplied random source,
// so the frame loop can be exercised without any scheduler.
//
// # Thread Safety
//
// Engine instances are NOT thread-safe. The frame scheduler is the single
// writer; for parallel runs use [Ensemble], which gives every run its own
// engine.
package turtle
