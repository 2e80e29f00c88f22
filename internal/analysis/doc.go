// Package analysis finds periodic structure in recorded metric series.
//
// Network mode drives every node around its origin at its own pulse rate.
// The "pulse" column of a network run follows the mean node glow and the
// "speed" column follows the orbit displacement, so both oscillate.
// [DominantPeriod] recovers the strongest cycle in frames:
//
//	samples, _ := store.LoadSamples(id)
//	series := &metrics.Series{Samples: samples}
//	p, ok := analysis.DominantPeriod(series.Column("pulse"))
//
// Geometric and organic runs have no fixed cycle and usually report the
// longest period the window can resolve.
package analysis
