// Package drills collects two small, self-contained algorithm drills.
//
// Under the hood, everything is organized under two subpackages:
//
//	ipv4/      — hand-written dotted-quad tokenizer and validator with
//	             structured zap diagnostics
//	manhattan/ — binary pixel Grid and the Manhattan-distance blur that
//	             grows On cells along cardinal neighbours
//
// Quick ASCII example (manhattan.Blur, distance 1):
//
//	0 0 0        0 1 0
//	0 1 0   →    1 1 1
//	0 0 0        0 1 0
//
// Both packages are pure: no goroutines, no global state beyond the
// zap global logger used for diagnostics when none is supplied.
//
//	go get github.com/katalvlaran/drills
package drills
