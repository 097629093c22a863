// Package manhattan grows the "on" pixels of a binary 2-D grid outward by a
// fixed number of cardinal (up/down/left/right) steps, a Manhattan-distance
// blur.
//
// What:
//
//   - Grid is a fixed-size rectangular array of 0/1 cells with explicit
//     bounds checks on every access.
//   - Blur expands every on cell across its 4-neighbours, iteration by
//     iteration, for min(distance, rows, cols) iterations.
//   - Random synthesizes a grid with a per-cell activation probability and
//     guarantees at least one on cell.
//
// Why:
//
//   - Image morphology: dilation of binary masks with a diamond kernel.
//   - Game maps: "reach within k moves" overlays.
//   - Teaching: a multi-source BFS bounded by depth, done level by level.
//
// Complexity:
//
//   - Blur:   O(R×C) time (each cell enters the frontier at most once),
//     Memory: O(R×C) for the two reusable frontier slices.
//   - Random: O(R×C) time and memory.
//
// Options:
//
//   - WithProbability: activation probability for synthesized grids (default 0.1).
//   - WithGrid: blur a caller-owned grid in place instead of a random one.
//   - WithRand: deterministic random source.
//   - WithLogger: zap logger for per-step tracing (Debug level).
//   - WithOnStep: hook invoked after every iteration.
//
// Errors:
//
//   - ErrEmptyGrid: grid has no rows or no columns.
//   - ErrGridTooLarge: rows×cols overflows int.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrCellValue: a cell value does not fit a small unsigned integer.
//   - ErrNegativeDistance: blur distance below zero.
//   - ErrBadProbability: probability outside [0, 1].
package manhattan
