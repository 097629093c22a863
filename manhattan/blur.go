package manhattan

import (
	"fmt"

	"go.uber.org/zap"
)

// Blur applies a Manhattan-distance blur and returns the resulting grid.
//
// Without WithGrid, a rows×cols grid is synthesized by Random using the
// configured probability (default 0.1). With WithGrid, that grid's own
// dimensions replace rows and cols, and it is mutated in place and returned.
//
// Behavior:
//  1. The working set starts as every cell equal to On.
//  2. For min(distance, rows, cols) iterations, every in-bounds
//     up/down/left/right neighbour of the working set is turned On,
//     and the cells turned On this iteration become the next working set.
//  3. Cells are never turned Off; the On set only grows.
//
// A distance larger than the grid supports is capped silently.
// Only cells newly turned On enter the next working set: a cell that was
// already On has already spread to its neighbours in an earlier iteration.
//
// Errors: ErrNegativeDistance, ErrBadProbability, ErrEmptyGrid.
// Complexity: O(R×C) time, O(R×C) memory.
func Blur(rows, cols, distance int, opts ...Option) (*Grid, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if distance < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNegativeDistance, distance)
	}

	g := o.Grid
	if g == nil {
		var err error
		if g, err = Random(rows, cols, o.Probability, o.Rand); err != nil {
			return nil, err
		}
	} else {
		rows, cols = g.Rows, g.Cols
	}

	steps := min(distance, rows, cols)
	frontier := g.On()
	next := make([]Coord, 0, len(frontier))
	for step := 1; step <= steps; step++ {
		for _, c := range frontier {
			for _, d := range cardinal {
				r, col := c.Row+d[0], c.Col+d[1]
				if !g.InBounds(r, col) {
					continue
				}
				i := g.index(r, col)
				if g.cells[i] == On {
					continue
				}
				g.cells[i] = On
				next = append(next, Coord{Row: r, Col: col})
			}
		}
		o.Logger.Debug("blur step",
			zap.Int("step", step),
			zap.Int("of", steps),
			zap.Int("activated", len(next)))
		// swap buffers; the old frontier's storage is reused for the next round
		frontier, next = next, frontier[:0]
		o.OnStep(step, g)
	}

	return g, nil
}
