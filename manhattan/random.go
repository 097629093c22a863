package manhattan

import (
	"fmt"
	"math"
	"math/rand"
	"time"
)

// Random synthesizes a rows×cols grid in which each cell is independently
// On with probability p. If no cell ends up On, exactly one uniformly chosen
// cell is forced On, so the result always has at least one On cell.
// A nil rng uses a fresh time-seeded source.
// Complexity: O(R×C).
func Random(rows, cols int, p float64, rng *rand.Rand) (*Grid, error) {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return nil, fmt.Errorf("%w: got %v", ErrBadProbability, p)
	}
	g, err := NewGrid(rows, cols)
	if err != nil {
		return nil, err
	}
	if rng == nil {
		rng = newRand()
	}

	lit := false
	for i := range g.cells {
		if rng.Float64() < p {
			g.cells[i] = On
			lit = true
		}
	}
	if !lit {
		g.cells[g.index(rng.Intn(rows), rng.Intn(cols))] = On
	}

	return g, nil
}

func newRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
