package manhattan

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"go.uber.org/zap"
)

// Sentinel errors for manhattan operations.
var (
	// ErrEmptyGrid indicates the grid has no rows or no columns.
	ErrEmptyGrid = errors.New("manhattan: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("manhattan: all rows must have the same length")
	// ErrCellValue indicates a supplied cell value outside [0, 255].
	ErrCellValue = errors.New("manhattan: cell value out of range")
	// ErrNegativeDistance indicates a blur distance below zero.
	ErrNegativeDistance = errors.New("manhattan: distance cannot be negative")
	// ErrBadProbability indicates an activation probability outside [0, 1].
	ErrBadProbability = errors.New("manhattan: probability must be within [0, 1]")
	// ErrGridTooLarge indicates rows×cols overflows the cell index.
	ErrGridTooLarge = errors.New("manhattan: grid dimensions overflow")
)

// Cell states. Other values may be present in a caller-supplied grid;
// they are neither on nor off and their handling is undefined.
const (
	Off uint8 = 0
	On  uint8 = 1
)

// DefaultProbability is the activation probability used for synthesized grids.
const DefaultProbability = 0.1

// Coord addresses a single cell.
type Coord struct {
	Row, Col int
}

// cardinal holds the up/down/left/right offsets as (dRow, dCol).
var cardinal = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Option configures Blur via functional arguments.
// An invalid Option is recorded and surfaced when Blur runs.
type Option func(*Options)

// Options holds parameters and callbacks for a Blur call.
type Options struct {
	// Probability is the chance of each synthesized cell starting on.
	Probability float64

	// Grid, when non-nil, is blurred in place and its dimensions override
	// the rows/cols arguments.
	Grid *Grid

	// Rand is the random source for synthesis. Nil means a fresh
	// time-seeded source per call.
	Rand *rand.Rand

	// Logger receives one Debug entry per iteration.
	Logger *zap.Logger

	// OnStep is called after each iteration with its 1-based number.
	OnStep func(step int, g *Grid)

	err error
}

// DefaultOptions returns Options with Probability=0.1, no supplied grid,
// a per-call random source, the global zap logger and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Probability: DefaultProbability,
		Logger:      zap.L(),
		OnStep:      func(int, *Grid) {},
	}
}

// WithProbability sets the activation probability for synthesized grids.
//
//	0 <= p <= 1: accepted
//	otherwise (including NaN): ErrBadProbability
//
// The last WithProbability wins: a valid value clears an earlier
// probability violation.
func WithProbability(p float64) Option {
	return func(o *Options) {
		if math.IsNaN(p) || p < 0 || p > 1 {
			o.err = fmt.Errorf("%w: got %v", ErrBadProbability, p)

			return
		}
		if errors.Is(o.err, ErrBadProbability) {
			o.err = nil
		}
		o.Probability = p
	}
}

// WithGrid blurs g in place instead of synthesizing a grid.
func WithGrid(g *Grid) Option {
	return func(o *Options) {
		if g != nil {
			o.Grid = g
		}
	}
}

// WithRand sets the random source used for synthesis.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}

// WithLogger sets the logger used for step tracing.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnStep registers a callback run after every iteration.
func WithOnStep(fn func(step int, g *Grid)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}
