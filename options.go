package kmeans

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/sirupsen/logrus"
	"github.com/yyyoichi/kmeans/internal/kmeans"
)

type Option func(*KMeans) error

// Rand is the random source used to seed cluster centers.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Init selects how cluster centers are seeded before the first iteration.
type Init int

const (
	// InitRandomRows starts every center on a sample row drawn uniformly
	// at random, with replacement.
	InitRandomRows Init = iota
	// InitFlatOffset seeds each feature j of each center from the value at a
	// random flat offset plus j, wrapping at the end of the sample buffer.
	// Seeded centers need not coincide with any sample.
	InitFlatOffset
)

func (i Init) fn() kmeans.InitFunc {
	if i == InitFlatOffset {
		return kmeans.InitFlatOffset
	}
	return kmeans.InitRandomRows
}

func (i Init) String() string {
	switch i {
	case InitRandomRows:
		return "random-rows"
	case InitFlatOffset:
		return "flat-offset"
	default:
		return fmt.Sprintf("Init(%d)", int(i))
	}
}

// WithMaxIter caps the number of assign/update iterations. Defaults to DefaultMaxIter.
func WithMaxIter(n int) Option {
	return func(m *KMeans) error {
		if n < 1 {
			return fmt.Errorf("%w: max iterations %d < 1", ErrInvalidArgument, n)
		}
		m.maxIter = n
		return nil
	}
}

// WithTolerance sets the inertia change below which fitting stops.
// Defaults to DefaultTolerance. A tolerance of 0 runs every iteration.
func WithTolerance(tol float64) Option {
	return func(m *KMeans) error {
		if tol < 0 || math.IsNaN(tol) {
			return fmt.Errorf("%w: tolerance %v", ErrInvalidArgument, tol)
		}
		m.tolerance = tol
		return nil
	}
}

// WithSeed seeds center initialization with a math/rand source.
// Fits with the same seed and inputs produce the same result.
func WithSeed(seed int64) Option {
	return func(m *KMeans) error {
		m.rnd = rand.New(rand.NewSource(seed))
		return nil
	}
}

// WithRand uses r as the random source for center initialization.
func WithRand(r Rand) Option {
	return func(m *KMeans) error {
		if r == nil {
			return fmt.Errorf("%w: nil random source", ErrInvalidArgument)
		}
		m.rnd = r
		return nil
	}
}

// WithInit selects the center initialization. Defaults to InitRandomRows.
func WithInit(i Init) Option {
	return func(m *KMeans) error {
		if i != InitRandomRows && i != InitFlatOffset {
			return fmt.Errorf("%w: unknown init %s", ErrInvalidArgument, i)
		}
		m.initializer = i
		return nil
	}
}

// WithLogger routes fit diagnostics to logger. Everything is logged at debug level.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(m *KMeans) error {
		if logger == nil {
			return fmt.Errorf("%w: nil logger", ErrInvalidArgument)
		}
		m.logger = logger
		return nil
	}
}
