// Package kmeans implements Lloyd's k-means clustering over flat row-major
// float64 sample buffers.
package kmeans

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"
	"github.com/yyyoichi/kmeans/internal/kmeans"
	"github.com/yyyoichi/kmeans/internal/matrix"
)

var (
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrAllocationFailure = errors.New("allocation failure")
	ErrReleased          = errors.New("result has been released")
)

const (
	DefaultMaxIter   = 100
	DefaultTolerance = 1e-4
)

var (
	DefaultSeed int64 = 1234567890
)

// Fit clusters nSamples rows of nFeatures values, stored row-major in x, into
// nClusters groups. This is a convenience function that creates a KMeans
// instance and calls its Fit method.
func Fit(x []float64, nSamples, nFeatures, nClusters int, opts ...Option) (*Result, error) {
	m, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return m.Fit(x, nSamples, nFeatures, nClusters)
}

type KMeans struct {
	maxIter     int
	tolerance   float64
	initializer Init
	rnd         Rand
	logger      logrus.FieldLogger
}

// New initializes a k-means estimator.
// For default values, refer to the init function.
func New(opts ...Option) (*KMeans, error) {
	m := new(KMeans)
	if err := m.init(opts...); err != nil {
		return nil, err
	}
	return m, nil
}

// Fit runs Lloyd's algorithm over x.
//
// Process:
//  1. Seeds every center according to the configured Init.
//  2. Assigns every sample to its nearest center.
//  3. Moves every center to the mean of its samples. Centers without samples stay put.
//  4. Recomputes the inertia and stops once it changes by less than the tolerance.
//
// Steps 2 to 4 repeat at most the configured number of iterations.
// The random source is shared by successive calls on the same KMeans.
//
// Returns ErrInvalidArgument unless 0 < nClusters <= nSamples and x holds
// exactly nSamples*nFeatures values.
func (m *KMeans) Fit(x []float64, nSamples, nFeatures, nClusters int) (*Result, error) {
	samples, err := newMatrix("samples", nSamples, nFeatures, x)
	if err != nil {
		return nil, err
	}
	if nClusters <= 0 || nClusters > nSamples {
		return nil, fmt.Errorf("%w: n_clusters %d not in [1, %d]", ErrInvalidArgument, nClusters, nSamples)
	}
	if _, err := matrix.Size(nClusters, nFeatures); err != nil {
		return nil, shapeError("centers", err)
	}
	r := kmeans.Lloyd(samples, nClusters, kmeans.Config{
		MaxIter:   m.maxIter,
		Tolerance: m.tolerance,
		Init:      m.initializer.fn(),
		Rand:      m.rnd,
		Logger:    m.logger,
	})
	return newResult(r), nil
}

func (m *KMeans) init(opts ...Option) error {
	m.maxIter = DefaultMaxIter
	m.tolerance = DefaultTolerance
	m.initializer = InitRandomRows
	for _, opt := range opts {
		if err := opt(m); err != nil {
			return err
		}
	}
	if m.rnd == nil {
		m.rnd = rand.New(rand.NewSource(DefaultSeed))
	}
	if m.logger == nil {
		m.logger = logrus.New()
	}
	return nil
}

// newMatrix validates a flat buffer against its declared shape.
func newMatrix(name string, rows, cols int, data []float64) (*matrix.Matrix, error) {
	mx, err := matrix.New(rows, cols, data)
	if err != nil {
		return nil, shapeError(name, err)
	}
	return mx, nil
}

func shapeError(name string, err error) error {
	if errors.Is(err, matrix.ErrOverflow) {
		return fmt.Errorf("%w: %s: %w", ErrAllocationFailure, name, err)
	}
	return fmt.Errorf("%w: %s: %w", ErrInvalidArgument, name, err)
}
