package kmeans

import (
	"fmt"

	"github.com/yyyoichi/kmeans/internal/kmeans"
	"github.com/yyyoichi/kmeans/internal/matrix"
)

// Result is a fitted model. Labels, centers and inertia share one lifecycle:
// they are valid together until Release drops them together.
type Result struct {
	labels        []int
	centers       *matrix.Matrix
	inertia       float64
	iterations    int
	converged     bool
	emptyClusters int
}

func newResult(r *kmeans.Result) *Result {
	return &Result{
		labels:        r.Labels,
		centers:       r.Centers,
		inertia:       r.Inertia,
		iterations:    r.Iterations,
		converged:     r.Converged,
		emptyClusters: r.EmptyClusters,
	}
}

// Labels returns the cluster index of every training sample, or nil after Release.
func (r *Result) Labels() []int { return r.labels }

// Centers returns the cluster centers as a flat row-major nClusters x nFeatures
// buffer, or nil after Release.
func (r *Result) Centers() []float64 {
	if r.centers == nil {
		return nil
	}
	return r.centers.Flat()
}

// Center returns center i, sharing the buffer returned by Centers.
func (r *Result) Center(i int) []float64 {
	if r.centers == nil {
		return nil
	}
	return r.centers.Row(i)
}

// Inertia is the sum of squared distances from every training sample to its center.
func (r *Result) Inertia() float64 { return r.inertia }

// Iterations is the number of assign/update iterations executed.
func (r *Result) Iterations() int { return r.iterations }

// Converged reports whether fitting stopped on the tolerance rather than the iteration cap.
func (r *Result) Converged() bool { return r.converged }

// EmptyClusters counts, over all iterations, the clusters that received no
// sample and kept their previous center.
func (r *Result) EmptyClusters() int { return r.emptyClusters }

func (r *Result) NClusters() int {
	if r.centers == nil {
		return 0
	}
	return r.centers.Rows()
}

func (r *Result) NFeatures() int {
	if r.centers == nil {
		return 0
	}
	return r.centers.Cols()
}

// Predict assigns each of the nSamples rows of x to its nearest fitted center.
func (r *Result) Predict(x []float64, nSamples int) ([]int, error) {
	samples, err := r.samples(x, nSamples)
	if err != nil {
		return nil, err
	}
	return predict(samples, r.centers), nil
}

// Transform returns the distance from each row of x to every fitted center.
func (r *Result) Transform(x []float64, nSamples int) ([]float64, error) {
	samples, err := r.samples(x, nSamples)
	if err != nil {
		return nil, err
	}
	return transform(samples, r.centers)
}

// Score returns the inertia of x against the fitted centers.
func (r *Result) Score(x []float64, nSamples int) (float64, error) {
	samples, err := r.samples(x, nSamples)
	if err != nil {
		return 0, err
	}
	return score(samples, r.centers), nil
}

// Release drops labels and centers together. The result is unusable afterwards.
func (r *Result) Release() {
	r.labels = nil
	r.centers = nil
	r.inertia = 0
}

func (r *Result) samples(x []float64, nSamples int) (*matrix.Matrix, error) {
	if r.centers == nil {
		return nil, ErrReleased
	}
	return newMatrix("samples", nSamples, r.centers.Cols(), x)
}

func (r *Result) String() string {
	if r.centers == nil {
		return "kmeans.Result(released)"
	}
	return fmt.Sprintf("kmeans.Result(clusters=%d features=%d inertia=%g iterations=%d converged=%t)",
		r.centers.Rows(), r.centers.Cols(), r.inertia, r.iterations, r.converged)
}
