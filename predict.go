package kmeans

import (
	"github.com/yyyoichi/kmeans/internal/kmeans"
	"github.com/yyyoichi/kmeans/internal/matrix"
	"github.com/yyyoichi/kmeans/internal/nearest"
)

// Predict assigns each of the nSamples rows of x to the nearest of the
// nClusters centers. Ties go to the lowest center index.
func Predict(x []float64, nSamples, nFeatures int, centers []float64, nClusters int) ([]int, error) {
	samples, c, err := operands(x, nSamples, nFeatures, centers, nClusters)
	if err != nil {
		return nil, err
	}
	return predict(samples, c), nil
}

// Transform returns the Euclidean distance from every sample to every center
// as a flat row-major nSamples x nClusters buffer.
func Transform(x []float64, nSamples, nFeatures int, centers []float64, nClusters int) ([]float64, error) {
	samples, c, err := operands(x, nSamples, nFeatures, centers, nClusters)
	if err != nil {
		return nil, err
	}
	return transform(samples, c)
}

// Score returns the sum over samples of the squared distance to the nearest center.
func Score(x []float64, nSamples, nFeatures int, centers []float64, nClusters int) (float64, error) {
	samples, c, err := operands(x, nSamples, nFeatures, centers, nClusters)
	if err != nil {
		return 0, err
	}
	return score(samples, c), nil
}

func operands(x []float64, nSamples, nFeatures int, centers []float64, nClusters int) (*matrix.Matrix, *matrix.Matrix, error) {
	samples, err := newMatrix("samples", nSamples, nFeatures, x)
	if err != nil {
		return nil, nil, err
	}
	c, err := newMatrix("centers", nClusters, nFeatures, centers)
	if err != nil {
		return nil, nil, err
	}
	return samples, c, nil
}

func predict(samples, centers *matrix.Matrix) []int {
	labels := make([]int, samples.Rows())
	kmeans.Assign(samples, centers, labels)
	return labels
}

func transform(samples, centers *matrix.Matrix) ([]float64, error) {
	dist, err := matrix.Zeros(samples.Rows(), centers.Rows())
	if err != nil {
		return nil, shapeError("distances", err)
	}
	for i := range samples.Rows() {
		nearest.Distances(samples.Row(i), centers, dist.Row(i))
	}
	return dist.Flat(), nil
}

func score(samples, centers *matrix.Matrix) float64 {
	var sum float64
	for i := range samples.Rows() {
		_, d := nearest.Center(samples.Row(i), centers)
		sum += d
	}
	return sum
}
