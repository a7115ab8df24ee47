// Package nearest finds the closest cluster center under squared Euclidean distance.
package nearest

import (
	"math"

	"github.com/yyyoichi/kmeans/internal/matrix"
)

// SquaredL2 returns the squared Euclidean distance between a and b.
// a and b must have the same length.
func SquaredL2(a, b []float64) float64 {
	var d float64
	for i := range a {
		diff := a[i] - b[i]
		d += diff * diff
	}
	return d
}

// Center returns the index of the center closest to x and its squared distance.
// Centers are scanned from low to high index and only a strictly smaller
// distance replaces the current best, so the first minimum wins.
func Center(x []float64, centers *matrix.Matrix) (int, float64) {
	best, minDist := 0, math.Inf(1)
	for j := range centers.Rows() {
		if d := SquaredL2(x, centers.Row(j)); d < minDist {
			best, minDist = j, d
		}
	}
	return best, minDist
}

// Distances writes the Euclidean distance from x to every center into dst,
// which must have one slot per center.
func Distances(x []float64, centers *matrix.Matrix, dst []float64) {
	for j := range centers.Rows() {
		dst[j] = math.Sqrt(SquaredL2(x, centers.Row(j)))
	}
}
