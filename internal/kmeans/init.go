package kmeans

import "github.com/yyyoichi/kmeans/internal/matrix"

// Rand is the random source used for seeding. *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// InitFunc fills centers with the starting position of every cluster.
type InitFunc func(x, centers *matrix.Matrix, rnd Rand)

// InitRandomRows copies a uniformly chosen sample row into each center.
// Rows are drawn with replacement, so two centers may start on the same sample.
func InitRandomRows(x, centers *matrix.Matrix, rnd Rand) {
	n := x.Rows()
	for i := range centers.Rows() {
		copy(centers.Row(i), x.Row(rnd.Intn(n)))
	}
}

// InitFlatOffset seeds feature j of every center with the value found at a
// random flat offset plus j. One offset is drawn per (center, feature) pair
// in row-major order, and offsets past the end wrap to the start of the
// buffer. The seeded values need not come from a single sample row.
func InitFlatOffset(x, centers *matrix.Matrix, rnd Rand) {
	size := x.Rows() * x.Cols()
	for i := range centers.Rows() {
		for j := range centers.Cols() {
			centers.Set(i, j, x.FlatAt((rnd.Intn(size)+j)%size))
		}
	}
}
