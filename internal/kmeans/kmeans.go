package kmeans

import (
	"math"

	"github.com/sirupsen/logrus"
	"github.com/yyyoichi/kmeans/internal/matrix"
	"github.com/yyyoichi/kmeans/internal/nearest"
)

type Config struct {
	MaxIter   int
	Tolerance float64
	Init      InitFunc
	Rand      Rand
	Logger    logrus.FieldLogger
}

type Result struct {
	Labels     []int
	Centers    *matrix.Matrix
	Inertia    float64
	Iterations int
	Converged  bool

	// EmptyClusters counts the update steps in which a cluster had no samples,
	// summed over all clusters.
	EmptyClusters int
}

// Lloyd clusters the rows of x into k groups.
//
// Each iteration:
//  1. Assigns every sample to its nearest center.
//  2. Moves every non-empty cluster's center to the mean of its samples.
//     Empty clusters keep their previous center.
//  3. Recomputes the inertia of the step 1 labels against the moved centers.
//  4. Stops once the inertia changed by less than cfg.Tolerance.
//
// The loop runs at most cfg.MaxIter times. x must have at least k rows and
// cfg must be fully populated.
func Lloyd(x *matrix.Matrix, k int, cfg Config) *Result {
	n, dim := x.Dims()
	centers, _ := matrix.Zeros(k, dim)
	cfg.Init(x, centers, cfg.Rand)

	var (
		res    = &Result{Labels: make([]int, n), Centers: centers}
		stores = newClusterStores(k, dim)
		prev   = math.Inf(1)
		log    = cfg.Logger.WithFields(logrus.Fields{"samples": n, "features": dim, "clusters": k})
	)
	log.Debug("kmeans fit started")
	for iter := range cfg.MaxIter {
		res.Iterations = iter + 1
		Assign(x, centers, res.Labels)
		for _, c := range update(x, centers, res.Labels, stores) {
			log.WithFields(logrus.Fields{"iteration": res.Iterations, "cluster": c}).
				Debug("empty cluster keeps previous center")
			res.EmptyClusters++
		}
		res.Inertia = Inertia(x, centers, res.Labels)
		if math.Abs(res.Inertia-prev) < cfg.Tolerance {
			res.Converged = true
			break
		}
		prev = res.Inertia
	}
	log.WithFields(logrus.Fields{
		"iterations": res.Iterations,
		"inertia":    res.Inertia,
		"converged":  res.Converged,
	}).Debug("kmeans fit finished")
	return res
}

// Assign writes the nearest center of every row of x into labels.
func Assign(x, centers *matrix.Matrix, labels []int) {
	for i := range x.Rows() {
		labels[i], _ = nearest.Center(x.Row(i), centers)
	}
}

// Inertia sums the squared distance from every row of x to the center its
// label points at.
func Inertia(x, centers *matrix.Matrix, labels []int) float64 {
	var sum float64
	for i, c := range labels {
		sum += nearest.SquaredL2(x.Row(i), centers.Row(c))
	}
	return sum
}

// update recomputes centers from labels and returns the clusters that had no samples.
func update(x, centers *matrix.Matrix, labels []int, stores []ClusterStore) []int {
	for i := range stores {
		stores[i].Reset()
	}
	for i, c := range labels {
		stores[c].Add(x.Row(i))
	}
	var empty []int
	for c := range stores {
		if !stores[c].MeanTo(centers.Row(c)) {
			empty = append(empty, c)
		}
	}
	return empty
}
