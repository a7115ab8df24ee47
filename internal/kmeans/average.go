package kmeans

import "gonum.org/v1/gonum/floats"

// ClusterStore accumulates the feature sums and the count of the samples
// assigned to one cluster during an update step.
type ClusterStore struct {
	sum   []float64
	count int
}

func newClusterStores(k, dim int) []ClusterStore {
	stores := make([]ClusterStore, k)
	for i := range stores {
		stores[i].sum = make([]float64, dim)
	}
	return stores
}

func (s *ClusterStore) Add(v []float64) {
	floats.Add(s.sum, v)
	s.count += 1
}

// MeanTo writes the per-feature mean into dst. It leaves dst untouched and
// returns false when no sample was added.
func (s *ClusterStore) MeanTo(dst []float64) bool {
	if s.count == 0 {
		return false
	}
	n := float64(s.count)
	for j, v := range s.sum {
		dst[j] = v / n
	}
	return true
}

func (s *ClusterStore) Count() int { return s.count }

func (s *ClusterStore) Sum() []float64 { return s.sum }

func (s *ClusterStore) Reset() {
	clear(s.sum)
	s.count = 0
}
