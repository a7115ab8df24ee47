package kmeans_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yyyoichi/kmeans"
	"gonum.org/v1/gonum/floats"
)

func TestPredict(t *testing.T) {
	centers := []float64{
		0, 0,
		10, 10,
		20, 20,
	}
	test := []struct {
		name string
		x    []float64
		exp  []int
	}{
		{name: "each", x: []float64{1, 1, 11, 9, 19, 21}, exp: []int{0, 1, 2}},
		{name: "tie_goes_low", x: []float64{5, 5, 15, 15}, exp: []int{0, 1}},
		{name: "far", x: []float64{-100, -100, 100, 100}, exp: []int{0, 2}},
	}
	for _, tt := range test {
		t.Run(tt.name, func(t *testing.T) {
			labels, err := kmeans.Predict(tt.x, len(tt.x)/2, 2, centers, 3)
			require.NoError(t, err)
			assert.Equal(t, tt.exp, labels)
		})
	}
}

func TestTransform(t *testing.T) {
	x := []float64{
		0, 0,
		3, 4,
	}
	centers := []float64{
		0, 0,
		3, 0,
		6, 8,
	}
	dist, err := kmeans.Transform(x, 2, 2, centers, 3)
	require.NoError(t, err)
	assert.Equal(t, []float64{
		0, 3, 10,
		5, 4, 5,
	}, dist)
}

func TestScore(t *testing.T) {
	x := []float64{0, 4, 9}
	centers := []float64{1, 8}
	score, err := kmeans.Score(x, 3, 1, centers, 2)
	require.NoError(t, err)
	// 1 + 9 + 1
	assert.Equal(t, 11.0, score)

	// More centers than samples is allowed outside Fit.
	score, err = kmeans.Score([]float64{2}, 1, 1, []float64{0, 2, 4}, 3)
	require.NoError(t, err)
	assert.Equal(t, 0.0, score)
}

func TestInference_Properties(t *testing.T) {
	for seed := range int64(15) {
		rd := rand.New(rand.NewSource(seed))
		n := 1 + rd.Intn(40)
		f := 1 + rd.Intn(5)
		k := 1 + rd.Intn(8)
		x := make([]float64, n*f)
		for i := range x {
			x[i] = rd.NormFloat64() * 5
		}
		centers := make([]float64, k*f)
		for i := range centers {
			centers[i] = rd.NormFloat64() * 5
		}

		labels, err := kmeans.Predict(x, n, f, centers, k)
		require.NoError(t, err)
		again, err := kmeans.Predict(x, n, f, centers, k)
		require.NoError(t, err)
		assert.Equal(t, labels, again, "seed=%d", seed)

		dist, err := kmeans.Transform(x, n, f, centers, k)
		require.NoError(t, err)
		require.Len(t, dist, n*k)
		assert.GreaterOrEqual(t, floats.Min(dist), 0.0)

		score, err := kmeans.Score(x, n, f, centers, k)
		require.NoError(t, err)
		scoreAgain, err := kmeans.Score(x, n, f, centers, k)
		require.NoError(t, err)
		assert.Equal(t, score, scoreAgain)
		assert.GreaterOrEqual(t, score, 0.0)

		var want float64
		for i := range n {
			row := dist[i*k : (i+1)*k]
			m := floats.Min(row)
			want += m * m
			assert.Less(t, labels[i], k)
			assert.GreaterOrEqual(t, labels[i], 0)
			assert.InDelta(t, m, row[labels[i]], 1e-9*math.Max(1, m), "seed=%d sample=%d", seed, i)
		}
		assert.InDelta(t, want, score, 1e-9*math.Max(1, want), "seed=%d", seed)
	}
}

func TestInference_InvalidArguments(t *testing.T) {
	x := []float64{0, 0, 1, 1}
	centers := []float64{0, 0}
	test := []struct {
		name                string
		x, centers          []float64
		nSamples, nFeatures int
		nClusters           int
		err                 error
	}{
		{name: "zero_samples", x: x, centers: centers, nSamples: 0, nFeatures: 2, nClusters: 1, err: kmeans.ErrInvalidArgument},
		{name: "zero_features", x: x, centers: centers, nSamples: 2, nFeatures: 0, nClusters: 1, err: kmeans.ErrInvalidArgument},
		{name: "zero_clusters", x: x, centers: centers, nSamples: 2, nFeatures: 2, nClusters: 0, err: kmeans.ErrInvalidArgument},
		{name: "samples_mismatch", x: x[:3], centers: centers, nSamples: 2, nFeatures: 2, nClusters: 1, err: kmeans.ErrInvalidArgument},
		{name: "centers_mismatch", x: x, centers: centers, nSamples: 2, nFeatures: 2, nClusters: 2, err: kmeans.ErrInvalidArgument},
		{name: "samples_overflow", x: x, centers: centers, nSamples: math.MaxInt/2 + 1, nFeatures: 2, nClusters: 1, err: kmeans.ErrAllocationFailure},
	}
	for _, tt := range test {
		t.Run(tt.name, func(t *testing.T) {
			labels, err := kmeans.Predict(tt.x, tt.nSamples, tt.nFeatures, tt.centers, tt.nClusters)
			assert.ErrorIs(t, err, tt.err)
			assert.Nil(t, labels)

			dist, err := kmeans.Transform(tt.x, tt.nSamples, tt.nFeatures, tt.centers, tt.nClusters)
			assert.ErrorIs(t, err, tt.err)
			assert.Nil(t, dist)

			_, err = kmeans.Score(tt.x, tt.nSamples, tt.nFeatures, tt.centers, tt.nClusters)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestResult_Inference(t *testing.T) {
	x := []float64{0, 0, 0, 0, 10, 10, 10, 10}
	res, err := kmeans.Fit(x, 4, 2, 2, kmeans.WithRand(&seqRand{seq: []int{0, 3}}))
	require.NoError(t, err)

	q := []float64{1, 1, 9, 9, 4, 4}
	labels, err := res.Predict(q, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 0}, labels)

	dist, err := res.Transform(q, 3)
	require.NoError(t, err)
	want, err := kmeans.Transform(q, 3, 2, res.Centers(), 2)
	require.NoError(t, err)
	assert.Equal(t, want, dist)

	score, err := res.Score(q, 3)
	require.NoError(t, err)
	assert.Equal(t, 2.0+2.0+32.0, score)

	_, err = res.Predict(q, 2)
	assert.ErrorIs(t, err, kmeans.ErrInvalidArgument)
}

func TestInference_NaNPropagates(t *testing.T) {
	score, err := kmeans.Score([]float64{math.NaN(), 1}, 2, 1, []float64{0}, 1)
	require.NoError(t, err)
	assert.True(t, math.IsInf(score, 1))

	dist, err := kmeans.Transform([]float64{math.NaN()}, 1, 1, []float64{0, 1}, 2)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(dist[0]))
	assert.True(t, math.IsNaN(dist[1]))
}
