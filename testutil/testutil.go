package testutil

import (
	"fmt"
	"math/rand"
	"sort"
	"sync"

	"github.com/hupe1980/vecrank/distance"
	"github.com/hupe1980/vecrank/model"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// FillUniform fills dst with random values in range [0, 1).
// Locks only once per call (preferred over calling Float32 in a loop).
func (r *RNG) FillUniform(dst []float32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range dst {
		dst[i] = r.rand.Float32()
	}
}

// FillQuantized fills dst with random values from {0, 1/levels, ..., 1}.
// Small level counts produce many exactly equal scores, which exercises ties.
func (r *RNG) FillQuantized(dst []float32, levels int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range dst {
		dst[i] = float32(r.rand.Intn(levels+1)) / float32(levels)
	}
}

// UniformDataset generates num entries with dim uniform values in [0, 1).
// Entry identifiers are "e0", "e1", ...
func (r *RNG) UniformDataset(num, dim int) model.Dataset {
	ds := make(model.Dataset, num)
	for i := range ds {
		ds[i] = model.Entry{ID: EntryID(i), Vector: make([]float32, dim)}
		r.FillUniform(ds[i].Vector)
	}
	return ds
}

// QuantizedDataset generates num entries whose values are multiples of 1/levels.
func (r *RNG) QuantizedDataset(num, dim, levels int) model.Dataset {
	ds := make(model.Dataset, num)
	for i := range ds {
		ds[i] = model.Entry{ID: EntryID(i), Vector: make([]float32, dim)}
		r.FillQuantized(ds[i].Vector, levels)
	}
	return ds
}

// HistogramDataset generates num entries whose vectors are normalized
// histograms (non-negative, summing to one).
func (r *RNG) HistogramDataset(num, dim int) model.Dataset {
	ds := r.UniformDataset(num, dim)
	for _, e := range ds {
		var sum float32
		for _, v := range e.Vector {
			sum += v
		}
		if sum == 0 {
			continue
		}
		for j := range e.Vector {
			e.Vector[j] /= sum
		}
	}
	return ds
}

// EntryID returns the identifier generated datasets use for position i.
func EntryID(i int) string {
	return fmt.Sprintf("e%d", i)
}

// ExactTopN ranks every entry except the query with a plain stable sort.
// It panics on scoring errors and serves as ground truth in tests.
func ExactTopN(ds model.Dataset, queryID string, n int, m distance.Metric) []model.Match {
	var query []float32
	for _, e := range ds {
		if e.ID == queryID {
			query = e.Vector
			break
		}
	}

	var results []model.Match
	for _, e := range ds {
		if e.ID == queryID {
			continue
		}
		s, err := m.Score(e.Vector, query)
		if err != nil {
			panic(err)
		}
		results = append(results, model.Match{ID: e.ID, Score: s})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return m.Direction().Less(results[i].Score, results[j].Score)
	})

	if n < len(results) {
		results = results[:n]
	}
	return results
}
