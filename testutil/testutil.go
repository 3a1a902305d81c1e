package testutil

import (
	"math/rand"
	"sync"

	"github.com/hupe1980/deltae/model"
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

// Lab returns a random Lab triplet with L in [0, 100) and a, b in [-128, 128).
func (r *RNG) Lab() model.Triplet {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.labLocked()
}

func (r *RNG) labLocked() model.Triplet {
	return model.Triplet{
		r.rand.Float64() * 100,
		r.rand.Float64()*256 - 128,
		r.rand.Float64()*256 - 128,
	}
}

// RGB returns a random triplet with every component in [0, 1).
func (r *RNG) RGB() model.Triplet {
	r.mu.Lock()
	defer r.mu.Unlock()
	return model.Triplet{r.rand.Float64(), r.rand.Float64(), r.rand.Float64()}
}

// LabBatch generates a rows x cols batch of random Lab triplets.
func (r *RNG) LabBatch(rows, cols int) model.Batch {
	r.mu.Lock()
	defer r.mu.Unlock()

	b := model.NewBatch(rows, cols)
	for i := range b.Data {
		b.Data[i] = r.labLocked()
	}
	return b
}

// Perturb returns a copy of b with Gaussian noise of the given standard
// deviation added to every component.
func (r *RNG) Perturb(b model.Batch, sigma float64) model.Batch {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := b.Clone()
	for i := range out.Data {
		for k := range out.Data[i] {
			out.Data[i][k] += r.rand.NormFloat64() * sigma
		}
	}
	return out
}

// NeutralBatch generates a rows x cols batch of zero-chroma triplets
// (a = b = 0) with random lightness.
func (r *RNG) NeutralBatch(rows, cols int) model.Batch {
	r.mu.Lock()
	defer r.mu.Unlock()

	b := model.NewBatch(rows, cols)
	for i := range b.Data {
		b.Data[i] = model.Triplet{r.rand.Float64() * 100, 0, 0}
	}
	return b
}
