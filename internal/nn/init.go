package nn

import (
	"math/rand"

	"github.com/ember-ml/ember/internal/autodiff"
)

// rng drives weight initialization. It starts from a random seed;
// Seed makes runs reproducible.
//
//nolint:gosec // Using math/rand for weight initialization (not security-critical)
var rng = rand.New(rand.NewSource(rand.Int63()))

// Seed reseeds weight initialization so that subsequently constructed
// modules get deterministic parameters.
func Seed(seed int64) {
	rng = rand.New(rand.NewSource(seed))
}

// Uniform returns a fresh leaf parameter drawn uniformly from [-1, 1),
// the initialization used for both weights and biases.
func Uniform() *autodiff.Value {
	return autodiff.New(rng.Float64()*2 - 1)
}
