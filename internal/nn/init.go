package nn

import (
	"math"
	"math/rand"

	"github.com/nabla-ml/nabla/internal/tensor"
)

// Xavier (Glorot) initialization for weights.
//
// Values are drawn from the uniform distribution
// U(-sqrt(6/(fan_in + fan_out)), sqrt(6/(fan_in + fan_out))), which
// maintains activation variance across layers.
//
// Randomness is caller-owned: the same seeded source produces the same
// weights on every run.
func Xavier(fanIn, fanOut int, shape tensor.Shape, rng *rand.Rand) *tensor.Tensor {
	bound := math.Sqrt(6.0 / float64(fanIn+fanOut))

	t := tensor.New(shape)
	data := t.Data()
	for i := range data {
		data[i] = (rng.Float64()*2.0 - 1.0) * bound
	}
	return t
}

// Zeros creates a zero-filled tensor. Commonly used for biases.
func Zeros(shape tensor.Shape) *tensor.Tensor {
	return tensor.Zeros(shape)
}

// Ones creates a tensor filled with ones.
func Ones(shape tensor.Shape) *tensor.Tensor {
	return tensor.Ones(shape)
}

// Randn creates a tensor with values drawn from N(0, 1) using the
// caller's random source.
func Randn(shape tensor.Shape, rng *rand.Rand) *tensor.Tensor {
	return tensor.Randn(shape, rng)
}
