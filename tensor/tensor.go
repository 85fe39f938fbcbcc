// Copyright 2025 Nabla ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"math/rand"

	"github.com/nabla-ml/nabla/internal/tensor"
)

// Type aliases for public API

// Tensor is a dense float64 array with an explicit shape.
type Tensor = tensor.Tensor

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3} represents a 2-D tensor with dimensions 2×3.
type Shape = tensor.Shape

// ShapeError reports a shape mismatch detected at construction time.
type ShapeError = tensor.ShapeError

// Creation functions

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	x := tensor.Zeros(tensor.Shape{2, 3})
func Zeros(shape Shape) *Tensor {
	return tensor.Zeros(shape)
}

// Ones creates a tensor filled with ones.
func Ones(shape Shape) *Tensor {
	return tensor.Ones(shape)
}

// Full creates a tensor filled with a specific value.
//
// Example:
//
//	x := tensor.Full(tensor.Shape{2, 3}, 3.14)
func Full(shape Shape, value float64) *Tensor {
	return tensor.Full(shape, value)
}

// Scalar creates a zero-dimensional tensor holding a single value.
func Scalar(value float64) *Tensor {
	return tensor.Scalar(value)
}

// Randn creates a tensor filled with random values from the standard
// normal distribution N(0, 1), drawn from the given source.
//
// Example:
//
//	rng := rand.New(rand.NewSource(42))
//	x := tensor.Randn(tensor.Shape{2, 3}, rng)
func Randn(shape Shape, rng *rand.Rand) *Tensor {
	return tensor.Randn(shape, rng)
}

// FromSlice creates a tensor from a Go slice. The slice length must
// equal the number of elements the shape implies.
//
// Example:
//
//	data := []float64{1, 2, 3, 4, 5, 6}
//	x, err := tensor.FromSlice(data, tensor.Shape{2, 3})
func FromSlice(data []float64, shape Shape) (*Tensor, error) {
	return tensor.FromSlice(data, shape)
}

// Operations

// Add returns the element-wise sum of a and b with broadcasting.
func Add(a, b *Tensor) (*Tensor, error) {
	return tensor.Add(a, b)
}

// Mul returns the element-wise product of a and b with broadcasting.
func Mul(a, b *Tensor) (*Tensor, error) {
	return tensor.Mul(a, b)
}

// MatMul returns the matrix product of two 2-D tensors.
func MatMul(a, b *Tensor) (*Tensor, error) {
	return tensor.MatMul(a, b)
}

// Utility functions

// BroadcastShapes computes the broadcast shape of two shapes following
// NumPy broadcasting rules.
//
// Example:
//
//	result, err := tensor.BroadcastShapes(tensor.Shape{3, 1}, tensor.Shape{3, 4})
//	// result = [3, 4]
func BroadcastShapes(a, b Shape) (Shape, error) {
	return tensor.BroadcastShapes(a, b)
}
