// Package tensor implements the dense numeric value type carried by
// computation-graph nodes.
//
// Tensors are float64 n-dimensional arrays in row-major layout with
// NumPy-style broadcasting. The package owns all numeric kernels
// (element-wise arithmetic, matrix multiplication, reductions); heavy
// lifting is delegated to gonum.
package tensor

import (
	"fmt"
	"math/rand"
)

// Tensor is a dense float64 array with a shape.
//
// A Tensor with an empty shape holds a single scalar value. Data is
// stored row-major; views and strides are not supported — every
// operation allocates a fresh result.
type Tensor struct {
	data  []float64
	shape Shape
}

// New creates a zero-filled tensor with the given shape.
func New(shape Shape) *Tensor {
	return &Tensor{
		data:  make([]float64, shape.NumElements()),
		shape: shape.Clone(),
	}
}

// FromSlice creates a tensor backed by a copy of the given data.
// Returns an error if the data length does not match the shape.
func FromSlice(data []float64, shape Shape) (*Tensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	if len(data) != shape.NumElements() {
		return nil, fmt.Errorf("data length %d does not match shape %v (%d elements)",
			len(data), []int(shape), shape.NumElements())
	}
	t := New(shape)
	copy(t.data, data)
	return t, nil
}

// Scalar creates a 0-dimensional tensor holding a single value.
func Scalar(v float64) *Tensor {
	return &Tensor{data: []float64{v}, shape: Shape{}}
}

// Zeros creates a zero-filled tensor.
func Zeros(shape Shape) *Tensor {
	return New(shape)
}

// Ones creates a tensor filled with ones.
func Ones(shape Shape) *Tensor {
	return Full(shape, 1)
}

// Full creates a tensor filled with the given value.
func Full(shape Shape, v float64) *Tensor {
	t := New(shape)
	for i := range t.data {
		t.data[i] = v
	}
	return t
}

// Randn creates a tensor with values drawn from N(0, 1) using the
// caller's random source. Randomness is always caller-owned so that
// repeated runs with the same seed are reproducible.
func Randn(shape Shape, rng *rand.Rand) *Tensor {
	t := New(shape)
	for i := range t.data {
		t.data[i] = rng.NormFloat64()
	}
	return t
}

// Shape returns the tensor's shape.
func (t *Tensor) Shape() Shape {
	return t.shape
}

// Data returns the underlying row-major data slice.
// Mutating it mutates the tensor.
func (t *Tensor) Data() []float64 {
	return t.data
}

// NumElements returns the total element count.
func (t *Tensor) NumElements() int {
	return len(t.data)
}

// IsScalar reports whether the tensor holds a single value.
func (t *Tensor) IsScalar() bool {
	return t.shape.IsScalar()
}

// Item returns the value of a scalar tensor.
// Panics if the tensor holds more than one element.
func (t *Tensor) Item() float64 {
	if len(t.data) != 1 {
		panic(fmt.Sprintf("tensor.Item: tensor of shape %v is not a scalar", []int(t.shape)))
	}
	return t.data[0]
}

// At returns the element at the given indices.
// Panics if the number of indices does not match the rank or an index
// is out of range.
func (t *Tensor) At(indices ...int) float64 {
	return t.data[t.offset(indices)]
}

// Set assigns the element at the given indices.
func (t *Tensor) Set(v float64, indices ...int) {
	t.data[t.offset(indices)] = v
}

func (t *Tensor) offset(indices []int) int {
	if len(indices) != len(t.shape) {
		panic(fmt.Sprintf("tensor: got %d indices for shape %v", len(indices), []int(t.shape)))
	}
	strides := t.shape.ComputeStrides()
	off := 0
	for i, idx := range indices {
		if idx < 0 || idx >= t.shape[i] {
			panic(fmt.Sprintf("tensor: index %d out of range for dimension %d (size %d)",
				idx, i, t.shape[i]))
		}
		off += idx * strides[i]
	}
	return off
}

// Clone returns a deep copy of the tensor.
func (t *Tensor) Clone() *Tensor {
	c := New(t.shape)
	copy(c.data, t.data)
	return c
}

// Fill overwrites every element with the given value.
func (t *Tensor) Fill(v float64) {
	for i := range t.data {
		t.data[i] = v
	}
}

// Zero overwrites every element with the additive identity.
func (t *Tensor) Zero() {
	t.Fill(0)
}

// CopyFrom overwrites the tensor's values in place with those of src,
// keeping the tensor's identity. Returns a *ShapeError if the shapes
// differ.
func (t *Tensor) CopyFrom(src *Tensor) error {
	if !t.shape.Equal(src.shape) {
		return &ShapeError{Op: "copy", Shapes: []Shape{t.shape, src.shape}}
	}
	copy(t.data, src.data)
	return nil
}

// String renders the shape and flat data, for debugging.
func (t *Tensor) String() string {
	return fmt.Sprintf("Tensor(shape=%v, data=%v)", []int(t.shape), t.data)
}
