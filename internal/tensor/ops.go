package tensor

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Add computes the element-wise sum a + b with broadcasting.
// Returns a *ShapeError if the shapes are not broadcast-compatible.
func Add(a, b *Tensor) (*Tensor, error) {
	// Fast path: identical shapes, no index arithmetic needed.
	if a.shape.Equal(b.shape) {
		out := a.Clone()
		floats.Add(out.data, b.data)
		return out, nil
	}
	return broadcastBinary("add", a, b, func(x, y float64) float64 { return x + y })
}

// Mul computes the element-wise product a * b with broadcasting.
// Returns a *ShapeError if the shapes are not broadcast-compatible.
func Mul(a, b *Tensor) (*Tensor, error) {
	if a.shape.Equal(b.shape) {
		out := a.Clone()
		floats.Mul(out.data, b.data)
		return out, nil
	}
	return broadcastBinary("mul", a, b, func(x, y float64) float64 { return x * y })
}

// broadcastBinary applies fn element-wise over the broadcast of a and b.
func broadcastBinary(op string, a, b *Tensor, fn func(x, y float64) float64) (*Tensor, error) {
	outShape, err := BroadcastShapes(a.shape, b.shape)
	if err != nil {
		return nil, &ShapeError{Op: op, Shapes: []Shape{a.shape, b.shape}, Reason: err.Error()}
	}

	out := New(outShape)
	outStrides := outShape.ComputeStrides()
	aIdx := broadcastIndexer(a.shape, outShape)
	bIdx := broadcastIndexer(b.shape, outShape)

	coords := make([]int, len(outShape))
	for i := range out.data {
		rem := i
		for d := range coords {
			coords[d] = rem / outStrides[d]
			rem %= outStrides[d]
		}
		out.data[i] = fn(a.data[aIdx(coords)], b.data[bIdx(coords)])
	}
	return out, nil
}

// broadcastIndexer maps output coordinates back to a flat index into a
// tensor of the given (broadcast-source) shape. Dimensions of size 1
// and missing leading dimensions are pinned to coordinate 0.
func broadcastIndexer(src, out Shape) func(coords []int) int {
	strides := src.ComputeStrides()
	lead := len(out) - len(src)
	return func(coords []int) int {
		off := 0
		for d, stride := range strides {
			if src[d] == 1 {
				continue
			}
			off += coords[lead+d] * stride
		}
		return off
	}
}

// MatMul computes the matrix product a @ b for 2-D tensors.
// Returns a *ShapeError unless a is [m, k] and b is [k, n].
func MatMul(a, b *Tensor) (*Tensor, error) {
	if len(a.shape) != 2 || len(b.shape) != 2 {
		return nil, &ShapeError{Op: "matmul", Shapes: []Shape{a.shape, b.shape}, Reason: "operands must be 2-D"}
	}
	if a.shape[1] != b.shape[0] {
		return nil, &ShapeError{
			Op:     "matmul",
			Shapes: []Shape{a.shape, b.shape},
			Reason: fmt.Sprintf("inner dimensions differ: %d vs %d", a.shape[1], b.shape[0]),
		}
	}

	m, k, n := a.shape[0], a.shape[1], b.shape[1]
	out := New(Shape{m, n})

	am := mat.NewDense(m, k, a.data)
	bm := mat.NewDense(k, n, b.data)
	om := mat.NewDense(m, n, out.data)
	om.Mul(am, bm)

	return out, nil
}

// Transpose returns the transpose of a 2-D tensor.
func Transpose(t *Tensor) (*Tensor, error) {
	if len(t.shape) != 2 {
		return nil, &ShapeError{Op: "transpose", Shapes: []Shape{t.shape}, Reason: "operand must be 2-D"}
	}

	r, c := t.shape[0], t.shape[1]
	out := New(Shape{c, r})
	mat.NewDense(c, r, out.data).Copy(mat.NewDense(r, c, t.data).T())
	return out, nil
}

// Scale returns t scaled by k.
func Scale(t *Tensor, k float64) *Tensor {
	out := t.Clone()
	floats.Scale(k, out.data)
	return out
}

// Sum returns the sum of all elements.
func Sum(t *Tensor) float64 {
	return floats.Sum(t.data)
}

// AddInPlace accumulates src into dst element-wise.
// Returns a *ShapeError if the shapes differ.
func AddInPlace(dst, src *Tensor) error {
	if !dst.shape.Equal(src.shape) {
		return &ShapeError{Op: "add (in place)", Shapes: []Shape{dst.shape, src.shape}}
	}
	floats.Add(dst.data, src.data)
	return nil
}

// AddScaledInPlace computes dst += alpha * src element-wise.
// Returns a *ShapeError if the shapes differ.
func AddScaledInPlace(dst *Tensor, alpha float64, src *Tensor) error {
	if !dst.shape.Equal(src.shape) {
		return &ShapeError{Op: "axpy", Shapes: []Shape{dst.shape, src.shape}}
	}
	floats.AddScaled(dst.data, alpha, src.data)
	return nil
}

// SumTo reduces t by summation to the target shape, undoing a
// broadcast. Used by backward rules: a gradient computed at the
// broadcast shape is summed over the broadcast axes to match the
// original operand.
//
// The target shape must be broadcast-compatible with t's shape.
func SumTo(t *Tensor, target Shape) (*Tensor, error) {
	if t.shape.Equal(target) {
		return t.Clone(), nil
	}

	// Scalar target: sum everything.
	if target.IsScalar() {
		return Scalar(floats.Sum(t.data)), nil
	}

	check, err := BroadcastShapes(target, t.shape)
	if err != nil || !check.Equal(t.shape) {
		return nil, &ShapeError{
			Op:     "sum-to",
			Shapes: []Shape{t.shape, target},
			Reason: "target is not a broadcast source of the operand",
		}
	}

	out := New(target)
	idx := broadcastIndexer(target, t.shape)
	strides := t.shape.ComputeStrides()
	coords := make([]int, len(t.shape))
	for i, v := range t.data {
		rem := i
		for d := range coords {
			coords[d] = rem / strides[d]
			rem %= strides[d]
		}
		out.data[idx(coords)] += v
	}
	return out, nil
}
