package ops

import (
	"github.com/nabla-ml/nabla/internal/autodiff"
	"github.com/nabla-ml/nabla/internal/tensor"
)

// sumOp reduces all elements to a scalar: output = Σ x.
//
// Backward: every element contributed with weight 1, so the scalar
// upstream gradient broadcasts to the input shape.
type sumOp struct{}

func (sumOp) Name() string { return "sum" }

func (sumOp) Forward(inputs ...*tensor.Tensor) (*tensor.Tensor, error) {
	return tensor.Scalar(tensor.Sum(inputs[0])), nil
}

func (sumOp) Backward(inputs []*tensor.Tensor, _, grad *tensor.Tensor) []*tensor.Tensor {
	return []*tensor.Tensor{tensor.Full(inputs[0].Shape(), grad.Item())}
}

// Sum reduces a node to the scalar sum of its elements.
func Sum(x *autodiff.Node) (*autodiff.Node, error) {
	return autodiff.Apply(sumOp{}, x)
}
