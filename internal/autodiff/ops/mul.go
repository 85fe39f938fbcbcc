package ops

import (
	"github.com/nabla-ml/nabla/internal/autodiff"
	"github.com/nabla-ml/nabla/internal/tensor"
)

// mulOp is element-wise multiplication with broadcasting: output = a * b.
//
// Backward: d(a*b)/da = b and d(a*b)/db = a, each scaled by the
// upstream gradient and summed over any broadcast axes.
type mulOp struct{}

func (mulOp) Name() string { return "mul" }

func (mulOp) Forward(inputs ...*tensor.Tensor) (*tensor.Tensor, error) {
	return tensor.Mul(inputs[0], inputs[1])
}

func (mulOp) Backward(inputs []*tensor.Tensor, _, grad *tensor.Tensor) []*tensor.Tensor {
	a, b := inputs[0], inputs[1]

	gradA, err := tensor.Mul(grad, b)
	if err != nil {
		panic("mul: backward grad*b failed: " + err.Error())
	}
	gradB, err := tensor.Mul(grad, a)
	if err != nil {
		panic("mul: backward grad*a failed: " + err.Error())
	}

	return []*tensor.Tensor{
		mustSumTo("mul", gradA, a.Shape()),
		mustSumTo("mul", gradB, b.Shape()),
	}
}

// Mul applies element-wise multiplication to two nodes.
func Mul(a, b *autodiff.Node) (*autodiff.Node, error) {
	return autodiff.Apply(mulOp{}, a, b)
}
