package ops

import (
	"github.com/nabla-ml/nabla/internal/autodiff"
	"github.com/nabla-ml/nabla/internal/tensor"
)

// addOp is element-wise addition with broadcasting: output = a + b.
//
// Backward: d(a+b)/da = d(a+b)/db = 1, so the upstream gradient flows
// to both inputs, summed over any broadcast axes.
type addOp struct{}

func (addOp) Name() string { return "add" }

func (addOp) Forward(inputs ...*tensor.Tensor) (*tensor.Tensor, error) {
	return tensor.Add(inputs[0], inputs[1])
}

func (addOp) Backward(inputs []*tensor.Tensor, _, grad *tensor.Tensor) []*tensor.Tensor {
	return []*tensor.Tensor{
		mustSumTo("add", grad, inputs[0].Shape()),
		mustSumTo("add", grad, inputs[1].Shape()),
	}
}

// Add applies element-wise addition to two nodes.
func Add(a, b *autodiff.Node) (*autodiff.Node, error) {
	return autodiff.Apply(addOp{}, a, b)
}
