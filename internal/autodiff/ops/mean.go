package ops

import (
	"github.com/nabla-ml/nabla/internal/autodiff"
	"github.com/nabla-ml/nabla/internal/tensor"
)

// meanOp reduces all elements to their scalar mean.
//
// Backward: each element contributed with weight 1/n, so the upstream
// gradient broadcasts as grad/n.
type meanOp struct{}

func (meanOp) Name() string { return "mean" }

func (meanOp) Forward(inputs ...*tensor.Tensor) (*tensor.Tensor, error) {
	x := inputs[0]
	return tensor.Scalar(tensor.Sum(x) / float64(x.NumElements())), nil
}

func (meanOp) Backward(inputs []*tensor.Tensor, _, grad *tensor.Tensor) []*tensor.Tensor {
	x := inputs[0]
	return []*tensor.Tensor{tensor.Full(x.Shape(), grad.Item()/float64(x.NumElements()))}
}

// Mean reduces a node to the scalar mean of its elements.
func Mean(x *autodiff.Node) (*autodiff.Node, error) {
	return autodiff.Apply(meanOp{}, x)
}
