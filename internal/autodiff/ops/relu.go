package ops

import (
	"github.com/nabla-ml/nabla/internal/autodiff"
	"github.com/nabla-ml/nabla/internal/tensor"
)

// reluOp is the rectified linear unit: output = max(0, x).
//
// Backward: gradient is 1 where the input was positive, 0 elsewhere.
type reluOp struct{}

func (reluOp) Name() string { return "relu" }

func (reluOp) Forward(inputs ...*tensor.Tensor) (*tensor.Tensor, error) {
	x := inputs[0]
	out := tensor.New(x.Shape())
	outData, xData := out.Data(), x.Data()
	for i, v := range xData {
		if v > 0 {
			outData[i] = v
		}
	}
	return out, nil
}

func (reluOp) Backward(inputs []*tensor.Tensor, _, grad *tensor.Tensor) []*tensor.Tensor {
	x := inputs[0]
	gradX := tensor.New(x.Shape())
	gradData, xData, upstream := gradX.Data(), x.Data(), grad.Data()
	for i, v := range xData {
		if v > 0 {
			gradData[i] = upstream[i]
		}
	}
	return []*tensor.Tensor{gradX}
}

// ReLU applies the rectified linear unit element-wise.
func ReLU(x *autodiff.Node) (*autodiff.Node, error) {
	return autodiff.Apply(reluOp{}, x)
}
