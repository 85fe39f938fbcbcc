package ops

import (
	"github.com/nabla-ml/nabla/internal/autodiff"
	"github.com/nabla-ml/nabla/internal/tensor"
)

// matMulOp is matrix multiplication for 2-D operands: output = a @ b.
//
// Backward:
//   - d(A@B)/dA = grad @ Bᵀ
//   - d(A@B)/dB = Aᵀ @ grad
type matMulOp struct{}

func (matMulOp) Name() string { return "matmul" }

func (matMulOp) Forward(inputs ...*tensor.Tensor) (*tensor.Tensor, error) {
	return tensor.MatMul(inputs[0], inputs[1])
}

func (matMulOp) Backward(inputs []*tensor.Tensor, _, grad *tensor.Tensor) []*tensor.Tensor {
	a, b := inputs[0], inputs[1]

	bT, err := tensor.Transpose(b)
	if err != nil {
		panic("matmul: backward transpose failed: " + err.Error())
	}
	gradA, err := tensor.MatMul(grad, bT)
	if err != nil {
		panic("matmul: backward grad@bT failed: " + err.Error())
	}

	aT, err := tensor.Transpose(a)
	if err != nil {
		panic("matmul: backward transpose failed: " + err.Error())
	}
	gradB, err := tensor.MatMul(aT, grad)
	if err != nil {
		panic("matmul: backward aT@grad failed: " + err.Error())
	}

	return []*tensor.Tensor{gradA, gradB}
}

// MatMul applies matrix multiplication to two 2-D nodes.
func MatMul(a, b *autodiff.Node) (*autodiff.Node, error) {
	return autodiff.Apply(matMulOp{}, a, b)
}
