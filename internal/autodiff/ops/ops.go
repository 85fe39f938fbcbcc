// Package ops implements the differentiable operations of the
// computation graph, one file per operation.
//
// Each operation provides the autodiff.Op pair of rules:
//   - Forward: validates operand shapes and computes the result
//   - Backward: computes gradient contributions for each input given
//     the upstream gradient (the chain rule, locally)
//
// Supported operations:
//   - Add, Mul: element-wise with broadcasting
//     (d(a+b)/da = 1; d(a*b)/da = b)
//   - MatMul: matrix multiplication
//     (d(A@B)/dA = grad@Bᵀ, d(A@B)/dB = Aᵀ@grad)
//   - ReLU: rectified linear unit (gradient 1 where input > 0, else 0)
//   - Sum, Mean: full reductions to a scalar
//   - LogSoftmax: numerically stable per-row log-softmax
//   - NLLLoss: negative log-likelihood over log-probabilities
//
// Backward rules always return freshly allocated tensors; they never
// alias an input or the upstream gradient, so accumulation into a
// parent never corrupts another Node.
package ops

import (
	"fmt"

	"github.com/nabla-ml/nabla/internal/tensor"
)

// mustSumTo reduces grad over broadcast axes to the given operand
// shape. Forward already validated broadcast compatibility, so a
// failure here is a programmer error.
func mustSumTo(op string, grad *tensor.Tensor, shape tensor.Shape) *tensor.Tensor {
	out, err := tensor.SumTo(grad, shape)
	if err != nil {
		panic(fmt.Sprintf("%s: backward broadcast reduction failed: %v", op, err))
	}
	return out
}
