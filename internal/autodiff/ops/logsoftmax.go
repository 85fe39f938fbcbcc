package ops

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/nabla-ml/nabla/internal/autodiff"
	"github.com/nabla-ml/nabla/internal/tensor"
)

// logSoftmaxOp computes the log of the normalized exponential per row
// of a 2-D tensor [batch, classes]:
//
//	logsoftmax(x)_i = x_i - (max(x) + log Σ_j exp(x_j - max(x)))
//
// The max-shift is the log-sum-exp trick; it avoids overflow in exp and
// precision loss near probability 0/1.
//
// Backward: with y = logsoftmax(x) and p = exp(y) (the softmax),
//
//	∂L/∂x_j = grad_j - p_j · Σ_i grad_i   (per row)
type logSoftmaxOp struct{}

func (logSoftmaxOp) Name() string { return "logsoftmax" }

func (logSoftmaxOp) Forward(inputs ...*tensor.Tensor) (*tensor.Tensor, error) {
	x := inputs[0]
	shape := x.Shape()
	if len(shape) != 2 {
		return nil, &tensor.ShapeError{
			Op:     "logsoftmax",
			Shapes: []tensor.Shape{shape},
			Reason: "operand must be 2-D [batch, classes]",
		}
	}

	rows, cols := shape[0], shape[1]
	out := tensor.New(shape)
	xData, outData := x.Data(), out.Data()

	for r := 0; r < rows; r++ {
		row := xData[r*cols : (r+1)*cols]
		maxVal := floats.Max(row)

		sumExp := 0.0
		for _, v := range row {
			sumExp += math.Exp(v - maxVal)
		}
		logSumExp := maxVal + math.Log(sumExp)

		for c, v := range row {
			outData[r*cols+c] = v - logSumExp
		}
	}
	return out, nil
}

func (logSoftmaxOp) Backward(inputs []*tensor.Tensor, output, grad *tensor.Tensor) []*tensor.Tensor {
	shape := inputs[0].Shape()
	rows, cols := shape[0], shape[1]

	gradX := tensor.New(shape)
	gradData, outData, upstream := gradX.Data(), output.Data(), grad.Data()

	for r := 0; r < rows; r++ {
		rowGrad := upstream[r*cols : (r+1)*cols]
		rowSum := floats.Sum(rowGrad)
		for c := 0; c < cols; c++ {
			// p = exp(logsoftmax) is the softmax probability.
			p := math.Exp(outData[r*cols+c])
			gradData[r*cols+c] = rowGrad[c] - p*rowSum
		}
	}
	return []*tensor.Tensor{gradX}
}

// LogSoftmax applies a numerically stable log-softmax to each row of a
// 2-D node.
func LogSoftmax(x *autodiff.Node) (*autodiff.Node, error) {
	return autodiff.Apply(logSoftmaxOp{}, x)
}
