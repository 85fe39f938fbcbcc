package autodiff_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/diff/fd"

	"github.com/nabla-ml/nabla/internal/autodiff"
	"github.com/nabla-ml/nabla/internal/autodiff/ops"
	"github.com/nabla-ml/nabla/internal/tensor"
)

// checkGradient compares every autodiff gradient element of one input
// against a central finite difference of the loss.
//
// loss rebuilds the graph from the raw parameter data and returns the
// scalar loss value, so perturbing one element re-evaluates the whole
// forward pass.
func checkGradient(t *testing.T, params []float64, grad *tensor.Tensor, loss func(params []float64) float64) {
	t.Helper()
	require.Equal(t, len(params), grad.NumElements(), "gradient size mismatch")

	for i := range params {
		numerical := fd.Derivative(func(v float64) float64 {
			perturbed := append([]float64(nil), params...)
			perturbed[i] = v
			return loss(perturbed)
		}, params[i], &fd.Settings{Formula: fd.Central})

		assert.InDelta(t, numerical, grad.Data()[i], 1e-6,
			"gradient mismatch at element %d", i)
	}
}

// TestGradientCheck_MatMulReLU tests d sum(relu(X@W + b)) against
// finite differences for both W and b.
func TestGradientCheck_MatMulReLU(t *testing.T) {
	xData := []float64{0.5, -1.2, 0.3, 2.0, 0.7, -0.4}
	wData := []float64{0.9, -0.5, 0.2, 1.1, -0.8, 0.6}
	bData := []float64{0.4, -0.3}

	forward := func(wd, bd []float64) float64 {
		x, err := tensor.FromSlice(xData, tensor.Shape{2, 3})
		require.NoError(t, err)
		w, err := tensor.FromSlice(wd, tensor.Shape{3, 2})
		require.NoError(t, err)
		b, err := tensor.FromSlice(bd, tensor.Shape{2})
		require.NoError(t, err)

		h, err := ops.MatMul(autodiff.Constant(x), autodiff.Constant(w))
		require.NoError(t, err)
		h, err = ops.Add(h, autodiff.Constant(b))
		require.NoError(t, err)
		h, err = ops.ReLU(h)
		require.NoError(t, err)
		out, err := ops.Sum(h)
		require.NoError(t, err)
		return out.Value().Item()
	}

	// Autodiff gradients.
	x, err := tensor.FromSlice(xData, tensor.Shape{2, 3})
	require.NoError(t, err)
	wt, err := tensor.FromSlice(wData, tensor.Shape{3, 2})
	require.NoError(t, err)
	bt, err := tensor.FromSlice(bData, tensor.Shape{2})
	require.NoError(t, err)

	w := autodiff.Variable(wt, true)
	b := autodiff.Variable(bt, true)

	h, err := ops.MatMul(autodiff.Constant(x), w)
	require.NoError(t, err)
	h, err = ops.Add(h, b)
	require.NoError(t, err)
	h, err = ops.ReLU(h)
	require.NoError(t, err)
	out, err := ops.Sum(h)
	require.NoError(t, err)

	require.NoError(t, autodiff.Backward(out))

	checkGradient(t, wData, w.Grad(), func(p []float64) float64 { return forward(p, bData) })
	checkGradient(t, bData, b.Grad(), func(p []float64) float64 { return forward(wData, p) })
}

// TestGradientCheck_LogSoftmaxNLL tests the classification loss path
// d nll(logsoftmax(X@W)) / dW against finite differences.
func TestGradientCheck_LogSoftmaxNLL(t *testing.T) {
	xData := []float64{0.2, -0.7, 1.5, 0.9, 0.1, -1.1}
	wData := []float64{0.3, -0.2, 0.8, 1.2, 0.5, -0.6, -0.9, 0.4, 0.7}
	targets := []int{2, 0}

	forward := func(wd []float64) float64 {
		x, err := tensor.FromSlice(xData, tensor.Shape{2, 3})
		require.NoError(t, err)
		w, err := tensor.FromSlice(wd, tensor.Shape{3, 3})
		require.NoError(t, err)

		scores, err := ops.MatMul(autodiff.Constant(x), autodiff.Constant(w))
		require.NoError(t, err)
		logp, err := ops.LogSoftmax(scores)
		require.NoError(t, err)
		loss, err := ops.NLLLoss(logp, targets)
		require.NoError(t, err)
		return loss.Value().Item()
	}

	x, err := tensor.FromSlice(xData, tensor.Shape{2, 3})
	require.NoError(t, err)
	wt, err := tensor.FromSlice(wData, tensor.Shape{3, 3})
	require.NoError(t, err)

	w := autodiff.Variable(wt, true)
	scores, err := ops.MatMul(autodiff.Constant(x), w)
	require.NoError(t, err)
	logp, err := ops.LogSoftmax(scores)
	require.NoError(t, err)
	loss, err := ops.NLLLoss(logp, targets)
	require.NoError(t, err)

	require.NoError(t, autodiff.Backward(loss))

	checkGradient(t, wData, w.Grad(), forward)
}

// TestGradientCheck_Mean tests d mean(x*x) / dx = 2x/n.
func TestGradientCheck_Mean(t *testing.T) {
	xData := []float64{1.5, -2.0, 0.5, 3.0}

	xt, err := tensor.FromSlice(xData, tensor.Shape{4})
	require.NoError(t, err)
	x := autodiff.Variable(xt, true)

	sq, err := ops.Mul(x, x)
	require.NoError(t, err)
	m, err := ops.Mean(sq)
	require.NoError(t, err)

	require.NoError(t, autodiff.Backward(m))

	for i, v := range xData {
		assert.InDelta(t, 2*v/4, x.Grad().Data()[i], 1e-12, "mean gradient at %d", i)
	}
}
