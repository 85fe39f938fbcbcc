package ops

import (
	"fmt"

	"github.com/nabla-ml/nabla/internal/autodiff"
	"github.com/nabla-ml/nabla/internal/tensor"
)

// nllOp is the negative log-likelihood loss over log-probabilities:
//
//	loss = -mean(logp[i, targets[i]])
//
// Targets are integer class indices and are not differentiable, so the
// op carries them as state rather than taking them as a graph input
// (only the log-probabilities appear in the parent list).
//
// Backward: ∂loss/∂logp[i, targets[i]] = -grad / batch, zero elsewhere.
type nllOp struct {
	targets []int
}

func (nllOp) Name() string { return "nll" }

func (op nllOp) Forward(inputs ...*tensor.Tensor) (*tensor.Tensor, error) {
	logp := inputs[0]
	shape := logp.Shape()
	if len(shape) != 2 {
		return nil, &tensor.ShapeError{
			Op:     "nll",
			Shapes: []tensor.Shape{shape},
			Reason: "log-probabilities must be 2-D [batch, classes]",
		}
	}

	batch, classes := shape[0], shape[1]
	if len(op.targets) != batch {
		return nil, &tensor.ShapeError{
			Op:     "nll",
			Shapes: []tensor.Shape{shape},
			Reason: fmt.Sprintf("got %d targets for batch of %d", len(op.targets), batch),
		}
	}

	data := logp.Data()
	total := 0.0
	for i, t := range op.targets {
		if t < 0 || t >= classes {
			return nil, &tensor.ShapeError{
				Op:     "nll",
				Shapes: []tensor.Shape{shape},
				Reason: fmt.Sprintf("target %d out of range [0, %d) at row %d", t, classes, i),
			}
		}
		total -= data[i*classes+t]
	}
	return tensor.Scalar(total / float64(batch)), nil
}

func (op nllOp) Backward(inputs []*tensor.Tensor, _, grad *tensor.Tensor) []*tensor.Tensor {
	logp := inputs[0]
	shape := logp.Shape()
	batch, classes := shape[0], shape[1]

	gradLogp := tensor.New(shape)
	data := gradLogp.Data()
	scale := -grad.Item() / float64(batch)
	for i, t := range op.targets {
		data[i*classes+t] = scale
	}
	return []*tensor.Tensor{gradLogp}
}

// NLLLoss computes the mean negative log-likelihood of the given
// integer class targets under 2-D log-probabilities [batch, classes].
func NLLLoss(logp *autodiff.Node, targets []int) (*autodiff.Node, error) {
	op := nllOp{targets: append([]int(nil), targets...)}
	return autodiff.Apply(op, logp)
}
