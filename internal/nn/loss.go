package nn

import (
	"github.com/nabla-ml/nabla/internal/autodiff"
	"github.com/nabla-ml/nabla/internal/autodiff/ops"
)

// Loss maps model output and integer class targets to a scalar loss
// node suitable for a backward pass.
type Loss interface {
	Forward(output *autodiff.Node, targets []int) (*autodiff.Node, error)
}

// NLLLoss is the mean negative log-likelihood over log-probabilities:
//
//	loss = -mean(logp[i, targets[i]])
//
// The model output must already be log-probabilities (e.g. a
// LogSoftmax head). A perfect prediction (correct-class log-probability
// at 0) yields a loss approaching 0; a maximally wrong one grows
// without bound.
type NLLLoss struct{}

// NewNLLLoss creates a new negative log-likelihood loss.
func NewNLLLoss() *NLLLoss {
	return &NLLLoss{}
}

// Forward computes the scalar loss node.
func (l *NLLLoss) Forward(output *autodiff.Node, targets []int) (*autodiff.Node, error) {
	return ops.NLLLoss(output, targets)
}

// CrossEntropyLoss composes LogSoftmax and NLLLoss for models that
// emit raw logits instead of log-probabilities.
type CrossEntropyLoss struct{}

// NewCrossEntropyLoss creates a new cross-entropy loss.
func NewCrossEntropyLoss() *CrossEntropyLoss {
	return &CrossEntropyLoss{}
}

// Forward computes mean(-logsoftmax(logits)[i, targets[i]]).
func (l *CrossEntropyLoss) Forward(output *autodiff.Node, targets []int) (*autodiff.Node, error) {
	logp, err := ops.LogSoftmax(output)
	if err != nil {
		return nil, err
	}
	return ops.NLLLoss(logp, targets)
}
