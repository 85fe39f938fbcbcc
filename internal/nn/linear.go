package nn

import (
	"fmt"
	"math/rand"

	"github.com/nabla-ml/nabla/internal/autodiff"
	"github.com/nabla-ml/nabla/internal/autodiff/ops"
	"github.com/nabla-ml/nabla/internal/tensor"
)

// Linear implements a fully connected (dense) layer.
//
// Performs the transformation: y = x @ W + b
// where:
//   - x is the input with shape [batch, in_features]
//   - W is the weight matrix with shape [in_features, out_features]
//   - b is the bias vector with shape [out_features], broadcast over
//     the batch dimension
//
// Weights use Xavier/Glorot initialization from the caller's seeded
// random source; biases start at zero.
type Linear struct {
	inFeatures  int
	outFeatures int
	weight      *Parameter // [in_features, out_features]
	bias        *Parameter // [out_features]
}

// NewLinear creates a new Linear layer. The random source drives weight
// initialization and is owned by the caller so runs are reproducible.
func NewLinear(inFeatures, outFeatures int, rng *rand.Rand) *Linear {
	weight := Xavier(inFeatures, outFeatures, tensor.Shape{inFeatures, outFeatures}, rng)
	bias := tensor.Zeros(tensor.Shape{outFeatures})

	return &Linear{
		inFeatures:  inFeatures,
		outFeatures: outFeatures,
		weight:      NewParameter("weight", weight),
		bias:        NewParameter("bias", bias),
	}
}

// Forward computes y = x @ W + b for input shape [batch, in_features].
func (l *Linear) Forward(input *autodiff.Node) (*autodiff.Node, error) {
	out, err := ops.MatMul(input, l.weight.Node())
	if err != nil {
		return nil, err
	}
	return ops.Add(out, l.bias.Node())
}

// Parameters returns [weight, bias].
func (l *Linear) Parameters() []*Parameter {
	return []*Parameter{l.weight, l.bias}
}

// Weight returns the weight parameter.
func (l *Linear) Weight() *Parameter {
	return l.weight
}

// Bias returns the bias parameter.
func (l *Linear) Bias() *Parameter {
	return l.bias
}

// InFeatures returns the number of input features.
func (l *Linear) InFeatures() int {
	return l.inFeatures
}

// OutFeatures returns the number of output features.
func (l *Linear) OutFeatures() int {
	return l.outFeatures
}

// StateDict returns a snapshot of the layer's parameter values.
func (l *Linear) StateDict() StateDict {
	return StateDict{
		"weight": l.weight.Value().Clone(),
		"bias":   l.bias.Value().Clone(),
	}
}

// LoadStateDict overwrites the layer's parameter values in place.
func (l *Linear) LoadStateDict(sd StateDict) error {
	for _, p := range []*Parameter{l.weight, l.bias} {
		t, ok := sd[p.Name()]
		if !ok {
			return fmt.Errorf("missing %s in state dict", p.Name())
		}
		if err := p.Value().CopyFrom(t); err != nil {
			return fmt.Errorf("loading %s: %w", p.Name(), err)
		}
	}
	return nil
}
