package nn

import (
	"github.com/nabla-ml/nabla/internal/autodiff"
	"github.com/nabla-ml/nabla/internal/tensor"
)

// Parameter is a trainable value owned by a module: a tracked leaf node
// whose tensor is overwritten in place by the optimizer after each
// update step while the node keeps its identity across steps.
type Parameter struct {
	name string
	node *autodiff.Node
}

// NewParameter creates a trainable parameter from an initialized tensor.
func NewParameter(name string, t *tensor.Tensor) *Parameter {
	return &Parameter{
		name: name,
		node: autodiff.Variable(t, true),
	}
}

// Name returns the parameter name (e.g. "weight", "bias").
func (p *Parameter) Name() string {
	return p.name
}

// Node returns the parameter's graph node, used to feed forward passes.
func (p *Parameter) Node() *autodiff.Node {
	return p.node
}

// Value returns the parameter tensor.
func (p *Parameter) Value() *tensor.Tensor {
	return p.node.Value()
}

// Grad returns the accumulated gradient, or nil if none has been
// stored since creation or the last ZeroGrad.
func (p *Parameter) Grad() *tensor.Tensor {
	return p.node.Grad()
}

// ZeroGrad resets the gradient accumulator to zero. Must be called
// before each backward pass that reuses the parameter, because
// accumulators are cumulative across passes.
func (p *Parameter) ZeroGrad() {
	autodiff.ZeroGrad(p.node)
}
