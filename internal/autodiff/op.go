package autodiff

import "github.com/nabla-ml/nabla/internal/tensor"

// Op is a differentiable operation. Implementations live in the ops
// subpackage, one file per operation.
//
// Forward validates operand shapes and computes the result; shape
// incompatibilities surface here as *tensor.ShapeError, never during
// the backward pass. Backward is the operation's local-gradient rule:
// given the recorded inputs, the forward output and the upstream
// gradient, it returns one gradient contribution per input. A nil
// contribution means no gradient flows to that input.
type Op interface {
	// Name identifies the operation in error messages.
	Name() string

	// Forward applies the operation to the input values.
	Forward(inputs ...*tensor.Tensor) (*tensor.Tensor, error)

	// Backward computes gradient contributions for each input given
	// the upstream gradient. The invariant from graph construction is
	// that inputs and the op tag are sufficient to compute every local
	// partial derivative; rules must not re-derive inputs from output.
	Backward(inputs []*tensor.Tensor, output, grad *tensor.Tensor) []*tensor.Tensor
}

// Apply constructs a new Node whose value is op applied to the inputs.
//
// The result records op and parent references iff at least one input
// requires gradients — tracking is decided purely by the explicit
// inputs, with no ambient toggle. Fails with *tensor.ShapeError if the
// operand shapes are incompatible with op's numeric contract.
func Apply(op Op, inputs ...*Node) (*Node, error) {
	values := make([]*tensor.Tensor, len(inputs))
	track := false
	for i, in := range inputs {
		values[i] = in.value
		track = track || in.requiresGrad
	}

	out, err := op.Forward(values...)
	if err != nil {
		return nil, err
	}

	n := &Node{value: out}
	if track {
		n.op = op
		n.parents = append([]*Node(nil), inputs...)
		n.requiresGrad = true
	}
	return n, nil
}
