// Package nn implements the model abstraction on top of the autodiff
// engine: composable modules, trainable parameters, layers, loss
// functions and initialization.
//
// A model is an ordered composition of modules mapping an input node to
// an output node. Modules are stateless with respect to any single
// forward call except through their Parameters, which are created once
// at construction and persist across training steps.
package nn

import (
	"github.com/nabla-ml/nabla/internal/autodiff"
	"github.com/nabla-ml/nabla/internal/tensor"
)

// Module is the base interface for all neural network components.
//
// Modules can be composed to build models:
//
//	model := nn.NewSequential(
//	    nn.NewLinear(784, 128, rng),
//	    nn.NewReLU(),
//	    nn.NewLinear(128, 10, rng),
//	    nn.NewLogSoftmax(),
//	)
type Module interface {
	// Forward computes the module's output node for the given input
	// node. Shape incompatibilities surface as *tensor.ShapeError.
	Forward(input *autodiff.Node) (*autodiff.Node, error)

	// Parameters returns all trainable parameters of this module,
	// including nested module parameters. Modules without trainable
	// state (activations) return nil.
	Parameters() []*Parameter
}

// StateDict is an in-memory snapshot of a module's parameter values,
// keyed by parameter name.
type StateDict map[string]*tensor.Tensor
