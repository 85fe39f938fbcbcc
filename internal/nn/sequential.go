package nn

import (
	"fmt"

	"github.com/nabla-ml/nabla/internal/autodiff"
)

// Sequential is a container module that chains modules together: each
// module's output becomes the next module's input.
//
//	model := nn.NewSequential(
//	    nn.NewLinear(784, 128, rng),
//	    nn.NewReLU(),
//	    nn.NewLinear(128, 10, rng),
//	)
type Sequential struct {
	modules []Module
}

// NewSequential creates a new Sequential container.
func NewSequential(modules ...Module) *Sequential {
	return &Sequential{modules: modules}
}

// Forward applies all modules in order.
func (s *Sequential) Forward(input *autodiff.Node) (*autodiff.Node, error) {
	output := input
	for i, module := range s.modules {
		var err error
		output, err = module.Forward(output)
		if err != nil {
			return nil, fmt.Errorf("module %d: %w", i, err)
		}
	}
	return output, nil
}

// Parameters returns all trainable parameters from all modules, in
// module order.
func (s *Sequential) Parameters() []*Parameter {
	var params []*Parameter
	for _, module := range s.modules {
		params = append(params, module.Parameters()...)
	}
	return params
}

// Add appends a module to the sequence.
func (s *Sequential) Add(module Module) {
	s.modules = append(s.modules, module)
}

// Len returns the number of modules in the sequence.
func (s *Sequential) Len() int {
	return len(s.modules)
}

// stateful is implemented by modules that can snapshot their parameters.
type stateful interface {
	StateDict() StateDict
	LoadStateDict(StateDict) error
}

// StateDict returns a snapshot of all stateful modules' parameters,
// keyed by module index ("0.weight", "0.bias", "2.weight", ...).
func (s *Sequential) StateDict() StateDict {
	sd := make(StateDict)
	for i, module := range s.modules {
		sm, ok := module.(stateful)
		if !ok {
			continue
		}
		for name, t := range sm.StateDict() {
			sd[fmt.Sprintf("%d.%s", i, name)] = t
		}
	}
	return sd
}

// LoadStateDict overwrites parameter values in place from a snapshot
// produced by StateDict.
func (s *Sequential) LoadStateDict(sd StateDict) error {
	for i, module := range s.modules {
		sm, ok := module.(stateful)
		if !ok {
			continue
		}
		prefix := fmt.Sprintf("%d.", i)
		moduleSD := make(StateDict)
		for key, t := range sd {
			if len(key) > len(prefix) && key[:len(prefix)] == prefix {
				moduleSD[key[len(prefix):]] = t
			}
		}
		if len(moduleSD) == 0 {
			continue
		}
		if err := sm.LoadStateDict(moduleSD); err != nil {
			return fmt.Errorf("failed to load module %d: %w", i, err)
		}
	}
	return nil
}
