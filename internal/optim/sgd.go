package optim

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/nabla-ml/nabla/internal/nn"
)

// SGD implements stochastic gradient descent with optional momentum.
//
// Update rule without momentum:
//
//	param = param - lr * gradient
//
// Update rule with momentum:
//
//	velocity = momentum * velocity + gradient
//	param = param - lr * velocity
//
// A zero learning rate is legal: updates become no-ops while gradients
// are still computed and inspectable.
type SGD struct {
	params     []*nn.Parameter
	lr         float64
	momentum   float64
	velocities map[*nn.Parameter][]float64
}

// SGDConfig holds configuration for the SGD optimizer.
type SGDConfig struct {
	LR       float64 // Learning rate; zero is a valid no-op rate
	Momentum float64 // Momentum factor, range [0, 1); 0 disables momentum
}

// NewSGD creates a new SGD optimizer over the given parameters.
func NewSGD(params []*nn.Parameter, config SGDConfig) *SGD {
	return &SGD{
		params:     params,
		lr:         config.LR,
		momentum:   config.Momentum,
		velocities: make(map[*nn.Parameter][]float64),
	}
}

// Step applies the gradient update to every parameter in place,
// preserving each parameter's node identity. Parameters without a
// stored gradient (not part of the last graph) are skipped.
func (s *SGD) Step() error {
	for _, param := range s.params {
		grad := param.Grad()
		if grad == nil {
			continue
		}

		value := param.Value()
		if !value.Shape().Equal(grad.Shape()) {
			return fmt.Errorf("sgd: gradient shape %v does not match parameter %q shape %v",
				[]int(grad.Shape()), param.Name(), []int(value.Shape()))
		}

		if s.momentum == 0 {
			// param -= lr * grad
			floats.AddScaled(value.Data(), -s.lr, grad.Data())
			continue
		}

		velocity, ok := s.velocities[param]
		if !ok {
			velocity = make([]float64, value.NumElements())
			s.velocities[param] = velocity
		}

		// velocity = momentum * velocity + grad
		floats.Scale(s.momentum, velocity)
		floats.Add(velocity, grad.Data())

		// param -= lr * velocity
		floats.AddScaled(value.Data(), -s.lr, velocity)
	}
	return nil
}

// ZeroGrad resets the gradient accumulators of all parameters.
func (s *SGD) ZeroGrad() {
	for _, param := range s.params {
		param.ZeroGrad()
	}
}

// LR returns the current learning rate.
func (s *SGD) LR() float64 {
	return s.lr
}

// SetLR updates the learning rate. Useful for scheduling.
func (s *SGD) SetLR(lr float64) {
	s.lr = lr
}
