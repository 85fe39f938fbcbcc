// Package optim implements optimization algorithms that apply gradient
// updates to model parameters.
//
// Example usage:
//
//	optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.01})
//
//	for batch := range batches {
//	    optimizer.ZeroGrad()
//	    loss := forwardAndLoss(model, batch)
//	    autodiff.Backward(loss)
//	    optimizer.Step()
//	}
package optim

// Optimizer is the base interface for all optimization algorithms.
type Optimizer interface {
	// Step applies the gradient update to all parameters in place.
	// Parameters with no stored gradient are skipped. The update for
	// all parameters of a step is one logical unit: no reader observes
	// a parameter mid-update.
	Step() error

	// ZeroGrad resets all parameter gradient accumulators. Must be
	// called before each backward pass to prevent accumulation from
	// previous steps.
	ZeroGrad()

	// LR returns the current learning rate.
	LR() float64
}
