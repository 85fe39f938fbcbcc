// Package train drives repeated forward/backward/update cycles of a
// model over batches of labeled examples.
//
// Execution is single-threaded and synchronous. Given the same initial
// parameter values, the same batch sequence and the same learning
// rate, repeated runs produce identical loss sequences: the loop has
// no hidden randomness, and all summation orders are fixed.
package train

import (
	"fmt"
	"iter"
	"math"

	"github.com/nabla-ml/nabla/internal/autodiff"
	"github.com/nabla-ml/nabla/internal/nn"
	"github.com/nabla-ml/nabla/internal/optim"
)

// Trainer iterates a model over batches, updating its parameters via
// the optimizer after each backward pass.
type Trainer struct {
	model nn.Module
	loss  nn.Loss
	opt   optim.Optimizer
}

// NewTrainer creates a trainer for the given model, loss and optimizer.
// The optimizer must have been constructed over the model's parameters.
func NewTrainer(model nn.Module, loss nn.Loss, opt optim.Optimizer) *Trainer {
	return &Trainer{model: model, loss: loss, opt: opt}
}

// EpochResult is one epoch's outcome in a Train sequence.
type EpochResult struct {
	Epoch   int     // zero-based epoch index
	AvgLoss float64 // mean loss over the epoch's completed steps
	Err     error   // non-nil if the epoch aborted; AvgLoss still covers completed steps
}

// TrainEpoch runs one pass over the given batches, in order: zero the
// parameter gradients, forward, loss, backward, then the in-place
// parameter update. Returns the mean loss across completed steps.
//
// A malformed batch aborts with *InvalidBatchError before any
// parameter is touched for that step. A non-finite loss or parameter
// gradient stops the epoch after the offending step's update has been
// applied and returns the partial mean together with a
// *NumericDivergenceError; continuing silently would corrupt every
// subsequent parameter value.
func (t *Trainer) TrainEpoch(batches iter.Seq[Batch]) (float64, error) {
	params := t.model.Parameters()

	steps := 0
	total := 0.0
	mean := func() float64 {
		if steps == 0 {
			return 0
		}
		return total / float64(steps)
	}

	for batch := range batches {
		if err := batch.Validate(); err != nil {
			return mean(), err
		}

		t.opt.ZeroGrad()

		input := autodiff.Constant(batch.Inputs)
		output, err := t.model.Forward(input)
		if err != nil {
			return mean(), fmt.Errorf("forward: %w", err)
		}

		loss, err := t.loss.Forward(output, batch.Targets)
		if err != nil {
			return mean(), fmt.Errorf("loss: %w", err)
		}

		if err := autodiff.Backward(loss); err != nil {
			return mean(), fmt.Errorf("backward: %w", err)
		}

		if err := t.opt.Step(); err != nil {
			return mean(), err
		}

		lossValue := loss.Value().Item()
		total += lossValue
		steps++

		if div := checkFinite(steps-1, lossValue, params); div != nil {
			return mean(), div
		}
	}

	if steps == 0 {
		return 0, &InvalidBatchError{Reason: "batch source yielded no batches"}
	}
	return mean(), nil
}

// Train runs the model for the given number of epochs, lazily yielding
// one EpochResult per epoch. The sequence stops after an epoch that
// reports an error; a diverged run needs caller intervention (lower
// learning rate, inspect data) since retrying the identical step would
// reproduce the same divergence. Restart by calling again with a fresh
// batch source; mid-epoch state is never checkpointed.
func (t *Trainer) Train(src BatchSource, epochs int) iter.Seq[EpochResult] {
	return func(yield func(EpochResult) bool) {
		for epoch := 0; epoch < epochs; epoch++ {
			avgLoss, err := t.TrainEpoch(src.Batches())
			if !yield(EpochResult{Epoch: epoch, AvgLoss: avgLoss, Err: err}) {
				return
			}
			if err != nil {
				return
			}
		}
	}
}

// checkFinite reports divergence if the step's loss or any parameter
// gradient is NaN or infinite.
func checkFinite(step int, loss float64, params []*nn.Parameter) *NumericDivergenceError {
	if math.IsNaN(loss) || math.IsInf(loss, 0) {
		return &NumericDivergenceError{Step: step, Loss: loss}
	}
	for _, p := range params {
		grad := p.Grad()
		if grad == nil {
			continue
		}
		for _, v := range grad.Data() {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return &NumericDivergenceError{Step: step, Loss: loss, Parameter: p.Name()}
			}
		}
	}
	return nil
}
