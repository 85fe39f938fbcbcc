package train

import "fmt"

// InvalidBatchError reports a batch that violates the training loop's
// contract: empty, malformed, or with mismatched input/target lengths.
// It is raised before any parameter is touched for the offending step.
type InvalidBatchError struct {
	Reason  string
	Inputs  int // number of input rows, when relevant
	Targets int // number of targets, when relevant
}

func (e *InvalidBatchError) Error() string {
	if e.Inputs != 0 || e.Targets != 0 {
		return fmt.Sprintf("invalid batch: %s (%d inputs, %d targets)", e.Reason, e.Inputs, e.Targets)
	}
	return "invalid batch: " + e.Reason
}

// NumericDivergenceError reports a non-finite loss or parameter
// gradient. It is detected after the offending step's update has been
// applied — a bad step is visible, not rolled back — and surfaces
// alongside the epoch's partial results. There is no automatic retry:
// the same step would diverge identically.
type NumericDivergenceError struct {
	Step      int     // zero-based step index within the epoch
	Loss      float64 // loss value at the offending step
	Parameter string  // parameter with a non-finite gradient, if any
}

func (e *NumericDivergenceError) Error() string {
	if e.Parameter != "" {
		return fmt.Sprintf("numeric divergence at step %d: non-finite gradient for %q (loss=%v)",
			e.Step, e.Parameter, e.Loss)
	}
	return fmt.Sprintf("numeric divergence at step %d: non-finite loss %v", e.Step, e.Loss)
}
