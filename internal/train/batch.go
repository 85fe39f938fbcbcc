package train

import (
	"iter"

	"github.com/nabla-ml/nabla/internal/tensor"
)

// Batch is a pair of equal-length ordered sequences drawn from a
// dataset: one input row per example and one integer class target per
// example. Batches are consumed, not owned, by the training loop.
type Batch struct {
	Inputs  *tensor.Tensor // [batch, features]
	Targets []int          // class indices in [0, classes)
}

// Size returns the number of examples in the batch.
func (b Batch) Size() int {
	if b.Inputs == nil {
		return 0
	}
	shape := b.Inputs.Shape()
	if len(shape) == 0 {
		return 0
	}
	return shape[0]
}

// Validate checks the batch against the training loop's contract.
// Returns an *InvalidBatchError for an empty batch, a non-2-D input, or
// an input/target length mismatch.
func (b Batch) Validate() error {
	if b.Inputs == nil {
		return &InvalidBatchError{Reason: "batch has no inputs"}
	}
	shape := b.Inputs.Shape()
	if len(shape) != 2 {
		return &InvalidBatchError{Reason: "inputs must be 2-D [batch, features]"}
	}
	if shape[0] == 0 {
		return &InvalidBatchError{Reason: "empty batch"}
	}
	if len(b.Targets) != shape[0] {
		return &InvalidBatchError{
			Reason:  "input/target length mismatch",
			Inputs:  shape[0],
			Targets: len(b.Targets),
		}
	}
	return nil
}

// BatchSource produces an ordered, finite, restartable sequence of
// batches. Calling Batches again restarts the sequence from the
// beginning; the training loop never restarts mid-epoch.
type BatchSource interface {
	Batches() iter.Seq[Batch]
}

// SliceSource is the trivial in-memory BatchSource over a fixed slice
// of batches, yielded in order.
type SliceSource []Batch

// Batches yields the batches in slice order.
func (s SliceSource) Batches() iter.Seq[Batch] {
	return func(yield func(Batch) bool) {
		for _, b := range s {
			if !yield(b) {
				return
			}
		}
	}
}
