package nn

import (
	"github.com/nabla-ml/nabla/internal/tensor"
)

// Accuracy computes the fraction of rows whose argmax matches the
// target class. Scores may be logits or log-probabilities; argmax is
// invariant to the monotone log-softmax.
func Accuracy(scores *tensor.Tensor, targets []int) float64 {
	shape := scores.Shape()
	if len(shape) != 2 || shape[0] == 0 || shape[0] != len(targets) {
		return 0
	}

	rows, cols := shape[0], shape[1]
	data := scores.Data()

	correct := 0
	for r := 0; r < rows; r++ {
		row := data[r*cols : (r+1)*cols]
		best := 0
		for c := 1; c < cols; c++ {
			if row[c] > row[best] {
				best = c
			}
		}
		if best == targets[r] {
			correct++
		}
	}
	return float64(correct) / float64(rows)
}
