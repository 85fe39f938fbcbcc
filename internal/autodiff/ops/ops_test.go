package ops_test

import (
	"errors"
	"math"
	"testing"

	"github.com/nabla-ml/nabla/internal/autodiff"
	"github.com/nabla-ml/nabla/internal/autodiff/ops"
	"github.com/nabla-ml/nabla/internal/tensor"
)

func constant(t *testing.T, data []float64, shape tensor.Shape) *autodiff.Node {
	t.Helper()
	x, err := tensor.FromSlice(data, shape)
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}
	return autodiff.Constant(x)
}

// TestReLU_Forward tests clamping of negative values.
func TestReLU_Forward(t *testing.T) {
	x := constant(t, []float64{-2, -0.5, 0, 0.5, 2}, tensor.Shape{5})

	y, err := ops.ReLU(x)
	if err != nil {
		t.Fatalf("ReLU failed: %v", err)
	}

	want := []float64{0, 0, 0, 0.5, 2}
	for i, w := range want {
		if got := y.Value().Data()[i]; got != w {
			t.Errorf("relu[%d] = %v, want %v", i, got, w)
		}
	}
}

// TestReLU_ZeroGradientAtNegatives tests that gradient is masked where
// the input was non-positive.
func TestReLU_ZeroGradientAtNegatives(t *testing.T) {
	xt, err := tensor.FromSlice([]float64{-1, 2, -3, 4}, tensor.Shape{4})
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}
	x := autodiff.Variable(xt, true)

	y, err := ops.ReLU(x)
	if err != nil {
		t.Fatalf("ReLU failed: %v", err)
	}
	s, err := ops.Sum(y)
	if err != nil {
		t.Fatalf("Sum failed: %v", err)
	}
	if err := autodiff.Backward(s); err != nil {
		t.Fatalf("Backward failed: %v", err)
	}

	want := []float64{0, 1, 0, 1}
	for i, w := range want {
		if got := x.Grad().Data()[i]; got != w {
			t.Errorf("grad[%d] = %v, want %v", i, got, w)
		}
	}
}

// TestLogSoftmax_RowsNormalize tests that exp of each output row sums to 1.
func TestLogSoftmax_RowsNormalize(t *testing.T) {
	x := constant(t, []float64{1, 2, 3, -1, 0, 1}, tensor.Shape{2, 3})

	y, err := ops.LogSoftmax(x)
	if err != nil {
		t.Fatalf("LogSoftmax failed: %v", err)
	}

	data := y.Value().Data()
	for r := 0; r < 2; r++ {
		sum := 0.0
		for c := 0; c < 3; c++ {
			sum += math.Exp(data[r*3+c])
		}
		if math.Abs(sum-1) > 1e-12 {
			t.Errorf("row %d probabilities sum to %v, want 1", r, sum)
		}
	}
}

// TestLogSoftmax_LargeValues tests overflow resistance of the
// max-shifted computation.
func TestLogSoftmax_LargeValues(t *testing.T) {
	x := constant(t, []float64{1000, 1001, 1002}, tensor.Shape{1, 3})

	y, err := ops.LogSoftmax(x)
	if err != nil {
		t.Fatalf("LogSoftmax failed: %v", err)
	}
	for i, v := range y.Value().Data() {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("logsoftmax[%d] = %v, want finite", i, v)
		}
	}

	// Shift invariance: the same logits minus 1000 give the same result.
	shifted := constant(t, []float64{0, 1, 2}, tensor.Shape{1, 3})
	ys, err := ops.LogSoftmax(shifted)
	if err != nil {
		t.Fatalf("LogSoftmax failed: %v", err)
	}
	for i, v := range ys.Value().Data() {
		if math.Abs(v-y.Value().Data()[i]) > 1e-9 {
			t.Errorf("shift invariance broken at %d: %v vs %v", i, v, y.Value().Data()[i])
		}
	}
}

// TestLogSoftmax_RejectsNon2D tests the rank check.
func TestLogSoftmax_RejectsNon2D(t *testing.T) {
	x := constant(t, []float64{1, 2, 3}, tensor.Shape{3})

	_, err := ops.LogSoftmax(x)
	var shapeErr *tensor.ShapeError
	if !errors.As(err, &shapeErr) {
		t.Fatalf("LogSoftmax(1-D) error = %v, want *ShapeError", err)
	}
}

// TestNLLLoss_KnownValue tests the mean negative log-likelihood on
// hand-computed log-probabilities.
func TestNLLLoss_KnownValue(t *testing.T) {
	// Rows are already log-probabilities.
	logp := constant(t, []float64{
		math.Log(0.7), math.Log(0.2), math.Log(0.1),
		math.Log(0.1), math.Log(0.8), math.Log(0.1),
	}, tensor.Shape{2, 3})

	loss, err := ops.NLLLoss(logp, []int{0, 1})
	if err != nil {
		t.Fatalf("NLLLoss failed: %v", err)
	}

	want := -(math.Log(0.7) + math.Log(0.8)) / 2
	if got := loss.Value().Item(); math.Abs(got-want) > 1e-12 {
		t.Errorf("loss = %v, want %v", got, want)
	}
}

// TestNLLLoss_PerfectPrediction tests that certainty drives the loss to 0.
func TestNLLLoss_PerfectPrediction(t *testing.T) {
	// log(1) = 0 for the target class.
	logp := constant(t, []float64{0, -50, -50}, tensor.Shape{1, 3})

	loss, err := ops.NLLLoss(logp, []int{0})
	if err != nil {
		t.Fatalf("NLLLoss failed: %v", err)
	}
	if got := loss.Value().Item(); got != 0 {
		t.Errorf("loss = %v, want 0", got)
	}
}

// TestNLLLoss_WrongPredictionGrows tests that confidence in the wrong
// class drives the loss up without bound.
func TestNLLLoss_WrongPredictionGrows(t *testing.T) {
	// Near-certain mass on class 1 while the target is class 0.
	logp := constant(t, []float64{-50, -1e-22, -50}, tensor.Shape{1, 3})

	loss, err := ops.NLLLoss(logp, []int{0})
	if err != nil {
		t.Fatalf("NLLLoss failed: %v", err)
	}
	if got := loss.Value().Item(); got != 50 {
		t.Errorf("loss = %v, want 50", got)
	}
}

// TestNLLLoss_GradientSpreadsOverBatch tests the -1/batch gradient at
// each target position.
func TestNLLLoss_GradientSpreadsOverBatch(t *testing.T) {
	lt, err := tensor.FromSlice([]float64{-1, -2, -3, -4}, tensor.Shape{2, 2})
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}
	logp := autodiff.Variable(lt, true)

	loss, err := ops.NLLLoss(logp, []int{1, 0})
	if err != nil {
		t.Fatalf("NLLLoss failed: %v", err)
	}
	if err := autodiff.Backward(loss); err != nil {
		t.Fatalf("Backward failed: %v", err)
	}

	want := []float64{0, -0.5, -0.5, 0}
	for i, w := range want {
		if got := logp.Grad().Data()[i]; got != w {
			t.Errorf("grad[%d] = %v, want %v", i, got, w)
		}
	}
}

// TestNLLLoss_Validation tests target-count and range checks.
func TestNLLLoss_Validation(t *testing.T) {
	logp := constant(t, []float64{-1, -1, -1, -1}, tensor.Shape{2, 2})
	var shapeErr *tensor.ShapeError

	_, err := ops.NLLLoss(logp, []int{0})
	if !errors.As(err, &shapeErr) {
		t.Errorf("target count mismatch: error = %v, want *ShapeError", err)
	}

	_, err = ops.NLLLoss(logp, []int{0, 2})
	if !errors.As(err, &shapeErr) {
		t.Errorf("target out of range: error = %v, want *ShapeError", err)
	}

	_, err = ops.NLLLoss(constant(t, []float64{-1, -1}, tensor.Shape{2}), []int{0, 0})
	if !errors.As(err, &shapeErr) {
		t.Errorf("1-D log-probs: error = %v, want *ShapeError", err)
	}
}

// TestSumAndMean tests the full reductions.
func TestSumAndMean(t *testing.T) {
	x := constant(t, []float64{1, 2, 3, 4}, tensor.Shape{2, 2})

	s, err := ops.Sum(x)
	if err != nil {
		t.Fatalf("Sum failed: %v", err)
	}
	if got := s.Value().Item(); got != 10 {
		t.Errorf("Sum = %v, want 10", got)
	}

	m, err := ops.Mean(x)
	if err != nil {
		t.Fatalf("Mean failed: %v", err)
	}
	if got := m.Value().Item(); got != 2.5 {
		t.Errorf("Mean = %v, want 2.5", got)
	}
}
