package optim_test

import (
	"testing"

	"github.com/nabla-ml/nabla/internal/nn"
	"github.com/nabla-ml/nabla/internal/optim"
	"github.com/nabla-ml/nabla/internal/tensor"
)

// newParam creates a parameter with a stored gradient for update tests.
func newParam(t *testing.T, name string, values, grads []float64) *nn.Parameter {
	t.Helper()
	v, err := tensor.FromSlice(values, tensor.Shape{len(values)})
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}
	p := nn.NewParameter(name, v)
	p.ZeroGrad()
	copy(p.Grad().Data(), grads)
	return p
}

// TestSGD_Step tests the plain gradient descent update.
func TestSGD_Step(t *testing.T) {
	p := newParam(t, "weight", []float64{1, 2, 3}, []float64{10, 10, 10})
	sgd := optim.NewSGD([]*nn.Parameter{p}, optim.SGDConfig{LR: 0.1})

	if err := sgd.Step(); err != nil {
		t.Fatalf("Step failed: %v", err)
	}

	want := []float64{0, 1, 2}
	for i, w := range want {
		if got := p.Value().Data()[i]; got != w {
			t.Errorf("value[%d] = %v, want %v", i, got, w)
		}
	}
}

// TestSGD_Step_PreservesNodeIdentity tests the in-place update contract.
func TestSGD_Step_PreservesNodeIdentity(t *testing.T) {
	p := newParam(t, "weight", []float64{1}, []float64{1})
	node := p.Node()
	value := p.Value()

	sgd := optim.NewSGD([]*nn.Parameter{p}, optim.SGDConfig{LR: 0.5})
	if err := sgd.Step(); err != nil {
		t.Fatalf("Step failed: %v", err)
	}

	if p.Node() != node || p.Value() != value {
		t.Error("Step must mutate the parameter tensor in place, not replace it")
	}
	if got := p.Value().Item(); got != 0.5 {
		t.Errorf("value = %v, want 0.5", got)
	}
}

// TestSGD_Step_SkipsMissingGradients tests that parameters without a
// stored gradient are left alone.
func TestSGD_Step_SkipsMissingGradients(t *testing.T) {
	v, err := tensor.FromSlice([]float64{5}, tensor.Shape{1})
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}
	p := nn.NewParameter("weight", v)

	sgd := optim.NewSGD([]*nn.Parameter{p}, optim.SGDConfig{LR: 0.1})
	if err := sgd.Step(); err != nil {
		t.Fatalf("Step failed: %v", err)
	}
	if got := p.Value().Item(); got != 5 {
		t.Errorf("value = %v, want 5 (unchanged)", got)
	}
}

// TestSGD_ZeroLearningRate tests that a zero rate is a legal no-op even
// with non-zero gradients.
func TestSGD_ZeroLearningRate(t *testing.T) {
	p := newParam(t, "weight", []float64{1, 2}, []float64{100, -100})
	sgd := optim.NewSGD([]*nn.Parameter{p}, optim.SGDConfig{LR: 0})

	if err := sgd.Step(); err != nil {
		t.Fatalf("Step failed: %v", err)
	}

	want := []float64{1, 2}
	for i, w := range want {
		if got := p.Value().Data()[i]; got != w {
			t.Errorf("value[%d] = %v, want %v (unchanged)", i, got, w)
		}
	}
	if sgd.LR() != 0 {
		t.Errorf("LR() = %v, want 0", sgd.LR())
	}
}

// TestSGD_Momentum tests the velocity update over two steps.
func TestSGD_Momentum(t *testing.T) {
	p := newParam(t, "weight", []float64{1}, []float64{1})
	sgd := optim.NewSGD([]*nn.Parameter{p}, optim.SGDConfig{LR: 0.1, Momentum: 0.9})

	// Step 1: v = 1, param = 1 - 0.1*1 = 0.9
	if err := sgd.Step(); err != nil {
		t.Fatalf("Step failed: %v", err)
	}
	if got := p.Value().Item(); got != 0.9 {
		t.Fatalf("after step 1: value = %v, want 0.9", got)
	}

	// Step 2 with the same gradient: v = 0.9*1 + 1 = 1.9,
	// param = 0.9 - 0.1*1.9 = 0.71
	if err := sgd.Step(); err != nil {
		t.Fatalf("Step failed: %v", err)
	}
	if got := p.Value().Item(); got < 0.71-1e-12 || got > 0.71+1e-12 {
		t.Errorf("after step 2: value = %v, want 0.71", got)
	}
}

// TestSGD_ZeroGrad tests that all parameter accumulators are reset.
func TestSGD_ZeroGrad(t *testing.T) {
	a := newParam(t, "a", []float64{1}, []float64{3})
	b := newParam(t, "b", []float64{2}, []float64{4})

	sgd := optim.NewSGD([]*nn.Parameter{a, b}, optim.SGDConfig{LR: 0.1})
	sgd.ZeroGrad()

	if got := a.Grad().Item(); got != 0 {
		t.Errorf("a.Grad() = %v, want 0", got)
	}
	if got := b.Grad().Item(); got != 0 {
		t.Errorf("b.Grad() = %v, want 0", got)
	}
}

// TestSGD_SetLR tests learning-rate scheduling.
func TestSGD_SetLR(t *testing.T) {
	sgd := optim.NewSGD(nil, optim.SGDConfig{LR: 0.1})
	sgd.SetLR(0.01)
	if sgd.LR() != 0.01 {
		t.Errorf("LR() = %v, want 0.01", sgd.LR())
	}
}
