// Copyright 2025 Nabla ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"math/rand"

	"github.com/nabla-ml/nabla/internal/nn"
	"github.com/nabla-ml/nabla/internal/tensor"
)

// Module interface defines the common interface for all neural network modules.
type Module = nn.Module

// Parameter represents a trainable parameter in a neural network.
type Parameter = nn.Parameter

// StateDict maps parameter names to their values.
type StateDict = nn.StateDict

// NewParameter creates a new parameter with the given name and tensor.
func NewParameter(name string, t *tensor.Tensor) *Parameter {
	return nn.NewParameter(name, t)
}

// Layers

// Linear represents a fully connected (dense) layer.
type Linear = nn.Linear

// NewLinear creates a new linear layer with Xavier-initialized weights
// and zero bias, drawn from the given source.
//
// Example:
//
//	rng := rand.New(rand.NewSource(42))
//	layer := nn.NewLinear(784, 128, rng)
func NewLinear(inFeatures, outFeatures int, rng *rand.Rand) *Linear {
	return nn.NewLinear(inFeatures, outFeatures, rng)
}

// Sequential chains modules, feeding each module's output to the next.
type Sequential = nn.Sequential

// NewSequential creates a sequential container over the given modules.
//
// Example:
//
//	model := nn.NewSequential(
//	    nn.NewLinear(784, 128, rng),
//	    nn.NewReLU(),
//	    nn.NewLinear(128, 10, rng),
//	)
func NewSequential(modules ...Module) *Sequential {
	return nn.NewSequential(modules...)
}

// Activations

// ReLU represents the Rectified Linear Unit activation function.
type ReLU = nn.ReLU

// NewReLU creates a new ReLU activation layer.
func NewReLU() *ReLU {
	return nn.NewReLU()
}

// LogSoftmax applies row-wise log-softmax, typically as the final
// layer before NLLLoss.
type LogSoftmax = nn.LogSoftmax

// NewLogSoftmax creates a new LogSoftmax layer.
func NewLogSoftmax() *LogSoftmax {
	return nn.NewLogSoftmax()
}

// Losses

// Loss is the common interface of classification losses.
type Loss = nn.Loss

// NLLLoss computes the mean negative log-likelihood over a batch of
// log-probability rows.
type NLLLoss = nn.NLLLoss

// NewNLLLoss creates a new NLL loss.
func NewNLLLoss() *NLLLoss {
	return nn.NewNLLLoss()
}

// CrossEntropyLoss composes LogSoftmax and NLLLoss, taking raw scores.
type CrossEntropyLoss = nn.CrossEntropyLoss

// NewCrossEntropyLoss creates a new cross-entropy loss.
func NewCrossEntropyLoss() *CrossEntropyLoss {
	return nn.NewCrossEntropyLoss()
}

// Metrics

// Accuracy returns the fraction of rows whose argmax matches the
// target class.
func Accuracy(scores *tensor.Tensor, targets []int) float64 {
	return nn.Accuracy(scores, targets)
}
