// Copyright 2025 Nabla ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ops provides the differentiable operations of the Nabla ML
// framework. Each function runs its forward computation eagerly and
// returns a node wired into the callers' computation graph.
package ops

import (
	"github.com/nabla-ml/nabla/internal/autodiff"
	"github.com/nabla-ml/nabla/internal/autodiff/ops"
)

// Add returns a + b element-wise with NumPy-style broadcasting.
func Add(a, b *autodiff.Node) (*autodiff.Node, error) {
	return ops.Add(a, b)
}

// Mul returns a * b element-wise with NumPy-style broadcasting.
func Mul(a, b *autodiff.Node) (*autodiff.Node, error) {
	return ops.Mul(a, b)
}

// MatMul returns the matrix product of two 2-D nodes.
func MatMul(a, b *autodiff.Node) (*autodiff.Node, error) {
	return ops.MatMul(a, b)
}

// ReLU returns max(x, 0) element-wise.
func ReLU(x *autodiff.Node) (*autodiff.Node, error) {
	return ops.ReLU(x)
}

// Sum reduces x to a scalar by summing all elements.
func Sum(x *autodiff.Node) (*autodiff.Node, error) {
	return ops.Sum(x)
}

// Mean reduces x to a scalar by averaging all elements.
func Mean(x *autodiff.Node) (*autodiff.Node, error) {
	return ops.Mean(x)
}

// LogSoftmax applies the log-softmax transform to each row of a 2-D
// node, using the max-subtraction trick for numerical stability.
func LogSoftmax(x *autodiff.Node) (*autodiff.Node, error) {
	return ops.LogSoftmax(x)
}

// NLLLoss returns the mean negative log-likelihood of the target class
// per row of a 2-D log-probability node.
func NLLLoss(logProbs *autodiff.Node, targets []int) (*autodiff.Node, error) {
	return ops.NLLLoss(logProbs, targets)
}
