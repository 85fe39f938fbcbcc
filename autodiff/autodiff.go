// Copyright 2025 Nabla ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides reverse-mode automatic differentiation.
//
// Every differentiable computation is an explicit graph of Nodes.
// Applying an operation to nodes produces a new node that remembers
// its inputs; Backward walks that history from a scalar output and
// accumulates a gradient on every tracked node.
//
// Example:
//
//	x := autodiff.Variable(tensor.Scalar(3), true)
//	y, _ := ops.Mul(x, x)   // y = x²
//	z, _ := ops.Add(y, x)   // z = x² + x
//
//	if err := autodiff.Backward(z); err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(x.Grad().Item()) // dz/dx = 2x + 1 = 7
package autodiff

import (
	"github.com/nabla-ml/nabla/internal/autodiff"
	"github.com/nabla-ml/nabla/internal/tensor"
)

// Node is one vertex of a computation graph: a value plus the
// operation and inputs that produced it.
type Node = autodiff.Node

// Op describes a differentiable operation: a forward computation and
// the rule for routing an output gradient back to each input.
type Op = autodiff.Op

// GraphError reports a structurally invalid backward request, such as
// calling Backward on a leaf or on a non-scalar output.
type GraphError = autodiff.GraphError

// Variable creates a leaf node. Gradients flow to it only when
// requiresGrad is true.
func Variable(value *tensor.Tensor, requiresGrad bool) *Node {
	return autodiff.Variable(value, requiresGrad)
}

// Constant creates a leaf node that never receives gradients.
// Equivalent to Variable(value, false).
func Constant(value *tensor.Tensor) *Node {
	return autodiff.Constant(value)
}

// Apply runs op on the inputs and returns a node recording the
// operation, tracked iff any input is tracked.
func Apply(op Op, inputs ...*Node) (*Node, error) {
	return autodiff.Apply(op, inputs...)
}

// Backward computes gradients of the scalar output with respect to
// every tracked node in its history, accumulating into each node's
// gradient. Returns a *GraphError if output is a leaf or non-scalar.
func Backward(output *Node) error {
	return autodiff.Backward(output)
}

// ZeroGrad resets the gradient accumulators of the given nodes.
// Call it before each backward pass of an iterative loop; gradients
// otherwise accumulate across passes.
func ZeroGrad(nodes ...*Node) {
	autodiff.ZeroGrad(nodes...)
}
