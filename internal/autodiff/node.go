// Package autodiff implements reverse-mode automatic differentiation
// over an explicitly constructed computation graph.
//
// Every operation returns a new Node that owns ordered references to
// its parent Nodes; there is no global recording state. Whether a
// result tracks gradients is a pure function of its inputs: a Node
// produced by Apply records its operation and parents iff at least one
// input requires gradients. Detach cuts tracking explicitly.
//
// Usage:
//
//	x := autodiff.Variable(tensor.Scalar(3), true)
//	y, _ := ops.Mul(x, x) // y = x²
//	autodiff.Backward(y)
//	fmt.Println(x.Grad().Item()) // dy/dx = 2x = 6
package autodiff

import (
	"github.com/nabla-ml/nabla/internal/tensor"
)

// Node is a recorded value in the computation graph: the value itself,
// the operation that produced it, ordered references to the operation's
// inputs, and a cumulative gradient accumulator.
//
// Leaf Nodes (inputs, Parameters) have no operation. Non-leaf Nodes are
// created by Apply, are owned solely by the graph that references them,
// and are never mutated into a cycle.
type Node struct {
	value        *tensor.Tensor
	op           Op      // nil for leaves
	parents      []*Node // inputs to op, in argument order
	grad         *tensor.Tensor
	requiresGrad bool
}

// Variable creates a leaf Node. If requiresGrad is set, backward passes
// accumulate gradients into the Node.
func Variable(t *tensor.Tensor, requiresGrad bool) *Node {
	return &Node{value: t, requiresGrad: requiresGrad}
}

// Constant creates an untracked leaf Node. No gradient is ever stored
// for it and no graph history flows through it.
func Constant(t *tensor.Tensor) *Node {
	return &Node{value: t}
}

// Value returns the Node's tensor value.
func (n *Node) Value() *tensor.Tensor {
	return n.value
}

// Shape returns the shape of the Node's value.
func (n *Node) Shape() tensor.Shape {
	return n.value.Shape()
}

// Grad returns the Node's gradient accumulator, or nil if no gradient
// has been stored since creation or the last ZeroGrad.
func (n *Node) Grad() *tensor.Tensor {
	return n.grad
}

// RequiresGrad reports whether backward passes accumulate into this Node.
func (n *Node) RequiresGrad() bool {
	return n.requiresGrad
}

// IsLeaf reports whether the Node has no recorded operation history.
func (n *Node) IsLeaf() bool {
	return n.op == nil
}

// Op returns the operation that produced this Node, or nil for leaves.
func (n *Node) Op() Op {
	return n.op
}

// Detach returns an untracked leaf Node sharing this Node's value.
// Gradients do not flow through the detached Node.
func (n *Node) Detach() *Node {
	return &Node{value: n.value}
}
