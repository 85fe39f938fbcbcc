package autodiff

import (
	"github.com/nabla-ml/nabla/internal/tensor"
)

// Backward computes gradients of a scalar output with respect to every
// tracked ancestor Node.
//
// The output's accumulator is initialized to 1, then the graph is
// walked in reverse topological order: each Node is visited exactly
// once, after all of its dependents, so its accumulator is fully summed
// before it propagates further back. Contributions are added into
// parent accumulators — accumulators are cumulative by design, so
// callers reusing Nodes across backward passes must ZeroGrad between
// them. Untracked parents are skipped.
//
// The summation order is fixed by the traversal, so repeated runs over
// the same graph produce identical results.
//
// Fails with *GraphError if output is a leaf (no operation history) or
// holds a non-scalar value.
func Backward(output *Node) error {
	if output.op == nil {
		return &GraphError{Reason: "backward on a leaf node with no operation history"}
	}
	if !output.value.IsScalar() {
		return &GraphError{Reason: "backward requires a scalar output"}
	}

	output.grad = tensor.Ones(output.value.Shape())

	order := topoOrder(output)
	for i := len(order) - 1; i >= 0; i-- {
		n := order[i]
		if n.op == nil || n.grad == nil {
			continue
		}

		values := make([]*tensor.Tensor, len(n.parents))
		for j, p := range n.parents {
			values[j] = p.value
		}

		contribs := n.op.Backward(values, n.value, n.grad)
		for j, p := range n.parents {
			if !p.requiresGrad || contribs[j] == nil {
				continue
			}
			if p.grad == nil {
				p.grad = contribs[j]
				continue
			}
			if err := tensor.AddInPlace(p.grad, contribs[j]); err != nil {
				return &GraphError{Reason: "gradient shape mismatch for " + n.op.Name(), Err: err}
			}
		}
	}

	return nil
}

// topoOrder returns the Nodes reachable backward from output in
// topological order (every parent before its dependents). The order is
// deterministic: iterative post-order DFS over the ordered parent
// lists.
func topoOrder(output *Node) []*Node {
	var order []*Node
	visited := make(map[*Node]bool)

	type frame struct {
		node *Node
		next int // index of the next parent to descend into
	}
	stack := []frame{{node: output}}
	visited[output] = true

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next < len(top.node.parents) {
			p := top.node.parents[top.next]
			top.next++
			if !visited[p] {
				visited[p] = true
				stack = append(stack, frame{node: p})
			}
			continue
		}
		order = append(order, top.node)
		stack = stack[:len(stack)-1]
	}

	return order
}

// ZeroGrad resets each listed Node's gradient accumulator to the
// additive identity of its shape. Nodes not listed are untouched.
//
// Accumulators are cumulative across backward passes (a Node feeding
// multiple outputs sums all contributions), so ZeroGrad must be called
// before each backward pass that reuses the same Parameters.
func ZeroGrad(nodes ...*Node) {
	for _, n := range nodes {
		if n.grad != nil {
			n.grad.Zero()
			continue
		}
		n.grad = tensor.Zeros(n.value.Shape())
	}
}
