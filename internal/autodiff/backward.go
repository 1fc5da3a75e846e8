package autodiff

import (
	"k8s.io/klog/v2"
)

// TopologicalOrder returns every node reachable from v, with v first and each
// node placed before all of its predecessors.
//
// The order is a reversed iterative post-order DFS, with each node visited
// once by ID.
func (v Value) TopologicalOrder() []Value {
	t := v.mustTape()
	ids := t.reverseTopological(v.id)
	values := make([]Value, len(ids))
	for i, id := range ids {
		values[i] = t.handle(id)
	}
	return values
}

// frame is a DFS stack entry: a node and the index of its next predecessor.
type frame struct {
	id   NodeID
	next int
}

func (t *Tape) reverseTopological(root NodeID) []NodeID {
	visited := make([]bool, len(t.nodes))
	order := make([]NodeID, 0, len(t.nodes))
	stack := []frame{{id: root}}
	visited[root] = true

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		prev := t.nodes[top.id].prev
		if top.next < len(prev) {
			p := prev[top.next]
			top.next++
			if !visited[p] {
				visited[p] = true
				stack = append(stack, frame{id: p})
			}
			continue
		}
		// All predecessors done: post-order position.
		order = append(order, top.id)
		stack = stack[:len(stack)-1]
	}

	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}
	return order
}

// Backward computes the gradient of v with respect to every node it depends on.
//
// Algorithm:
//  1. Order the reachable nodes so v comes first and leaves last
//  2. Seed v's gradient with 1 (overwriting any previous value)
//  3. Visit nodes in that order, adding each operation's contribution into
//     the gradients of its operands
//
// Gradients of other nodes are accumulated, never reset: call ZeroGrad (or
// Tape.ZeroGrad) between passes over overlapping graphs.
func (v Value) Backward() {
	t := v.mustTape()
	order := t.reverseTopological(v.id)

	t.nodes[v.id].grad = 1
	var buf [2]float64
	for _, id := range order {
		n := &t.nodes[id]
		if n.op == nil {
			continue
		}
		inputs := n.op.Inputs()
		values := buf[:0]
		for _, in := range inputs {
			values = append(values, t.nodes[in].data)
		}
		contributions := n.op.Backward(n.grad, n.data, values)
		for i, in := range inputs {
			t.nodes[in].grad += contributions[i]
		}
	}

	if klog.V(2).Enabled() {
		klog.Infof("autodiff: backward from #%d visited %d of %d nodes", v.id, len(order), len(t.nodes))
	}
}

// ZeroGradAll resets the gradient of every node reachable from v.
func (v Value) ZeroGradAll() {
	t := v.mustTape()
	for _, id := range t.reverseTopological(v.id) {
		t.nodes[id].grad = 0
	}
}
