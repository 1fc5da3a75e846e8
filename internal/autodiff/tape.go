package autodiff

import (
	"strconv"

	"github.com/born-ml/minigrad/internal/autodiff/ops"
	"github.com/gomlx/exceptions"
)

// NodeID addresses a node in a Tape.
type NodeID = ops.NodeID

// node is one scalar in the graph. Its data, predecessors and op never change
// after construction; only grad is mutated.
type node struct {
	data  float64
	grad  float64
	prev  []NodeID      // Deduplicated direct predecessors.
	op    ops.Operation // nil for leaves.
	label string
}

// Tape is an arena holding every node of a computation graph.
//
// Nodes are appended during the forward pass and addressed by stable index,
// so identity is index equality. A Tape is not safe for concurrent use.
//
// Usage:
//
//	tape := NewTape()
//	a := tape.Leaf(2)
//	b := tape.Leaf(-3)
//	d := a.Mul(b).Add(Scalar(10))
//	d.Backward()
//	fmt.Println(a.Grad()) // -3
type Tape struct {
	nodes      []node
	generation uint32 // Bumped by Reset to invalidate outstanding Values.
}

// NewTape creates a new, empty tape.
func NewTape() *Tape {
	return &Tape{
		nodes: make([]node, 0, 64), // Pre-allocate for common case
	}
}

// Leaf creates an input node with no predecessors.
func (t *Tape) Leaf(data float64) Value {
	return t.NamedLeaf("", data)
}

// NamedLeaf creates an input node labeled with name, e.g. a parameter name.
func (t *Tape) NamedLeaf(name string, data float64) Value {
	t.nodes = append(t.nodes, node{data: data, label: name})
	return t.handle(NodeID(len(t.nodes) - 1))
}

// Leaves creates one input node per element of data.
func (t *Tape) Leaves(data ...float64) []Value {
	values := make([]Value, len(data))
	for i, d := range data {
		values[i] = t.Leaf(d)
	}
	return values
}

// constant creates the leaf a Scalar literal is promoted to.
func (t *Tape) constant(data float64) Value {
	return t.NamedLeaf(strconv.FormatFloat(data, 'g', -1, 64), data)
}

// record evaluates op and appends its output node.
func (t *Tape) record(op ops.Operation) Value {
	inputs := op.Inputs()
	values := make([]float64, len(inputs))
	prev := make([]NodeID, 0, len(inputs))
	for i, id := range inputs {
		values[i] = t.nodes[id].data
		if !containsID(prev, id) {
			prev = append(prev, id)
		}
	}
	t.nodes = append(t.nodes, node{
		data:  op.Forward(values),
		prev:  prev,
		op:    op,
		label: op.Label(),
	})
	return t.handle(NodeID(len(t.nodes) - 1))
}

func (t *Tape) handle(id NodeID) Value {
	return Value{tape: t, id: id, gen: t.generation}
}

// Len returns the number of nodes on the tape.
func (t *Tape) Len() int {
	return len(t.nodes)
}

// ZeroGrad sets the gradient of every node on the tape to 0.
func (t *Tape) ZeroGrad() {
	for i := range t.nodes {
		t.nodes[i].grad = 0
	}
}

// Reset removes all nodes so the arena can be reused for the next forward
// pass. Values created before the reset become invalid.
func (t *Tape) Reset() {
	t.nodes = t.nodes[:0]
	t.generation++
}

// checkValue panics if v does not belong to the current generation of t.
func (t *Tape) checkValue(v Value) {
	if v.tape != t {
		exceptions.Panicf("autodiff: Value #%d belongs to a different Tape", v.id)
	}
	if v.gen != t.generation {
		exceptions.Panicf("autodiff: Value #%d used after its Tape was reset", v.id)
	}
}

func containsID(ids []NodeID, id NodeID) bool {
	for _, x := range ids {
		if x == id {
			return true
		}
	}
	return false
}
