package autodiff

import (
	"fmt"

	"github.com/born-ml/minigrad/internal/autodiff/ops"
	"github.com/gomlx/exceptions"
)

// Value is a handle to one scalar node of a Tape.
//
// Values are small and meant to be passed by value. Two Values are the same
// node when they have the same tape and ID, regardless of their data.
// The zero Value is invalid.
type Value struct {
	tape *Tape
	id   NodeID
	gen  uint32
}

// mustTape returns the tape of v, panicking if v is the zero Value or stale.
func (v Value) mustTape() *Tape {
	if v.tape == nil {
		exceptions.Panicf("autodiff: use of the zero Value")
	}
	v.tape.checkValue(v)
	return v.tape
}

func (v Value) node() *node {
	return &v.mustTape().nodes[v.id]
}

// IsValid reports whether v refers to a live node.
func (v Value) IsValid() bool {
	return v.tape != nil && v.gen == v.tape.generation && int(v.id) < len(v.tape.nodes)
}

// Tape returns the tape v was recorded on.
func (v Value) Tape() *Tape {
	return v.tape
}

// ID returns the index of v in its tape.
func (v Value) ID() NodeID {
	return v.id
}

// Data returns the forward value.
func (v Value) Data() float64 {
	return v.node().data
}

// Grad returns the accumulated gradient of the last backward root with
// respect to v.
func (v Value) Grad() float64 {
	return v.node().grad
}

// ZeroGrad resets the gradient of v to 0.
func (v Value) ZeroGrad() {
	v.node().grad = 0
}

// Label returns the op label (or leaf name) of v.
func (v Value) Label() string {
	return v.node().label
}

// Op returns the operation that produced v, or nil for a leaf.
func (v Value) Op() ops.Operation {
	return v.node().op
}

// IsLeaf reports whether v has no predecessors.
func (v Value) IsLeaf() bool {
	return len(v.node().prev) == 0
}

// Predecessors returns the distinct direct inputs of v.
func (v Value) Predecessors() []Value {
	t := v.mustTape()
	prev := t.nodes[v.id].prev
	values := make([]Value, len(prev))
	for i, id := range prev {
		values[i] = t.handle(id)
	}
	return values
}

// String implements fmt.Stringer.
func (v Value) String() string {
	if !v.IsValid() {
		return "Value(invalid)"
	}
	n := &v.tape.nodes[v.id]
	return fmt.Sprintf("Value(data=%g, grad=%g)", n.data, n.grad)
}
