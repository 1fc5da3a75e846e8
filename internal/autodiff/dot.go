package autodiff

import (
	"bytes"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// WriteDOT renders the graph reachable from root in Graphviz DOT format.
//
// Each node is drawn as a record with its label, data and gradient. Non-leaf
// nodes get an extra op node feeding them, as in:
//
//	n0 -> n2_op -> n2
func WriteDOT(w io.Writer, root Value) error {
	t := root.mustTape()
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n\trankdir=LR;\n")

	// Leaves first so the output reads from inputs to the root.
	order := t.reverseTopological(root.id)
	for i := len(order) - 1; i >= 0; i-- {
		id := order[i]
		n := &t.nodes[id]
		name := n.label
		if n.op != nil {
			name = ""
		}
		fmt.Fprintf(&buf, "\tn%d [shape=record, label=\"{ %s | data %.4f | grad %.4f }\"];\n",
			id, escapeDOT(name), n.data, n.grad)
		if n.op == nil {
			continue
		}
		fmt.Fprintf(&buf, "\tn%d_op [label=\"%s\"];\n", id, escapeDOT(n.label))
		fmt.Fprintf(&buf, "\tn%d_op -> n%d;\n", id, id)
		for _, p := range n.prev {
			fmt.Fprintf(&buf, "\tn%d -> n%d_op;\n", p, id)
		}
	}
	buf.WriteString("}\n")

	if _, err := w.Write(buf.Bytes()); err != nil {
		return errors.Wrap(err, "failed to write DOT graph")
	}
	return nil
}

// escapeDOT escapes characters that are special inside a record label.
func escapeDOT(s string) string {
	var b bytes.Buffer
	for _, r := range s {
		switch r {
		case '"', '{', '}', '|', '<', '>', '\\':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
