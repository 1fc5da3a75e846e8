// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides reverse-mode automatic differentiation over
// scalar values.
//
// A Tape holds the nodes of one computation graph. Operations on Values
// record new nodes; Backward on the output fills in the gradient of every
// node it depends on.
//
// Example:
//
//	import "github.com/born-ml/minigrad/autodiff"
//
//	func main() {
//	    tape := autodiff.NewTape()
//	    a := tape.Leaf(2.0)
//	    b := tape.Leaf(-3.0)
//	    d := a.Mul(b).Add(autodiff.Scalar(10)) // d = a*b + 10 = 4
//
//	    d.Backward()
//	    fmt.Println(a.Grad(), b.Grad()) // -3 2
//	}
package autodiff

import (
	"io"

	"github.com/born-ml/minigrad/internal/autodiff"
)

// Tape is an arena holding the nodes of a computation graph.
type Tape = autodiff.Tape

// NewTape creates a new, empty tape.
func NewTape() *Tape {
	return autodiff.NewTape()
}

// Value is a handle to one scalar node.
type Value = autodiff.Value

// NodeID addresses a node in a Tape.
type NodeID = autodiff.NodeID

// Operand is a Value or a Scalar literal.
type Operand = autodiff.Operand

// Scalar is a numeric literal operand, promoted to a constant leaf when used.
type Scalar = autodiff.Scalar

// ErrInvalidExponent is returned by Pow for a Value exponent.
var ErrInvalidExponent = autodiff.ErrInvalidExponent

// Add returns a + b.
func Add(a, b Operand) Value {
	return autodiff.Add(a, b)
}

// Mul returns a * b.
func Mul(a, b Operand) Value {
	return autodiff.Mul(a, b)
}

// Sub returns a - b.
func Sub(a, b Operand) Value {
	return autodiff.Sub(a, b)
}

// Div returns a / b.
func Div(a, b Operand) Value {
	return autodiff.Div(a, b)
}

// Pow returns base^exponent; exponent must be a Scalar.
func Pow(base, exponent Operand) (Value, error) {
	return autodiff.Pow(base, exponent)
}

// Sum returns the sum of values.
func Sum(values ...Value) Value {
	return autodiff.Sum(values...)
}

// WriteDOT renders the graph reachable from root in Graphviz DOT format.
func WriteDOT(w io.Writer, root Value) error {
	return autodiff.WriteDOT(w, root)
}
