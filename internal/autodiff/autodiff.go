// Package autodiff implements reverse-mode automatic differentiation over
// scalar values.
//
// Architecture:
//   - Tape: arena of nodes addressed by NodeID
//   - Value: handle to a node; graph-building methods return new Values
//   - ops.Operation: tagged variant describing how a node was produced
//   - Backward: reverse-topological traversal applying the chain rule
//
// Operands are either Values or Scalar literals. A literal is promoted to a
// constant leaf on the tape of the other operand.
//
// Usage:
//
//	tape := autodiff.NewTape()
//	x := tape.Leaf(2.0)
//	y := x.Mul(x) // y = x²
//	y.Backward()
//	fmt.Println(x.Grad()) // dy/dx = 2x = 4.0
package autodiff

import (
	"math"
	"strconv"

	"github.com/born-ml/minigrad/internal/autodiff/ops"
	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
)

// Operand is an argument of a graph operation: a Value or a Scalar.
type Operand interface {
	// tapeOf returns the tape the operand lives on, or nil for literals.
	tapeOf() *Tape
	// on returns the operand as a node of t, promoting literals.
	on(t *Tape) Value
}

// Scalar is a numeric literal operand.
type Scalar float64

func (s Scalar) tapeOf() *Tape { return nil }

func (s Scalar) on(t *Tape) Value { return t.constant(float64(s)) }

// String implements fmt.Stringer.
func (s Scalar) String() string {
	return strconv.FormatFloat(float64(s), 'g', -1, 64)
}

func (v Value) tapeOf() *Tape { return v.mustTape() }

func (v Value) on(t *Tape) Value {
	if v.tape != t {
		exceptions.Panicf("autodiff: cannot combine Value #%d with a Value from another Tape", v.id)
	}
	t.checkValue(v)
	return v
}

// commonTape returns the tape shared by the operands.
func commonTape(opName string, operands ...Operand) *Tape {
	var t *Tape
	for _, o := range operands {
		if ot := o.tapeOf(); ot != nil {
			if t != nil && ot != t {
				exceptions.Panicf("autodiff.%s: operands belong to different Tapes", opName)
			}
			t = ot
		}
	}
	if t == nil {
		exceptions.Panicf("autodiff.%s: %v", opName, ErrNoTape)
	}
	return t
}

// Add returns v + o.
func (v Value) Add(o Operand) Value {
	t := v.mustTape()
	return t.record(ops.NewAddOp(v.id, o.on(t).id))
}

// Mul returns v * o.
func (v Value) Mul(o Operand) Value {
	t := v.mustTape()
	return t.record(ops.NewMulOp(v.id, o.on(t).id))
}

// Pow returns v^p. The exponent is a constant; see the package-level Pow for
// a dynamically typed exponent.
func (v Value) Pow(p float64) Value {
	t := v.mustTape()
	return t.record(ops.NewPowOp(v.id, p))
}

// ReLU returns max(0, v).
func (v Value) ReLU() Value {
	t := v.mustTape()
	return t.record(ops.NewReLUOp(v.id))
}

// Tanh returns tanh(v).
func (v Value) Tanh() Value {
	t := v.mustTape()
	return t.record(ops.NewTanhOp(v.id))
}

// Sigmoid returns 1 / (1 + e^-v).
func (v Value) Sigmoid() Value {
	t := v.mustTape()
	return t.record(ops.NewSigmoidOp(v.id))
}

// Exp returns e^v.
func (v Value) Exp() Value {
	return v.ExpBase(math.E)
}

// ExpBase returns base^v. base must be > 0 for the gradient to be defined.
func (v Value) ExpBase(base float64) Value {
	t := v.mustTape()
	return t.record(ops.NewExpOp(v.id, base))
}

// Neg returns -v, computed as v * -1.
func (v Value) Neg() Value {
	return v.Mul(Scalar(-1))
}

// Sub returns v - o, computed as v + (-o).
func (v Value) Sub(o Operand) Value {
	return v.Add(negate(o))
}

// Div returns v / o, computed as v * o^-1. Division by zero yields Inf/NaN.
func (v Value) Div(o Operand) Value {
	return v.Mul(reciprocal(o))
}

// RSub returns o - v.
func (v Value) RSub(o Operand) Value {
	t := v.mustTape()
	return o.on(t).Add(v.Neg())
}

// RDiv returns o / v.
func (v Value) RDiv(o Operand) Value {
	t := v.mustTape()
	return o.on(t).Mul(v.Pow(-1))
}

// negate returns -o; literals are negated numerically.
func negate(o Operand) Operand {
	if s, ok := o.(Scalar); ok {
		return -s
	}
	return o.(Value).Neg()
}

// reciprocal returns o^-1; literals are inverted numerically.
func reciprocal(o Operand) Operand {
	if s, ok := o.(Scalar); ok {
		return 1 / s
	}
	return o.(Value).Pow(-1)
}

// Add returns a + b. At least one operand must be a Value.
func Add(a, b Operand) Value {
	t := commonTape("Add", a, b)
	return a.on(t).Add(b)
}

// Mul returns a * b. At least one operand must be a Value.
func Mul(a, b Operand) Value {
	t := commonTape("Mul", a, b)
	return a.on(t).Mul(b)
}

// Sub returns a - b. At least one operand must be a Value.
func Sub(a, b Operand) Value {
	t := commonTape("Sub", a, b)
	if s, ok := a.(Scalar); ok {
		return b.(Value).RSub(s)
	}
	return a.on(t).Sub(b)
}

// Div returns a / b. At least one operand must be a Value.
func Div(a, b Operand) Value {
	t := commonTape("Div", a, b)
	if s, ok := a.(Scalar); ok {
		return b.(Value).RDiv(s)
	}
	return a.on(t).Div(b)
}

// Pow returns base^exponent.
//
// Only real-number exponents are supported: a Value exponent returns
// ErrInvalidExponent.
func Pow(base, exponent Operand) (Value, error) {
	p, ok := exponent.(Scalar)
	if !ok {
		return Value{}, errors.Wrapf(ErrInvalidExponent, "Pow(%v, %v)", base, exponent)
	}
	t := commonTape("Pow", base)
	return base.on(t).Pow(float64(p)), nil
}

// Sum returns the sum of values folded left with Add.
func Sum(values ...Value) Value {
	if len(values) == 0 {
		exceptions.Panicf("autodiff.Sum: no values")
	}
	sum := values[0]
	for _, v := range values[1:] {
		sum = sum.Add(v)
	}
	return sum
}
