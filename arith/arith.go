package arith

import (
	"github.com/pkg/errors"

	"github.com/jvitoroc/simplecas/expr"
)

func Add(left, right Operand) (Operand, error) {
	return apply(expr.Add, left, right)
}

func Sub(left, right Operand) (Operand, error) {
	return apply(expr.Sub, left, right)
}

func Mul(left, right Operand) (Operand, error) {
	return apply(expr.Mul, left, right)
}

// Div divides. A raw zero literal as divisor fails immediately with
// ErrDivisionByZero on every path; an explicitly constructed Constant(0)
// node is accepted verbatim, so (x ÷ 0) stays expressible as a tree.
func Div(left, right Operand) (Operand, error) {
	return apply(expr.Div, left, right)
}

func apply(op expr.Operator, left, right Operand) (Operand, error) {
	if left.IsLiteral() && right.IsLiteral() {
		v, err := expr.ApplyOperator(op, left.lit, right.lit)
		if err != nil {
			return Operand{}, err
		}

		return Lit(v), nil
	}

	if op == expr.Div {
		if v, ok := right.Literal(); ok && v == 0 {
			return Operand{}, expr.ErrDivisionByZero
		}
	}

	l, err := left.materialize()
	if err != nil {
		return Operand{}, errors.WithMessage(err, "left operand")
	}

	r, err := right.materialize()
	if err != nil {
		return Operand{}, errors.WithMessage(err, "right operand")
	}

	c, err := expr.NewCompound(op, l, r)
	if err != nil {
		return Operand{}, err
	}

	return Node(c), nil
}
