// Package arith combines expressions and raw integer literals with the four
// arithmetic operators.
//
// Each operator dispatches on the kinds of its two operands: two raw
// literals are computed immediately and stay a raw literal, a literal paired
// with an expression is coerced into a fresh constant node, and two
// expressions are joined directly. Because inner calls are evaluated before
// outer ones, an all-literal subexpression collapses to its value and its
// tree structure is not preserved:
//
//	a + (1 * 2)   ->  (a + 2)
//
// whereas anchoring either side to a node keeps the structure:
//
//	a + (Constant(1) * 2)   ->  (a + (1 × 2))
package arith

import "github.com/jvitoroc/simplecas/expr"

type operandKind int

const (
	literalOperand operandKind = iota
	nodeOperand
)

// Operand is either a raw integer literal or an expression node. Raw
// literals are transient: they may go negative mid-computation, and only
// become constant nodes (validated non-negative) when combined with an
// expression. The zero value is the literal 0.
type Operand struct {
	kind operandKind
	lit  int
	node expr.Expression
}

// Lit wraps a raw integer literal.
func Lit(v int) Operand {
	return Operand{kind: literalOperand, lit: v}
}

// Node wraps an existing expression.
func Node(e expr.Expression) Operand {
	return Operand{kind: nodeOperand, node: e}
}

func (o Operand) IsLiteral() bool {
	return o.kind == literalOperand
}

func (o Operand) Literal() (int, bool) {
	return o.lit, o.kind == literalOperand
}

func (o Operand) Expr() (expr.Expression, bool) {
	return o.node, o.kind == nodeOperand
}

// materialize returns the operand as an expression node, coercing a raw
// literal into a fresh constant.
func (o Operand) materialize() (expr.Expression, error) {
	if o.kind == nodeOperand {
		return o.node, nil
	}

	c, err := expr.NewConstant(o.lit)
	if err != nil {
		return nil, err
	}

	return c, nil
}
