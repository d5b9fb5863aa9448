// Package expr implements symbolic arithmetic expressions as binary trees.
//
// An expression is one of Constant, Variable, or Compound. Trees are plain
// caller-owned values with exclusive ownership of their children; nothing in
// this package synchronizes access, so a tree must not be shared between
// goroutines without external locking.
package expr

type Expression interface {
	Render() string

	// Closed variant set.
	expression()
}

// Constant is a leaf holding a non-negative integer.
type Constant struct {
	value int
}

// Variable is a leaf holding an opaque, non-empty name.
type Variable struct {
	name string
}

// Compound is an internal node: an operator applied to two child expressions.
type Compound struct {
	op    Operator
	left  Expression
	right Expression
}

func (*Constant) expression() {}
func (*Variable) expression() {}
func (*Compound) expression() {}

func NewConstant(value int) (*Constant, error) {
	if value < 0 {
		return nil, ErrNegativeConstant
	}

	return &Constant{value: value}, nil
}

func NewVariable(name string) (*Variable, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	return &Variable{name: name}, nil
}

func NewCompound(op Operator, left, right Expression) (*Compound, error) {
	if !op.valid() {
		return nil, ErrUnknownOperator
	}
	if left == nil || right == nil {
		return nil, ErrNilOperand
	}

	return &Compound{op: op, left: left, right: right}, nil
}

func (c *Constant) Value() int {
	return c.value
}

func (v *Variable) Name() string {
	return v.name
}

func (c *Compound) Op() Operator {
	return c.op
}

func (c *Compound) Left() Expression {
	return c.left
}

func (c *Compound) Right() Expression {
	return c.right
}

// Additive reports whether the node's operator is + or -.
func (c *Compound) Additive() bool {
	return c.op == Add || c.op == Sub
}

// Multiplicative reports whether the node's operator is × or ÷.
func (c *Compound) Multiplicative() bool {
	return c.op == Mul || c.op == Div
}
