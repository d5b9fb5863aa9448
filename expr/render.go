package expr

import "strconv"

// Render returns the canonical fully parenthesized form of an expression.
func Render(e Expression) string {
	return e.Render()
}

func (c *Constant) Render() string {
	return strconv.Itoa(c.value)
}

func (v *Variable) Render() string {
	return v.name
}

func (c *Compound) Render() string {
	return "(" + c.left.Render() + " " + c.op.Symbol() + " " + c.right.Render() + ")"
}
