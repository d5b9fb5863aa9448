package expr

type childPos int

const (
	leftChild childPos = iota
	rightChild
)

// setChild replaces one child in place at its position. Transforms that swap
// a node for another (specializing a variable to a constant, folding a
// constant subtree) go through the parent instead of rebuilding the tree.
func (c *Compound) setChild(pos childPos, e Expression) {
	if pos == leftChild {
		c.left = e
	} else {
		c.right = e
	}
}

// Commute swaps the receiver's two children. It touches only the receiver;
// descendants keep their internal structure.
func (c *Compound) Commute() {
	c.left, c.right = c.right, c.left
}

// AssocRight transforms (A op1 B) op2 C into A op1 (B op2 C). The left child
// must itself be a compound node; its allocation is reused for the new inner
// node.
func (c *Compound) AssocRight() error {
	inner, ok := c.left.(*Compound)
	if !ok {
		return ErrLeftNotCompound
	}

	a, op1 := inner.left, inner.op
	inner.op = c.op
	inner.setChild(leftChild, inner.right)
	inner.setChild(rightChild, c.right)

	c.op = op1
	c.setChild(leftChild, a)
	c.setChild(rightChild, inner)

	return nil
}

// AssocLeft transforms A op1 (B op2 C) into (A op1 B) op2 C. The right child
// must itself be a compound node.
func (c *Compound) AssocLeft() error {
	inner, ok := c.right.(*Compound)
	if !ok {
		return ErrRightNotCompound
	}

	cc, op2 := inner.right, inner.op
	inner.op = c.op
	inner.setChild(rightChild, inner.left)
	inner.setChild(leftChild, c.left)

	c.op = op2
	c.setChild(leftChild, inner)
	c.setChild(rightChild, cc)

	return nil
}
