package expr

// Equal reports strict structural equality: same variant, same leaf value or
// name, same operator, recursively equal children. It does not equate
// expressions related by algebraic laws, so (a + b) and (b + a) differ.
func Equal(a, b Expression) bool {
	if a == nil || b == nil {
		return a == b
	}

	switch x := a.(type) {
	case *Constant:
		y, ok := b.(*Constant)
		return ok && x.value == y.value
	case *Variable:
		y, ok := b.(*Variable)
		return ok && x.name == y.name
	case *Compound:
		y, ok := b.(*Compound)
		return ok && x.op == y.op && Equal(x.left, y.left) && Equal(x.right, y.right)
	}

	return false
}
