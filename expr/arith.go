package expr

// ApplyOperator performs plain integer arithmetic for op. It backs the
// literal-literal fast path in package arith and is the evaluation routine a
// constant-folding transform shares with it; folding a result into a tree
// still goes through NewConstant, which rejects negative values.
//
// Division is floor division (the quotient rounds toward negative infinity),
// so ApplyOperator(Div, -7, 2) = -4. A zero divisor fails with
// ErrDivisionByZero.
func ApplyOperator(op Operator, a, b int) (int, error) {
	switch op {
	case Add:
		return a + b, nil
	case Sub:
		return a - b, nil
	case Mul:
		return a * b, nil
	case Div:
		if b == 0 {
			return 0, ErrDivisionByZero
		}
		return floorDiv(a, b), nil
	}

	return 0, ErrUnknownOperator
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}

	return q
}
