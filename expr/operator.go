package expr

// Operator values are the Unicode code points of the printed symbols.
type Operator rune

const (
	Add Operator = '+'
	Sub Operator = '-'
	Mul Operator = '×'
	Div Operator = '÷'
)

func (op Operator) Symbol() string {
	return string(rune(op))
}

func (op Operator) String() string {
	return op.Symbol()
}

func (op Operator) valid() bool {
	switch op {
	case Add, Sub, Mul, Div:
		return true
	}

	return false
}
