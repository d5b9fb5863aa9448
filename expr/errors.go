package expr

// DomainError is the single error kind raised by this package. All failures
// are value violations reported synchronously at the point of construction
// or evaluation.
type DomainError struct {
	Reason string
}

func (e *DomainError) Error() string {
	return e.Reason
}

// Is matches any DomainError carrying the same reason, so the sentinels
// below survive wrapping.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	return ok && t.Reason == e.Reason
}

var (
	ErrNegativeConstant = &DomainError{Reason: "negative constant"}
	ErrEmptyName        = &DomainError{Reason: "empty variable name"}
	ErrDivisionByZero   = &DomainError{Reason: "division by zero"}
	ErrNilOperand       = &DomainError{Reason: "nil operand"}
	ErrUnknownOperator  = &DomainError{Reason: "unknown operator"}
	ErrLeftNotCompound  = &DomainError{Reason: "left operand is not compound"}
	ErrRightNotCompound = &DomainError{Reason: "right operand is not compound"}
)
