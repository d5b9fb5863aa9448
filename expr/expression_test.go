package expr

import (
	"errors"
	"testing"
)

func constant(t *testing.T, v int) *Constant {
	t.Helper()
	c, err := NewConstant(v)
	if err != nil {
		t.Fatal(err)
	}

	return c
}

func variable(t *testing.T, name string) *Variable {
	t.Helper()
	v, err := NewVariable(name)
	if err != nil {
		t.Fatal(err)
	}

	return v
}

func compound(t *testing.T, op Operator, left, right Expression) *Compound {
	t.Helper()
	c, err := NewCompound(op, left, right)
	if err != nil {
		t.Fatal(err)
	}

	return c
}

func TestNewConstant(t *testing.T) {
	tests := []struct {
		value   int
		wantErr error
	}{
		{value: 0},
		{value: 1},
		{value: 10},
		{value: 1 << 40},
		{value: -1, wantErr: ErrNegativeConstant},
		{value: -100, wantErr: ErrNegativeConstant},
	}

	for _, tt := range tests {
		c, err := NewConstant(tt.value)
		if tt.wantErr != nil {
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("NewConstant(%d) error = %v, want %v", tt.value, err, tt.wantErr)
			}
			if c != nil {
				t.Errorf("NewConstant(%d) returned a node alongside an error", tt.value)
			}
			continue
		}
		if err != nil {
			t.Fatalf("NewConstant(%d): %v", tt.value, err)
		}
		if c.Value() != tt.value {
			t.Errorf("NewConstant(%d).Value() = %d", tt.value, c.Value())
		}
	}
}

func TestNewVariable(t *testing.T) {
	for _, name := range []string{"x", "a", "foo", "x1"} {
		v, err := NewVariable(name)
		if err != nil {
			t.Fatalf("NewVariable(%q): %v", name, err)
		}
		if v.Name() != name {
			t.Errorf("NewVariable(%q).Name() = %q", name, v.Name())
		}
	}

	if _, err := NewVariable(""); !errors.Is(err, ErrEmptyName) {
		t.Errorf("NewVariable(\"\") error = %v, want %v", err, ErrEmptyName)
	}
}

func TestNewCompound(t *testing.T) {
	x := variable(t, "x")
	one := constant(t, 1)

	c, err := NewCompound(Add, x, one)
	if err != nil {
		t.Fatal(err)
	}
	if c.Op() != Add || c.Left() != x || c.Right() != one {
		t.Errorf("NewCompound did not preserve operator and sides")
	}

	if _, err := NewCompound(Add, nil, one); !errors.Is(err, ErrNilOperand) {
		t.Errorf("nil left error = %v, want %v", err, ErrNilOperand)
	}
	if _, err := NewCompound(Add, x, nil); !errors.Is(err, ErrNilOperand) {
		t.Errorf("nil right error = %v, want %v", err, ErrNilOperand)
	}
	if _, err := NewCompound(Operator('?'), x, one); !errors.Is(err, ErrUnknownOperator) {
		t.Errorf("unknown operator error = %v, want %v", err, ErrUnknownOperator)
	}
}

func TestAdditiveMultiplicative(t *testing.T) {
	x := variable(t, "x")
	one := constant(t, 1)

	tests := []struct {
		op             Operator
		additive       bool
		multiplicative bool
	}{
		{op: Add, additive: true},
		{op: Sub, additive: true},
		{op: Mul, multiplicative: true},
		{op: Div, multiplicative: true},
	}

	for _, tt := range tests {
		c := compound(t, tt.op, x, one)
		if c.Additive() != tt.additive {
			t.Errorf("(%v).Additive() = %v", tt.op, c.Additive())
		}
		if c.Multiplicative() != tt.multiplicative {
			t.Errorf("(%v).Multiplicative() = %v", tt.op, c.Multiplicative())
		}
	}
}
