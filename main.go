package main

import (
	"fmt"

	"github.com/jvitoroc/simplecas/arith"
	"github.com/jvitoroc/simplecas/expr"
)

func main() {
	x := variable("x")
	y := variable("y")
	z := variable("z")

	// 2*(x+1) + 5*y + z
	e := must(arith.Add(
		must(arith.Add(
			must(arith.Mul(arith.Lit(2), must(arith.Add(arith.Node(x), arith.Lit(1))))),
			must(arith.Mul(arith.Lit(5), arith.Node(y))),
		)),
		arith.Node(z),
	))

	root, ok := e.Expr()
	if !ok {
		panic("expected an expression")
	}
	fmt.Println(expr.Render(root))

	root.(*expr.Compound).Commute()
	fmt.Println(expr.Render(root))
}

func variable(name string) *expr.Variable {
	v, err := expr.NewVariable(name)
	if err != nil {
		panic(err)
	}

	return v
}

func must(o arith.Operand, err error) arith.Operand {
	if err != nil {
		panic(err)
	}

	return o
}
