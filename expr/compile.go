package expr

import (
	"fmt"
	"math"

	"github.com/isam10/curveplot/core"
)

// Func is a compiled expression: a pure numeric function of a variable
// scope. It never panics and never errors — any evaluation-time fault
// (unknown symbol, domain error) degrades to NaN for that single call.
type Func func(scope core.Scope) float64

// Compile folds an AST into a Func. Structural problems — a call to a
// name outside the builtin table, or a builtin invoked with the wrong
// argument count — are reported here, once, rather than at every
// evaluation. Complexity: O(nodes) to compile, O(nodes) per evaluation.
func Compile(n Node) (Func, error) {
	switch node := n.(type) {
	case Literal:
		v := node.Value

		return func(core.Scope) float64 { return v }, nil

	case Symbol:
		name := node.Name
		if c, ok := builtinConstants[name]; ok {
			return func(core.Scope) float64 { return c }, nil
		}

		return func(scope core.Scope) float64 {
			if v, ok := scope[name]; ok {
				return v
			}

			return math.NaN()
		}, nil

	case Unary:
		operand, err := Compile(node.Operand)
		if err != nil {
			return nil, err
		}
		if node.Op == OpSub {
			return func(scope core.Scope) float64 { return -operand(scope) }, nil
		}

		return operand, nil // unary plus is the identity

	case Binary:
		left, err := Compile(node.Left)
		if err != nil {
			return nil, err
		}
		right, err := Compile(node.Right)
		if err != nil {
			return nil, err
		}

		return compileBinary(node.Op, left, right)

	case Call:
		bf, ok := builtinFuncs[node.Name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownFunction, node.Name)
		}
		if len(node.Args) != bf.arity {
			return nil, fmt.Errorf("%w: %s takes %d argument(s), got %d",
				ErrArity, node.Name, bf.arity, len(node.Args))
		}
		args := make([]Func, len(node.Args))
		for i, a := range node.Args {
			compiled, err := Compile(a)
			if err != nil {
				return nil, err
			}
			args[i] = compiled
		}
		fn := bf.fn

		return func(scope core.Scope) float64 {
			vals := make([]float64, len(args))
			for i, a := range args {
				vals[i] = a(scope)
			}

			return fn(vals)
		}, nil
	}

	return nil, fmt.Errorf("%w: unknown node %T", ErrSyntax, n)
}

func compileBinary(op Op, left, right Func) (Func, error) {
	switch op {
	case OpAdd:
		return func(s core.Scope) float64 { return left(s) + right(s) }, nil
	case OpSub:
		return func(s core.Scope) float64 { return left(s) - right(s) }, nil
	case OpMul:
		return func(s core.Scope) float64 { return left(s) * right(s) }, nil
	case OpDiv:
		// IEEE-754 division: x/0 is ±Inf, 0/0 is NaN — both flow through
		// as unplottable sentinels.
		return func(s core.Scope) float64 { return left(s) / right(s) }, nil
	case OpPow:
		return func(s core.Scope) float64 { return math.Pow(left(s), right(s)) }, nil
	case OpMod:
		return func(s core.Scope) float64 { return math.Mod(left(s), right(s)) }, nil
	}

	return nil, fmt.Errorf("%w: unknown operator %v", ErrSyntax, op)
}

// CompileString parses and compiles already-normalized text in one step.
func CompileString(src string) (Func, error) {
	n, err := ParseExpr(src)
	if err != nil {
		return nil, err
	}

	return Compile(n)
}
