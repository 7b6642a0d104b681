package curve

import (
	"strings"

	"github.com/isam10/curveplot/expr"
)

// Parse normalizes raw expression text, classifies it into a curve
// family, and compiles its callable(s). It never fails: any lexing,
// parsing or compilation error is captured in ParseError and the
// record degrades to a Standard kind with nil callables.
// Complexity: O(len(text)) to classify plus O(nodes) to compile.
func Parse(raw string) ParsedExpression {
	text := strings.TrimSpace(expr.Normalize(raw))

	if rhs, ok := matchPolar(text); ok {
		return classifyPolar(rhs)
	}
	if xPart, yPart, ok := matchParametric(text); ok {
		return classifyParametric(xPart, yPart)
	}
	if eq := strings.IndexByte(text, '='); eq >= 0 {
		return classifyEquation(text[:eq], text[eq+1:])
	}

	return classifyBare(text)
}

// matchPolar recognizes "r = <rhs>" (whitespace-tolerant) and returns
// the right-hand side.
func matchPolar(text string) (string, bool) {
	rest, ok := strings.CutPrefix(text, "r")
	if !ok {
		return "", false
	}
	rest = strings.TrimLeft(rest, " \t")
	rhs, ok := strings.CutPrefix(rest, "=")
	if !ok {
		return "", false
	}

	return rhs, true
}

// matchParametric recognizes a single top-level parenthesis pair whose
// interior holds exactly one comma at depth one. Comma depth tracking
// respects nested parentheses, so "(f(t,1), g(t))" still splits at the
// outer comma only — and "(a,b,c)" or "(a)(b)" do not match at all.
func matchParametric(text string) (string, string, bool) {
	if len(text) < 3 || text[0] != '(' || text[len(text)-1] != ')' {
		return "", "", false
	}
	depth := 0
	commaAt := -1
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 && i != len(text)-1 {
				// The opening parenthesis closes before the end, so the
				// pair does not wrap the whole expression.
				return "", "", false
			}
		case ',':
			if depth == 1 {
				if commaAt >= 0 {
					return "", "", false
				}
				commaAt = i
			}
		}
	}
	if commaAt < 0 {
		return "", "", false
	}

	return text[1:commaAt], text[commaAt+1 : len(text)-1], true
}

func classifyPolar(rhs string) ParsedExpression {
	node, err := expr.ParseExpr(rhs)
	if err != nil {
		return errored(err)
	}
	fn, err := expr.Compile(node)
	if err != nil {
		return errored(err)
	}

	return ParsedExpression{
		Kind:          Polar,
		Compiled:      fn,
		FreeVariables: expr.FreeSymbols(node),
	}
}

func classifyParametric(xPart, yPart string) ParsedExpression {
	xNode, err := expr.ParseExpr(xPart)
	if err != nil {
		return errored(err)
	}
	yNode, err := expr.ParseExpr(yPart)
	if err != nil {
		return errored(err)
	}
	fnX, err := expr.Compile(xNode)
	if err != nil {
		return errored(err)
	}
	fnY, err := expr.Compile(yNode)
	if err != nil {
		return errored(err)
	}

	return ParsedExpression{
		Kind:          Parametric,
		CompiledX:     fnX,
		CompiledY:     fnY,
		FreeVariables: unionSymbols(xNode, yNode),
	}
}

func classifyEquation(lhs, rhs string) ParsedExpression {
	if strings.TrimSpace(lhs) == "y" {
		rhsNode, err := expr.ParseExpr(rhs)
		if err != nil {
			return errored(err)
		}
		if !expr.References(rhsNode, "y") {
			// Plain y = f(x): the fast Standard path.
			fn, err := expr.Compile(rhsNode)
			if err != nil {
				return errored(err)
			}

			return ParsedExpression{
				Kind:          Standard,
				Compiled:      fn,
				FreeVariables: expr.FreeSymbols(rhsNode),
			}
		}
		// y appears on both sides: fall through to the implicit form.
	}

	return classifyImplicitEquation(lhs, rhs)
}

// classifyImplicitEquation compiles (lhs) - (rhs), which is zero
// exactly on the curve.
func classifyImplicitEquation(lhs, rhs string) ParsedExpression {
	lhsNode, err := expr.ParseExpr(lhs)
	if err != nil {
		return errored(err)
	}
	rhsNode, err := expr.ParseExpr(rhs)
	if err != nil {
		return errored(err)
	}
	diff := expr.Binary{Op: expr.OpSub, Left: lhsNode, Right: rhsNode}
	fn, err := expr.Compile(diff)
	if err != nil {
		return errored(err)
	}

	return ParsedExpression{
		Kind:          Implicit,
		Compiled:      fn,
		FreeVariables: expr.FreeSymbols(diff),
	}
}

func classifyBare(text string) ParsedExpression {
	node, err := expr.ParseExpr(text)
	if err != nil {
		return errored(err)
	}
	fn, err := expr.Compile(node)
	if err != nil {
		return errored(err)
	}
	kind := Standard
	if expr.References(node, "y") {
		kind = Implicit
	}

	return ParsedExpression{
		Kind:          kind,
		Compiled:      fn,
		FreeVariables: expr.FreeSymbols(node),
	}
}

// unionSymbols merges the free variables of both parametric halves.
func unionSymbols(a, b expr.Node) []string {
	return expr.FreeSymbols(expr.Binary{Op: expr.OpAdd, Left: a, Right: b})
}

// errored is the single failure path: the message is captured, nothing
// propagates, and samplers treat the record as empty.
func errored(err error) ParsedExpression {
	return ParsedExpression{
		Kind:          Standard,
		FreeVariables: []string{},
		ParseError:    err.Error(),
	}
}
