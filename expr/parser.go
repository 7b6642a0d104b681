package expr

import "fmt"

// ParseExpr parses already-normalized expression text into its syntax
// tree. The whole input must form exactly one expression; trailing
// tokens are a syntax error. Complexity: O(number of tokens).
func ParseExpr(src string) (Node, error) {
	toks, err := lex(src)
	if err != nil {
		return nil, err
	}
	if toks[0].kind == tokEOF {
		return nil, ErrEmptyExpression
	}
	p := &parser{toks: toks}
	n, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	if tk := p.peek(); tk.kind != tokEOF {
		return nil, fmt.Errorf("%w: unexpected %q at %d", ErrSyntax, tk.text, tk.pos)
	}

	return n, nil
}

// parser is a recursive-descent precedence parser over the token slice.
// Grammar, loosest binding first:
//
//	additive := term   (("+" | "-") term)*
//	term     := unary  (("*" | "/" | "%") unary)*
//	unary    := ("+" | "-") unary | power
//	power    := primary ("^" unary)?          // right-associative
//	primary  := number | ident | ident "(" args ")" | "(" additive ")"
type parser struct {
	toks []token
	pos  int
}

func (p *parser) peek() token { return p.toks[p.pos] }

func (p *parser) next() token {
	tk := p.toks[p.pos]
	if tk.kind != tokEOF {
		p.pos++
	}

	return tk
}

func (p *parser) parseAdditive() (Node, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for {
		tk := p.peek()
		if tk.kind != tokOp || (tk.text != "+" && tk.text != "-") {
			return left, nil
		}
		p.next()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		op := OpAdd
		if tk.text == "-" {
			op = OpSub
		}
		left = Binary{Op: op, Left: left, Right: right}
	}
}

func (p *parser) parseTerm() (Node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		tk := p.peek()
		if tk.kind != tokOp || (tk.text != "*" && tk.text != "/" && tk.text != "%") {
			return left, nil
		}
		p.next()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		var op Op
		switch tk.text {
		case "*":
			op = OpMul
		case "/":
			op = OpDiv
		default:
			op = OpMod
		}
		left = Binary{Op: op, Left: left, Right: right}
	}
}

func (p *parser) parseUnary() (Node, error) {
	tk := p.peek()
	if tk.kind == tokOp && (tk.text == "+" || tk.text == "-") {
		p.next()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		if tk.text == "+" {
			return Unary{Op: OpAdd, Operand: operand}, nil
		}

		return Unary{Op: OpSub, Operand: operand}, nil
	}

	return p.parsePower()
}

func (p *parser) parsePower() (Node, error) {
	base, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	tk := p.peek()
	if tk.kind == tokOp && tk.text == "^" {
		p.next()
		// Right-associative: 2^3^2 = 2^(3^2). The exponent re-enters at
		// unary level so -x^-2 parses.
		exp, err := p.parseUnary()
		if err != nil {
			return nil, err
		}

		return Binary{Op: OpPow, Left: base, Right: exp}, nil
	}

	return base, nil
}

func (p *parser) parsePrimary() (Node, error) {
	tk := p.next()
	switch tk.kind {
	case tokNumber:
		return Literal{Value: tk.val}, nil
	case tokIdent:
		if p.peek().kind != tokLParen {
			return Symbol{Name: tk.text}, nil
		}
		p.next() // consume "("
		args, err := p.parseArgs()
		if err != nil {
			return nil, err
		}

		return Call{Name: tk.text, Args: args}, nil
	case tokLParen:
		inner, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		if closing := p.next(); closing.kind != tokRParen {
			return nil, fmt.Errorf("%w: missing closing parenthesis at %d", ErrSyntax, closing.pos)
		}

		return inner, nil
	case tokEOF:
		return nil, fmt.Errorf("%w: unexpected end of expression at %d", ErrSyntax, tk.pos)
	default:
		return nil, fmt.Errorf("%w: unexpected %q at %d", ErrSyntax, tk.text, tk.pos)
	}
}

// parseArgs parses a comma-separated argument list; the opening "(" has
// already been consumed. An immediate ")" yields zero arguments, which
// is how zero-arity builtins like random() are written.
func (p *parser) parseArgs() ([]Node, error) {
	if p.peek().kind == tokRParen {
		p.next()

		return nil, nil
	}
	var args []Node
	for {
		arg, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		tk := p.next()
		switch tk.kind {
		case tokRParen:
			return args, nil
		case tokComma:
			continue
		default:
			return nil, fmt.Errorf("%w: expected \",\" or \")\" at %d", ErrSyntax, tk.pos)
		}
	}
}
