package expr

import "errors"

// Sentinel errors for expression parsing and compilation.
// Evaluation never errors: numeric faults become NaN instead.
var (
	// ErrEmptyExpression indicates the input contains no tokens.
	ErrEmptyExpression = errors.New("expr: expression is empty")
	// ErrSyntax indicates malformed expression text.
	ErrSyntax = errors.New("expr: syntax error")
	// ErrUnknownFunction indicates a call to a name outside the builtin table.
	ErrUnknownFunction = errors.New("expr: unknown function")
	// ErrArity indicates a builtin called with the wrong argument count.
	ErrArity = errors.New("expr: wrong number of arguments")
)
