package expr

// Node is the sealed tagged union of expression syntax-tree nodes.
// Exactly five kinds exist: Literal, Symbol, Unary, Binary and Call.
// Nodes are immutable once built.
type Node interface {
	node()
}

// Op enumerates the arithmetic operators carried by Unary and Binary
// nodes.
type Op int

const (
	// OpAdd is binary addition.
	OpAdd Op = iota
	// OpSub is binary subtraction and unary negation.
	OpSub
	// OpMul is multiplication.
	OpMul
	// OpDiv is division; division by zero follows IEEE-754 (±Inf, NaN).
	OpDiv
	// OpPow is exponentiation, right-associative, binds tighter than
	// unary minus: -x^2 parses as -(x^2).
	OpPow
	// OpMod is floating-point remainder (math.Mod semantics).
	OpMod
)

// String returns the operator's source spelling.
func (o Op) String() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpPow:
		return "^"
	case OpMod:
		return "%"
	}

	return "?"
}

// Literal is a numeric constant appearing in the source text.
type Literal struct {
	Value float64
}

// Symbol is a named reference: a coordinate, a builtin constant, or a
// free variable bound through the evaluation scope.
type Symbol struct {
	Name string
}

// Unary applies a prefix operator (OpSub for negation, OpAdd as a
// no-op) to a single operand.
type Unary struct {
	Op      Op
	Operand Node
}

// Binary applies an infix operator to two operands.
type Binary struct {
	Op          Op
	Left, Right Node
}

// Call invokes a named builtin function on zero or more arguments.
type Call struct {
	Name string
	Args []Node
}

func (Literal) node() {}
func (Symbol) node()  {}
func (Unary) node()   {}
func (Binary) node()  {}
func (Call) node()    {}
