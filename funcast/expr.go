package funcast

import "math/big"

// Expr is a FunC expression.
type Expr interface {
	isExpr()
}

// Ident is a variable, global or function name.
type Ident struct {
	Name string
}

// Number is an integer literal.
type Number struct {
	Value *big.Int
	Hex   bool // render as 0x...
}

// Bool is true or false.
type Bool struct {
	Value bool
}

// String is a string literal with an optional type suffix such as H or s.
type String struct {
	Value  string
	Suffix string
}

// Call is a function application. With a Receiver it is a method call:
// recv.fn(args), or recv~fn(args) when Modify is set.
type Call struct {
	Receiver Expr
	Fn       string
	Args     []Expr
	Modify   bool
}

// Binary is a binary operator application.
type Binary struct {
	Left  Expr
	Right Expr
	Op    string
}

// Unary is a prefix operator application.
type Unary struct {
	X  Expr
	Op string
}

// TensorExpr is a parenthesized list of expressions. The empty tensor is the
// unit value ().
type TensorExpr struct {
	Elems []Expr
}

// Ternary is cond ? then : else.
type Ternary struct {
	Cond Expr
	Then Expr
	Else Expr
}

// Assign is an assignment, optionally compound (+=, ~>>=, ...).
type Assign struct {
	Target Expr
	Value  Expr
	Op     string // "=" when empty
}

// RawExpr is target text used as is.
type RawExpr struct {
	Text string
}

func (*Ident) isExpr()      {}
func (*Number) isExpr()     {}
func (*Bool) isExpr()       {}
func (*String) isExpr()     {}
func (*Call) isExpr()       {}
func (*Binary) isExpr()     {}
func (*Unary) isExpr()      {}
func (*TensorExpr) isExpr() {}
func (*Ternary) isExpr()    {}
func (*Assign) isExpr()     {}
func (*RawExpr) isExpr()    {}
