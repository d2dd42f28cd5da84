package funcast

// Stmt is a FunC statement.
type Stmt interface {
	isStmt()
}

// VarDef declares and initializes a local. A nil Type declares with var.
// Target is an Ident or a TensorExpr of Idents for destructuring.
type VarDef struct {
	Type   Type
	Target Expr
	Init   Expr
}

// ExprStmt evaluates an expression for its effect.
type ExprStmt struct {
	X Expr
}

// Return leaves the function with Value.
type Return struct {
	Value Expr
}

// If is a conditional with an optional else branch.
type If struct {
	Cond Expr
	Then []Stmt
	Else []Stmt
}

// CommentStmt is a line comment inside a body.
type CommentStmt struct {
	Text string
}

// Verbatim is lowered target text placed as one statement.
type Verbatim struct {
	Text   string
	Return bool // the text leaves the function
}

func (*VarDef) isStmt()      {}
func (*ExprStmt) isStmt()    {}
func (*Return) isStmt()      {}
func (*If) isStmt()          {}
func (*CommentStmt) isStmt() {}
func (*Verbatim) isStmt()    {}

// EndsWithReturn reports whether the last statement of body leaves the
// function unconditionally.
func EndsWithReturn(body []Stmt) bool {
	if len(body) == 0 {
		return false
	}
	switch s := body[len(body)-1].(type) {
	case *Return:
		return true
	case *Verbatim:
		return s.Return
	case *If:
		return len(s.Else) > 0 && EndsWithReturn(s.Then) && EndsWithReturn(s.Else)
	}
	return false
}
