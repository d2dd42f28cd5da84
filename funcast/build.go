package funcast

import "math/big"

// Id returns an identifier expression.
func Id(name string) *Ident { return &Ident{Name: name} }

// Int returns a decimal integer literal.
func Int(v int64) *Number { return &Number{Value: big.NewInt(v)} }

// Hex returns a hexadecimal integer literal.
func Hex(v *big.Int) *Number { return &Number{Value: new(big.Int).Set(v), Hex: true} }

// HexUint returns a hexadecimal integer literal.
func HexUint(v uint64) *Number { return &Number{Value: new(big.Int).SetUint64(v), Hex: true} }

// True returns the true literal.
func True() *Bool { return &Bool{Value: true} }

// False returns the false literal.
func False() *Bool { return &Bool{Value: false} }

// Str returns a string literal with a type suffix.
func Str(value, suffix string) *String { return &String{Value: value, Suffix: suffix} }

// Apply returns fn(args).
func Apply(fn string, args ...Expr) *Call { return &Call{Fn: fn, Args: args} }

// MethodCall returns recv.fn(args).
func MethodCall(recv Expr, fn string, args ...Expr) *Call {
	return &Call{Receiver: recv, Fn: fn, Args: args}
}

// ModifyCall returns recv~fn(args).
func ModifyCall(recv Expr, fn string, args ...Expr) *Call {
	return &Call{Receiver: recv, Fn: fn, Args: args, Modify: true}
}

// Bin returns left op right.
func Bin(left Expr, op string, right Expr) *Binary {
	return &Binary{Left: left, Op: op, Right: right}
}

// Neg returns -x.
func Neg(x Expr) *Unary { return &Unary{Op: "-", X: x} }

// Values returns a tensor expression.
func Values(elems ...Expr) *TensorExpr { return &TensorExpr{Elems: elems} }

// Unit returns the unit value ().
func Unit() *TensorExpr { return &TensorExpr{} }

// Set returns target = value.
func Set(target, value Expr) *Assign { return &Assign{Target: target, Value: value} }

// Cond returns cond ? then : els.
func Cond(cond, then, els Expr) *Ternary { return &Ternary{Cond: cond, Then: then, Else: els} }

// Raw returns target text as an expression.
func Raw(text string) *RawExpr { return &RawExpr{Text: text} }

// Var returns var target = init.
func Var(target Expr, init Expr) *VarDef { return &VarDef{Target: target, Init: init} }

// Let returns <t> name = init.
func Let(t Type, name string, init Expr) *VarDef {
	return &VarDef{Type: t, Target: Id(name), Init: init}
}

// Do returns an expression statement.
func Do(x Expr) *ExprStmt { return &ExprStmt{X: x} }

// Ret returns a return statement.
func Ret(v Expr) *Return { return &Return{Value: v} }

// IfThen returns if (cond) { then }.
func IfThen(cond Expr, then ...Stmt) *If { return &If{Cond: cond, Then: then} }

// Note returns a body comment.
func Note(text string) *CommentStmt { return &CommentStmt{Text: text} }

// Block returns a top-level comment block.
func Block(lines ...string) *Comment { return &Comment{Lines: lines} }

// Global returns a global variable declaration.
func Global(t Type, name string) *GlobalVariable { return &GlobalVariable{Type: t, Name: name} }

// P returns a function parameter.
func P(t Type, name string) Param { return Param{Type: t, Name: name} }

// Specifier constructors.
func Impure() Attr    { return Attr{Kind: AttrImpure} }
func Inline() Attr    { return Attr{Kind: AttrInline} }
func InlineRef() Attr { return Attr{Kind: AttrInlineRef} }

// MethodID returns a method_id specifier; a zero id renders without a value.
func MethodID(id uint32) Attr {
	if id == 0 {
		return Attr{Kind: AttrMethodID}
	}
	return Attr{Kind: AttrMethodID, MethodID: &id}
}
