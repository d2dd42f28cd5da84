package funcfmt

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/wippyai/tvm-codegen/funcast"
)

const indentUnit = "    "

// Print renders m as FunC source text.
func Print(m *funcast.Module) (string, error) {
	var b strings.Builder
	if err := Fprint(&b, m); err != nil {
		return "", err
	}
	return b.String(), nil
}

// Fprint writes m as FunC source text to w. Entries are separated by a blank
// line.
func Fprint(w io.Writer, m *funcast.Module) error {
	p := &printer{}
	for i, e := range m.Entries {
		if i > 0 {
			p.b.WriteByte('\n')
		}
		p.entry(e)
		if p.err != nil {
			return p.err
		}
	}
	_, err := io.WriteString(w, p.b.String())
	return err
}

// Function renders a single function definition.
func Function(f *funcast.FunctionDefinition) (string, error) {
	p := &printer{}
	p.function(f)
	return p.b.String(), p.err
}

// Statements renders a statement list at zero indentation.
func Statements(body []funcast.Stmt) (string, error) {
	p := &printer{}
	p.stmts(body)
	return p.b.String(), p.err
}

// Expression renders a single expression.
func Expression(x funcast.Expr) (string, error) {
	p := &printer{}
	p.expr(x)
	return p.b.String(), p.err
}

type printer struct {
	err   error
	b     strings.Builder
	depth int
}

func (p *printer) fail(format string, args ...any) {
	if p.err == nil {
		p.err = fmt.Errorf(format, args...)
	}
}

func (p *printer) line(s string) {
	for i := 0; i < p.depth; i++ {
		p.b.WriteString(indentUnit)
	}
	p.b.WriteString(s)
	p.b.WriteByte('\n')
}

func (p *printer) entry(e funcast.Entry) {
	switch e := e.(type) {
	case *funcast.Comment:
		for _, l := range e.Lines {
			if strings.ContainsAny(l, "\r\n") {
				p.fail("funcfmt: line break in comment %q", l)
				return
			}
			if l == "" {
				p.line(";;")
			} else {
				p.line(";; " + l)
			}
		}
	case *funcast.GlobalVariable:
		p.line("global " + p.typ(e.Type, false) + " " + e.Name + ";")
	case *funcast.FunctionDefinition:
		p.function(e)
	default:
		p.fail("funcfmt: unsupported entry %T", e)
	}
}

func (p *printer) function(f *funcast.FunctionDefinition) {
	var sig strings.Builder
	sig.WriteString(p.typ(f.Return, true))
	sig.WriteByte(' ')
	sig.WriteString(f.Name)
	sig.WriteByte('(')
	for i, param := range f.Params {
		if i > 0 {
			sig.WriteString(", ")
		}
		sig.WriteString(p.typ(param.Type, true))
		sig.WriteByte(' ')
		sig.WriteString(param.Name)
	}
	sig.WriteByte(')')
	for _, a := range sortedAttrs(f.Attrs) {
		sig.WriteByte(' ')
		sig.WriteString(a.Kind.String())
		if a.MethodID != nil {
			sig.WriteString("(" + strconv.FormatUint(uint64(*a.MethodID), 10) + ")")
		}
	}
	sig.WriteString(" {")
	p.line(sig.String())
	p.depth++
	p.stmts(f.Body)
	p.depth--
	p.line("}")
}

// sortedAttrs orders specifiers as FunC requires: impure, inline, method_id.
func sortedAttrs(attrs []funcast.Attr) []funcast.Attr {
	out := append([]funcast.Attr(nil), attrs...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Kind < out[j].Kind })
	return out
}

func (p *printer) typ(t funcast.Type, signature bool) string {
	switch t := t.(type) {
	case nil:
		return "var"
	case *funcast.BasicType:
		return t.Name
	case *funcast.HoleType:
		if signature {
			return "_"
		}
		return "var"
	case *funcast.TensorType:
		return "(" + p.types(t.Elems) + ")"
	case *funcast.TupleType:
		return "[" + p.types(t.Elems) + "]"
	}
	p.fail("funcfmt: unsupported type %T", t)
	return ""
}

func (p *printer) types(ts []funcast.Type) string {
	parts := make([]string, len(ts))
	for i, t := range ts {
		parts[i] = p.typ(t, true)
	}
	return strings.Join(parts, ", ")
}

func (p *printer) stmts(body []funcast.Stmt) {
	for _, s := range body {
		p.stmt(s)
	}
}

func (p *printer) stmt(s funcast.Stmt) {
	switch s := s.(type) {
	case *funcast.VarDef:
		head := p.typ(s.Type, false) + " " + p.exprString(s.Target)
		if s.Init == nil {
			p.line(head + ";")
			return
		}
		p.line(head + " = " + p.exprString(s.Init) + ";")
	case *funcast.ExprStmt:
		p.line(p.exprString(s.X) + ";")
	case *funcast.Return:
		if s.Value == nil {
			p.line("return ();")
			return
		}
		p.line("return " + p.exprString(s.Value) + ";")
	case *funcast.If:
		p.line("if (" + p.exprString(s.Cond) + ") {")
		p.depth++
		p.stmts(s.Then)
		p.depth--
		if len(s.Else) > 0 {
			p.line("} else {")
			p.depth++
			p.stmts(s.Else)
			p.depth--
		}
		p.line("}")
	case *funcast.CommentStmt:
		if strings.ContainsAny(s.Text, "\r\n") {
			p.fail("funcfmt: line break in comment %q", s.Text)
			return
		}
		p.line(";; " + s.Text)
	case *funcast.Verbatim:
		for _, l := range strings.Split(s.Text, "\n") {
			p.line(l)
		}
	default:
		p.fail("funcfmt: unsupported statement %T", s)
	}
}

func (p *printer) exprString(x funcast.Expr) string {
	sub := &printer{}
	sub.expr(x)
	if sub.err != nil && p.err == nil {
		p.err = sub.err
	}
	return sub.b.String()
}

func (p *printer) expr(x funcast.Expr) {
	switch x := x.(type) {
	case *funcast.Ident:
		p.b.WriteString(x.Name)
	case *funcast.Number:
		if x.Value == nil {
			p.fail("funcfmt: number without value")
			return
		}
		if x.Hex && x.Value.Sign() >= 0 {
			p.b.WriteString("0x")
			p.b.WriteString(x.Value.Text(16))
			return
		}
		p.b.WriteString(x.Value.String())
	case *funcast.Bool:
		if x.Value {
			p.b.WriteString("true")
		} else {
			p.b.WriteString("false")
		}
	case *funcast.String:
		if strings.ContainsAny(x.Value, "\"\r\n") {
			p.fail("funcfmt: string literal %q cannot be written without escapes", x.Value)
			return
		}
		p.b.WriteByte('"')
		p.b.WriteString(x.Value)
		p.b.WriteByte('"')
		p.b.WriteString(x.Suffix)
	case *funcast.Call:
		if x.Receiver != nil {
			p.operand(x.Receiver)
			if x.Modify {
				p.b.WriteByte('~')
			} else {
				p.b.WriteByte('.')
			}
		}
		p.b.WriteString(x.Fn)
		p.b.WriteByte('(')
		p.list(x.Args)
		p.b.WriteByte(')')
	case *funcast.Binary:
		p.operand(x.Left)
		p.b.WriteString(" " + x.Op + " ")
		p.operand(x.Right)
	case *funcast.Unary:
		p.b.WriteString(x.Op)
		p.operand(x.X)
	case *funcast.TensorExpr:
		p.b.WriteByte('(')
		p.list(x.Elems)
		p.b.WriteByte(')')
	case *funcast.Ternary:
		p.operand(x.Cond)
		p.b.WriteString(" ? ")
		p.operand(x.Then)
		p.b.WriteString(" : ")
		p.operand(x.Else)
	case *funcast.Assign:
		op := x.Op
		if op == "" {
			op = "="
		}
		p.expr(x.Target)
		p.b.WriteString(" " + op + " ")
		p.expr(x.Value)
	case *funcast.RawExpr:
		p.b.WriteString(x.Text)
	default:
		p.fail("funcfmt: unsupported expression %T", x)
	}
}

// operand renders x, parenthesized when it is itself an operator expression.
func (p *printer) operand(x funcast.Expr) {
	switch x.(type) {
	case *funcast.Binary, *funcast.Ternary, *funcast.Assign, *funcast.Unary:
		p.b.WriteByte('(')
		p.expr(x)
		p.b.WriteByte(')')
	default:
		p.expr(x)
	}
}

func (p *printer) list(xs []funcast.Expr) {
	for i, x := range xs {
		if i > 0 {
			p.b.WriteString(", ")
		}
		p.expr(x)
	}
}
