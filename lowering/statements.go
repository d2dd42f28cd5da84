package lowering

import (
	"strings"

	"github.com/wippyai/tvm-codegen/errors"
	"github.com/wippyai/tvm-codegen/funcast"
	"github.com/wippyai/tvm-codegen/funcfmt"
	"github.com/wippyai/tvm-codegen/schema"
)

const selfToken = "$self"

// Verbatim lowers schema.RawStatement as target text. A bare $self token is
// replaced by the current self unpack expression; field references such as
// $self'counter are left alone.
type Verbatim struct{}

func (Verbatim) Lower(stmt schema.Statement, self funcast.Expr) (funcast.Stmt, error) {
	raw, ok := stmt.(schema.RawStatement)
	if !ok {
		kind := "<nil>"
		if stmt != nil {
			kind = stmt.StatementKind()
		}
		return nil, errors.New(errors.PhaseLower, errors.KindInvalidInput).
			Value(stmt).
			Detail("unsupported statement kind %q", kind).
			Build()
	}
	text := raw.Text
	if self != nil && strings.Contains(text, selfToken) {
		repl, err := funcfmt.Expression(self)
		if err != nil {
			return nil, errors.Wrap(errors.PhaseLower, errors.KindInvalidInput, err, "render self")
		}
		text = replaceSelf(text, repl)
	}
	return &funcast.Verbatim{Text: text, Return: raw.Return}, nil
}

// replaceSelf substitutes repl for every $self not continued by an
// identifier character or a field quote.
func replaceSelf(text, repl string) string {
	var b strings.Builder
	for {
		i := strings.Index(text, selfToken)
		if i < 0 {
			b.WriteString(text)
			return b.String()
		}
		end := i + len(selfToken)
		b.WriteString(text[:i])
		if end < len(text) && continuesIdent(text[end]) {
			b.WriteString(selfToken)
		} else {
			b.WriteString(repl)
		}
		text = text[end:]
	}
}

func continuesIdent(c byte) bool {
	return c == '\'' || c == '_' || c == '$' ||
		c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}
