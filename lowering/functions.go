package lowering

import (
	"strconv"

	"github.com/wippyai/tvm-codegen/errors"
	"github.com/wippyai/tvm-codegen/funcast"
	"github.com/wippyai/tvm-codegen/internal/names"
	"github.com/wippyai/tvm-codegen/schema"
)

// FunctionWriter emits contract functions as FunC extension functions:
//
//	((State), Ret) $C$_fun_<name>((State) $self, <params>) impure inline_ref
//
// and free functions as $global_<name>.
type FunctionWriter struct {
	types Types
	stmts Statements
}

// NewFunctionWriter returns a Functions implementation.
func NewFunctionWriter(types Types, stmts Statements) *FunctionWriter {
	return &FunctionWriter{types: types, stmts: stmts}
}

func (w *FunctionWriter) Write(fn *schema.FunctionDescription) (*funcast.FunctionDefinition, error) {
	ret, err := w.types.Type(fn.Returns)
	if err != nil {
		return nil, w.fail(fn, "returns", err)
	}

	var (
		def  = &funcast.FunctionDefinition{Return: ret}
		self funcast.Expr
	)
	if fn.Self != "" {
		selfType, err := w.types.Type(schema.Ref(fn.Self))
		if err != nil {
			return nil, w.fail(fn, "self", err)
		}
		self, err = w.types.Unpack(fn.Self, selfToken, false)
		if err != nil {
			return nil, w.fail(fn, "self", err)
		}
		def.Name = names.Extension(fn.Self, fn.Name)
		def.Return = funcast.Tensor(selfType, ret)
		def.Attrs = []funcast.Attr{funcast.Impure(), funcast.InlineRef()}
		def.Params = append(def.Params, funcast.P(selfType, selfToken))
		if !isName(self, selfToken) {
			def.Body = append(def.Body, funcast.Var(self, funcast.Id(selfToken)))
		}
	} else {
		def.Name = names.Global(fn.Name)
		def.Attrs = []funcast.Attr{funcast.Impure(), funcast.Inline()}
	}

	for _, p := range fn.Params {
		pt, err := w.types.Type(p.Type)
		if err != nil {
			return nil, w.fail(fn, p.Name, err)
		}
		def.Params = append(def.Params, funcast.P(pt, names.Var(p.Name)))
	}

	for i, stmt := range fn.Body {
		s, err := w.stmts.Lower(stmt, self)
		if err != nil {
			return nil, w.fail(fn, "body."+strconv.Itoa(i), err)
		}
		def.Body = append(def.Body, s)
	}

	if !funcast.EndsWithReturn(def.Body) {
		if fn.Returns.Kind != schema.RefVoid {
			return nil, errors.New(errors.PhaseLower, errors.KindInvalidInput).
				Path(owner(fn), fn.Name).
				Detail("function returning %s does not end with return", fn.Returns).
				Build()
		}
		if self != nil {
			def.Body = append(def.Body, funcast.Ret(funcast.Values(self, funcast.Unit())))
		} else {
			def.Body = append(def.Body, funcast.Ret(funcast.Unit()))
		}
	}
	return def, nil
}

func (w *FunctionWriter) fail(fn *schema.FunctionDescription, where string, err error) error {
	return errors.Lowering(errors.PhaseLower, []string{owner(fn), fn.Name, where}, err)
}

func owner(fn *schema.FunctionDescription) string {
	if fn.Self == "" {
		return "global"
	}
	return fn.Self
}

func isName(x funcast.Expr, name string) bool {
	id, ok := x.(*funcast.Ident)
	return ok && id.Name == name
}
