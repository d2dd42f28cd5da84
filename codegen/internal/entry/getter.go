package entry

import (
	"github.com/wippyai/tvm-codegen/errors"
	"github.com/wippyai/tvm-codegen/funcast"
	"github.com/wippyai/tvm-codegen/internal/names"
	"github.com/wippyai/tvm-codegen/lowering"
	"github.com/wippyai/tvm-codegen/opcode"
	"github.com/wippyai/tvm-codegen/schema"
)

const resVar = "res"

// Getters builds get-method wrappers for the functions of one graph.
type Getters struct {
	graph *schema.Graph
	types lowering.Types
	ids   opcode.Resolver
}

// NewGetters returns a getter builder.
func NewGetters(g *schema.Graph, types lowering.Types, ids opcode.Resolver) *Getters {
	return &Getters{graph: g, types: types, ids: ids}
}

// Getter wraps fn as an externally callable get-method:
//
//	_ %<name>(<external params>) method_id(<id>)
//
// Each parameter arrives in its external form as $$<name> and is unwrapped
// into $<name>. Struct results are packed back into tuples.
func (b *Getters) Getter(fn *schema.FunctionDescription) (*funcast.FunctionDefinition, error) {
	if fn.Self == "" {
		return nil, errors.MissingSelf(fn.Name)
	}
	if _, ok := b.graph.Type(fn.Self); !ok {
		return nil, errors.MissingSelf(fn.Name)
	}

	def := &funcast.FunctionDefinition{
		Return: funcast.Hole(),
		Name:   names.Getter(fn.Name),
		Attrs:  []funcast.Attr{funcast.MethodID(b.ids.MethodID(fn.Name))},
	}

	args := make([]funcast.Expr, 0, len(fn.Params))
	for _, p := range fn.Params {
		ext, err := b.externalType(p.Type)
		if err != nil {
			return nil, b.fail(fn, p.Name, err)
		}
		def.Params = append(def.Params, funcast.P(ext, names.ExternalVar(p.Name)))

		unwrap, err := b.unwrap(p)
		if err != nil {
			return nil, b.fail(fn, p.Name, err)
		}
		def.Body = append(def.Body, unwrap)
		args = append(args, funcast.Id(names.Var(p.Name)))
	}

	self := funcast.Id(selfVar)
	res := funcast.Id(resVar)
	def.Body = append(def.Body,
		funcast.Var(self, funcast.Apply(names.ContractLoad(fn.Self))),
		funcast.Var(res, funcast.ModifyCall(self, names.Extension(fn.Self, fn.Name), args...)),
	)

	ret := fn.Returns
	switch {
	case ret.Kind == schema.RefNamed && b.graph.IsStruct(ret.Name) && ret.Optional:
		def.Body = append(def.Body, funcast.Ret(funcast.Apply(names.ToOptExternal(ret.Name), res)))
	case ret.Kind == schema.RefNamed && b.graph.IsStruct(ret.Name):
		def.Body = append(def.Body, funcast.Ret(funcast.Apply(names.ToExternal(ret.Name), res)))
	default:
		def.Body = append(def.Body, funcast.Ret(res))
	}
	return def, nil
}

// externalType is the representation a get-method caller passes: structs
// travel as tuples.
func (b *Getters) externalType(ref schema.TypeRef) (funcast.Type, error) {
	if ref.Kind == schema.RefNamed && b.graph.IsStruct(ref.Name) {
		return funcast.TupleAny(), nil
	}
	return b.types.Type(ref)
}

func (b *Getters) unwrap(p schema.Param) (funcast.Stmt, error) {
	t, err := b.types.Type(p.Type)
	if err != nil {
		return nil, err
	}
	var (
		name = names.Var(p.Name)
		ext  = funcast.Id(names.ExternalVar(p.Name))
		init funcast.Expr
	)
	switch {
	case p.Type.Kind == schema.RefNamed && b.graph.IsStruct(p.Type.Name):
		fn := names.FromTuple(p.Type.Name)
		if p.Type.Optional {
			fn = names.FromOptTuple(p.Type.Name)
		}
		init = funcast.Apply(fn, ext)
	case p.Type.Kind == schema.RefNamed && p.Type.Name == schema.TypeAddress:
		init = funcast.Apply(verifyAddr, ext)
		if p.Type.Optional {
			init = funcast.Cond(funcast.Apply("null?", ext), funcast.Apply("null"), init)
		}
	default:
		init = ext
	}
	return funcast.Let(t, name, init), nil
}

func (b *Getters) fail(fn *schema.FunctionDescription, where string, err error) error {
	return errors.Lowering(errors.PhaseEntry, []string{fn.Self, fn.Name, where}, err)
}
