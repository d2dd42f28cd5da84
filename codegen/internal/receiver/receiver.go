// Package receiver emits the FunC function run by one receiver.
package receiver

import (
	"strconv"

	"github.com/wippyai/tvm-codegen/errors"
	"github.com/wippyai/tvm-codegen/funcast"
	"github.com/wippyai/tvm-codegen/internal/names"
	"github.com/wippyai/tvm-codegen/lowering"
	"github.com/wippyai/tvm-codegen/schema"
)

var selfVar = names.Var("self")

// Emit returns the handler of r on contract:
//
//	((State), ()) <name>((State) $self[, <payload> $<name>]) impure inline
//
// The body unpacks $self, unpacks a typed payload, runs the lowered
// statements and, unless the last one returns, appends
// return (<self unpack>, ()).
func Emit(contract *schema.TypeDescription, r schema.ReceiverDescription, set lowering.Set) (*funcast.FunctionDefinition, error) {
	name, err := names.Receiver(contract.Name, r.Selector)
	if err != nil {
		return nil, err
	}

	state, err := set.Types.Type(schema.Ref(contract.Name))
	if err != nil {
		return nil, lowerErr(contract.Name, name, "self", err)
	}
	self, err := set.Types.Unpack(contract.Name, selfVar, false)
	if err != nil {
		return nil, lowerErr(contract.Name, name, "self", err)
	}

	pl, err := schema.VisitSelector[payloadResult](r.Selector, payloads{types: set.Types})
	if err != nil {
		return nil, err
	}
	if pl.err != nil {
		return nil, lowerErr(contract.Name, name, "payload", pl.err)
	}

	def := &funcast.FunctionDefinition{
		Return: funcast.Tensor(state, funcast.UnitType()),
		Name:   name,
		Attrs:  []funcast.Attr{funcast.Impure(), funcast.Inline()},
		Params: []funcast.Param{funcast.P(state, selfVar)},
	}
	if !isIdent(self, selfVar) {
		def.Body = append(def.Body, funcast.Var(self, funcast.Id(selfVar)))
	}
	if pl.param != nil {
		def.Params = append(def.Params, *pl.param)
		if pl.unpack != nil && !isIdent(pl.unpack, pl.param.Name) {
			def.Body = append(def.Body, funcast.Var(pl.unpack, funcast.Id(pl.param.Name)))
		}
	}

	for i, stmt := range r.Body {
		s, err := set.Statements.Lower(stmt, self)
		if err != nil {
			return nil, lowerErr(contract.Name, name, "body."+strconv.Itoa(i), err)
		}
		def.Body = append(def.Body, s)
	}

	if !funcast.EndsWithReturn(def.Body) {
		def.Body = append(def.Body, funcast.Ret(funcast.Values(self, funcast.Unit())))
	}
	return def, nil
}

// payloadResult describes the second parameter of a handler, if any.
type payloadResult struct {
	err    error
	param  *funcast.Param
	unpack funcast.Expr // nil for untyped payloads
}

type payloads struct {
	types lowering.Types
}

func (p payloads) typed(typeName, name string, bounced bool) payloadResult {
	var (
		t   funcast.Type
		err error
	)
	if bounced {
		t, err = p.types.BouncedType(typeName)
	} else {
		t, err = p.types.Type(schema.Ref(typeName))
	}
	if err != nil {
		return payloadResult{err: err}
	}
	v := names.Var(orDefault(name))
	unpack, err := p.types.Unpack(typeName, v, bounced)
	if err != nil {
		return payloadResult{err: err}
	}
	param := funcast.P(t, v)
	return payloadResult{param: &param, unpack: unpack}
}

func (payloads) slice(name string) payloadResult {
	param := funcast.P(funcast.SliceType(), names.Var(orDefault(name)))
	return payloadResult{param: &param}
}

func (p payloads) Binary(s schema.Binary) payloadResult {
	return p.typed(s.Type, s.Name, false)
}

func (payloads) Empty(schema.Empty) payloadResult { return payloadResult{} }

func (payloads) Comment(schema.Comment) payloadResult { return payloadResult{} }

func (p payloads) CommentFallback(s schema.CommentFallback) payloadResult { return p.slice(s.Name) }

func (p payloads) Fallback(s schema.Fallback) payloadResult { return p.slice(s.Name) }

func (p payloads) BounceBinary(s schema.BounceBinary) payloadResult {
	return p.typed(s.Type, s.Name, s.Bounced)
}

func (p payloads) BounceFallback(s schema.BounceFallback) payloadResult { return p.slice(s.Name) }

func orDefault(name string) string {
	if name == "" {
		return "msg"
	}
	return name
}

func isIdent(x funcast.Expr, name string) bool {
	id, ok := x.(*funcast.Ident)
	return ok && id.Name == name
}

func lowerErr(contract, handler, where string, err error) error {
	return errors.Lowering(errors.PhaseReceive, []string{contract, handler, where}, err)
}
