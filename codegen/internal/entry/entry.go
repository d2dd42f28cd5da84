package entry

import (
	"github.com/wippyai/tvm-codegen/funcast"
	"github.com/wippyai/tvm-codegen/internal/names"
	"github.com/wippyai/tvm-codegen/opcode"
	"github.com/wippyai/tvm-codegen/schema"
)

// Context globals written by recv_internal.
const (
	ContextVar       = "__tact_context"
	ContextSenderVar = "__tact_context_sender"
)

const (
	selfVar    = "self"
	msgVar     = "in_msg"
	handledVar = "handled"
	bouncedVar = "msg_bounced"
	senderVar  = "msg_sender_addr"
	flagsVar   = "msg_flags"
	csVar      = "cs"
	valueVar   = "msg_value"
	cellVar    = "in_msg_cell"
	verifyAddr = "__tact_verify_address"
)

// ContextGlobals declares the message context globals.
//
//	global (int, slice, int, slice) __tact_context;
//	global slice __tact_context_sender;
func ContextGlobals() []funcast.Entry {
	return []funcast.Entry{
		funcast.Global(funcast.Tensor(funcast.IntType(), funcast.SliceType(), funcast.IntType(), funcast.SliceType()), ContextVar),
		funcast.Global(funcast.SliceType(), ContextSenderVar),
	}
}

// Internal returns recv_internal for contract:
//
//	() recv_internal(int msg_value, cell in_msg_cell, slice in_msg) impure
func Internal(contract string) *funcast.FunctionDefinition {
	cs := funcast.Id(csVar)
	body := []funcast.Stmt{
		funcast.Note("Context"),
		funcast.Var(cs, funcast.MethodCall(funcast.Id(cellVar), "begin_parse")),
		funcast.Var(funcast.Id(flagsVar), funcast.ModifyCall(cs, "load_uint", funcast.Int(4))),
		funcast.Var(funcast.Id(bouncedVar), funcast.Neg(funcast.Bin(funcast.Id(flagsVar), "&", funcast.Int(1)))),
		funcast.Let(funcast.SliceType(), senderVar, funcast.Apply(verifyAddr, funcast.ModifyCall(cs, "load_msg_addr"))),
		funcast.Do(funcast.Set(funcast.Id(ContextVar), funcast.Values(
			funcast.Id(bouncedVar), funcast.Id(senderVar), funcast.Id(valueVar), cs,
		))),
		funcast.Do(funcast.Set(funcast.Id(ContextSenderVar), funcast.Id(senderVar))),
	}
	body = append(body, lifecycle(contract, schema.Internal, funcast.Id(bouncedVar), funcast.Id(msgVar))...)

	return &funcast.FunctionDefinition{
		Return: funcast.UnitType(),
		Name:   "recv_internal",
		Attrs:  []funcast.Attr{funcast.Impure()},
		Params: []funcast.Param{
			funcast.P(funcast.IntType(), valueVar),
			funcast.P(funcast.CellType(), cellVar),
			funcast.P(funcast.SliceType(), msgVar),
		},
		Body: body,
	}
}

// External returns recv_external for contract:
//
//	() recv_external(slice in_msg) impure
func External(contract string) *funcast.FunctionDefinition {
	return &funcast.FunctionDefinition{
		Return: funcast.UnitType(),
		Name:   "recv_external",
		Attrs:  []funcast.Attr{funcast.Impure()},
		Params: []funcast.Param{funcast.P(funcast.SliceType(), msgVar)},
		Body:   lifecycle(contract, schema.External, funcast.Id(msgVar)),
	}
}

// lifecycle is load, route, assert, store. The order is load-bearing: the
// throw must precede the store.
func lifecycle(contract string, dir schema.Direction, routerArgs ...funcast.Expr) []funcast.Stmt {
	self := funcast.Id(selfVar)
	return []funcast.Stmt{
		funcast.Note("Load contract data"),
		funcast.Var(self, funcast.Apply(names.ContractLoad(contract))),
		funcast.Note("Handle operation"),
		funcast.Let(funcast.IntType(), handledVar, funcast.ModifyCall(self, names.Router(contract, dir), routerArgs...)),
		funcast.Note("Throw if not handled"),
		funcast.Do(funcast.Apply("throw_unless", funcast.Int(opcode.InvalidMessage), funcast.Id(handledVar))),
		funcast.Note("Persist state"),
		funcast.Do(funcast.Apply(names.ContractStore(contract), self)),
	}
}
