package router

import (
	"strconv"

	f "github.com/wippyai/tvm-codegen/funcast"
	"github.com/wippyai/tvm-codegen/internal/names"
	"github.com/wippyai/tvm-codegen/opcode"
)

// Router-local identifiers.
const (
	selfVar    = "self"
	msgVar     = "in_msg"
	bouncedVar = "msg_bounced"
	opVar      = "op"
	textOpVar  = "text_op"
	payloadVar = "msg"
)

// Lower renders p as a FunC function over the contract state type:
//
//	((State), int) <name>((State) self, [int msg_bounced,] slice in_msg) impure inline_ref
func Lower(p *Plan, state f.Type) *f.FunctionDefinition {
	def := &f.FunctionDefinition{
		Name:   p.Name(),
		Return: f.Tensor(state, f.IntType()),
		Attrs:  []f.Attr{f.Impure(), f.InlineRef()},
		Params: []f.Param{f.P(state, selfVar)},
	}
	if p.HandlesBounce() {
		def.Params = append(def.Params, f.P(f.IntType(), bouncedVar))
	}
	def.Params = append(def.Params, f.P(f.SliceType(), msgVar))

	if p.HandlesBounce() {
		def.Body = append(def.Body,
			f.Note("Handle bounced messages"),
			f.IfThen(f.Id(bouncedVar), lowerBounce(p)...),
		)
	}

	def.Body = append(def.Body, f.Note("Parse incoming message"))
	def.Body = append(def.Body, decodeOp(OpBits)...)

	for _, br := range p.Binary {
		def.Body = append(def.Body,
			f.Note("Receive "+br.Type+" message"),
			f.IfThen(opEquals(br.Header),
				f.Var(f.Id(payloadVar), f.ModifyCall(f.Id(msgVar), names.Load(br.Type))),
				invoke(br.Handler, f.Id(payloadVar)),
				done(true),
			),
		)
	}

	if p.Empty != nil {
		def.Body = append(def.Body,
			f.Note("Receive empty message"),
			f.IfThen(
				f.Bin(f.Bin(f.Id(opVar), "==", f.Int(0)), "&", f.Bin(bits(), "<=", f.Int(OpBits))),
				invoke(p.Empty.Handler),
				done(true),
			),
		)
	}

	if len(p.Comments) > 0 || p.CommentFallback != nil {
		var text []f.Stmt
		if len(p.Comments) > 0 {
			text = append(text, f.Var(f.Id(textOpVar), f.Apply("slice_hash", f.Id(msgVar))))
		}
		for _, br := range p.Comments {
			text = append(text,
				f.Note("Receive "+strconv.Quote(br.Text)+" message"),
				f.IfThen(f.Bin(f.Id(textOpVar), "==", f.Hex(br.Hash.Int())),
					invoke(br.Handler),
					done(true),
				),
			)
		}
		if p.CommentFallback != nil {
			text = append(text,
				f.Note("Receive any text message"),
				f.IfThen(f.Bin(bits(), ">=", f.Int(opcode.CommentPrefixBits)),
					invoke(p.CommentFallback.Handler, f.MethodCall(f.Id(msgVar), "skip_bits", f.Int(opcode.CommentPrefixBits))),
					done(true),
				),
			)
		}
		def.Body = append(def.Body,
			f.Note("Text Receivers"),
			f.IfThen(f.Bin(f.Id(opVar), "==", f.Int(0)), text...),
		)
	}

	if p.Fallback != nil {
		def.Body = append(def.Body,
			f.Note("Receiver fallback"),
			invoke(p.Fallback.Handler, f.Id(msgVar)),
			done(true),
		)
	} else {
		def.Body = append(def.Body, done(false))
	}
	return def
}

func lowerBounce(p *Plan) []f.Stmt {
	var body []f.Stmt
	if p.HasBounceArms() {
		body = append(body,
			f.Note("Skip 0xFFFFFFFF"),
			f.Do(f.ModifyCall(f.Id(msgVar), "skip_bits", f.Int(OpBits))),
		)
	}
	if len(p.Bounce) > 0 {
		body = append(body, decodeOp(p.BounceOpGuard)...)
	}
	for _, br := range p.Bounce {
		load := names.Load(br.Type)
		if br.Bounced {
			load = names.LoadBounced(br.Type)
		}
		body = append(body,
			f.Note("Bounced handler for "+br.Type+" message"),
			f.IfThen(opEquals(br.Header),
				f.Var(f.Id(payloadVar), f.ModifyCall(f.Id(msgVar), load)),
				invoke(br.Handler, f.Id(payloadVar)),
				done(true),
			),
		)
	}
	if p.BounceFallback != nil {
		body = append(body,
			f.Note("Fallback bounce receiver"),
			invoke(p.BounceFallback.Handler, f.Id(msgVar)),
		)
	}
	return append(body, done(true))
}

// decodeOp reads the header without consuming it, or 0 when fewer than
// guard bits remain.
func decodeOp(guard uint) []f.Stmt {
	return []f.Stmt{
		f.Let(f.IntType(), opVar, f.Int(0)),
		f.IfThen(f.Bin(bits(), ">=", f.Int(int64(guard))),
			f.Do(f.Set(f.Id(opVar), f.MethodCall(f.Id(msgVar), "preload_uint", f.Int(OpBits)))),
		),
	}
}

func bits() f.Expr { return f.Apply("slice_bits", f.Id(msgVar)) }

func opEquals(h uint32) f.Expr {
	return f.Bin(f.Id(opVar), "==", f.HexUint(uint64(h)))
}

func invoke(handler string, args ...f.Expr) f.Stmt {
	return f.Do(f.ModifyCall(f.Id(selfVar), handler, args...))
}

func done(handled bool) f.Stmt {
	return f.Ret(f.Values(f.Id(selfVar), &f.Bool{Value: handled}))
}
