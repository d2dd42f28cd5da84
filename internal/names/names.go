// Package names derives the identifiers of generated FunC functions.
//
// Every name is a pure function of its inputs, so the router and the
// receiver emitter compute the same handler name independently.
package names

import (
	"github.com/wippyai/tvm-codegen/opcode"
	"github.com/wippyai/tvm-codegen/schema"
)

// FuncID maps a symbol to its generated identifier: "$" + x.
func FuncID(x string) string { return "$" + x }

// Type returns the identifier prefix of a type, "$T$".
func Type(name string) string { return FuncID(name) + "$" }

// Receiver returns the name of the function generated for a receiver.
//
//	$C$_<dir>_binary_<T>
//	$C$_<dir>_empty
//	$C$_<dir>_text_<hash>
//	$C$_<dir>_any_text
//	$C$_<dir>_any
//	$C$_receive_binary_bounce_<T>
//	$C$_receive_bounce_fallback
func Receiver(contract string, sel schema.Selector) (string, error) {
	r, err := schema.VisitSelector[nameResult](sel, receiverNamer{prefix: Type(contract) + "_"})
	if err != nil {
		return "", err
	}
	return r.name, r.err
}

type nameResult struct {
	err  error
	name string
}

type receiverNamer struct {
	prefix string
}

func (n receiverNamer) Binary(s schema.Binary) nameResult {
	return nameResult{name: n.prefix + s.Dir.String() + "_binary_" + s.Type}
}

func (n receiverNamer) Empty(s schema.Empty) nameResult {
	return nameResult{name: n.prefix + s.Dir.String() + "_empty"}
}

func (n receiverNamer) Comment(s schema.Comment) nameResult {
	h, err := opcode.CommentHash(s.Text)
	if err != nil {
		return nameResult{err: err}
	}
	return nameResult{name: n.prefix + s.Dir.String() + "_text_" + h.Hex()}
}

func (n receiverNamer) CommentFallback(s schema.CommentFallback) nameResult {
	return nameResult{name: n.prefix + s.Dir.String() + "_any_text"}
}

func (n receiverNamer) Fallback(s schema.Fallback) nameResult {
	return nameResult{name: n.prefix + s.Dir.String() + "_any"}
}

func (n receiverNamer) BounceBinary(s schema.BounceBinary) nameResult {
	return nameResult{name: n.prefix + "receive_binary_bounce_" + s.Type}
}

func (n receiverNamer) BounceFallback(schema.BounceFallback) nameResult {
	return nameResult{name: n.prefix + "receive_bounce_fallback"}
}

// Router returns the dispatch function of a contract for one direction.
func Router(contract string, dir schema.Direction) string {
	return Type(contract) + "_contract_router_" + dir.String()
}

// ContractLoad returns the state loader of a contract.
func ContractLoad(contract string) string { return Type(contract) + "_contract_load" }

// ContractStore returns the state persister of a contract.
func ContractStore(contract string) string { return Type(contract) + "_contract_store" }

// Load returns the deserializer of a message or struct type.
func Load(typeName string) string { return Type(typeName) + "_load" }

// LoadBounced returns the deserializer of the truncated bounced form.
func LoadBounced(typeName string) string { return Type(typeName) + "_load_bounced" }

// ToExternal returns the struct-to-tuple packer used by getters.
func ToExternal(typeName string) string { return Type(typeName) + "_to_external" }

// ToOptExternal returns the nullable struct packer used by getters.
func ToOptExternal(typeName string) string { return Type(typeName) + "_to_opt_external" }

// FromTuple returns the tuple-to-struct unpacker used by getter arguments.
func FromTuple(typeName string) string { return Type(typeName) + "_from_tuple" }

// FromOptTuple returns the nullable tuple unpacker.
func FromOptTuple(typeName string) string { return Type(typeName) + "_from_opt_tuple" }

// Extension returns the name of a function owned by a type.
func Extension(self, fn string) string { return Type(self) + "_fun_" + fn }

// Global returns the name of a free function.
func Global(fn string) string { return FuncID("global_" + fn) }

// Getter returns the name of a get-method wrapper.
func Getter(name string) string { return "%" + name }

// Var returns the generated name of a local or parameter.
func Var(name string) string { return FuncID(name) }

// ExternalVar returns the name a getter parameter has before unwrapping.
func ExternalVar(name string) string { return FuncID(FuncID(name)) }

// Field returns the unpacked local holding a field of a struct value.
func Field(value, field string) string { return value + "'" + field }
