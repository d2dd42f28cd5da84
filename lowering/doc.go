// Package lowering defines the collaborators the code generator delegates to
// and ships reference implementations of them.
//
// The generator never lowers statements, lays out types or computes
// interface lists itself. It calls:
//
//   - Statements, to lower receiver and function body statements
//   - Types, to map source types to FunC types and unpack targets
//   - Functions, to emit contract and free functions
//   - Interfaces, to list the interfaces reported by supported_interfaces
//
// Default wires the reference implementations: Verbatim statements (target
// text taken as is), Tensors types (structs as tensors of their fields,
// optional structs as tuples, bounced payloads truncated to 224 bits),
// FunctionWriter and Declared.
package lowering
