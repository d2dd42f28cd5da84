// Package tvmcodegen generates the dispatch layer of TON smart contracts.
//
// Given a resolved contract description, it emits FunC definitions that
// decode incoming messages, route them to the matching receiver and run the
// load, handle, store cycle of the TVM entry points.
//
// # Architecture Overview
//
// The module is organized into packages with distinct responsibilities:
//
//	tvmcodegen/
//	├── schema/         Contract graph, selector sum type, YAML loader, validation
//	├── opcode/         Message headers, comment pseudo-opcodes, get-method ids
//	├── funcast/        FunC syntax tree and constructors
//	├── funcfmt/        FunC source printer
//	├── lowering/       Statement, type and function lowering collaborators
//	├── codegen/        Generate and Simulator
//	│   └── internal/
//	│       ├── router/    Routing plan, its FunC form and its evaluator
//	│       ├── receiver/  One handler function per receiver
//	│       ├── entry/     recv_internal, recv_external, getters, introspection
//	│       └── engine/    Module ordering and logging
//	├── errors/         Structured error types for debugging
//	└── cmd/tvmgen/     Command line: generate, route, inspect
//
// # Quick Start
//
//	g, err := schema.Load("counter.yaml")
//	if err != nil {
//		return err
//	}
//	m, err := codegen.Generate(g, codegen.Config{Contract: "Counter"})
//	if err != nil {
//		return err
//	}
//	src, err := funcfmt.Print(m)
//
// # Message Routing
//
// Every message body starts with an optional 32-bit op code:
//
//	op                 body                     receiver
//	─────────────────────────────────────────────────────────────
//	header of T        T fields                 binary<T>
//	0, or absent       nothing else             empty
//	0                  UTF-8 text               comment "text", else any text
//	anything           anything                 fallback
//
// Bounced internal messages carry 0xFFFFFFFF before the original op and are
// routed to bounce receivers only. Text receivers compare the representation
// hash of the whole body cell, so a literal is matched by content.
//
// # Error Handling
//
// Generation errors are *errors.Error values carrying a Phase and a Kind:
//
//	_, err := codegen.Generate(g, cfg)
//	if errors.IsKind(err, errors.KindDuplicateSelector) {
//		// two receivers claim the same message
//	}
//
// The only error raised by generated code is exit code 130, thrown when no
// receiver handles a message.
package tvmcodegen
