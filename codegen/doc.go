// Package codegen turns the receivers of a TON contract into the FunC
// dispatch code the TVM runs.
//
// Generate produces an ordered funcast.Module holding one handler per
// receiver, a router per message direction, get-method wrappers,
// introspection getters and the recv_internal / recv_external entry
// points. Print it with funcfmt.
//
//	g, err := schema.Load("counter.yaml")
//	if err != nil {
//		return err
//	}
//	m, err := codegen.Generate(g, codegen.Config{Contract: "Counter", ABILink: link})
//	if err != nil {
//		return err
//	}
//	src, err := funcfmt.Print(m)
//
// # Routing
//
// A router tests an incoming message against its arms in a fixed order:
// bounced messages, binary headers, the empty message, exact text comments,
// any text comment, then the plain fallback. A message no arm claims makes
// the entry point throw 130 before state is stored.
//
// Simulator evaluates the same routing decisions against concrete message
// bodies, which is how the CLI's route command answers "which receiver
// handles this message".
package codegen
