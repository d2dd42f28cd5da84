// Package funcast defines the FunC syntax tree produced by the code
// generator: modules of comments, globals and function definitions, and the
// statements, expressions and types inside them.
//
// Nodes are plain pointers to structs; each category (Type, Expr, Stmt,
// Entry) is a sealed interface. Short constructors in build.go keep
// generator code close to the shape of the emitted source:
//
//	funcast.IfThen(funcast.Bin(funcast.Id("op"), "==", funcast.HexUint(h)),
//	    funcast.Do(funcast.ModifyCall(funcast.Id("self"), handler, funcast.Id("msg"))),
//	    funcast.Ret(funcast.Values(funcast.Id("self"), funcast.True())),
//	)
//
// Rendering to text lives in package funcfmt.
package funcast
