// Package schema describes the resolved contract graph consumed by the code
// generator: types, receivers with their selectors, and functions.
//
// The graph is produced once by the front end (parser, type checker, header
// allocation) and is read-only afterwards. It can also be decoded from YAML
// with Load or Parse, which validate receiver invariants before returning.
//
// Selectors form a closed set of twelve variants. Exhaustive handling is a
// compile-time property: implement SelectorVisitor and call VisitSelector.
package schema
