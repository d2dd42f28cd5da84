// Package entry assembles the functions the TVM calls directly: the
// recv_internal and recv_external entry points, get-method wrappers and
// the introspection getters.
//
// Entry points follow a fixed transaction lifecycle: load state, route,
// assert the message was handled, store state. A message nobody handles
// throws before the store, so persisted state is never partially updated.
package entry
