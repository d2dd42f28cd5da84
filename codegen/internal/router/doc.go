// Package router builds and lowers the dispatch function of a contract.
//
// Build turns the receivers of one direction into a Plan, the ordered list
// of arms a message is tested against. Lower emits the Plan as a FunC
// function and Route evaluates it against a concrete message body, so the
// emitted code and its reference model come from the same structure.
//
// Arm order is fixed: bounced messages first (internal only), then binary
// headers, the empty message, exact text comments, any text comment, and
// finally the plain fallback. The first matching arm wins.
package router
