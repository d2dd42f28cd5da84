// Package opcode computes the numeric identifiers used by generated dispatch
// code: message headers, comment pseudo-opcodes and get-method ids.
//
// A comment pseudo-opcode is the representation hash of the cell a wallet
// sends for a text comment, so the router can compare slice_hash(in_msg)
// against a constant instead of comparing strings at run time.
package opcode
