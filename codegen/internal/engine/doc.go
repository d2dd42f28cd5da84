// Package engine assembles one contract into a complete FunC module.
//
// The Writer drives the receiver emitter, the router generator and the
// entry-point assembler and places their output in a fixed order:
//
//	header comment
//	context globals
//	plain functions of every contract in the graph
//	receivers of the selected contract, in declaration order
//	get-method wrappers
//	supported_interfaces, get_abi_ipfs, lazy_deployment_completed
//	internal router, external router (if any external receiver)
//	recv_internal, recv_external (if any external receiver)
package engine
