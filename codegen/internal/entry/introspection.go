package entry

import (
	"github.com/wippyai/tvm-codegen/funcast"
)

// IntrospectionInterface is always reported first by supported_interfaces.
const IntrospectionInterface = "org.ton.introspection.v0"

// SupportedInterfaces returns
//
//	_ supported_interfaces() method_id {
//	    return ("org.ton.introspection.v0"H >> 128, ...);
//	}
func SupportedInterfaces(interfaces []string) *funcast.FunctionDefinition {
	all := append([]string{IntrospectionInterface}, interfaces...)
	ids := make([]funcast.Expr, len(all))
	for i, name := range all {
		ids[i] = funcast.Bin(funcast.Str(name, "H"), ">>", funcast.Int(128))
	}
	return getter("supported_interfaces", funcast.Ret(funcast.Values(ids...)))
}

// ABILink returns get_abi_ipfs, which reports where the contract ABI lives.
func ABILink(link string) *funcast.FunctionDefinition {
	return getter("get_abi_ipfs", funcast.Ret(funcast.Str(link, "")))
}

// LazyDeployment returns lazy_deployment_completed, which reads the init
// flag from the first bit of the persisted data.
func LazyDeployment() *funcast.FunctionDefinition {
	data := funcast.MethodCall(funcast.Apply("get_data"), "begin_parse")
	return getter("lazy_deployment_completed", funcast.Ret(funcast.MethodCall(data, "load_int", funcast.Int(1))))
}

func getter(name string, body ...funcast.Stmt) *funcast.FunctionDefinition {
	return &funcast.FunctionDefinition{
		Return: funcast.Hole(),
		Name:   name,
		Attrs:  []funcast.Attr{funcast.MethodID(0)},
		Body:   body,
	}
}
