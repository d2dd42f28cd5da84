package lowering

import (
	"github.com/wippyai/tvm-codegen/errors"
	"github.com/wippyai/tvm-codegen/funcast"
	"github.com/wippyai/tvm-codegen/schema"
)

// Statements lowers one body statement. self is the expression that
// currently holds the unpacked contract state; lowered code that returns
// must return it as the first tensor element.
type Statements interface {
	Lower(stmt schema.Statement, self funcast.Expr) (funcast.Stmt, error)
}

// Types maps source types to FunC types and unpack targets.
type Types interface {
	// Type returns the FunC representation of ref.
	Type(ref schema.TypeRef) (funcast.Type, error)

	// BouncedType returns the representation of bounced<typeName>.
	BouncedType(typeName string) (funcast.Type, error)

	// Unpack returns the destructuring target exposing the fields of a
	// value named name. Types without fields unpack to the name itself.
	Unpack(typeName, name string, bounced bool) (funcast.Expr, error)
}

// Functions emits the FunC definition of a contract or free function.
type Functions interface {
	Write(fn *schema.FunctionDescription) (*funcast.FunctionDefinition, error)
}

// Interfaces lists the interfaces a type reports through
// supported_interfaces, excluding the introspection base interface.
type Interfaces interface {
	Interfaces(t *schema.TypeDescription) []string
}

// Set bundles the collaborators the generator needs.
type Set struct {
	Statements Statements
	Types      Types
	Functions  Functions
	Interfaces Interfaces
}

// Default returns the reference collaborators for g: verbatim statements,
// tensor types, extension functions and declared interfaces.
func Default(g *schema.Graph) Set {
	types := NewTensors(g)
	stmts := Verbatim{}
	return Set{
		Statements: stmts,
		Types:      types,
		Functions:  NewFunctionWriter(types, stmts),
		Interfaces: Declared{},
	}
}

// Validate reports a missing collaborator.
func (s Set) Validate() error {
	switch {
	case s.Statements == nil:
		return errors.InvalidInput(errors.PhaseLower, []string{"Statements"}, "collaborator not set")
	case s.Types == nil:
		return errors.InvalidInput(errors.PhaseLower, []string{"Types"}, "collaborator not set")
	case s.Functions == nil:
		return errors.InvalidInput(errors.PhaseLower, []string{"Functions"}, "collaborator not set")
	case s.Interfaces == nil:
		return errors.InvalidInput(errors.PhaseLower, []string{"Interfaces"}, "collaborator not set")
	}
	return nil
}

// Declared reports the interface list precomputed on the type.
type Declared struct{}

func (Declared) Interfaces(t *schema.TypeDescription) []string {
	return t.Interfaces
}
