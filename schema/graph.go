package schema

import (
	"github.com/wippyai/tvm-codegen/errors"
)

// Graph is a fully resolved set of types in declaration order.
type Graph struct {
	byName map[string]*TypeDescription
	types  []*TypeDescription
}

// NewGraph creates a graph holding only the primitive types.
func NewGraph() *Graph {
	g := &Graph{byName: make(map[string]*TypeDescription)}
	for _, name := range []string{TypeInt, TypeBool, TypeAddress, TypeCell, TypeSlice, TypeBuilder, TypeString} {
		t := &TypeDescription{Name: name, Kind: KindPrimitive}
		g.byName[name] = t
		g.types = append(g.types, t)
	}
	return g
}

// Add registers t. Names must be unique.
func (g *Graph) Add(t *TypeDescription) error {
	if t == nil || t.Name == "" {
		return errors.InvalidInput(errors.PhaseLoad, nil, "type without a name")
	}
	if _, exists := g.byName[t.Name]; exists {
		return errors.InvalidInput(errors.PhaseLoad, []string{t.Name}, "type declared more than once")
	}
	g.byName[t.Name] = t
	g.types = append(g.types, t)
	return nil
}

// Type looks up a type by name.
func (g *Graph) Type(name string) (*TypeDescription, bool) {
	t, ok := g.byName[name]
	return t, ok
}

// Types returns every type in declaration order, primitives first.
func (g *Graph) Types() []*TypeDescription {
	return g.types
}

// Contracts returns the contract types in declaration order.
func (g *Graph) Contracts() []*TypeDescription {
	var out []*TypeDescription
	for _, t := range g.types {
		if t.Kind == KindContract {
			out = append(out, t)
		}
	}
	return out
}

// Header returns the allocated header of the named type.
func (g *Graph) Header(name string) (uint32, bool) {
	t, ok := g.byName[name]
	if !ok || t.Header == nil {
		return 0, false
	}
	return *t.Header, true
}

// IsStruct reports whether name refers to a struct or message type.
func (g *Graph) IsStruct(name string) bool {
	t, ok := g.byName[name]
	return ok && (t.Kind == KindStruct || t.Kind == KindMessage)
}
