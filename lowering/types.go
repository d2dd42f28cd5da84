package lowering

import (
	"github.com/wippyai/tvm-codegen/errors"
	"github.com/wippyai/tvm-codegen/funcast"
	"github.com/wippyai/tvm-codegen/internal/names"
	"github.com/wippyai/tvm-codegen/schema"
)

// BouncedBits is the payload space left in a bounced message after the
// 32-bit bounce tag and the 32-bit header.
const BouncedBits = 224

// Tensors maps struct-like types to tensors of their field types.
// Optional structs become tuples so they can hold null.
type Tensors struct {
	graph *schema.Graph
}

// NewTensors returns a Types implementation over g.
func NewTensors(g *schema.Graph) *Tensors {
	return &Tensors{graph: g}
}

func (t *Tensors) Type(ref schema.TypeRef) (funcast.Type, error) {
	switch ref.Kind {
	case schema.RefVoid:
		return funcast.UnitType(), nil
	case schema.RefMap:
		return funcast.CellType(), nil
	case schema.RefBounced:
		return t.BouncedType(ref.Name)
	case schema.RefNull:
		return nil, errors.InvalidInput(errors.PhaseLower, nil, "null has no representation")
	}

	switch ref.Name {
	case schema.TypeInt, schema.TypeBool:
		return funcast.IntType(), nil
	case schema.TypeAddress, schema.TypeSlice, schema.TypeString:
		return funcast.SliceType(), nil
	case schema.TypeCell:
		return funcast.CellType(), nil
	case schema.TypeBuilder:
		return funcast.BuilderType(), nil
	}

	td, err := t.lookup(ref.Name)
	if err != nil {
		return nil, err
	}
	if ref.Optional {
		return funcast.TupleAny(), nil
	}
	return t.tensor(td.Fields)
}

func (t *Tensors) BouncedType(typeName string) (funcast.Type, error) {
	td, err := t.lookup(typeName)
	if err != nil {
		return nil, err
	}
	return t.tensor(BouncedFields(td))
}

func (t *Tensors) Unpack(typeName, name string, bounced bool) (funcast.Expr, error) {
	td, err := t.lookup(typeName)
	if err != nil {
		return nil, err
	}
	fields := td.Fields
	if bounced {
		fields = BouncedFields(td)
	}
	if len(fields) == 0 {
		return funcast.Id(name), nil
	}
	elems := make([]funcast.Expr, len(fields))
	for i, f := range fields {
		elems[i] = funcast.Id(names.Field(name, f.Name))
	}
	return funcast.Values(elems...), nil
}

func (t *Tensors) lookup(name string) (*schema.TypeDescription, error) {
	td, ok := t.graph.Type(name)
	if !ok || td.Kind == schema.KindPrimitive {
		return nil, errors.NotFound(errors.PhaseLower, "struct type", name)
	}
	return td, nil
}

func (t *Tensors) tensor(fields []schema.Field) (funcast.Type, error) {
	elems := make([]funcast.Type, len(fields))
	for i, f := range fields {
		ft, err := t.Type(f.Type)
		if err != nil {
			return nil, err
		}
		elems[i] = ft
	}
	return funcast.Tensor(elems...), nil
}

// BouncedFields returns the leading fields of td that fit into the bounced
// payload. Truncation stops at the first field that does not fit or whose
// width is not fixed.
func BouncedFields(td *schema.TypeDescription) []schema.Field {
	used := 0
	for i, f := range td.Fields {
		w := fieldBits(f)
		if w < 0 || used+w > BouncedBits {
			return td.Fields[:i]
		}
		used += w
	}
	return td.Fields
}

func fieldBits(f schema.Field) int {
	if f.Type.Kind != schema.RefNamed {
		return -1
	}
	w := f.Bits
	if w == 0 {
		switch f.Type.Name {
		case schema.TypeInt:
			w = 257
		case schema.TypeBool:
			w = 1
		case schema.TypeAddress:
			w = 267
		default:
			return -1
		}
	}
	if f.Type.Optional {
		w++
	}
	return w
}
