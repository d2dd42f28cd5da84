package funcast

// Type is a FunC type expression.
type Type interface {
	isType()
}

// BasicType is a builtin atomic type such as int, cell or slice.
type BasicType struct {
	Name string
}

// TensorType is a parenthesized list of types. The empty tensor is the unit
// type ().
type TensorType struct {
	Elems []Type
}

// TupleType is a bracketed TVM tuple type.
type TupleType struct {
	Elems []Type
}

// HoleType is an inferred type: "var" in declarations, "_" in signatures.
type HoleType struct{}

func (*BasicType) isType()  {}
func (*TensorType) isType() {}
func (*TupleType) isType()  {}
func (*HoleType) isType()   {}

// Builtin type constructors.
func IntType() *BasicType     { return &BasicType{Name: "int"} }
func CellType() *BasicType    { return &BasicType{Name: "cell"} }
func SliceType() *BasicType   { return &BasicType{Name: "slice"} }
func BuilderType() *BasicType { return &BasicType{Name: "builder"} }
func ContType() *BasicType    { return &BasicType{Name: "cont"} }
func TupleAny() *BasicType    { return &BasicType{Name: "tuple"} }

// UnitType returns the empty tensor ().
func UnitType() *TensorType { return &TensorType{} }

// Hole returns the inferred type.
func Hole() *HoleType { return &HoleType{} }

// Tensor returns a tensor type of elems.
func Tensor(elems ...Type) *TensorType { return &TensorType{Elems: elems} }

// Tuple returns a tuple type of elems.
func Tuple(elems ...Type) *TupleType { return &TupleType{Elems: elems} }

// IsUnit reports whether t is the unit type.
func IsUnit(t Type) bool {
	tt, ok := t.(*TensorType)
	return ok && len(tt.Elems) == 0
}
