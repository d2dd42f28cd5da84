package schema

// TypeKind categorizes a TypeDescription.
type TypeKind string

const (
	KindContract  TypeKind = "contract"
	KindStruct    TypeKind = "struct"
	KindMessage   TypeKind = "message"
	KindPrimitive TypeKind = "primitive"
	KindTrait     TypeKind = "trait"
)

// Primitive type names registered in every Graph.
const (
	TypeInt     = "Int"
	TypeBool    = "Bool"
	TypeAddress = "Address"
	TypeCell    = "Cell"
	TypeSlice   = "Slice"
	TypeBuilder = "Builder"
	TypeString  = "String"
)

// TypeDescription is a resolved contract, struct, message or primitive.
// It is produced by the resolution phase and never mutated afterwards.
type TypeDescription struct {
	Header     *uint32 // allocated message header, nil if none
	Name       string
	Kind       TypeKind
	Fields     []Field
	Receivers  []ReceiverDescription
	Functions  []*FunctionDescription
	Interfaces []string // precomputed supported interfaces, without the base one
}

// Field is a named member of a struct, message or contract.
type Field struct {
	Name string
	Type TypeRef
	Bits int // serialized width; 0 means the default width for the type
}

// ReceiverDescription binds a selector to the statements it runs.
type ReceiverDescription struct {
	Selector Selector
	Body     []Statement
}

// FunctionDescription is a getter or plain function owned by a type.
type FunctionDescription struct {
	Name     string
	Self     string // owning type name, empty for free functions
	Params   []Param
	Returns  TypeRef
	Body     []Statement
	IsGetter bool
}

// Param is a typed function parameter.
type Param struct {
	Name string
	Type TypeRef
}

// Statement is one statement of a receiver or function body. Concrete
// statement types belong to the front end; the generator only hands them to
// the statement lowering collaborator.
type Statement interface {
	StatementKind() string
}

// RawStatement is target-language text that lowers verbatim.
type RawStatement struct {
	Text   string
	Return bool // the statement leaves the function
}

func (s RawStatement) StatementKind() string {
	if s.Return {
		return "return"
	}
	return "raw"
}

// Function returns the function with the given name.
func (t *TypeDescription) Function(name string) (*FunctionDescription, bool) {
	for _, f := range t.Functions {
		if f.Name == name {
			return f, true
		}
	}
	return nil, false
}

// Getters returns the get-methods of t in declaration order.
func (t *TypeDescription) Getters() []*FunctionDescription {
	var out []*FunctionDescription
	for _, f := range t.Functions {
		if f.IsGetter {
			out = append(out, f)
		}
	}
	return out
}

// HasExternal reports whether any receiver accepts external messages.
func (t *TypeDescription) HasExternal() bool {
	for _, r := range t.Receivers {
		if !IsBounce(r.Selector) && DirectionOf(r.Selector) == External {
			return true
		}
	}
	return false
}

// HasBounce reports whether any receiver handles bounced messages.
func (t *TypeDescription) HasBounce() bool {
	for _, r := range t.Receivers {
		if IsBounce(r.Selector) {
			return true
		}
	}
	return false
}
