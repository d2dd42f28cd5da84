package funcast

// Module is an ordered list of top-level entries.
type Module struct {
	Entries []Entry
}

// Entry is a top-level module item.
type Entry interface {
	isEntry()
}

// Comment is a block of ;; lines. An empty line renders as a bare ;;.
type Comment struct {
	Lines []string
}

// GlobalVariable declares a global.
type GlobalVariable struct {
	Type Type
	Name string
}

// FunctionDefinition is a function with a body.
type FunctionDefinition struct {
	Return Type
	Name   string
	Attrs  []Attr
	Params []Param
	Body   []Stmt
}

// Param is a typed function parameter.
type Param struct {
	Type Type
	Name string
}

func (*Comment) isEntry()            {}
func (*GlobalVariable) isEntry()     {}
func (*FunctionDefinition) isEntry() {}

// AttrKind is a function specifier.
type AttrKind uint8

const (
	AttrImpure AttrKind = iota
	AttrInline
	AttrInlineRef
	AttrMethodID
)

// Attr is a function specifier. MethodID is set only for AttrMethodID with an
// explicit id.
type Attr struct {
	MethodID *uint32
	Kind     AttrKind
}

func (k AttrKind) String() string {
	switch k {
	case AttrImpure:
		return "impure"
	case AttrInline:
		return "inline"
	case AttrInlineRef:
		return "inline_ref"
	case AttrMethodID:
		return "method_id"
	}
	return "unknown"
}

// Append adds entries to the module.
func (m *Module) Append(entries ...Entry) {
	m.Entries = append(m.Entries, entries...)
}

// Functions returns the function definitions in module order.
func (m *Module) Functions() []*FunctionDefinition {
	var out []*FunctionDefinition
	for _, e := range m.Entries {
		if f, ok := e.(*FunctionDefinition); ok {
			out = append(out, f)
		}
	}
	return out
}

// Function finds a function definition by name.
func (m *Module) Function(name string) (*FunctionDefinition, bool) {
	for _, f := range m.Functions() {
		if f.Name == name {
			return f, true
		}
	}
	return nil, false
}

// HasAttr reports whether f carries the specifier.
func (f *FunctionDefinition) HasAttr(kind AttrKind) bool {
	for _, a := range f.Attrs {
		if a.Kind == kind {
			return true
		}
	}
	return false
}
