package lowering

import (
	"testing"

	"github.com/wippyai/tvm-codegen/errors"
	"github.com/wippyai/tvm-codegen/funcast"
	"github.com/wippyai/tvm-codegen/funcfmt"
	"github.com/wippyai/tvm-codegen/internal/testutil"
	"github.com/wippyai/tvm-codegen/schema"
)

func testGraph(t *testing.T) *schema.Graph {
	t.Helper()
	g := schema.NewGraph()
	h := uint32(0x1234abcd)
	add := func(td *schema.TypeDescription) {
		if err := g.Add(td); err != nil {
			t.Fatal(err)
		}
	}
	add(&schema.TypeDescription{Name: "Point", Kind: schema.KindStruct, Fields: []schema.Field{
		{Name: "x", Type: schema.Ref("Int")},
		{Name: "y", Type: schema.Ref("Int")},
	}})
	add(&schema.TypeDescription{Name: "Transfer", Kind: schema.KindMessage, Header: &h, Fields: []schema.Field{
		{Name: "amount", Type: schema.Ref("Int"), Bits: 64},
		{Name: "to", Type: schema.Ref("Address")},
		{Name: "memo", Type: schema.Ref("String")},
	}})
	add(&schema.TypeDescription{Name: "Empty", Kind: schema.KindContract})
	add(&schema.TypeDescription{Name: "Counter", Kind: schema.KindContract, Fields: []schema.Field{
		{Name: "counter", Type: schema.Ref("Int")},
		{Name: "owner", Type: schema.OptionalRef("Address")},
		{Name: "origin", Type: schema.OptionalRef("Point")},
		{Name: "balances", Type: schema.MapOf("Address", "Int")},
	}})
	return g
}

func render(t *testing.T, x any) string {
	t.Helper()
	var (
		s   string
		err error
	)
	switch x := x.(type) {
	case funcast.Expr:
		s, err = funcfmt.Expression(x)
	case funcast.Stmt:
		s, err = funcfmt.Statements([]funcast.Stmt{x})
	case *funcast.FunctionDefinition:
		s, err = funcfmt.Function(x)
	case funcast.Type:
		def := &funcast.FunctionDefinition{Return: x, Name: "f"}
		s, err = funcfmt.Function(def)
	}
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestTensors_Type(t *testing.T) {
	types := NewTensors(testGraph(t))
	tests := []struct {
		ref  schema.TypeRef
		want string
	}{
		{schema.Ref("Int"), "int f() {\n}\n"},
		{schema.Ref("Bool"), "int f() {\n}\n"},
		{schema.Ref("Address"), "slice f() {\n}\n"},
		{schema.OptionalRef("String"), "slice f() {\n}\n"},
		{schema.Ref("Cell"), "cell f() {\n}\n"},
		{schema.Ref("Builder"), "builder f() {\n}\n"},
		{schema.Void(), "() f() {\n}\n"},
		{schema.MapOf("Int", "Int"), "cell f() {\n}\n"},
		{schema.Ref("Point"), "(int, int) f() {\n}\n"},
		{schema.OptionalRef("Point"), "tuple f() {\n}\n"},
		{schema.Ref("Counter"), "(int, slice, tuple, cell) f() {\n}\n"},
		{schema.Ref("Empty"), "() f() {\n}\n"},
		{schema.BouncedRef("Transfer"), "(int) f() {\n}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.ref.String(), func(t *testing.T) {
			ft, err := types.Type(tt.ref)
			if err != nil {
				t.Fatal(err)
			}
			if got := render(t, ft); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTensors_Errors(t *testing.T) {
	types := NewTensors(testGraph(t))
	if _, err := types.Type(schema.Ref("Nope")); !errors.IsKind(err, errors.KindNotFound) {
		t.Errorf("unknown type: %v", err)
	}
	if _, err := types.Type(schema.TypeRef{Kind: schema.RefNull}); err == nil {
		t.Error("null should fail")
	}
	if _, err := types.Unpack("Int", "$x", false); err == nil {
		t.Error("primitive unpack should fail")
	}
}

func TestTensors_Unpack(t *testing.T) {
	types := NewTensors(testGraph(t))

	x, err := types.Unpack("Counter", "$self", false)
	if err != nil {
		t.Fatal(err)
	}
	if got := render(t, x); got != "($self'counter, $self'owner, $self'origin, $self'balances)" {
		t.Errorf("Unpack = %s", got)
	}

	x, _ = types.Unpack("Transfer", "$msg", true)
	if got := render(t, x); got != "($msg'amount)" {
		t.Errorf("bounced Unpack = %s", got)
	}

	x, _ = types.Unpack("Empty", "$self", false)
	if got := render(t, x); got != "$self" {
		t.Errorf("empty Unpack = %s", got)
	}
}

func TestBouncedFields(t *testing.T) {
	tests := []struct {
		name   string
		fields []schema.Field
		want   int
	}{
		{"fits", []schema.Field{{Type: schema.Ref("Int"), Bits: 64}, {Type: schema.Ref("Int"), Bits: 160}}, 2},
		{"exceeds", []schema.Field{{Type: schema.Ref("Int"), Bits: 64}, {Type: schema.Ref("Int"), Bits: 161}}, 1},
		{"default int too wide", []schema.Field{{Type: schema.Ref("Int")}}, 0},
		{"optional adds a bit", []schema.Field{{Type: schema.OptionalRef("Int"), Bits: 224}}, 0},
		{"ref stops", []schema.Field{{Type: schema.Ref("Bool")}, {Type: schema.Ref("Cell")}, {Type: schema.Ref("Bool")}}, 1},
		{"map stops", []schema.Field{{Type: schema.MapOf("Int", "Int")}}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BouncedFields(&schema.TypeDescription{Fields: tt.fields})
			if len(got) != tt.want {
				t.Errorf("kept %d fields, want %d", len(got), tt.want)
			}
		})
	}
}

func TestVerbatim(t *testing.T) {
	self := funcast.Values(funcast.Id("$self'counter"))
	tests := []struct {
		text string
		want string
		ret  bool
	}{
		{"$self'counter = $self'counter + 1;", "$self'counter = $self'counter + 1;\n", false},
		{"return ($self, $self'counter);", "return (($self'counter), $self'counter);\n", true},
		{"$selfish = $self;", "$selfish = ($self'counter);\n", false},
		{"return;", "return;\n", true},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			s, err := Verbatim{}.Lower(schema.RawStatement{Text: tt.text, Return: tt.ret}, self)
			if err != nil {
				t.Fatal(err)
			}
			if got := render(t, s); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
			if v := s.(*funcast.Verbatim); v.Return != tt.ret {
				t.Errorf("Return = %v", v.Return)
			}
		})
	}
}

type foreignStatement struct{}

func (foreignStatement) StatementKind() string { return "foreign" }

func TestVerbatim_Unsupported(t *testing.T) {
	_, err := Verbatim{}.Lower(foreignStatement{}, nil)
	if !errors.IsKind(err, errors.KindInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
	if _, err := (Verbatim{}).Lower(nil, nil); err == nil {
		t.Error("nil statement should fail")
	}
}

func TestFunctionWriter(t *testing.T) {
	g := testGraph(t)
	set := Default(g)
	if err := set.Validate(); err != nil {
		t.Fatal(err)
	}

	def, err := set.Functions.Write(&schema.FunctionDescription{
		Name:    "bump",
		Self:    "Counter",
		Params:  []schema.Param{{Name: "by", Type: schema.Ref("Int")}},
		Returns: schema.Void(),
		Body:    []schema.Statement{schema.RawStatement{Text: "$self'counter += $by;"}},
	})
	if err != nil {
		t.Fatal(err)
	}
	want := testutil.Dedent(`
		((int, slice, tuple, cell), ()) $Counter$_fun_bump((int, slice, tuple, cell) $self, int $by) impure inline_ref {
		    var ($self'counter, $self'owner, $self'origin, $self'balances) = $self;
		    $self'counter += $by;
		    return (($self'counter, $self'owner, $self'origin, $self'balances), ());
		}
	`)
	testutil.ExpectNoDiff(t, want, render(t, def))

	def, err = set.Functions.Write(&schema.FunctionDescription{
		Name:    "zero",
		Returns: schema.Ref("Int"),
		Body:    []schema.Statement{schema.RawStatement{Text: "return 0;", Return: true}},
	})
	if err != nil {
		t.Fatal(err)
	}
	testutil.ExpectNoDiff(t, "int $global_zero() impure inline {\n    return 0;\n}\n", render(t, def))

	def, err = set.Functions.Write(&schema.FunctionDescription{Name: "noop", Self: "Empty", Returns: schema.Void()})
	if err != nil {
		t.Fatal(err)
	}
	testutil.ExpectNoDiff(t, "((), ()) $Empty$_fun_noop(() $self) impure inline_ref {\n    return ($self, ());\n}\n", render(t, def))
}

func TestFunctionWriter_Errors(t *testing.T) {
	set := Default(testGraph(t))
	_, err := set.Functions.Write(&schema.FunctionDescription{Name: "f", Self: "Counter", Returns: schema.Ref("Int")})
	if !errors.IsKind(err, errors.KindInvalidInput) {
		t.Errorf("missing return: %v", err)
	}
	_, err = set.Functions.Write(&schema.FunctionDescription{Name: "f", Self: "Nope", Returns: schema.Void()})
	if !errors.IsKind(err, errors.KindLowering) {
		t.Errorf("unknown self: %v", err)
	}
}

func TestSet_Validate(t *testing.T) {
	if err := (Set{}).Validate(); err == nil {
		t.Error("empty set should fail")
	}
	if got := (Declared{}).Interfaces(&schema.TypeDescription{Interfaces: []string{"a"}}); len(got) != 1 {
		t.Errorf("Declared = %v", got)
	}
}
