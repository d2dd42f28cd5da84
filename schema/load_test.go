package schema

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/wippyai/tvm-codegen/errors"
)

const counterYAML = `
types:
  - name: Increment
    kind: message
    header: "0x1234abcd"
    fields:
      - {name: by, type: Int, bits: 32}
  - name: Counter
    kind: contract
    interfaces: ["org.ton.counter"]
    fields:
      - {name: counter, type: Int}
      - {name: owner, type: "Address?"}
    receivers:
      - direction: internal
        kind: binary
        message: Increment
        body: ["$self'counter = $self'counter + $msg'by;"]
      - direction: internal
        kind: comment
        text: increment
        body: ["$self'counter = $self'counter + 1;"]
      - direction: internal
        kind: empty
      - direction: external
        kind: comment
        text: ""
      - direction: bounce
        kind: binary
        message: Increment
        bounced: true
    functions:
      - name: counter
        getter: true
        returns: Int
        body: ["return ($self, $self'counter);"]
      - name: add
        params: [{name: x, type: Int}]
        body: ["$self'counter += $x;"]
`

func TestParse_Counter(t *testing.T) {
	g, err := Parse([]byte(counterYAML), "counter.yaml")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	h, ok := g.Header("Increment")
	if !ok || h != 0x1234abcd {
		t.Errorf("Header(Increment) = %#x, %v", h, ok)
	}

	c, ok := g.Type("Counter")
	if !ok {
		t.Fatal("Counter not found")
	}
	if c.Kind != KindContract {
		t.Errorf("kind = %s", c.Kind)
	}
	if len(c.Receivers) != 5 {
		t.Fatalf("receivers = %d, want 5", len(c.Receivers))
	}

	want := []Selector{
		Binary{Dir: Internal, Type: "Increment", Name: "msg"},
		Comment{Dir: Internal, Text: "increment"},
		Empty{Dir: Internal},
		Comment{Dir: External, Text: ""},
		BounceBinary{Type: "Increment", Name: "msg", Bounced: true},
	}
	for i, w := range want {
		if c.Receivers[i].Selector != w {
			t.Errorf("receiver %d selector = %#v, want %#v", i, c.Receivers[i].Selector, w)
		}
	}
	if !c.HasExternal() || !c.HasBounce() {
		t.Errorf("HasExternal=%v HasBounce=%v", c.HasExternal(), c.HasBounce())
	}
	if c.Fields[1].Type != OptionalRef("Address") {
		t.Errorf("owner type = %v", c.Fields[1].Type)
	}

	getters := c.Getters()
	if len(getters) != 1 || getters[0].Name != "counter" {
		t.Fatalf("getters = %v", getters)
	}
	if getters[0].Self != "Counter" {
		t.Errorf("getter self = %q", getters[0].Self)
	}
	body := getters[0].Body
	if len(body) != 1 || !body[0].(RawStatement).Return {
		t.Errorf("getter body = %#v", body)
	}
	add, ok := c.Function("add")
	if !ok || add.Returns != Void() || len(add.Params) != 1 {
		t.Errorf("add = %#v", add)
	}
	if add.Body[0].StatementKind() != "raw" {
		t.Errorf("add body kind = %s", add.Body[0].StatementKind())
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		kind errors.Kind
	}{
		{
			name: "malformed yaml",
			doc:  "types: [",
			kind: errors.KindInvalidInput,
		},
		{
			name: "bad header",
			doc:  "types: [{name: M, kind: message, header: nope}]",
			kind: errors.KindInvalidInput,
		},
		{
			name: "unknown kind",
			doc:  "types: [{name: M, kind: enum}]",
			kind: errors.KindInvalidInput,
		},
		{
			name: "unknown direction",
			doc:  "types: [{name: C, kind: contract, receivers: [{direction: sideways, kind: empty}]}]",
			kind: errors.KindInvalidInput,
		},
		{
			name: "comment without text",
			doc:  "types: [{name: C, kind: contract, receivers: [{direction: internal, kind: comment}]}]",
			kind: errors.KindInvalidInput,
		},
		{
			name: "duplicate type",
			doc:  "types: [{name: C, kind: contract}, {name: C, kind: contract}]",
			kind: errors.KindInvalidInput,
		},
		{
			name: "duplicate fallback",
			doc:  "types: [{name: C, kind: contract, receivers: [{direction: internal, kind: fallback}, {direction: internal, kind: fallback}]}]",
			kind: errors.KindDuplicateSelector,
		},
		{
			name: "missing message type",
			doc:  "types: [{name: C, kind: contract, receivers: [{direction: internal, kind: binary, message: Nope}]}]",
			kind: errors.KindNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc), "test.yaml")
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.IsKind(err, tt.kind) {
				t.Errorf("error kind = %q, want %q (%v)", errors.KindOf(err), tt.kind, err)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "counter.yaml")
	if err := os.WriteFile(path, []byte(counterYAML), 0o600); err != nil {
		t.Fatal(err)
	}
	g, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(g.Contracts()) != 1 {
		t.Errorf("contracts = %d", len(g.Contracts()))
	}

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.IsKind(err, errors.KindNotFound) {
		t.Errorf("missing file error = %v", err)
	}
}
