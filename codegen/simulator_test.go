package codegen

import (
	"testing"

	"github.com/xssnick/tonutils-go/tvm/cell"

	"github.com/wippyai/tvm-codegen/errors"
	"github.com/wippyai/tvm-codegen/opcode"
	"github.com/wippyai/tvm-codegen/schema"
)

func text(t *testing.T, s string) *cell.Cell {
	t.Helper()
	c, err := opcode.CommentCell(s)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestSimulator_Counter(t *testing.T) {
	sim, err := NewSimulator(counter(t), Config{Contract: "Counter"})
	if err != nil {
		t.Fatalf("NewSimulator: %v", err)
	}

	add := cell.BeginCell().MustStoreUInt(0x1234abcd, 32).MustStoreUInt(5, 32).EndCell()
	tests := []struct {
		name    string
		msg     Message
		handler string
		exit    int
	}{
		{"add", Message{Body: add}, "$Counter$_internal_binary_Add", 0},
		{"increment", Message{Body: text(t, "increment")}, "$Counter$_internal_text_c4f8d72312edfdef5b7bec7833bdbb162d1511bd78a912aed0f2637af65572ae", 0},
		{"other text", Message{Body: text(t, "Increment")}, "", opcode.InvalidMessage},
		{"unknown op", Message{Body: cell.BeginCell().MustStoreUInt(7, 32).EndCell()}, "", opcode.InvalidMessage},
		{"empty", Message{}, "", opcode.InvalidMessage},
		{"bounced", Message{Body: add, Bounced: true}, "", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := sim.Deliver(tt.msg)
			if err != nil {
				t.Fatal(err)
			}
			if out.Handler != tt.handler || out.ExitCode != tt.exit {
				t.Fatalf("outcome = %+v", out)
			}
			if out.Stored != (tt.exit == 0) {
				t.Errorf("Stored = %v with exit code %d", out.Stored, out.ExitCode)
			}
			if out.Handled != (tt.exit == 0) {
				t.Errorf("Handled = %v with exit code %d", out.Handled, out.ExitCode)
			}
		})
	}
}

func TestSimulator_Remaining(t *testing.T) {
	sim, err := NewSimulator(counter(t), Config{Contract: "Counter"})
	if err != nil {
		t.Fatal(err)
	}
	add := cell.BeginCell().MustStoreUInt(0x1234abcd, 32).MustStoreUInt(5, 32).EndCell()
	out, err := sim.Deliver(Message{Body: add})
	if err != nil {
		t.Fatal(err)
	}
	if out.Branch != "binary" || out.Remaining == nil {
		t.Fatalf("outcome = %+v", out)
	}
	v, err := out.Remaining.LoadUInt(32)
	if err != nil || v != 5 {
		t.Errorf("payload = %d, %v", v, err)
	}
}

func TestSimulator_External(t *testing.T) {
	g := counter(t)
	sim, err := NewSimulator(g, Config{Contract: "Counter"})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := sim.Deliver(Message{External: true}); !errors.IsKind(err, errors.KindNotFound) {
		t.Fatalf("error = %v, want not found", err)
	}
	if got := sim.Receivers(true); got != nil {
		t.Errorf("external receivers = %v", got)
	}

	c, _ := g.Type("Counter")
	c.Receivers = append(c.Receivers, schema.ReceiverDescription{Selector: schema.Fallback{Dir: schema.External, Name: "msg"}})
	sim, err = NewSimulator(g, Config{Contract: "Counter"})
	if err != nil {
		t.Fatal(err)
	}
	out, err := sim.Deliver(Message{External: true, Bounced: true, Body: text(t, "anything")})
	if err != nil {
		t.Fatal(err)
	}
	if out.Handler != "$Counter$_external_any" || !out.Stored {
		t.Errorf("outcome = %+v", out)
	}
}

func TestSimulator_Receivers(t *testing.T) {
	sim, err := NewSimulator(counter(t), Config{Contract: "Counter"})
	if err != nil {
		t.Fatal(err)
	}
	got := sim.Receivers(false)
	if len(got) != 2 || got[0] != "$Counter$_internal_binary_Add" {
		t.Errorf("internal receivers = %v", got)
	}
}

func TestSimulator_LegacyGuard(t *testing.T) {
	g := counter(t)
	c, _ := g.Type("Counter")
	c.Receivers = append(c.Receivers, schema.ReceiverDescription{Selector: schema.BounceBinary{Type: "Add", Name: "msg"}})
	short := cell.BeginCell().MustStoreUInt(0xFFFFFFFF, 32).MustStoreUInt(1, 30).EndCell()

	tests := []struct {
		legacy bool
		exit   int
	}{
		{false, 0},
		{true, 9},
	}
	for _, tt := range tests {
		sim, err := NewSimulator(g, Config{Contract: "Counter", LegacyBounceOpGuard: tt.legacy})
		if err != nil {
			t.Fatal(err)
		}
		out, err := sim.Deliver(Message{Body: short, Bounced: true})
		if err != nil {
			t.Fatal(err)
		}
		if out.ExitCode != tt.exit || out.Stored != (tt.exit == 0) {
			t.Errorf("legacy=%v: outcome = %+v", tt.legacy, out)
		}
	}
}
