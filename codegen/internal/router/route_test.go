package router

import (
	"testing"

	"github.com/xssnick/tonutils-go/tvm/cell"

	"github.com/wippyai/tvm-codegen/schema"
)

func TestRoute_Internal(t *testing.T) {
	g, w := walletGraph(t)
	p := mustBuild(t, g, w, schema.Internal, Options{})

	tests := []struct {
		name    string
		body    *cell.Cell
		bounced bool
		want    BranchKind
		payload int // bits handed to the handler, -1 for none
	}{
		{"transfer", body(transferHeader, 7, 8), false, BranchBinary, 64},
		{"nil body", nil, false, BranchEmpty, -1},
		{"zero op only", body(0), false, BranchEmpty, -1},
		{"short body", cell.BeginCell().MustStoreUInt(0xffff, 16).EndCell(), false, BranchEmpty, -1},
		{"known comment", comment(t, "increment"), false, BranchComment, -1},
		{"other comment", comment(t, "hello"), false, BranchCommentFallback, 40},
		{"unknown op", body(0xdeadbeef), false, BranchFallback, 32},
		{"bounced transfer", body(0xFFFFFFFF, transferHeader, 5), true, BranchBounceBinary, 32},
		{"bounced other", body(0xFFFFFFFF, 0x99), true, BranchBounceFallback, 32},
		{"bounced transfer header ignored unbounced", body(0xFFFFFFFF, transferHeader), false, BranchFallback, 64},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := p.Route(tt.body, tt.bounced)
			if !d.Handled || d.ExitCode != 0 {
				t.Fatalf("decision = %+v", d)
			}
			if d.Branch == nil || d.Branch.Kind != tt.want {
				t.Fatalf("branch = %+v, want %s", d.Branch, tt.want)
			}
			switch {
			case tt.payload < 0 && d.Payload != nil:
				t.Errorf("unexpected payload of %d bits", d.Payload.BitsLeft())
			case tt.payload >= 0 && d.Payload == nil:
				t.Error("missing payload")
			case tt.payload >= 0 && int(d.Payload.BitsLeft()) != tt.payload:
				t.Errorf("payload bits = %d, want %d", d.Payload.BitsLeft(), tt.payload)
			}
		})
	}
}

func TestRoute_NoFallback(t *testing.T) {
	g, _ := walletGraph(t)
	p := mustBuild(t, g, contract("C",
		schema.Binary{Type: "Transfer"},
		schema.Comment{Text: "deposit"},
	), schema.Internal, Options{})

	tests := []struct {
		name    string
		body    *cell.Cell
		handled bool
	}{
		{"header", body(transferHeader), true},
		{"comment", comment(t, "deposit"), true},
		{"case differs", comment(t, "Deposit"), false},
		{"unknown op", body(0x1), false},
		{"empty without empty receiver", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := p.Route(tt.body, false)
			if d.Handled != tt.handled {
				t.Errorf("Handled = %v, want %v", d.Handled, tt.handled)
			}
			if !d.Handled && d.Branch != nil {
				t.Errorf("unhandled decision has branch %+v", d.Branch)
			}
		})
	}
}

func TestRoute_BouncedWithoutHandlers(t *testing.T) {
	g, _ := walletGraph(t)
	p := mustBuild(t, g, contract("C", schema.Fallback{}), schema.Internal, Options{})

	d := p.Route(body(0xFFFFFFFF, transferHeader), true)
	if !d.Handled || d.Branch != nil {
		t.Errorf("bounced message must be swallowed, got %+v", d)
	}
}

func TestRoute_BounceGuard(t *testing.T) {
	g, _ := walletGraph(t)
	c := contract("C", schema.BounceBinary{Type: "Transfer"})
	short := cell.BeginCell().MustStoreUInt(0xFFFFFFFF, 32).MustStoreUInt(0x1234, 31).EndCell()

	d := mustBuild(t, g, c, schema.Internal, Options{}).Route(short, true)
	if d.ExitCode != 0 || !d.Handled || d.Branch != nil {
		t.Errorf("default guard: %+v", d)
	}

	d = mustBuild(t, g, c, schema.Internal, Options{BounceOpGuard: LegacyBounceOpGuard}).Route(short, true)
	if d.ExitCode != ExitCellUnderflow || d.Handled {
		t.Errorf("legacy guard should underflow on 31 bits: %+v", d)
	}

	full := body(0xFFFFFFFF, transferHeader)
	for _, guard := range []uint{DefaultBounceOpGuard, LegacyBounceOpGuard} {
		d = mustBuild(t, g, c, schema.Internal, Options{BounceOpGuard: guard}).Route(full, true)
		if d.Branch == nil || d.Branch.Kind != BranchBounceBinary {
			t.Errorf("guard %d: %+v", guard, d)
		}
	}
}

func TestRoute_BounceWithoutPrefix(t *testing.T) {
	g, _ := walletGraph(t)
	p := mustBuild(t, g, contract("C", schema.BounceFallback{}), schema.Internal, Options{})
	d := p.Route(cell.BeginCell().MustStoreUInt(1, 8).EndCell(), true)
	if d.ExitCode != ExitCellUnderflow {
		t.Errorf("ExitCode = %d, want %d", d.ExitCode, ExitCellUnderflow)
	}
}

func TestRoute_ExternalIgnoresBounced(t *testing.T) {
	g, w := walletGraph(t)
	p := mustBuild(t, g, w, schema.External, Options{})
	d := p.Route(body(transferHeader), true)
	if d.Branch == nil || d.Branch.Handler != "$Wallet$_external_binary_Transfer" {
		t.Errorf("decision = %+v", d)
	}
}

func BenchmarkRoute(b *testing.B) {
	g, w := walletGraph(b)
	p := mustBuild(b, g, w, schema.Internal, Options{})
	msg := comment(b, "hello")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.Route(msg, false)
	}
}
