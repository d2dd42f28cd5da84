package router

import (
	"testing"

	"github.com/xssnick/tonutils-go/tvm/cell"

	"github.com/wippyai/tvm-codegen/opcode"
	"github.com/wippyai/tvm-codegen/schema"
)

const transferHeader = 0x1234abcd

// walletGraph declares a contract with every internal selector shape and
// one external binary receiver.
func walletGraph(t testing.TB) (*schema.Graph, *schema.TypeDescription) {
	t.Helper()
	g := schema.NewGraph()
	h := uint32(transferHeader)
	if err := g.Add(&schema.TypeDescription{Name: "Transfer", Kind: schema.KindMessage, Header: &h}); err != nil {
		t.Fatal(err)
	}
	w := &schema.TypeDescription{Name: "Wallet", Kind: schema.KindContract}
	for _, s := range []schema.Selector{
		schema.Binary{Dir: schema.Internal, Type: "Transfer", Name: "msg"},
		schema.Empty{Dir: schema.Internal},
		schema.Comment{Dir: schema.Internal, Text: "increment"},
		schema.CommentFallback{Dir: schema.Internal, Name: "text"},
		schema.Fallback{Dir: schema.Internal, Name: "msg"},
		schema.BounceBinary{Type: "Transfer", Name: "msg", Bounced: true},
		schema.BounceFallback{Name: "msg"},
		schema.Binary{Dir: schema.External, Type: "Transfer", Name: "msg"},
	} {
		w.Receivers = append(w.Receivers, schema.ReceiverDescription{Selector: s})
	}
	if err := g.Add(w); err != nil {
		t.Fatal(err)
	}
	return g, w
}

func contract(name string, sels ...schema.Selector) *schema.TypeDescription {
	c := &schema.TypeDescription{Name: name, Kind: schema.KindContract}
	for _, s := range sels {
		c.Receivers = append(c.Receivers, schema.ReceiverDescription{Selector: s})
	}
	return c
}

func mustBuild(t testing.TB, g *schema.Graph, c *schema.TypeDescription, dir schema.Direction, opts Options) *Plan {
	t.Helper()
	p, err := Build(c, dir, opcode.NewResolver(g), opts)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return p
}

func body(words ...uint32) *cell.Cell {
	b := cell.BeginCell()
	for _, w := range words {
		b.MustStoreUInt(uint64(w), 32)
	}
	return b.EndCell()
}

func comment(t testing.TB, text string) *cell.Cell {
	t.Helper()
	c, err := opcode.CommentCell(text)
	if err != nil {
		t.Fatal(err)
	}
	return c
}
