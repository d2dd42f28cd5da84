package codegen

import (
	"github.com/wippyai/tvm-codegen/codegen/internal/engine"
	"github.com/wippyai/tvm-codegen/codegen/internal/router"
	"github.com/wippyai/tvm-codegen/funcast"
	"github.com/wippyai/tvm-codegen/lowering"
	"github.com/wippyai/tvm-codegen/schema"
)

// Config selects the contract to generate and how.
type Config struct {
	// Lowering supplies statement, type, function and interface lowering.
	// Nil means lowering.Default over the graph.
	Lowering *lowering.Set

	// Contract is the name of the contract to emit entry points for.
	Contract string

	// ABILink is returned by the get_abi_ipfs getter.
	ABILink string

	// LegacyBounceOpGuard reads the op of a bounced message when at least
	// 30 bits remain instead of 32.
	LegacyBounceOpGuard bool
}

func (c Config) lowering(g *schema.Graph) lowering.Set {
	if c.Lowering != nil {
		return *c.Lowering
	}
	return lowering.Default(g)
}

func (c Config) routerOptions() router.Options {
	if c.LegacyBounceOpGuard {
		return router.Options{BounceOpGuard: router.LegacyBounceOpGuard}
	}
	return router.Options{}
}

// Generate validates g and writes the module of cfg.Contract.
func Generate(g *schema.Graph, cfg Config) (*funcast.Module, error) {
	if err := schema.Validate(g); err != nil {
		return nil, err
	}
	w, err := engine.New(g, engine.Config{
		Lowering: cfg.lowering(g),
		Contract: cfg.Contract,
		ABILink:  cfg.ABILink,
		Router:   cfg.routerOptions(),
	})
	if err != nil {
		return nil, err
	}
	return w.Write()
}
