package codegen

import (
	"github.com/xssnick/tonutils-go/tvm/cell"
	"go.uber.org/zap"

	"github.com/wippyai/tvm-codegen/codegen/internal/router"
	"github.com/wippyai/tvm-codegen/errors"
	"github.com/wippyai/tvm-codegen/opcode"
	"github.com/wippyai/tvm-codegen/schema"
)

// Message is an incoming message as the entry point sees it.
type Message struct {
	Body     *cell.Cell // nil is an empty body
	External bool
	Bounced  bool // ignored for external messages
}

// Outcome is what the generated entry point does with a Message.
type Outcome struct {
	// Remaining is the slice handed to the handler, if it takes one.
	Remaining *cell.Slice

	// Handler is the receiver function invoked, empty when none ran.
	Handler string

	// Branch names the router arm that matched, such as "binary" or
	// "comment-fallback".
	Branch string

	// ExitCode is the exit code the transaction aborts with, 0 on success.
	ExitCode int

	Handled bool

	// Stored reports whether the state store step runs.
	Stored bool
}

// Simulator models the entry points generated for one contract.
type Simulator struct {
	internal *router.Plan
	external *router.Plan // nil without external receivers
	contract string
}

// NewSimulator validates g and plans the routers of cfg.Contract.
func NewSimulator(g *schema.Graph, cfg Config) (*Simulator, error) {
	if err := schema.Validate(g); err != nil {
		return nil, err
	}
	c, ok := g.Type(cfg.Contract)
	if !ok || c.Kind != schema.KindContract {
		return nil, errors.NotFound(errors.PhaseRoute, "contract", cfg.Contract)
	}

	ids := opcode.NewResolver(g)
	s := &Simulator{contract: c.Name}
	var err error
	if s.internal, err = router.Build(c, schema.Internal, ids, cfg.routerOptions()); err != nil {
		return nil, err
	}
	if c.HasExternal() {
		if s.external, err = router.Build(c, schema.External, ids, cfg.routerOptions()); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Deliver runs msg through load, route, assert and store. An external
// message to a contract without external receivers has no entry point and
// is reported as KindNotFound.
func (s *Simulator) Deliver(msg Message) (Outcome, error) {
	plan := s.internal
	if msg.External {
		if s.external == nil {
			return Outcome{}, errors.NotFound(errors.PhaseRoute, "entry point", "recv_external")
		}
		plan = s.external
	}

	d := plan.Route(msg.Body, msg.Bounced && !msg.External)
	out := Outcome{
		Handled:   d.Handled,
		ExitCode:  d.ExitCode,
		Remaining: d.Payload,
	}
	if d.Branch != nil {
		out.Handler = d.Branch.Handler
		out.Branch = d.Branch.Kind.String()
	}
	if out.ExitCode == 0 && !out.Handled {
		out.ExitCode = opcode.InvalidMessage
	}
	out.Stored = out.ExitCode == 0

	Logger().Debug("message delivered",
		zap.String("contract", s.contract),
		zap.Bool("external", msg.External),
		zap.Bool("bounced", msg.Bounced),
		zap.String("handler", out.Handler),
		zap.Int("exit_code", out.ExitCode))
	return out, nil
}

// Receivers lists the handler names reachable in one direction, in the
// order the router tests them.
func (s *Simulator) Receivers(external bool) []string {
	plan := s.internal
	if external {
		plan = s.external
	}
	if plan == nil {
		return nil
	}
	var out []string
	for _, br := range plan.Branches() {
		out = append(out, br.Handler)
	}
	return out
}
