package engine

import (
	"strings"

	"go.uber.org/zap"

	"github.com/wippyai/tvm-codegen/codegen/internal/entry"
	"github.com/wippyai/tvm-codegen/codegen/internal/receiver"
	"github.com/wippyai/tvm-codegen/codegen/internal/router"
	"github.com/wippyai/tvm-codegen/errors"
	"github.com/wippyai/tvm-codegen/funcast"
	"github.com/wippyai/tvm-codegen/lowering"
	"github.com/wippyai/tvm-codegen/opcode"
	"github.com/wippyai/tvm-codegen/schema"
)

// Config selects what a Writer generates.
type Config struct {
	// Resolver supplies headers, comment hashes and method ids.
	// Nil means opcode.NewResolver over the graph.
	Resolver opcode.Resolver

	Lowering lowering.Set
	Contract string
	ABILink  string
	Router   router.Options
}

// Writer assembles the module of one contract.
type Writer struct {
	graph    *schema.Graph
	contract *schema.TypeDescription
	ids      opcode.Resolver
	getters  *entry.Getters
	log      *zap.Logger
	cfg      Config
	module   *funcast.Module
}

// New prepares a Writer for cfg.Contract. The contract must exist in g and
// every lowering collaborator must be set.
func New(g *schema.Graph, cfg Config) (*Writer, error) {
	if err := cfg.Lowering.Validate(); err != nil {
		return nil, err
	}
	c, ok := g.Type(cfg.Contract)
	if !ok || c.Kind != schema.KindContract {
		return nil, errors.NotFound(errors.PhaseWrite, "contract", cfg.Contract)
	}
	// FunC string literals have no escapes.
	if strings.ContainsAny(cfg.ABILink, "\"\r\n") {
		return nil, errors.InvalidInput(errors.PhaseWrite, []string{c.Name, "abi_link"},
			"ABI link must not contain quotes or line breaks")
	}
	ids := cfg.Resolver
	if ids == nil {
		ids = opcode.NewResolver(g)
	}
	return &Writer{
		graph:    g,
		contract: c,
		ids:      ids,
		getters:  entry.NewGetters(g, cfg.Lowering.Types, ids),
		log:      Logger().With(zap.String("contract", c.Name)),
		cfg:      cfg,
	}, nil
}

// Write generates a fresh module on every call.
func (w *Writer) Write() (*funcast.Module, error) {
	c := w.contract
	m := &funcast.Module{}
	w.module = m

	m.Append(funcast.Block("", "Contract "+c.Name, "Generated code. Do not edit.", ""))
	m.Append(entry.ContextGlobals()...)

	for _, other := range w.graph.Contracts() {
		if err := w.writeFunctions(other); err != nil {
			return nil, err
		}
	}

	m.Append(funcast.Block("", "Receivers of a Contract "+c.Name, ""))
	for _, r := range c.Receivers {
		def, err := receiver.Emit(c, r, w.cfg.Lowering)
		if err != nil {
			return nil, err
		}
		w.emit(def)
	}

	m.Append(funcast.Block("", "Get methods of a Contract "+c.Name, ""))
	for _, fn := range c.Getters() {
		def, err := w.getters.Getter(fn)
		if err != nil {
			return nil, err
		}
		w.emit(def)
	}
	w.emit(entry.SupportedInterfaces(w.cfg.Lowering.Interfaces.Interfaces(c)))
	w.emit(entry.ABILink(w.cfg.ABILink))
	w.emit(entry.LazyDeployment())

	m.Append(funcast.Block("", "Routing of a Contract "+c.Name, ""))
	state, err := w.cfg.Lowering.Types.Type(schema.Ref(c.Name))
	if err != nil {
		return nil, errors.Lowering(errors.PhaseRoute, []string{c.Name}, err)
	}
	external := c.HasExternal()
	dirs := []schema.Direction{schema.Internal}
	if external {
		dirs = append(dirs, schema.External)
	}
	for _, dir := range dirs {
		plan, err := router.Build(c, dir, w.ids, w.cfg.Router)
		if err != nil {
			return nil, err
		}
		w.emit(router.Lower(plan, state))
	}

	w.emit(entry.Internal(c.Name))
	if external {
		w.emit(entry.External(c.Name))
	}

	w.log.Info("module written",
		zap.Int("entries", len(m.Entries)),
		zap.Int("receivers", len(c.Receivers)),
		zap.Bool("external", external))
	return m, nil
}

func (w *Writer) writeFunctions(c *schema.TypeDescription) error {
	w.module.Append(funcast.Block("", "Contract "+c.Name+" functions", ""))
	for _, fn := range c.Functions {
		def, err := w.cfg.Lowering.Functions.Write(fn)
		if err != nil {
			return errors.Lowering(errors.PhaseWrite, []string{c.Name, fn.Name}, err)
		}
		w.emit(def)
	}
	return nil
}

func (w *Writer) emit(def *funcast.FunctionDefinition) {
	w.log.Debug("definition", zap.String("name", def.Name))
	w.module.Append(def)
}
