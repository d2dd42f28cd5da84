package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/wippyai/tvm-codegen/codegen"
	"github.com/wippyai/tvm-codegen/funcfmt"
	"github.com/wippyai/tvm-codegen/schema"
)

type cmdInspect struct {
	contractFlags
	interactive bool
}

func (*cmdInspect) help() *commandHelp {
	return &commandHelp{
		usage:   "inspect CONTRACT.yaml",
		summary: "List generated definitions, or browse them with -i",
		args:    cobra.ExactArgs(1),
	}
}

func (cmd *cmdInspect) flags(flags *pflag.FlagSet) {
	cmd.register(flags)
	flags.BoolVarP(&cmd.interactive, "interactive", "i", false, "interactive mode with TUI")
}

// definition is one generated function as the inspector shows it.
type definition struct {
	name      string
	signature string
	source    string
}

func (cmd *cmdInspect) run(_ context.Context, e *env, argv []string) error {
	g, cfg, err := cmd.load(e, argv[0])
	if err != nil {
		return err
	}
	defs, err := definitions(g, cfg)
	if err != nil {
		return err
	}

	if cmd.interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			return errors.New("interactive mode needs a terminal")
		}
		sim, err := codegen.NewSimulator(g, cfg)
		if err != nil {
			return err
		}
		return runInteractive(argv[0], cfg.Contract, defs, sim)
	}

	for _, d := range defs {
		if _, err := fmt.Fprintln(e.stdout, d.signature); err != nil {
			return err
		}
	}
	return nil
}

func definitions(g *schema.Graph, cfg codegen.Config) ([]definition, error) {
	m, err := codegen.Generate(g, cfg)
	if err != nil {
		return nil, err
	}
	var out []definition
	for _, f := range m.Functions() {
		src, err := funcfmt.Function(f)
		if err != nil {
			return nil, err
		}
		sig, _, _ := strings.Cut(src, "\n")
		out = append(out, definition{
			name:      f.Name,
			signature: strings.TrimSuffix(sig, " {"),
			source:    src,
		})
	}
	return out, nil
}
