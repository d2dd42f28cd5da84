package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/wippyai/tvm-codegen/codegen"
)

type cmdRoute struct {
	contractFlags
	external bool
	bounced  bool
}

func (*cmdRoute) help() *commandHelp {
	return &commandHelp{
		usage:   "route CONTRACT.yaml [BODY]",
		summary: "Show which receiver handles a message body (hex or text:<comment>)",
		args:    cobra.RangeArgs(1, 2),
	}
}

func (cmd *cmdRoute) flags(flags *pflag.FlagSet) {
	cmd.register(flags)
	flags.BoolVar(&cmd.external, "external", false, "deliver as an external message")
	flags.BoolVar(&cmd.bounced, "bounced", false, "deliver as a bounced internal message")
}

func (cmd *cmdRoute) run(_ context.Context, e *env, argv []string) error {
	g, cfg, err := cmd.load(e, argv[0])
	if err != nil {
		return err
	}
	var raw string
	if len(argv) > 1 {
		raw = argv[1]
	}
	body, err := parseBody(raw)
	if err != nil {
		return err
	}

	sim, err := codegen.NewSimulator(g, cfg)
	if err != nil {
		return err
	}
	out, err := sim.Deliver(codegen.Message{Body: body, External: cmd.external, Bounced: cmd.bounced})
	if err != nil {
		return err
	}
	return writeOutcome(e.stdout, out)
}

func writeOutcome(w io.Writer, out codegen.Outcome) error {
	handler, branch := out.Handler, out.Branch
	if handler == "" {
		handler = "-"
	}
	if branch == "" {
		branch = "-"
	}
	remaining := 0
	if out.Remaining != nil {
		remaining = int(out.Remaining.BitsLeft())
	}
	_, err := fmt.Fprintf(w, "handler:   %s\nbranch:    %s\nhandled:   %t\nstored:    %t\nexit code: %d\npayload:   %d bits\n",
		handler, branch, out.Handled, out.Stored, out.ExitCode, remaining)
	return err
}
