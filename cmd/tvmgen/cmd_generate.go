package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/wippyai/tvm-codegen/codegen"
	"github.com/wippyai/tvm-codegen/funcfmt"
)

type cmdGenerate struct {
	contractFlags
	outPath string
}

func (*cmdGenerate) help() *commandHelp {
	return &commandHelp{
		usage:   "generate CONTRACT.yaml",
		summary: "Print the FunC module of a contract",
		args:    cobra.ExactArgs(1),
	}
}

func (cmd *cmdGenerate) flags(flags *pflag.FlagSet) {
	cmd.register(flags)
	flags.StringVarP(&cmd.outPath, "output", "o", "", "write to a file instead of stdout")
}

func (cmd *cmdGenerate) run(_ context.Context, e *env, argv []string) error {
	g, cfg, err := cmd.load(e, argv[0])
	if err != nil {
		return err
	}
	m, err := codegen.Generate(g, cfg)
	if err != nil {
		return err
	}
	src, err := funcfmt.Print(m)
	if err != nil {
		return err
	}

	if cmd.outPath == "" {
		_, err = fmt.Fprint(e.stdout, src)
		return err
	}
	if err := os.WriteFile(cmd.outPath, []byte(src), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", cmd.outPath, err)
	}
	e.log.Info("module written", zap.String("path", cmd.outPath), zap.Int("bytes", len(src)))
	return nil
}
