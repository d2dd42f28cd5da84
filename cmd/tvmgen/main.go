// Command tvmgen generates FunC dispatch code from a contract description.
//
//	tvmgen generate counter.yaml --contract Counter -o counter.fc
//	tvmgen route counter.yaml --contract Counter 1234abcd00000005
//	tvmgen inspect counter.yaml --contract Counter -i
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/wippyai/tvm-codegen/codegen"
	"github.com/wippyai/tvm-codegen/schema"
)

type command interface {
	help() *commandHelp
	flags(flags *pflag.FlagSet)
	run(ctx context.Context, env *env, argv []string) error
}

type commandHelp struct {
	usage   string
	summary string
	args    cobra.PositionalArgs
}

// env is what every command shares: output streams and the run logger.
type env struct {
	stdout io.Writer
	stderr io.Writer
	log    *zap.Logger
}

// globalFlags are accepted by every command.
type globalFlags struct {
	verbose bool
	logJSON bool
}

func main() {
	os.Exit(execute(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := newRootCmd(ctx, stdout, stderr)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd(ctx context.Context, stdout, stderr io.Writer) *cobra.Command {
	var (
		global globalFlags
		e      = &env{stdout: stdout, stderr: stderr, log: zap.NewNop()}
	)

	root := &cobra.Command{
		Use:           "tvmgen [options] COMMAND",
		Short:         "Generate FunC dispatch code for TON contracts",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRun: func(*cobra.Command, []string) {
			e.log = newLogger(stderr, global.verbose, global.logJSON)
			codegen.SetLogger(e.log)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = e.log.Sync()
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.PersistentFlags().BoolVarP(&global.verbose, "verbose", "v", false, "log every generated definition")
	root.PersistentFlags().BoolVar(&global.logJSON, "log-json", false, "write logs as JSON")

	commands := []command{
		&cmdGenerate{},
		&cmdRoute{},
		&cmdInspect{},
	}
	for _, cmd := range commands {
		cmd := cmd
		help := cmd.help()
		cobraCmd := &cobra.Command{
			Use:   help.usage,
			Short: help.summary,
			Args:  help.args,
			RunE: func(_ *cobra.Command, args []string) error {
				return cmd.run(ctx, e, args)
			},
		}
		cmd.flags(cobraCmd.Flags())
		root.AddCommand(cobraCmd)
	}
	return root
}

// contractFlags select the description file's contract.
type contractFlags struct {
	contract      string
	abiLink       string
	legacyBounces bool
}

func (f *contractFlags) register(flags *pflag.FlagSet) {
	flags.StringVarP(&f.contract, "contract", "c", "", "contract to generate (default: the only contract in the file)")
	flags.StringVar(&f.abiLink, "abi-link", "", "value returned by the get_abi_ipfs getter")
	flags.BoolVar(&f.legacyBounces, "legacy-bounce-guard", false, "read bounced ops when 30 bits remain")
}

// load reads path and resolves the contract to work on.
func (f *contractFlags) load(e *env, path string) (*schema.Graph, codegen.Config, error) {
	g, err := schema.Load(path)
	if err != nil {
		return nil, codegen.Config{}, err
	}
	name := f.contract
	if name == "" {
		contracts := g.Contracts()
		if len(contracts) != 1 {
			return nil, codegen.Config{}, fmt.Errorf("%s declares %d contracts, select one with --contract", path, len(contracts))
		}
		name = contracts[0].Name
	}
	e.log.Debug("contract description loaded",
		zap.String("path", path),
		zap.String("contract", name),
		zap.Int("types", len(g.Types())))
	return g, codegen.Config{
		Contract:            name,
		ABILink:             f.abiLink,
		LegacyBounceOpGuard: f.legacyBounces,
	}, nil
}
