package terminal

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/life-tools/life-atlas/pkg/runtime/terminal/commands"
)

// CLI represents the command-line interface
type CLI struct {
	insights   commands.Insights
	dispatcher commands.Dispatcher
	reporter   *Reporter
	input      io.Reader
	output     io.Writer
	rootCmd    *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Insights   commands.Insights
	Dispatcher commands.Dispatcher
	Input      io.Reader
	Output     io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Input == nil {
		opts.Input = os.Stdin
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{
		insights:   opts.Insights,
		dispatcher: opts.Dispatcher,
		reporter:   NewReporter(opts.Output),
		input:      opts.Input,
		output:     opts.Output,
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "life",
		Short: "Personal life insights and commands",
	}

	cmd.AddCommand(commands.NewInsightCmd(cli.insights, cli.reporter))
	cmd.AddCommand(commands.NewSayCmd(cli.dispatcher, cli.input, cli.output))

	return cmd
}
