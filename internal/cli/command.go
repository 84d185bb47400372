package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/idelchi/tree/internal/tree"
)

// CLI represents the command-line interface.
type CLI struct {
	version string
}

// New creates a new CLI instance with the given version.
func New(version string) CLI {
	return CLI{version: version}
}

// Usage returns the help text printed for -h and --help.
func Usage() string {
	return heredoc.Doc(`
		Displays contents of DIR and all subdirs in tree form
		USAGE:
		tree.rb [OPTIONS] [DIR]
		  DIR is optional - defaults to current directory
		  -h, --help:  show this help
		`)
}

func help(w io.Writer) {
	//nolint:forbidigo // Help output to console
	fmt.Fprint(w, Usage())
}

// parseArgs scans the raw arguments.
// Exact -h or --help anywhere requests help, --debug enables tracing,
// the first argument not starting with "-" is the directory and every other "-" argument is ignored.
func parseArgs(args []string) (tree.Options, bool) {
	var (
		options  tree.Options
		showHelp bool
	)

	for _, arg := range args {
		switch {
		case arg == "-h" || arg == "--help":
			showHelp = true
		case arg == "--debug":
			options.Debug = true
		case strings.HasPrefix(arg, "-"):
			// unknown flag, dropped without consuming the next argument
		case options.Path == "":
			options.Path = arg
		}
	}

	if options.Path == "" {
		options.Path = "."
	}

	return options, showHelp
}

// Command builds the root command.
// Flag parsing is left to parseArgs so that unknown flags never take a value.
func (c CLI) Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:                "tree [OPTIONS] [DIR]",
		Short:              "Displays contents of DIR and all subdirs in tree form",
		Args:               cobra.ArbitraryArgs,
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableFlagParsing: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			options, showHelp := parseArgs(args)
			if showHelp {
				return cmd.Help()
			}

			return c.logic(cmd, options)
		},
	}

	cmd.SetHelpFunc(func(cmd *cobra.Command, _ []string) {
		help(cmd.OutOrStdout())
	})

	return cmd
}

// Execute runs the CLI with the process arguments.
func (c CLI) Execute() error {
	return c.Command().Execute()
}
