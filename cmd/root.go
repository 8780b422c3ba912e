// Package cmd wires the CLI surface: argument handling, logger setup, input
// loading, and starting the TUI.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/oakwood-commons/jex/internal/ui"
	"github.com/oakwood-commons/jex/internal/viewtree"
	"github.com/oakwood-commons/jex/pkg/document"
	"github.com/oakwood-commons/jex/pkg/loader"
	"github.com/oakwood-commons/jex/pkg/logger"
	"github.com/oakwood-commons/jex/pkg/settings"
)

var (
	debug       bool
	outputCap   int
	showVersion bool

	rootCtx context.Context
)

var rootCmd = &cobra.Command{
	Use:   settings.CliBinaryName + " <file>",
	Short: "interactively explore a JSON document with jq filters",
	Long: `jex loads a JSON (or YAML/TOML) document and lets you explore it by
repeatedly applying jq filters. Every filter result becomes a new named view
in a growing edit tree; two panes show a source view and a derived view side
by side, with folding and regex search over either.`,
	Example: "\n  jex data.json\n  jex stream.ndjson\n  cat data.json | jex\n",
	Args:    cobra.MaximumNArgs(1),
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		var level int8
		if debug {
			level = -1
		}
		lgr := logger.Get(level)
		l := lgr.WithValues(logger.CommandKey, settings.CliBinaryName)
		rootCtx = logger.WithLogger(context.Background(), &l)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if showVersion {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s (commit %s, built %s)\n",
				settings.CliBinaryName,
				settings.VersionInformation.BuildVersion,
				settings.VersionInformation.Commit,
				settings.VersionInformation.BuildTime)
			return nil
		}

		values, name, err := loadInput(args)
		if err != nil {
			return err
		}

		lgr := logger.FromContext(rootCtx)
		tree := viewtree.New(nil, *lgr)
		if _, err := tree.CreateRoot(values, name); err != nil {
			return err
		}

		opts, cleanup := programOptions()
		defer cleanup()
		return ui.Run(tree, lgr, outputCap, opts...)
	},
}

func init() {
	registerFlags(rootCmd.Flags())
}

func registerFlags(fs *pflag.FlagSet) {
	fs.BoolVarP(&debug, "debug", "d", false, "enable debug logging (JSON to stderr)")
	fs.IntVar(&outputCap, "output-cap", 0, "max outputs per filter run (0 = default 10000)")
	fs.BoolVarP(&showVersion, "version", "v", false, "print version information and exit")
}

// loadInput reads the root document from the positional file argument or,
// when absent, from piped stdin. A missing or unparseable input is fatal.
func loadInput(args []string) ([]document.Value, string, error) {
	if len(args) == 1 {
		path := args[0]
		values, err := loader.LoadFile(path)
		if err != nil {
			return nil, "", err
		}
		return values, filepath.Base(path), nil
	}
	if stdinIsPiped() {
		values, err := loader.LoadReader(os.Stdin)
		if err != nil {
			return nil, "", fmt.Errorf("parsing stdin: %w", err)
		}
		return values, "stdin", nil
	}
	return nil, "", errors.New("no input: pass a file argument or pipe a document to stdin")
}

func stdinIsPiped() bool {
	return !term.IsTerminal(int(os.Stdin.Fd()))
}

// programOptions reopens the terminal for interactive input when stdin is a
// pipe, so the TUI still receives key and resize events.
func programOptions() ([]tea.ProgramOption, func()) {
	cleanup := func() {}
	if !stdinIsPiped() {
		return nil, cleanup
	}
	ttyIn, ttyOut, err := openTerminalIO()
	if err != nil {
		// No controlling terminal (CI and the like): fall back to piped
		// stdin. The TUI still draws, key handling degrades.
		return nil, cleanup
	}
	cleanup = func() {
		_ = ttyIn.Close()
		if ttyOut != nil && ttyOut != ttyIn {
			_ = ttyOut.Close()
		}
	}
	opts := []tea.ProgramOption{tea.WithInput(ttyIn)}
	if ttyOut != nil {
		opts = append(opts, tea.WithOutput(ttyOut))
	}
	return opts, cleanup
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
