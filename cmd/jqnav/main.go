// Command jqnav is an interactive terminal explorer for JSON-family
// documents, and (via its flags) a one-shot query/pretty-print tool.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// versionString is stamped at build time via -ldflags; "dev" is the
// fallback for a plain `go build`.
var versionString = "dev"

// ArgParseError is jqnav's exit code for command-line argument errors,
// distinct from the generic I/O/parse/query failure code (spec §6: "Exit
// code 0 on success, 1 on read/parse/query/write error, the ArgParseError
// code for argument errors"). Pinned to 2, matching the conventional Unix
// "incorrect usage" code; cobra's flag and argument-count errors are wrapped
// in errArgParse so they exit with it too.
const ArgParseError = 2

var errArgParse = errors.New("jqnav: argument error")

type cliFlags struct {
	output          string
	queries         []string
	braceless       bool
	ndjson          bool
	pretty          bool
	indent          int
	interactive     bool
	intern          bool
	gc              bool
	hiddenHelp      bool
	plain           bool
	jqExpr          string
	logFile         string
	fishCompletions bool
}

func newRootCmd() *cobra.Command {
	var flags cliFlags

	cmd := &cobra.Command{
		Use:     "jqnav [filepath]",
		Short:   "interactive and one-shot JSON-family document explorer",
		Version: versionString,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.MaximumNArgs(1)(cmd, args); err != nil {
				return fmt.Errorf("%w: %v", errArgParse, err)
			}
			return nil
		},
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if flags.hiddenHelp {
				return cmd.Help()
			}
			if flags.indent < 0 || flags.indent > 80 {
				return fmt.Errorf("%w: --indent must be between 0 and 80", errArgParse)
			}
			var path string
			if len(args) == 1 {
				path = args[0]
			}
			if flags.fishCompletions {
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			}
			if flags.interactive {
				return runInteractive(path, flags)
			}
			return runOneShot(path, flags)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&flags.output, "output", "o", "", "write result to FILE instead of stdout")
	f.StringArrayVarP(&flags.queries, "query", "q", nil, "apply a path query (repeatable)")
	f.BoolVar(&flags.braceless, "braceless", false, "allow a bare top-level fragment without {}")
	f.BoolVar(&flags.ndjson, "ndjson", false, "parse input as newline-delimited JSON")
	f.BoolVarP(&flags.pretty, "pretty", "p", false, "pretty-print output")
	f.IntVar(&flags.indent, "indent", 2, "indent width, 0-80")
	f.BoolVarP(&flags.interactive, "interactive", "i", false, "launch the interactive navigator")
	f.BoolVar(&flags.intern, "intern", false, "eagerly intern all object keys")
	f.BoolVar(&flags.gc, "gc", false, "run atom GC before exiting one-shot mode")
	f.BoolVarP(&flags.hiddenHelp, "hidden-help", "H", false, "show help including hidden flags")
	f.BoolVar(&flags.plain, "plain", false, "disable styled output even on a TTY")
	f.BoolVar(&flags.fishCompletions, "fish-completions", false, "print a fish completion script")

	f.StringVar(&flags.jqExpr, "jq", "", "evaluate a gojq expression instead of -q's path grammar")
	f.StringVar(&flags.logFile, "log-file", "", "write debug-level logs to FILE")
	_ = f.MarkHidden("jq")
	_ = f.MarkHidden("log-file")

	// -H/--hidden-help reveals the hidden flags (--jq, --log-file) in the
	// usual --help output instead of cobra's default help.
	cmd.SetHelpFunc(func(c *cobra.Command, args []string) {
		if flags.hiddenHelp {
			c.Flags().VisitAll(func(fl *pflag.Flag) { fl.Hidden = false })
		}
		c.Root().UsageFunc()(c)
	})
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", errArgParse, err)
	})

	return cmd
}

func main() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "jqnav:", err)
		if errors.Is(err, errArgParse) {
			os.Exit(ArgParseError)
		}
		os.Exit(1)
	}
}
