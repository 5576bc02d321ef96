// Package main implements the lldshim CLI, a thin driver in front of
// ld.lld. It resolves a target triple from its own invocation name
// (multi-call style) or the host default, injects platform-specific linker
// flags where the target needs them, strips the -flavor selector and execs
// ld.lld, relaying its exit code.
package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"lldshim/internal/config"
	"lldshim/internal/report"
	"lldshim/internal/shim"
)

var rootCmd = &cobra.Command{
	Use:   "lldshim [linker arguments]",
	Short: "Standalone ld.lld driver with per-target defaults",
	Long: `lldshim forwards its whole command line to ld.lld, prepending the
flags the resolved target platform requires. Invoke it through a
"<target>-ld" symlink to select a target explicitly.`,
	Args: cobra.ArbitraryArgs,
	// Every argument belongs to the downstream linker; nothing is parsed
	// as a flag of this command.
	DisableFlagParsing: true,
	SilenceUsage:       true,
	SilenceErrors:      true,
	RunE:               rootExecution,
}

// exitCode is the downstream linker's exit status, relayed verbatim.
var exitCode int

func rootExecution(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	code, err := shim.Run(shim.Options{
		ProgName: os.Args[0],
		Args:     args,
		Config:   cfg,
	})
	exitCode = code
	return err
}

func main() {
	color.NoColor = color.NoColor || !isTerminal(os.Stderr)
	if err := rootCmd.Execute(); err != nil {
		report.Errorf("%v", err)
		os.Exit(1)
	}
	os.Exit(exitCode)
}

// isTerminal checks whether the file is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
