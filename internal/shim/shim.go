// Package shim implements the wrapper pipeline: resolve the target triple,
// assemble the downstream argument vector, run the linker and relay its
// exit code.
package shim

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"lldshim/internal/config"
	"lldshim/internal/customize"
	"lldshim/internal/report"
	"lldshim/internal/target"
)

// Options carries one invocation of the wrapper.
type Options struct {
	// ProgName is argv[0]; a "<target>-ld" spelling selects the target.
	ProgName string
	// Args are the caller's arguments, argv[1:], unparsed.
	Args []string
	// Config is the loaded site configuration.
	Config config.Config
}

// Run executes the wrapper pipeline once and returns the exit code to
// relay. A non-nil error means the downstream linker could not be found or
// started; downstream failures are not errors, only exit codes.
func Run(opts Options) (int, error) {
	program, err := exec.LookPath(opts.Config.Linker.Program)
	if err != nil {
		return 1, fmt.Errorf("unable to find %q in PATH: %w", opts.Config.Linker.Program, err)
	}

	printTarget := hasVersionRequest(opts.Args)
	triple := target.FromProgramName(opts.ProgName)

	argv, warn := Assemble(program, customize.For(triple), opts.Config.Flags.Prepend, opts.Args)
	if warn != nil {
		report.Errorf("%v", warn)
	}

	code, err := execute(argv)
	if err != nil {
		return 1, err
	}

	// Downstream -v/-version output, if any, has already been written;
	// the wrapper's target line goes after it.
	if printTarget {
		_, _ = fmt.Fprintf(os.Stdout, "Target: %s\n", triple)
	}
	return code, nil
}

// execute runs argv[0] with the full vector, inheriting the wrapper's
// stdio, and blocks until the subprocess exits. A non-zero downstream exit
// is returned as a code, not an error; only launch failures are errors.
func execute(argv []string) (int, error) {
	// #nosec G204 -- forwarding the caller's linker command line is the
	// whole point of this program
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return 1, err
	}
	return 0, nil
}
