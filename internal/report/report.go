// Package report prints user-facing diagnostics to stderr.
package report

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

var errorLabel = color.New(color.FgRed, color.Bold)

// Errorf writes a single "error:"-prefixed line to stderr. Color is
// controlled process-wide via color.NoColor, set by the entrypoint.
func Errorf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", errorLabel.Sprint("error:"), fmt.Sprintf(format, args...))
}
