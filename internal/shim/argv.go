package shim

import "errors"

// ErrMissingFlavorValue is reported, non-fatally, when -flavor arrives
// without a value token.
var ErrMissingFlavorValue = errors.New("missing arg value for '-flavor'")

// Assemble builds the downstream argument vector: the resolved program
// path, then the platform customization flags, then the site extra flags,
// then the caller's arguments with a leading "-flavor <value>" pair
// removed. The downstream linker knows a single flavor, so the selector is
// never forwarded. The result is a fresh slice; the inputs are not
// mutated.
//
// A leading -flavor with no value token is dropped and reported via the
// returned error, but assembly still succeeds (the error is advisory).
func Assemble(program string, custom, extra, callerArgs []string) ([]string, error) {
	argv := make([]string, 0, 1+len(custom)+len(extra)+len(callerArgs))
	argv = append(argv, program)
	argv = append(argv, custom...)
	argv = append(argv, extra...)

	var warn error
	if len(callerArgs) > 0 && callerArgs[0] == "-flavor" {
		if len(callerArgs) < 2 {
			warn = ErrMissingFlavorValue
			callerArgs = nil
		} else {
			callerArgs = callerArgs[2:]
		}
	}
	return append(argv, callerArgs...), warn
}

// hasVersionRequest reports whether -v or -version appears anywhere in the
// caller's arguments. Both flags are still forwarded untouched; they only
// additionally trigger the Target line after the downstream run.
func hasVersionRequest(args []string) bool {
	for _, arg := range args {
		if arg == "-v" || arg == "-version" {
			return true
		}
	}
	return false
}
