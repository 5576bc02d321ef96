package target

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Lookup resolves a target identifier the way a target registry would: the
// identifier is recognized iff its leading architecture component names a
// known architecture. The parsed triple is returned on success.
func Lookup(name string) (Triple, error) {
	t := Parse(name)
	if t.Arch == ArchUnknown {
		return Triple{}, fmt.Errorf("no available targets are compatible with triple %q", name)
	}
	return t, nil
}

// FromProgramName resolves the effective triple for an invocation.
//
// Multi-call convention: a symlink named "<target>-ld" selects <target>.
// The stem of argv[0] is split at its last '-'; when the prefix names a
// recognized target, its parsed triple wins. Otherwise, including when the
// lookup fails or no '-' is present, the host default applies. Resolution
// never fails.
func FromProgramName(argv0 string) Triple {
	stem := filepath.Base(argv0)
	stem = strings.TrimSuffix(stem, filepath.Ext(stem))
	if i := strings.LastIndex(stem, "-"); i > 0 {
		if t, err := Lookup(stem[:i]); err == nil {
			return t
		}
	}
	return Host()
}
