package target

import (
	"runtime"
	"strings"
)

// Host returns the default triple for the machine the wrapper runs on.
// It is the fallback when no target is encoded in the invocation name.
func Host() Triple {
	arch := hostArchName(runtime.GOARCH)

	vendor := "unknown"
	switch runtime.GOOS {
	case "darwin":
		vendor = "apple"
	case "windows":
		vendor = "pc"
	}

	parts := []string{arch, vendor, runtime.GOOS}
	switch runtime.GOOS {
	case "linux":
		parts = append(parts, "gnu")
	case "windows":
		parts = append(parts, "msvc")
	}
	return Parse(strings.Join(parts, "-"))
}

// hostArchName maps GOARCH spellings onto triple architecture spellings.
func hostArchName(goarch string) string {
	switch goarch {
	case "amd64":
		return "x86_64"
	case "386":
		return "i386"
	case "arm64":
		return "aarch64"
	case "arm":
		return "armv7"
	case "ppc64":
		return "powerpc64"
	case "ppc64le":
		return "powerpc64le"
	case "mipsle":
		return "mipsel"
	case "mips64le":
		return "mips64el"
	default:
		// riscv64, sparc64, mips and friends already match.
		return goarch
	}
}
