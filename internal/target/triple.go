// Package target resolves and represents link target triples.
package target

import "strings"

// Arch is the leading architecture component of a triple.
type Arch uint8

const (
	ArchUnknown Arch = iota
	ArchX86
	ArchX86_64
	ArchARM
	ArchARMEB
	ArchThumb
	ArchThumbEB
	ArchAArch64
	ArchAArch64BE
	ArchPPC
	ArchPPC64
	ArchSPARC
	ArchSPARC64
	ArchMIPS
	ArchMIPS64
	ArchRISCV32
	ArchRISCV64
)

// String returns the canonical spelling of the architecture.
func (a Arch) String() string {
	switch a {
	case ArchX86:
		return "i386"
	case ArchX86_64:
		return "x86_64"
	case ArchARM:
		return "arm"
	case ArchARMEB:
		return "armeb"
	case ArchThumb:
		return "thumb"
	case ArchThumbEB:
		return "thumbeb"
	case ArchAArch64:
		return "aarch64"
	case ArchAArch64BE:
		return "aarch64_be"
	case ArchPPC:
		return "powerpc"
	case ArchPPC64:
		return "powerpc64"
	case ArchSPARC:
		return "sparc"
	case ArchSPARC64:
		return "sparc64"
	case ArchMIPS:
		return "mips"
	case ArchMIPS64:
		return "mips64"
	case ArchRISCV32:
		return "riscv32"
	case ArchRISCV64:
		return "riscv64"
	default:
		return "unknown"
	}
}

// OS is the operating-system component of a triple.
type OS uint8

const (
	OSUnknown OS = iota
	OSLinux
	OSNetBSD
	OSFreeBSD
	OSOpenBSD
	OSDarwin
	OSWindows
	OSSolaris
)

// String returns the canonical spelling of the operating system.
func (o OS) String() string {
	switch o {
	case OSLinux:
		return "linux"
	case OSNetBSD:
		return "netbsd"
	case OSFreeBSD:
		return "freebsd"
	case OSOpenBSD:
		return "openbsd"
	case OSDarwin:
		return "darwin"
	case OSWindows:
		return "windows"
	case OSSolaris:
		return "solaris"
	default:
		return "unknown"
	}
}

// Env is the environment/ABI component of a triple.
type Env uint8

const (
	EnvUnknown Env = iota
	EnvGNU
	EnvGNUEABI
	EnvGNUEABIHF
	EnvEABI
	EnvEABIHF
	EnvMusl
	EnvMuslEABI
	EnvMuslEABIHF
	EnvAndroid
	EnvMSVC
)

// String returns the canonical spelling of the environment.
func (e Env) String() string {
	switch e {
	case EnvGNU:
		return "gnu"
	case EnvGNUEABI:
		return "gnueabi"
	case EnvGNUEABIHF:
		return "gnueabihf"
	case EnvEABI:
		return "eabi"
	case EnvEABIHF:
		return "eabihf"
	case EnvMusl:
		return "musl"
	case EnvMuslEABI:
		return "musleabi"
	case EnvMuslEABIHF:
		return "musleabihf"
	case EnvAndroid:
		return "android"
	case EnvMSVC:
		return "msvc"
	default:
		return "unknown"
	}
}

// Triple identifies a link target: architecture, vendor, operating system
// and environment/ABI, normally written as a hyphen-separated string such
// as "aarch64-unknown-netbsd-eabi". A Triple is a value; it is resolved
// once per run and never mutated.
type Triple struct {
	Arch   Arch
	Vendor string
	OS     OS
	Env    Env

	raw string
}

// Parse builds a Triple from its hyphen-separated spelling. Components
// that do not match any known value are left unknown; parsing never fails.
func Parse(s string) Triple {
	t := Triple{Vendor: "unknown", raw: s}
	parts := strings.Split(s, "-")
	t.Arch = parseArch(parts[0])
	rest := parts[1:]

	// The vendor slot is optional: "aarch64-netbsd" puts the OS second.
	if len(rest) > 0 && parseOS(rest[0]) == OSUnknown && parseEnv(rest[0]) == EnvUnknown {
		t.Vendor = rest[0]
		rest = rest[1:]
	}
	for _, part := range rest {
		if t.OS == OSUnknown {
			if os := parseOS(part); os != OSUnknown {
				t.OS = os
				continue
			}
		}
		if t.Env == EnvUnknown {
			t.Env = parseEnv(part)
		}
	}
	return t
}

// String returns the original spelling when the triple was parsed from a
// string, and a canonical arch-vendor-os[-env] spelling otherwise.
func (t Triple) String() string {
	if t.raw != "" {
		return t.raw
	}
	parts := []string{t.Arch.String(), t.Vendor, t.OS.String()}
	if t.Env != EnvUnknown {
		parts = append(parts, t.Env.String())
	}
	return strings.Join(parts, "-")
}

func parseArch(s string) Arch {
	switch s {
	case "i386", "i486", "i586", "i686", "x86":
		return ArchX86
	case "x86_64", "amd64":
		return ArchX86_64
	case "aarch64", "arm64":
		return ArchAArch64
	case "aarch64_be", "arm64_be":
		return ArchAArch64BE
	case "armeb":
		return ArchARMEB
	case "thumb":
		return ArchThumb
	case "thumbeb":
		return ArchThumbEB
	case "arm":
		return ArchARM
	case "ppc", "powerpc":
		return ArchPPC
	case "ppc64", "powerpc64", "ppc64le", "powerpc64le":
		return ArchPPC64
	case "sparc", "sparcel":
		return ArchSPARC
	case "sparc64", "sparcv9":
		return ArchSPARC64
	case "mips", "mipsel":
		return ArchMIPS
	case "mips64", "mips64el":
		return ArchMIPS64
	case "riscv32":
		return ArchRISCV32
	case "riscv64":
		return ArchRISCV64
	}
	// Sub-architecture suffixes: armv7, thumbv6m, armebv7 and friends.
	switch {
	case strings.HasPrefix(s, "armeb"):
		return ArchARMEB
	case strings.HasPrefix(s, "armv"):
		return ArchARM
	case strings.HasPrefix(s, "thumbeb"):
		return ArchThumbEB
	case strings.HasPrefix(s, "thumbv"):
		return ArchThumb
	}
	return ArchUnknown
}

// parseOS matches by prefix: OS components may carry a version suffix,
// as in "netbsd9.0" or "darwin21".
func parseOS(s string) OS {
	switch {
	case strings.HasPrefix(s, "linux"):
		return OSLinux
	case strings.HasPrefix(s, "netbsd"):
		return OSNetBSD
	case strings.HasPrefix(s, "freebsd"):
		return OSFreeBSD
	case strings.HasPrefix(s, "openbsd"):
		return OSOpenBSD
	case strings.HasPrefix(s, "darwin"), strings.HasPrefix(s, "macosx"):
		return OSDarwin
	case strings.HasPrefix(s, "windows"), strings.HasPrefix(s, "win32"):
		return OSWindows
	case strings.HasPrefix(s, "solaris"):
		return OSSolaris
	}
	return OSUnknown
}

func parseEnv(s string) Env {
	switch {
	case strings.HasPrefix(s, "gnueabihf"):
		return EnvGNUEABIHF
	case strings.HasPrefix(s, "gnueabi"):
		return EnvGNUEABI
	case strings.HasPrefix(s, "gnu"):
		return EnvGNU
	case strings.HasPrefix(s, "eabihf"):
		return EnvEABIHF
	case strings.HasPrefix(s, "eabi"):
		return EnvEABI
	case strings.HasPrefix(s, "musleabihf"):
		return EnvMuslEABIHF
	case strings.HasPrefix(s, "musleabi"):
		return EnvMuslEABI
	case strings.HasPrefix(s, "musl"):
		return EnvMusl
	case strings.HasPrefix(s, "android"):
		return EnvAndroid
	case strings.HasPrefix(s, "msvc"):
		return EnvMSVC
	}
	return EnvUnknown
}
