package customize

import "lldshim/internal/target"

// netbsdFlags works around ld.elf_so limitations and teaches the linker
// the default NetBSD library search paths. Keep the paths in sync with the
// NetBSD driver toolchain defaults.
func netbsdFlags(t target.Triple) []string {
	flags := []string{
		// ld.elf_so cannot handle a read-only first PT_LOAD
		"--no-rosegment",
		// superfluous RUNPATH
		"--disable-new-dtags",
		// superfluous GNU stack marker
		"-znognustack",
	}

	// The default image base clashes with the kernel mapping on arm64.
	switch t.Arch {
	case target.ArchAArch64, target.ArchAArch64BE:
		flags = append(flags, "--image-base=0x200100000")
	}

	if dir := netbsdLibDir(t); dir != "" {
		flags = append(flags, "-L=/usr/lib/"+dir)
	}
	return append(flags, "-L=/usr/lib")
}

// netbsdLibDir picks the architecture library subdirectory, or "" when the
// architecture keeps its libraries directly under /usr/lib.
func netbsdLibDir(t target.Triple) string {
	switch t.Arch {
	case target.ArchX86:
		return "i386"
	case target.ArchARM, target.ArchARMEB, target.ArchThumb, target.ArchThumbEB:
		switch t.Env {
		case target.EnvEABI, target.EnvGNUEABI:
			return "eabi"
		case target.EnvEABIHF, target.EnvGNUEABIHF:
			return "eabihf"
		default:
			return "oabi"
		}
	case target.ArchPPC:
		return "powerpc"
	case target.ArchSPARC:
		return "sparc"
	}
	return ""
}
