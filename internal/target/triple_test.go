package target

import (
	"runtime"
	"testing"
)

func TestParse(t *testing.T) {
	cases := []struct {
		input  string
		arch   Arch
		vendor string
		os     OS
		env    Env
	}{
		{"aarch64-netbsd", ArchAArch64, "unknown", OSNetBSD, EnvUnknown},
		{"aarch64-unknown-netbsd-eabi", ArchAArch64, "unknown", OSNetBSD, EnvEABI},
		{"aarch64_be-netbsd", ArchAArch64BE, "unknown", OSNetBSD, EnvUnknown},
		{"x86_64-unknown-linux-gnu", ArchX86_64, "unknown", OSLinux, EnvGNU},
		{"amd64-netbsd", ArchX86_64, "unknown", OSNetBSD, EnvUnknown},
		{"i686-pc-windows-msvc", ArchX86, "pc", OSWindows, EnvMSVC},
		{"armv7-netbsd-eabihf", ArchARM, "unknown", OSNetBSD, EnvEABIHF},
		{"armv6-unknown-netbsd-gnueabi", ArchARM, "unknown", OSNetBSD, EnvGNUEABI},
		{"thumbv7-netbsd-eabi", ArchThumb, "unknown", OSNetBSD, EnvEABI},
		{"powerpc-netbsd", ArchPPC, "unknown", OSNetBSD, EnvUnknown},
		{"sparc-sun-solaris", ArchSPARC, "sun", OSSolaris, EnvUnknown},
		{"x86_64-apple-darwin21", ArchX86_64, "apple", OSDarwin, EnvUnknown},
		{"mips64el-unknown-netbsd9.0", ArchMIPS64, "unknown", OSNetBSD, EnvUnknown},
		{"banana", ArchUnknown, "unknown", OSUnknown, EnvUnknown},
	}
	for _, tc := range cases {
		got := Parse(tc.input)
		if got.Arch != tc.arch {
			t.Fatalf("Parse(%q).Arch = %v, want %v", tc.input, got.Arch, tc.arch)
		}
		if got.Vendor != tc.vendor {
			t.Fatalf("Parse(%q).Vendor = %q, want %q", tc.input, got.Vendor, tc.vendor)
		}
		if got.OS != tc.os {
			t.Fatalf("Parse(%q).OS = %v, want %v", tc.input, got.OS, tc.os)
		}
		if got.Env != tc.env {
			t.Fatalf("Parse(%q).Env = %v, want %v", tc.input, got.Env, tc.env)
		}
	}
}

func TestStringRoundTripsOriginalSpelling(t *testing.T) {
	for _, s := range []string{"aarch64-netbsd", "x86_64-unknown-linux-gnu", "banana"} {
		if got := Parse(s).String(); got != s {
			t.Fatalf("Parse(%q).String() = %q", s, got)
		}
	}
}

func TestLookup(t *testing.T) {
	if _, err := Lookup("aarch64-netbsd"); err != nil {
		t.Fatalf("Lookup(aarch64-netbsd): %v", err)
	}
	if _, err := Lookup("ld.lld"); err == nil {
		t.Fatalf("Lookup(ld.lld) should fail")
	}
	if _, err := Lookup("my"); err == nil {
		t.Fatalf("Lookup(my) should fail")
	}
}

func TestFromProgramName(t *testing.T) {
	host := Host()
	cases := []struct {
		argv0 string
		want  string
	}{
		{"aarch64-netbsd-ld", "aarch64-netbsd"},
		{"/usr/local/bin/aarch64-netbsd-ld", "aarch64-netbsd"},
		{"x86_64-unknown-netbsd-ld.lld", "x86_64-unknown-netbsd"},
		{"armv7-netbsd-eabihf-ld", "armv7-netbsd-eabihf"},
		{"ld.lld", host.String()},
		{"ld", host.String()},
		{"my-linker", host.String()},
		{"-ld", host.String()},
	}
	for _, tc := range cases {
		got := FromProgramName(tc.argv0)
		if got.String() != tc.want {
			t.Fatalf("FromProgramName(%q) = %q, want %q", tc.argv0, got.String(), tc.want)
		}
	}
}

func TestFromProgramNameIgnoresSuffix(t *testing.T) {
	// Any suffix after the last '-' is irrelevant once the prefix is a
	// recognized target.
	for _, argv0 := range []string{"aarch64-netbsd-ld", "aarch64-netbsd-linker", "aarch64-netbsd-x"} {
		got := FromProgramName(argv0)
		if got.Arch != ArchAArch64 || got.OS != OSNetBSD {
			t.Fatalf("FromProgramName(%q) = %q, want aarch64-netbsd", argv0, got.String())
		}
	}
}

func TestHost(t *testing.T) {
	host := Host()
	if host.String() == "" {
		t.Fatalf("Host() produced an empty triple")
	}
	switch runtime.GOARCH {
	case "amd64":
		if host.Arch != ArchX86_64 {
			t.Fatalf("Host().Arch = %v, want x86_64", host.Arch)
		}
	case "arm64":
		if host.Arch != ArchAArch64 {
			t.Fatalf("Host().Arch = %v, want aarch64", host.Arch)
		}
	}
}
