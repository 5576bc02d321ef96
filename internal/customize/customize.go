// Package customize injects per-platform linker flags ahead of the
// caller's arguments, keyed on the resolved target triple.
package customize

import "lldshim/internal/target"

// Rule contributes flags for the targets it matches. Rules are independent
// of each other; adding support for another OS means appending a rule, not
// editing existing ones.
type Rule struct {
	Name    string
	Matches func(target.Triple) bool
	Flags   func(target.Triple) []string
}

var rules = []Rule{
	{
		Name:    "netbsd",
		Matches: func(t target.Triple) bool { return t.OS == target.OSNetBSD },
		Flags:   netbsdFlags,
	},
}

// For returns the flags to place ahead of the caller's arguments for the
// given triple, in rule registration order. Targets no rule matches get
// none.
func For(t target.Triple) []string {
	var flags []string
	for _, r := range rules {
		if r.Matches(t) {
			flags = append(flags, r.Flags(t)...)
		}
	}
	return flags
}
