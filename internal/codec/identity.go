// Package codec turns the state of a bound command tree into a
// shell-executable command string and back. Export renders the enabled
// controls of one command path; Import parses a pasted command line and
// pushes the parsed values into the registry.
package codec

import "strings"

// DefaultInvocation prefixes exported path-identity command lines.
const DefaultInvocation = "go run"

// Identity describes how the program under the form is invoked from a
// shell. An entry-point identity is a bare installed command name; a
// path identity is a package path run through an invocation command.
type Identity struct {
	EntryPoint bool
	Name       string // command name, or package path when not an entry point
	Invocation string // e.g. "go run"; ignored for entry points
}

// EntryPointIdentity builds the identity of an installed command.
func EntryPointIdentity(name string) Identity {
	return Identity{EntryPoint: true, Name: name}
}

// PathIdentity builds the identity of a package run by path.
func PathIdentity(pkgPath string) Identity {
	return Identity{Name: pkgPath, Invocation: DefaultInvocation}
}

// prefix returns the tokens every exported command line starts with.
func (id Identity) prefix() []string {
	if id.EntryPoint {
		return []string{id.Name}
	}
	inv := id.Invocation
	if inv == "" {
		inv = DefaultInvocation
	}
	return append(strings.Fields(inv), id.Name)
}

// width is the number of leading tokens Import strips before command
// names begin.
func (id Identity) width() int {
	return len(id.prefix())
}
