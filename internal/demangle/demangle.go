// Package demangle turns mangled function names into display names for
// explanation strings. It never affects analysis results, only how function
// identities are rendered.
package demangle

import (
	"strconv"
	"strings"
)

// Demangler implements ir.Demangler using a simplified Itanium C++ name
// mangling scheme: a name is joined from dot-separated segments (mirroring
// how a linkage name can carry a qualified path), each segment demangled
// independently and rejoined with '.'.
type Demangler struct{}

// New returns a Demangler.
func New() Demangler { return Demangler{} }

// Demangle maps a mangled name to a displayable one. Unrecognized input is
// returned unchanged — the analysis must never fail on an unmangled or
// already-friendly name.
func (Demangler) Demangle(mangled string) string {
	var out strings.Builder
	tail := mangled
	first := true
	for tail != "" {
		head, rest, found := strings.Cut(tail, ".")
		if !first {
			out.WriteByte('.')
		}
		first = false
		out.WriteString(demangleOne(head))
		if !found {
			break
		}
		tail = rest
	}
	return out.String()
}

// demangleOne demangles a single Itanium-mangled identifier of the form
// "_Z" <length><name>..., joining consecutive length-prefixed identifiers
// with "::" and stopping at the first token that is not one, ignoring any
// template/argument encoding that follows — sufficient for explanation
// strings, not a full demangler.
func demangleOne(name string) string {
	rest, ok := strings.CutPrefix(name, "_Z")
	if !ok {
		return name
	}
	rest = strings.TrimPrefix(rest, "N") // nested-name prefix, e.g. namespaces
	var parts []string
	for rest != "" {
		n, digits := leadingDigits(rest)
		if digits == 0 {
			break
		}
		if n <= 0 || n > len(rest[digits:]) {
			break
		}
		parts = append(parts, rest[digits:digits+n])
		rest = rest[digits+n:]
	}
	if len(parts) == 0 {
		return name
	}
	return strings.Join(parts, "::")
}

func leadingDigits(s string) (n, width int) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 {
		return 0, 0
	}
	v, err := strconv.Atoi(s[:i])
	if err != nil {
		return 0, 0
	}
	return v, i
}
