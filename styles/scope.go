package styles

import (
	"errors"
	"fmt"
	"strings"
)

// Scope is a validated, dotted scope name such as "keyword.control.go".
// The zero value is the empty scope, which matches nothing.
type Scope struct {
	atoms []string
}

// ParseScope validates and parses a dotted scope name. Atoms are
// non-empty runs of letters, digits, '_', '-' and '+'.
func ParseScope(name string) (Scope, error) {
	if name == "" {
		return Scope{}, errors.New("empty scope name")
	}
	atoms := strings.Split(name, ".")
	for _, atom := range atoms {
		if atom == "" {
			return Scope{}, fmt.Errorf("scope %q: empty atom", name)
		}
		for _, r := range atom {
			if !isAtomRune(r) {
				return Scope{}, fmt.Errorf("scope %q: invalid character %q", name, r)
			}
		}
	}
	return Scope{atoms: atoms}, nil
}

// MustScope is like ParseScope but panics on error. For fixed scope
// names in themes and tests.
func MustScope(name string) Scope {
	s, err := ParseScope(name)
	if err != nil {
		panic(err)
	}
	return s
}

func isAtomRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == '_' || r == '-' || r == '+':
		return true
	}
	return false
}

// Atoms returns the scope's dot-separated components. Callers must not
// mutate the returned slice.
func (s Scope) Atoms() []string { return s.atoms }

// String returns a string representation of the scope. See fmt.Stringer interface.
func (s Scope) String() string { return strings.Join(s.atoms, ".") }

// IsPrefixOf reports whether every atom of s matches the leading atoms of
// other, so that "string.quoted" is a prefix of "string.quoted.double".
// The empty scope is a prefix of nothing.
func (s Scope) IsPrefixOf(other Scope) bool {
	if len(s.atoms) == 0 || len(s.atoms) > len(other.atoms) {
		return false
	}
	for i, a := range s.atoms {
		if other.atoms[i] != a {
			return false
		}
	}
	return true
}
