package theme

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/AvianY/xi-editor/styles"
)

// Selector matches scope stacks. It is a comma-separated list of
// alternatives, each a sequence of scope names matched as descendants:
// "text.html string.quoted" matches any stack containing a scope with
// prefix "text.html" somewhere above one with prefix "string.quoted".
type Selector struct {
	src   string
	paths [][]styles.Scope
}

//nolint:govet // participle grammar tags are not standard struct tags
type selectorGrammar struct {
	Paths []*pathGrammar `@@ ( "," @@ )*`
}

//nolint:govet // participle grammar tags are not standard struct tags
type pathGrammar struct {
	Scopes []string `@Scope+`
}

var selectorLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Scope", Pattern: `[A-Za-z0-9_+-]+(\.[A-Za-z0-9_+-]+)*`},
	{Name: "Comma", Pattern: `,`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var selectorParser = participle.MustBuild[selectorGrammar](
	participle.Lexer(selectorLexer),
	participle.Elide("Whitespace"),
)

// ParseSelector parses a selector string.
func ParseSelector(s string) (Selector, error) {
	parsed, err := selectorParser.ParseString("", s)
	if err != nil {
		return Selector{}, fmt.Errorf("invalid selector %q: %w", s, err)
	}
	sel := Selector{src: s}
	for _, p := range parsed.Paths {
		path := make([]styles.Scope, 0, len(p.Scopes))
		for _, name := range p.Scopes {
			sc, err := styles.ParseScope(name)
			if err != nil {
				return Selector{}, fmt.Errorf("invalid selector %q: %w", s, err)
			}
			path = append(path, sc)
		}
		sel.paths = append(sel.paths, path)
	}
	return sel, nil
}

// MustSelector is like ParseSelector but panics on error. For fixed
// selectors in built-in themes and tests.
func MustSelector(s string) Selector {
	sel, err := ParseSelector(s)
	if err != nil {
		panic(err)
	}
	return sel
}

// String returns the selector source text. See fmt.Stringer interface.
func (sel Selector) String() string { return sel.src }

// Match reports whether the selector matches the stack, together with
// the specificity of the best matching alternative: the index of the
// deepest stack scope it touched and the total number of atoms its
// scopes carry. Deeper and more atom-rich matches rank higher.
func (sel Selector) Match(stack []styles.Scope) (matched bool, depth, atoms int) {
	depth = -1
	for _, path := range sel.paths {
		d, ok := matchPath(path, stack)
		if !ok {
			continue
		}
		a := 0
		for _, sc := range path {
			a += len(sc.Atoms())
		}
		if !matched || d > depth || (d == depth && a > atoms) {
			depth, atoms = d, a
		}
		matched = true
	}
	return matched, depth, atoms
}

// matchPath matches path scopes against stack scopes in order, each path
// scope a prefix of some stack scope strictly deeper than the previous
// match. Returns the stack index of the last match.
func matchPath(path, stack []styles.Scope) (depth int, ok bool) {
	i := 0
	depth = -1
	for _, want := range path {
		for i < len(stack) && !want.IsPrefixOf(stack[i]) {
			i++
		}
		if i == len(stack) {
			return 0, false
		}
		depth = i
		i++
	}
	return depth, true
}
