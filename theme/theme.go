// Package theme resolves scope stacks to styles. A Theme is an ordered
// set of selector rules; a Map wraps the theme shared by every document
// session behind a mutex so resolution from concurrent sessions stays
// serialized.
package theme

import (
	"slices"

	"github.com/AvianY/xi-editor/styles"
)

// Rule pairs a selector with the style it contributes.
type Rule struct {
	Selector Selector
	Style    styles.Style
}

// Theme maps scope stacks to styles.
type Theme struct {
	Name    string
	Default styles.Style
	Rules   []Rule
}

// StyleForStack resolves a scope stack against the theme. Matching rules
// are applied over Default in ascending specificity order, so the most
// specific rule has the final say for each attribute it sets. Rule order
// breaks specificity ties: later rules win.
func (t *Theme) StyleForStack(stack []styles.Scope) styles.Style {
	type match struct {
		depth, atoms, order int
		style               styles.Style
	}
	var ms []match
	for i, r := range t.Rules {
		if ok, depth, atoms := r.Selector.Match(stack); ok {
			ms = append(ms, match{depth, atoms, i, r.Style})
		}
	}
	slices.SortFunc(ms, func(a, b match) int {
		if a.depth != b.depth {
			return a.depth - b.depth
		}
		if a.atoms != b.atoms {
			return a.atoms - b.atoms
		}
		return a.order - b.order
	})
	out := t.Default
	for _, m := range ms {
		out = out.Merge(m.style)
	}
	return out
}

// Light is the built-in light theme, in the editor's default palette.
func Light() *Theme {
	return &Theme{
		Name:    "light",
		Default: styles.Style{}.WithFg(styles.Black).WithBg(0xFFFFEAFF),
		Rules: []Rule{
			{MustSelector("comment"), styles.Style{}.WithFg(0x777777FF).WithItalic(true)},
			{MustSelector("keyword"), styles.Style{}.WithFg(0x3F00B5FF).WithBold(true)},
			{MustSelector("storage"), styles.Style{}.WithFg(0x3F00B5FF)},
			{MustSelector("string"), styles.Style{}.WithFg(0x006600FF)},
			{MustSelector("constant.numeric"), styles.Style{}.WithFg(0x0000AAFF)},
			{MustSelector("constant"), styles.Style{}.WithFg(0x116611FF)},
			{MustSelector("entity.name"), styles.Style{}.WithFg(0xAA0000FF)},
			{MustSelector("variable.parameter"), styles.Style{}.WithItalic(true)},
			{MustSelector("invalid"), styles.Style{}.WithFg(styles.White).WithBg(0xAA0000FF)},
			{MustSelector("markup.bold"), styles.Style{}.WithBold(true)},
			{MustSelector("markup.italic"), styles.Style{}.WithItalic(true)},
			{MustSelector("markup.underline"), styles.Style{}.WithUnderline(true)},
		},
	}
}

// Dark is the built-in dark theme.
func Dark() *Theme {
	return &Theme{
		Name:    "dark",
		Default: styles.Style{}.WithFg(0xEEEEEEFF).WithBg(0x222222FF),
		Rules: []Rule{
			{MustSelector("comment"), styles.Style{}.WithFg(0x888888FF).WithItalic(true)},
			{MustSelector("keyword"), styles.Style{}.WithFg(0xAA99FFFF).WithBold(true)},
			{MustSelector("storage"), styles.Style{}.WithFg(0xAA99FFFF)},
			{MustSelector("string"), styles.Style{}.WithFg(0x88CC88FF)},
			{MustSelector("constant.numeric"), styles.Style{}.WithFg(0x8888EEFF)},
			{MustSelector("constant"), styles.Style{}.WithFg(0x77BB77FF)},
			{MustSelector("entity.name"), styles.Style{}.WithFg(0xEE8888FF)},
			{MustSelector("variable.parameter"), styles.Style{}.WithItalic(true)},
			{MustSelector("invalid"), styles.Style{}.WithFg(styles.White).WithBg(0xAA0000FF)},
			{MustSelector("markup.bold"), styles.Style{}.WithBold(true)},
			{MustSelector("markup.italic"), styles.Style{}.WithItalic(true)},
			{MustSelector("markup.underline"), styles.Style{}.WithUnderline(true)},
		},
	}
}
