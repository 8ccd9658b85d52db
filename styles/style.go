// Package styles defines the visual attribute model shared by scope
// layers, themes and the renderer: colors, validated scope names, and
// the Style type whose attributes may individually be left unset.
package styles

import "strings"

// Style is a set of optional visual attributes. A nil field is unset and
// falls through to whatever the style is painted over; the zero value
// leaves everything unset and renders as the default style.
type Style struct {
	Fg        *Color
	Bg        *Color
	Bold      *bool
	Italic    *bool
	Underline *bool
}

// Merge overlays o onto s: attributes o sets take precedence, the rest
// keep s's values.
func (s Style) Merge(o Style) Style {
	r := s
	if o.Fg != nil {
		r.Fg = o.Fg
	}
	if o.Bg != nil {
		r.Bg = o.Bg
	}
	if o.Bold != nil {
		r.Bold = o.Bold
	}
	if o.Italic != nil {
		r.Italic = o.Italic
	}
	if o.Underline != nil {
		r.Underline = o.Underline
	}
	return r
}

// Equal reports structural equality: two styles are equal when each
// attribute is either unset in both or set to the same value in both.
func (s Style) Equal(o Style) bool {
	return eqColor(s.Fg, o.Fg) &&
		eqColor(s.Bg, o.Bg) &&
		eqBool(s.Bold, o.Bold) &&
		eqBool(s.Italic, o.Italic) &&
		eqBool(s.Underline, o.Underline)
}

func eqColor(a, b *Color) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func eqBool(a, b *bool) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// IsDefault reports whether no attribute is set.
func (s Style) IsDefault() bool {
	return s.Fg == nil && s.Bg == nil && s.Bold == nil && s.Italic == nil && s.Underline == nil
}

// WithFg returns s with the foreground color set.
func (s Style) WithFg(c Color) Style { s.Fg = &c; return s }

// WithBg returns s with the background color set.
func (s Style) WithBg(c Color) Style { s.Bg = &c; return s }

// WithBold returns s with the bold attribute set.
func (s Style) WithBold(b bool) Style { s.Bold = &b; return s }

// WithItalic returns s with the italic attribute set.
func (s Style) WithItalic(b bool) Style { s.Italic = &b; return s }

// WithUnderline returns s with the underline attribute set.
func (s Style) WithUnderline(b bool) Style { s.Underline = &b; return s }

// String returns a compact, human readable rendering such as
// "fg=#ff0000 bold" or "default".
func (s Style) String() string {
	var parts []string
	if s.Fg != nil {
		parts = append(parts, "fg="+s.Fg.String())
	}
	if s.Bg != nil {
		parts = append(parts, "bg="+s.Bg.String())
	}
	parts = appendFlag(parts, "bold", s.Bold)
	parts = appendFlag(parts, "italic", s.Italic)
	parts = appendFlag(parts, "underline", s.Underline)
	if len(parts) == 0 {
		return "default"
	}
	return strings.Join(parts, " ")
}

func appendFlag(parts []string, name string, v *bool) []string {
	if v == nil {
		return parts
	}
	if *v {
		return append(parts, name)
	}
	return append(parts, "!"+name)
}
