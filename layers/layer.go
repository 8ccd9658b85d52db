// Package layers aggregates scope annotations contributed by independent
// sources over one document and composites them into a single style map.
//
// Sources (syntax plugins, linters) register scope-name stacks and then
// supply, per edited region, which stack applies to which offset range.
// Each contribution updates that source's layer locally; the Set then
// recomposites the merged style map for exactly the touched region, in
// ascending SourceID order.
package layers

import (
	"log/slog"
	"strings"

	"github.com/AvianY/xi-editor/spans"
	"github.com/AvianY/xi-editor/styles"
)

// NoScope marks a position no source has annotated yet. It resolves to
// the default style.
const NoScope = ^uint32(0)

// ScopeLayer holds one source's contributed data: lookup tables mapping
// small indices to scope stacks and their resolved styles, the scope
// index spans, and the derived, coalesced style spans.
type ScopeLayer struct {
	stackLookup [][]styles.Scope
	styleLookup []styles.Style
	// Human readable scope names, for debugging.
	nameLookup [][]string
	scopeSpans spans.Spans[uint32]
	styleSpans spans.Spans[styles.Style]
}

func newScopeLayer(length int) *ScopeLayer {
	return &ScopeLayer{
		scopeSpans: spans.Uniform(length, NoScope),
		styleSpans: spans.New[styles.Style](length),
	}
}

// addScopes appends stacks to the lookup tables, resolving each against
// the current theme. A scope name that fails to parse is dropped from
// its stack and logged; the stack proceeds with its remaining names.
func (l *ScopeLayer) addScopes(stacks [][]string, resolver styles.Resolver) {
	parsed := make([][]styles.Scope, 0, len(stacks))
	for _, stack := range stacks {
		scopes := make([]styles.Scope, 0, len(stack))
		for _, name := range stack {
			sc, err := styles.ParseScope(name)
			if err != nil {
				slog.Warn("layers: dropping unresolvable scope",
					"stack", strings.Join(stack, " "), "err", err)
				continue
			}
			scopes = append(scopes, sc)
		}
		parsed = append(parsed, scopes)
		l.nameLookup = append(l.nameLookup, stack)
	}
	l.styleLookup = append(l.styleLookup, l.stylesForStacks(parsed, resolver)...)
	l.stackLookup = append(l.stackLookup, parsed...)
}

func (l *ScopeLayer) stylesForStacks(stacks [][]styles.Scope, resolver styles.Resolver) []styles.Style {
	out := make([]styles.Style, 0, len(stacks))
	for _, stack := range stacks {
		out = append(out, resolver.StyleForStack(stack))
	}
	return out
}

// updateScopes replaces the scope spans over iv with sp, then recomputes
// the style spans for the same region. Indices in sp must be valid
// against this layer's lookup tables, or NoScope.
func (l *ScopeLayer) updateScopes(iv spans.Interval, sp spans.Spans[uint32]) {
	l.scopeSpans.Edit(iv, sp)
	l.updateStyles(iv, sp)
}

// updateStyles maps each scope index in sp to its resolved style and
// coalesces runs of exactly abutting spans with equal styles. Distinct
// adjacent scopes often resolve to the same style, so this keeps the
// span count down for the merge and for the wire.
func (l *ScopeLayer) updateStyles(iv spans.Interval, sp spans.Spans[uint32]) {
	b := spans.NewBuilder[styles.Style](sp.Len())
	var (
		cur  spans.Interval
		st   styles.Style
		have bool
	)
	for siv, idx := range sp.Iter() {
		next := l.styleFor(idx)
		if have && cur.End == siv.Start && st.Equal(next) {
			cur.End = siv.End
			continue
		}
		if have {
			b.Add(cur, st)
		}
		cur, st, have = siv, next, true
	}
	if have {
		b.Add(cur, st)
	}
	l.styleSpans.Edit(iv, b.Build())
}

func (l *ScopeLayer) styleFor(idx uint32) styles.Style {
	if idx == NoScope {
		return styles.Style{}
	}
	return l.styleLookup[idx]
}

// themeChanged re-resolves every registered stack against the new theme
// and rebuilds the style spans from the unchanged scope spans.
func (l *ScopeLayer) themeChanged(resolver styles.Resolver) {
	l.styleLookup = l.stylesForStacks(l.stackLookup, resolver)
	all := spans.Interval{Start: 0, End: l.scopeSpans.Len()}
	l.updateStyles(all, l.scopeSpans.Subseq(all))
}

// Stacks returns the registered scope stacks, in index order.
func (l *ScopeLayer) Stacks() [][]styles.Scope { return l.stackLookup }
