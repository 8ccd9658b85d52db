package layers

import (
	"fmt"
	"slices"

	"github.com/AvianY/xi-editor/spans"
	"github.com/AvianY/xi-editor/styles"
)

// SourceID identifies a contributing source. Merge precedence follows
// ascending SourceID order: a layer with a larger id paints on top of
// one with a smaller id wherever they overlap.
type SourceID int

// Set owns all scope layers for one document plus the merged style map
// exposed to the renderer. It performs no internal synchronization; all
// operations are invoked serially from the document's update session.
type Set struct {
	layers map[SourceID]*ScopeLayer
	ids    []SourceID // ascending
	merged spans.Spans[styles.Style]
}

// New returns a Set for a document of the given length, with no layers
// registered and the merged map holding the default style throughout.
func New(length int) *Set {
	return &Set{
		layers: make(map[SourceID]*ScopeLayer),
		merged: spans.New[styles.Style](length),
	}
}

// Len returns the current document length.
func (s *Set) Len() int { return s.merged.Len() }

// Merged returns the composited style map covering the whole document.
// Callers must treat it as read-only.
func (s *Set) Merged() *spans.Spans[styles.Style] { return &s.merged }

// AddScopes registers stacks in id's lookup tables, resolving their
// styles via resolver. The layer is created if absent. No span-visible
// change and no merge recomputation happen here.
func (s *Set) AddScopes(id SourceID, stacks [][]string, resolver styles.Resolver) {
	s.createIfMissing(id).addScopes(stacks, resolver)
}

// UpdateLayer replaces id's scope spans over iv with sp and recomposites
// the merged map for exactly that region. The layer is created if
// absent. Length changes travel through UpdateAll only, so sp's length
// must equal iv's.
func (s *Set) UpdateLayer(id SourceID, iv spans.Interval, sp spans.Spans[uint32]) {
	s.createIfMissing(id).updateScopes(iv, sp)
	s.resolveStyles(iv)
}

// UpdateAll replaces iv in every registered layer and in the merged map
// with unannotated content of length newLen. The document edit pipeline
// calls this for every edit, before any source re-supplies data for the
// region; until then the region renders with the default style.
func (s *Set) UpdateAll(iv spans.Interval, newLen int) {
	s.merged.Edit(iv, spans.New[styles.Style](newLen))
	empty := spans.Uniform(newLen, NoScope)
	for _, id := range s.ids {
		s.layers[id].updateScopes(iv, empty)
	}
	s.resolveStyles(spans.Interval{Start: iv.Start, End: iv.Start + newLen})
}

// RemoveLayer deletes id's layer and returns it, or nil if no such layer
// exists. Any region may have drawn its style exclusively from the
// removed layer, so the whole merged map is recomputed.
func (s *Set) RemoveLayer(id SourceID) *ScopeLayer {
	l, ok := s.layers[id]
	if !ok {
		return nil
	}
	delete(s.layers, id)
	i := slices.Index(s.ids, id)
	s.ids = slices.Delete(s.ids, i, i+1)
	s.merged = spans.New[styles.Style](s.merged.Len())
	s.resolveStyles(spans.Interval{End: s.merged.Len()})
	return l
}

// ThemeChanged re-resolves every layer's styles against the new theme
// and recomputes the merged map over the whole document. Scope spans and
// stack lookups are untouched.
func (s *Set) ThemeChanged(resolver styles.Resolver) {
	for _, id := range s.ids {
		s.layers[id].themeChanged(resolver)
	}
	s.merged = spans.New[styles.Style](s.merged.Len())
	s.resolveStyles(spans.Interval{End: s.merged.Len()})
}

// resolveStyles recomposites the merged map over iv from all layers in
// ascending SourceID order. With no layers registered the merged map is
// left as the caller defaulted it.
func (s *Set) resolveStyles(iv spans.Interval) {
	if len(s.ids) == 0 {
		return
	}
	resolved := s.layers[s.ids[0]].styleSpans.Subseq(iv)
	for _, id := range s.ids[1:] {
		overlay := s.layers[id].styleSpans.Subseq(iv)
		if overlay.Len() != resolved.Len() {
			panic(fmt.Sprintf("internal error: layers: layer %d style spans cover %d, want %d",
				id, overlay.Len(), resolved.Len()))
		}
		resolved = resolved.Merge(overlay, mergeStyle)
	}
	s.merged.Edit(iv, resolved)
}

// mergeStyle overlays b onto a, attribute by attribute. A nil b keeps a;
// that branch is unreachable while every layer covers the full document.
func mergeStyle(a styles.Style, b *styles.Style) styles.Style {
	if b == nil {
		return a
	}
	return a.Merge(*b)
}

func (s *Set) createIfMissing(id SourceID) *ScopeLayer {
	l, ok := s.layers[id]
	if !ok {
		l = newScopeLayer(s.merged.Len())
		s.layers[id] = l
		s.ids = append(s.ids, id)
		slices.Sort(s.ids)
	}
	return l
}
