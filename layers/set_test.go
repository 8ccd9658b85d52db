package layers

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/AvianY/xi-editor/spans"
	"github.com/AvianY/xi-editor/styles"
	"github.com/AvianY/xi-editor/theme"
)

// stubResolver maps space-joined stacks to fixed styles.
type stubResolver struct {
	styles map[string]styles.Style
}

func (r stubResolver) StyleForStack(stack []styles.Scope) styles.Style {
	names := make([]string, 0, len(stack))
	for _, sc := range stack {
		names = append(names, sc.String())
	}
	return r.styles[strings.Join(names, " ")]
}

var (
	red   = styles.Style{}.WithFg(0xFF0000FF)
	blue  = styles.Style{}.WithFg(0x0000FFFF)
	green = styles.Style{}.WithFg(0x00FF00FF)
	bold  = styles.Style{}.WithBold(true)
)

type styledSpan struct {
	Iv    spans.Interval
	Style string
}

func merged(s *Set) []styledSpan {
	var out []styledSpan
	for iv, st := range s.Merged().Iter() {
		out = append(out, styledSpan{iv, st.String()})
	}
	return out
}

// indexSpans builds a scope index map of the given length where each
// triple (start, end, index) annotates one range.
func indexSpans(length int, triples ...int) spans.Spans[uint32] {
	b := spans.NewBuilder[uint32](length)
	b.Gap(NoScope)
	for i := 0; i+2 < len(triples); i += 3 {
		b.Add(spans.Interval{Start: triples[i], End: triples[i+1]}, uint32(triples[i+2]))
	}
	return b.Build()
}

func checkLengths(t *testing.T, s *Set) {
	t.Helper()
	want := s.Merged().Len()
	for id, l := range s.layers {
		if l.scopeSpans.Len() != want || l.styleSpans.Len() != want {
			t.Errorf("layer %d lengths: scopes %d, styles %d, want %d",
				id, l.scopeSpans.Len(), l.styleSpans.Len(), want)
		}
	}
}

func TestZeroLayers(t *testing.T) {
	s := New(5)
	want := []styledSpan{{spans.Interval{Start: 0, End: 5}, "default"}}
	if diff := cmp.Diff(want, merged(s)); diff != "" {
		t.Errorf("merged mismatch (-want +got):\n%s", diff)
	}
}

func TestUpdateAll(t *testing.T) {
	res := stubResolver{map[string]styles.Style{"keyword": red}}
	s := New(10)
	s.AddScopes(1, [][]string{{"keyword"}}, res)
	s.UpdateLayer(1, spans.Interval{Start: 0, End: 10}, indexSpans(10, 0, 10, 0))

	// Replace [2, 5) with 4 units of fresh, unannotated text.
	s.UpdateAll(spans.Interval{Start: 2, End: 5}, 4)

	if s.Len() != 11 {
		t.Fatalf("Len() = %d, want 11", s.Len())
	}
	checkLengths(t, s)
	want := []styledSpan{
		{spans.Interval{Start: 0, End: 2}, red.String()},
		{spans.Interval{Start: 2, End: 6}, "default"},
		{spans.Interval{Start: 6, End: 11}, red.String()},
	}
	if diff := cmp.Diff(want, merged(s)); diff != "" {
		t.Errorf("merged mismatch (-want +got):\n%s", diff)
	}
}

func TestPrecedence(t *testing.T) {
	t.Run("disjoint attributes combine", func(t *testing.T) {
		s := New(10)
		s.AddScopes(1, [][]string{{"keyword"}}, stubResolver{map[string]styles.Style{"keyword": red}})
		s.AddScopes(2, [][]string{{"markup.bold"}}, stubResolver{map[string]styles.Style{"markup.bold": bold}})
		s.UpdateLayer(1, spans.Interval{Start: 0, End: 10}, indexSpans(10, 0, 10, 0))
		s.UpdateLayer(2, spans.Interval{Start: 0, End: 10}, indexSpans(10, 0, 10, 0))

		want := []styledSpan{{spans.Interval{Start: 0, End: 10}, red.Merge(bold).String()}}
		if diff := cmp.Diff(want, merged(s)); diff != "" {
			t.Errorf("merged mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("higher id overrides set attributes", func(t *testing.T) {
		s := New(10)
		s.AddScopes(1, [][]string{{"keyword"}}, stubResolver{map[string]styles.Style{"keyword": red.WithBold(true)}})
		s.AddScopes(2, [][]string{{"string"}}, stubResolver{map[string]styles.Style{"string": blue}})
		s.UpdateLayer(1, spans.Interval{Start: 0, End: 10}, indexSpans(10, 0, 10, 0))
		s.UpdateLayer(2, spans.Interval{Start: 0, End: 10}, indexSpans(10, 0, 10, 0))

		want := []styledSpan{{spans.Interval{Start: 0, End: 10}, blue.WithBold(true).String()}}
		if diff := cmp.Diff(want, merged(s)); diff != "" {
			t.Errorf("merged mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("registration order does not matter", func(t *testing.T) {
		s := New(10)
		// Higher id registers first; it still paints on top.
		s.AddScopes(2, [][]string{{"string"}}, stubResolver{map[string]styles.Style{"string": blue}})
		s.UpdateLayer(2, spans.Interval{Start: 0, End: 10}, indexSpans(10, 0, 10, 0))
		s.AddScopes(1, [][]string{{"keyword"}}, stubResolver{map[string]styles.Style{"keyword": red}})
		s.UpdateLayer(1, spans.Interval{Start: 0, End: 10}, indexSpans(10, 0, 10, 0))

		want := []styledSpan{{spans.Interval{Start: 0, End: 10}, blue.String()}}
		if diff := cmp.Diff(want, merged(s)); diff != "" {
			t.Errorf("merged mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestIdempotence(t *testing.T) {
	res := stubResolver{map[string]styles.Style{"keyword": red, "string": green}}
	apply := func(s *Set) {
		s.AddScopes(1, [][]string{{"keyword"}, {"string"}}, res)
		s.UpdateLayer(1, spans.Interval{Start: 0, End: 8}, indexSpans(8, 0, 3, 0, 3, 6, 1))
	}
	s := New(8)
	apply(s)
	first := merged(s)
	s.UpdateLayer(1, spans.Interval{Start: 0, End: 8}, indexSpans(8, 0, 3, 0, 3, 6, 1))
	if diff := cmp.Diff(first, merged(s)); diff != "" {
		t.Errorf("re-resolving the same data changed output (-first +second):\n%s", diff)
	}
}

func TestCoalescing(t *testing.T) {
	// Two distinct stacks resolving to the same style: their abutting
	// spans collapse into one style span.
	res := stubResolver{map[string]styles.Style{"keyword": red, "storage": red}}
	s := New(10)
	s.AddScopes(1, [][]string{{"keyword"}, {"storage"}}, res)
	s.UpdateLayer(1, spans.Interval{Start: 0, End: 10}, indexSpans(10, 0, 3, 0, 3, 6, 1))

	l := s.layers[1]
	if l.scopeSpans.Count() != 3 {
		t.Errorf("scope span count = %d, want 3", l.scopeSpans.Count())
	}
	var got []styledSpan
	for iv, st := range l.styleSpans.Iter() {
		got = append(got, styledSpan{iv, st.String()})
	}
	want := []styledSpan{
		{spans.Interval{Start: 0, End: 6}, red.String()},
		{spans.Interval{Start: 6, End: 10}, "default"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("style spans not coalesced (-want +got):\n%s", diff)
	}
}

func TestRemoveLayer(t *testing.T) {
	resA := stubResolver{map[string]styles.Style{"keyword": red}}
	resB := stubResolver{map[string]styles.Style{"string": bold}}

	both := New(10)
	both.AddScopes(1, [][]string{{"keyword"}}, resA)
	both.UpdateLayer(1, spans.Interval{Start: 0, End: 10}, indexSpans(10, 0, 4, 0))
	both.AddScopes(2, [][]string{{"string"}}, resB)
	both.UpdateLayer(2, spans.Interval{Start: 0, End: 10}, indexSpans(10, 2, 8, 0))
	if both.RemoveLayer(1) == nil {
		t.Fatalf("RemoveLayer(1) = nil, want removed layer")
	}

	only := New(10)
	only.AddScopes(2, [][]string{{"string"}}, resB)
	only.UpdateLayer(2, spans.Interval{Start: 0, End: 10}, indexSpans(10, 2, 8, 0))

	if diff := cmp.Diff(merged(only), merged(both)); diff != "" {
		t.Errorf("after removal merged differs from fresh set (-only +both):\n%s", diff)
	}
	checkLengths(t, both)

	if both.RemoveLayer(7) != nil {
		t.Errorf("RemoveLayer of unknown id returned a layer")
	}
}

func TestThemeChanged(t *testing.T) {
	before := stubResolver{map[string]styles.Style{"keyword": red}}
	after := stubResolver{map[string]styles.Style{"keyword": green}}

	s := New(10)
	s.AddScopes(1, [][]string{{"keyword"}}, before)
	s.UpdateLayer(1, spans.Interval{Start: 0, End: 10}, indexSpans(10, 0, 5, 0))

	l := s.layers[1]
	scopesBefore := l.scopeSpans.Count()
	stacksBefore := len(l.stackLookup)

	s.ThemeChanged(after)

	if l.scopeSpans.Count() != scopesBefore {
		t.Errorf("theme change altered scope spans")
	}
	if len(l.stackLookup) != stacksBefore {
		t.Errorf("theme change altered stack lookup")
	}
	want := []styledSpan{
		{spans.Interval{Start: 0, End: 5}, green.String()},
		{spans.Interval{Start: 5, End: 10}, "default"},
	}
	if diff := cmp.Diff(want, merged(s)); diff != "" {
		t.Errorf("merged mismatch (-want +got):\n%s", diff)
	}
	checkLengths(t, s)
}

func TestAddScopesDropsBadNames(t *testing.T) {
	res := stubResolver{map[string]styles.Style{"string": green}}
	s := New(5)
	// The malformed name drops out; the stack resolves with what is left.
	s.AddScopes(1, [][]string{{"keyword..bad", "string"}}, res)

	l := s.layers[1]
	if got := len(l.stackLookup[0]); got != 1 {
		t.Fatalf("stack has %d scopes, want 1", got)
	}
	if !l.styleLookup[0].Equal(green) {
		t.Errorf("style = %v, want %v", l.styleLookup[0], green)
	}
	// The diagnostic lookup keeps the original names.
	if got := len(l.nameLookup[0]); got != 2 {
		t.Errorf("name lookup has %d entries, want 2", got)
	}
}

func TestEndToEnd(t *testing.T) {
	resolver := theme.NewMap(theme.Light())
	s := New(5)
	s.AddScopes(1, [][]string{{"source.x", "keyword"}}, resolver)
	s.UpdateLayer(1, spans.Interval{Start: 0, End: 5}, indexSpans(5, 0, 5, 0))

	want := resolver.StyleForStack(stack("source.x", "keyword"))
	got := []styledSpan(nil)
	for iv, st := range s.Merged().Subseq(spans.Interval{Start: 0, End: 5}).Iter() {
		got = append(got, styledSpan{iv, st.String()})
	}
	wantSpans := []styledSpan{{spans.Interval{Start: 0, End: 5}, want.String()}}
	if diff := cmp.Diff(wantSpans, got); diff != "" {
		t.Errorf("merged mismatch (-want +got):\n%s", diff)
	}
}

func stack(names ...string) []styles.Scope {
	out := make([]styles.Scope, 0, len(names))
	for _, n := range names {
		out = append(out, styles.MustScope(n))
	}
	return out
}
