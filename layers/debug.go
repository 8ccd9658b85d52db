package layers

import (
	"fmt"
	"io"

	"github.com/sanity-io/litter"

	"github.com/AvianY/xi-editor/spans"
)

var dump = litter.Options{Compact: true}

// DebugSpans writes each layer's scope names and resolved styles over iv
// to w. The output is for humans; nothing parses it and its shape is not
// a compatibility surface.
func (s *Set) DebugSpans(w io.Writer, iv spans.Interval) {
	for _, id := range s.ids {
		l := s.layers[id]
		scopes := l.scopeSpans.Subseq(iv)
		if scopes.Count() == 0 {
			continue
		}
		fmt.Fprintf(w, "scopes for layer %d:\n", id)
		for siv, idx := range scopes.Iter() {
			if idx == NoScope {
				fmt.Fprintf(w, "%v: (none)\n", siv)
				continue
			}
			fmt.Fprintf(w, "%v: %v\n", siv, l.nameLookup[idx])
		}
		fmt.Fprintln(w, "styles:")
		for siv, st := range l.styleSpans.Subseq(iv).Iter() {
			fmt.Fprintf(w, "%v: %s\n", siv, dump.Sdump(st))
		}
	}
}
