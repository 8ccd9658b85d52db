package spans

import "fmt"

// Builder assembles a span map of a fixed length from ascending, disjoint
// spans. Runs that no Add call covers take the gap value, so the built
// map always tiles its full length.
type Builder[T any] struct {
	length int
	gap    T
	spans  []span[T]
}

// NewBuilder returns a builder for a map of the given length. The gap
// value defaults to the zero value of T.
func NewBuilder[T any](length int) *Builder[T] {
	if length < 0 {
		panic(fmt.Sprintf("internal error: spans.NewBuilder: negative length %d", length))
	}
	return &Builder[T]{length: length}
}

// Gap sets the value used for runs not covered by Add.
func (b *Builder[T]) Gap(v T) { b.gap = v }

// Add appends a span. Spans must arrive in ascending order and must not
// overlap; violating either is a programming error. Empty intervals are
// ignored.
func (b *Builder[T]) Add(iv Interval, v T) {
	if iv.Start < 0 || iv.End < iv.Start || iv.End > b.length {
		panic(fmt.Sprintf("internal error: spans.Builder.Add: interval %v out of range for length %d", iv, b.length))
	}
	if iv.Empty() {
		return
	}
	if len(b.spans) > 0 && iv.Start < b.spans[len(b.spans)-1].iv.End {
		panic(fmt.Sprintf("internal error: spans.Builder.Add: interval %v out of order", iv))
	}
	b.spans = append(b.spans, span[T]{iv: iv, val: v})
}

// Build returns the finished map, filling uncovered runs with the gap
// value. The builder must not be reused afterwards.
func (b *Builder[T]) Build() Spans[T] {
	out := Spans[T]{length: b.length}
	pos := 0
	for _, sp := range b.spans {
		if sp.iv.Start > pos {
			out.spans = append(out.spans, span[T]{iv: Interval{pos, sp.iv.Start}, val: b.gap})
		}
		out.spans = append(out.spans, sp)
		pos = sp.iv.End
	}
	if pos < b.length {
		out.spans = append(out.spans, span[T]{iv: Interval{pos, b.length}, val: b.gap})
	}
	return out
}
