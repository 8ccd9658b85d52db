// Package spans provides an ordered mapping from disjoint intervals to
// values that exactly covers a document of a known length. It is the
// substrate for scope and style bookkeeping: every position in [0, Len())
// belongs to exactly one span at all times, and edits shift or resize
// spans without ever leaving a gap.
package spans

import (
	"fmt"
	"iter"
)

type span[T any] struct {
	iv  Interval
	val T
}

// Spans is an ordered sequence of (Interval, value) pairs that tiles
// [0, Len()) with no gaps and no overlaps. Adjacent spans may hold equal
// values; nothing in this package coalesces them.
type Spans[T any] struct {
	length int
	spans  []span[T]
}

// New returns a map of the given length holding the zero value of T
// throughout.
func New[T any](length int) Spans[T] {
	var zero T
	return Uniform(length, zero)
}

// Uniform returns a map of the given length holding v throughout.
func Uniform[T any](length int, v T) Spans[T] {
	if length < 0 {
		panic(fmt.Sprintf("internal error: spans.Uniform: negative length %d", length))
	}
	s := Spans[T]{length: length}
	if length > 0 {
		s.spans = []span[T]{{iv: Interval{0, length}, val: v}}
	}
	return s
}

// Len returns the total length covered by the map.
func (s Spans[T]) Len() int { return s.length }

// Count returns the number of distinct spans.
func (s Spans[T]) Count() int { return len(s.spans) }

// Edit replaces the content covering iv with repl. The replacement's
// length need not match iv's; the difference changes the total length,
// shifting everything after iv. A span straddling an edit boundary is
// truncated at that boundary.
func (s *Spans[T]) Edit(iv Interval, repl Spans[T]) {
	s.checkInterval("Edit", iv)
	out := make([]span[T], 0, len(s.spans)+len(repl.spans))
	for _, sp := range s.spans {
		if sp.iv.Start >= iv.Start {
			break
		}
		cut := sp
		if cut.iv.End > iv.Start {
			cut.iv.End = iv.Start
		}
		out = append(out, cut)
	}
	for _, sp := range repl.spans {
		out = append(out, span[T]{
			iv:  Interval{sp.iv.Start + iv.Start, sp.iv.End + iv.Start},
			val: sp.val,
		})
	}
	delta := repl.length - iv.Len()
	for _, sp := range s.spans {
		if sp.iv.End <= iv.End {
			continue
		}
		cut := sp
		if cut.iv.Start < iv.End {
			cut.iv.Start = iv.End
		}
		cut.iv.Start += delta
		cut.iv.End += delta
		out = append(out, cut)
	}
	s.spans = out
	s.length += delta
}

// Subseq returns a copy of the map limited to iv, re-based so that it
// starts at offset 0. Its length equals iv.Len().
func (s Spans[T]) Subseq(iv Interval) Spans[T] {
	s.checkInterval("Subseq", iv)
	out := Spans[T]{length: iv.Len()}
	for _, sp := range s.spans {
		if sp.iv.End <= iv.Start {
			continue
		}
		if sp.iv.Start >= iv.End {
			break
		}
		cut := sp.iv
		if cut.Start < iv.Start {
			cut.Start = iv.Start
		}
		if cut.End > iv.End {
			cut.End = iv.End
		}
		out.spans = append(out.spans, span[T]{
			iv:  Interval{cut.Start - iv.Start, cut.End - iv.Start},
			val: sp.val,
		})
	}
	return out
}

// Iter returns an iterator over the spans in ascending order. Each call
// yields the sequence from the start; iteration does not mutate the map.
func (s Spans[T]) Iter() iter.Seq2[Interval, T] {
	return func(yield func(Interval, T) bool) {
		for _, sp := range s.spans {
			if !yield(sp.iv, sp.val) {
				return
			}
		}
	}
}

// Merge walks both maps in lockstep over their combined interval
// boundaries and produces a new map of the same length where each minimal
// overlapping sub-interval holds combine(selfValue, &otherValue).
//
// combine receives other's value by pointer; it is passed nil only where
// other holds no span, which cannot happen while both maps keep full
// coverage. The branch is part of the contract for callers that relax
// coverage, not something this package produces today.
//
// The two maps must have equal lengths; a mismatch is a programming
// error, not a recoverable condition. The result is not coalesced even
// where combine yields equal adjacent values.
func (s Spans[T]) Merge(other Spans[T], combine func(T, *T) T) Spans[T] {
	if s.length != other.length {
		panic(fmt.Sprintf("internal error: spans.Merge: length mismatch (%d != %d)", s.length, other.length))
	}
	out := Spans[T]{length: s.length}
	pos := 0
	j := 0
	for i := 0; i < len(s.spans); {
		a := s.spans[i]
		if j >= len(other.spans) {
			out.spans = append(out.spans, span[T]{
				iv:  Interval{pos, a.iv.End},
				val: combine(a.val, nil),
			})
			pos = a.iv.End
			i++
			continue
		}
		b := other.spans[j]
		end := a.iv.End
		if b.iv.End < end {
			end = b.iv.End
		}
		out.spans = append(out.spans, span[T]{
			iv:  Interval{pos, end},
			val: combine(a.val, &b.val),
		})
		pos = end
		if a.iv.End == end {
			i++
		}
		if b.iv.End == end {
			j++
		}
	}
	return out
}

func (s Spans[T]) checkInterval(op string, iv Interval) {
	if iv.Start < 0 || iv.End < iv.Start || iv.End > s.length {
		panic(fmt.Sprintf("internal error: spans.%s: interval %v out of range for length %d", op, iv, s.length))
	}
}
