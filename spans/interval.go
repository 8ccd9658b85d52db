package spans

import "fmt"

// Interval is a half-open range [Start, End) in document offset units.
type Interval struct {
	Start int
	End   int
}

// Len returns the number of offset units the interval covers.
func (iv Interval) Len() int { return iv.End - iv.Start }

// Empty reports whether the interval covers nothing.
func (iv Interval) Empty() bool { return iv.End <= iv.Start }

// String returns a string representation of the interval. See fmt.Stringer interface.
func (iv Interval) String() string { return fmt.Sprintf("[%d, %d)", iv.Start, iv.End) }
