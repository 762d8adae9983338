package domain

import "time"

// Interval is a half-open time range [Start, End) in UTC.
type Interval struct {
	Start time.Time
	End   time.Time
}

// NewInterval normalizes both bounds to UTC
func NewInterval(start, end time.Time) Interval {
	return Interval{Start: start.UTC(), End: end.UTC()}
}

// Duration returns End - Start
func (i Interval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}

// IsEmpty returns true if the interval contains no instant
func (i Interval) IsEmpty() bool {
	return !i.End.After(i.Start)
}

// Overlaps reports strict half-open overlap: intervals that only touch do not overlap.
func (i Interval) Overlaps(other Interval) bool {
	return i.Start.Before(other.End) && i.End.After(other.Start)
}

// Contains returns true if other lies entirely within i
func (i Interval) Contains(other Interval) bool {
	return !other.Start.Before(i.Start) && !other.End.After(i.End)
}

// Expand widens the interval by before and after
func (i Interval) Expand(before, after time.Duration) Interval {
	return Interval{Start: i.Start.Add(-before), End: i.End.Add(after)}
}
