package domain

import "time"

// Slot represents a bookable window of exactly one service duration
type Slot struct {
	Start time.Time
	End   time.Time
}

// Interval returns the slot as a half-open interval
func (s Slot) Interval() Interval {
	return Interval{Start: s.Start, End: s.End}
}
