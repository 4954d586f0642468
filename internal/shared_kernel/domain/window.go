package domain

import "time"

// Window is a closed time interval. A zero bound is unbounded on that side.
type Window struct {
	From time.Time
	To   time.Time
}

func (w Window) IsUnbounded() bool {
	return w.From.IsZero() && w.To.IsZero()
}

func (w Window) Contains(t time.Time) bool {
	if !w.From.IsZero() && t.Before(w.From) {
		return false
	}
	if !w.To.IsZero() && t.After(w.To) {
		return false
	}
	return true
}
