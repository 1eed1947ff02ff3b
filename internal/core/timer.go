package core

import "time"

// Lap is one named interval recorded by a Stopwatch.
type Lap struct {
	Name     string
	Duration time.Duration
}

// Stopwatch records consecutive named laps, e.g. one per pipeline stage.
type Stopwatch struct {
	now   func() time.Time
	start time.Time
	last  time.Time
	laps  []Lap
}

// NewStopwatch starts a stopwatch at the current time.
func NewStopwatch() *Stopwatch {
	return newStopwatch(time.Now)
}

func newStopwatch(now func() time.Time) *Stopwatch {
	t := now()
	return &Stopwatch{now: now, start: t, last: t}
}

// Lap closes the current interval under name and starts the next one.
func (s *Stopwatch) Lap(name string) time.Duration {
	t := s.now()
	d := t.Sub(s.last)
	s.last = t
	s.laps = append(s.laps, Lap{Name: name, Duration: d})
	return d
}

// Laps returns a copy of the recorded laps.
func (s *Stopwatch) Laps() []Lap {
	out := make([]Lap, len(s.laps))
	copy(out, s.laps)
	return out
}

// Total returns the time since the stopwatch started.
func (s *Stopwatch) Total() time.Duration {
	return s.last.Sub(s.start)
}
