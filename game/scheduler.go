package game

import "time"

type scheduledEvent struct {
	name string
	at   time.Time
	fn   func()
}

// Scheduler holds one-shot events checked once per tick against the clock.
// Scheduling a name that is already pending replaces it.
type Scheduler struct {
	events []scheduledEvent
}

func (s *Scheduler) After(now time.Time, d time.Duration, name string, fn func()) {
	s.Cancel(name)
	s.events = append(s.events, scheduledEvent{name: name, at: now.Add(d), fn: fn})
}

func (s *Scheduler) Cancel(name string) {
	kept := s.events[:0]
	for _, ev := range s.events {
		if ev.name != name {
			kept = append(kept, ev)
		}
	}
	s.events = kept
}

func (s *Scheduler) Pending(name string) bool {
	for _, ev := range s.events {
		if ev.name == name {
			return true
		}
	}
	return false
}

// Fire runs and drops every event due at now. Returns how many ran.
func (s *Scheduler) Fire(now time.Time) int {
	var due []scheduledEvent
	kept := s.events[:0]
	for _, ev := range s.events {
		if now.Before(ev.at) {
			kept = append(kept, ev)
		} else {
			due = append(due, ev)
		}
	}
	s.events = kept
	for _, ev := range due {
		ev.fn()
	}
	return len(due)
}
