package clock

import (
	"sync"
	"time"
)

// Clock allows injecting time in domain/services. All implementations
// return UTC instants.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

// NewSystem returns a clock backed by time.Now.
func NewSystem() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}

type fixedClock struct {
	now time.Time
}

// NewFixed returns a clock that always returns the same instant (useful for tests).
func NewFixed(t time.Time) Clock {
	return fixedClock{now: t.UTC()}
}

func (f fixedClock) Now() time.Time {
	return f.now
}

type steppingClock struct {
	mu   sync.Mutex
	next time.Time
	step time.Duration
}

// NewStepping returns a clock that starts at t and advances by step on each
// Now call, so consecutive timestamps are distinct and ordered (useful for
// asserting that updates move updatedAt forward).
func NewStepping(t time.Time, step time.Duration) Clock {
	return &steppingClock{next: t.UTC(), step: step}
}

func (s *steppingClock) Now() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.next
	s.next = s.next.Add(s.step)
	return now
}
