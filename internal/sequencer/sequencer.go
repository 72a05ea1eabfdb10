// Package sequencer decides which mark an employee's next clock action becomes.
//
// The decision depends only on how many marks the employee already has on the
// current calendar day. Time of day never gates acceptance; LabelForHour exists
// only to caption historical rows in reports.
package sequencer

import (
	"errors"
	"time"
)

// MaxDailyEvents is the number of marks allowed per employee per calendar day.
const MaxDailyEvents = 4

// ReasonDailyLimitReached is the refusal reason carried by a rejected Decision.
const ReasonDailyLimitReached = "daily_limit_reached"

// ErrDailyLimitReached is returned by Decision.Err for a rejected action.
var ErrDailyLimitReached = errors.New("Limite de 4 marcações diárias atingido")

// Event is one previously accepted mark. Only the slice length matters to Decide.
type Event struct {
	Kind      EventKind
	Timestamp time.Time
}

type Decision struct {
	Accepted  bool
	Kind      EventKind
	Timestamp time.Time
	Reason    string
	// Remaining is how many marks are still allowed today after this one.
	Remaining int
}

// Err returns ErrDailyLimitReached for a rejected decision and nil otherwise.
func (d Decision) Err() error {
	if d.Accepted {
		return nil
	}
	return ErrDailyLimitReached
}

// Decide maps today's accepted marks and the instant of a new action to a decision.
func Decide(todaysEvents []Event, now time.Time) Decision {
	n := len(todaysEvents)
	if n >= MaxDailyEvents {
		return Decision{Reason: ReasonDailyLimitReached}
	}
	return Decision{
		Accepted:  true,
		Kind:      kinds[n],
		Timestamp: now,
		Remaining: MaxDailyEvents - n - 1,
	}
}

// LabelForHour captions a historical mark by its local hour of day.
// Hours outside [5,23) are treated as a late-night clock-in.
func LabelForHour(h int) EventKind {
	switch {
	case h >= 5 && h < 12:
		return ClockIn
	case h >= 12 && h < 14:
		return LunchOut
	case h >= 14 && h < 18:
		return LunchReturn
	case h >= 18 && h < 23:
		return ClockOut
	default:
		return ClockIn
	}
}

// IsLateNight reports whether LabelForHour used the late-night fallback for h.
func IsLateNight(h int) bool {
	return h >= 23 || h < 5
}
