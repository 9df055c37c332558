package events

import (
	"fmt"
	"time"

	"github.com/SergeyKozhin/reminder-bot/internal/model"
	"github.com/teambition/rrule-go"
)

func getRule(e *model.Event, loc *time.Location) (*rrule.RRule, error) {
	opt := rrule.ROption{
		Dtstart: e.ScheduledAt.In(loc),
	}

	switch e.Recurrence {
	case model.RecurrenceOnce:
		opt.Freq = rrule.DAILY
		opt.Count = 1
	case model.RecurrenceDaily:
		opt.Freq = rrule.DAILY
		opt.Interval = 1
	case model.RecurrenceMonthly:
		opt.Freq = rrule.MONTHLY
		opt.Interval = 1
	default:
		return nil, fmt.Errorf("unknown recurrence: %v", e.Recurrence)
	}

	rule, err := rrule.NewRRule(opt)
	if err != nil {
		return nil, fmt.Errorf("creating rule: %w", err)
	}

	return rule, nil
}

// NextOccurrence is the first time the event is due strictly after the given
// instant, in loc. ok is false for a one-off event that already happened.
func NextOccurrence(e *model.Event, after time.Time, loc *time.Location) (next time.Time, ok bool, err error) {
	rule, err := getRule(e, loc)
	if err != nil {
		return time.Time{}, false, err
	}

	next = rule.After(after.In(loc), false)
	if next.IsZero() {
		return time.Time{}, false, nil
	}

	return next, true, nil
}
