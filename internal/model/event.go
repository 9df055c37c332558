package model

import "time"

type EventCreate struct {
	OwnerID     int64      `validate:"required"`
	Title       string     `validate:"required"`
	Country     string     `validate:"required"`
	City        string     `validate:"required"`
	ScheduledAt time.Time  `validate:"required"`
	Recurrence  Recurrence `validate:"oneof=once daily monthly"`
}

type Event struct {
	ID int64
	EventCreate
}

type Recurrence string

const (
	RecurrenceOnce    Recurrence = "once"
	RecurrenceDaily   Recurrence = "daily"
	RecurrenceMonthly Recurrence = "monthly"
)

// ParseRecurrence accepts the persisted names. "none" is what early
// databases stored for one-off events.
func ParseRecurrence(s string) (Recurrence, bool) {
	switch s {
	case string(RecurrenceOnce), "none":
		return RecurrenceOnce, true
	case string(RecurrenceDaily):
		return RecurrenceDaily, true
	case string(RecurrenceMonthly):
		return RecurrenceMonthly, true
	default:
		return "", false
	}
}
