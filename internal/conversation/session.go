package conversation

import (
	"context"
	"time"
)

type State string

const (
	StateIdle            State = "idle"
	StateAwaitTitle      State = "await_title"
	StateAwaitCountry    State = "await_country"
	StateAwaitCity       State = "await_city"
	StateAwaitDate       State = "await_date"
	StateAwaitTime       State = "await_time"
	StateAwaitRecurrence State = "await_recurrence"
	StateAwaitNewTime    State = "await_new_time"
	StateAwaitDeleteOK   State = "await_delete_confirmation"
)

// Session is everything an unfinished wizard, edit or delete confirmation
// knows about. It is created by one of the Start functions and thrown away
// once Transition returns it in StateIdle.
type Session struct {
	OwnerID     int64     `json:"owner_id"`
	State       State     `json:"state"`
	Title       string    `json:"title,omitempty"`
	Country     string    `json:"country,omitempty"`
	City        string    `json:"city,omitempty"`
	Date        time.Time `json:"date"`
	ScheduledAt time.Time `json:"scheduled_at"`
	TargetID    int64     `json:"target_id,omitempty"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (s Session) Done() bool {
	return s.State == StateIdle || s.State == ""
}

// Store keeps at most one session per owner. Get returns nil when the owner
// has none or it expired.
type Store interface {
	Get(ctx context.Context, ownerID int64) (*Session, error)
	Save(ctx context.Context, s *Session) error
	Delete(ctx context.Context, ownerID int64) error
}
