package events

import (
	"fmt"
	"time"

	"github.com/SergeyKozhin/reminder-bot/internal/model"
)

// storedTimeLayout is how instants are written to the scheduled_at_utc column.
const storedTimeLayout = time.RFC3339

type eventDTO struct {
	ID             int64  `db:"id"`
	OwnerID        int64  `db:"owner_id"`
	Title          string `db:"title"`
	Country        string `db:"country"`
	City           string `db:"city"`
	ScheduledAtUTC string `db:"scheduled_at_utc"`
	Recurrence     string `db:"recurrence"`
}

func formatInstant(t time.Time) string {
	return t.UTC().Format(storedTimeLayout)
}

func mapToEvent(dto *eventDTO) (*model.Event, error) {
	scheduledAt, err := time.Parse(storedTimeLayout, dto.ScheduledAtUTC)
	if err != nil {
		return nil, fmt.Errorf("parse scheduled_at_utc of event %d: %w", dto.ID, err)
	}

	recurrence, ok := model.ParseRecurrence(dto.Recurrence)
	if !ok {
		return nil, fmt.Errorf("unknown recurrence %q of event %d", dto.Recurrence, dto.ID)
	}

	return &model.Event{
		ID: dto.ID,
		EventCreate: model.EventCreate{
			OwnerID:     dto.OwnerID,
			Title:       dto.Title,
			Country:     dto.Country,
			City:        dto.City,
			ScheduledAt: scheduledAt.UTC(),
			Recurrence:  recurrence,
		},
	}, nil
}
