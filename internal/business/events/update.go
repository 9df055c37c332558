package events

import (
	"context"
	"fmt"
	"time"

	"github.com/SergeyKozhin/reminder-bot/internal/model"
	"github.com/SergeyKozhin/reminder-bot/internal/pkg/localtime"
)

// RescheduleClock moves an event to hour:minute of the same local day.
// The date and recurrence stay as they were.
//
// A concurrent delete of the same event is not prevented: whichever runs
// second gets model.ErrNoRecord.
func (s *Service) RescheduleClock(ctx context.Context, ownerID, id int64, hour, minute int, loc *time.Location) (*model.Event, error) {
	event, err := s.GetEvent(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	scheduledAt := localtime.ReplaceClock(event.ScheduledAt, hour, minute, loc)

	if err := s.eventsRepository.UpdateEventTime(ctx, s.db, id, scheduledAt); err != nil {
		return nil, fmt.Errorf("eventsRepository.UpdateEventTime: %w", err)
	}

	event.ScheduledAt = scheduledAt
	return event, nil
}
