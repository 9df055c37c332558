package events

import (
	"context"
	"fmt"

	"github.com/SergeyKozhin/reminder-bot/internal/model"
)

func (s *Service) CreateEvent(ctx context.Context, info *model.EventCreate) (*model.Event, error) {
	if err := s.validate.Struct(info); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrInvalidEvent, err)
	}

	event := &model.Event{EventCreate: *info}
	event.ScheduledAt = info.ScheduledAt.UTC()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	id, err := s.eventsRepository.CreateEvent(ctx, tx, &event.EventCreate)
	if err != nil {
		return nil, fmt.Errorf("eventsRepository.CreateEvent: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}

	event.ID = id
	return event, nil
}
