package events

import (
	"context"
	"fmt"

	"github.com/SergeyKozhin/reminder-bot/internal/model"
)

// GetEvent returns the event only if ownerID owns it. Someone else's event
// is reported as model.ErrNoRecord.
func (s *Service) GetEvent(ctx context.Context, ownerID, id int64) (*model.Event, error) {
	event, err := s.eventsRepository.GetEventByID(ctx, s.db, id)
	if err != nil {
		return nil, fmt.Errorf("eventsRepository.GetEventByID: %w", err)
	}

	if event.OwnerID != ownerID {
		return nil, model.ErrNoRecord
	}

	return event, nil
}

func (s *Service) GetEvents(ctx context.Context, ownerID int64) ([]*model.Event, error) {
	events, err := s.eventsRepository.GetEventsByOwner(ctx, s.db, ownerID)
	if err != nil {
		return nil, fmt.Errorf("eventsRepository.GetEventsByOwner: %w", err)
	}

	return events, nil
}

// GetAllEvents is the notifier's read pass over the whole table.
func (s *Service) GetAllEvents(ctx context.Context) ([]*model.Event, error) {
	events, err := s.eventsRepository.GetEvents(ctx, s.db)
	if err != nil {
		return nil, fmt.Errorf("eventsRepository.GetEvents: %w", err)
	}

	return events, nil
}
