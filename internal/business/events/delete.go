package events

import (
	"context"
	"fmt"
)

func (s *Service) DeleteEvent(ctx context.Context, ownerID, id int64) error {
	if _, err := s.GetEvent(ctx, ownerID, id); err != nil {
		return err
	}

	if err := s.eventsRepository.DeleteEvent(ctx, s.db, id); err != nil {
		return fmt.Errorf("eventsRepository.DeleteEvent: %w", err)
	}

	return nil
}
