package events

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/SergeyKozhin/reminder-bot/internal/database"
	"github.com/SergeyKozhin/reminder-bot/internal/model"
)

func (r *Repository) GetEventByID(ctx context.Context, q database.Queryable, id int64) (*model.Event, error) {
	events, err := r.getEvents(ctx, q, sq.Eq{"id": id})
	if err != nil {
		return nil, err
	}

	if len(events) == 0 {
		return nil, model.ErrNoRecord
	}

	return events[0], nil
}

// GetEventsByOwner returns the owner's events in insertion order.
func (r *Repository) GetEventsByOwner(ctx context.Context, q database.Queryable, ownerID int64) ([]*model.Event, error) {
	return r.getEvents(ctx, q, sq.Eq{"owner_id": ownerID})
}

// GetEvents reads the whole table. Rows that cannot be decoded are logged
// and left out.
func (r *Repository) GetEvents(ctx context.Context, q database.Queryable) ([]*model.Event, error) {
	return r.getEvents(ctx, q, nil)
}

func (r *Repository) getEvents(ctx context.Context, q database.Queryable, predicate interface{}) ([]*model.Event, error) {
	qb := baseQuery.
		Where(predicate).
		OrderBy("id")

	var dtos []*eventDTO
	if err := q.Select(ctx, &dtos, qb); err != nil {
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	events := make([]*model.Event, 0, len(dtos))
	for _, d := range dtos {
		e, err := mapToEvent(d)
		if err != nil {
			r.logger.Errorw("skipping unreadable event row", "event_id", d.ID, "err", err)
			continue
		}
		events = append(events, e)
	}

	return events, nil
}
