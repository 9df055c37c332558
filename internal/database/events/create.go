package events

import (
	"context"
	"fmt"

	"github.com/SergeyKozhin/reminder-bot/internal/database"
	"github.com/SergeyKozhin/reminder-bot/internal/model"
)

func (*Repository) CreateEvent(ctx context.Context, q database.Queryable, event *model.EventCreate) (int64, error) {
	qb := database.SQ.
		Insert(database.EventsTable).
		Columns(
			"owner_id",
			"title",
			"country",
			"city",
			"scheduled_at_utc",
			"recurrence",
		).
		Values(
			event.OwnerID,
			event.Title,
			event.Country,
			event.City,
			formatInstant(event.ScheduledAt),
			string(event.Recurrence),
		)

	res, err := q.Exec(ctx, qb)
	if err != nil {
		return 0, fmt.Errorf("SQL request: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}

	return id, nil
}
