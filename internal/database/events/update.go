package events

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/SergeyKozhin/reminder-bot/internal/database"
)

// UpdateEventTime replaces the stored instant. Nothing else about the
// event can change after creation.
func (*Repository) UpdateEventTime(ctx context.Context, q database.Queryable, id int64, scheduledAt time.Time) error {
	qb := database.SQ.
		Update(database.EventsTable).
		Set("scheduled_at_utc", formatInstant(scheduledAt)).
		Where(sq.Eq{"id": id})

	res, err := q.Exec(ctx, qb)
	if err != nil {
		return fmt.Errorf("SQL request: %w", err)
	}

	return checkAffected(res)
}
