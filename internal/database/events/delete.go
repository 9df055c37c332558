package events

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/SergeyKozhin/reminder-bot/internal/database"
	"github.com/SergeyKozhin/reminder-bot/internal/model"
)

func (*Repository) DeleteEvent(ctx context.Context, q database.Queryable, id int64) error {
	qb := database.SQ.
		Delete(database.EventsTable).
		Where(sq.Eq{"id": id})

	res, err := q.Exec(ctx, qb)
	if err != nil {
		return fmt.Errorf("SQL request: %w", err)
	}

	return checkAffected(res)
}

func checkAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}

	if n == 0 {
		return model.ErrNoRecord
	}

	return nil
}
