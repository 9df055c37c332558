package events

import (
	"github.com/SergeyKozhin/reminder-bot/internal/database"
	"go.uber.org/zap"
)

type Repository struct {
	logger *zap.SugaredLogger
}

func NewRepository(logger *zap.SugaredLogger) *Repository {
	return &Repository{logger: logger}
}

var baseQuery = database.SQ.
	Select(
		"id",
		"owner_id",
		"title",
		"country",
		"city",
		"scheduled_at_utc",
		"recurrence",
	).
	From(database.EventsTable)
