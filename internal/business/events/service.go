package events

import (
	"context"
	"time"

	"github.com/SergeyKozhin/reminder-bot/internal/database"
	"github.com/SergeyKozhin/reminder-bot/internal/model"
	"github.com/go-playground/validator/v10"
)

type Service struct {
	db               database.DB
	eventsRepository eventsRepository
	validate         *validator.Validate
}

type eventsRepository interface {
	CreateEvent(ctx context.Context, q database.Queryable, event *model.EventCreate) (int64, error)
	GetEventByID(ctx context.Context, q database.Queryable, id int64) (*model.Event, error)
	GetEventsByOwner(ctx context.Context, q database.Queryable, ownerID int64) ([]*model.Event, error)
	GetEvents(ctx context.Context, q database.Queryable) ([]*model.Event, error)
	UpdateEventTime(ctx context.Context, q database.Queryable, id int64, scheduledAt time.Time) error
	DeleteEvent(ctx context.Context, q database.Queryable, id int64) error
}

func NewService(db database.DB, repo eventsRepository) *Service {
	return &Service{
		db:               db,
		eventsRepository: repo,
		validate:         validator.New(),
	}
}
