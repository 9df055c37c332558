package notifications

import (
	"context"
	"fmt"
	"time"

	"github.com/SergeyKozhin/reminder-bot/internal/model"
	"github.com/robfig/cron/v3"
	"github.com/xlab/closer"
	"go.uber.org/zap"
)

type eventsService interface {
	GetAllEvents(ctx context.Context) ([]*model.Event, error)
}

type chatSender interface {
	SendText(ctx context.Context, chatID int64, text string, menu model.Menu) error
}

// Sender scans the whole event table on a schedule and messages the owners
// of events that are due at the scanned minute.
type Sender struct {
	logger        *zap.SugaredLogger
	eventsService eventsService
	chat          chatSender
	loc           *time.Location
	schedule      string
}

func NewSender(
	logger *zap.SugaredLogger,
	eventsService eventsService,
	chat chatSender,
	loc *time.Location,
	schedule string,
) *Sender {
	return &Sender{
		logger:        logger,
		eventsService: eventsService,
		chat:          chat,
		loc:           loc,
		schedule:      schedule,
	}
}

// Start registers the scan with a cron scheduler running in the reference
// zone. It returns once the scheduler is running; the scheduler stops on ctx
// cancellation or at closer teardown.
func (s *Sender) Start(ctx context.Context) error {
	c := cron.New(cron.WithLocation(s.loc))

	if _, err := c.AddFunc(s.schedule, func() {
		s.Tick(ctx, time.Now())
	}); err != nil {
		return fmt.Errorf("schedule %q: %w", s.schedule, err)
	}

	c.Start()
	s.logger.Infow("Started notifier", "schedule", s.schedule, "zone", s.loc.String())

	stop := func() {
		<-c.Stop().Done()
	}
	closer.Bind(stop)

	go func() {
		<-ctx.Done()
		c.Stop()
	}()

	return nil
}

// Tick is one scan. A failed send is logged and the scan moves on.
func (s *Sender) Tick(ctx context.Context, now time.Time) {
	events, err := s.eventsService.GetAllEvents(ctx)
	if err != nil {
		s.logger.Errorw("failed to get events", "err", err)
		return
	}

	var sent, failed int
	for _, e := range events {
		if !IsDue(e, now, s.loc) {
			continue
		}

		if err := s.chat.SendText(ctx, e.OwnerID, notificationText(e, now, s.loc), nil); err != nil {
			failed++
			s.logger.Errorw("failed to send notification", "event_id", e.ID, "owner_id", e.OwnerID, "err", err)
			continue
		}
		sent++
	}

	if sent > 0 || failed > 0 {
		s.logger.Infow("notifications sent", "sent", sent, "failed", failed, "scanned", len(events))
	} else {
		s.logger.Debugw("nothing due", "scanned", len(events), "at", now.In(s.loc).Format("2006-01-02 15:04"))
	}
}

// IsDue compares wall clocks in loc. All recurrences need the stored hour and
// minute; once also needs the stored date, monthly the stored day of month.
func IsDue(e *model.Event, now time.Time, loc *time.Location) bool {
	at := e.ScheduledAt.In(loc)
	cur := now.In(loc)

	if at.Hour() != cur.Hour() || at.Minute() != cur.Minute() {
		return false
	}

	switch e.Recurrence {
	case model.RecurrenceOnce:
		ay, am, ad := at.Date()
		cy, cm, cd := cur.Date()
		return ay == cy && am == cm && ad == cd
	case model.RecurrenceDaily:
		return true
	case model.RecurrenceMonthly:
		return at.Day() == cur.Day()
	}

	return false
}
