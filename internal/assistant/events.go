package assistant

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	events_service "github.com/SergeyKozhin/reminder-bot/internal/business/events"
	"github.com/SergeyKozhin/reminder-bot/internal/conversation"
	"github.com/SergeyKozhin/reminder-bot/internal/model"
)

func (a *Assistant) showList(ctx context.Context, u *Update, prefix, title string, inPlace bool) error {
	events, err := a.events.GetEvents(ctx, u.OwnerID)
	if err != nil {
		return fmt.Errorf("events.GetEvents: %w", err)
	}

	if len(events) == 0 {
		return a.reply(ctx, u, textNoEvents, nil, inPlace)
	}

	return a.reply(ctx, u, title, eventsMenu(events, prefix), inPlace)
}

func (a *Assistant) backToListTap(ctx context.Context, u *Update, _ string) error {
	return a.showList(ctx, u, dataView, textYourEvents, true)
}

// getEventForTap resolves the id carried by a button. A nil event with a nil
// error means the user was already told it is gone.
func (a *Assistant) getEventForTap(ctx context.Context, u *Update, arg string) (*model.Event, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return nil, a.reply(ctx, u, textNotFound, nil, true)
	}

	event, err := a.events.GetEvent(ctx, u.OwnerID, id)
	if errors.Is(err, model.ErrNoRecord) {
		return nil, a.reply(ctx, u, textNotFound, nil, true)
	}
	if err != nil {
		return nil, fmt.Errorf("events.GetEvent: %w", err)
	}

	return event, nil
}

func (a *Assistant) viewTap(ctx context.Context, u *Update, arg string) error {
	event, err := a.getEventForTap(ctx, u, arg)
	if event == nil {
		return err
	}

	next, ok, err := events_service.NextOccurrence(event, a.now(), a.loc)
	if err != nil {
		a.logger.Warnw("failed to compute next occurrence", "event_id", event.ID, "err", err)
		ok = false
	}

	return a.reply(ctx, u, detailText(event, a.loc, next, ok), detailMenu(event), true)
}

func (a *Assistant) editTimeTap(ctx context.Context, u *Update, arg string) error {
	event, err := a.getEventForTap(ctx, u, arg)
	if event == nil {
		return err
	}

	s, eff := conversation.StartEdit(u.OwnerID, event.ID, a.env())
	if err := a.sessions.Save(ctx, &s); err != nil {
		return fmt.Errorf("sessions.Save: %w", err)
	}

	return a.reply(ctx, u, eff.Text, eff.Menu, true)
}

func (a *Assistant) deleteAskTap(ctx context.Context, u *Update, arg string) error {
	event, err := a.getEventForTap(ctx, u, arg)
	if event == nil {
		return err
	}

	s, eff := conversation.StartDelete(u.OwnerID, event, a.env())
	if err := a.sessions.Save(ctx, &s); err != nil {
		return fmt.Errorf("sessions.Save: %w", err)
	}

	return a.reply(ctx, u, eff.Text, eff.Menu, eff.InPlace)
}
