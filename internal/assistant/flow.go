package assistant

import (
	"context"
	"errors"
	"fmt"

	"github.com/SergeyKozhin/reminder-bot/internal/conversation"
	"github.com/SergeyKozhin/reminder-bot/internal/model"
)

// advance feeds an update that is not a command or a stateless tap into the
// owner's session.
func (a *Assistant) advance(ctx context.Context, u *Update) error {
	s, err := a.sessions.Get(ctx, u.OwnerID)
	if err != nil {
		return fmt.Errorf("sessions.Get: %w", err)
	}

	if s == nil || s.Done() {
		if u.Tap {
			return a.reply(ctx, u, textExpired, nil, true)
		}
		return a.reply(ctx, u, textNoSession, nil, false)
	}

	in := conversation.Text(u.Text)
	if u.Tap {
		in = conversation.Tap(u.Data)
	}

	next, eff := conversation.Transition(*s, in, a.env())

	if next.Done() {
		err = a.sessions.Delete(ctx, u.OwnerID)
	} else {
		err = a.sessions.Save(ctx, &next)
	}
	if err != nil {
		return fmt.Errorf("store session: %w", err)
	}

	return a.apply(ctx, u, eff)
}

func (a *Assistant) apply(ctx context.Context, u *Update, eff conversation.Effect) error {
	switch eff.Kind {
	case conversation.EffectNone:
		return nil

	case conversation.EffectPrompt, conversation.EffectReject, conversation.EffectDeleteAborted:
		return a.reply(ctx, u, eff.Text, eff.Menu, eff.InPlace)

	case conversation.EffectCommit:
		event, err := a.events.CreateEvent(ctx, eff.Event)
		if err != nil {
			a.logger.Errorw("failed to create event", "owner_id", u.OwnerID, "err", err)
			return a.reply(ctx, u, textSaveFailed, nil, eff.InPlace)
		}

		a.logger.Infow("event created", "owner_id", u.OwnerID, "event_id", event.ID, "recurrence", event.Recurrence)
		return a.reply(ctx, u, eff.Text, nil, eff.InPlace)

	case conversation.EffectUpdateTime:
		event, err := a.events.RescheduleClock(ctx, u.OwnerID, eff.TargetID, eff.Hour, eff.Minute, a.loc)
		if errors.Is(err, model.ErrNoRecord) {
			return a.reply(ctx, u, textNotFound, nil, eff.InPlace)
		}
		if err != nil {
			return fmt.Errorf("events.RescheduleClock: %w", err)
		}

		return a.reply(ctx, u, timeUpdatedText(eff.Text, event, a.loc), nil, eff.InPlace)

	case conversation.EffectDelete:
		err := a.events.DeleteEvent(ctx, u.OwnerID, eff.TargetID)
		if errors.Is(err, model.ErrNoRecord) {
			return a.reply(ctx, u, textNotFound, nil, eff.InPlace)
		}
		if err != nil {
			return fmt.Errorf("events.DeleteEvent: %w", err)
		}

		a.logger.Infow("event deleted", "owner_id", u.OwnerID, "event_id", eff.TargetID)
		return a.reply(ctx, u, eff.Text, nil, eff.InPlace)
	}

	return fmt.Errorf("unknown effect %d", eff.Kind)
}
