package assistant

import (
	"context"
	"fmt"

	"github.com/SergeyKozhin/reminder-bot/internal/conversation"
)

// startCommand and helpCommand drop any unfinished session.
func (a *Assistant) startCommand(ctx context.Context, u *Update) error {
	if err := a.sessions.Delete(ctx, u.OwnerID); err != nil {
		return fmt.Errorf("sessions.Delete: %w", err)
	}

	return a.reply(ctx, u, textWelcome, nil, false)
}

func (a *Assistant) helpCommand(ctx context.Context, u *Update) error {
	if err := a.sessions.Delete(ctx, u.OwnerID); err != nil {
		return fmt.Errorf("sessions.Delete: %w", err)
	}

	return a.reply(ctx, u, textCommands, nil, false)
}

// newCommand starts the wizard over, whatever was in progress.
func (a *Assistant) newCommand(ctx context.Context, u *Update) error {
	s, eff := conversation.StartWizard(u.OwnerID, a.env())
	if err := a.sessions.Save(ctx, &s); err != nil {
		return fmt.Errorf("sessions.Save: %w", err)
	}

	return a.reply(ctx, u, eff.Text, eff.Menu, false)
}

func (a *Assistant) cancelCommand(ctx context.Context, u *Update) error {
	s, err := a.sessions.Get(ctx, u.OwnerID)
	if err != nil {
		return fmt.Errorf("sessions.Get: %w", err)
	}

	if s == nil {
		return a.reply(ctx, u, textNothingToStop, nil, false)
	}

	if err := a.sessions.Delete(ctx, u.OwnerID); err != nil {
		return fmt.Errorf("sessions.Delete: %w", err)
	}

	return a.reply(ctx, u, textCancelled, nil, false)
}

func (a *Assistant) listCommand(ctx context.Context, u *Update) error {
	return a.showList(ctx, u, dataView, textYourEvents, false)
}

func (a *Assistant) deleteCommand(ctx context.Context, u *Update) error {
	return a.showList(ctx, u, dataDeleteAsk, textPickToDelete, false)
}
