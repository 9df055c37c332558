package assistant

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/SergeyKozhin/reminder-bot/internal/conversation"
	"github.com/SergeyKozhin/reminder-bot/internal/model"
	"go.uber.org/zap"
)

// Transport is the chat side: plain messages, messages with buttons, and
// rewriting a message that carries buttons.
type Transport interface {
	SendText(ctx context.Context, chatID int64, text string, menu model.Menu) error
	EditText(ctx context.Context, chatID int64, messageID int, text string, menu model.Menu) error
}

type eventsService interface {
	CreateEvent(ctx context.Context, info *model.EventCreate) (*model.Event, error)
	GetEvent(ctx context.Context, ownerID, id int64) (*model.Event, error)
	GetEvents(ctx context.Context, ownerID int64) ([]*model.Event, error)
	RescheduleClock(ctx context.Context, ownerID, id int64, hour, minute int, loc *time.Location) (*model.Event, error)
	DeleteEvent(ctx context.Context, ownerID, id int64) error
}

// Update is one inbound user action. For taps, MessageID is the message
// holding the tapped keyboard.
type Update struct {
	OwnerID   int64
	ChatID    int64
	MessageID int
	Tap       bool
	Text      string
	Data      string
}

type Assistant struct {
	logger   *zap.SugaredLogger
	chat     Transport
	events   eventsService
	sessions conversation.Store
	loc      *time.Location
	now      func() time.Time
	locks    *keyedMutex
	commands map[string]handlerFunc
	taps     []tapRoute
}

type handlerFunc func(ctx context.Context, u *Update) error

type tapRoute struct {
	prefix  string
	handler func(ctx context.Context, u *Update, arg string) error
}

func New(
	logger *zap.SugaredLogger,
	chat Transport,
	events eventsService,
	sessions conversation.Store,
	loc *time.Location,
) *Assistant {
	a := &Assistant{
		logger:   logger,
		chat:     chat,
		events:   events,
		sessions: sessions,
		loc:      loc,
		now:      time.Now,
		locks:    newKeyedMutex(),
	}
	a.setupRoutes()

	return a
}

func (a *Assistant) setupRoutes() {
	a.commands = map[string]handlerFunc{
		"/start":    a.startCommand,
		"/ajuda":    a.helpCommand,
		"/help":     a.helpCommand,
		"/novo":     a.newCommand,
		"/lista":    a.listCommand,
		"/deletar":  a.deleteCommand,
		"/cancelar": a.cancelCommand,
	}

	a.taps = []tapRoute{
		{prefix: dataView, handler: a.viewTap},
		{prefix: dataBackToList, handler: a.backToListTap},
		{prefix: dataEditTime, handler: a.editTimeTap},
		{prefix: dataDeleteAsk, handler: a.deleteAskTap},
	}
}

func (a *Assistant) env() conversation.Env {
	return conversation.Env{Now: a.now(), Loc: a.loc}
}

// Handle processes one update. Updates of the same owner never run
// concurrently.
func (a *Assistant) Handle(ctx context.Context, u *Update) {
	unlock := a.locks.Lock(u.OwnerID)
	defer unlock()

	if err := a.route(ctx, u); err != nil {
		a.logger.Errorw("failed to handle update",
			"owner_id", u.OwnerID,
			"tap", u.Tap,
			"data", u.Data,
			"err", err,
		)
		a.serverErrorReply(ctx, u)
	}
}

func (a *Assistant) route(ctx context.Context, u *Update) error {
	if u.Tap {
		for _, r := range a.taps {
			if strings.HasPrefix(u.Data, r.prefix) {
				return r.handler(ctx, u, strings.TrimPrefix(u.Data, r.prefix))
			}
		}
		return a.advance(ctx, u)
	}

	text := strings.TrimSpace(u.Text)
	if strings.HasPrefix(text, "/") {
		name := strings.Fields(text)[0]
		if i := strings.Index(name, "@"); i >= 0 {
			name = name[:i]
		}

		if err := a.dropPendingDelete(ctx, u.OwnerID); err != nil {
			return err
		}

		if h, ok := a.commands[strings.ToLower(name)]; ok {
			return h(ctx, u)
		}
		return a.reply(ctx, u, textUnknownCommand, nil, false)
	}

	return a.advance(ctx, u)
}

// dropPendingDelete answers an open delete confirmation with "no". Any
// response other than the yes button cancels it, commands included.
func (a *Assistant) dropPendingDelete(ctx context.Context, ownerID int64) error {
	s, err := a.sessions.Get(ctx, ownerID)
	if err != nil {
		return fmt.Errorf("sessions.Get: %w", err)
	}

	if s == nil || s.State != conversation.StateAwaitDeleteOK {
		return nil
	}

	if err := a.sessions.Delete(ctx, ownerID); err != nil {
		return fmt.Errorf("sessions.Delete: %w", err)
	}

	a.logger.Debugw("pending delete cancelled by command", "owner_id", ownerID, "event_id", s.TargetID)
	return nil
}

func (a *Assistant) reply(ctx context.Context, u *Update, text string, menu model.Menu, inPlace bool) error {
	if inPlace && u.Tap && u.MessageID != 0 {
		return a.chat.EditText(ctx, u.ChatID, u.MessageID, text, menu)
	}

	return a.chat.SendText(ctx, u.ChatID, text, menu)
}

func (a *Assistant) serverErrorReply(ctx context.Context, u *Update) {
	if err := a.chat.SendText(ctx, u.ChatID, textServerError, nil); err != nil {
		a.logger.Errorw("failed to send error reply", "owner_id", u.OwnerID, "err", err)
	}
}
