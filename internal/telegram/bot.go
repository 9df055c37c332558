package telegram

import (
	"context"
	"fmt"

	"github.com/SergeyKozhin/reminder-bot/internal/assistant"
	"github.com/SergeyKozhin/reminder-bot/internal/model"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

type updateHandler interface {
	Handle(ctx context.Context, u *assistant.Update)
}

// Bot is the Telegram side of the assistant: it long-polls for updates and
// delivers outgoing messages.
type Bot struct {
	api     *bot.Bot
	logger  *zap.SugaredLogger
	handler updateHandler
}

func New(token string, logger *zap.SugaredLogger) (*Bot, error) {
	b := &Bot{logger: logger}

	api, err := bot.New(token,
		bot.WithDefaultHandler(b.defaultHandler),
		bot.WithErrorsHandler(func(err error) {
			logger.Errorw("telegram error", "err", err)
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("init telegram bot: %w", err)
	}

	b.api = api
	return b, nil
}

// SetHandler must be called before Start.
func (b *Bot) SetHandler(h updateHandler) {
	b.handler = h
}

// Start blocks until ctx is done.
func (b *Bot) Start(ctx context.Context) {
	b.logger.Infow("Started polling")
	b.api.Start(ctx)
}

func (b *Bot) defaultHandler(ctx context.Context, _ *bot.Bot, update *models.Update) {
	if update.CallbackQuery != nil {
		// Stops the client-side spinner whatever happens next.
		if _, err := b.api.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
			CallbackQueryID: update.CallbackQuery.ID,
		}); err != nil {
			b.logger.Debugw("failed to answer callback query", "err", err)
		}
	}

	u, ok := toUpdate(update)
	if !ok || b.handler == nil {
		return
	}

	b.handler.Handle(ctx, u)
}

func (b *Bot) SendText(ctx context.Context, chatID int64, text string, menu model.Menu) error {
	params := &bot.SendMessageParams{
		ChatID: chatID,
		Text:   text,
	}
	if markup := toMarkup(menu); markup != nil {
		params.ReplyMarkup = markup
	}

	if _, err := b.api.SendMessage(ctx, params); err != nil {
		return fmt.Errorf("send message: %w", err)
	}

	return nil
}

func (b *Bot) EditText(ctx context.Context, chatID int64, messageID int, text string, menu model.Menu) error {
	params := &bot.EditMessageTextParams{
		ChatID:    chatID,
		MessageID: messageID,
		Text:      text,
	}
	if markup := toMarkup(menu); markup != nil {
		params.ReplyMarkup = markup
	}

	if _, err := b.api.EditMessageText(ctx, params); err != nil {
		return fmt.Errorf("edit message: %w", err)
	}

	return nil
}
