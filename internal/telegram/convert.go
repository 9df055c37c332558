package telegram

import (
	"github.com/SergeyKozhin/reminder-bot/internal/assistant"
	"github.com/SergeyKozhin/reminder-bot/internal/model"
	"github.com/go-telegram/bot/models"
)

// toUpdate keeps text messages and button taps. Everything else (edits,
// stickers, channel posts) is dropped.
func toUpdate(update *models.Update) (*assistant.Update, bool) {
	switch {
	case update.CallbackQuery != nil:
		q := update.CallbackQuery
		u := &assistant.Update{
			OwnerID: q.From.ID,
			ChatID:  q.From.ID,
			Tap:     true,
			Data:    q.Data,
		}

		switch {
		case q.Message.Message != nil:
			u.ChatID = q.Message.Message.Chat.ID
			u.MessageID = q.Message.Message.ID
		case q.Message.InaccessibleMessage != nil:
			u.ChatID = q.Message.InaccessibleMessage.Chat.ID
			u.MessageID = q.Message.InaccessibleMessage.MessageID
		}

		return u, true

	case update.Message != nil && update.Message.Text != "":
		m := update.Message
		u := &assistant.Update{
			OwnerID: m.Chat.ID,
			ChatID:  m.Chat.ID,
			Text:    m.Text,
		}
		if m.From != nil {
			u.OwnerID = m.From.ID
		}

		return u, true
	}

	return nil, false
}

func toMarkup(menu model.Menu) *models.InlineKeyboardMarkup {
	if len(menu) == 0 {
		return nil
	}

	rows := make([][]models.InlineKeyboardButton, len(menu))
	for i, row := range menu {
		rows[i] = make([]models.InlineKeyboardButton, len(row))
		for j, b := range row {
			rows[i][j] = models.InlineKeyboardButton{Text: b.Text, CallbackData: b.Data}
		}
	}

	return &models.InlineKeyboardMarkup{InlineKeyboard: rows}
}
