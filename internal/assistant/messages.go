package assistant

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/SergeyKozhin/reminder-bot/internal/conversation"
	"github.com/SergeyKozhin/reminder-bot/internal/model"
	"github.com/SergeyKozhin/reminder-bot/internal/pkg/localtime"
)

const (
	dataView       = "view_"
	dataBackToList = "back_to_list"
	dataEditTime   = "edit_"
	dataDeleteAsk  = "delask_"
)

const textCommands = "📅 /novo — Criar evento\n" +
	"📋 /lista — Ver eventos\n" +
	"🗑 /deletar — Remover evento\n" +
	"✖️ /cancelar — Cancelar a operação atual"

const (
	textWelcome        = "✨ Bem-vindo ao seu lembrete de eventos!\n\n" + textCommands
	textUnknownCommand = "🤷 Comando desconhecido.\n\n" + textCommands
	textNoSession      = "🤖 Não entendi. Use um dos comandos:\n\n" + textCommands
	textExpired        = "⌛ Essa ação expirou. Comece de novo pelos comandos."
	textCancelled      = "✖️ Operação cancelada."
	textNothingToStop  = "Não há nenhuma operação em andamento."
	textNoEvents       = "Você não possui eventos."
	textYourEvents     = "📋 Seus eventos:"
	textPickToDelete   = "🗑 Qual evento deseja remover?"
	textNotFound       = "🔍 Evento não encontrado."
	textSaveFailed     = "❌ Não foi possível salvar o evento. Tente novamente com /novo."
	textServerError    = "⚠️ Algo deu errado. Tente novamente mais tarde."
)

func eventsMenu(events []*model.Event, prefix string) model.Menu {
	buttons := make([]model.Button, len(events))
	for i, e := range events {
		buttons[i] = model.Button{Text: e.Title, Data: prefix + strconv.FormatInt(e.ID, 10)}
	}
	return model.SingleColumn(buttons...)
}

func detailMenu(e *model.Event) model.Menu {
	id := strconv.FormatInt(e.ID, 10)
	return model.SingleColumn(
		model.Button{Text: "✏️ Editar horário", Data: dataEditTime + id},
		model.Button{Text: "🗑 Remover", Data: dataDeleteAsk + id},
		model.Button{Text: "⬅️ Voltar", Data: dataBackToList},
	)
}

func detailText(e *model.Event, loc *time.Location, next time.Time, hasNext bool) string {
	date, hour, minute := localtime.UTCToLocal(e.ScheduledAt, loc)

	var b strings.Builder
	fmt.Fprintf(&b, "📝 Nome: %s\n\n", e.Title)
	fmt.Fprintf(&b, "📅 Data: %s\n", date.Format("02-01-2006"))
	fmt.Fprintf(&b, "⏰ Horário: %s\n", localtime.FormatClock(hour, minute))
	fmt.Fprintf(&b, "📍 Local: %s, %s\n", e.City, e.Country)
	fmt.Fprintf(&b, "🔁 Recorrência: %s", conversation.RecurrenceLabel(e.Recurrence))
	if hasNext {
		fmt.Fprintf(&b, "\n🔔 Próximo lembrete: %s", next.In(loc).Format("02-01-2006 15:04"))
	}
	return b.String()
}

func timeUpdatedText(base string, e *model.Event, loc *time.Location) string {
	date, hour, minute := localtime.UTCToLocal(e.ScheduledAt, loc)
	return fmt.Sprintf("%s\n📝 %s — %s às %s", base, e.Title, date.Format("02-01-2006"), localtime.FormatClock(hour, minute))
}
