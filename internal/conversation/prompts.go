package conversation

import (
	"fmt"
	"time"

	"github.com/SergeyKozhin/reminder-bot/internal/model"
	"github.com/SergeyKozhin/reminder-bot/internal/pkg/calendar"
)

const (
	DataRecurrencePrefix = "rec_"
	DataDeleteYes        = "del_yes"
	DataDeleteNo         = "del_no"
)

const (
	textAskTitle      = "📝 Dê um nome ao seu evento:"
	textAskCountry    = "🌍 Informe o país do evento:"
	textAskCity       = "🏙 Informe a cidade do evento:"
	textAskTime       = "⏰ Informe o horário no formato HH:MM (ex: 09:30):"
	textBadTime       = "❌ Horário inválido. Use o formato HH:MM, de 00:00 a 23:59."
	textAskRecurrence = "🔁 Escolha a recorrência:"
	textAskNewTime    = "⏰ Informe o novo horário no formato HH:MM:"
	textEmpty         = "✍️ Envie um texto não vazio."
	textUseCalendar   = "📅 Use o calendário acima para escolher a data."
	textUseButtons    = "👆 Escolha uma das opções acima."
	textSendText      = "✍️ Responda com uma mensagem de texto."
	textCreated       = "✅ Evento criado com sucesso!"
	textTimeUpdated   = "✅ Horário atualizado!"
	textDeleted       = "🗑 Evento removido."
	textDeleteAborted = "↩️ Remoção cancelada."
)

var recurrenceLabels = map[model.Recurrence]string{
	model.RecurrenceOnce:    "Apenas uma vez",
	model.RecurrenceDaily:   "Diário",
	model.RecurrenceMonthly: "Mensal",
}

func RecurrenceLabel(r model.Recurrence) string {
	if l, ok := recurrenceLabels[r]; ok {
		return l
	}
	return string(r)
}

func calendarPrompt(step calendar.Step) string {
	return fmt.Sprintf("📅 Selecione %s:", calendar.StepNames[step])
}

func recurrenceMenu() model.Menu {
	return model.Menu{{
		{Text: "🔁 " + recurrenceLabels[model.RecurrenceOnce], Data: DataRecurrencePrefix + string(model.RecurrenceOnce)},
		{Text: "📅 " + recurrenceLabels[model.RecurrenceDaily], Data: DataRecurrencePrefix + string(model.RecurrenceDaily)},
		{Text: "🗓 " + recurrenceLabels[model.RecurrenceMonthly], Data: DataRecurrencePrefix + string(model.RecurrenceMonthly)},
	}}
}

func confirmMenu() model.Menu {
	return model.Menu{{
		{Text: "✅ Sim", Data: DataDeleteYes},
		{Text: "❌ Não", Data: DataDeleteNo},
	}}
}

func datePicked(date time.Time) string {
	return fmt.Sprintf("📅 Data selecionada: %s\n\n%s", date.Format("02-01-2006"), textAskTime)
}
