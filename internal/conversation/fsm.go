package conversation

import (
	"strings"
	"time"

	"github.com/SergeyKozhin/reminder-bot/internal/model"
	"github.com/SergeyKozhin/reminder-bot/internal/pkg/calendar"
	"github.com/SergeyKozhin/reminder-bot/internal/pkg/localtime"
)

type InputKind int

const (
	// InputText is a typed message.
	InputText InputKind = iota
	// InputTap is a button press; Data holds its callback data.
	InputTap
)

type Input struct {
	Kind InputKind
	Text string
	Data string
}

func Text(s string) Input {
	return Input{Kind: InputText, Text: s}
}

func Tap(data string) Input {
	return Input{Kind: InputTap, Data: data}
}

type EffectKind int

const (
	// EffectNone needs no reply.
	EffectNone EffectKind = iota
	// EffectPrompt asks for the next piece of input.
	EffectPrompt
	// EffectReject means the input is not acceptable in the current state.
	// The state is unchanged and Text says what is expected instead.
	EffectReject
	// EffectCommit carries a complete event to insert.
	EffectCommit
	// EffectUpdateTime asks to move TargetID to Hour:Minute of its local day.
	EffectUpdateTime
	// EffectDelete asks to remove TargetID.
	EffectDelete
	// EffectDeleteAborted ends a delete confirmation without changes.
	EffectDeleteAborted
)

// Effect is what the caller has to do after a transition. InPlace means the
// reply replaces the message whose button was tapped.
type Effect struct {
	Kind     EffectKind
	Text     string
	Menu     model.Menu
	InPlace  bool
	Event    *model.EventCreate
	TargetID int64
	Hour     int
	Minute   int
}

// Env is the outside world a transition may look at.
type Env struct {
	Now time.Time
	Loc *time.Location
}

func StartWizard(ownerID int64, env Env) (Session, Effect) {
	s := Session{OwnerID: ownerID, State: StateAwaitTitle, UpdatedAt: env.Now}
	return s, Effect{Kind: EffectPrompt, Text: textAskTitle}
}

func StartEdit(ownerID, eventID int64, env Env) (Session, Effect) {
	s := Session{OwnerID: ownerID, State: StateAwaitNewTime, TargetID: eventID, UpdatedAt: env.Now}
	return s, Effect{Kind: EffectPrompt, Text: textAskNewTime}
}

func StartDelete(ownerID int64, event *model.Event, env Env) (Session, Effect) {
	s := Session{OwnerID: ownerID, State: StateAwaitDeleteOK, TargetID: event.ID, UpdatedAt: env.Now}
	return s, Effect{
		Kind:    EffectPrompt,
		Text:    "❓ Remover o evento \"" + event.Title + "\"?",
		Menu:    confirmMenu(),
		InPlace: true,
	}
}

// Transition applies one input to a session. The returned session is the
// new state; when it is Done the caller discards it.
func Transition(s Session, in Input, env Env) (Session, Effect) {
	next, eff := transition(s, in, env)
	next.UpdatedAt = env.Now
	return next, eff
}

func transition(s Session, in Input, env Env) (Session, Effect) {
	switch s.State {
	case StateAwaitTitle, StateAwaitCountry, StateAwaitCity:
		return freeText(s, in, env)
	case StateAwaitDate:
		return pickDate(s, in, env)
	case StateAwaitTime:
		return enterTime(s, in, env)
	case StateAwaitRecurrence:
		return chooseRecurrence(s, in)
	case StateAwaitNewTime:
		return enterNewTime(s, in)
	case StateAwaitDeleteOK:
		return confirmDelete(s, in)
	}

	s.State = StateIdle
	return s, Effect{Kind: EffectNone}
}

func freeText(s Session, in Input, env Env) (Session, Effect) {
	if in.Kind != InputText {
		return s, reject(textSendText)
	}

	text := strings.TrimSpace(in.Text)
	if text == "" {
		return s, reject(textEmpty)
	}

	switch s.State {
	case StateAwaitTitle:
		s.Title = text
		s.State = StateAwaitCountry
		return s, Effect{Kind: EffectPrompt, Text: textAskCountry}
	case StateAwaitCountry:
		s.Country = text
		s.State = StateAwaitCity
		return s, Effect{Kind: EffectPrompt, Text: textAskCity}
	default:
		s.City = text
		s.State = StateAwaitDate
		menu, step := calendar.Start(env.Now, env.Loc)
		return s, Effect{Kind: EffectPrompt, Text: calendarPrompt(step), Menu: menu}
	}
}

func pickDate(s Session, in Input, env Env) (Session, Effect) {
	if in.Kind != InputTap || !calendar.IsCallback(in.Data) {
		return s, reject(textUseCalendar)
	}

	res, err := calendar.Process(in.Data, env.Loc)
	if err != nil {
		return s, reject(textUseCalendar)
	}

	switch {
	case res.Done:
		s.Date = res.Date
		s.State = StateAwaitTime
		return s, Effect{Kind: EffectPrompt, Text: datePicked(res.Date), InPlace: true}
	case res.Menu != nil:
		return s, Effect{Kind: EffectPrompt, Text: calendarPrompt(res.Step), Menu: res.Menu, InPlace: true}
	default:
		return s, Effect{Kind: EffectNone}
	}
}

func enterTime(s Session, in Input, env Env) (Session, Effect) {
	if in.Kind != InputText {
		return s, reject(textSendText)
	}

	hour, minute, err := localtime.ParseClock(strings.TrimSpace(in.Text))
	if err != nil {
		return s, reject(textBadTime)
	}

	s.ScheduledAt = localtime.LocalToUTC(s.Date, hour, minute, env.Loc)
	s.State = StateAwaitRecurrence
	return s, Effect{Kind: EffectPrompt, Text: textAskRecurrence, Menu: recurrenceMenu()}
}

func chooseRecurrence(s Session, in Input) (Session, Effect) {
	if in.Kind != InputTap || !strings.HasPrefix(in.Data, DataRecurrencePrefix) {
		return s, reject(textUseButtons)
	}

	r, ok := model.ParseRecurrence(strings.TrimPrefix(in.Data, DataRecurrencePrefix))
	if !ok {
		return s, reject(textUseButtons)
	}

	event := &model.EventCreate{
		OwnerID:     s.OwnerID,
		Title:       s.Title,
		Country:     s.Country,
		City:        s.City,
		ScheduledAt: s.ScheduledAt,
		Recurrence:  r,
	}

	s.State = StateIdle
	return s, Effect{Kind: EffectCommit, Text: textCreated, Event: event, InPlace: true}
}

func enterNewTime(s Session, in Input) (Session, Effect) {
	if in.Kind != InputText {
		return s, reject(textSendText)
	}

	hour, minute, err := localtime.ParseClock(strings.TrimSpace(in.Text))
	if err != nil {
		return s, reject(textBadTime)
	}

	s.State = StateIdle
	return s, Effect{Kind: EffectUpdateTime, Text: textTimeUpdated, TargetID: s.TargetID, Hour: hour, Minute: minute}
}

// confirmDelete treats anything but an explicit yes as no.
func confirmDelete(s Session, in Input) (Session, Effect) {
	s.State = StateIdle

	if in.Kind == InputTap && in.Data == DataDeleteYes {
		return s, Effect{Kind: EffectDelete, Text: textDeleted, TargetID: s.TargetID, InPlace: true}
	}

	return s, Effect{Kind: EffectDeleteAborted, Text: textDeleteAborted, InPlace: in.Kind == InputTap}
}

func reject(text string) Effect {
	return Effect{Kind: EffectReject, Text: text}
}
