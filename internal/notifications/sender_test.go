package notifications

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/SergeyKozhin/reminder-bot/internal/model"
	"go.uber.org/zap"
)

var brt = time.FixedZone("BRT", -3*60*60)

type fakeEvents struct {
	events []*model.Event
	err    error
}

func (f *fakeEvents) GetAllEvents(context.Context) ([]*model.Event, error) {
	return f.events, f.err
}

type sent struct {
	chatID int64
	text   string
}

type fakeChat struct {
	sent    []sent
	failFor map[int64]bool
}

func (f *fakeChat) SendText(_ context.Context, chatID int64, text string, _ model.Menu) error {
	if f.failFor[chatID] {
		return errors.New("blocked by user")
	}
	f.sent = append(f.sent, sent{chatID: chatID, text: text})
	return nil
}

func event(id, owner int64, at time.Time, r model.Recurrence) *model.Event {
	return &model.Event{
		ID: id,
		EventCreate: model.EventCreate{
			OwnerID:     owner,
			Title:       "Gym",
			Country:     "BR",
			City:        "SP",
			ScheduledAt: at.UTC(),
			Recurrence:  r,
		},
	}
}

func TestIsDue(t *testing.T) {
	at := time.Date(2026, 3, 14, 7, 0, 0, 0, brt)

	tests := []struct {
		name string
		r    model.Recurrence
		now  time.Time
		want bool
	}{
		{"once on its minute", model.RecurrenceOnce, at.Add(30 * time.Second), true},
		{"once next day", model.RecurrenceOnce, at.AddDate(0, 0, 1), false},
		{"once other minute", model.RecurrenceOnce, at.Add(time.Minute), false},
		{"daily any date", model.RecurrenceDaily, time.Date(2027, 8, 2, 7, 0, 0, 0, brt), true},
		{"daily before start date", model.RecurrenceDaily, time.Date(2025, 1, 1, 7, 0, 0, 0, brt), true},
		{"daily other hour", model.RecurrenceDaily, time.Date(2027, 8, 2, 8, 0, 0, 0, brt), false},
		{"monthly same day", model.RecurrenceMonthly, time.Date(2026, 9, 14, 7, 0, 0, 0, brt), true},
		{"monthly other day", model.RecurrenceMonthly, time.Date(2026, 9, 15, 7, 0, 0, 0, brt), false},
		// Same instant seen from UTC must still match on the local clock.
		{"daily compared in zone", model.RecurrenceDaily, time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC), true},
		{"unknown recurrence", "weekly", at, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsDue(event(1, 1, at, tt.r), tt.now, brt); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestIsDue_MonthlyOn31st(t *testing.T) {
	e := event(1, 1, time.Date(2026, 1, 31, 9, 0, 0, 0, brt), model.RecurrenceMonthly)

	if IsDue(e, time.Date(2026, 2, 28, 9, 0, 0, 0, brt), brt) {
		t.Error("A 31st reminder must not fire on the last day of a shorter month")
	}
	if !IsDue(e, time.Date(2026, 3, 31, 9, 0, 0, 0, brt), brt) {
		t.Error("Expected the reminder to fire on March 31st")
	}
}

func TestTick(t *testing.T) {
	now := time.Date(2026, 10, 17, 7, 0, 10, 0, brt)
	events := &fakeEvents{events: []*model.Event{
		event(1, 100, time.Date(2026, 10, 17, 7, 0, 0, 0, brt), model.RecurrenceOnce),
		event(2, 200, time.Date(2026, 1, 1, 7, 0, 0, 0, brt), model.RecurrenceDaily),
		event(3, 300, time.Date(2026, 1, 17, 7, 0, 0, 0, brt), model.RecurrenceMonthly),
		event(4, 400, time.Date(2026, 10, 17, 8, 0, 0, 0, brt), model.RecurrenceDaily),
	}}
	chat := &fakeChat{failFor: map[int64]bool{100: true}}

	s := NewSender(zap.NewNop().Sugar(), events, chat, brt, "* * * * *")
	s.Tick(context.Background(), now)

	if len(chat.sent) != 2 {
		t.Fatalf("Expected 2 notifications after one failure, got %+v", chat.sent)
	}
	if chat.sent[0].chatID != 200 || chat.sent[1].chatID != 300 {
		t.Errorf("Unexpected recipients %+v", chat.sent)
	}

	text := chat.sent[0].text
	for _, want := range []string{"Gym", "07:00", "SP, BR", "18/10/2026 07:00"} {
		if !strings.Contains(text, want) {
			t.Errorf("Expected %q in notification %q", want, text)
		}
	}
}

func TestTick_StoreError(t *testing.T) {
	chat := &fakeChat{}
	s := NewSender(zap.NewNop().Sugar(), &fakeEvents{err: errors.New("disk")}, chat, brt, "* * * * *")
	s.Tick(context.Background(), time.Now())

	if len(chat.sent) != 0 {
		t.Errorf("Expected nothing sent, got %+v", chat.sent)
	}
}

func TestStart_BadSchedule(t *testing.T) {
	s := NewSender(zap.NewNop().Sugar(), &fakeEvents{}, &fakeChat{}, brt, "every minute")
	if err := s.Start(context.Background()); err == nil {
		t.Error("Expected an error for a malformed schedule")
	}
}
