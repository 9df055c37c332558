package conversation

import (
	"fmt"
	"testing"
	"time"

	"github.com/SergeyKozhin/reminder-bot/internal/model"
)

var brt = time.FixedZone("BRT", -3*60*60)

func testEnv() Env {
	return Env{Now: time.Date(2026, 10, 17, 12, 0, 0, 0, brt), Loc: brt}
}

func dayData(y int, m time.Month, d int) string {
	return fmt.Sprintf("cal:s:d:%d:%d:%d", y, int(m), d)
}

func step(t *testing.T, s Session, in Input, wantState State, wantKind EffectKind) (Session, Effect) {
	t.Helper()

	next, eff := Transition(s, in, testEnv())
	if next.State != wantState {
		t.Fatalf("from %s with %+v: expected state %s, got %s", s.State, in, wantState, next.State)
	}
	if eff.Kind != wantKind {
		t.Fatalf("from %s with %+v: expected effect %d, got %d (%q)", s.State, in, wantKind, eff.Kind, eff.Text)
	}
	return next, eff
}

func TestWizard_EndToEnd(t *testing.T) {
	s, eff := StartWizard(42, testEnv())
	if s.State != StateAwaitTitle || eff.Kind != EffectPrompt {
		t.Fatalf("Unexpected start %+v %+v", s, eff)
	}

	s, _ = step(t, s, Text("Gym"), StateAwaitCountry, EffectPrompt)
	s, _ = step(t, s, Text("BR"), StateAwaitCity, EffectPrompt)
	s, eff = step(t, s, Text("SP"), StateAwaitDate, EffectPrompt)
	if len(eff.Menu) == 0 {
		t.Fatal("Expected a calendar keyboard after the city")
	}

	// Navigating the calendar stays in the same state and edits in place.
	s, eff = step(t, s, Tap("cal:s:y:2026:1:1"), StateAwaitDate, EffectPrompt)
	if !eff.InPlace || len(eff.Menu) == 0 {
		t.Errorf("Expected an in-place calendar redraw, got %+v", eff)
	}
	s, _ = step(t, s, Tap("cal:s:m:2026:11:1"), StateAwaitDate, EffectPrompt)

	s, _ = step(t, s, Tap(dayData(2026, time.November, 20)), StateAwaitTime, EffectPrompt)
	s, _ = step(t, s, Text("07:00"), StateAwaitRecurrence, EffectPrompt)
	s, eff = step(t, s, Tap("rec_daily"), StateIdle, EffectCommit)

	if !s.Done() {
		t.Error("Expected the session to be done after commit")
	}

	e := eff.Event
	if e == nil {
		t.Fatal("Expected an event to commit")
	}
	if e.OwnerID != 42 || e.Title != "Gym" || e.Country != "BR" || e.City != "SP" || e.Recurrence != model.RecurrenceDaily {
		t.Errorf("Unexpected event %+v", e)
	}

	want := time.Date(2026, 11, 20, 7, 0, 0, 0, brt).UTC()
	if !e.ScheduledAt.Equal(want) || e.ScheduledAt.Location() != time.UTC {
		t.Errorf("Expected %v, got %v", want, e.ScheduledAt)
	}
}

func TestWizard_BadTimeReprompts(t *testing.T) {
	s := Session{OwnerID: 1, State: StateAwaitTime, Date: time.Date(2026, 11, 20, 0, 0, 0, 0, brt)}

	for _, bad := range []string{"9:30", "24:00", "12:60", "noon", ""} {
		next, eff := step(t, s, Text(bad), StateAwaitTime, EffectReject)
		if eff.Text != textBadTime {
			t.Errorf("%q: expected the bad time prompt, got %q", bad, eff.Text)
		}
		if !next.ScheduledAt.IsZero() {
			t.Errorf("%q: expected no time to be recorded", bad)
		}
	}

	step(t, s, Text("09:30"), StateAwaitRecurrence, EffectPrompt)
}

func TestWizard_IllegalInputs(t *testing.T) {
	tests := []struct {
		name  string
		state State
		in    Input
	}{
		{"tap while awaiting title", StateAwaitTitle, Tap("rec_daily")},
		{"empty country", StateAwaitCountry, Text("   ")},
		{"time text while awaiting date", StateAwaitDate, Text("07:00")},
		{"foreign tap while awaiting date", StateAwaitDate, Tap("rec_once")},
		{"impossible date", StateAwaitDate, Tap("cal:s:d:2026:2:31")},
		{"tap while awaiting time", StateAwaitTime, Tap("cal:s:d:2026:2:1")},
		{"text while awaiting recurrence", StateAwaitRecurrence, Text("daily")},
		{"unknown recurrence", StateAwaitRecurrence, Tap("rec_weekly")},
		{"tap while awaiting new time", StateAwaitNewTime, Tap("del_yes")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Session{OwnerID: 1, State: tt.state, Title: "kept"}
			next, eff := Transition(s, tt.in, testEnv())
			if next.State != tt.state {
				t.Errorf("Expected to stay in %s, got %s", tt.state, next.State)
			}
			if eff.Kind != EffectReject || eff.Text == "" {
				t.Errorf("Expected a reject effect with a hint, got %+v", eff)
			}
			if next.Title != "kept" {
				t.Errorf("Expected accumulated data to survive, got %+v", next)
			}
		})
	}
}

func TestWizard_CalendarLabelTap(t *testing.T) {
	s := Session{OwnerID: 1, State: StateAwaitDate}
	step(t, s, Tap("cal:n:d:0:1:0"), StateAwaitDate, EffectNone)
}

func TestEdit(t *testing.T) {
	s, eff := StartEdit(1, 99, testEnv())
	if s.State != StateAwaitNewTime || s.TargetID != 99 || eff.Kind != EffectPrompt {
		t.Fatalf("Unexpected start %+v %+v", s, eff)
	}

	s, _ = step(t, s, Text("25:00"), StateAwaitNewTime, EffectReject)
	_, eff = step(t, s, Text("15:45"), StateIdle, EffectUpdateTime)

	if eff.TargetID != 99 || eff.Hour != 15 || eff.Minute != 45 {
		t.Errorf("Unexpected update effect %+v", eff)
	}
}

func TestDeleteConfirmation(t *testing.T) {
	event := &model.Event{ID: 7, EventCreate: model.EventCreate{Title: "Gym"}}

	s, eff := StartDelete(1, event, testEnv())
	if s.State != StateAwaitDeleteOK || s.TargetID != 7 || len(eff.Menu) == 0 {
		t.Fatalf("Unexpected start %+v %+v", s, eff)
	}

	_, eff = step(t, s, Tap(DataDeleteYes), StateIdle, EffectDelete)
	if eff.TargetID != 7 {
		t.Errorf("Expected to delete 7, got %d", eff.TargetID)
	}

	for _, in := range []Input{Tap(DataDeleteNo), Text("sim"), Tap("view_7")} {
		step(t, s, in, StateIdle, EffectDeleteAborted)
	}
}

func TestTransition_UpdatesTimestamp(t *testing.T) {
	env := testEnv()
	s := Session{OwnerID: 1, State: StateAwaitTitle, UpdatedAt: env.Now.Add(-time.Hour)}

	next, _ := Transition(s, Text("Gym"), env)
	if !next.UpdatedAt.Equal(env.Now) {
		t.Errorf("Expected UpdatedAt %v, got %v", env.Now, next.UpdatedAt)
	}
}

func TestTransition_IdleIgnoresInput(t *testing.T) {
	next, eff := Transition(Session{OwnerID: 1, State: StateIdle}, Text("hello"), testEnv())
	if !next.Done() || eff.Kind != EffectNone {
		t.Errorf("Expected idle session to ignore input, got %+v %+v", next, eff)
	}
}
