package events

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/SergeyKozhin/reminder-bot/internal/database"
	"github.com/SergeyKozhin/reminder-bot/internal/model"
	"go.uber.org/zap"
)

func setupRepositoryTest(t *testing.T) (*Repository, database.DB) {
	t.Helper()

	db, err := database.Open(context.Background(), filepath.Join(t.TempDir(), "reminders.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return NewRepository(zap.NewNop().Sugar()), db
}

func newEvent(owner int64, title string, at time.Time) *model.EventCreate {
	return &model.EventCreate{
		OwnerID:     owner,
		Title:       title,
		Country:     "BR",
		City:        "SP",
		ScheduledAt: at,
		Recurrence:  model.RecurrenceDaily,
	}
}

func TestRepository_CreateAndGet(t *testing.T) {
	repo, db := setupRepositoryTest(t)
	ctx := context.Background()

	at := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	id, err := repo.CreateEvent(ctx, db, newEvent(42, "Gym", at))
	if err != nil {
		t.Fatalf("CreateEvent failed: %v", err)
	}

	got, err := repo.GetEventByID(ctx, db, id)
	if err != nil {
		t.Fatalf("GetEventByID failed: %v", err)
	}

	if got.ID != id {
		t.Errorf("Expected id %d, got %d", id, got.ID)
	}
	if got.OwnerID != 42 || got.Title != "Gym" || got.Country != "BR" || got.City != "SP" {
		t.Errorf("Unexpected record fields: %+v", got.EventCreate)
	}
	if !got.ScheduledAt.Equal(at) {
		t.Errorf("Expected %v, got %v", at, got.ScheduledAt)
	}
	if got.ScheduledAt.Location() != time.UTC {
		t.Errorf("Expected instant in UTC, got %v", got.ScheduledAt.Location())
	}
	if got.Recurrence != model.RecurrenceDaily {
		t.Errorf("Expected daily recurrence, got %s", got.Recurrence)
	}
}

func TestRepository_CreateStoresUTC(t *testing.T) {
	repo, db := setupRepositoryTest(t)
	ctx := context.Background()

	saoPaulo := time.FixedZone("BRT", -3*60*60)
	at := time.Date(2026, 3, 14, 7, 0, 0, 0, saoPaulo)

	id, err := repo.CreateEvent(ctx, db, newEvent(1, "Gym", at))
	if err != nil {
		t.Fatalf("CreateEvent failed: %v", err)
	}

	var raw string
	if err := db.Get(ctx, &raw, database.SQ.Select("scheduled_at_utc").From(database.EventsTable).Where("id = ?", id)); err != nil {
		t.Fatalf("raw select failed: %v", err)
	}

	if raw != "2026-03-14T10:00:00Z" {
		t.Errorf("Expected stored instant '2026-03-14T10:00:00Z', got '%s'", raw)
	}
}

func TestRepository_GetEventByID_NotFound(t *testing.T) {
	repo, db := setupRepositoryTest(t)

	_, err := repo.GetEventByID(context.Background(), db, 999)
	if !errors.Is(err, model.ErrNoRecord) {
		t.Fatalf("Expected ErrNoRecord, got %v", err)
	}
}

func TestRepository_GetEventsByOwner(t *testing.T) {
	repo, db := setupRepositoryTest(t)
	ctx := context.Background()
	at := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)

	for _, title := range []string{"first", "second", "third"} {
		if _, err := repo.CreateEvent(ctx, db, newEvent(7, title, at)); err != nil {
			t.Fatalf("CreateEvent failed: %v", err)
		}
	}
	if _, err := repo.CreateEvent(ctx, db, newEvent(8, "other owner", at)); err != nil {
		t.Fatalf("CreateEvent failed: %v", err)
	}

	got, err := repo.GetEventsByOwner(ctx, db, 7)
	if err != nil {
		t.Fatalf("GetEventsByOwner failed: %v", err)
	}

	if len(got) != 3 {
		t.Fatalf("Expected 3 events, got %d", len(got))
	}
	for i, title := range []string{"first", "second", "third"} {
		if got[i].Title != title {
			t.Errorf("Expected event %d to be '%s', got '%s'", i, title, got[i].Title)
		}
	}

	empty, err := repo.GetEventsByOwner(ctx, db, 100)
	if err != nil {
		t.Fatalf("GetEventsByOwner failed: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("Expected no events, got %d", len(empty))
	}

	all, err := repo.GetEvents(ctx, db)
	if err != nil {
		t.Fatalf("GetEvents failed: %v", err)
	}
	if len(all) != 4 {
		t.Errorf("Expected 4 events in total, got %d", len(all))
	}
}

func TestRepository_UpdateEventTime(t *testing.T) {
	repo, db := setupRepositoryTest(t)
	ctx := context.Background()

	id, err := repo.CreateEvent(ctx, db, newEvent(1, "Gym", time.Date(2026, 5, 2, 10, 0, 0, 0, time.UTC)))
	if err != nil {
		t.Fatalf("CreateEvent failed: %v", err)
	}

	moved := time.Date(2026, 5, 2, 15, 45, 0, 0, time.UTC)
	if err := repo.UpdateEventTime(ctx, db, id, moved); err != nil {
		t.Fatalf("UpdateEventTime failed: %v", err)
	}

	got, err := repo.GetEventByID(ctx, db, id)
	if err != nil {
		t.Fatalf("GetEventByID failed: %v", err)
	}
	if !got.ScheduledAt.Equal(moved) {
		t.Errorf("Expected %v, got %v", moved, got.ScheduledAt)
	}

	if err := repo.UpdateEventTime(ctx, db, id+100, moved); !errors.Is(err, model.ErrNoRecord) {
		t.Errorf("Expected ErrNoRecord for missing id, got %v", err)
	}
}

func TestRepository_DeleteEvent(t *testing.T) {
	repo, db := setupRepositoryTest(t)
	ctx := context.Background()

	id, err := repo.CreateEvent(ctx, db, newEvent(1, "Gym", time.Now()))
	if err != nil {
		t.Fatalf("CreateEvent failed: %v", err)
	}

	if err := repo.DeleteEvent(ctx, db, id); err != nil {
		t.Fatalf("DeleteEvent failed: %v", err)
	}

	if _, err := repo.GetEventByID(ctx, db, id); !errors.Is(err, model.ErrNoRecord) {
		t.Errorf("Expected ErrNoRecord after delete, got %v", err)
	}

	if err := repo.DeleteEvent(ctx, db, id); !errors.Is(err, model.ErrNoRecord) {
		t.Errorf("Expected ErrNoRecord deleting twice, got %v", err)
	}
}

func TestRepository_LegacyRecurrence(t *testing.T) {
	repo, db := setupRepositoryTest(t)
	ctx := context.Background()

	if _, err := db.ExecRaw(ctx,
		`INSERT INTO reminders (owner_id, title, country, city, scheduled_at_utc, recurrence) VALUES (?, ?, ?, ?, ?, ?)`,
		1, "old", "BR", "SP", "2025-12-01T12:00:00Z", "none",
	); err != nil {
		t.Fatalf("raw insert failed: %v", err)
	}

	got, err := repo.GetEventsByOwner(ctx, db, 1)
	if err != nil {
		t.Fatalf("GetEventsByOwner failed: %v", err)
	}
	if len(got) != 1 || got[0].Recurrence != model.RecurrenceOnce {
		t.Errorf("Expected one 'once' event, got %+v", got)
	}
}

func TestRepository_SkipsUnreadableRows(t *testing.T) {
	repo, db := setupRepositoryTest(t)
	ctx := context.Background()

	insert := `INSERT INTO reminders (owner_id, title, country, city, scheduled_at_utc, recurrence) VALUES (?, ?, ?, ?, ?, ?)`
	rows := [][]interface{}{
		{1, "good", "BR", "SP", "2026-03-14T10:00:00Z", "daily"},
		{1, "bad time", "BR", "SP", "14/03/2026 10:00", "daily"},
		{2, "bad recurrence", "BR", "SP", "2026-03-14T10:00:00Z", "weekly"},
		{2, "also good", "BR", "SP", "2026-03-14T11:00:00Z", "monthly"},
	}
	for _, r := range rows {
		if _, err := db.ExecRaw(ctx, insert, r...); err != nil {
			t.Fatalf("raw insert failed: %v", err)
		}
	}

	all, err := repo.GetEvents(ctx, db)
	if err != nil {
		t.Fatalf("GetEvents failed: %v", err)
	}
	if len(all) != 2 || all[0].Title != "good" || all[1].Title != "also good" {
		t.Errorf("Expected the two readable rows, got %+v", all)
	}

	owned, err := repo.GetEventsByOwner(ctx, db, 1)
	if err != nil {
		t.Fatalf("GetEventsByOwner failed: %v", err)
	}
	if len(owned) != 1 || owned[0].Title != "good" {
		t.Errorf("Expected the owner's readable row, got %+v", owned)
	}
}
