package database

import sq "github.com/Masterminds/squirrel"

// SQ строит запросы с плейсхолдерами sqlite.
var SQ = sq.StatementBuilder.PlaceholderFormat(sq.Question)

const (
	EventsTable = "reminders"
)

const schema = `
CREATE TABLE IF NOT EXISTS reminders (
	id               INTEGER PRIMARY KEY AUTOINCREMENT,
	owner_id         INTEGER NOT NULL,
	title            TEXT    NOT NULL,
	country          TEXT    NOT NULL,
	city             TEXT    NOT NULL,
	scheduled_at_utc TEXT    NOT NULL,
	recurrence       TEXT    NOT NULL
);
CREATE INDEX IF NOT EXISTS reminders_owner_id_idx ON reminders (owner_id);
`
