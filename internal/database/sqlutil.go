package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/georgysavva/scany/sqlscan"
	_ "modernc.org/sqlite"
)

// sqlUtil обертка для упрощенной работы с database/sql.
type sqlUtil struct {
	db *sql.DB
}

// Open открывает файл sqlite и создает таблицы, если их еще нет.
// Файл пишет один процесс, поэтому соединение одно.
func Open(ctx context.Context, path string) (DB, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", path)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &sqlUtil{db: db}, nil
}

// Close закрывает соединение.
func (p *sqlUtil) Close() error {
	return p.db.Close()
}

// Ping проверяет, что база отвечает.
func (p *sqlUtil) Ping(ctx context.Context) error {
	return p.db.PingContext(ctx)
}

// BeginTx начинает транзакцию.
func (p *sqlUtil) BeginTx(ctx context.Context, txOptions *sql.TxOptions) (Tx, error) {
	tx, err := p.db.BeginTx(ctx, txOptions)
	if err != nil {
		return nil, fmt.Errorf("не удалось начать транзакцию: %w", err)
	}

	return &txUtil{sqlTx: tx}, nil
}

// ExecRaw исполняет query.
func (p *sqlUtil) ExecRaw(ctx context.Context, sql string, arguments ...interface{}) (sql.Result, error) {
	return p.db.ExecContext(ctx, sql, arguments...)
}

// Exec исполняет query.
func (p *sqlUtil) Exec(ctx context.Context, sqlizer sqlizer) (sql.Result, error) {
	return execFn(ctx, p.db, sqlizer)
}

// Select может сканировать сразу несколько рядов в slice.
// Если рядов нет, возвращает nil.
func (p *sqlUtil) Select(ctx context.Context, dst interface{}, sqlizer sqlizer) error {
	return selectFn(ctx, p.db, dst, sqlizer)
}

// Get сканирует один ряд.
// Если рядов нет, возвращает ошибку sql.ErrNoRows.
func (p *sqlUtil) Get(ctx context.Context, dst interface{}, sqlizer sqlizer) error {
	return getFn(ctx, p.db, dst, sqlizer)
}

// txUtil обертка над транзакцией.
type txUtil struct {
	sqlTx *sql.Tx
}

func (t *txUtil) ExecRaw(ctx context.Context, sql string, arguments ...interface{}) (sql.Result, error) {
	return t.sqlTx.ExecContext(ctx, sql, arguments...)
}

// Exec исполняет query.
func (t *txUtil) Exec(ctx context.Context, sqlizer sqlizer) (sql.Result, error) {
	return execFn(ctx, t.sqlTx, sqlizer)
}

// Select может сканировать сразу несколько рядов в slice.
// Если рядов нет, возвращает nil.
func (t *txUtil) Select(ctx context.Context, dst interface{}, sqlizer sqlizer) error {
	return selectFn(ctx, t.sqlTx, dst, sqlizer)
}

// Get сканирует один ряд.
// Если рядов нет, возвращает ошибку sql.ErrNoRows.
func (t *txUtil) Get(ctx context.Context, dst interface{}, sqlizer sqlizer) error {
	return getFn(ctx, t.sqlTx, dst, sqlizer)
}

// Commit завершает транзакцию.
func (t *txUtil) Commit() error {
	return t.sqlTx.Commit()
}

// Rollback откатывает транзакцию.
func (t *txUtil) Rollback() error {
	return t.sqlTx.Rollback()
}

func execFn(ctx context.Context, e execer, sqlizer sqlizer) (sql.Result, error) {
	query, args, err := sqlizer.ToSql()
	if err != nil {
		return nil, fmt.Errorf("ToSql: %w", err)
	}

	return e.ExecContext(ctx, query, args...)
}

func selectFn(ctx context.Context, q sqlscan.Querier, dst interface{}, sqlizer sqlizer) error {
	query, args, err := sqlizer.ToSql()
	if err != nil {
		return fmt.Errorf("ToSql: %w", err)
	}

	return sqlscan.Select(ctx, q, dst, query, args...)
}

func getFn(ctx context.Context, q sqlscan.Querier, dst interface{}, sqlizer sqlizer) error {
	query, args, err := sqlizer.ToSql()
	if err != nil {
		return fmt.Errorf("ToSql: %w", err)
	}

	return sqlscan.Get(ctx, q, dst, query, args...)
}
