package database

import (
	"context"
	"database/sql"
)

// DB содержит основные операции для работы с базой данных.
type DB interface {
	Queryable
	Ping(ctx context.Context) error
	Close() error
	BeginTx(ctx context.Context, txOptions *sql.TxOptions) (Tx, error)
}

// Tx - транзакция
type Tx interface {
	Queryable
	Commit() error
	Rollback() error
}

// Queryable содержит основные операции для query-инга db.
type Queryable interface {
	Exec(ctx context.Context, sqlizer sqlizer) (sql.Result, error)
	Get(ctx context.Context, dst interface{}, sqlizer sqlizer) error
	Select(ctx context.Context, dst interface{}, sqlizer sqlizer) error
	ExecRaw(ctx context.Context, sql string, arguments ...interface{}) (sql.Result, error)
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

type sqlizer interface {
	ToSql() (sql string, args []interface{}, err error)
}
