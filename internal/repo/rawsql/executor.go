// Package rawsql — доступ к items через параметризованный SQL без ORM.
package rawsql

import (
	"context"
	"database/sql"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Bindvar — стиль плейсхолдеров драйвера.
type Bindvar int

const (
	// Question — плейсхолдеры вида ? (SQLite).
	Question Bindvar = iota
	// Dollar — плейсхолдеры вида $1, $2 (PostgreSQL).
	Dollar
)

// Executor выполняет ровно один запрос на одном соединении из пула.
// Соединение возвращается в пул на любом пути выхода.
type Executor struct {
	db             *sql.DB
	bindvar        Bindvar
	acquireTimeout time.Duration
	logger         *zap.SugaredLogger
}

// NewExecutor создаёт исполнитель поверх пула. acquireTimeout ограничивает
// только ожидание свободного соединения; 0 — ждать без ограничения.
func NewExecutor(db *sql.DB, bindvar Bindvar, acquireTimeout time.Duration, logger *zap.SugaredLogger) *Executor {
	return &Executor{db: db, bindvar: bindvar, acquireTimeout: acquireTimeout, logger: logger}
}

// RowScanner превращает текущую строку результата в значение.
type RowScanner[T any] func(rows *sql.Rows) (T, error)

// Query выполняет SELECT и возвращает все строки, прочитанные scan.
func Query[T any](ctx context.Context, e *Executor, stmt string, scan RowScanner[T], args ...any) ([]T, error) {
	conn, err := e.acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer e.release(conn)

	e.logger.Infow("query sending to DB", "stmt", stmt)
	rows, err := conn.QueryContext(ctx, e.rebind(stmt), args...)
	if err != nil {
		e.logger.Errorw("error running query on DB", "stmt", stmt, "error", err)
		return nil, err
	}
	defer rows.Close()

	res := make([]T, 0)
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			e.logger.Errorw("error scanning row", "stmt", stmt, "error", err)
			return nil, err
		}
		res = append(res, v)
	}
	if err := rows.Err(); err != nil {
		e.logger.Errorw("error reading rows", "stmt", stmt, "error", err)
		return nil, err
	}
	e.logger.Infow("results obtained from DB", "stmt", stmt, "rows", len(res))
	return res, nil
}

// Exec выполняет INSERT/UPDATE/DELETE и возвращает число затронутых строк.
func (e *Executor) Exec(ctx context.Context, stmt string, args ...any) (int64, error) {
	conn, err := e.acquire(ctx)
	if err != nil {
		return 0, err
	}
	defer e.release(conn)

	e.logger.Infow("statement sending to DB", "stmt", stmt)
	res, err := conn.ExecContext(ctx, e.rebind(stmt), args...)
	if err != nil {
		e.logger.Errorw("error running statement on DB", "stmt", stmt, "error", err)
		return 0, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	e.logger.Infow("statement applied", "stmt", stmt, "rows", n)
	return n, nil
}

// Close закрывает пул; после этого Query и Exec возвращают ошибку.
func (e *Executor) Close() error {
	e.logger.Infow("closing connection pool")
	return e.db.Close()
}

func (e *Executor) acquire(ctx context.Context) (*sql.Conn, error) {
	e.logger.Infow("acquiring database connection")
	actx := ctx
	if e.acquireTimeout > 0 {
		var cancel context.CancelFunc
		actx, cancel = context.WithTimeout(ctx, e.acquireTimeout)
		defer cancel()
	}
	conn, err := e.db.Conn(actx)
	if err != nil {
		e.logger.Errorw("acquiring database connection failed", "error", err)
		return nil, err
	}
	e.logger.Infow("database connection acquired")
	return conn, nil
}

func (e *Executor) release(conn *sql.Conn) {
	if err := conn.Close(); err != nil {
		e.logger.Warnw("releasing connection back to pool failed", "error", err)
		return
	}
	e.logger.Infow("connection released back to pool")
}

// rebind переписывает ? в $n для PostgreSQL. Запросы пакета не содержат
// символа ? внутри строковых литералов.
func (e *Executor) rebind(stmt string) string {
	if e.bindvar != Dollar {
		return stmt
	}
	var b strings.Builder
	b.Grow(len(stmt) + 8)
	n := 0
	for _, r := range stmt {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
