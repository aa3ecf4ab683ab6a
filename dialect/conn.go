package dialect

import (
	"context"
	"database/sql"
	"time"

	"github.com/chela-orm/chela/logger"
)

// ConnPool db conns pool interface, satisfied by *sql.DB, *sql.Conn and *sql.Tx
type ConnPool interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
}

// Executor runs SQL text rendered by this module
type Executor interface {
	// Exec returns the number of affected rows, -1 when the driver cannot tell
	Exec(ctx context.Context, sql string) (int64, error)
	Query(ctx context.Context, sql string) ([]Row, error)
}

// Conn Executor over a ConnPool, every round trip is traced
type Conn struct {
	ConnPool ConnPool
	Logger   logger.Interface
}

// NewConn nil logger means logger.Default
func NewConn(pool ConnPool, l logger.Interface) *Conn {
	if l == nil {
		l = logger.Default
	}
	return &Conn{ConnPool: pool, Logger: l}
}

func (c *Conn) Exec(ctx context.Context, sql string) (int64, error) {
	var (
		begin        = time.Now()
		rowsAffected = int64(-1)
	)

	result, err := c.ConnPool.ExecContext(ctx, sql)
	if err == nil {
		if n, rerr := result.RowsAffected(); rerr == nil {
			rowsAffected = n
		}
	}

	c.Logger.Trace(ctx, begin, func() (string, int64) { return sql, rowsAffected }, err)
	if err != nil {
		return 0, err
	}
	return rowsAffected, nil
}

func (c *Conn) Query(ctx context.Context, sql string) ([]Row, error) {
	begin := time.Now()
	rows, err := c.query(ctx, sql)
	c.Logger.Trace(ctx, begin, func() (string, int64) { return sql, int64(len(rows)) }, err)
	return rows, err
}

func (c *Conn) query(ctx context.Context, query string) ([]Row, error) {
	rows, err := c.ConnPool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var results []Row
	for rows.Next() {
		values := make([]interface{}, len(columns))
		dest := make([]interface{}, len(columns))
		for idx := range values {
			dest[idx] = &values[idx]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		results = append(results, Row{columns: columns, values: values})
	}
	return results, rows.Err()
}
