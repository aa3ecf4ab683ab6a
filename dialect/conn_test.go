package dialect_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chela-orm/chela/dialect"
	"github.com/chela-orm/chela/logger"
)

func TestConnExec(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	defer db.Close()

	conn := dialect.NewConn(db, logger.Discard)

	mock.ExpectExec("INSERT INTO users (name) VALUES ('John');").WillReturnResult(sqlmock.NewResult(1, 1))
	n, err := conn.Exec(context.Background(), "INSERT INTO users (name) VALUES ('John');")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	mock.ExpectExec("CREATE TABLE users (id SERIAL PRIMARY KEY);").WillReturnError(errors.New("relation exists"))
	_, err = conn.Exec(context.Background(), "CREATE TABLE users (id SERIAL PRIMARY KEY);")
	assert.EqualError(t, err, "relation exists")

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestConnQuery(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	defer db.Close()

	id := uuid.New()
	at := time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)
	mock.ExpectQuery("SELECT * FROM orders WHERE user_id IN (1, 2)").WillReturnRows(
		sqlmock.NewRows([]string{"id", "user_id", "reference", "paid", "created_at"}).
			AddRow(int64(1), int64(1), id.String(), true, at).
			AddRow(int64(2), int64(2), id.String(), false, at),
	)

	rows, err := dialect.NewConn(db, nil).Query(context.Background(), "SELECT * FROM orders WHERE user_id IN (1, 2)")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	row := rows[1]
	assert.Equal(t, []string{"id", "user_id", "reference", "paid", "created_at"}, row.Columns())
	assert.Equal(t, 1, row.Index("user_id"))
	userID, err := row.Int64(1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), userID)

	ref, err := row.UUID(2)
	require.NoError(t, err)
	assert.Equal(t, id, ref)

	paid, err := row.Bool(3)
	require.NoError(t, err)
	assert.False(t, paid)

	createdAt, err := row.Time(4)
	require.NoError(t, err)
	assert.True(t, at.Equal(createdAt))

	mock.ExpectQuery("SELECT * FROM missing").WillReturnError(errors.New("no such table"))
	_, err = dialect.NewConn(db, logger.Discard).Query(context.Background(), "SELECT * FROM missing")
	assert.EqualError(t, err, "no such table")

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestConnSQLite(t *testing.T) {
	db, err := dialect.SQLite{}.Open()
	require.NoError(t, err)
	defer db.Close()
	db.SetMaxOpenConns(1)

	ctx := context.Background()
	conn := dialect.NewConn(db, logger.Discard)

	_, err = conn.Exec(ctx, "CREATE TABLE users (id INTEGER PRIMARY KEY, name VARCHAR(150) NOT NULL);")
	require.NoError(t, err)

	n, err := conn.Exec(ctx, "INSERT INTO users (name) VALUES ('John');")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	rows, err := conn.Query(ctx, "SELECT * FROM users")
	require.NoError(t, err)
	require.Len(t, rows, 1)

	id, err := rows[0].Int64(0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	name, err := rows[0].String(1)
	require.NoError(t, err)
	assert.Equal(t, "John", name)
}
