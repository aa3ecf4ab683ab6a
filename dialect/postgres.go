package dialect

import (
	"database/sql"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lib/pq"

	"github.com/chela-orm/chela/clause"
)

const (
	// PqDriverName database/sql name of github.com/lib/pq
	PqDriverName = "postgres"
	// PgxDriverName database/sql name of github.com/jackc/pgx/v5/stdlib
	PgxDriverName = "pgx"
)

// Postgres PostgreSQL through lib/pq, or pgx when DriverName is PgxDriverName
type Postgres struct {
	DSN        string
	DriverName string
}

func (Postgres) Name() string {
	return "postgres"
}

func (d Postgres) Open() (*sql.DB, error) {
	driverName := d.DriverName
	if driverName == "" {
		driverName = PqDriverName
	}
	return sql.Open(driverName, d.DSN)
}

// AutoIncrement SERIAL
func (Postgres) AutoIncrement() clause.DataType {
	return DefaultAutoIncrement()
}

func (Postgres) BytesLiteral(b []byte) clause.Value {
	return DefaultBytesLiteral(b)
}
