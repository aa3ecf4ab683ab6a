package dialect

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/chela-orm/chela/clause"
)

// ErrUnsupportedDialect dialect name not known to New
var ErrUnsupportedDialect = errors.New("unsupported dialect")

// Dialector opens connections for one database flavour and supplies the
// pieces of DDL that differ between them
type Dialector interface {
	Name() string
	Open() (*sql.DB, error)
	// AutoIncrement column type of an auto-incrementing primary key
	AutoIncrement() clause.DataType
	// BytesLiteral binary value as an SQL literal
	BytesLiteral(b []byte) clause.Value
}

// New returns the dialector registered under name: postgres, pgx, mysql, sqlite or sqlite3
func New(name, dsn string) (Dialector, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "postgres", "postgresql":
		return Postgres{DSN: dsn}, nil
	case "pgx":
		return Postgres{DSN: dsn, DriverName: PgxDriverName}, nil
	case "mysql":
		return MySQL{DSN: dsn}, nil
	case "sqlite", "sqlite3":
		return SQLite{DSN: dsn}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedDialect, name)
}

// DefaultAutoIncrement placeholder used when no dialector is configured
func DefaultAutoIncrement() clause.DataType {
	return clause.Custom{Name: clause.Name("SERIAL")}
}

// DefaultBytesLiteral bytea hex literal used when no dialector is configured
func DefaultBytesLiteral(b []byte) clause.Value {
	return clause.ByteaHex(b)
}
