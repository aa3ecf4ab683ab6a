package dialect

import (
	"database/sql"

	_ "modernc.org/sqlite"

	"github.com/chela-orm/chela/clause"
)

// SQLite pure Go SQLite through modernc.org/sqlite
type SQLite struct {
	DSN string
}

func (SQLite) Name() string {
	return "sqlite"
}

func (d SQLite) Open() (*sql.DB, error) {
	dsn := d.DSN
	if dsn == "" {
		dsn = ":memory:"
	}
	return sql.Open("sqlite", dsn)
}

// AutoIncrement INTEGER, which makes the primary key an alias of the rowid
func (SQLite) AutoIncrement() clause.DataType {
	return clause.Custom{Name: clause.Name("INTEGER")}
}

func (SQLite) BytesLiteral(b []byte) clause.Value {
	return clause.HexBlob(b)
}
