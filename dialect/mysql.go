package dialect

import (
	"database/sql"
	"fmt"

	"github.com/go-sql-driver/mysql"

	"github.com/chela-orm/chela/clause"
)

// MySQL MySQL / MariaDB through go-sql-driver
type MySQL struct {
	DSN string
}

func (MySQL) Name() string {
	return "mysql"
}

// Open parses the DSN and forces parseTime so DATETIME columns scan into time.Time
func (d MySQL) Open() (*sql.DB, error) {
	cfg, err := mysql.ParseDSN(d.DSN)
	if err != nil {
		return nil, fmt.Errorf("mysql dsn: %w", err)
	}
	cfg.ParseTime = true

	connector, err := mysql.NewConnector(cfg)
	if err != nil {
		return nil, err
	}
	return sql.OpenDB(connector), nil
}

// AutoIncrement INT AUTO_INCREMENT
func (MySQL) AutoIncrement() clause.DataType {
	return clause.Custom{Name: clause.Name("INT AUTO_INCREMENT")}
}

func (MySQL) BytesLiteral(b []byte) clause.Value {
	return clause.HexBlob(b)
}
