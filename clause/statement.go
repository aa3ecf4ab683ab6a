package clause

import "strings"

// Statement closed set of statements: CreateStmt, QueryStmt and InsertStmt
type Statement interface {
	Expression
	statement()
}

func (CreateStmt) statement() {}
func (QueryStmt) statement()  {}
func (InsertStmt) statement() {}

// SQL renders a complete statement. CREATE TABLE is terminated with `;`,
// INSERT carries its own terminator and queries are left open.
func SQL(stmt Statement) string {
	var sql strings.Builder
	switch stmt := stmt.(type) {
	case CreateStmt:
		stmt.Build(&sql)
		sql.WriteByte(';')
	case QueryStmt:
		stmt.Build(&sql)
	case InsertStmt:
		stmt.Build(&sql)
	}
	return sql.String()
}
