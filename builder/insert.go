package builder

import "github.com/chela-orm/chela/clause"

// InsertBuilder assembles a single row INSERT statement
type InsertBuilder struct {
	table   clause.ObjectName
	columns []clause.Ident
	row     []clause.Expr
}

// NewInsertBuilder starts with no table, no columns and one empty row
func NewInsertBuilder() InsertBuilder {
	return InsertBuilder{}
}

// InsertInto shorthand for NewInsertBuilder().Into(table)
func InsertInto(table string) InsertBuilder {
	return NewInsertBuilder().Into(table)
}

func (b InsertBuilder) Into(table string) InsertBuilder {
	b.table = clause.Name(table)
	return b
}

func (b InsertBuilder) Column(column string) InsertBuilder {
	b.columns = appendCopy(b.columns, clause.NewIdent(column))
	return b
}

func (b InsertBuilder) Columns(columns ...string) InsertBuilder {
	b.columns = appendCopy(b.columns, clause.Idents(columns...)...)
	return b
}

// Values replace the row with single quoted string literals
func (b InsertBuilder) Values(values ...string) InsertBuilder {
	row := make([]clause.Expr, 0, len(values))
	for _, value := range values {
		row = append(row, clause.SingleQuotedString(value))
	}
	b.row = row
	return b
}

// Literals replace the row with arbitrary literals
func (b InsertBuilder) Literals(values ...clause.Value) InsertBuilder {
	b.row = clause.ValueList(values...)
	return b
}

// Build freeze into an InsertStmt; the row arity is not checked against the columns
func (b InsertBuilder) Build() clause.InsertStmt {
	return clause.InsertStmt{
		Table:   clone(b.table),
		Columns: clone(b.columns),
		Source: clause.QueryStmt{
			Body: clause.Values{Rows: [][]clause.Expr{appendCopy(b.row)}},
		},
	}
}
