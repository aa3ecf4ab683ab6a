package clause

// InsertStmt INSERT INTO statement
type InsertStmt struct {
	Table   ObjectName
	Columns []Ident
	Source  QueryStmt
}

// Build build insert statement, the column list is omitted when no columns are declared
func (stmt InsertStmt) Build(builder Writer) {
	builder.WriteString("INSERT INTO ")
	stmt.Table.Build(builder)
	if len(stmt.Columns) > 0 {
		builder.WriteString(" (")
		buildCommaSeparated(builder, stmt.Columns)
		builder.WriteByte(')')
	}
	builder.WriteByte(' ')
	stmt.Source.Build(builder)
	builder.WriteByte(';')
}

func (stmt InsertStmt) String() string {
	return Render(stmt)
}
