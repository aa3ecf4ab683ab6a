package clause

// Values VALUES body of a query, one slice per row
type Values struct {
	Rows [][]Expr
}

func (Values) setExpr() {}

// Build build values clause
func (values Values) Build(builder Writer) {
	builder.WriteString("VALUES ")
	for idx, row := range values.Rows {
		if idx > 0 {
			builder.WriteString(separator)
		}
		builder.WriteByte('(')
		buildCommaSeparated(builder, row)
		builder.WriteByte(')')
	}
}
