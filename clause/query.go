package clause

import "strconv"

// SetExpr body of a query, either a Select or a Values list
type SetExpr interface {
	Expression
	setExpr()
}

// QueryStmt query with optional ORDER BY and LIMIT
type QueryStmt struct {
	Body    SetExpr
	OrderBy string
	Limit   *int64
}

// Build build query statement
func (stmt QueryStmt) Build(builder Writer) {
	if stmt.Body != nil {
		stmt.Body.Build(builder)
	}

	if stmt.OrderBy != "" {
		builder.WriteString(" ORDER BY ")
		builder.WriteString(stmt.OrderBy)
	}

	if stmt.Limit != nil {
		builder.WriteString(" LIMIT ")
		builder.WriteString(strconv.FormatInt(*stmt.Limit, 10))
	}
}

func (stmt QueryStmt) String() string {
	return Render(stmt)
}
