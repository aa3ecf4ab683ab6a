package clause

// SelectItem projection item
type SelectItem interface {
	Expression
	selectItem()
}

// Wildcard *
type Wildcard struct{}

func (Wildcard) selectItem() {}

// Build build wildcard
func (Wildcard) Build(builder Writer) {
	builder.WriteByte('*')
}

// Select restricted SELECT .. FROM .. WHERE .. GROUP BY .. HAVING body, SortBy is kept but never rendered
type Select struct {
	Projection []SelectItem
	From       []Table
	Selection  Expr
	GroupBy    string
	SortBy     []Expr
	Having     Expr
}

func (Select) setExpr() {}

// Build build select, optional parts are appended in a fixed order
func (s Select) Build(builder Writer) {
	builder.WriteString("SELECT ")
	buildCommaSeparated(builder, s.Projection)
	builder.WriteString(" FROM ")
	buildCommaSeparated(builder, s.From)

	if s.Selection != nil {
		builder.WriteString(" WHERE ")
		s.Selection.Build(builder)
	}

	if s.GroupBy != "" {
		builder.WriteString(" GROUP BY ")
		builder.WriteString(s.GroupBy)
	}

	if s.Having != nil {
		builder.WriteString(" HAVING ")
		s.Having.Build(builder)
	}
}
