package clause

// Expr expression usable in a predicate or a VALUES row: a Value, an Ident or an InList
type Expr interface {
	Expression
	expr()
}

func (Ident) expr() {}

// InList `<expr> [NOT] IN (<list>)`
type InList struct {
	Expr    Expr
	List    []Expr
	Negated bool
}

func (InList) expr() {}

// Build build in list
func (in InList) Build(builder Writer) {
	if in.Expr != nil {
		in.Expr.Build(builder)
	}
	if in.Negated {
		builder.WriteString(" NOT")
	}
	builder.WriteString(" IN (")
	buildCommaSeparated(builder, in.List)
	builder.WriteByte(')')
}

// ValueList converts literals into a list of expressions
func ValueList[T Value](values ...T) []Expr {
	exprs := make([]Expr, 0, len(values))
	for _, value := range values {
		exprs = append(exprs, value)
	}
	return exprs
}
