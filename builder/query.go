package builder

import "github.com/chela-orm/chela/clause"

// QueryBuilder assembles a SELECT query. Where only records the predicate
// subject; InList / NotInList / InValues turn it into the selection
type QueryBuilder struct {
	projection []clause.SelectItem
	from       []clause.Table
	subject    clause.Expr
	selection  clause.Expr
	groupBy    string
	sortBy     []clause.Expr
	having     clause.Expr
	orderBy    string
	limit      *int64
}

func NewQueryBuilder() QueryBuilder {
	return QueryBuilder{subject: clause.NewIdent("")}
}

// SelectTable shorthand for NewQueryBuilder().Select().From(name)
func SelectTable(name string) QueryBuilder {
	return NewQueryBuilder().Select().From(name)
}

// Select project every column
func (b QueryBuilder) Select() QueryBuilder {
	b.projection = []clause.SelectItem{clause.Wildcard{}}
	return b
}

// From replace the table list with a single table
func (b QueryBuilder) From(table string) QueryBuilder {
	b.from = []clause.Table{clause.TableOf(table)}
	return b
}

// Where set the subject of the next list predicate
func (b QueryBuilder) Where(column string) QueryBuilder {
	b.subject = clause.NewIdent(column)
	return b
}

// InList `<subject> IN (<ids>)`
func (b QueryBuilder) InList(ids ...int64) QueryBuilder {
	return b.inList(numbers(ids), false)
}

// NotInList `<subject> NOT IN (<ids>)`
func (b QueryBuilder) NotInList(ids ...int64) QueryBuilder {
	return b.inList(numbers(ids), true)
}

// InValues `<subject> IN (<values>)` for any literal kind
func (b QueryBuilder) InValues(values ...clause.Value) QueryBuilder {
	return b.inList(clause.ValueList(values...), false)
}

func (b QueryBuilder) inList(list []clause.Expr, negated bool) QueryBuilder {
	subject := b.subject
	if subject == nil {
		subject = clause.NewIdent("")
	}
	b.selection = clause.InList{Expr: subject, List: list, Negated: negated}
	return b
}

// GroupBy an empty column clears the grouping
func (b QueryBuilder) GroupBy(column string) QueryBuilder {
	b.groupBy = column
	return b
}

// Having requires GroupBy to be meaningful, which is not checked
func (b QueryBuilder) Having(expr clause.Expr) QueryBuilder {
	b.having = expr
	return b
}

func (b QueryBuilder) SortBy(exprs ...clause.Expr) QueryBuilder {
	b.sortBy = appendCopy(b.sortBy, exprs...)
	return b
}

// OrderBy an empty column clears the ordering
func (b QueryBuilder) OrderBy(column string) QueryBuilder {
	b.orderBy = column
	return b
}

func (b QueryBuilder) Limit(limit int64) QueryBuilder {
	b.limit = &limit
	return b
}

// NoLimit drop a previously set limit
func (b QueryBuilder) NoLimit() QueryBuilder {
	b.limit = nil
	return b
}

// Build freeze into a QueryStmt
func (b QueryBuilder) Build() clause.QueryStmt {
	stmt := clause.QueryStmt{
		Body: clause.Select{
			Projection: clone(b.projection),
			From:       clone(b.from),
			Selection:  b.selection,
			GroupBy:    b.groupBy,
			SortBy:     clone(b.sortBy),
			Having:     b.having,
		},
		OrderBy: b.orderBy,
	}
	if b.limit != nil {
		limit := *b.limit
		stmt.Limit = &limit
	}
	return stmt
}

func numbers(ids []int64) []clause.Expr {
	list := make([]clause.Expr, 0, len(ids))
	for _, id := range ids {
		list = append(list, clause.IntValue(id))
	}
	return list
}
