package clause

import "strings"

// Writer is the sink every node renders into, *strings.Builder satisfies it
type Writer interface {
	WriteByte(byte) error
	WriteString(string) (int, error)
}

// Expression is implemented by every node of the SQL intermediate representation
type Expression interface {
	Build(Writer)
}

// Render renders any node to its canonical SQL text
func Render(expr Expression) string {
	var sql strings.Builder
	expr.Build(&sql)
	return sql.String()
}

// separator shared by every comma separated list
const separator = ", "

func buildSeparated[T Expression](builder Writer, exprs []T, sep string) {
	for idx, expr := range exprs {
		if idx > 0 {
			builder.WriteString(sep)
		}
		expr.Build(builder)
	}
}

// buildCommaSeparated writes nothing for an empty list, callers own the surrounding punctuation
func buildCommaSeparated[T Expression](builder Writer, exprs []T) {
	buildSeparated(builder, exprs, separator)
}

// Ident identifier of a table, column or constraint, rendered verbatim
type Ident struct {
	Value string
}

// NewIdent returns an identifier for name
func NewIdent(name string) Ident {
	return Ident{Value: name}
}

// Idents wraps every name into an identifier
func Idents(names ...string) []Ident {
	idents := make([]Ident, 0, len(names))
	for _, name := range names {
		idents = append(idents, Ident{Value: name})
	}
	return idents
}

// Build build identifier
func (ident Ident) Build(builder Writer) {
	builder.WriteString(ident.Value)
}

func (ident Ident) String() string {
	return ident.Value
}

// ObjectName possibly qualified name, e.g. schema.table
type ObjectName []Ident

// Name builds an object name from its dotted parts
func Name(parts ...string) ObjectName {
	return ObjectName(Idents(parts...))
}

// Build build object name
func (name ObjectName) Build(builder Writer) {
	buildSeparated(builder, []Ident(name), ".")
}

func (name ObjectName) String() string {
	return Render(name)
}
