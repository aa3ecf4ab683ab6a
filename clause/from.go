package clause

// Table table reference of a FROM clause
type Table struct {
	Name ObjectName
}

// TableOf returns a reference to the named table
func TableOf(parts ...string) Table {
	return Table{Name: Name(parts...)}
}

// Build build table reference
func (table Table) Build(builder Writer) {
	table.Name.Build(builder)
}
