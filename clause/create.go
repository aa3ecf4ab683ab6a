package clause

// ColumnOption option rendered after a column's type
type ColumnOption interface {
	Expression
	columnOption()
}

// NullOption NULL
type NullOption struct{}

// NotNullOption NOT NULL
type NotNullOption struct{}

// DefaultOption DEFAULT <expr>
type DefaultOption struct {
	Expr Expr
}

// UniqueOption PRIMARY KEY or UNIQUE
type UniqueOption struct {
	IsPrimary bool
}

// ForeignKeyOption FOREIGN KEY REFERENCES <table> (<columns>)
type ForeignKeyOption struct {
	ForeignTable    ObjectName
	ReferredColumns []Ident
}

// CheckOption CHECK (<expr>)
type CheckOption struct {
	Expr Expr
}

func (NullOption) columnOption()       {}
func (NotNullOption) columnOption()    {}
func (DefaultOption) columnOption()    {}
func (UniqueOption) columnOption()     {}
func (ForeignKeyOption) columnOption() {}
func (CheckOption) columnOption()      {}

func (NullOption) Build(builder Writer) {
	builder.WriteString("NULL")
}

func (NotNullOption) Build(builder Writer) {
	builder.WriteString("NOT NULL")
}

func (opt DefaultOption) Build(builder Writer) {
	builder.WriteString("DEFAULT ")
	opt.Expr.Build(builder)
}

func (opt UniqueOption) Build(builder Writer) {
	if opt.IsPrimary {
		builder.WriteString("PRIMARY KEY")
	} else {
		builder.WriteString("UNIQUE")
	}
}

func (opt ForeignKeyOption) Build(builder Writer) {
	builder.WriteString("FOREIGN KEY REFERENCES ")
	opt.ForeignTable.Build(builder)
	builder.WriteString(" (")
	buildCommaSeparated(builder, opt.ReferredColumns)
	builder.WriteByte(')')
}

func (opt CheckOption) Build(builder Writer) {
	builder.WriteString("CHECK (")
	opt.Expr.Build(builder)
	builder.WriteByte(')')
}

// ColumnDef column definition of a CREATE TABLE statement
type ColumnDef struct {
	Name     Ident
	DataType DataType
	Options  []ColumnOption
}

// Build build `<name> <type> <options>`
func (column ColumnDef) Build(builder Writer) {
	column.Name.Build(builder)
	builder.WriteByte(' ')
	column.DataType.Build(builder)
	if len(column.Options) > 0 {
		builder.WriteByte(' ')
		buildCommaSeparated(builder, column.Options)
	}
}

// IsPrimary reports whether the column carries a PRIMARY KEY option
func (column ColumnDef) IsPrimary() bool {
	for _, opt := range column.Options {
		if unique, ok := opt.(UniqueOption); ok && unique.IsPrimary {
			return true
		}
	}
	return false
}

// TableConstraint constraint listed after the columns of a CREATE TABLE statement
type TableConstraint interface {
	Expression
	tableConstraint()
}

// ForeignKeyConstraint CONSTRAINT <name> FOREIGN KEY (<columns>) REFERENCES <table> (<columns>)
type ForeignKeyConstraint struct {
	Name            Ident
	Columns         []Ident
	ForeignTable    ObjectName
	ReferredColumns []Ident
}

func (ForeignKeyConstraint) tableConstraint() {}

// Build build foreign key constraint, an empty name omits the CONSTRAINT prefix
func (fk ForeignKeyConstraint) Build(builder Writer) {
	if fk.Name.Value != "" {
		builder.WriteString("CONSTRAINT ")
		fk.Name.Build(builder)
		builder.WriteByte(' ')
	}
	builder.WriteString("FOREIGN KEY (")
	buildCommaSeparated(builder, fk.Columns)
	builder.WriteString(") REFERENCES ")
	fk.ForeignTable.Build(builder)
	builder.WriteString(" (")
	buildCommaSeparated(builder, fk.ReferredColumns)
	builder.WriteByte(')')
}

// CreateStmt CREATE TABLE statement
type CreateStmt struct {
	Name        ObjectName
	Columns     []ColumnDef
	Constraints []TableConstraint
}

// Build build create table statement; each constraint brings its own leading separator
func (stmt CreateStmt) Build(builder Writer) {
	builder.WriteString("CREATE TABLE ")
	stmt.Name.Build(builder)
	builder.WriteString(" (")
	buildCommaSeparated(builder, stmt.Columns)
	for _, constraint := range stmt.Constraints {
		builder.WriteString(separator)
		constraint.Build(builder)
	}
	builder.WriteByte(')')
}

func (stmt CreateStmt) String() string {
	return Render(stmt)
}
