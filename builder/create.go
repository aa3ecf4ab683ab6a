package builder

import "github.com/chela-orm/chela/clause"

// CreateBuilder assembles a CREATE TABLE statement, every method returns a new builder
type CreateBuilder struct {
	name        clause.ObjectName
	columns     []clause.ColumnDef
	constraints []clause.TableConstraint
}

// ColumnSpec name, type and options of one column
type ColumnSpec struct {
	Name     string
	DataType clause.DataType
	Options  []clause.ColumnOption
}

// NewCreateBuilder returns a builder without a name, seeded with columns
func NewCreateBuilder(columns ...clause.ColumnDef) CreateBuilder {
	return CreateBuilder{columns: clone(columns)}
}

// CreateTable shorthand for NewCreateBuilder(columns...).Name(name)
func CreateTable(name string, columns ...clause.ColumnDef) CreateBuilder {
	return NewCreateBuilder(columns...).Name(name)
}

// Name set the table name, several parts make a qualified name
func (b CreateBuilder) Name(parts ...string) CreateBuilder {
	b.name = clause.Name(parts...)
	return b
}

// Column append a column
func (b CreateBuilder) Column(name string, dataType clause.DataType, options []clause.ColumnOption) CreateBuilder {
	b.columns = appendCopy(b.columns, clause.ColumnDef{
		Name:     clause.NewIdent(name),
		DataType: dataType,
		Options:  clone(options),
	})
	return b
}

// Columns append a batch of columns in order
func (b CreateBuilder) Columns(specs ...ColumnSpec) CreateBuilder {
	for _, spec := range specs {
		b = b.Column(spec.Name, spec.DataType, spec.Options)
	}
	return b
}

// ForeignKeyConstraint append `CONSTRAINT <constraintName> FOREIGN KEY (<columnName>) REFERENCES <foreignTable> (<referredColumn>)`
func (b CreateBuilder) ForeignKeyConstraint(constraintName, columnName, foreignTable, referredColumn string) CreateBuilder {
	b.constraints = appendCopy[clause.TableConstraint](b.constraints, clause.ForeignKeyConstraint{
		Name:            clause.NewIdent(constraintName),
		Columns:         clause.Idents(columnName),
		ForeignTable:    clause.Name(foreignTable),
		ReferredColumns: clause.Idents(referredColumn),
	})
	return b
}

// Build freeze into a CreateStmt
func (b CreateBuilder) Build() clause.CreateStmt {
	return clause.CreateStmt{
		Name:        clone(b.name),
		Columns:     clone(b.columns),
		Constraints: clone(b.constraints),
	}
}
