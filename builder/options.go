package builder

import "github.com/chela-orm/chela/clause"

// ColumnOptionsBuilder collects column options in call order
type ColumnOptionsBuilder struct {
	options []clause.ColumnOption
}

func NewColumnOptionsBuilder() ColumnOptionsBuilder {
	return ColumnOptionsBuilder{}
}

func (b ColumnOptionsBuilder) add(opt clause.ColumnOption) ColumnOptionsBuilder {
	b.options = appendCopy(b.options, opt)
	return b
}

func (b ColumnOptionsBuilder) Null() ColumnOptionsBuilder {
	return b.add(clause.NullOption{})
}

func (b ColumnOptionsBuilder) NotNull() ColumnOptionsBuilder {
	return b.add(clause.NotNullOption{})
}

// PrimaryKeyUnique PRIMARY KEY
func (b ColumnOptionsBuilder) PrimaryKeyUnique() ColumnOptionsBuilder {
	return b.add(clause.UniqueOption{IsPrimary: true})
}

func (b ColumnOptionsBuilder) Unique() ColumnOptionsBuilder {
	return b.add(clause.UniqueOption{})
}

func (b ColumnOptionsBuilder) Default(expr clause.Expr) ColumnOptionsBuilder {
	return b.add(clause.DefaultOption{Expr: expr})
}

func (b ColumnOptionsBuilder) Check(expr clause.Expr) ColumnOptionsBuilder {
	return b.add(clause.CheckOption{Expr: expr})
}

// References FOREIGN KEY REFERENCES <table> (<columns>)
func (b ColumnOptionsBuilder) References(table string, columns ...string) ColumnOptionsBuilder {
	return b.add(clause.ForeignKeyOption{
		ForeignTable:    clause.Name(table),
		ReferredColumns: clause.Idents(columns...),
	})
}

func (b ColumnOptionsBuilder) Build() []clause.ColumnOption {
	return clone(b.options)
}

// NotNull shorthand for a single NOT NULL option
func NotNull() []clause.ColumnOption {
	return NewColumnOptionsBuilder().NotNull().Build()
}

// PrimaryKeyUnique shorthand for a single PRIMARY KEY option
func PrimaryKeyUnique() []clause.ColumnOption {
	return NewColumnOptionsBuilder().PrimaryKeyUnique().Build()
}
