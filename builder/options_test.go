package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chela-orm/chela/builder"
	"github.com/chela-orm/chela/clause"
)

func TestColumnOptionsBuilder(t *testing.T) {
	options := builder.NewColumnOptionsBuilder().
		NotNull().
		Unique().
		Default(clause.IntValue(1)).
		Check(clause.InList{Expr: clause.NewIdent("qty"), List: clause.ValueList(clause.IntValue(0)), Negated: true}).
		References("products", "id").
		Build()

	column := clause.ColumnDef{Name: clause.NewIdent("qty"), DataType: builder.Int(0), Options: options}
	assert.Equal(t, "qty INT NOT NULL, UNIQUE, DEFAULT 1, CHECK (qty NOT IN (0)), FOREIGN KEY REFERENCES products (id)", clause.Render(column))
}

func TestPrimaryKeyShorthands(t *testing.T) {
	primary := builder.PrimaryKeyUnique()
	notNull := builder.NotNull()

	assert.Len(t, primary, 1)
	assert.Equal(t, clause.UniqueOption{IsPrimary: true}, primary[0])
	assert.Equal(t, clause.NotNullOption{}, notNull[0])
	assert.Equal(t, []clause.ColumnOption{clause.NullOption{}}, builder.NewColumnOptionsBuilder().Null().Build())
}

func TestDataTypeBuilder(t *testing.T) {
	results := []struct {
		DataType clause.DataType
		Result   string
	}{
		{builder.Varchar(150), "VARCHAR(150)"},
		{builder.Varchar(0), "VARCHAR"},
		{builder.Int(0), "INT"},
		{builder.Int(11), "INT(11)"},
		{builder.Serial(), "SERIAL"},
		{builder.NewDataTypeBuilder().Serial().Custom("BIGSERIAL").Build(), "BIGSERIAL"},
	}

	for _, result := range results {
		assert.Equal(t, result.Result, clause.Render(result.DataType))
	}
}
