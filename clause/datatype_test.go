package clause_test

import (
	"testing"

	"github.com/chela-orm/chela/clause"
)

func TestDataType(t *testing.T) {
	scale := uint64(2)
	zero := uint64(0)
	results := []struct {
		DataType clause.DataType
		Result   string
	}{
		{clause.Char{}, "CHAR"},
		{clause.Char{Length: 10}, "CHAR(10)"},
		{clause.Varchar{Length: 150}, "VARCHAR(150)"},
		{clause.Nvarchar{Length: 10}, "NVARCHAR(10)"},
		{clause.Integer{}, "INT"},
		{clause.Integer{Kind: clause.TinyInt, Width: 3, Unsigned: true}, "TINYINT(3) UNSIGNED"},
		{clause.Integer{Kind: clause.SmallInt}, "SMALLINT"},
		{clause.Integer{Kind: clause.Int, Width: 11}, "INT(11)"},
		{clause.Integer{Kind: clause.BigInt, Unsigned: true}, "BIGINT UNSIGNED"},
		{clause.Decimal{}, "NUMERIC"},
		{clause.Decimal{Precision: 10}, "NUMERIC(10)"},
		{clause.Decimal{Precision: 10, Scale: &scale}, "NUMERIC(10,2)"},
		{clause.Decimal{Precision: 10, Scale: &zero}, "NUMERIC(10,0)"},
		{clause.Float{Precision: 8}, "FLOAT(8)"},
		{clause.Clob(1000), "CLOB(1000)"},
		{clause.Binary(16), "BINARY(16)"},
		{clause.Varbinary(255), "VARBINARY(255)"},
		{clause.Blob(1000), "BLOB(1000)"},
		{clause.Uuid, "UUID"},
		{clause.Real, "REAL"},
		{clause.Double, "DOUBLE PRECISION"},
		{clause.Boolean, "BOOLEAN"},
		{clause.Date, "DATE"},
		{clause.Time, "TIME"},
		{clause.Timestamp, "TIMESTAMP"},
		{clause.Interval, "INTERVAL"},
		{clause.Regclass, "REGCLASS"},
		{clause.Text, "TEXT"},
		{clause.String, "STRING"},
		{clause.Bytea, "BYTEA"},
		{clause.Custom{Name: clause.Name("SERIAL")}, "SERIAL"},
		{clause.Custom{Name: clause.Name("public", "mood")}, "public.mood"},
		{clause.Array{Elem: clause.Integer{}}, "INT[]"},
		{clause.Array{Elem: clause.Array{Elem: clause.Text}}, "TEXT[][]"},
		{clause.Enum{Values: []string{"sad", "ok", "happy"}}, "ENUM('sad', 'ok', 'happy')"},
		{clause.Set{Values: []string{"a", "it's"}}, "SET('a', 'it''s')"},
	}

	for _, result := range results {
		if sql := clause.Render(result.DataType); sql != result.Result {
			t.Errorf("data type expects %v got %v", result.Result, sql)
		}
	}
}
