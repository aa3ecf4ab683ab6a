package clause_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chela-orm/chela/clause"
)

func TestInsertStmt(t *testing.T) {
	insert := clause.InsertStmt{
		Table: clause.Name("test"),
		Source: clause.QueryStmt{
			Body: clause.Values{Rows: [][]clause.Expr{{clause.SingleQuotedString("test")}}},
		},
	}
	assert.Equal(t, "INSERT INTO test VALUES ('test');", insert.String())

	insert.Columns = clause.Idents("name", "age")
	insert.Source.Body = clause.Values{Rows: [][]clause.Expr{{clause.SingleQuotedString("jinzhu"), clause.IntValue(18)}}}
	assert.Equal(t, "INSERT INTO test (name, age) VALUES ('jinzhu', 18);", insert.String())
}

func TestSQL(t *testing.T) {
	create := articleStmt()
	assert.Equal(t, create.String()+";", clause.SQL(create))

	query := clause.QueryStmt{Body: clause.Select{
		Projection: []clause.SelectItem{clause.Wildcard{}},
		From:       []clause.Table{clause.TableOf("users")},
	}}
	assert.Equal(t, "SELECT * FROM users", clause.SQL(query))

	insert := clause.InsertStmt{
		Table:  clause.Name("users"),
		Source: clause.QueryStmt{Body: clause.Values{Rows: [][]clause.Expr{{clause.SingleQuotedString("John")}}}},
	}
	assert.Equal(t, "INSERT INTO users VALUES ('John');", clause.SQL(insert))
}
