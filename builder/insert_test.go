package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chela-orm/chela/builder"
	"github.com/chela-orm/chela/clause"
)

func TestInsertBuilder(t *testing.T) {
	assert.Equal(t, "INSERT INTO test VALUES ('test');", builder.NewInsertBuilder().Into("test").Values("test").Build().String())

	insert := builder.InsertInto("users").Columns("name", "email").Values("John", "john@example.com")
	assert.Equal(t, "INSERT INTO users (name, email) VALUES ('John', 'john@example.com');", insert.Build().String())
	assert.Equal(t, insert.Build().String(), clause.SQL(insert.Build()))

	literals := builder.InsertInto("orders").Column("user_id").Column("paid").Column("note").
		Literals(clause.IntValue(1), clause.Bool(true), clause.Null{})
	assert.Equal(t, "INSERT INTO orders (user_id, paid, note) VALUES (1, TRUE, NULL);", literals.Build().String())
}

func TestInsertBuilderDefaults(t *testing.T) {
	stmt := builder.InsertInto("empty").Build()
	assert.Equal(t, "INSERT INTO empty VALUES ();", stmt.String())

	values, ok := stmt.Source.Body.(clause.Values)
	assert.True(t, ok)
	assert.Len(t, values.Rows, 1)
}

func TestInsertBuilderValuesReplaceRow(t *testing.T) {
	base := builder.InsertInto("tags").Column("name")
	first := base.Values("go")
	second := first.Values("sql")

	assert.Equal(t, "INSERT INTO tags (name) VALUES ('go');", first.Build().String())
	assert.Equal(t, "INSERT INTO tags (name) VALUES ('sql');", second.Build().String())
}
