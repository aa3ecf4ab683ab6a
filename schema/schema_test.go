package schema_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chela-orm/chela/clause"
	"github.com/chela-orm/chela/internal/models"
	"github.com/chela-orm/chela/schema"
)

func parse(t *testing.T, dest interface{}) *schema.Model {
	t.Helper()
	model, err := schema.Parse(dest, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)
	return model
}

func TestParseUser(t *testing.T) {
	user := parse(t, &models.User{})

	assert.Equal(t, "User", user.Name)
	assert.Equal(t, "users", user.Table)
	require.NotNil(t, user.PrimaryField)
	assert.Equal(t, "id", user.PrimaryField.DBName)

	entity := user.Entity()
	assert.Equal(t, schema.Entity{
		TableName:  "users",
		StructName: "User",
		Columns: []schema.Column{
			{Name: "id", DataType: clause.Integer{Kind: clause.BigInt}, PrimaryKey: true, AutoIncrement: true},
			{Name: "name", DataType: clause.Varchar{Length: 150}},
			{Name: "email", DataType: clause.Varchar{Length: 150}},
			{Name: "active", DataType: clause.Boolean},
			{Name: "created_at", DataType: clause.Timestamp},
		},
		HasMany: []schema.HasMany{
			{ForeignKey: "user_id", RelatedStructName: "Order", RelatedTableName: "orders"},
		},
	}, entity)

	rel := user.LookUpHasMany("orders")
	require.NotNil(t, rel)
	assert.Equal(t, "Orders", rel.Name)
	assert.Same(t, rel, user.LookUpHasMany("Orders"))
}

func TestParseOrder(t *testing.T) {
	order := parse(t, []models.Order{})

	entity := order.Entity()
	assert.Equal(t, "orders", entity.TableName)
	assert.Empty(t, entity.HasMany)
	assert.Equal(t, []schema.BelongsTo{
		{ConstraintName: "fk_orders_user_id", ColumnName: "user_id", ForeignTableName: "users", ForeignKey: "id"},
	}, entity.BelongsTo)

	names := make([]string, 0, len(entity.Columns))
	for _, column := range entity.Columns {
		names = append(names, column.Name)
	}
	assert.Equal(t, []string{"id", "user_id", "reference", "amount", "note"}, names)
	assert.Equal(t, clause.Uuid, entity.Columns[2].DataType)
	assert.Equal(t, clause.Double, entity.Columns[3].DataType)
	assert.Equal(t, clause.Text, entity.Columns[4].DataType)
}

type Base struct {
	ID        uint
	CreatedAt time.Time
}

type Article struct {
	Base
	Title    string
	AuthorID int32 `chela:"belongsTo;table:author;constraint:fk_author"`
	Secret   string `chela:"-"`
	internal string
	Rank     *int16
	Blob     []byte
}

func (Article) TableName() string {
	return "article"
}

func TestParseEmbeddedAndOverrides(t *testing.T) {
	article := parse(t, &Article{})

	assert.Equal(t, "article", article.Table)
	assert.Nil(t, article.LookUpField("secret"))
	assert.Nil(t, article.LookUpField("internal"))

	id := article.LookUpField("id")
	require.NotNil(t, id)
	assert.True(t, id.PrimaryKey)
	assert.True(t, id.AutoIncrement)
	assert.Equal(t, []int{0, 0}, id.Index)

	assert.Equal(t, clause.Integer{Kind: clause.SmallInt}, article.LookUpField("rank").DataType)
	assert.Equal(t, clause.Bytea, article.LookUpField("Blob").DataType)

	entity := article.Entity()
	assert.Equal(t, []schema.BelongsTo{
		{ConstraintName: "fk_author", ColumnName: "author_id", ForeignTableName: "author", ForeignKey: "id"},
	}, entity.BelongsTo)
}

type Tag struct {
	Code string `chela:"primaryKey"`
	Name string
}

type Counter struct {
	Key   int64 `chela:"primaryKey;autoIncrement:false"`
	Value int64
}

func TestParsePrimaryKeys(t *testing.T) {
	tag := parse(t, &Tag{})
	pk, ok := tag.Entity().PrimaryKey()
	require.True(t, ok)
	assert.Equal(t, schema.Column{Name: "code", DataType: clause.Varchar{Length: 150}, PrimaryKey: true}, pk)

	counter := parse(t, &Counter{})
	pk, ok = counter.Entity().PrimaryKey()
	require.True(t, ok)
	assert.Equal(t, "key", pk.Name)
	assert.False(t, pk.AutoIncrement)
}

type Unsupported struct {
	ID     int64
	Amount complex128
}

type BrokenRelation struct {
	ID     int64
	UserID int64 `chela:"belongsTo"`
}

type Duplicated struct {
	ID    int64
	Name  string
	Other string `chela:"column:name"`
}

func TestParseErrors(t *testing.T) {
	_, err := schema.Parse(&Unsupported{}, &sync.Map{}, schema.NamingStrategy{})
	assert.ErrorIs(t, err, schema.ErrUnsupportedType)

	_, err = schema.Parse(&BrokenRelation{}, &sync.Map{}, schema.NamingStrategy{})
	assert.ErrorIs(t, err, schema.ErrInvalidRelation)

	_, err = schema.Parse(&Duplicated{}, &sync.Map{}, schema.NamingStrategy{})
	assert.ErrorIs(t, err, schema.ErrUnsupportedData)

	_, err = schema.Parse(42, &sync.Map{}, schema.NamingStrategy{})
	assert.ErrorIs(t, err, schema.ErrUnsupportedData)

	_, err = schema.Parse(nil, &sync.Map{}, schema.NamingStrategy{})
	assert.ErrorIs(t, err, schema.ErrUnsupportedData)
}

func TestParseCache(t *testing.T) {
	cacheStore := &sync.Map{}
	first, err := schema.Parse(&models.User{}, cacheStore, schema.NamingStrategy{})
	require.NoError(t, err)
	second, err := schema.Parse([]*models.User{}, cacheStore, schema.NamingStrategy{})
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestSchemaLookup(t *testing.T) {
	users := parse(t, &models.User{}).Entity()
	orders := parse(t, &models.Order{}).Entity()
	s := schema.NewSchema(users, orders)

	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []string{"users", "orders"}, []string{s.Entities()[0].TableName, s.Entities()[1].TableName})

	entity, ok := s.Lookup("orders")
	require.True(t, ok)
	assert.Equal(t, orders, entity)

	_, ok = s.Lookup("missing")
	assert.False(t, ok)

	rel, ok := users.Relation("orders")
	require.True(t, ok)
	assert.Equal(t, "user_id", rel.ForeignKey)
}
