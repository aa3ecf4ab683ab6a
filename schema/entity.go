package schema

import "github.com/chela-orm/chela/clause"

// Column a scalar column of an entity
type Column struct {
	Name          string
	DataType      clause.DataType
	PrimaryKey    bool
	AutoIncrement bool
}

// HasMany one-to-many relation from an entity to a child table
type HasMany struct {
	ForeignKey        string
	RelatedStructName string
	RelatedTableName  string
}

// BelongsTo the reverse single-parent relation, drives foreign key constraints
type BelongsTo struct {
	ConstraintName   string
	ColumnName       string
	ForeignTableName string
	ForeignKey       string
}

// Entity table mapping of one record type
type Entity struct {
	TableName  string
	StructName string
	Columns    []Column
	HasMany    []HasMany
	BelongsTo  []BelongsTo
}

// PrimaryKey returns the first primary key column
func (entity Entity) PrimaryKey() (Column, bool) {
	for _, column := range entity.Columns {
		if column.PrimaryKey {
			return column, true
		}
	}
	return Column{}, false
}

// Relation returns the has-many relation targeting table
func (entity Entity) Relation(table string) (HasMany, bool) {
	for _, rel := range entity.HasMany {
		if rel.RelatedTableName == table {
			return rel, true
		}
	}
	return HasMany{}, false
}

// Schema ordered set of entities of one application
type Schema struct {
	entities []Entity
}

// NewSchema keeps the declaration order of entities
func NewSchema(entities ...Entity) Schema {
	return Schema{entities: append([]Entity(nil), entities...)}
}

// Entities returns a copy of the entities in declaration order
func (s Schema) Entities() []Entity {
	return append([]Entity(nil), s.entities...)
}

func (s Schema) Len() int {
	return len(s.entities)
}

// Lookup find an entity by table name
func (s Schema) Lookup(table string) (Entity, bool) {
	for _, entity := range s.entities {
		if entity.TableName == table {
			return entity, true
		}
	}
	return Entity{}, false
}
