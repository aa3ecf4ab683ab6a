package migrator

import (
	"github.com/chela-orm/chela/builder"
	"github.com/chela-orm/chela/clause"
	"github.com/chela-orm/chela/dialect"
	"github.com/chela-orm/chela/logger"
	"github.com/chela-orm/chela/schema"
)

// Migrator translates entities into CREATE TABLE statements and runs them
type Migrator struct {
	Config
}

// Config migrator config
type Config struct {
	// AutoIncrement column type of auto-incrementing primary keys, SERIAL when nil
	AutoIncrement clause.DataType
	// Concurrency bounds the statements in flight, 0 is unbounded and 1 runs in declaration order
	Concurrency int
	Logger      logger.Interface
}

func New(config Config) Migrator {
	if config.AutoIncrement == nil {
		config.AutoIncrement = dialect.DefaultAutoIncrement()
	}
	if config.Logger == nil {
		config.Logger = logger.Default
	}
	return Migrator{Config: config}
}

// CreateTable translates one entity. Columns keep their declaration order and
// every belongs-to relation becomes a foreign key constraint after them
func (m Migrator) CreateTable(entity schema.Entity) clause.CreateStmt {
	autoIncrement := m.AutoIncrement
	if autoIncrement == nil {
		autoIncrement = dialect.DefaultAutoIncrement()
	}

	create := builder.CreateTable(entity.TableName)
	for _, column := range entity.Columns {
		switch {
		case column.PrimaryKey && column.AutoIncrement:
			create = create.Column(column.Name, autoIncrement, builder.PrimaryKeyUnique())
		case column.PrimaryKey:
			create = create.Column(column.Name, column.DataType, builder.PrimaryKeyUnique())
		default:
			create = create.Column(column.Name, column.DataType, builder.NotNull())
		}
	}

	for _, rel := range entity.BelongsTo {
		create = create.ForeignKeyConstraint(rel.ConstraintName, rel.ColumnName, rel.ForeignTableName, rel.ForeignKey)
	}
	return create.Build()
}
