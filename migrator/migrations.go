package migrator

import (
	"strings"

	"github.com/chela-orm/chela/clause"
	"github.com/chela-orm/chela/schema"
)

// Migrations one statement per entity, in declaration order
type Migrations []clause.Statement

// Migrations translates every entity of s
func (m Migrator) Migrations(s schema.Schema) Migrations {
	entities := s.Entities()
	migrations := make(Migrations, 0, len(entities))
	for _, entity := range entities {
		migrations = append(migrations, m.CreateTable(entity))
	}
	return migrations
}

// SQL renders every statement with its terminator
func (migrations Migrations) SQL() []string {
	sqls := make([]string, 0, len(migrations))
	for _, stmt := range migrations {
		sqls = append(sqls, clause.SQL(stmt))
	}
	return sqls
}

// String one statement per line
func (migrations Migrations) String() string {
	return strings.Join(migrations.SQL(), "\n")
}
