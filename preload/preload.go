package preload

import (
	"context"
	"fmt"
	"reflect"
	"strconv"

	"github.com/chela-orm/chela/builder"
	"github.com/chela-orm/chela/clause"
	"github.com/chela-orm/chela/dialect"
	"github.com/chela-orm/chela/schema"
)

// Key primary key and foreign key values a relation can be joined on, rendered by Literal
type Key interface {
	comparable
}

// Result one parent with its children attached
type Result[P, C any] struct {
	Parent   P
	Children []C
}

// HasMany loads the parents of ParentTable, then the children of Relation in a single
// batched query, and attaches every child to the parent whose key equals its foreign key
type HasMany[P, C any, K Key] struct {
	ParentTable string
	Relation    schema.HasMany

	ScanParent func(dialect.Row) (P, error)
	ScanChild  func(dialect.Row) (C, error)
	ParentKey  func(P) K
	ChildKey   func(C) K
}

// ParentQuery `SELECT * FROM <parent table>`
func (h HasMany[P, C, K]) ParentQuery() builder.QueryBuilder {
	return builder.SelectTable(h.ParentTable)
}

// Pending `SELECT * FROM <child table> WHERE <foreign key>`, waiting for its key list
func (h HasMany[P, C, K]) Pending() builder.QueryBuilder {
	return builder.SelectTable(h.Relation.RelatedTableName).Where(h.Relation.ForeignKey)
}

// ChildQuery `SELECT * FROM <child table> WHERE <foreign key> IN (<keys>)`
func (h HasMany[P, C, K]) ChildQuery(keys []K) clause.QueryStmt {
	values := make([]clause.Value, 0, len(keys))
	for _, key := range keys {
		values = append(values, Literal(key))
	}
	return h.Pending().InValues(values...).Build()
}

// Literal render a key: integers as numbers, strings and fmt.Stringer values (uuid.UUID) quoted
func Literal(key any) clause.Value {
	if value, ok := key.(clause.Value); ok {
		return value
	}

	reflectValue := reflect.ValueOf(key)
	switch reflectValue.Kind() {
	case reflect.Invalid:
		return clause.Null{}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return clause.IntValue(reflectValue.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return clause.Number{Value: strconv.FormatUint(reflectValue.Uint(), 10)}
	case reflect.String:
		return clause.SingleQuotedString(reflectValue.String())
	}

	if stringer, ok := key.(fmt.Stringer); ok {
		return clause.SingleQuotedString(stringer.String())
	}
	return clause.SingleQuotedString(fmt.Sprint(key))
}

// Load runs at most two round trips: the parents, then their children
func (h HasMany[P, C, K]) Load(ctx context.Context, exec dialect.Executor) ([]Result[P, C], error) {
	parents, err := h.Parents(ctx, exec)
	if err != nil {
		return nil, err
	}
	return h.Attach(ctx, exec, parents)
}

// Parents fetch and scan the parent rows
func (h HasMany[P, C, K]) Parents(ctx context.Context, exec dialect.Executor) ([]P, error) {
	rows, err := exec.Query(ctx, clause.SQL(h.ParentQuery().Build()))
	if err != nil {
		return nil, fmt.Errorf("preload %s: %w", h.ParentTable, err)
	}
	return scanAll(rows, h.ParentTable, h.ScanParent)
}

// Attach fetch the children of already loaded parents and associate them
func (h HasMany[P, C, K]) Attach(ctx context.Context, exec dialect.Executor, parents []P) ([]Result[P, C], error) {
	children, err := h.Children(ctx, exec, Keys(parents, h.ParentKey))
	if err != nil {
		return nil, err
	}
	return Associate(parents, Group(children, h.ChildKey), h.ParentKey), nil
}

// Children no query is issued without keys
func (h HasMany[P, C, K]) Children(ctx context.Context, exec dialect.Executor, keys []K) ([]C, error) {
	if len(keys) == 0 {
		return nil, nil
	}

	table := h.Relation.RelatedTableName
	rows, err := exec.Query(ctx, clause.SQL(h.ChildQuery(keys)))
	if err != nil {
		return nil, fmt.Errorf("preload %s: %w", table, err)
	}
	return scanAll(rows, table, h.ScanChild)
}

func scanAll[T any](rows []dialect.Row, table string, scan func(dialect.Row) (T, error)) ([]T, error) {
	values := make([]T, 0, len(rows))
	for idx, row := range rows {
		value, err := scan(row)
		if err != nil {
			return nil, fmt.Errorf("preload %s: row %d: %w", table, idx, err)
		}
		values = append(values, value)
	}
	return values, nil
}

// Keys parent keys in parent order, duplicates kept
func Keys[P any, K Key](parents []P, key func(P) K) []K {
	keys := make([]K, 0, len(parents))
	for _, parent := range parents {
		keys = append(keys, key(parent))
	}
	return keys
}

// Group children by key, query order is kept inside every group
func Group[C any, K comparable](children []C, key func(C) K) map[K][]C {
	groups := make(map[K][]C)
	for _, child := range children {
		k := key(child)
		groups[k] = append(groups[k], child)
	}
	return groups
}

// Associate pair every parent with a copy of its group; a parent without one gets an empty slice
func Associate[P, C any, K comparable](parents []P, groups map[K][]C, key func(P) K) []Result[P, C] {
	results := make([]Result[P, C], 0, len(parents))
	for _, parent := range parents {
		children := append([]C{}, groups[key(parent)]...)
		results = append(results, Result[P, C]{Parent: parent, Children: children})
	}
	return results
}
