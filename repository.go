package chela

import (
	"context"
	"fmt"
	"reflect"

	"github.com/chela-orm/chela/builder"
	"github.com/chela-orm/chela/clause"
	"github.com/chela-orm/chela/dialect"
	"github.com/chela-orm/chela/preload"
	"github.com/chela-orm/chela/schema"
)

// Repository statements of one registered model. The preload queries of every
// has-many relation are prepared when the repository is created
type Repository struct {
	db       *DB
	model    *schema.Model
	entity   schema.Entity
	preloads map[string]builder.QueryBuilder
}

func newRepository(db *DB, model *schema.Model) *Repository {
	repo := &Repository{
		db:       db,
		model:    model,
		entity:   model.Entity(),
		preloads: map[string]builder.QueryBuilder{},
	}
	for _, rel := range repo.entity.HasMany {
		repo.preloads[rel.RelatedTableName] = builder.SelectTable(rel.RelatedTableName).Where(rel.ForeignKey)
	}
	return repo
}

func (r *Repository) Entity() schema.Entity {
	return r.entity
}

// Select `SELECT * FROM <table>`
func (r *Repository) Select() builder.QueryBuilder {
	return builder.SelectTable(r.entity.TableName)
}

// Insert `INSERT INTO <table> (<non primary columns>)`, values still to be added
func (r *Repository) Insert() builder.InsertBuilder {
	insert := builder.InsertInto(r.entity.TableName)
	for _, column := range r.entity.Columns {
		if !column.PrimaryKey {
			insert = insert.Column(column.Name)
		}
	}
	return insert
}

// Preload pending child query of a has-many relation, complete it with InList
func (r *Repository) Preload(table string) (builder.QueryBuilder, bool) {
	query, ok := r.preloads[table]
	return query, ok
}

// Create insert one row per value, zero CreatedAt times are set with NowFunc
func (r *Repository) Create(ctx context.Context, values ...interface{}) (int64, error) {
	var rowsAffected int64
	for _, value := range values {
		reflectValue, err := r.modelValue(value)
		if err != nil {
			return rowsAffected, err
		}

		var (
			insert   = builder.InsertInto(r.entity.TableName)
			literals = make([]clause.Value, 0, len(r.model.Fields))
		)
		for _, field := range r.model.Fields {
			if field.PrimaryKey {
				continue
			}

			fieldValue := field.ReflectValueOf(reflectValue)
			if field.Name == "CreatedAt" && fieldValue.Type() == schema.TimeReflectType && fieldValue.IsZero() && fieldValue.CanSet() {
				fieldValue.Set(reflect.ValueOf(r.db.NowFunc()))
			}

			literal, err := literalOf(fieldValue, r.db.bytesLiteral)
			if err != nil {
				return rowsAffected, fmt.Errorf("create %s.%s: %w", r.model.Name, field.Name, err)
			}
			insert = insert.Column(field.DBName)
			literals = append(literals, literal)
		}

		n, err := r.db.conn.Exec(ctx, clause.SQL(insert.Literals(literals...).Build()))
		if err != nil {
			return rowsAffected, err
		}
		if n > 0 {
			rowsAffected += n
		}
	}
	return rowsAffected, nil
}

// First load the row with the lowest primary key into dest
func (r *Repository) First(ctx context.Context, dest interface{}) error {
	pk := r.model.PrimaryField
	if pk == nil {
		return fmt.Errorf("%w: %s", ErrPrimaryKeyRequired, r.model.Name)
	}

	reflectValue, err := r.modelValue(dest)
	if err != nil {
		return err
	}
	if !reflectValue.CanSet() {
		return fmt.Errorf("%w: %s requires a pointer", ErrModelValueRequired, r.model.Name)
	}

	rows, err := r.db.conn.Query(ctx, clause.SQL(r.Select().OrderBy(pk.DBName).Limit(1).Build()))
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return ErrRecordNotFound
	}
	return scanIntoStruct(r.model, rows[0], reflectValue)
}

// Find load every row selected by query into dest, a pointer to a slice of the model
func (r *Repository) Find(ctx context.Context, dest interface{}, query builder.QueryBuilder) error {
	slice, err := r.sliceValue(dest)
	if err != nil {
		return err
	}

	rows, err := r.db.conn.Query(ctx, clause.SQL(query.Build()))
	if err != nil {
		return err
	}

	elems := make([]reflect.Value, 0, len(rows))
	for _, row := range rows {
		elem, err := r.scan(r.model)(row)
		if err != nil {
			return err
		}
		elems = append(elems, elem)
	}
	setSlice(slice, elems)
	return nil
}

// Load the models into dest with their children of the has-many relation to table attached,
// in two round trips
func (r *Repository) Load(ctx context.Context, dest interface{}, table string) error {
	slice, err := r.sliceValue(dest)
	if err != nil {
		return err
	}

	rel := r.model.LookUpHasMany(table)
	if rel == nil {
		return fmt.Errorf("%w: %s has many %s", ErrUnsupportedRelation, r.model.Name, table)
	}
	if r.model.PrimaryField == nil {
		return fmt.Errorf("%w: %s", ErrPrimaryKeyRequired, r.model.Name)
	}

	child, err := schema.Parse(reflect.New(rel.FieldType).Interface(), r.db.cacheStore, r.db.NamingStrategy)
	if err != nil {
		return err
	}
	foreignKey := child.LookUpField(rel.HasMany.ForeignKey)
	if foreignKey == nil {
		return fmt.Errorf("%w: %s has no column %s", schema.ErrInvalidRelation, child.Name, rel.HasMany.ForeignKey)
	}
	parentKind, ok := keyKind(r.model.PrimaryField.FieldType)
	if !ok {
		return fmt.Errorf("%w: %s.%s of type %s is not a key", ErrUnsupportedRelation, r.model.Name, r.model.PrimaryField.Name, r.model.PrimaryField.FieldType)
	}
	if childKind, ok := keyKind(foreignKey.FieldType); !ok || childKind != parentKind {
		return fmt.Errorf("%w: %s.%s of type %s does not match %s.%s", ErrUnsupportedRelation,
			child.Name, foreignKey.Name, foreignKey.FieldType, r.model.Name, r.model.PrimaryField.Name)
	}

	loader := preload.HasMany[reflect.Value, reflect.Value, interface{}]{
		ParentTable: r.entity.TableName,
		Relation:    *rel.HasMany,
		ScanParent:  r.scan(r.model),
		ScanChild:   r.scan(child),
		ParentKey: func(parent reflect.Value) interface{} {
			key, _ := keyOf(r.model.PrimaryField.ReflectValueOf(parent))
			return key
		},
		ChildKey: func(c reflect.Value) interface{} {
			key, _ := keyOf(foreignKey.ReflectValueOf(c))
			return key
		},
	}

	results, err := loader.Load(ctx, r.db.conn)
	if err != nil {
		return err
	}

	elems := make([]reflect.Value, 0, len(results))
	for _, result := range results {
		setSlice(rel.Field.ReflectValueOf(result.Parent), result.Children)
		elems = append(elems, result.Parent)
	}
	setSlice(slice, elems)
	return nil
}

// scan returns a row scanner producing pointers to new values of model
func (r *Repository) scan(model *schema.Model) func(dialect.Row) (reflect.Value, error) {
	return func(row dialect.Row) (reflect.Value, error) {
		elem := reflect.New(model.ModelType)
		if err := scanIntoStruct(model, row, elem.Elem()); err != nil {
			return reflect.Value{}, err
		}
		return elem, nil
	}
}

func (r *Repository) modelValue(value interface{}) (reflect.Value, error) {
	reflectValue := reflect.Indirect(reflect.ValueOf(value))
	if !reflectValue.IsValid() || reflectValue.Type() != r.model.ModelType {
		return reflect.Value{}, fmt.Errorf("%w: %T is not %s", ErrModelValueRequired, value, r.model.Name)
	}
	return reflectValue, nil
}

func (r *Repository) sliceValue(dest interface{}) (reflect.Value, error) {
	reflectValue := reflect.ValueOf(dest)
	if reflectValue.Kind() != reflect.Ptr || reflectValue.IsNil() || reflectValue.Elem().Kind() != reflect.Slice {
		return reflect.Value{}, fmt.Errorf("%w: %T is not a pointer to a slice", ErrModelValueRequired, dest)
	}

	slice := reflectValue.Elem()
	elemType := slice.Type().Elem()
	if elemType.Kind() == reflect.Ptr {
		elemType = elemType.Elem()
	}
	if elemType != r.model.ModelType {
		return reflect.Value{}, fmt.Errorf("%w: %T is not a slice of %s", ErrModelValueRequired, dest, r.model.Name)
	}
	return slice, nil
}

// setSlice replace the content of slice with elems, pointers to values of its element type
func setSlice(slice reflect.Value, elems []reflect.Value) {
	result := reflect.MakeSlice(slice.Type(), 0, len(elems))
	isPtr := slice.Type().Elem().Kind() == reflect.Ptr
	for _, elem := range elems {
		if isPtr {
			result = reflect.Append(result, elem)
		} else {
			result = reflect.Append(result, elem.Elem())
		}
	}
	slice.Set(result)
}
