package schema

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"reflect"
	"sync"

	"github.com/chela-orm/chela/logger"
	"github.com/chela-orm/chela/utils"
)

var (
	// ErrUnsupportedType scalar type without a column type mapping
	ErrUnsupportedType = errors.New("unsupported type")
	// ErrUnsupportedData model is not a struct
	ErrUnsupportedData = errors.New("unsupported data")
	// ErrInvalidRelation has many or belongs to declaration is incomplete
	ErrInvalidRelation = errors.New("invalid relation")
)

// Tabler overrides the table name of a model
type Tabler interface {
	TableName() string
}

// Model parsed struct: its columns, relations and reflection data
type Model struct {
	Name           string
	Table          string
	ModelType      reflect.Type
	Fields         []*Field
	FieldsByName   map[string]*Field
	FieldsByDBName map[string]*Field
	PrimaryField   *Field
	Relationships  Relationships
	namer          Namer
}

func (model Model) String() string {
	return fmt.Sprintf("%v.%v", model.ModelType.PkgPath(), model.ModelType.Name())
}

// LookUpField find a field by column or struct field name
func (model Model) LookUpField(name string) *Field {
	if field, ok := model.FieldsByDBName[name]; ok {
		return field
	}
	if field, ok := model.FieldsByName[name]; ok {
		return field
	}
	return nil
}

// LookUpHasMany find a has-many relation by child table or field name
func (model Model) LookUpHasMany(name string) *Relationship {
	for _, rel := range model.Relationships.HasMany {
		if rel.HasMany.RelatedTableName == name || rel.Name == name {
			return rel
		}
	}
	return nil
}

// Entity metadata consumed by the DDL translator and the repository
func (model Model) Entity() Entity {
	entity := Entity{
		TableName:  model.Table,
		StructName: model.Name,
		Columns:    make([]Column, 0, len(model.Fields)),
	}
	for _, field := range model.Fields {
		entity.Columns = append(entity.Columns, field.Column())
	}
	for _, rel := range model.Relationships.HasMany {
		entity.HasMany = append(entity.HasMany, *rel.HasMany)
	}
	for _, rel := range model.Relationships.BelongsTo {
		entity.BelongsTo = append(entity.BelongsTo, *rel.BelongsTo)
	}
	return entity
}

// Parse parses a struct (or pointer / slice of it) into a Model, results are cached per type
func Parse(dest interface{}, cacheStore *sync.Map, namer Namer) (*Model, error) {
	if dest == nil {
		return nil, fmt.Errorf("%w: %+v when parsing model", ErrUnsupportedData, dest)
	}

	modelType := reflect.ValueOf(dest).Type()
	for modelType.Kind() == reflect.Slice || modelType.Kind() == reflect.Array || modelType.Kind() == reflect.Ptr {
		modelType = modelType.Elem()
	}

	if modelType.Kind() != reflect.Struct {
		if modelType.PkgPath() == "" {
			return nil, fmt.Errorf("%w: %+v when parsing model", ErrUnsupportedData, dest)
		}
		return nil, fmt.Errorf("%w: type %s.%s when parsing model", ErrUnsupportedData, modelType.PkgPath(), modelType.Name())
	}

	if v, ok := cacheStore.Load(modelType); ok {
		return v.(*Model), nil
	}

	model := &Model{
		Name:           modelType.Name(),
		ModelType:      modelType,
		Table:          namer.TableName(modelType.Name()),
		FieldsByName:   map[string]*Field{},
		FieldsByDBName: map[string]*Field{},
		namer:          namer,
	}
	if tabler, ok := reflect.New(modelType).Interface().(Tabler); ok {
		model.Table = tabler.TableName()
	}

	if err := model.parseFields(modelType, nil); err != nil {
		logger.Default.Error(context.Background(), "failed to parse model %s: %v", model.Name, err)
		return nil, err
	}

	if model.PrimaryField == nil {
		if field := model.LookUpField("id"); field != nil {
			field.PrimaryKey = true
			model.PrimaryField = field
		}
	}

	if field := model.PrimaryField; field != nil && !field.AutoIncrement && isIntegerKind(field.IndirectFieldType.Kind()) {
		if val, ok := field.TagSettings["AUTOINCREMENT"]; !ok || utils.CheckTruth(val) {
			field.AutoIncrement = true
		}
	}

	v, _ := cacheStore.LoadOrStore(modelType, model)
	return v.(*Model), nil
}

func (model *Model) parseFields(modelType reflect.Type, parent []int) error {
	for i := 0; i < modelType.NumField(); i++ {
		fieldStruct := modelType.Field(i)
		if !ast.IsExported(fieldStruct.Name) || fieldStruct.Tag.Get("chela") == "-" {
			continue
		}

		index := append(append([]int(nil), parent...), i)
		if fieldStruct.Anonymous && indirectType(fieldStruct.Type).Kind() == reflect.Struct && fieldStruct.Type.Kind() != reflect.Ptr {
			if err := model.parseFields(fieldStruct.Type, index); err != nil {
				return err
			}
			continue
		}

		if isHasManyField(fieldStruct) {
			rel, err := model.parseHasMany(fieldStruct, index)
			if err != nil {
				return err
			}
			model.Relationships.HasMany = append(model.Relationships.HasMany, rel)
			continue
		}

		field, err := model.parseField(fieldStruct, index)
		if err != nil {
			return err
		}

		if _, ok := model.FieldsByDBName[field.DBName]; ok {
			return fmt.Errorf("%w: duplicated column %s in %s", ErrUnsupportedData, field.DBName, model.Name)
		}
		model.Fields = append(model.Fields, field)
		model.FieldsByName[field.Name] = field
		model.FieldsByDBName[field.DBName] = field

		if field.PrimaryKey && model.PrimaryField == nil {
			model.PrimaryField = field
		}

		if _, ok := field.TagSettings["BELONGSTO"]; ok {
			rel, err := model.parseBelongsTo(field)
			if err != nil {
				return err
			}
			model.Relationships.BelongsTo = append(model.Relationships.BelongsTo, rel)
		}
	}
	return nil
}
