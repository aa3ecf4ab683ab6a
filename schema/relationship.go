package schema

import (
	"fmt"
	"reflect"
)

// Relationship a has-many slice field or a belongs-to column of a model
type Relationship struct {
	Name      string
	Field     *Field
	FieldType reflect.Type
	HasMany   *HasMany
	BelongsTo *BelongsTo
}

type Relationships struct {
	HasMany   []*Relationship
	BelongsTo []*Relationship
}

// isHasManyField slices of structs never become columns
func isHasManyField(fieldStruct reflect.StructField) bool {
	fieldType := indirectType(fieldStruct.Type)
	if fieldType.Kind() != reflect.Slice && fieldType.Kind() != reflect.Array {
		return false
	}
	elem := indirectType(fieldType.Elem())
	return elem.Kind() == reflect.Struct && elem != TimeReflectType && elem != UUIDReflectType
}

func (model *Model) parseHasMany(fieldStruct reflect.StructField, index []int) (*Relationship, error) {
	var (
		settings = ParseTagSetting(fieldStruct.Tag.Get("chela"), ";")
		elemType = indirectType(indirectType(fieldStruct.Type).Elem())
		relation = &Relationship{
			Name:      fieldStruct.Name,
			FieldType: elemType,
			Field: &Field{
				Name:              fieldStruct.Name,
				FieldType:         fieldStruct.Type,
				IndirectFieldType: indirectType(fieldStruct.Type),
				StructField:       fieldStruct,
				Index:             index,
				Tag:               fieldStruct.Tag,
				TagSettings:       settings,
				Model:             model,
			},
		}
		hasMany = HasMany{RelatedStructName: elemType.Name()}
	)

	if table, ok := settings["TABLE"]; ok {
		hasMany.RelatedTableName = table
	} else if tabler, ok := reflect.New(elemType).Interface().(Tabler); ok {
		hasMany.RelatedTableName = tabler.TableName()
	} else {
		hasMany.RelatedTableName = model.namer.TableName(elemType.Name())
	}

	if fk, ok := settings["FOREIGNKEY"]; ok {
		hasMany.ForeignKey = fk
	} else {
		hasMany.ForeignKey = model.namer.ColumnName(hasMany.RelatedTableName, model.Name) + "_id"
	}

	if hasMany.RelatedTableName == "" || hasMany.ForeignKey == "" {
		return nil, fmt.Errorf("%w: has many %s.%s", ErrInvalidRelation, model.Name, fieldStruct.Name)
	}

	relation.HasMany = &hasMany
	return relation, nil
}

func (model *Model) parseBelongsTo(field *Field) (*Relationship, error) {
	table, ok := field.TagSettings["TABLE"]
	if !ok || table == "" {
		return nil, fmt.Errorf("%w: belongs to %s.%s requires a table", ErrInvalidRelation, model.Name, field.Name)
	}

	belongsTo := BelongsTo{
		ConstraintName:   field.TagSettings["CONSTRAINT"],
		ColumnName:       field.DBName,
		ForeignTableName: table,
		ForeignKey:       field.TagSettings["FOREIGNKEY"],
	}
	if belongsTo.ConstraintName == "" {
		belongsTo.ConstraintName = model.namer.ForeignKeyName(model.Table, field.DBName)
	}
	if belongsTo.ForeignKey == "" {
		belongsTo.ForeignKey = "id"
	}

	return &Relationship{Name: field.Name, Field: field, FieldType: field.IndirectFieldType, BelongsTo: &belongsTo}, nil
}
