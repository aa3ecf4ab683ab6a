package schema

import (
	"fmt"
	"reflect"
	"time"

	"github.com/google/uuid"

	"github.com/chela-orm/chela/clause"
	"github.com/chela-orm/chela/utils"
)

var (
	TimeReflectType  = reflect.TypeOf(time.Time{})
	UUIDReflectType  = reflect.TypeOf(uuid.UUID{})
	BytesReflectType = reflect.TypeOf([]byte(nil))
)

// Field a struct field mapped to a column
type Field struct {
	Name              string
	DBName            string
	TypeName          string
	DataType          clause.DataType
	PrimaryKey        bool
	AutoIncrement     bool
	FieldType         reflect.Type
	IndirectFieldType reflect.Type
	StructField       reflect.StructField
	Index             []int
	Tag               reflect.StructTag
	TagSettings       map[string]string
	Model             *Model
}

// ReflectValueOf returns the field inside a struct value of the model type
func (field *Field) ReflectValueOf(value reflect.Value) reflect.Value {
	return reflect.Indirect(value).FieldByIndex(field.Index)
}

// Column entity column of the field
func (field *Field) Column() Column {
	return Column{
		Name:          field.DBName,
		DataType:      field.DataType,
		PrimaryKey:    field.PrimaryKey,
		AutoIncrement: field.AutoIncrement,
	}
}

func (model *Model) parseField(fieldStruct reflect.StructField, index []int) (*Field, error) {
	field := &Field{
		Name:              fieldStruct.Name,
		FieldType:         fieldStruct.Type,
		IndirectFieldType: indirectType(fieldStruct.Type),
		StructField:       fieldStruct,
		Index:             index,
		Tag:               fieldStruct.Tag,
		TagSettings:       ParseTagSetting(fieldStruct.Tag.Get("chela"), ";"),
		Model:             model,
	}

	if dbName, ok := field.TagSettings["COLUMN"]; ok {
		field.DBName = dbName
	} else {
		field.DBName = model.namer.ColumnName(model.Table, field.Name)
	}

	if val, ok := field.TagSettings["PRIMARYKEY"]; ok && utils.CheckTruth(val) {
		field.PrimaryKey = true
	} else if val, ok := field.TagSettings["PRIMARY_KEY"]; ok && utils.CheckTruth(val) {
		field.PrimaryKey = true
	}

	if val, ok := field.TagSettings["AUTOINCREMENT"]; ok && utils.CheckTruth(val) {
		field.AutoIncrement = true
	}

	field.TypeName = typeNameOf(field.IndirectFieldType)
	if name, ok := field.TagSettings["TYPE"]; ok {
		field.TypeName = name
	}

	dataType, err := LookupDataType(field.TypeName)
	if err != nil {
		return nil, fmt.Errorf("field %s.%s: %w", model.Name, field.Name, err)
	}
	field.DataType = dataType
	return field, nil
}

func typeNameOf(t reflect.Type) string {
	switch {
	case t == TimeReflectType:
		return "time.Time"
	case t == UUIDReflectType:
		return "uuid.UUID"
	case t.Kind() == reflect.Slice && t.Elem().Kind() == reflect.Uint8:
		return "[]uint8"
	case t.Kind() == reflect.Struct || t.Kind() == reflect.Slice || t.Kind() == reflect.Array || t.Kind() == reflect.Map:
		return t.String()
	}
	return t.Kind().String()
}

func isIntegerKind(kind reflect.Kind) bool {
	switch kind {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	}
	return false
}
