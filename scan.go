package chela

import (
	"fmt"
	"reflect"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/chela-orm/chela/clause"
	"github.com/chela-orm/chela/dialect"
	"github.com/chela-orm/chela/schema"
)

const timeLayout = "2006-01-02 15:04:05.999999"

// scanIntoStruct assign the columns of row to the fields of a model value, NULL leaves the zero value
func scanIntoStruct(model *schema.Model, row dialect.Row, reflectValue reflect.Value) error {
	for _, field := range model.Fields {
		idx := row.Index(field.DBName)
		if idx < 0 || row.IsNull(idx) {
			continue
		}

		fieldValue := field.ReflectValueOf(reflectValue)
		if fieldValue.Kind() == reflect.Ptr {
			if fieldValue.IsNil() {
				fieldValue.Set(reflect.New(field.IndirectFieldType))
			}
			fieldValue = fieldValue.Elem()
		}

		if err := assign(row, idx, fieldValue); err != nil {
			return fmt.Errorf("scan %s.%s: %w", model.Name, field.Name, err)
		}
	}
	return nil
}

func assign(row dialect.Row, idx int, fieldValue reflect.Value) error {
	switch fieldValue.Type() {
	case schema.TimeReflectType:
		t, err := row.Time(idx)
		if err == nil {
			fieldValue.Set(reflect.ValueOf(t))
		}
		return err
	case schema.UUIDReflectType:
		u, err := row.UUID(idx)
		if err == nil {
			fieldValue.Set(reflect.ValueOf(u))
		}
		return err
	}

	switch fieldValue.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := row.Int64(idx)
		if err == nil {
			fieldValue.SetInt(n)
		}
		return err
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := row.Int64(idx)
		if err == nil {
			fieldValue.SetUint(uint64(n))
		}
		return err
	case reflect.Float32, reflect.Float64:
		f, err := row.Float64(idx)
		if err == nil {
			fieldValue.SetFloat(f)
		}
		return err
	case reflect.Bool:
		b, err := row.Bool(idx)
		if err == nil {
			fieldValue.SetBool(b)
		}
		return err
	case reflect.String:
		s, err := row.String(idx)
		if err == nil {
			fieldValue.SetString(s)
		}
		return err
	case reflect.Slice:
		if fieldValue.Type().Elem().Kind() == reflect.Uint8 {
			b, err := row.Bytes(idx)
			if err == nil {
				fieldValue.SetBytes(b)
			}
			return err
		}
	}
	return fmt.Errorf("%w: %s", schema.ErrUnsupportedType, fieldValue.Type())
}

// literalOf render a field value as an SQL literal. Times are written in UTC, the
// zone scanning assumes for values without an offset
func literalOf(fieldValue reflect.Value, bytesLiteral func([]byte) clause.Value) (clause.Value, error) {
	if fieldValue.Kind() == reflect.Ptr {
		if fieldValue.IsNil() {
			return clause.Null{}, nil
		}
		fieldValue = fieldValue.Elem()
	}

	switch v := fieldValue.Interface().(type) {
	case time.Time:
		return clause.SingleQuotedString(v.UTC().Format(timeLayout)), nil
	case uuid.UUID:
		return clause.SingleQuotedString(v.String()), nil
	}

	switch fieldValue.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return clause.IntValue(fieldValue.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return clause.Number{Value: strconv.FormatUint(fieldValue.Uint(), 10)}, nil
	case reflect.Float32, reflect.Float64:
		return clause.FloatValue(fieldValue.Float()), nil
	case reflect.Bool:
		return clause.Bool(fieldValue.Bool()), nil
	case reflect.String:
		return clause.SingleQuotedString(fieldValue.String()), nil
	case reflect.Slice:
		if fieldValue.Type().Elem().Kind() == reflect.Uint8 {
			if fieldValue.IsNil() {
				return clause.Null{}, nil
			}
			return bytesLiteral(fieldValue.Bytes()), nil
		}
	}
	return nil, fmt.Errorf("%w: %s", schema.ErrUnsupportedType, fieldValue.Type())
}

// keyOf comparable value of a primary or foreign key field: int64 for every integer kind,
// string for string kinds, uuid.UUID as is. Other types are not joinable
func keyOf(fieldValue reflect.Value) (interface{}, bool) {
	if fieldValue.Kind() == reflect.Ptr {
		if fieldValue.IsNil() {
			return nil, true
		}
		fieldValue = fieldValue.Elem()
	}

	if fieldValue.Type() == schema.UUIDReflectType {
		return fieldValue.Interface(), true
	}

	switch fieldValue.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return fieldValue.Int(), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int64(fieldValue.Uint()), true
	case reflect.String:
		return fieldValue.String(), true
	}
	return nil, false
}

// keyKind groups the field types keyOf maps onto the same key type
func keyKind(fieldType reflect.Type) (string, bool) {
	for fieldType.Kind() == reflect.Ptr {
		fieldType = fieldType.Elem()
	}
	if fieldType == schema.UUIDReflectType {
		return "uuid", true
	}

	switch fieldType.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "integer", true
	case reflect.String:
		return "string", true
	}
	return "", false
}
