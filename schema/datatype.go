package schema

import (
	"fmt"
	"strings"

	"github.com/chela-orm/chela/clause"
)

var dataTypes = map[string]clause.DataType{
	"int8":      clause.Integer{Kind: clause.SmallInt},
	"uint8":     clause.Integer{Kind: clause.SmallInt},
	"int16":     clause.Integer{Kind: clause.SmallInt},
	"uint16":    clause.Integer{Kind: clause.Int},
	"int32":     clause.Integer{Kind: clause.Int},
	"uint32":    clause.Integer{Kind: clause.BigInt},
	"int":       clause.Integer{Kind: clause.BigInt},
	"int64":     clause.Integer{Kind: clause.BigInt},
	"uint":      clause.Integer{Kind: clause.BigInt},
	"uint64":    clause.Integer{Kind: clause.BigInt},
	"float32":   clause.Real,
	"float64":   clause.Double,
	"bool":      clause.Boolean,
	"string":    clause.Varchar{Length: 150},
	"text":      clause.Text,
	"[]uint8":   clause.Bytea,
	"[]byte":    clause.Bytea,
	"uuid.UUID": clause.Uuid,
	"uuid":      clause.Uuid,
	"time.Time": clause.Timestamp,
	"timestamp": clause.Timestamp,
	"date":      clause.Date,
	"time":      clause.Time,
}

// LookupDataType maps an application scalar type name such as int64, string,
// time.Time or uuid.UUID to its column type
func LookupDataType(name string) (clause.DataType, error) {
	if dataType, ok := dataTypes[strings.TrimSpace(name)]; ok {
		return dataType, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, name)
}

// DataTypeOf like LookupDataType but panics on an unknown name
func DataTypeOf(name string) clause.DataType {
	dataType, err := LookupDataType(name)
	if err != nil {
		panic("unsupported type: " + name)
	}
	return dataType
}
