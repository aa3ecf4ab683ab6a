package builder

import "github.com/chela-orm/chela/clause"

// DataTypeBuilder picks one data type, the last call wins
type DataTypeBuilder struct {
	dataType clause.DataType
}

func NewDataTypeBuilder() DataTypeBuilder {
	return DataTypeBuilder{dataType: clause.Custom{}}
}

// Varchar VARCHAR(length), zero omits the length
func (b DataTypeBuilder) Varchar(length uint64) DataTypeBuilder {
	b.dataType = clause.Varchar{Length: length}
	return b
}

// Int INT(width), zero omits the width
func (b DataTypeBuilder) Int(width uint64) DataTypeBuilder {
	b.dataType = clause.Integer{Kind: clause.Int, Width: width}
	return b
}

// Serial SERIAL
func (b DataTypeBuilder) Serial() DataTypeBuilder {
	b.dataType = clause.Custom{Name: clause.Name("SERIAL")}
	return b
}

// Custom any opaque type name
func (b DataTypeBuilder) Custom(name string) DataTypeBuilder {
	b.dataType = clause.Custom{Name: clause.Name(name)}
	return b
}

func (b DataTypeBuilder) Build() clause.DataType {
	return b.dataType
}

func Varchar(length uint64) clause.DataType {
	return NewDataTypeBuilder().Varchar(length).Build()
}

func Int(width uint64) clause.DataType {
	return NewDataTypeBuilder().Int(width).Build()
}

func Serial() clause.DataType {
	return NewDataTypeBuilder().Serial().Build()
}
