package clause

import "strconv"

// DataType SQL column type, every variant has exactly one spelling
type DataType interface {
	Expression
	dataType()
}

// Char fixed-length character type e.g. CHAR(10), zero length renders CHAR
type Char struct{ Length uint64 }

// Varchar variable-length character type e.g. VARCHAR(150)
type Varchar struct{ Length uint64 }

// Nvarchar variable-length national character type e.g. NVARCHAR(10)
type Nvarchar struct{ Length uint64 }

// IntegerKind integer family member
type IntegerKind string

const (
	TinyInt  IntegerKind = "TINYINT"
	SmallInt IntegerKind = "SMALLINT"
	Int      IntegerKind = "INT"
	BigInt   IntegerKind = "BIGINT"
)

// Integer integer with optional display width and unsigned flag, e.g. INT(11) UNSIGNED
type Integer struct {
	Kind     IntegerKind
	Width    uint64
	Unsigned bool
}

// Decimal NUMERIC with optional precision and scale
type Decimal struct {
	Precision uint64
	Scale     *uint64
}

// Float FLOAT with optional precision
type Float struct{ Precision uint64 }

// Sized types whose size is mandatory, e.g. BLOB(1000)
type Sized struct {
	Name string
	Size uint64
}

// Keyword types without parameters
type Keyword string

const (
	Uuid      Keyword = "UUID"
	Real      Keyword = "REAL"
	Double    Keyword = "DOUBLE PRECISION"
	Boolean   Keyword = "BOOLEAN"
	Date      Keyword = "DATE"
	Time      Keyword = "TIME"
	Timestamp Keyword = "TIMESTAMP"
	Interval  Keyword = "INTERVAL"
	Regclass  Keyword = "REGCLASS"
	Text      Keyword = "TEXT"
	String    Keyword = "STRING"
	Bytea     Keyword = "BYTEA"
)

// Custom opaque type name such as SERIAL or a user defined enum
type Custom struct{ Name ObjectName }

// Array element type followed by []
type Array struct{ Elem DataType }

// Enum ENUM('a', 'b')
type Enum struct{ Values []string }

// Set SET('a', 'b')
type Set struct{ Values []string }

func (Char) dataType()     {}
func (Varchar) dataType()  {}
func (Nvarchar) dataType() {}
func (Integer) dataType()  {}
func (Decimal) dataType()  {}
func (Float) dataType()    {}
func (Sized) dataType()    {}
func (Keyword) dataType()  {}
func (Custom) dataType()   {}
func (Array) dataType()    {}
func (Enum) dataType()     {}
func (Set) dataType()      {}

func (t Char) Build(builder Writer)     { buildWithOptionalLength(builder, "CHAR", t.Length, false) }
func (t Varchar) Build(builder Writer)  { buildWithOptionalLength(builder, "VARCHAR", t.Length, false) }
func (t Nvarchar) Build(builder Writer) { buildWithOptionalLength(builder, "NVARCHAR", t.Length, false) }
func (t Float) Build(builder Writer)    { buildWithOptionalLength(builder, "FLOAT", t.Precision, false) }

func (t Integer) Build(builder Writer) {
	kind := t.Kind
	if kind == "" {
		kind = Int
	}
	buildWithOptionalLength(builder, string(kind), t.Width, t.Unsigned)
}

func (t Decimal) Build(builder Writer) {
	if t.Scale != nil {
		builder.WriteString("NUMERIC(")
		builder.WriteString(strconv.FormatUint(t.Precision, 10))
		builder.WriteByte(',')
		builder.WriteString(strconv.FormatUint(*t.Scale, 10))
		builder.WriteByte(')')
		return
	}
	buildWithOptionalLength(builder, "NUMERIC", t.Precision, false)
}

func (t Sized) Build(builder Writer) {
	builder.WriteString(t.Name)
	builder.WriteByte('(')
	builder.WriteString(strconv.FormatUint(t.Size, 10))
	builder.WriteByte(')')
}

func (t Keyword) Build(builder Writer) {
	builder.WriteString(string(t))
}

func (t Custom) Build(builder Writer) {
	t.Name.Build(builder)
}

func (t Array) Build(builder Writer) {
	t.Elem.Build(builder)
	builder.WriteString("[]")
}

func (t Enum) Build(builder Writer) {
	buildQuotedList(builder, "ENUM", t.Values)
}

func (t Set) Build(builder Writer) {
	buildQuotedList(builder, "SET", t.Values)
}

func buildWithOptionalLength(builder Writer, name string, length uint64, unsigned bool) {
	builder.WriteString(name)
	if length > 0 {
		builder.WriteByte('(')
		builder.WriteString(strconv.FormatUint(length, 10))
		builder.WriteByte(')')
	}
	if unsigned {
		builder.WriteString(" UNSIGNED")
	}
}

func buildQuotedList(builder Writer, name string, values []string) {
	builder.WriteString(name)
	builder.WriteByte('(')
	for idx, v := range values {
		if idx > 0 {
			builder.WriteString(separator)
		}
		SingleQuotedString(v).Build(builder)
	}
	builder.WriteByte(')')
}

// Clob large character object e.g. CLOB(1000)
func Clob(size uint64) Sized { return Sized{Name: "CLOB", Size: size} }

// Binary fixed-length binary e.g. BINARY(16)
func Binary(size uint64) Sized { return Sized{Name: "BINARY", Size: size} }

// Varbinary variable-length binary e.g. VARBINARY(255)
func Varbinary(size uint64) Sized { return Sized{Name: "VARBINARY", Size: size} }

// Blob large binary object e.g. BLOB(1000)
func Blob(size uint64) Sized { return Sized{Name: "BLOB", Size: size} }
