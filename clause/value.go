package clause

import (
	"encoding/hex"
	"strconv"
	"strings"
)

// Value literal usable inside predicates and VALUES rows
type Value interface {
	Expr
	value()
}

// SingleQuotedString 'text' literal
type SingleQuotedString string

// Number numeric literal kept in its textual form
type Number struct {
	Value    string
	Negative bool
}

// Bool TRUE / FALSE literal
type Bool bool

// Null NULL literal
type Null struct{}

// HexBlob X'0A1B' binary literal, read by MySQL and SQLite
type HexBlob []byte

// ByteaHex '\x0a1b' PostgreSQL bytea literal in hex format
type ByteaHex []byte

// IntValue returns the numeric literal of n
func IntValue(n int64) Number {
	if n < 0 {
		return Number{Value: strconv.FormatUint(uint64(-n), 10), Negative: true}
	}
	return Number{Value: strconv.FormatInt(n, 10)}
}

// FloatValue returns the numeric literal of f
func FloatValue(f float64) Number {
	if f < 0 {
		return Number{Value: strconv.FormatFloat(-f, 'f', -1, 64), Negative: true}
	}
	return Number{Value: strconv.FormatFloat(f, 'f', -1, 64)}
}

func (SingleQuotedString) value() {}
func (Number) value()             {}
func (Bool) value()               {}
func (Null) value()               {}
func (HexBlob) value()            {}
func (ByteaHex) value()           {}

func (SingleQuotedString) expr() {}
func (Number) expr()             {}
func (Bool) expr()               {}
func (Null) expr()               {}
func (HexBlob) expr()            {}
func (ByteaHex) expr()           {}

// Build build quoted string, embedded quotes are doubled
func (s SingleQuotedString) Build(builder Writer) {
	builder.WriteByte('\'')
	builder.WriteString(escapeSingleQuote(string(s)))
	builder.WriteByte('\'')
}

// Build build number
func (n Number) Build(builder Writer) {
	if n.Negative {
		builder.WriteByte('-')
	}
	builder.WriteString(n.Value)
}

// Build build boolean
func (b Bool) Build(builder Writer) {
	if b {
		builder.WriteString("TRUE")
	} else {
		builder.WriteString("FALSE")
	}
}

// Build build null
func (Null) Build(builder Writer) {
	builder.WriteString("NULL")
}

// Build build X'<hex>'
func (b HexBlob) Build(builder Writer) {
	builder.WriteString("X'")
	builder.WriteString(strings.ToUpper(hex.EncodeToString(b)))
	builder.WriteByte('\'')
}

// Build build '\x<hex>'
func (b ByteaHex) Build(builder Writer) {
	builder.WriteString("'\\x")
	builder.WriteString(hex.EncodeToString(b))
	builder.WriteByte('\'')
}

func escapeSingleQuote(s string) string {
	if !strings.Contains(s, "'") {
		return s
	}
	return strings.ReplaceAll(s, "'", "''")
}
