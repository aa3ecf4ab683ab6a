package dialect

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/now"

	"github.com/chela-orm/chela/utils"
)

var (
	// ErrColumnIndex column position outside the row
	ErrColumnIndex = errors.New("column index out of range")
	// ErrUnsupportedColumn column value cannot be converted to the requested type
	ErrUnsupportedColumn = errors.New("unsupported column conversion")
)

// Row one result row with positional typed access
type Row struct {
	columns []string
	values  []interface{}
}

// NewRow builds a row from column names and driver values
func NewRow(columns []string, values ...interface{}) Row {
	return Row{columns: columns, values: values}
}

func (r Row) Len() int {
	return len(r.values)
}

func (r Row) Columns() []string {
	return r.columns
}

// Index position of column, -1 when absent
func (r Row) Index(column string) int {
	for idx, name := range r.columns {
		if strings.EqualFold(name, column) {
			return idx
		}
	}
	return -1
}

// Value raw driver value at idx
func (r Row) Value(idx int) (interface{}, error) {
	if idx < 0 || idx >= len(r.values) {
		return nil, fmt.Errorf("%w: %d of %d", ErrColumnIndex, idx, len(r.values))
	}
	return r.values[idx], nil
}

// IsNull reports a NULL value, out of range columns count as NULL
func (r Row) IsNull(idx int) bool {
	v, err := r.Value(idx)
	return err != nil || v == nil
}

func (r Row) Int64(idx int) (int64, error) {
	v, err := r.Value(idx)
	if err != nil {
		return 0, err
	}

	switch v := v.(type) {
	case int64:
		return v, nil
	case int:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case uint64:
		if v > math.MaxInt64 {
			break
		}
		return int64(v), nil
	case float64:
		if v == math.Trunc(v) {
			return int64(v), nil
		}
	case bool:
		if v {
			return 1, nil
		}
		return 0, nil
	case []byte:
		return strconv.ParseInt(string(v), 10, 64)
	case string:
		return strconv.ParseInt(v, 10, 64)
	}
	return 0, r.unsupported(idx, "int64")
}

func (r Row) Float64(idx int) (float64, error) {
	v, err := r.Value(idx)
	if err != nil {
		return 0, err
	}

	switch v := v.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case []byte:
		return strconv.ParseFloat(string(v), 64)
	case string:
		return strconv.ParseFloat(v, 64)
	}
	return 0, r.unsupported(idx, "float64")
}

func (r Row) Bool(idx int) (bool, error) {
	v, err := r.Value(idx)
	if err != nil {
		return false, err
	}

	switch v := v.(type) {
	case bool:
		return v, nil
	case int64:
		return v != 0, nil
	case []byte:
		return strconv.ParseBool(string(v))
	case string:
		return strconv.ParseBool(v)
	}
	return false, r.unsupported(idx, "bool")
}

// String text form of any non NULL value
func (r Row) String(idx int) (string, error) {
	v, err := r.Value(idx)
	if err != nil {
		return "", err
	}
	return utils.ToString(v), nil
}

func (r Row) Bytes(idx int) ([]byte, error) {
	v, err := r.Value(idx)
	if err != nil {
		return nil, err
	}

	switch v := v.(type) {
	case nil:
		return nil, nil
	case []byte:
		return append([]byte(nil), v...), nil
	case string:
		return []byte(v), nil
	}
	return nil, r.unsupported(idx, "[]byte")
}

// Time accepts native times as well as the textual forms SQLite and MySQL return
func (r Row) Time(idx int) (time.Time, error) {
	v, err := r.Value(idx)
	if err != nil {
		return time.Time{}, err
	}

	var text string
	switch v := v.(type) {
	case time.Time:
		return v, nil
	case nil:
		return time.Time{}, nil
	case []byte:
		text = string(v)
	case string:
		text = v
	case int64:
		return time.Unix(v, 0).UTC(), nil
	default:
		return time.Time{}, r.unsupported(idx, "time.Time")
	}

	if t, err := time.Parse(time.RFC3339Nano, text); err == nil {
		return t, nil
	}
	t, err := now.ParseInLocation(time.UTC, text)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrUnsupportedColumn, err)
	}
	return t, nil
}

func (r Row) UUID(idx int) (uuid.UUID, error) {
	v, err := r.Value(idx)
	if err != nil {
		return uuid.Nil, err
	}

	switch v := v.(type) {
	case nil:
		return uuid.Nil, nil
	case [16]byte:
		return uuid.UUID(v), nil
	case []byte:
		if len(v) == 16 {
			return uuid.FromBytes(v)
		}
		return uuid.ParseBytes(v)
	case string:
		return uuid.Parse(v)
	}
	return uuid.Nil, r.unsupported(idx, "uuid.UUID")
}

func (r Row) unsupported(idx int, target string) error {
	name := strconv.Itoa(idx)
	if idx < len(r.columns) {
		name = r.columns[idx]
	}
	return fmt.Errorf("%w: column %s holds %T, want %s", ErrUnsupportedColumn, name, r.values[idx], target)
}
