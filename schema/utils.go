package schema

import (
	"reflect"
	"strings"
)

// ParseTagSetting parses `chela:"primaryKey;column:user_id"` into upper-cased keys;
// a key without a value maps to itself
func ParseTagSetting(str string, sep string) map[string]string {
	settings := map[string]string{}
	if str == "" {
		return settings
	}

	for _, value := range strings.Split(str, sep) {
		if strings.TrimSpace(value) == "" {
			continue
		}
		v := strings.Split(value, ":")
		k := strings.TrimSpace(strings.ToUpper(v[0]))
		if len(v) >= 2 {
			settings[k] = strings.TrimSpace(strings.Join(v[1:], ":"))
		} else {
			settings[k] = k
		}
	}
	return settings
}

func indirectType(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t
}
