package babel

import (
	"fmt"
	"maps"
	"reflect"
	"regexp"
	"strings"
)

// Vars holds named values for "%(name)s" placeholders in messages.
type Vars map[string]any

// placeholderRe matches "%(name)<spec>" where spec is a printf-style
// conversion such as s, d, .2f or 05d, and the "%%" escape.
var placeholderRe = regexp.MustCompile(`%%|%\(([A-Za-z_][A-Za-z0-9_]*)\)([-+# 0]*\d*(?:\.\d+)?[sdifeEgGxXr])`)

// Interpolate replaces "%(name)s"-style placeholders in msg with values from
// vars. Unknown names are left untouched. Without vars msg is returned as-is,
// so a literal "%" needs no escaping in messages that take no arguments.
func Interpolate(msg string, vars Vars) string {
	if len(vars) == 0 || !strings.Contains(msg, "%") {
		return msg
	}
	return placeholderRe.ReplaceAllStringFunc(msg, func(m string) string {
		if m == "%%" {
			return "%"
		}
		sub := placeholderRe.FindStringSubmatch(m)
		v, ok := vars[sub[1]]
		if !ok {
			return m
		}
		return fmt.Sprintf(goVerb(sub[2]), coerce(sub[2], v))
	})
}

// coerce converts integers for float conversions and floats for integer
// conversions, so "%(n).2f" accepts 3 and "%(n)d" accepts 2.0.
func coerce(spec string, v any) any {
	switch spec[len(spec)-1] {
	case 'f', 'e', 'E', 'g', 'G':
		if n, ok := asInt(v); ok {
			return float64(n)
		}
	case 'd', 'i':
		switch f := v.(type) {
		case float64:
			return int64(f)
		case float32:
			return int64(f)
		}
	}
	return v
}

func asInt(v any) (int64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int64(rv.Uint()), true
	}
	return 0, false
}

// goVerb maps a printf-style conversion to its fmt equivalent.
func goVerb(spec string) string {
	flags, conv := spec[:len(spec)-1], spec[len(spec)-1]
	switch conv {
	case 's':
		return "%" + flags + "v"
	case 'i':
		return "%" + flags + "d"
	case 'r':
		return "%" + flags + "q"
	default:
		return "%" + flags + string(conv)
	}
}

func mergeVars(vars []Vars) Vars {
	switch len(vars) {
	case 0:
		return nil
	case 1:
		return vars[0]
	}
	out := make(Vars)
	for _, v := range vars {
		maps.Copy(out, v)
	}
	return out
}

// pairs turns alternating key/value arguments, as passed from templates,
// into Vars. Non-string keys and a trailing key without value are ignored.
func pairs(kv []any) Vars {
	if len(kv) < 2 {
		return nil
	}
	out := make(Vars, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		if k, ok := kv[i].(string); ok {
			out[k] = kv[i+1]
		}
	}
	return out
}
