package cast

import (
	"fmt"
	"reflect"
	"time"
)

// unwrap mirrors the pointer/interface unwrapping kind.Of performs, so the
// handlers see the same shape the snapshot was classified on.
func unwrap(v any) reflect.Value {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return reflect.Value{}
		}
		rv = rv.Elem()
	}
	return rv
}

func asInt64(v any) (int64, bool) {
	rv := unwrap(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int64(rv.Uint()), true
	}
	return 0, false
}

func asFloat64(v any) (float64, bool) {
	rv := unwrap(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

func asBool(v any) (bool, bool) {
	rv := unwrap(v)
	if rv.Kind() == reflect.Bool {
		return rv.Bool(), true
	}
	return false, false
}

func asTime(v any) (time.Time, bool) {
	rv := unwrap(v)
	if !rv.IsValid() || rv.Type() != reflect.TypeOf(time.Time{}) {
		return time.Time{}, false
	}
	t, ok := rv.Interface().(time.Time)
	return t, ok
}

func asStringMap(v any) map[string]any {
	rv := unwrap(v)
	out := make(map[string]any, rv.Len())

	iter := rv.MapRange()
	for iter.Next() {
		key := iter.Key()
		if key.Kind() == reflect.Interface {
			key = key.Elem()
		}

		if key.Kind() == reflect.String {
			out[key.String()] = iter.Value().Interface()
		} else {
			out[fmt.Sprint(key.Interface())] = iter.Value().Interface()
		}
	}
	return out
}
