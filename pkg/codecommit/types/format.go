package types

import (
	"fmt"
	"reflect"
	"slices"
	"strings"
	"time"

	"github.com/google/go-cmp/cmp"
)

var timeType = reflect.TypeFor[time.Time]()

// Stringify renders v in the debug form shared by every shape:
// {name: value,name: value}. Fields appear in declaration order under their
// wire names and absent fields are left out. Lists render as [a, b], maps as
// {k=v, k2=v2} with sorted keys, timestamps as RFC 3339 and blobs as their
// length only.
func Stringify(v any) string {
	var b strings.Builder
	writeValue(&b, reflect.ValueOf(v))
	return b.String()
}

// Equal reports whether a and b are structurally equal. Absent and present
// fields never compare equal; sequences compare element-wise in order.
func Equal[T any](a, b T) bool {
	return cmp.Equal(a, b)
}

func writeValue(b *strings.Builder, v reflect.Value) {
	if !v.IsValid() {
		b.WriteString("null")
		return
	}
	if v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			b.WriteString("null")
			return
		}
		writeValue(b, v.Elem())
		return
	}
	if v.Type() == timeType {
		b.WriteString(v.Interface().(time.Time).UTC().Format(time.RFC3339))
		return
	}

	switch v.Kind() {
	case reflect.Struct:
		writeStruct(b, v)
	case reflect.Slice:
		if v.Type().Elem().Kind() == reflect.Uint8 {
			fmt.Fprintf(b, "<%d bytes>", v.Len())
			return
		}
		b.WriteByte('[')
		for i := range v.Len() {
			if i > 0 {
				b.WriteString(", ")
			}
			writeValue(b, v.Index(i))
		}
		b.WriteByte(']')
	case reflect.Map:
		keys := v.MapKeys()
		slices.SortFunc(keys, func(x, y reflect.Value) int {
			return strings.Compare(fmt.Sprint(x.Interface()), fmt.Sprint(y.Interface()))
		})
		b.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprint(b, k.Interface())
			b.WriteByte('=')
			writeValue(b, v.MapIndex(k))
		}
		b.WriteByte('}')
	case reflect.String:
		b.WriteString(v.String())
	default:
		fmt.Fprint(b, v.Interface())
	}
}

func writeStruct(b *strings.Builder, v reflect.Value) {
	t := v.Type()
	b.WriteByte('{')
	first := true
	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		fv := v.Field(i)
		if absent(fv) {
			continue
		}
		if !first {
			b.WriteByte(',')
		}
		first = false
		b.WriteString(fieldName(f))
		b.WriteString(": ")
		writeValue(b, fv)
	}
	b.WriteByte('}')
}

func absent(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map:
		return v.IsNil()
	case reflect.String:
		// enum fields use the empty token for "not set"
		return v.Len() == 0
	}
	return false
}

func fieldName(f reflect.StructField) string {
	if tag, ok := f.Tag.Lookup("json"); ok {
		if name, _, _ := strings.Cut(tag, ","); name != "" && name != "-" {
			return name
		}
	}
	return f.Name
}
