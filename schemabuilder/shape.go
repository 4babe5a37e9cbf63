package schemabuilder

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"

	"github.com/iancoleman/orderedmap"
	"google.golang.org/protobuf/reflect/protoreflect"
)

// MembersOf classifies v into one of the member shapes:
//
//   - slices and arrays are lists (see FromList for the accepted entries);
//   - *orderedmap.OrderedMap and map[string]T are maps, read in key order
//     (sorted for Go maps, which have none), unless they hold a reverse
//     mapping, see below;
//   - map[K]string with an integer K is a foreign enum;
//   - protoreflect.Enum and protoreflect.EnumDescriptor are foreign enums.
//
// A map whose integer keys all point at names that point back at the same
// number, e.g. {"0": "RED", "1": "GREEN", "RED": 0, "GREEN": 1}, is a reverse
// mapping: the integer keys become members and the back references are
// dropped. If no integer key has such an inverse the object is a plain map.
// If only some have one the shape is ambiguous and building fails.
// Members of a reverse mapping are ordered by ascending number, so negative
// numbers come first wherever they appear in the input; only the remaining
// string valued keys keep their input order.
//
// MembersOf never fails; an unrecognized value produces a Members that fails
// normalization.
func MembersOf(v interface{}) Members {
	switch m := v.(type) {
	case nil:
		return &invalidMembers{reason: "members are required"}
	case Members:
		return m
	case []interface{}:
		return FromList(m...)
	case []string:
		return FromNames(m...)
	case *orderedmap.OrderedMap:
		if m == nil {
			return &invalidMembers{reason: "members are required"}
		}
		return objectMembers(m.Keys(), orderedGetter(m))
	case orderedmap.OrderedMap:
		return objectMembers(m.Keys(), orderedGetter(&m))
	case map[string]interface{}:
		return objectMembers(sortedKeys(m), func(k string) interface{} { return m[k] })
	case protoreflect.Enum:
		return FromProtoEnum(m)
	case protoreflect.EnumDescriptor:
		return FromEnumDescriptor(m)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		entries := make([]interface{}, rv.Len())
		for i := range entries {
			entries[i] = rv.Index(i).Interface()
		}
		return FromList(entries...)
	case reflect.Map:
		key := rv.Type().Key()
		switch {
		case key.Kind() == reflect.String:
			keys := make([]string, 0, rv.Len())
			values := make(map[string]interface{}, rv.Len())
			iter := rv.MapRange()
			for iter.Next() {
				k := iter.Key().String()
				keys = append(keys, k)
				values[k] = iter.Value().Interface()
			}
			sort.Strings(keys)
			return objectMembers(keys, func(k string) interface{} { return values[k] })
		case isIntegerKind(key.Kind()) && rv.Type().Elem().Kind() == reflect.String:
			return reflectForeignEnum(rv)
		}
	}

	return &invalidMembers{reason: fmt.Sprintf("unrecognized members of type %T", v)}
}

// objectMembers is the single place where a keyed object is told apart as a
// plain map or a reverse mapping.
func objectMembers(keys []string, get func(string) interface{}) Members {
	var numeric []string
	for _, k := range keys {
		if _, ok := canonicalInt(k); ok {
			numeric = append(numeric, k)
		}
	}
	if len(numeric) == 0 {
		return newMapMembers(keys, get)
	}

	backRefs := make(map[string]bool, len(numeric))
	entries := make([]foreignEntry, 0, len(numeric))
	for _, k := range numeric {
		n, _ := canonicalInt(k)
		name, ok := get(k).(string)
		if !ok {
			continue
		}
		if back, ok := asInt(get(name)); ok && back == int64(n) {
			backRefs[name] = true
			entries = append(entries, foreignEntry{name: name, value: n})
		}
	}

	switch len(entries) {
	case 0:
		return newMapMembers(keys, get)
	case len(numeric):
	default:
		return &invalidMembers{reason: fmt.Sprintf(
			"ambiguous members: %d of %d numeric keys map back from their names", len(entries), len(numeric))}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].value.(int) < entries[j].value.(int)
	})

	var extra []string
	for _, k := range keys {
		if _, ok := canonicalInt(k); ok || backRefs[k] {
			continue
		}
		extra = append(extra, k)
	}

	f := &foreignEnumMembers{entries: entries}
	if len(extra) > 0 {
		f.extra = newMapMembers(extra, get)
	}
	return f
}

func reflectForeignEnum(rv reflect.Value) Members {
	type keyed struct {
		key   reflect.Value
		entry foreignEntry
	}
	items := make([]keyed, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		items = append(items, keyed{
			key:   iter.Key(),
			entry: foreignEntry{name: iter.Value().String(), value: iter.Key().Interface()},
		})
	}

	signed := rv.Type().Key().Kind() <= reflect.Int64
	sort.Slice(items, func(i, j int) bool {
		if signed {
			return items[i].key.Int() < items[j].key.Int()
		}
		return items[i].key.Uint() < items[j].key.Uint()
	})

	f := &foreignEnumMembers{entries: make([]foreignEntry, 0, len(items))}
	for _, it := range items {
		f.entries = append(f.entries, it.entry)
	}
	return f
}

// canonicalInt parses k as an integer written without sign or leading zeros
// beyond what strconv.Itoa produces.
func canonicalInt(k string) (int, bool) {
	n, err := strconv.Atoi(k)
	if err != nil || strconv.Itoa(n) != k {
		return 0, false
	}
	return n, true
}

// asInt reports whether v holds a whole number, as decoded from Go, JSON or
// YAML sources.
func asInt(v interface{}) (int64, bool) {
	switch n := v.(type) {
	case json.Number:
		i, err := n.Int64()
		return i, err == nil
	case float32:
		return floatInt(float64(n))
	case float64:
		return floatInt(n)
	}

	rv := reflect.ValueOf(v)
	switch {
	case !rv.IsValid():
		return 0, false
	case rv.Kind() >= reflect.Int && rv.Kind() <= reflect.Int64:
		return rv.Int(), true
	case rv.Kind() >= reflect.Uint && rv.Kind() <= reflect.Uint64:
		u := rv.Uint()
		return int64(u), u <= math.MaxInt64
	}
	return 0, false
}

func floatInt(f float64) (int64, bool) {
	if f != math.Trunc(f) || math.IsInf(f, 0) || f > math.MaxInt64 || f < math.MinInt64 {
		return 0, false
	}
	return int64(f), true
}

func isIntegerKind(k reflect.Kind) bool {
	return (k >= reflect.Int && k <= reflect.Int64) || (k >= reflect.Uint && k <= reflect.Uint64)
}
