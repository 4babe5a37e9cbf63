package schemabuilder

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/iancoleman/orderedmap"
)

// MemberShape tells which of the accepted member shapes a Members value holds.
type MemberShape int

const (
	// ShapeUnknown is reported by MembersOf for values it could not classify.
	ShapeUnknown MemberShape = iota
	// ShapeList is an ordered sequence of names or member records.
	ShapeList
	// ShapeMap maps member names to internal values.
	ShapeMap
	// ShapeForeignEnum maps numbers to member names, as generated enum code does.
	ShapeForeignEnum
)

func (s MemberShape) String() string {
	switch s {
	case ShapeList:
		return "list"
	case ShapeMap:
		return "map"
	case ShapeForeignEnum:
		return "foreign enum"
	default:
		return "unknown"
	}
}

// Members is the member declaration of an enum. The concrete shapes are
// created with FromList, FromMap, FromForeignEnum, FromEnumDescriptor,
// FromProtoEnum and MembersOf; the list is only normalized and validated when
// the enum is built.
type Members interface {
	Shape() MemberShape

	// members converts the declaration into member records without checking
	// names.
	members() ([]EnumMemberInfo, error)
}

// memberError is the type-less form of a ConfigurationError; the enum name is
// added by NormalizeMembers.
type memberError struct {
	member string
	reason string
	cause  error
}

func (e *memberError) Error() string {
	if e.member != "" {
		return fmt.Sprintf("member %q: %s", e.member, e.reason)
	}
	return e.reason
}

type listMembers struct {
	entries []interface{}
}

// FromList declares members from an ordered list. An entry is one of:
//   string                  the member name; the value defaults to the name
//   EnumMemberInfo          used as is (also as a pointer)
//   map[string]interface{}  a record with the keys name, value, description,
//                           deprecation and extensions (also as *orderedmap.OrderedMap)
//   fmt.Stringer            name derived from String() in SCREAMING_SNAKE_CASE,
//                           the entry itself is the value
//   named string type       e.g. Role("ADMIN"); the string is the name, the
//                           typed constant is the value
func FromList(entries ...interface{}) Members {
	return &listMembers{entries: entries}
}

// FromNames is FromList for plain names.
func FromNames(names ...string) Members {
	entries := make([]interface{}, len(names))
	for i, n := range names {
		entries[i] = n
	}
	return &listMembers{entries: entries}
}

func (l *listMembers) Shape() MemberShape { return ShapeList }

func (l *listMembers) members() ([]EnumMemberInfo, error) {
	out := make([]EnumMemberInfo, 0, len(l.entries))
	for i, entry := range l.entries {
		info, err := listEntry(entry)
		if err != nil {
			if me, ok := err.(*memberError); ok && me.member == "" {
				me.reason = fmt.Sprintf("entry %d: %s", i, me.reason)
			}
			return nil, err
		}
		out = append(out, info)
	}
	return out, nil
}

func listEntry(entry interface{}) (EnumMemberInfo, error) {
	switch e := entry.(type) {
	case string:
		return EnumMemberInfo{Name: e}, nil
	case EnumMemberInfo:
		return e, nil
	case *EnumMemberInfo:
		if e == nil {
			return EnumMemberInfo{}, &memberError{reason: "nil member"}
		}
		return *e, nil
	case map[string]interface{}:
		return recordEntry(sortedKeys(e), func(k string) interface{} { return e[k] })
	case *orderedmap.OrderedMap:
		if e == nil {
			return EnumMemberInfo{}, &memberError{reason: "nil member"}
		}
		return recordEntry(e.Keys(), orderedGetter(e))
	case orderedmap.OrderedMap:
		return recordEntry(e.Keys(), orderedGetter(&e))
	case fmt.Stringer:
		return EnumMemberInfo{Name: stringerName(e), Value: e}, nil
	case nil:
		return EnumMemberInfo{}, &memberError{reason: "nil member"}
	}

	if rv := reflect.ValueOf(entry); rv.Kind() == reflect.String {
		return EnumMemberInfo{Name: rv.String(), Value: entry}, nil
	}
	return EnumMemberInfo{}, &memberError{reason: fmt.Sprintf("unsupported member entry of type %T", entry)}
}

// recordEntry decodes a member record given as a generic object.
func recordEntry(keys []string, get func(string) interface{}) (EnumMemberInfo, error) {
	var info EnumMemberInfo
	hasName := false
	for _, k := range keys {
		if k != "name" {
			continue
		}
		v := get(k)
		s, ok := v.(string)
		if !ok {
			return info, &memberError{reason: fmt.Sprintf("name must be a string, got %T", v)}
		}
		info.Name, hasName = s, true
	}

	for _, k := range keys {
		v := get(k)
		switch k {
		case "name":
		case "value":
			info.Value = v
		case "description":
			s, ok := optionalString(v)
			if !ok {
				return info, &memberError{member: info.Name, reason: fmt.Sprintf("description must be a string, got %T", v)}
			}
			info.Description = s
		case "deprecation":
			s, ok := optionalString(v)
			if !ok {
				return info, &memberError{member: info.Name, reason: fmt.Sprintf("deprecation must be a string, got %T", v)}
			}
			info.Deprecation = s
		case "extensions":
			ext, ok := toPlainMap(v)
			if !ok {
				return info, &memberError{member: info.Name, reason: fmt.Sprintf("extensions must be an object, got %T", v)}
			}
			info.Extensions = ext
		default:
			return info, &memberError{member: info.Name, reason: fmt.Sprintf("unknown member field %q", k)}
		}
	}
	if !hasName {
		return info, &memberError{reason: "member record without name"}
	}
	return info, nil
}

type mapMembers struct {
	keys   []string
	values map[string]interface{}
}

// FromMap declares one member per key of m, in key order, with the mapped
// value as internal value.
func FromMap(m *orderedmap.OrderedMap) Members {
	if m == nil {
		return &mapMembers{}
	}
	return newMapMembers(m.Keys(), orderedGetter(m))
}

func newMapMembers(keys []string, get func(string) interface{}) *mapMembers {
	mm := &mapMembers{keys: keys, values: make(map[string]interface{}, len(keys))}
	for _, k := range keys {
		mm.values[k] = get(k)
	}
	return mm
}

func (m *mapMembers) Shape() MemberShape { return ShapeMap }

func (m *mapMembers) members() ([]EnumMemberInfo, error) {
	out := make([]EnumMemberInfo, 0, len(m.keys))
	for _, k := range m.keys {
		out = append(out, EnumMemberInfo{Name: k, Value: m.values[k]})
	}
	return out, nil
}

type foreignEntry struct {
	name        string
	value       interface{}
	deprecation string
}

type foreignEnumMembers struct {
	entries []foreignEntry
	// extra holds string valued members of mixed enums.
	extra *mapMembers
}

type integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// FromForeignEnum declares members from a number to name mapping such as the
// <Enum>_name maps of generated protobuf code. Members are ordered by number
// and the number is the internal value.
func FromForeignEnum[K integer](names map[K]string) Members {
	keys := make([]K, 0, len(names))
	for k := range names {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	f := &foreignEnumMembers{entries: make([]foreignEntry, 0, len(keys))}
	for _, k := range keys {
		f.entries = append(f.entries, foreignEntry{name: names[k], value: k})
	}
	return f
}

func (f *foreignEnumMembers) Shape() MemberShape { return ShapeForeignEnum }

func (f *foreignEnumMembers) members() ([]EnumMemberInfo, error) {
	out := make([]EnumMemberInfo, 0, len(f.entries))
	for _, e := range f.entries {
		out = append(out, EnumMemberInfo{Name: e.name, Value: e.value, Deprecation: e.deprecation})
	}
	if f.extra != nil {
		extra, _ := f.extra.members()
		out = append(out, extra...)
	}
	return out, nil
}

// invalidMembers is what MembersOf returns for values it can not interpret.
type invalidMembers struct {
	reason string
}

func (i *invalidMembers) Shape() MemberShape { return ShapeUnknown }

func (i *invalidMembers) members() ([]EnumMemberInfo, error) {
	return nil, &memberError{reason: i.reason}
}

func orderedGetter(m *orderedmap.OrderedMap) func(string) interface{} {
	return func(k string) interface{} {
		v, _ := m.Get(k)
		return v
	}
}

func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func optionalString(v interface{}) (string, bool) {
	switch s := v.(type) {
	case nil:
		return "", true
	case string:
		return s, true
	}
	return "", false
}

// toPlainMap converts object values, ordered or not, into a plain map.
func toPlainMap(v interface{}) (map[string]interface{}, bool) {
	switch m := v.(type) {
	case nil:
		return nil, true
	case map[string]interface{}:
		return m, true
	case *orderedmap.OrderedMap:
		out := make(map[string]interface{}, len(m.Keys()))
		for _, k := range m.Keys() {
			out[k], _ = m.Get(k)
		}
		return out, true
	case orderedmap.OrderedMap:
		return toPlainMap(&m)
	}
	return nil, false
}
