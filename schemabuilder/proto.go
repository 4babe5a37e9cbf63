package schemabuilder

import (
	"reflect"

	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"
	"google.golang.org/protobuf/types/descriptorpb"
)

// protoDeprecation is the reason given to values marked deprecated in the
// .proto file.
const protoDeprecation = "Deprecated in the protobuf definition."

// FromEnumDescriptor declares one member per value of a protobuf enum, in
// declaration order. The internal value is the protoreflect.EnumNumber.
func FromEnumDescriptor(desc protoreflect.EnumDescriptor) Members {
	if desc == nil {
		return &invalidMembers{reason: "members are required"}
	}
	return protoMembers(desc, func(n protoreflect.EnumNumber) interface{} { return n })
}

// FromProtoEnum is FromEnumDescriptor for a generated enum, e.g.
// FromProtoEnum(dayofweek.DayOfWeek(0)). The internal values are of the
// generated Go type so resolvers can return it directly.
func FromProtoEnum(e protoreflect.Enum) Members {
	if e == nil {
		return &invalidMembers{reason: "members are required"}
	}
	typ := reflect.TypeOf(e)
	if typ.Kind() == reflect.Ptr {
		typ = typ.Elem()
	}
	return protoMembers(e.Descriptor(), func(n protoreflect.EnumNumber) interface{} {
		return reflect.ValueOf(int32(n)).Convert(typ).Interface()
	})
}

// FromRegisteredEnum looks fullName up in the global protobuf registry, e.g.
// "google.type.DayOfWeek".
func FromRegisteredEnum(fullName string) Members {
	et, err := protoregistry.GlobalTypes.FindEnumByName(protoreflect.FullName(fullName))
	if err != nil {
		return &invalidMembers{reason: "protobuf enum " + fullName + ": " + err.Error()}
	}
	return protoMembers(et.Descriptor(), func(n protoreflect.EnumNumber) interface{} { return et.New(n) })
}

func protoMembers(desc protoreflect.EnumDescriptor, value func(protoreflect.EnumNumber) interface{}) Members {
	values := desc.Values()
	f := &foreignEnumMembers{entries: make([]foreignEntry, 0, values.Len())}
	for i := 0; i < values.Len(); i++ {
		v := values.Get(i)
		entry := foreignEntry{name: string(v.Name()), value: value(v.Number())}
		if opts, ok := v.Options().(*descriptorpb.EnumValueOptions); ok && opts.GetDeprecated() {
			entry.deprecation = protoDeprecation
		}
		f.entries = append(f.entries, entry)
	}
	return f
}
