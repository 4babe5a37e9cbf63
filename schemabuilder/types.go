package schemabuilder

// Kind tags a Definition with the kind of GraphQL type it declares, so that a
// heterogeneous list of definitions can be dispatched on without type
// assertions on every concrete type.
type Kind string

const (
	KindScalar      Kind = "SCALAR"
	KindObject      Kind = "OBJECT"
	KindInterface   Kind = "INTERFACE"
	KindUnion       Kind = "UNION"
	KindEnum        Kind = "ENUM"
	KindInputObject Kind = "INPUT_OBJECT"
)

// Definition is a declared, not yet built, schema type.
type Definition interface {
	Kind() Kind
	TypeName() string

	// isDefinition() is a no-op used to tag the known values of Definition.
	isDefinition()
}

// EnumMemberInfo is one member of an enum.
type EnumMemberInfo struct {
	// Name is the external value of the member as it appears in the SDL.
	Name string
	// Value is the internal representation. nil means the member name is used.
	Value interface{}
	// Description annotates the member in the SDL.
	Description string
	// Deprecation is the reason given with @deprecated; empty if not deprecated.
	Deprecation string
	// Extensions is opaque metadata passed through to the built type.
	Extensions map[string]interface{}
}

// InternalValue returns Value, or Name when no value was given.
func (m EnumMemberInfo) InternalValue() interface{} {
	if m.Value == nil {
		return m.Name
	}
	return m.Value
}

// IsDeprecated reports whether a deprecation reason is set.
func (m EnumMemberInfo) IsDeprecated() bool {
	return m.Deprecation != ""
}

// EnumTypeConfig is the declarative configuration of an enum type.
//
// Members is built with FromList, FromMap, FromForeignEnum, FromEnumDescriptor
// or, for values whose shape is only known at runtime, MembersOf:
//   schemabuilder.EnumType(schemabuilder.EnumTypeConfig{
//     Name:    "Priority",
//     Members: schemabuilder.FromList("LOW", "MEDIUM", "HIGH"),
//   })
type EnumTypeConfig struct {
	Name        string
	Description string
	// RootTyping names the backing Go type of the enum, e.g.
	// "go.appointy.com/tasks.Priority". It is not interpreted.
	RootTyping string
	Members    Members
	Extensions map[string]interface{}
}
