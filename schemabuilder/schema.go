package schemabuilder

import (
	"fmt"

	"go.appointy.com/typedef/graphql"
	"go.appointy.com/typedef/jerrors"
)

// Schema collects type definitions and builds them into a graphql.TypeSet.
type Schema struct {
	definitions []Definition
}

// NewSchema creates a new schema.
func NewSchema() *Schema {
	return &Schema{}
}

// Register adds definitions to the schema. Duplicate names are reported by
// Build.
func (s *Schema) Register(defs ...Definition) {
	s.definitions = append(s.definitions, defs...)
}

// Enum declares and registers an enum type. It panics if the name is invalid,
// like the other registration helpers.
//   schema.Enum(schemabuilder.EnumTypeConfig{
//     Name:        "Role",
//     Description: "Access level of a user.",
//     Members:     schemabuilder.FromList(RoleAdmin, RoleMember, RoleGuest),
//   })
func (s *Schema) Enum(config EnumTypeConfig) *EnumTypeDef {
	def := MustEnumType(config)
	s.Register(def)
	return def
}

// Definitions returns the registered definitions in registration order.
func (s *Schema) Definitions() []Definition {
	return append([]Definition(nil), s.definitions...)
}

// Build normalizes and compiles every registered definition.
func (s *Schema) Build() (*graphql.TypeSet, error) {
	ts := graphql.NewTypeSet()
	for _, def := range s.definitions {
		typ, err := buildDefinition(def)
		if err != nil {
			return nil, err
		}
		if err := ts.Add(typ); err != nil {
			return nil, err
		}
	}
	return ts, nil
}

// MustBuild builds a schema and panics if an error occurs.
func (s *Schema) MustBuild() *graphql.TypeSet {
	built, err := s.Build()
	if err != nil {
		panic(err)
	}
	return built
}

func buildDefinition(def Definition) (graphql.Type, error) {
	switch def.Kind() {
	case KindEnum:
		enum, ok := def.(*EnumTypeDef)
		if !ok {
			return nil, fmt.Errorf("bad definition %s: kind %s but type %T", def.TypeName(), def.Kind(), def)
		}
		return buildEnum(enum)
	default:
		return nil, fmt.Errorf("bad definition %s: building %s types is not supported", def.TypeName(), def.Kind())
	}
}

// BuildEnum normalizes and compiles a single enum definition.
func BuildEnum(def *EnumTypeDef) (*graphql.Enum, error) {
	return buildEnum(def)
}

func buildEnum(def *EnumTypeDef) (*graphql.Enum, error) {
	infos, err := def.Members()
	if err != nil {
		return nil, err
	}

	config := def.Value()
	members := make([]*graphql.EnumValue, 0, len(infos))
	for _, info := range infos {
		members = append(members, &graphql.EnumValue{
			Name:              info.Name,
			Value:             info.InternalValue(),
			Description:       info.Description,
			DeprecationReason: info.Deprecation,
			Extensions:        info.Extensions,
		})
	}

	enum, err := graphql.NewEnum(graphql.EnumConfig{
		Name:        def.Name(),
		Description: config.Description,
		RootTyping:  config.RootTyping,
		Extensions:  config.Extensions,
		Members:     members,
	})
	if err != nil {
		return nil, &jerrors.ConfigurationError{TypeName: def.Name(), Reason: "can not compile enum", Cause: err}
	}
	return enum, nil
}
