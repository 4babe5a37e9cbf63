package schemabuilder_test

import (
	"errors"
	"testing"

	"github.com/kylelemons/godebug/pretty"
	"github.com/stretchr/testify/require"
	"go.appointy.com/typedef/jerrors"
	"go.appointy.com/typedef/schemabuilder"
)

func TestSchemaBuild(t *testing.T) {
	schema := schemabuilder.NewSchema()
	schema.Enum(schemabuilder.EnumTypeConfig{
		Name:        "Priority",
		Description: "How urgent a task is.",
		RootTyping:  "go.appointy.com/tasks.Priority",
		Members:     schemabuilder.FromMap(ordered("LOW", 1, "MEDIUM", 2, "HIGH", 3)),
		Extensions:  map[string]interface{}{"complexity": 1},
	})
	schema.Enum(schemabuilder.EnumTypeConfig{
		Name: "Role",
		Members: schemabuilder.FromList(
			schemabuilder.EnumMemberInfo{Name: "ADMIN", Value: RoleAdmin, Description: "Full access."},
			schemabuilder.EnumMemberInfo{Name: "MEMBER", Value: RoleMember, Deprecation: "Use ADMIN"},
			"GUEST",
		),
	})
	schema.Register(schemabuilder.MustEnumType(schemabuilder.EnumTypeConfig{
		Name:    "Color",
		Members: schemabuilder.MembersOf(ordered("0", "RED", "1", "GREEN", "RED", 0, "GREEN", 1)),
	}))

	ts, err := schema.Build()
	require.NoError(t, err)
	require.Len(t, ts.Enums, 3)

	priority, ok := ts.Enum("Priority")
	require.True(t, ok)
	if diff := pretty.Compare(priority.Values, []string{"LOW", "MEDIUM", "HIGH"}); diff != "" {
		t.Errorf("unexpected order: %s", diff)
	}
	require.Equal(t, "How urgent a task is.", priority.Description)
	require.Equal(t, "go.appointy.com/tasks.Priority", priority.RootTyping)
	require.Equal(t, map[string]interface{}{"complexity": 1}, priority.Extensions)
	require.Equal(t, "HIGH", priority.ReverseMap[3])

	role, _ := ts.Enum("Role")
	guest, _ := role.Member("GUEST")
	require.Equal(t, "GUEST", guest.Value)
	member, _ := role.Member("MEMBER")
	require.Equal(t, "Use ADMIN", member.DeprecationReason)
	require.Equal(t, "ADMIN", role.Native().Serialize(RoleAdmin))

	color, _ := ts.Enum("Color")
	require.Equal(t, []string{"RED", "GREEN"}, color.Values)
	require.Equal(t, "GREEN", color.ReverseMap[1])

	require.Len(t, schema.Definitions(), 3)
	require.Len(t, ts.GraphQLTypes(), 3)
}

func TestSchemaBuildDuplicateTypes(t *testing.T) {
	schema := schemabuilder.NewSchema()
	schema.Enum(schemabuilder.EnumTypeConfig{Name: "Color", Members: schemabuilder.FromNames("RED")})
	schema.Enum(schemabuilder.EnumTypeConfig{Name: "Color", Members: schemabuilder.FromNames("BLUE")})

	_, err := schema.Build()
	require.EqualError(t, err, "duplicate type Color")
	require.Panics(t, func() { schema.MustBuild() })
}

func TestSchemaBuildConfigurationError(t *testing.T) {
	schema := schemabuilder.NewSchema()
	schema.Enum(schemabuilder.EnumTypeConfig{Name: "Empty", Members: schemabuilder.FromList()})

	_, err := schema.Build()
	var cfgErr *jerrors.ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	require.Equal(t, "Empty", cfgErr.TypeName)
	require.Equal(t, jerrors.CodeConfiguration, jerrors.ConvertError(err).Extensions.Code)
}

func TestSchemaBuildUnhashableValue(t *testing.T) {
	schema := schemabuilder.NewSchema()
	schema.Enum(schemabuilder.EnumTypeConfig{
		Name: "Shape",
		Members: schemabuilder.FromList(
			schemabuilder.EnumMemberInfo{Name: "SQUARE", Value: []int{4}},
			schemabuilder.EnumMemberInfo{Name: "TRIANGLE", Value: map[string]interface{}{"sides": 3}},
		),
	})

	ts, err := schema.Build()
	require.NoError(t, err)

	shape, ok := ts.Enum("Shape")
	require.True(t, ok)
	value, ok := shape.Value("TRIANGLE")
	require.True(t, ok)
	require.Equal(t, map[string]interface{}{"sides": 3}, value)

	name, ok := shape.Name([]int{4})
	require.True(t, ok)
	require.Equal(t, "SQUARE", name)
}

func TestBuildEnumStructuredValue(t *testing.T) {
	type point struct{ X, Y int }

	def := schemabuilder.MustEnumType(schemabuilder.EnumTypeConfig{
		Name: "Corner",
		Members: schemabuilder.FromList(
			schemabuilder.EnumMemberInfo{Name: "ORIGIN", Value: point{0, 0}},
			schemabuilder.EnumMemberInfo{Name: "UNIT", Value: point{1, 1}},
		),
	})
	enum, err := schemabuilder.BuildEnum(def)
	require.NoError(t, err)

	name, ok := enum.Name(point{1, 1})
	require.True(t, ok)
	require.Equal(t, "UNIT", name)
}

func TestSchemaRegisterRejectsUnsupportedKinds(t *testing.T) {
	schema := schemabuilder.NewSchema()
	schema.Register(kindOverride{EnumTypeDef: schemabuilder.MustEnumType(schemabuilder.EnumTypeConfig{Name: "Date"}), kind: schemabuilder.KindScalar})

	_, err := schema.Build()
	require.EqualError(t, err, "bad definition Date: building SCALAR types is not supported")
}

type kindOverride struct {
	*schemabuilder.EnumTypeDef
	kind schemabuilder.Kind
}

func (k kindOverride) Kind() schemabuilder.Kind { return k.kind }
