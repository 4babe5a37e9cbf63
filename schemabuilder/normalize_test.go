package schemabuilder_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/iancoleman/orderedmap"
	"github.com/kylelemons/godebug/pretty"
	"github.com/stretchr/testify/require"
	"go.appointy.com/typedef/jerrors"
	"go.appointy.com/typedef/schemabuilder"
)

type Role string

const (
	RoleAdmin  Role = "ADMIN"
	RoleMember Role = "MEMBER"
)

type Status int

const (
	StatusOpen Status = iota
	StatusInProgress
)

func (s Status) String() string {
	switch s {
	case StatusOpen:
		return "Open"
	case StatusInProgress:
		return "InProgress"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

func ordered(pairs ...interface{}) *orderedmap.OrderedMap {
	m := orderedmap.New()
	for i := 0; i < len(pairs); i += 2 {
		m.Set(pairs[i].(string), pairs[i+1])
	}
	return m
}

func normalize(t *testing.T, m schemabuilder.Members) []schemabuilder.EnumMemberInfo {
	t.Helper()
	infos, err := schemabuilder.NormalizeMembers("Test", m)
	require.NoError(t, err)
	return infos
}

func requireConfigurationError(t *testing.T, m schemabuilder.Members) *jerrors.ConfigurationError {
	t.Helper()
	_, err := schemabuilder.NormalizeMembers("Test", m)
	var cfgErr *jerrors.ConfigurationError
	require.True(t, errors.As(err, &cfgErr), "expected ConfigurationError, got %v", err)
	require.Equal(t, "Test", cfgErr.TypeName)
	return cfgErr
}

func TestNormalizeList(t *testing.T) {
	got := normalize(t, schemabuilder.FromList("A", "B", "C"))
	want := []schemabuilder.EnumMemberInfo{{Name: "A"}, {Name: "B"}, {Name: "C"}}
	if diff := pretty.Compare(got, want); diff != "" {
		t.Errorf("unexpected members: %s", diff)
	}
	require.Equal(t, "A", got[0].InternalValue())
}

func TestNormalizeListEntries(t *testing.T) {
	full := schemabuilder.EnumMemberInfo{
		Name:        "FULL",
		Value:       42,
		Description: "all fields",
		Deprecation: "gone",
		Extensions:  map[string]interface{}{"k": "v"},
	}

	got := normalize(t, schemabuilder.FromList(
		"PLAIN",
		full,
		&schemabuilder.EnumMemberInfo{Name: "POINTER"},
		map[string]interface{}{"name": "RECORD", "value": true, "description": "from a map"},
		ordered("name", "ORDERED", "deprecation", "old", "extensions", ordered("a", 1)),
		StatusInProgress,
		RoleAdmin,
	))

	want := []schemabuilder.EnumMemberInfo{
		{Name: "PLAIN"},
		full,
		{Name: "POINTER"},
		{Name: "RECORD", Value: true, Description: "from a map"},
		{Name: "ORDERED", Deprecation: "old", Extensions: map[string]interface{}{"a": 1}},
		{Name: "IN_PROGRESS", Value: StatusInProgress},
		{Name: "ADMIN", Value: RoleAdmin},
	}
	require.Equal(t, want, got)
	require.True(t, got[1].IsDeprecated())
}

func TestNormalizeMap(t *testing.T) {
	got := normalize(t, schemabuilder.FromMap(ordered("LOW", 1, "MEDIUM", 2, "HIGH", 3)))
	want := []schemabuilder.EnumMemberInfo{
		{Name: "LOW", Value: 1},
		{Name: "MEDIUM", Value: 2},
		{Name: "HIGH", Value: 3},
	}
	if diff := pretty.Compare(got, want); diff != "" {
		t.Errorf("unexpected members: %s", diff)
	}
}

func TestNormalizeForeignEnum(t *testing.T) {
	t.Run("reverse mapping object", func(t *testing.T) {
		m := schemabuilder.MembersOf(ordered("0", "RED", "1", "GREEN", "RED", 0, "GREEN", 1))
		require.Equal(t, schemabuilder.ShapeForeignEnum, m.Shape())
		require.Equal(t, []schemabuilder.EnumMemberInfo{
			{Name: "RED", Value: 0},
			{Name: "GREEN", Value: 1},
		}, normalize(t, m))
	})

	t.Run("numbers decoded from json", func(t *testing.T) {
		var raw map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(`{"0":"RED","1":"GREEN","RED":0,"GREEN":1}`), &raw))
		m := schemabuilder.MembersOf(raw)
		require.Equal(t, schemabuilder.ShapeForeignEnum, m.Shape())
		require.Equal(t, []schemabuilder.EnumMemberInfo{
			{Name: "RED", Value: 0},
			{Name: "GREEN", Value: 1},
		}, normalize(t, m))
	})

	t.Run("numeric order", func(t *testing.T) {
		m := schemabuilder.MembersOf(ordered("GREEN", 10, "RED", -1, "10", "GREEN", "-1", "RED"))
		require.Equal(t, []schemabuilder.EnumMemberInfo{
			{Name: "RED", Value: -1},
			{Name: "GREEN", Value: 10},
		}, normalize(t, m))
	})

	t.Run("mixed", func(t *testing.T) {
		m := schemabuilder.MembersOf(ordered("0", "A", "A", 0, "B", "b"))
		require.Equal(t, []schemabuilder.EnumMemberInfo{
			{Name: "A", Value: 0},
			{Name: "B", Value: "b"},
		}, normalize(t, m))
	})

	t.Run("generic map", func(t *testing.T) {
		got := normalize(t, schemabuilder.FromForeignEnum(map[int32]string{2: "TWO", 0: "ZERO", 1: "ONE"}))
		require.Equal(t, []schemabuilder.EnumMemberInfo{
			{Name: "ZERO", Value: int32(0)},
			{Name: "ONE", Value: int32(1)},
			{Name: "TWO", Value: int32(2)},
		}, got)
	})

	t.Run("sniffed go map", func(t *testing.T) {
		m := schemabuilder.MembersOf(map[uint8]string{1: "ONE", 0: "ZERO"})
		require.Equal(t, schemabuilder.ShapeForeignEnum, m.Shape())
		require.Equal(t, []schemabuilder.EnumMemberInfo{
			{Name: "ZERO", Value: uint8(0)},
			{Name: "ONE", Value: uint8(1)},
		}, normalize(t, m))
	})
}

func TestMembersOfShapes(t *testing.T) {
	cases := []struct {
		name  string
		value interface{}
		shape schemabuilder.MemberShape
		names []string
	}{
		{"strings", []string{"A", "B"}, schemabuilder.ShapeList, []string{"A", "B"}},
		{"interfaces", []interface{}{"A", schemabuilder.EnumMemberInfo{Name: "B"}}, schemabuilder.ShapeList, []string{"A", "B"}},
		{"typed slice", []Role{RoleMember, RoleAdmin}, schemabuilder.ShapeList, []string{"MEMBER", "ADMIN"}},
		{"array", [2]string{"X", "Y"}, schemabuilder.ShapeList, []string{"X", "Y"}},
		{"ordered map", ordered("B", 1, "A", 2), schemabuilder.ShapeMap, []string{"B", "A"}},
		{"go map sorted", map[string]int{"B": 1, "A": 2}, schemabuilder.ShapeMap, []string{"A", "B"}},
		{"interface map", map[string]interface{}{"Z": "z", "Y": nil}, schemabuilder.ShapeMap, []string{"Y", "Z"}},
		{"already members", schemabuilder.FromNames("Q"), schemabuilder.ShapeList, []string{"Q"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			m := schemabuilder.MembersOf(c.value)
			require.Equal(t, c.shape, m.Shape())

			var names []string
			for _, info := range normalize(t, m) {
				names = append(names, info.Name)
			}
			require.Equal(t, c.names, names)
		})
	}
}

// A numeric key without an inverse entry is an ordinary map key, which then
// fails name validation.
func TestNumericKeysWithoutInverse(t *testing.T) {
	m := schemabuilder.MembersOf(ordered("1", "ONE", "2", "TWO"))
	require.Equal(t, schemabuilder.ShapeMap, m.Shape())

	cfgErr := requireConfigurationError(t, m)
	require.Equal(t, "1", cfgErr.Member)
	var nameErr *jerrors.InvalidNameError
	require.True(t, errors.As(cfgErr, &nameErr))
}

func TestNormalizeErrors(t *testing.T) {
	cases := []struct {
		name    string
		members schemabuilder.Members
		member  string
	}{
		{"nil", nil, ""},
		{"empty list", schemabuilder.FromList(), ""},
		{"empty map", schemabuilder.FromMap(orderedmap.New()), ""},
		{"nil map", schemabuilder.FromMap(nil), ""},
		{"empty sniffed list", schemabuilder.MembersOf([]string{}), ""},
		{"empty sniffed map", schemabuilder.MembersOf(map[string]interface{}{}), ""},
		{"nil sniffed", schemabuilder.MembersOf(nil), ""},
		{"unrecognized", schemabuilder.MembersOf(42), ""},
		{"unrecognized map", schemabuilder.MembersOf(map[bool]string{true: "T"}), ""},
		{"duplicate list", schemabuilder.FromList("A", "B", "A"), "A"},
		{"duplicate record", schemabuilder.FromList("A", schemabuilder.EnumMemberInfo{Name: "A", Value: 2}), "A"},
		{"unsupported entry", schemabuilder.FromList("A", 3.5), ""},
		{"nil entry", schemabuilder.FromList((*schemabuilder.EnumMemberInfo)(nil)), ""},
		{"record without name", schemabuilder.FromList(map[string]interface{}{"value": 1}), ""},
		{"record unknown field", schemabuilder.FromList(map[string]interface{}{"name": "A", "deprecated": true}), "A"},
		{"record bad description", schemabuilder.FromList(map[string]interface{}{"name": "A", "description": 1}), "A"},
		{"invalid member name", schemabuilder.FromList("not-valid"), "not-valid"},
		{"empty member name", schemabuilder.FromList(""), ""},
		{"reserved member name", schemabuilder.FromList("__A"), "__A"},
		{"literal member name", schemabuilder.FromList("true"), "true"},
		{"ambiguous reverse mapping", schemabuilder.MembersOf(ordered("0", "RED", "RED", 0, "1", "GREEN")), ""},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfgErr := requireConfigurationError(t, c.members)
			require.Equal(t, c.member, cfgErr.Member)
			require.NotEmpty(t, cfgErr.Reason)
		})
	}
}

func TestMemberShapeString(t *testing.T) {
	require.Equal(t, "list", schemabuilder.ShapeList.String())
	require.Equal(t, "map", schemabuilder.ShapeMap.String())
	require.Equal(t, "foreign enum", schemabuilder.ShapeForeignEnum.String())
	require.Equal(t, "unknown", schemabuilder.ShapeUnknown.String())
}
