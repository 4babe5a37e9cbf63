package graphql

import (
	"fmt"
	"reflect"

	gql "github.com/graphql-go/graphql"
)

// Type represents a compiled GraphQL type.
type Type interface {
	String() string

	// GraphQLType returns the type compiled into the underlying type system.
	GraphQLType() gql.Type

	// isType() is a no-op used to tag the known values of Type, to prevent
	// arbitrary interface{} from implementing Type
	isType()
}

// EnumValue is one compiled member of an Enum.
type EnumValue struct {
	Name              string
	Value             interface{}
	Description       string
	DeprecationReason string
	Extensions        map[string]interface{}
}

// IsDeprecated reports whether the member carries a deprecation reason.
func (v *EnumValue) IsDeprecated() bool {
	return v.DeprecationReason != ""
}

// EnumConfig describes an enum to compile. Members are kept in the given order.
type EnumConfig struct {
	Name        string
	Description string
	RootTyping  string
	Extensions  map[string]interface{}
	Members     []*EnumValue
}

// MemberName stands in for an internal value that can not be used as a map
// key, such as a map or slice, in the compiled graphql-go enum. Arguments of
// such members resolve to their MemberName and a resolver returns the
// MemberName to produce one; Enum.Value gives the real value.
type MemberName string

// Enum is a leaf value
type Enum struct {
	Type        string
	Description string
	RootTyping  string
	Extensions  map[string]interface{}

	// Values holds the member names in declaration order.
	Values []string
	// ReverseMap maps an internal value back to its member name.
	ReverseMap map[interface{}]string

	members map[string]*EnumValue
	native  *gql.Enum
}

// NewEnum compiles cfg. A member without a value gets its name as value.
// Values that can not be hashed are left out of ReverseMap and compiled as
// their MemberName.
func NewEnum(cfg EnumConfig) (*Enum, error) {
	if len(cfg.Members) == 0 {
		return nil, fmt.Errorf("enum %s must have at least one value", cfg.Name)
	}

	e := &Enum{
		Type:        cfg.Name,
		Description: cfg.Description,
		RootTyping:  cfg.RootTyping,
		Extensions:  cfg.Extensions,
		Values:      make([]string, 0, len(cfg.Members)),
		ReverseMap:  make(map[interface{}]string, len(cfg.Members)),
		members:     make(map[string]*EnumValue, len(cfg.Members)),
	}

	values := make(gql.EnumValueConfigMap, len(cfg.Members))
	for _, m := range cfg.Members {
		if m == nil {
			return nil, fmt.Errorf("enum %s: nil value", cfg.Name)
		}
		if _, ok := e.members[m.Name]; ok {
			return nil, fmt.Errorf("enum %s: duplicate value %s", cfg.Name, m.Name)
		}

		v := *m
		if v.Value == nil {
			v.Value = v.Name
		}

		e.Values = append(e.Values, v.Name)
		e.members[v.Name] = &v

		key := v.Value
		if hashable(v.Value) {
			if _, ok := e.ReverseMap[v.Value]; !ok {
				e.ReverseMap[v.Value] = v.Name
			}
		} else {
			key = MemberName(v.Name)
		}
		values[v.Name] = &gql.EnumValueConfig{
			Value:             key,
			Description:       v.Description,
			DeprecationReason: v.DeprecationReason,
		}
	}

	native := gql.NewEnum(gql.EnumConfig{
		Name:        cfg.Name,
		Description: cfg.Description,
		Values:      values,
	})
	if err := native.Error(); err != nil {
		return nil, fmt.Errorf("enum %s: %w", cfg.Name, err)
	}
	e.native = native

	return e, nil
}

func (e *Enum) isType() {}

func (e *Enum) String() string {
	return e.Type
}

// GraphQLType returns the compiled *graphql.Enum of graphql-go.
func (e *Enum) GraphQLType() gql.Type {
	return e.native
}

// Native is GraphQLType without the interface conversion.
func (e *Enum) Native() *gql.Enum {
	return e.native
}

// Members returns the compiled members in declaration order.
func (e *Enum) Members() []*EnumValue {
	out := make([]*EnumValue, 0, len(e.Values))
	for _, name := range e.Values {
		out = append(out, e.members[name])
	}
	return out
}

// Member looks up a member by name.
func (e *Enum) Member(name string) (*EnumValue, bool) {
	v, ok := e.members[name]
	return v, ok
}

// Value returns the internal value of the member name.
func (e *Enum) Value(name string) (interface{}, bool) {
	m, ok := e.members[name]
	if !ok {
		return nil, false
	}
	return m.Value, true
}

// Name returns the member name of an internal value. A MemberName resolves to
// itself when the enum has such a member.
func (e *Enum) Name(value interface{}) (string, bool) {
	if value == nil {
		return "", false
	}
	if n, ok := value.(MemberName); ok {
		_, exists := e.members[string(n)]
		return string(n), exists
	}
	if hashable(value) {
		name, ok := e.ReverseMap[value]
		return name, ok
	}

	for _, name := range e.Values {
		if reflect.DeepEqual(e.members[name].Value, value) {
			return name, true
		}
	}
	return "", false
}

// hashable reports whether v can be used as a map key. Comparable struct or
// interface types still panic when they hold a map or slice.
func hashable(v interface{}) (ok bool) {
	if !reflect.TypeOf(v).Comparable() {
		return false
	}
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	_ = map[interface{}]struct{}{v: {}}
	return true
}

var _ Type = &Enum{}
