package graphql

import (
	"fmt"

	gql "github.com/graphql-go/graphql"
)

// TypeSet is the result of building a set of type definitions.
type TypeSet struct {
	Enums []*Enum

	types map[string]Type
}

// NewTypeSet returns an empty TypeSet.
func NewTypeSet() *TypeSet {
	return &TypeSet{types: make(map[string]Type)}
}

// Add adds typ, failing if a type of the same name is present.
func (ts *TypeSet) Add(typ Type) error {
	if _, ok := ts.types[typ.String()]; ok {
		return fmt.Errorf("duplicate type %s", typ)
	}
	ts.types[typ.String()] = typ
	if e, ok := typ.(*Enum); ok {
		ts.Enums = append(ts.Enums, e)
	}
	return nil
}

// Lookup returns the type registered under name.
func (ts *TypeSet) Lookup(name string) (Type, bool) {
	typ, ok := ts.types[name]
	return typ, ok
}

// Enum returns the enum registered under name.
func (ts *TypeSet) Enum(name string) (*Enum, bool) {
	e, ok := ts.types[name].(*Enum)
	return e, ok
}

// GraphQLTypes returns the compiled types in registration order, suitable for
// graphql.SchemaConfig.Types.
func (ts *TypeSet) GraphQLTypes() []gql.Type {
	out := make([]gql.Type, 0, len(ts.Enums))
	for _, e := range ts.Enums {
		out = append(out, e.GraphQLType())
	}
	return out
}

// Schema assembles a graphql-go schema holding every type of the set. When
// query is nil a placeholder Query type is generated with a single field
// "enums" listing the enum names.
func (ts *TypeSet) Schema(query *gql.Object) (gql.Schema, error) {
	if query == nil {
		query = ts.placeholderQuery()
	}
	return gql.NewSchema(gql.SchemaConfig{
		Query: query,
		Types: ts.GraphQLTypes(),
	})
}

func (ts *TypeSet) placeholderQuery() *gql.Object {
	names := make([]string, 0, len(ts.Enums))
	for _, e := range ts.Enums {
		names = append(names, e.Type)
	}

	return gql.NewObject(gql.ObjectConfig{
		Name: "Query",
		Fields: gql.Fields{
			"enums": &gql.Field{
				Type:        gql.NewNonNull(gql.NewList(gql.NewNonNull(gql.String))),
				Description: "Names of the enum types in this schema.",
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					return names, nil
				},
			},
		},
	})
}
