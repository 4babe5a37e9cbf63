package introspection

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	gql "github.com/graphql-go/graphql"
	"go.appointy.com/typedef/graphql"
)

type TypeKind string

const (
	SCALAR       TypeKind = "SCALAR"
	OBJECT       TypeKind = "OBJECT"
	INTERFACE    TypeKind = "INTERFACE"
	UNION        TypeKind = "UNION"
	ENUM         TypeKind = "ENUM"
	INPUT_OBJECT TypeKind = "INPUT_OBJECT"
	LIST         TypeKind = "LIST"
	NON_NULL     TypeKind = "NON_NULL"
)

// EnumValue mirrors __EnumValue.
// DeprecationReason is nil for members that are not deprecated so that it is
// omitted from JSON output.
type EnumValue struct {
	Name              string  `json:"name"`
	Description       string  `json:"description"`
	IsDeprecated      bool    `json:"isDeprecated"`
	DeprecationReason *string `json:"deprecationReason,omitempty"`
}

// Type mirrors the parts of __Type that describe an enum.
type Type struct {
	Kind        TypeKind    `json:"kind"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	EnumValues  []EnumValue `json:"enumValues"`
}

// DescribeEnum returns the __Type view of e with the values in declaration
// order. Deprecated values are left out unless includeDeprecated is set.
func DescribeEnum(e *graphql.Enum, includeDeprecated bool) Type {
	return Type{
		Kind:        ENUM,
		Name:        e.Type,
		Description: e.Description,
		EnumValues:  EnumValues(e, includeDeprecated),
	}
}

// EnumValues resolves __Type.enumValues for e.
func EnumValues(e *graphql.Enum, includeDeprecated bool) []EnumValue {
	var enumVals []EnumValue
	for _, m := range e.Members() {
		if m.IsDeprecated() && !includeDeprecated {
			continue
		}
		v := EnumValue{Name: m.Name, Description: m.Description, IsDeprecated: m.IsDeprecated()}
		if m.IsDeprecated() {
			reason := m.DeprecationReason
			v.DeprecationReason = &reason
		}
		enumVals = append(enumVals, v)
	}
	return enumVals
}

// DescribeTypeSet describes every enum of ts in registration order.
func DescribeTypeSet(ts *graphql.TypeSet, includeDeprecated bool) []Type {
	out := make([]Type, 0, len(ts.Enums))
	for _, e := range ts.Enums {
		out = append(out, DescribeEnum(e, includeDeprecated))
	}
	return out
}

// ComputeSchemaJSON returns the result of executing the GraphQL introspection
// query against schema.
func ComputeSchemaJSON(ctx context.Context, schema gql.Schema) ([]byte, error) {
	res := gql.Do(gql.Params{
		Schema:        schema,
		RequestString: IntrospectionQuery,
		OperationName: "IntrospectionQuery",
		Context:       ctx,
	})
	if len(res.Errors) > 0 {
		msgs := make([]string, 0, len(res.Errors))
		for _, e := range res.Errors {
			msgs = append(msgs, e.Message)
		}
		return nil, errors.New("introspection failed: " + strings.Join(msgs, "; "))
	}

	return json.MarshalIndent(res.Data, "", "  ")
}

// ComputeTypeSetJSON is ComputeSchemaJSON for the placeholder schema of ts,
// see graphql.TypeSet.Schema.
func ComputeTypeSetJSON(ctx context.Context, ts *graphql.TypeSet) ([]byte, error) {
	schema, err := ts.Schema(nil)
	if err != nil {
		return nil, err
	}
	return ComputeSchemaJSON(ctx, schema)
}
