package tasks

import (
	"context"
	"log"
	"net/http"
	"time"

	gql "github.com/graphql-go/graphql"
	"go.appointy.com/typedef"
	"go.appointy.com/typedef/graphql"
	"go.appointy.com/typedef/schemabuilder"
)

// BuildSchema builds the task tracker schema on top of s.
func BuildSchema(s *Server) (gql.Schema, *graphql.TypeSet, error) {
	sb := schemabuilder.NewSchema()
	if err := RegisterEnums(sb); err != nil {
		return gql.Schema{}, nil, err
	}

	ts, err := sb.Build()
	if err != nil {
		return gql.Schema{}, nil, err
	}

	task := RegisterObjects(ts)
	schema, err := gql.NewSchema(gql.SchemaConfig{
		Query:    RegisterQuery(ts, task, s),
		Mutation: RegisterMutation(ts, task, s),
		Types:    ts.GraphQLTypes(),
	})
	if err != nil {
		return gql.Schema{}, nil, err
	}
	return schema, ts, nil
}

// GetGraphqlServer returns the handler for the /graphql route.
func GetGraphqlServer() (http.Handler, error) {
	schema, _, err := BuildSchema(NewServer())
	if err != nil {
		return nil, err
	}
	return typedef.HTTPHandler(schema, typedef.WithMiddlewares(logRequests)), nil
}

func logRequests(next typedef.HandlerFunc) typedef.HandlerFunc {
	return func(ctx context.Context, params gql.Params) *gql.Result {
		start := time.Now()
		res := next(ctx, params)
		log.Printf("graphql %q: %d errors in %s", params.OperationName, len(res.Errors), time.Since(start))
		return res
	}
}
