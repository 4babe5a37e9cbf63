package tasks

import (
	"fmt"

	gql "github.com/graphql-go/graphql"
	"go.appointy.com/typedef/graphql"
)

func mustEnumType(ts *graphql.TypeSet, name string) *gql.Enum {
	e, ok := ts.Enum(name)
	if !ok {
		panic(fmt.Sprintf("enum %s is not registered", name))
	}
	return e.Native()
}

// RegisterObjects returns the Task object. Its enum fields are serialized
// from the Go values stored on the task.
func RegisterObjects(ts *graphql.TypeSet) *gql.Object {
	return gql.NewObject(gql.ObjectConfig{
		Name:        "Task",
		Description: "A unit of work on the board.",
		Fields: gql.Fields{
			"id":       &gql.Field{Type: gql.NewNonNull(gql.String)},
			"title":    &gql.Field{Type: gql.NewNonNull(gql.String)},
			"status":   &gql.Field{Type: gql.NewNonNull(mustEnumType(ts, "Status"))},
			"priority": &gql.Field{Type: gql.NewNonNull(mustEnumType(ts, "Priority"))},
			"color":    &gql.Field{Type: gql.NewNonNull(mustEnumType(ts, "Color"))},
			"due":      &gql.Field{Type: gql.NewNonNull(mustEnumType(ts, "Weekday"))},
			"labels":   &gql.Field{Type: gql.NewNonNull(gql.NewList(gql.NewNonNull(mustEnumType(ts, "Label"))))},
		},
	})
}

// RegisterQuery returns the Query type: task lookup and filtered listing.
func RegisterQuery(ts *graphql.TypeSet, task *gql.Object, s *Server) *gql.Object {
	return gql.NewObject(gql.ObjectConfig{
		Name: "Query",
		Fields: gql.Fields{
			"task": &gql.Field{
				Type:        task,
				Description: "Fetch a task by ID.",
				Args: gql.FieldConfigArgument{
					"id": &gql.ArgumentConfig{Type: gql.NewNonNull(gql.String)},
				},
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					t := s.find(p.Args["id"].(string))
					if t == nil {
						return nil, fmt.Errorf("task not found")
					}
					return t, nil
				},
			},
			"tasks": &gql.Field{
				Type:        gql.NewNonNull(gql.NewList(gql.NewNonNull(task))),
				Description: "List tasks, optionally filtered by status and priority.",
				Args: gql.FieldConfigArgument{
					"status":   &gql.ArgumentConfig{Type: mustEnumType(ts, "Status")},
					"priority": &gql.ArgumentConfig{Type: mustEnumType(ts, "Priority")},
				},
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					status, byStatus := p.Args["status"].(Status)
					priority, byPriority := p.Args["priority"].(Priority)
					return s.list(func(t *Task) bool {
						return (!byStatus || t.Status == status) && (!byPriority || t.Priority == priority)
					}), nil
				},
			},
		},
	})
}

// RegisterMutation returns the Mutation type.
func RegisterMutation(ts *graphql.TypeSet, task *gql.Object, s *Server) *gql.Object {
	return gql.NewObject(gql.ObjectConfig{
		Name: "Mutation",
		Fields: gql.Fields{
			"setStatus": &gql.Field{
				Type:        task,
				Description: "Move a task to another status.",
				Args: gql.FieldConfigArgument{
					"id":     &gql.ArgumentConfig{Type: gql.NewNonNull(gql.String)},
					"status": &gql.ArgumentConfig{Type: gql.NewNonNull(mustEnumType(ts, "Status"))},
				},
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					status, ok := p.Args["status"].(Status)
					if !ok {
						return nil, fmt.Errorf("bad status %v", p.Args["status"])
					}
					t := s.setStatus(p.Args["id"].(string), status)
					if t == nil {
						return nil, fmt.Errorf("task not found")
					}
					return t, nil
				},
			},
		},
	})
}
