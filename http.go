package typedef

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	gql "github.com/graphql-go/graphql"
	"go.appointy.com/typedef/jerrors"
)

// HandlerFunc executes a parsed request against the schema.
type HandlerFunc func(ctx context.Context, params gql.Params) *gql.Result

// MiddlewareFunc wraps a HandlerFunc, e.g. to add logging or authorization.
type MiddlewareFunc func(next HandlerFunc) HandlerFunc

type HandlerOption func(*handlerOptions)

type handlerOptions struct {
	Middlewares []MiddlewareFunc
}

// WithMiddlewares adds middlewares, the first one being the outermost.
func WithMiddlewares(m ...MiddlewareFunc) HandlerOption {
	return func(o *handlerOptions) {
		o.Middlewares = append(o.Middlewares, m...)
	}
}

// HTTPHandler implements the handler required for executing the graphql queries and mutations
func HTTPHandler(schema gql.Schema, opts ...HandlerOption) http.Handler {
	h := &httpHandler{schema: schema}

	o := handlerOptions{}
	for _, opt := range opts {
		opt(&o)
	}

	prev := h.execute
	for i := range o.Middlewares {
		prev = o.Middlewares[len(o.Middlewares)-1-i](prev)
	}
	h.exec = prev

	return h
}

type httpHandler struct {
	schema gql.Schema
	exec   HandlerFunc
}

type httpPostBody struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

type httpResponse struct {
	Data   interface{}      `json:"data"`
	Errors []*jerrors.Error `json:"errors"`
}

func (h *httpHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	writeResponse := func(value interface{}, errs []*jerrors.Error) {
		response := httpResponse{Data: value, Errors: errs}

		responseJSON, err := json.Marshal(response)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if w.Header().Get("Content-Type") == "" {
			w.Header().Set("Content-Type", "application/json")
		}
		_, _ = w.Write(responseJSON)
	}
	writeError := func(err error) {
		writeResponse(nil, []*jerrors.Error{jerrors.ConvertError(err)})
	}

	if r.Method != http.MethodPost {
		writeError(errors.New("request must be a POST"))
		return
	}

	if r.Body == nil {
		writeError(errors.New("request must include a query"))
		return
	}

	var params httpPostBody
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		writeError(err)
		return
	}
	if params.Query == "" {
		writeError(errors.New("must have a single query"))
		return
	}

	ctx := addVariables(r.Context(), params.Variables)

	result := h.exec(ctx, gql.Params{
		Schema:         h.schema,
		RequestString:  params.Query,
		VariableValues: params.Variables,
		OperationName:  params.OperationName,
		Context:        ctx,
	})

	var errs []*jerrors.Error
	for _, e := range result.Errors {
		errs = append(errs, jerrors.ConvertError(e))
	}
	writeResponse(result.Data, errs)
}

func (h *httpHandler) execute(ctx context.Context, params gql.Params) *gql.Result {
	params.Context = ctx
	return gql.Do(params)
}

type graphqlVariableKeyType int

const graphqlVariableKey graphqlVariableKeyType = 0

// ExtractVariables is used to returns the variables received as part of the graphql request.
// This is intended to be used from within the middlewares and resolvers.
func ExtractVariables(ctx context.Context) map[string]interface{} {
	if v := ctx.Value(graphqlVariableKey); v != nil {
		return v.(map[string]interface{})
	}

	return nil
}

func addVariables(ctx context.Context, v map[string]interface{}) context.Context {
	return context.WithValue(ctx, graphqlVariableKey, v)
}
