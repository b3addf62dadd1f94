package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	gql "github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/language/ast"
	"github.com/graphql-go/graphql/language/parser"

	"github.com/jsamuelsen/question-bank/internal/adapters/http/dto"
	"github.com/jsamuelsen/question-bank/internal/platform/logging"
	"github.com/jsamuelsen/question-bank/internal/platform/telemetry"
)

// GraphQLHandler executes GraphQL requests against a schema.
type GraphQLHandler struct {
	schema gql.Schema
}

// NewGraphQLHandler creates a GraphQLHandler for schema.
func NewGraphQLHandler(schema gql.Schema) *GraphQLHandler {
	return &GraphQLHandler{schema: schema}
}

// Serve handles POST with a JSON body and GET with query parameters. Any
// request that reaches execution gets 200; errors are in the result. GET
// may not run mutations.
func (h *GraphQLHandler) Serve(c *gin.Context) {
	req, err := dto.BindGraphQLRequest(c)
	if err != nil {
		h.badRequest(c, err)
		return
	}

	if c.Request.Method == http.MethodGet && isMutation(req.Query, req.OperationName) {
		c.Header("Allow", http.MethodPost)
		c.JSON(http.StatusMethodNotAllowed, dto.NewErrorResponse(
			dto.ErrorCodeNotAllowed, "mutations require POST",
		).WithTraceID(telemetry.TraceID(c.Request.Context())))

		return
	}

	ctx := logging.WithOperation(c.Request.Context(), req.OperationName)

	result := gql.Do(gql.Params{
		Schema:         h.schema,
		RequestString:  req.Query,
		VariableValues: req.Variables,
		OperationName:  req.OperationName,
		Context:        ctx,
	})

	if result.HasErrors() {
		logging.FromContext(ctx).DebugContext(ctx, "graphql request returned errors",
			slog.Int("errors", len(result.Errors)))
	}

	c.JSON(http.StatusOK, result)
}

// Register mounts the handler for GET and POST on path.
func (h *GraphQLHandler) Register(rg gin.IRoutes, path string) {
	rg.POST(path, h.Serve)
	rg.GET(path, h.Serve)
}

func (h *GraphQLHandler) badRequest(c *gin.Context, err error) {
	traceID := telemetry.TraceID(c.Request.Context())

	var tooLarge *http.MaxBytesError

	switch {
	case errors.As(err, &tooLarge):
		c.JSON(http.StatusRequestEntityTooLarge,
			dto.NewErrorResponse(dto.ErrorCodeTooLarge, "request body too large").WithTraceID(traceID))
	case dto.IsValidationError(err):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponseWithDetails(
			dto.ErrorCodeValidation, "request validation failed", dto.ValidationErrors(err),
		).WithTraceID(traceID))
	default:
		c.JSON(http.StatusBadRequest,
			dto.NewErrorResponse(dto.ErrorCodeBadRequest, "malformed GraphQL request").WithTraceID(traceID))
	}
}

// isMutation reports whether the operation selected by operationName is a
// mutation. Unparseable documents are left for execution to report.
func isMutation(query, operationName string) bool {
	doc, err := parser.Parse(parser.ParseParams{Source: query})
	if err != nil {
		return false
	}

	for _, def := range doc.Definitions {
		op, ok := def.(*ast.OperationDefinition)
		if !ok {
			continue
		}

		if operationName != "" && (op.Name == nil || op.Name.Value != operationName) {
			continue
		}

		if op.Operation == ast.OperationTypeMutation {
			return true
		}
	}

	return false
}
