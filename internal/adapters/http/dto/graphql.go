package dto

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// GraphQLRequest is a GraphQL-over-HTTP request.
type GraphQLRequest struct {
	Query         string         `json:"query"         validate:"required"`
	OperationName string         `json:"operationName"`
	Variables     map[string]any `json:"variables"`
}

// graphQLQuery is the GET form of GraphQLRequest; variables arrive as a
// JSON-encoded query parameter.
type graphQLQuery struct {
	Query         string `form:"query"`
	OperationName string `form:"operationName"`
	Variables     string `form:"variables"`
}

// BindGraphQLRequest reads a GraphQL request from the JSON body of a POST or
// from the query string of a GET, then validates it.
func BindGraphQLRequest(c *gin.Context) (*GraphQLRequest, error) {
	var req GraphQLRequest

	if c.Request.Method != http.MethodGet {
		if err := BindAndValidate(c, &req); err != nil {
			return nil, err
		}

		return &req, nil
	}

	var q graphQLQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBinding, err)
	}

	req.Query = q.Query
	req.OperationName = q.OperationName

	if q.Variables != "" {
		if err := binding.JSON.BindBody([]byte(q.Variables), &req.Variables); err != nil {
			return nil, fmt.Errorf("%w: variables: %w", ErrBinding, err)
		}
	}

	if err := Validate(&req); err != nil {
		return nil, err
	}

	return &req, nil
}
