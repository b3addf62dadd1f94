// Package graphql exposes the question bank as a Relay-compliant GraphQL
// schema built with graphql-go.
package graphql

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	gql "github.com/graphql-go/graphql"
	"github.com/graphql-go/relay"

	"github.com/jsamuelsen/question-bank/internal/app"
	"github.com/jsamuelsen/question-bank/internal/domain"
	"github.com/jsamuelsen/question-bank/internal/platform/logging"
)

// Default page sizes of the multipleChoices connection.
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// errInternal replaces resolver errors that are not meant for clients.
var errInternal = errors.New("internal error")

// MultipleChoiceService is the application surface the schema resolves against.
type MultipleChoiceService interface {
	Add(ctx context.Context, in domain.MultipleChoiceInput) app.AddResult
	Get(ctx context.Context, id string) (*domain.MultipleChoice, error)
	List(ctx context.Context, offset, limit int) (*app.MultipleChoicePage, error)
}

// Config sizes the multipleChoices connection. Zero values take the defaults.
type Config struct {
	DefaultPageSize int
	MaxPageSize     int
}

type resolver struct {
	svc             MultipleChoiceService
	ids             GlobalIDs
	defaultPageSize int
	maxPageSize     int
}

// NewSchema builds the schema:
//
//	query    { node(id) multipleChoice(id) multipleChoices(first, after) }
//	mutation { MultipleChoiceAdd(input) }
func NewSchema(svc MultipleChoiceService, cfg Config) (gql.Schema, error) {
	r := &resolver{
		svc:             svc,
		ids:             NewGlobalIDs(),
		defaultPageSize: cfg.DefaultPageSize,
		maxPageSize:     cfg.MaxPageSize,
	}

	if r.defaultPageSize <= 0 {
		r.defaultPageSize = DefaultPageSize
	}

	if r.maxPageSize <= 0 {
		r.maxPageSize = MaxPageSize
	}

	if r.defaultPageSize > r.maxPageSize {
		r.defaultPageSize = r.maxPageSize
	}

	var multipleChoiceType *gql.Object

	nodeDefinitions := relay.NewNodeDefinitions(relay.NodeDefinitionsConfig{
		IDFetcher: func(id string, _ gql.ResolveInfo, ctx context.Context) (interface{}, error) {
			return r.node(ctx, id)
		},
		TypeResolve: func(p gql.ResolveTypeParams) *gql.Object {
			if _, ok := p.Value.(*domain.MultipleChoice); ok {
				return multipleChoiceType
			}

			return nil
		},
	})

	multipleChoiceType = gql.NewObject(gql.ObjectConfig{
		Name:        domain.MultipleChoiceTypeName,
		Description: "A question with five statements and the correct answer.",
		Interfaces:  []*gql.Interface{nodeDefinitions.NodeInterface},
		Fields: gql.Fields{
			"id": relay.GlobalIDField(domain.MultipleChoiceTypeName,
				func(obj interface{}, _ gql.ResolveInfo, _ context.Context) (string, error) {
					m, ok := obj.(*domain.MultipleChoice)
					if !ok {
						return "", fmt.Errorf("unexpected node source %T", obj)
					}

					return m.ID, nil
				}),
			"question":      &gql.Field{Type: gql.NewNonNull(gql.String)},
			"statementA":    &gql.Field{Type: gql.NewNonNull(gql.String)},
			"statementB":    &gql.Field{Type: gql.NewNonNull(gql.String)},
			"statementC":    &gql.Field{Type: gql.NewNonNull(gql.String)},
			"statementD":    &gql.Field{Type: gql.NewNonNull(gql.String)},
			"statementE":    &gql.Field{Type: gql.NewNonNull(gql.String)},
			"correctAnswer": &gql.Field{Type: gql.NewNonNull(gql.String)},
			"createdAt":     &gql.Field{Type: gql.DateTime},
			"updatedAt":     &gql.Field{Type: gql.DateTime},
		},
	})

	connection := relay.ConnectionDefinitions(relay.ConnectionConfig{
		Name:     domain.MultipleChoiceTypeName,
		NodeType: multipleChoiceType,
		ConnectionFields: gql.Fields{
			"totalCount": &gql.Field{Type: gql.NewNonNull(gql.Int)},
		},
	})

	query := gql.NewObject(gql.ObjectConfig{
		Name: "Query",
		Fields: gql.Fields{
			"node": nodeDefinitions.NodeField,
			"multipleChoice": &gql.Field{
				Type: multipleChoiceType,
				Args: gql.FieldConfigArgument{
					"id": &gql.ArgumentConfig{Type: gql.NewNonNull(gql.ID)},
				},
				Resolve: r.resolveMultipleChoice,
			},
			"multipleChoices": &gql.Field{
				Type: connection.ConnectionType,
				Args: gql.FieldConfigArgument{
					"first": &gql.ArgumentConfig{Type: gql.Int},
					"after": &gql.ArgumentConfig{Type: gql.String},
				},
				Resolve: r.resolveMultipleChoices,
			},
		},
	})

	mutation := gql.NewObject(gql.ObjectConfig{
		Name: "Mutation",
		Fields: gql.Fields{
			"MultipleChoiceAdd": multipleChoiceAddMutation(r, connection.EdgeType),
		},
	})

	return gql.NewSchema(gql.SchemaConfig{
		Query:    query,
		Mutation: mutation,
	})
}

// node resolves a global ID. IDs of other types resolve to null.
func (r *resolver) node(ctx context.Context, globalID string) (interface{}, error) {
	typeName, id, ok := r.ids.Decode(globalID)
	if !ok || typeName != domain.MultipleChoiceTypeName {
		return nil, nil
	}

	m, err := r.svc.Get(ctx, id)
	if err != nil {
		return nil, publicError(ctx, err)
	}

	if m == nil {
		return nil, nil
	}

	return m, nil
}

func (r *resolver) resolveMultipleChoice(p gql.ResolveParams) (interface{}, error) {
	id, _ := p.Args["id"].(string)

	return r.node(p.Context, id)
}

func (r *resolver) resolveMultipleChoices(p gql.ResolveParams) (interface{}, error) {
	first := r.defaultPageSize
	if v, ok := p.Args["first"].(int); ok {
		if v < 0 {
			return nil, domain.NewValidationErrorWithValue("first", "must not be negative", v)
		}

		first = min(v, r.maxPageSize)
	}

	offset := 0
	if after, ok := p.Args["after"].(string); ok && after != "" {
		o, err := offsetFromCursor(after)
		if err != nil {
			return nil, err
		}

		offset = o + 1
	}

	page, err := r.svc.List(p.Context, offset, first)
	if err != nil {
		return nil, publicError(p.Context, err)
	}

	edges := make([]*relay.Edge, 0, len(page.Items))
	for i, item := range page.Items {
		edges = append(edges, &relay.Edge{
			Node:   item,
			Cursor: relay.OffsetToCursor(page.Offset + i),
		})
	}

	pageInfo := relay.PageInfo{
		HasPreviousPage: page.Offset > 0,
		HasNextPage:     page.Offset+len(edges) < page.TotalCount,
	}

	if len(edges) > 0 {
		pageInfo.StartCursor = edges[0].Cursor
		pageInfo.EndCursor = edges[len(edges)-1].Cursor
	}

	return map[string]interface{}{
		"edges":      edges,
		"pageInfo":   pageInfo,
		"totalCount": page.TotalCount,
	}, nil
}

// offsetFromCursor reverses relay.OffsetToCursor, rejecting anything it
// would not have produced. math.MaxInt is rejected too: no record can
// follow it, and offset+1 would wrap.
func offsetFromCursor(cursor string) (int, error) {
	offset, err := relay.CursorToOffset(relay.ConnectionCursor(cursor))
	if err != nil || offset < 0 || offset == math.MaxInt ||
		relay.OffsetToCursor(offset) != relay.ConnectionCursor(cursor) {
		return 0, domain.NewValidationError("after", "invalid cursor")
	}

	return offset, nil
}

// publicError passes domain errors through and hides everything else.
func publicError(ctx context.Context, err error) error {
	switch {
	case domain.IsValidation(err), domain.IsConflict(err), domain.IsUnavailable(err):
		return err
	default:
		logging.FromContext(ctx).ErrorContext(ctx, "graphql resolver failed",
			slog.String("error", err.Error()))

		return errInternal
	}
}
