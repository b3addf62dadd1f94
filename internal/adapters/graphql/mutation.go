package graphql

import (
	"context"

	gql "github.com/graphql-go/graphql"
	"github.com/graphql-go/relay"

	"github.com/jsamuelsen/question-bank/internal/app"
)

// multipleChoiceAddMutation builds MultipleChoiceAdd. A failed create is
// reported in the payload's error field, never as a GraphQL error; only
// input that fails validation produces one.
func multipleChoiceAddMutation(r *resolver, edgeType *gql.Object) *gql.Field {
	required := func() *gql.InputObjectFieldConfig {
		return &gql.InputObjectFieldConfig{Type: gql.NewNonNull(gql.String)}
	}

	return relay.MutationWithClientMutationID(relay.MutationConfig{
		Name: "MultipleChoiceAdd",
		InputFields: gql.InputObjectConfigFieldMap{
			"question":      required(),
			"statementA":    required(),
			"statementB":    required(),
			"statementC":    required(),
			"statementD":    required(),
			"statementE":    required(),
			"correctAnswer": required(),
		},
		OutputFields: gql.Fields{
			"error":              &gql.Field{Type: gql.String},
			"multipleChoiceEdge": &gql.Field{Type: edgeType},
		},
		MutateAndGetPayload: func(input map[string]interface{}, _ gql.ResolveInfo, ctx context.Context) (map[string]interface{}, error) {
			in, err := decodeAddInput(input)
			if err != nil {
				return nil, err
			}

			return addPayload(r.svc.Add(ctx, in)), nil
		},
	})
}

func addPayload(res app.AddResult) map[string]interface{} {
	payload := map[string]interface{}{}

	switch res.Outcome {
	case app.AddFailed:
		payload["error"] = res.Error
	case app.AddCreated:
		if res.Edge != nil {
			payload["multipleChoiceEdge"] = &relay.Edge{
				Node:   res.Edge.Node,
				Cursor: relay.ConnectionCursor(res.Edge.Cursor),
			}
		}
	}

	return payload
}
