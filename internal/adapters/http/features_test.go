package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/cucumber/godog"
	"github.com/graphql-go/relay"

	"github.com/jsamuelsen/question-bank/internal/adapters/graphql"
	"github.com/jsamuelsen/question-bank/internal/adapters/http/handlers"
	"github.com/jsamuelsen/question-bank/internal/adapters/persistence/memory"
	"github.com/jsamuelsen/question-bank/internal/app"
	"github.com/jsamuelsen/question-bank/internal/app/loader"
	"github.com/jsamuelsen/question-bank/internal/domain"
	"github.com/jsamuelsen/question-bank/internal/platform/config"
)

// TestMultipleChoiceAddFeatures runs the feature files against the full
// HTTP stack over a memory store.
func TestMultipleChoiceAddFeatures(t *testing.T) {
	suite := godog.TestSuite{
		Name:                "multiple-choice-add",
		ScenarioInitializer: initializeAddScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"testdata/features"},
			Strict:   true,
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero godog status")
	}
}

func initializeAddScenario(sc *godog.ScenarioContext) {
	s := &addScenario{}

	sc.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		return ctx, s.reset()
	})

	sc.Step(`^an empty question bank$`, s.givenEmptyBank)
	sc.Step(`^the store is unavailable because "([^"]*)"$`, s.givenStoreUnavailable)
	sc.Step(`^the store fails with "([^"]*)"$`, s.givenStoreFails)
	sc.Step(`^created questions cannot be read back$`, s.givenReadsMiss)

	sc.Step(`^I add a multiple choice question:$`, s.whenAdd)
	sc.Step(`^I add a multiple choice question with the question "([^"]*)"$`, s.whenAddQuestion)
	sc.Step(`^I look up the node with the edge cursor$`, s.whenLookUpNode)

	sc.Step(`^the response status is (\d+)$`, s.thenStatus)
	sc.Step(`^the payload has no error$`, s.thenNoError)
	sc.Step(`^the payload error is "([^"]*)"$`, s.thenError)
	sc.Step(`^the payload edge is null$`, s.thenEdgeNull)
	sc.Step(`^the clientMutationId is echoed$`, s.thenClientMutationID)
	sc.Step(`^the edge cursor is the global id of the stored question$`, s.thenCursorIsGlobalID)
	sc.Step(`^the edge node field "([^"]*)" is "([^"]*)"$`, s.thenEdgeNodeField)
	sc.Step(`^the node field "([^"]*)" is "([^"]*)"$`, s.thenNodeField)
	sc.Step(`^the question bank holds (\d+) questions?$`, s.thenCount)
	sc.Step(`^the response has a GraphQL error mentioning "([^"]*)"$`, s.thenGraphQLError)
}

// scenarioStore lets scenarios break the memory store.
type scenarioStore struct {
	*memory.Store

	createErr error
	hideReads bool
}

func (s *scenarioStore) Create(ctx context.Context, m *domain.MultipleChoice) error {
	if s.createErr != nil {
		return s.createErr
	}

	return s.Store.Create(ctx, m)
}

func (s *scenarioStore) FindByIDs(ctx context.Context, ids []string) ([]*domain.MultipleChoice, error) {
	if s.hideReads {
		return nil, nil
	}

	return s.Store.FindByIDs(ctx, ids)
}

type addScenario struct {
	store    *scenarioStore
	handler  http.Handler
	response *httptest.ResponseRecorder
	result   map[string]any
	node     map[string]any
}

const clientMutationID = "feature-client"

func (s *addScenario) reset() error {
	mem, err := memory.New()
	if err != nil {
		return err
	}

	s.store = &scenarioStore{Store: mem}
	s.response = nil
	s.result = nil
	s.node = nil

	cl := loader.NewContextLoader(s.store, loader.Config{Wait: time.Millisecond}, nil)
	svc := app.NewMultipleChoiceService(s.store, cl, graphql.NewGlobalIDs(), &app.MultipleChoiceServiceConfig{
		Logger: discardLogger(),
	})

	schema, err := graphql.NewSchema(svc, graphql.Config{})
	if err != nil {
		return err
	}

	srv := New(serverConfig(0), discardLogger())
	SetupRouter(srv.Engine(), RouterConfig{
		ServiceName:    "question-bank",
		GraphQLPath:    "/graphql",
		RequestTimeout: 5 * time.Second,
		Auth:           &config.AuthConfig{},
		GraphQL:        handlers.NewGraphQLHandler(schema),
		Loaders:        cl,
	})

	s.handler = srv.Engine()

	return nil
}

func (s *addScenario) givenEmptyBank() error {
	n, err := s.store.Count(context.Background())
	if err != nil {
		return err
	}

	if n != 0 {
		return fmt.Errorf("expected an empty store, found %d records", n)
	}

	return nil
}

func (s *addScenario) givenStoreUnavailable(reason string) error {
	s.store.createErr = domain.NewUnavailableError("store", reason)
	return nil
}

func (s *addScenario) givenStoreFails(msg string) error {
	s.store.createErr = errors.New(msg)
	return nil
}

func (s *addScenario) givenReadsMiss() error {
	s.store.hideReads = true
	return nil
}

func validInput() map[string]any {
	return map[string]any{
		"clientMutationId": clientMutationID,
		"question":         "Which is correct?",
		"statementA":       "first",
		"statementB":       "second",
		"statementC":       "third",
		"statementD":       "fourth",
		"statementE":       "fifth",
		"correctAnswer":    "A",
	}
}

func (s *addScenario) whenAdd(table *godog.Table) error {
	input := validInput()

	for _, row := range table.Rows {
		if len(row.Cells) != 2 {
			return fmt.Errorf("expected field and value columns, got %d cells", len(row.Cells))
		}

		input[row.Cells[0].Value] = row.Cells[1].Value
	}

	return s.add(input)
}

func (s *addScenario) whenAddQuestion(question string) error {
	input := validInput()
	input["question"] = question

	return s.add(input)
}

func (s *addScenario) add(input map[string]any) error {
	return s.post(`mutation Add($input: MultipleChoiceAddInput!) {
  MultipleChoiceAdd(input: $input) {
    clientMutationId
    error
    multipleChoiceEdge {
      cursor
      node { id question statementA statementB statementC statementD statementE correctAnswer }
    }
  }
}`, map[string]any{"input": input})
}

func (s *addScenario) post(query string, variables map[string]any) error {
	body, err := json.Marshal(map[string]any{"query": query, "variables": variables})
	if err != nil {
		return err
	}

	req := httptest.NewRequest(http.MethodPost, "/graphql", strings.NewReader(string(body)))
	req.Header.Set("Content-Type", "application/json")

	s.response = httptest.NewRecorder()
	s.handler.ServeHTTP(s.response, req)

	s.result = nil

	return json.Unmarshal(s.response.Body.Bytes(), &s.result)
}

func (s *addScenario) whenLookUpNode() error {
	edge, err := s.edge()
	if err != nil {
		return err
	}

	if edge == nil {
		return errors.New("no edge to look up")
	}

	cursor, _ := edge["cursor"].(string)

	err = s.post(`query Node($id: ID!) { node(id: $id) { id ... on MultipleChoice { question } } }`,
		map[string]any{"id": cursor})
	if err != nil {
		return err
	}

	data, _ := s.result["data"].(map[string]any)
	s.node, _ = data["node"].(map[string]any)

	if s.node == nil {
		return fmt.Errorf("node %q not found: %s", cursor, s.response.Body.String())
	}

	if s.node["id"] != cursor {
		return fmt.Errorf("node id %v does not match cursor %q", s.node["id"], cursor)
	}

	return nil
}

func (s *addScenario) payload() (map[string]any, error) {
	if s.result == nil {
		return nil, errors.New("no response recorded")
	}

	data, _ := s.result["data"].(map[string]any)

	payload, _ := data["MultipleChoiceAdd"].(map[string]any)
	if payload == nil {
		return nil, fmt.Errorf("no payload in response: %s", s.response.Body.String())
	}

	return payload, nil
}

func (s *addScenario) edge() (map[string]any, error) {
	payload, err := s.payload()
	if err != nil {
		return nil, err
	}

	edge, _ := payload["multipleChoiceEdge"].(map[string]any)

	return edge, nil
}

func (s *addScenario) thenStatus(want int) error {
	if s.response == nil {
		return errors.New("no response recorded")
	}

	if s.response.Code != want {
		return fmt.Errorf("expected status %d, got %d", want, s.response.Code)
	}

	return nil
}

func (s *addScenario) thenNoError() error {
	payload, err := s.payload()
	if err != nil {
		return err
	}

	if payload["error"] != nil {
		return fmt.Errorf("expected no error, got %v", payload["error"])
	}

	return nil
}

func (s *addScenario) thenError(want string) error {
	payload, err := s.payload()
	if err != nil {
		return err
	}

	if payload["error"] != want {
		return fmt.Errorf("expected error %q, got %v", want, payload["error"])
	}

	return nil
}

func (s *addScenario) thenEdgeNull() error {
	payload, err := s.payload()
	if err != nil {
		return err
	}

	if v, ok := payload["multipleChoiceEdge"]; !ok || v != nil {
		return fmt.Errorf("expected a null edge, got %v", v)
	}

	return nil
}

func (s *addScenario) thenClientMutationID() error {
	payload, err := s.payload()
	if err != nil {
		return err
	}

	if payload["clientMutationId"] != clientMutationID {
		return fmt.Errorf("expected clientMutationId %q, got %v", clientMutationID, payload["clientMutationId"])
	}

	return nil
}

func (s *addScenario) thenCursorIsGlobalID() error {
	edge, err := s.edge()
	if err != nil {
		return err
	}

	if edge == nil {
		return errors.New("expected an edge")
	}

	stored, err := s.store.List(context.Background(), 0, 1)
	if err != nil {
		return err
	}

	if len(stored) != 1 {
		return fmt.Errorf("expected one stored question, got %d", len(stored))
	}

	want := relay.ToGlobalID(domain.MultipleChoiceTypeName, stored[0].ID)
	if edge["cursor"] != want {
		return fmt.Errorf("expected cursor %q, got %v", want, edge["cursor"])
	}

	node, _ := edge["node"].(map[string]any)
	if node == nil || node["id"] != want {
		return fmt.Errorf("expected node id %q, got %v", want, node)
	}

	return nil
}

func (s *addScenario) thenEdgeNodeField(field, want string) error {
	edge, err := s.edge()
	if err != nil {
		return err
	}

	node, _ := edge["node"].(map[string]any)
	if node == nil {
		return errors.New("expected an edge node")
	}

	if node[field] != want {
		return fmt.Errorf("expected %s %q, got %v", field, want, node[field])
	}

	return nil
}

func (s *addScenario) thenNodeField(field, want string) error {
	if s.node == nil {
		return errors.New("no node looked up")
	}

	if s.node[field] != want {
		return fmt.Errorf("expected %s %q, got %v", field, want, s.node[field])
	}

	return nil
}

func (s *addScenario) thenCount(want int) error {
	n, err := s.store.Count(context.Background())
	if err != nil {
		return err
	}

	if n != want {
		return fmt.Errorf("expected %d stored questions, got %d", want, n)
	}

	return nil
}

func (s *addScenario) thenGraphQLError(fragment string) error {
	if s.result == nil {
		return errors.New("no response recorded")
	}

	errs, _ := s.result["errors"].([]any)
	for _, e := range errs {
		m, _ := e.(map[string]any)
		if msg, _ := m["message"].(string); strings.Contains(msg, fragment) {
			return nil
		}
	}

	return fmt.Errorf("expected a GraphQL error mentioning %q, got %s", fragment, s.response.Body.String())
}
