package app

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/question-bank/internal/domain"
	"github.com/jsamuelsen/question-bank/internal/mocks"
	"github.com/jsamuelsen/question-bank/internal/platform/logging"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleInput() domain.MultipleChoiceInput {
	return domain.MultipleChoiceInput{
		Question:      "Which planet is largest?",
		StatementA:    "Mercury",
		StatementB:    "Jupiter",
		StatementC:    "Mars",
		StatementD:    "Venus",
		StatementE:    "Earth",
		CorrectAnswer: "B",
	}
}

func stored(in domain.MultipleChoiceInput, id string) *domain.MultipleChoice {
	m := domain.NewMultipleChoice(in)
	m.ID = id
	m.CreatedAt = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	m.UpdatedAt = m.CreatedAt

	return m
}

// assignID mimics a store: it fills in the id of the record it is given.
func assignID(id string) func(context.Context, *domain.MultipleChoice) error {
	return func(_ context.Context, m *domain.MultipleChoice) error {
		m.ID = id
		return nil
	}
}

type serviceMocks struct {
	repo    *mocks.MockMultipleChoiceRepository
	loader  *mocks.MockMultipleChoiceLoader
	cursors *mocks.MockCursorEncoder
}

func newService(t *testing.T, rule domain.AnswerRule) (*MultipleChoiceService, serviceMocks) {
	t.Helper()

	m := serviceMocks{
		repo:    mocks.NewMockMultipleChoiceRepository(t),
		loader:  mocks.NewMockMultipleChoiceLoader(t),
		cursors: mocks.NewMockCursorEncoder(t),
	}

	svc := NewMultipleChoiceService(m.repo, m.loader, m.cursors, &MultipleChoiceServiceConfig{
		Rule:   rule,
		Logger: discardLogger(),
	})

	return svc, m
}

func TestNewMultipleChoiceService_Defaults(t *testing.T) {
	svc := NewMultipleChoiceService(nil, nil, nil, nil)

	assert.Equal(t, domain.AnswerRuleNone, svc.rule)
	assert.NotNil(t, svc.logger)
	assert.NotNil(t, svc.tracer)
}

func TestMultipleChoiceService_Add(t *testing.T) {
	in := sampleInput()

	tests := []struct {
		name       string
		rule       domain.AnswerRule
		setup      func(m serviceMocks)
		wantResult AddResult
	}{
		{
			name: "created with edge",
			setup: func(m serviceMocks) {
				m.repo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(r *domain.MultipleChoice) bool {
					return r.ID == "" && r.Question == in.Question && r.CorrectAnswer == in.CorrectAnswer
				})).RunAndReturn(assignID("id-1")).Once()
				m.loader.EXPECT().Load(mock.Anything, "id-1").Return(stored(in, "id-1"), nil).Once()
				m.cursors.EXPECT().Encode(domain.MultipleChoiceTypeName, "id-1").Return("cursor-1").Once()
			},
			wantResult: AddResult{
				Outcome: AddCreated,
				Edge:    &MultipleChoiceEdge{Cursor: "cursor-1", Node: stored(in, "id-1")},
			},
		},
		{
			name: "create fails with domain error",
			setup: func(m serviceMocks) {
				m.repo.EXPECT().Create(mock.Anything, mock.Anything).
					Return(domain.NewUnavailableError("postgres", "connection refused")).Once()
			},
			wantResult: AddResult{Outcome: AddFailed, Error: "postgres unavailable: connection refused"},
		},
		{
			name: "create fails with driver error",
			setup: func(m serviceMocks) {
				m.repo.EXPECT().Create(mock.Anything, mock.Anything).
					Return(errors.New("insert: pq: relation does not exist")).Once()
			},
			wantResult: AddResult{Outcome: AddFailed, Error: createFailedMessage},
		},
		{
			name: "create times out",
			setup: func(m serviceMocks) {
				m.repo.EXPECT().Create(mock.Anything, mock.Anything).
					Return(context.DeadlineExceeded).Once()
			},
			wantResult: AddResult{Outcome: AddFailed, Error: "multiple choice create timed out"},
		},
		{
			name: "load miss leaves edge nil without error",
			setup: func(m serviceMocks) {
				m.repo.EXPECT().Create(mock.Anything, mock.Anything).RunAndReturn(assignID("id-2")).Once()
				m.loader.EXPECT().Load(mock.Anything, "id-2").Return(nil, nil).Once()
			},
			wantResult: AddResult{Outcome: AddCreated},
		},
		{
			name: "load error degrades to nil edge",
			setup: func(m serviceMocks) {
				m.repo.EXPECT().Create(mock.Anything, mock.Anything).RunAndReturn(assignID("id-3")).Once()
				m.loader.EXPECT().Load(mock.Anything, "id-3").
					Return(nil, domain.NewUnavailableError("postgres", "reset")).Once()
			},
			wantResult: AddResult{Outcome: AddCreated},
		},
		{
			name: "label rule accepts label",
			rule: domain.AnswerRuleLabel,
			setup: func(m serviceMocks) {
				m.repo.EXPECT().Create(mock.Anything, mock.Anything).RunAndReturn(assignID("id-4")).Once()
				m.loader.EXPECT().Load(mock.Anything, "id-4").Return(stored(in, "id-4"), nil).Once()
				m.cursors.EXPECT().Encode(domain.MultipleChoiceTypeName, "id-4").Return("cursor-4").Once()
			},
			wantResult: AddResult{
				Outcome: AddCreated,
				Edge:    &MultipleChoiceEdge{Cursor: "cursor-4", Node: stored(in, "id-4")},
			},
		},
		{
			name: "statement rule rejects label without writing",
			rule: domain.AnswerRuleStatement,
			setup: func(serviceMocks) {
				// Create must not be called.
			},
			wantResult: AddResult{
				Outcome: AddFailed,
				Error:   "validation failed for correctAnswer: must match one of the statements",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newService(t, tt.rule)
			tt.setup(m)

			got := svc.Add(context.Background(), in)

			assert.Equal(t, tt.wantResult, got)
		})
	}
}

func TestMultipleChoiceService_Add_VerbatimFields(t *testing.T) {
	svc, m := newService(t, domain.AnswerRuleNone)

	in := sampleInput()
	in.Question = " What? "
	in.StatementC = "\tTabbed\n"
	in.CorrectAnswer = "c"

	var created *domain.MultipleChoice

	m.repo.EXPECT().Create(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, r *domain.MultipleChoice) error {
			created = r.Clone()
			r.ID = "id-v"
			return nil
		}).Once()
	m.loader.EXPECT().Load(mock.Anything, "id-v").Return(stored(in, "id-v"), nil).Once()
	m.cursors.EXPECT().Encode(mock.Anything, mock.Anything).Return("c").Once()

	svc.Add(context.Background(), in)

	require.NotNil(t, created)
	assert.Equal(t, " What? ", created.Question)
	assert.Equal(t, "\tTabbed\n", created.StatementC)
	assert.Equal(t, "c", created.CorrectAnswer)
}

func TestMultipleChoiceService_Add_UsesRequestLogger(t *testing.T) {
	svc, m := newService(t, domain.AnswerRuleNone)

	m.repo.EXPECT().Create(mock.Anything, mock.Anything).RunAndReturn(assignID("id-l")).Once()
	m.loader.EXPECT().Load(mock.Anything, "id-l").Return(nil, nil).Once()

	var buf bytes.Buffer

	ctx := logging.WithContext(context.Background(), slog.New(slog.NewJSONHandler(&buf, nil)))
	ctx = logging.WithRequestID(ctx, "req-9")

	svc.Add(ctx, sampleInput())

	assert.Contains(t, buf.String(), "created multiple choice not found on read back")
	assert.Contains(t, buf.String(), `"request_id":"req-9"`)
	assert.Contains(t, buf.String(), `"id":"id-l"`)
}

func TestMultipleChoiceService_Get(t *testing.T) {
	svc, m := newService(t, domain.AnswerRuleNone)

	want := stored(sampleInput(), "id-g")
	m.loader.EXPECT().Load(mock.Anything, "id-g").Return(want, nil).Once()

	got, err := svc.Get(context.Background(), "id-g")

	require.NoError(t, err)
	assert.Same(t, want, got)
}

func TestMultipleChoiceService_List(t *testing.T) {
	items := []*domain.MultipleChoice{stored(sampleInput(), "a"), stored(sampleInput(), "b")}

	t.Run("page is primed into loader", func(t *testing.T) {
		svc, m := newService(t, domain.AnswerRuleNone)

		m.repo.EXPECT().Count(mock.Anything).Return(5, nil).Once()
		m.repo.EXPECT().List(mock.Anything, 1, 2).Return(items, nil).Once()
		m.loader.EXPECT().Prime(mock.Anything, items[0], items[1]).Return().Once()

		page, err := svc.List(context.Background(), 1, 2)

		require.NoError(t, err)
		assert.Equal(t, &MultipleChoicePage{Items: items, Offset: 1, TotalCount: 5}, page)
	})

	t.Run("offset past the end primes nothing", func(t *testing.T) {
		svc, m := newService(t, domain.AnswerRuleNone)

		m.repo.EXPECT().Count(mock.Anything).Return(2, nil).Once()
		m.repo.EXPECT().List(mock.Anything, 2, 10).Return([]*domain.MultipleChoice{}, nil).Once()

		page, err := svc.List(context.Background(), 2, 10)

		require.NoError(t, err)
		assert.Empty(t, page.Items)
		assert.Equal(t, 2, page.TotalCount)
	})

	t.Run("negative arguments", func(t *testing.T) {
		svc, _ := newService(t, domain.AnswerRuleNone)

		_, err := svc.List(context.Background(), -1, 10)
		assert.True(t, domain.IsValidation(err))

		_, err = svc.List(context.Background(), 0, -1)
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("zero limit only counts", func(t *testing.T) {
		svc, m := newService(t, domain.AnswerRuleNone)

		m.repo.EXPECT().Count(mock.Anything).Return(4, nil).Once()

		page, err := svc.List(context.Background(), 0, 0)

		require.NoError(t, err)
		assert.Empty(t, page.Items)
		assert.Equal(t, 4, page.TotalCount)
	})

	t.Run("count error", func(t *testing.T) {
		svc, m := newService(t, domain.AnswerRuleNone)

		m.repo.EXPECT().Count(mock.Anything).Return(0, domain.NewUnavailableError("postgres", "down")).Once()
		m.repo.EXPECT().List(mock.Anything, 0, 10).Return(nil, nil).Maybe()

		_, err := svc.List(context.Background(), 0, 10)
		assert.True(t, domain.IsUnavailable(err))
	})

	t.Run("list error", func(t *testing.T) {
		svc, m := newService(t, domain.AnswerRuleNone)

		m.repo.EXPECT().Count(mock.Anything).Return(3, nil).Once()
		m.repo.EXPECT().List(mock.Anything, 0, 10).Return(nil, errors.New("boom")).Once()

		_, err := svc.List(context.Background(), 0, 10)
		assert.EqualError(t, err, "boom")
	})
}
