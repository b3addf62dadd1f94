package app

import (
	"context"
	"errors"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/jsamuelsen/question-bank/internal/domain"
	"github.com/jsamuelsen/question-bank/internal/platform/logging"
	"github.com/jsamuelsen/question-bank/internal/platform/telemetry"
	"github.com/jsamuelsen/question-bank/internal/ports"
)

// createFailedMessage is reported when the store fails in a way that has no
// client-facing description.
const createFailedMessage = "failed to create multiple choice"

// AddOutcome tags the result of Add.
type AddOutcome int

const (
	// AddCreated means the record was written. The edge may still be nil
	// when the record could not be read back.
	AddCreated AddOutcome = iota + 1

	// AddFailed means nothing was written and Error explains why.
	AddFailed
)

// MultipleChoiceEdge pairs a record with its opaque cursor.
type MultipleChoiceEdge struct {
	Cursor string
	Node   *domain.MultipleChoice
}

// AddResult is the outcome of Add. Exactly one of Edge and Error is set,
// except that a created record that could not be read back has neither.
type AddResult struct {
	Outcome AddOutcome
	Edge    *MultipleChoiceEdge
	Error   string
}

// MultipleChoicePage is one page of records in creation order.
type MultipleChoicePage struct {
	Items      []*domain.MultipleChoice
	Offset     int
	TotalCount int
}

// MultipleChoiceService creates and reads multiple-choice questions.
// It holds no per-request state and is safe for concurrent use.
type MultipleChoiceService struct {
	repo    ports.MultipleChoiceRepository
	loader  ports.MultipleChoiceLoader
	cursors ports.CursorEncoder
	rule    domain.AnswerRule
	metrics *telemetry.QuestionMetrics
	tracer  trace.Tracer
	logger  *slog.Logger
}

// MultipleChoiceServiceConfig holds optional settings. The zero value checks
// no answer rule and records no metrics.
type MultipleChoiceServiceConfig struct {
	Rule    domain.AnswerRule
	Metrics *telemetry.QuestionMetrics
	Logger  *slog.Logger
}

// NewMultipleChoiceService wires the service to its collaborators.
func NewMultipleChoiceService(
	repo ports.MultipleChoiceRepository,
	loader ports.MultipleChoiceLoader,
	cursors ports.CursorEncoder,
	cfg *MultipleChoiceServiceConfig,
) *MultipleChoiceService {
	if cfg == nil {
		cfg = &MultipleChoiceServiceConfig{}
	}

	logger := slog.Default()
	if cfg.Logger != nil {
		logger = cfg.Logger
	}

	rule := cfg.Rule
	if rule == "" {
		rule = domain.AnswerRuleNone
	}

	return &MultipleChoiceService{
		repo:    repo,
		loader:  loader,
		cursors: cursors,
		rule:    rule,
		metrics: cfg.Metrics,
		tracer:  telemetry.Tracer(),
		logger:  logger.With(slog.String("component", "app.MultipleChoiceService")),
	}
}

// Add stores a new question built verbatim from in and returns its edge.
//
// The create call is the only failure point: if it fails, nothing is stored
// and the result carries the error message. After a successful create the
// record is read back through the request loader; a miss or a read error
// leaves Edge nil without turning the result into a failure.
func (s *MultipleChoiceService) Add(ctx context.Context, in domain.MultipleChoiceInput) AddResult {
	ctx, span := s.tracer.Start(ctx, "MultipleChoiceAdd")
	defer span.End()

	logger := s.requestLogger(ctx).With(slog.String("method", "Add"))

	record := domain.NewMultipleChoice(in)

	if err := s.rule.Check(record); err != nil {
		return s.fail(ctx, span, logger, err)
	}

	if err := s.repo.Create(ctx, record); err != nil {
		return s.fail(ctx, span, logger, err)
	}

	id := record.ID
	logger = logger.With(slog.String("id", id))
	span.SetAttributes(attribute.String("multiple_choice.id", id))

	node, err := s.loader.Load(ctx, id)
	if err != nil {
		logger.WarnContext(ctx, "reading back created multiple choice failed",
			slog.String("error", err.Error()))
	}

	if node == nil {
		if err == nil {
			logger.WarnContext(ctx, "created multiple choice not found on read back")
		}

		span.SetAttributes(attribute.String("outcome", telemetry.OutcomeNotRead))
		s.metrics.RecordMutation(ctx, telemetry.OutcomeNotRead)

		return AddResult{Outcome: AddCreated}
	}

	logger.InfoContext(ctx, "multiple choice created")
	span.SetAttributes(attribute.String("outcome", telemetry.OutcomeCreated))
	s.metrics.RecordMutation(ctx, telemetry.OutcomeCreated)

	return AddResult{
		Outcome: AddCreated,
		Edge: &MultipleChoiceEdge{
			Cursor: s.cursors.Encode(domain.MultipleChoiceTypeName, node.ID),
			Node:   node,
		},
	}
}

func (s *MultipleChoiceService) fail(ctx context.Context, span trace.Span, logger *slog.Logger, err error) AddResult {
	span.RecordError(err)
	span.SetStatus(codes.Error, "create failed")
	span.SetAttributes(attribute.String("outcome", telemetry.OutcomeFailed))
	s.metrics.RecordMutation(ctx, telemetry.OutcomeFailed)

	logger.WarnContext(ctx, "multiple choice not created", slog.String("error", err.Error()))

	return AddResult{Outcome: AddFailed, Error: failureMessage(err)}
}

// failureMessage returns the client-facing text for err. Domain errors are
// written for clients; anything else may carry driver details and is replaced.
func failureMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrConflict),
		errors.Is(err, domain.ErrUnavailable):
		return err.Error()
	case errors.Is(err, context.DeadlineExceeded):
		return "multiple choice create timed out"
	case errors.Is(err, context.Canceled):
		return "multiple choice create canceled"
	default:
		return createFailedMessage
	}
}

// Get returns the record with id through the request loader, or nil.
func (s *MultipleChoiceService) Get(ctx context.Context, id string) (*domain.MultipleChoice, error) {
	return s.loader.Load(ctx, id)
}

// List returns up to limit records starting at offset, plus the total count.
// The count and the page are read concurrently. Listed records are primed
// into the request loader.
func (s *MultipleChoiceService) List(ctx context.Context, offset, limit int) (*MultipleChoicePage, error) {
	if offset < 0 {
		return nil, domain.NewValidationErrorWithValue("offset", "must not be negative", offset)
	}

	if limit < 0 {
		return nil, domain.NewValidationErrorWithValue("limit", "must not be negative", limit)
	}

	page := &MultipleChoicePage{
		Items:  []*domain.MultipleChoice{},
		Offset: offset,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		total, err := s.repo.Count(gctx)
		page.TotalCount = total

		return err
	})

	if limit > 0 {
		g.Go(func() error {
			items, err := s.repo.List(gctx, offset, limit)
			if items != nil {
				page.Items = items
			}

			return err
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if len(page.Items) > 0 {
		s.loader.Prime(ctx, page.Items...)
	}

	return page, nil
}

func (s *MultipleChoiceService) requestLogger(ctx context.Context) *slog.Logger {
	if logging.InContext(ctx) {
		return logging.FromContext(ctx).With(slog.String("component", "app.MultipleChoiceService"))
	}

	return s.logger
}
