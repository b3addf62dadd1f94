// Package loader provides request-scoped batching and caching of record
// lookups.
//
// A Loaders value lives for exactly one request. Every lookup issued while
// resolving that request is coalesced into as few repository calls as
// possible, and each id is fetched at most once. The HTTP layer attaches a
// fresh Loaders to each request context with WithContext; code below it reads
// it back through ContextLoader, which implements ports.MultipleChoiceLoader.
package loader

import (
	"context"
	"log/slog"
	"time"

	"github.com/graph-gophers/dataloader/v7"

	"github.com/jsamuelsen/question-bank/internal/domain"
	"github.com/jsamuelsen/question-bank/internal/platform/logging"
	"github.com/jsamuelsen/question-bank/internal/platform/telemetry"
	"github.com/jsamuelsen/question-bank/internal/ports"
)

type ctxKey struct{}

// Config tunes batching.
type Config struct {
	// Wait is how long a batch collects ids before it is dispatched.
	Wait time.Duration

	// BatchCapacity caps the ids in one batch. Zero means unbounded.
	BatchCapacity int
}

// Loaders holds the loaders of one request.
type Loaders struct {
	multipleChoice *dataloader.Loader[string, *domain.MultipleChoice]
}

// New creates the loaders for one request.
func New(repo ports.MultipleChoiceRepository, cfg Config, metrics *telemetry.QuestionMetrics) *Loaders {
	opts := []dataloader.Option[string, *domain.MultipleChoice]{
		dataloader.WithWait[string, *domain.MultipleChoice](cfg.Wait),
	}

	if cfg.BatchCapacity > 0 {
		opts = append(opts, dataloader.WithBatchCapacity[string, *domain.MultipleChoice](cfg.BatchCapacity))
	}

	return &Loaders{
		multipleChoice: dataloader.NewBatchedLoader(multipleChoiceBatch(repo, metrics), opts...),
	}
}

// FromContext returns the Loaders attached to ctx, or nil.
func FromContext(ctx context.Context) *Loaders {
	if ctx == nil {
		return nil
	}

	if l, ok := ctx.Value(ctxKey{}).(*Loaders); ok {
		return l
	}

	return nil
}

// WithContext attaches l to ctx.
func WithContext(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// MultipleChoice returns the record with id, or nil when none exists.
// Failed lookups are not cached, so a later call retries.
func (l *Loaders) MultipleChoice(ctx context.Context, id string) (*domain.MultipleChoice, error) {
	m, err := l.multipleChoice.Load(ctx, id)()
	if err != nil {
		l.multipleChoice.Clear(ctx, id)
		return nil, err
	}

	return m, nil
}

// Prime seeds the cache with records already read by other means.
func (l *Loaders) Prime(ctx context.Context, records ...*domain.MultipleChoice) {
	for _, m := range records {
		l.multipleChoice.Prime(ctx, m.ID, m)
	}
}

// multipleChoiceBatch answers one batch with a single repository call. The
// i-th result belongs to the i-th id; ids without a record get a nil result.
func multipleChoiceBatch(
	repo ports.MultipleChoiceRepository,
	metrics *telemetry.QuestionMetrics,
) dataloader.BatchFunc[string, *domain.MultipleChoice] {
	return func(ctx context.Context, ids []string) []*dataloader.Result[*domain.MultipleChoice] {
		logging.FromContext(ctx).Log(ctx, logging.LevelTrace, "loader batch",
			slog.Int("size", len(ids)),
		)
		metrics.RecordBatch(ctx, len(ids))

		results := make([]*dataloader.Result[*domain.MultipleChoice], len(ids))

		found, err := repo.FindByIDs(ctx, ids)
		if err != nil {
			for i := range results {
				results[i] = &dataloader.Result[*domain.MultipleChoice]{Error: err}
			}

			return results
		}

		byID := make(map[string]*domain.MultipleChoice, len(found))
		for _, m := range found {
			byID[m.ID] = m
		}

		for i, id := range ids {
			results[i] = &dataloader.Result[*domain.MultipleChoice]{Data: byID[id]}
		}

		return results
	}
}
