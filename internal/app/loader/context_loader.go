package loader

import (
	"context"

	"github.com/jsamuelsen/question-bank/internal/domain"
	"github.com/jsamuelsen/question-bank/internal/platform/telemetry"
	"github.com/jsamuelsen/question-bank/internal/ports"
)

// ContextLoader resolves lookups through the Loaders attached to the request
// context. Outside a request, for example in background jobs or tests, each
// call gets a throwaway Loaders so behaviour stays the same without caching.
type ContextLoader struct {
	repo    ports.MultipleChoiceRepository
	cfg     Config
	metrics *telemetry.QuestionMetrics
}

var _ ports.MultipleChoiceLoader = (*ContextLoader)(nil)

// NewContextLoader creates a ContextLoader. repo, cfg and metrics are used
// only for the fallback Loaders.
func NewContextLoader(repo ports.MultipleChoiceRepository, cfg Config, metrics *telemetry.QuestionMetrics) *ContextLoader {
	return &ContextLoader{repo: repo, cfg: cfg, metrics: metrics}
}

// ForRequest creates the Loaders for a new request.
func (c *ContextLoader) ForRequest() *Loaders {
	return New(c.repo, c.cfg, c.metrics)
}

// Load implements ports.MultipleChoiceLoader.
func (c *ContextLoader) Load(ctx context.Context, id string) (*domain.MultipleChoice, error) {
	return c.loaders(ctx).MultipleChoice(ctx, id)
}

// Prime seeds the request cache. Without request Loaders it does nothing.
func (c *ContextLoader) Prime(ctx context.Context, records ...*domain.MultipleChoice) {
	if l := FromContext(ctx); l != nil {
		l.Prime(ctx, records...)
	}
}

func (c *ContextLoader) loaders(ctx context.Context) *Loaders {
	if l := FromContext(ctx); l != nil {
		return l
	}

	return c.ForRequest()
}
