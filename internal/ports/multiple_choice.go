package ports

import (
	"context"

	"github.com/jsamuelsen/question-bank/internal/domain"
)

// MultipleChoiceRepository persists multiple-choice questions.
type MultipleChoiceRepository interface {
	// Create stores a new record, assigning ID, CreatedAt and UpdatedAt on mc.
	// Returns domain.ErrConflict or domain.ErrUnavailable on failure. Nothing
	// is written when an error is returned.
	Create(ctx context.Context, mc *domain.MultipleChoice) error

	// FindByIDs returns the records that exist among ids, in any order.
	// Missing ids are not an error.
	FindByIDs(ctx context.Context, ids []string) ([]*domain.MultipleChoice, error)

	// List returns up to limit records ordered by creation, skipping offset.
	List(ctx context.Context, offset, limit int) ([]*domain.MultipleChoice, error)

	// Count returns the number of stored records.
	Count(ctx context.Context) (int, error)
}

// MultipleChoiceLoader fetches single records through a request-scoped
// batch and cache.
type MultipleChoiceLoader interface {
	// Load returns the record with the given id, or nil if it does not exist.
	Load(ctx context.Context, id string) (*domain.MultipleChoice, error)

	// Prime makes records already read by other means available to Load
	// for the rest of the request.
	Prime(ctx context.Context, records ...*domain.MultipleChoice)
}

// CursorEncoder turns a record identity into an opaque, reversible token.
type CursorEncoder interface {
	// Encode returns the same token for the same typeName and id every time.
	Encode(typeName, id string) string

	// Decode reverses Encode. ok is false for tokens Encode never produced.
	Decode(cursor string) (typeName, id string, ok bool)
}
