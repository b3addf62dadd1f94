// Package memory implements the multiple-choice repository on go-memdb.
//
// Records live for the lifetime of the process. Reads return copies, so
// callers can never mutate stored state.
package memory

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-memdb"

	"github.com/jsamuelsen/question-bank/internal/domain"
	"github.com/jsamuelsen/question-bank/internal/ports"
)

const (
	tableMultipleChoice = "multiple_choice"
	indexID             = "id"
	indexSeq            = "seq"
)

// row is the stored form. Seq preserves insertion order for listing.
type row struct {
	ID    string
	Seq   uint64
	Value domain.MultipleChoice
}

func schema() *memdb.DBSchema {
	return &memdb.DBSchema{
		Tables: map[string]*memdb.TableSchema{
			tableMultipleChoice: {
				Name: tableMultipleChoice,
				Indexes: map[string]*memdb.IndexSchema{
					indexID: {
						Name:    indexID,
						Unique:  true,
						Indexer: &memdb.StringFieldIndex{Field: "ID"},
					},
					indexSeq: {
						Name:    indexSeq,
						Unique:  true,
						Indexer: &memdb.UintFieldIndex{Field: "Seq"},
					},
				},
			},
		},
	}
}

// Store is an in-memory ports.MultipleChoiceRepository. Safe for concurrent use.
type Store struct {
	db    *memdb.MemDB
	seq   atomic.Uint64
	now   func() time.Time
	newID func() string
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator overrides the id source.
func WithIDGenerator(gen func() string) Option {
	return func(s *Store) { s.newID = gen }
}

// New creates an empty store.
func New(opts ...Option) (*Store, error) {
	db, err := memdb.NewMemDB(schema())
	if err != nil {
		return nil, fmt.Errorf("creating memdb: %w", err)
	}

	s := &Store{
		db:    db,
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

var (
	_ ports.MultipleChoiceRepository = (*Store)(nil)
	_ ports.HealthChecker            = (*Store)(nil)
)

// Create stores a copy of m and fills in its ID and timestamps. Either the
// whole record is stored or nothing is.
func (s *Store) Create(ctx context.Context, m *domain.MultipleChoice) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	now := s.now()

	stored := m.Clone()
	if stored.ID == "" {
		stored.ID = s.newID()
	}

	stored.CreatedAt = now
	stored.UpdatedAt = now

	txn := s.db.Txn(true)
	defer txn.Abort()

	existing, err := txn.First(tableMultipleChoice, indexID, stored.ID)
	if err != nil {
		return fmt.Errorf("looking up multiple choice %s: %w", stored.ID, err)
	}

	if existing != nil {
		return domain.NewConflictError(stored.ID, "")
	}

	err = txn.Insert(tableMultipleChoice, &row{
		ID:    stored.ID,
		Seq:   s.seq.Add(1),
		Value: *stored,
	})
	if err != nil {
		return fmt.Errorf("inserting multiple choice: %w", err)
	}

	txn.Commit()

	m.ID = stored.ID
	m.CreatedAt = stored.CreatedAt
	m.UpdatedAt = stored.UpdatedAt

	return nil
}

// FindByIDs returns the records matching ids in no particular order.
// Unknown ids are skipped.
func (s *Store) FindByIDs(ctx context.Context, ids []string) ([]*domain.MultipleChoice, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	txn := s.db.Txn(false)
	defer txn.Abort()

	found := make([]*domain.MultipleChoice, 0, len(ids))

	for _, id := range ids {
		raw, err := txn.First(tableMultipleChoice, indexID, id)
		if err != nil {
			return nil, fmt.Errorf("looking up multiple choice %s: %w", id, err)
		}

		if raw == nil {
			continue
		}

		found = append(found, raw.(*row).Value.Clone())
	}

	return found, nil
}

// List returns up to limit records in creation order, skipping offset.
func (s *Store) List(ctx context.Context, offset, limit int) ([]*domain.MultipleChoice, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	txn := s.db.Txn(false)
	defer txn.Abort()

	it, err := txn.Get(tableMultipleChoice, indexSeq)
	if err != nil {
		return nil, fmt.Errorf("listing multiple choices: %w", err)
	}

	page := make([]*domain.MultipleChoice, 0, limit)

	for raw, i := it.Next(), 0; raw != nil && len(page) < limit; raw, i = it.Next(), i+1 {
		if i < offset {
			continue
		}

		page = append(page, raw.(*row).Value.Clone())
	}

	return page, nil
}

// Count returns the number of stored records.
func (s *Store) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	txn := s.db.Txn(false)
	defer txn.Abort()

	it, err := txn.Get(tableMultipleChoice, indexID)
	if err != nil {
		return 0, fmt.Errorf("counting multiple choices: %w", err)
	}

	n := 0
	for raw := it.Next(); raw != nil; raw = it.Next() {
		n++
	}

	return n, nil
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string { return "store" }

// Check implements ports.HealthChecker. The memory store is always ready.
func (s *Store) Check(context.Context) error { return nil }
