// Package postgres implements the multiple-choice repository on PostgreSQL.
//
// Connections come from a pgx pool; GORM runs on top of it through the pgx
// database/sql bridge, so pool sizing and health checks stay with pgx.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/jsamuelsen/question-bank/internal/domain"
	"github.com/jsamuelsen/question-bank/internal/ports"
)

var errInvalidDSN = errors.New("invalid postgres dsn")

// Config holds the connection settings of the store.
type Config struct {
	DSN                string
	MaxConns           int32
	MinConns           int32
	ConnectTimeout     time.Duration
	AutoMigrate        bool
	SlowQueryThreshold time.Duration
}

// Store is a PostgreSQL ports.MultipleChoiceRepository.
type Store struct {
	pool  *pgxpool.Pool
	sqlDB *sql.DB
	db    *gorm.DB
}

var (
	_ ports.MultipleChoiceRepository = (*Store)(nil)
	_ ports.HealthChecker            = (*Store)(nil)
)

// Open connects to the database, verifies the connection and, when
// cfg.AutoMigrate is set, creates or updates the multiple_choices table.
func Open(ctx context.Context, cfg Config) (*Store, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		// The parse error can echo the DSN, password included.
		return nil, errInvalidDSN
	}

	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}

	poolCfg.MinConns = cfg.MinConns

	if cfg.ConnectTimeout > 0 {
		poolCfg.ConnConfig.ConnectTimeout = cfg.ConnectTimeout
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, mapError("creating pool", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, mapError("pinging postgres", err)
	}

	sqlDB := stdlib.OpenDBFromPool(pool)

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:  newQueryLogger(cfg.SlowQueryThreshold),
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		_ = sqlDB.Close()
		pool.Close()

		return nil, fmt.Errorf("opening gorm session: %w", err)
	}

	s := &Store{pool: pool, sqlDB: sqlDB, db: db}

	if cfg.AutoMigrate {
		if err := db.WithContext(ctx).AutoMigrate(&multipleChoiceRow{}); err != nil {
			s.Close()
			return nil, mapError("migrating multiple_choices", err)
		}
	}

	return s, nil
}

// Create inserts m in a single statement and fills in its ID and timestamps.
func (s *Store) Create(ctx context.Context, m *domain.MultipleChoice) error {
	r := rowFromDomain(m)
	if r.ID == "" {
		r.ID = uuid.NewString()
	}

	if err := s.db.WithContext(ctx).Create(r).Error; err != nil {
		return mapError("inserting multiple choice", err)
	}

	m.ID = r.ID
	m.CreatedAt = r.CreatedAt.UTC()
	m.UpdatedAt = r.UpdatedAt.UTC()

	return nil
}

// FindByIDs returns the records matching ids in no particular order.
// Ids that are not UUIDs cannot exist and are skipped.
func (s *Store) FindByIDs(ctx context.Context, ids []string) ([]*domain.MultipleChoice, error) {
	valid := make([]string, 0, len(ids))

	for _, id := range ids {
		if _, err := uuid.Parse(id); err == nil {
			valid = append(valid, id)
		}
	}

	if len(valid) == 0 {
		return []*domain.MultipleChoice{}, nil
	}

	var rows []multipleChoiceRow
	if err := s.db.WithContext(ctx).Where("id IN ?", valid).Find(&rows).Error; err != nil {
		return nil, mapError("loading multiple choices", err)
	}

	return toDomainSlice(rows), nil
}

// List returns up to limit records in creation order, skipping offset.
func (s *Store) List(ctx context.Context, offset, limit int) ([]*domain.MultipleChoice, error) {
	var rows []multipleChoiceRow

	err := s.db.WithContext(ctx).
		Order("seq ASC").
		Offset(offset).
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, mapError("listing multiple choices", err)
	}

	return toDomainSlice(rows), nil
}

// Count returns the number of stored records.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int64

	if err := s.db.WithContext(ctx).Model(&multipleChoiceRow{}).Count(&n).Error; err != nil {
		return 0, mapError("counting multiple choices", err)
	}

	return int(n), nil
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string { return "store" }

// Check implements ports.HealthChecker by pinging the pool.
func (s *Store) Check(ctx context.Context) error {
	return mapError("pinging postgres", s.pool.Ping(ctx))
}

// Close releases every pooled connection.
func (s *Store) Close() {
	_ = s.sqlDB.Close()
	s.pool.Close()
}

func toDomainSlice(rows []multipleChoiceRow) []*domain.MultipleChoice {
	out := make([]*domain.MultipleChoice, len(rows))
	for i := range rows {
		out[i] = rows[i].toDomain()
	}

	return out
}
