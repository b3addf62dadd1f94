package postgres

import (
	"time"

	"github.com/jsamuelsen/question-bank/internal/domain"
)

// multipleChoiceRow is the table mapping. It never leaves this package.
type multipleChoiceRow struct {
	ID  string `gorm:"column:id;type:uuid;primaryKey"`
	Seq int64  `gorm:"column:seq;autoIncrement;uniqueIndex"`

	Question      string `gorm:"column:question;type:text;not null"`
	StatementA    string `gorm:"column:statement_a;type:text;not null"`
	StatementB    string `gorm:"column:statement_b;type:text;not null"`
	StatementC    string `gorm:"column:statement_c;type:text;not null"`
	StatementD    string `gorm:"column:statement_d;type:text;not null"`
	StatementE    string `gorm:"column:statement_e;type:text;not null"`
	CorrectAnswer string `gorm:"column:correct_answer;type:text;not null"`

	CreatedAt time.Time `gorm:"column:created_at;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

func (multipleChoiceRow) TableName() string { return "multiple_choices" }

func rowFromDomain(m *domain.MultipleChoice) *multipleChoiceRow {
	return &multipleChoiceRow{
		ID:            m.ID,
		Question:      m.Question,
		StatementA:    m.StatementA,
		StatementB:    m.StatementB,
		StatementC:    m.StatementC,
		StatementD:    m.StatementD,
		StatementE:    m.StatementE,
		CorrectAnswer: m.CorrectAnswer,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func (r *multipleChoiceRow) toDomain() *domain.MultipleChoice {
	return &domain.MultipleChoice{
		ID:            r.ID,
		Question:      r.Question,
		StatementA:    r.StatementA,
		StatementB:    r.StatementB,
		StatementC:    r.StatementC,
		StatementD:    r.StatementD,
		StatementE:    r.StatementE,
		CorrectAnswer: r.CorrectAnswer,
		CreatedAt:     r.CreatedAt.UTC(),
		UpdatedAt:     r.UpdatedAt.UTC(),
	}
}
