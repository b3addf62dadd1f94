package domain

import (
	"fmt"
	"strings"
	"time"
)

// MultipleChoiceTypeName is the object type name used for global IDs and cursors.
const MultipleChoiceTypeName = "MultipleChoice"

// StatementLabels are the labels of the five statements, in order.
var StatementLabels = []string{"A", "B", "C", "D", "E"}

// MultipleChoice is a question with five labelled statements and a marker
// naming the correct one. The store assigns ID and the timestamps.
type MultipleChoice struct {
	ID string

	Question   string
	StatementA string
	StatementB string
	StatementC string
	StatementD string
	StatementE string

	// CorrectAnswer is free text unless an AnswerRule other than
	// AnswerRuleNone is configured.
	CorrectAnswer string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// MultipleChoiceInput carries the client-supplied fields of a new question.
type MultipleChoiceInput struct {
	Question      string
	StatementA    string
	StatementB    string
	StatementC    string
	StatementD    string
	StatementE    string
	CorrectAnswer string
}

// NewMultipleChoice builds an unsaved record from input. Values are copied
// verbatim: no trimming, no case folding.
func NewMultipleChoice(in MultipleChoiceInput) *MultipleChoice {
	return &MultipleChoice{
		Question:      in.Question,
		StatementA:    in.StatementA,
		StatementB:    in.StatementB,
		StatementC:    in.StatementC,
		StatementD:    in.StatementD,
		StatementE:    in.StatementE,
		CorrectAnswer: in.CorrectAnswer,
	}
}

// Statements returns the five statement texts in label order.
func (m *MultipleChoice) Statements() []string {
	return []string{m.StatementA, m.StatementB, m.StatementC, m.StatementD, m.StatementE}
}

// Clone returns a copy that shares no state with m.
func (m *MultipleChoice) Clone() *MultipleChoice {
	if m == nil {
		return nil
	}

	c := *m

	return &c
}

// AnswerRule decides how CorrectAnswer relates to the statements.
type AnswerRule string

const (
	// AnswerRuleNone accepts any correct answer text.
	AnswerRuleNone AnswerRule = "none"

	// AnswerRuleLabel requires one of the labels A through E.
	AnswerRuleLabel AnswerRule = "label"

	// AnswerRuleStatement requires the exact text of one of the statements.
	AnswerRuleStatement AnswerRule = "statement"
)

// ParseAnswerRule converts a configuration value into an AnswerRule.
// An empty value means AnswerRuleNone.
func ParseAnswerRule(s string) (AnswerRule, error) {
	switch AnswerRule(strings.ToLower(s)) {
	case "", AnswerRuleNone:
		return AnswerRuleNone, nil
	case AnswerRuleLabel:
		return AnswerRuleLabel, nil
	case AnswerRuleStatement:
		return AnswerRuleStatement, nil
	default:
		return "", fmt.Errorf("unknown correct answer rule %q", s)
	}
}

// Check validates m.CorrectAnswer against the rule.
// Comparison is exact; the stored values are never normalised.
func (r AnswerRule) Check(m *MultipleChoice) error {
	switch r {
	case AnswerRuleLabel:
		for _, label := range StatementLabels {
			if m.CorrectAnswer == label {
				return nil
			}
		}

		return NewValidationErrorWithValue("correctAnswer",
			"must be one of "+strings.Join(StatementLabels, ", "), m.CorrectAnswer)

	case AnswerRuleStatement:
		for _, statement := range m.Statements() {
			if m.CorrectAnswer == statement {
				return nil
			}
		}

		return NewValidationErrorWithValue("correctAnswer",
			"must match one of the statements", m.CorrectAnswer)

	default:
		return nil
	}
}
