package graphql

import (
	"errors"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/jsamuelsen/question-bank/internal/domain"
)

// addInput mirrors MultipleChoiceAddInput. The schema marks every field
// String!, which rejects null but not the empty string.
type addInput struct {
	Question      string `json:"question"      validate:"required"`
	StatementA    string `json:"statementA"    validate:"required"`
	StatementB    string `json:"statementB"    validate:"required"`
	StatementC    string `json:"statementC"    validate:"required"`
	StatementD    string `json:"statementD"    validate:"required"`
	StatementE    string `json:"statementE"    validate:"required"`
	CorrectAnswer string `json:"correctAnswer" validate:"required"`
}

var (
	inputValidator     *validator.Validate
	inputValidatorOnce sync.Once
)

func validate() *validator.Validate {
	inputValidatorOnce.Do(func() {
		inputValidator = validator.New()
		inputValidator.RegisterTagNameFunc(func(fld reflect.StructField) string {
			return strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		})
	})

	return inputValidator
}

// decodeAddInput copies the mutation input verbatim and rejects empty fields.
func decodeAddInput(input map[string]any) (domain.MultipleChoiceInput, error) {
	str := func(key string) string {
		s, _ := input[key].(string)
		return s
	}

	in := addInput{
		Question:      str("question"),
		StatementA:    str("statementA"),
		StatementB:    str("statementB"),
		StatementC:    str("statementC"),
		StatementD:    str("statementD"),
		StatementE:    str("statementE"),
		CorrectAnswer: str("correctAnswer"),
	}

	if err := validate().Struct(in); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return domain.MultipleChoiceInput{}, err
		}

		fields := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			fields = append(fields, fe.Field())
		}

		sort.Strings(fields)

		return domain.MultipleChoiceInput{}, domain.NewValidationError(strings.Join(fields, ", "), "must not be empty")
	}

	return domain.MultipleChoiceInput{
		Question:      in.Question,
		StatementA:    in.StatementA,
		StatementB:    in.StatementB,
		StatementC:    in.StatementC,
		StatementD:    in.StatementD,
		StatementE:    in.StatementE,
		CorrectAnswer: in.CorrectAnswer,
	}, nil
}
