package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jsamuelsen/question-bank/internal/domain"
)

// SQLSTATE codes the store distinguishes.
const (
	codeUniqueViolation      = "23505"
	codeAdminShutdown        = "57P01"
	codeCannotConnectNow     = "57P03"
	codeTooManyConnections   = "53300"
	classConnectionException = "08"
)

const serviceName = "postgres"

// mapError translates driver errors into domain errors so callers never
// depend on pgx types. op names the failed operation.
func mapError(op string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w", op, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == codeUniqueViolation:
			return domain.NewConflictError("", pgErr.ConstraintName)
		case pgErr.Code == codeAdminShutdown,
			pgErr.Code == codeCannotConnectNow,
			pgErr.Code == codeTooManyConnections,
			len(pgErr.Code) == 5 && pgErr.Code[:2] == classConnectionException:
			return &domain.UnavailableError{Store: serviceName, Reason: pgErr.Message, Cause: err}
		default:
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) || pgconn.Timeout(err) {
		return &domain.UnavailableError{Store: serviceName, Reason: err.Error(), Cause: err}
	}

	return fmt.Errorf("%s: %w", op, err)
}
