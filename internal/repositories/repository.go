package repositories

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	apperrors "github.com/tatthien/church-equipment/pkg/errors"
)

const uniqueViolationCode = "23505"

// translateError maps driver-level failures onto the service error taxonomy:
// unique-constraint violations become ErrConflict, missing rows ErrNotFound.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return apperrors.ErrConflict
	}
	return err
}
