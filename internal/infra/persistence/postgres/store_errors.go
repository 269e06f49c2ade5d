package postgres

import (
	"context"

	domainerrors "foodiecircle/internal/domain/errors"
	"foodiecircle/internal/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes surfaced with a readable cause.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgNotNullViolation    = "23502"
	pgCheckViolation      = "23514"
)

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}

func isUniqueConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) || pgErrorCode(err) == pgUniqueViolation
}

// storeError folds every driver failure into the single StoreError kind,
// naming the violated constraint class when there is one.
func storeError(op, collection string, err error) error {
	switch {
	case isUniqueConstraintViolation(err):
		err = errors.Wrap(err, "unique constraint violation")
	case errors.Is(err, gorm.ErrForeignKeyViolated) || pgErrorCode(err) == pgForeignKeyViolation:
		err = errors.Wrap(err, "foreign key constraint violation")
	case pgErrorCode(err) == pgNotNullViolation:
		err = errors.Wrap(err, "not null constraint violation")
	case errors.Is(err, gorm.ErrCheckConstraintViolated) || pgErrorCode(err) == pgCheckViolation:
		err = errors.Wrap(err, "check constraint violation")
	case errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled):
		err = errors.Wrap(err, "query interrupted")
	}

	return domainerrors.NewStoreError(op, collection, err)
}
