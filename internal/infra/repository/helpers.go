package repository

import (
	"errors"

	"cast-dispatch/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgconn"
)

func isNoRows(err error) bool {
	return pgconv.IsNoRows(err)
}

const (
	pgErrCodeUniqueViolation     = "23505"
	pgErrCodeForeignKeyViolation = "23503"
)

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgErrCodeForeignKeyViolation
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgErrCodeUniqueViolation
}
