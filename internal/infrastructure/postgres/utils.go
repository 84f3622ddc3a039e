package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE de Postgres para violaciones de constraint UNIQUE.
const uniqueViolationCode = "23505"

// isUniqueViolation detecta el choque contra un índice único (email de users,
// name de categories y de products) para que los repos lo normalicen a ErrDuplicate.
// Funciona también sobre errores ya envueltos con %w.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
