package postgres

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier abstrae pool y tx para que los repositorios funcionen dentro o fuera de una transacción.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// psql constructor de consultas con placeholders $1, $2...
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// visibleToCompany filas compartidas (company_id NULL) o de la empresa indicada.
func visibleToCompany(column, companyID string) sq.Or {
	return sq.Or{sq.Eq{column: nil}, sq.Eq{column: companyID}}
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// nullString convierte "" en NULL para columnas UUID opcionales.
func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func fromNull(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
