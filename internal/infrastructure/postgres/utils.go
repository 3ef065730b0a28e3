package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jhoicas/pedidos-api/internal/domain"
)

// Querier lo cumplen *pgxpool.Pool y pgx.Tx: los repositorios sirven con pool o dentro de una tx.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	return pgCode(err) == "23505"
}

// isCheckViolation verifica si un error es una violación de CHECK (23514), p. ej. existencia < 0.
func isCheckViolation(err error) bool {
	return pgCode(err) == "23514"
}

// isInvalidID verifica si el id no tiene formato UUID (22P02): se trata como inexistente.
func isInvalidID(err error) bool {
	return pgCode(err) == "22P02"
}

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// mustAffect devuelve ErrNotFound si el comando no tocó ninguna fila.
func mustAffect(tag pgconn.CommandTag, what, id string) error {
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %s: %w", what, id, domain.ErrNotFound)
	}
	return nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike neutraliza los comodines de LIKE para buscar el texto literal.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// wordPrefixFilter arma la condición "cada término es prefijo de alguna palabra de column".
// column ya está normalizada con palabras separadas por un espacio. Los argumentos se
// numeran desde firstArg.
func wordPrefixFilter(column, texto string, firstArg int) (string, []any) {
	terms := strings.Fields(texto)
	conds := make([]string, 0, len(terms))
	args := make([]any, 0, len(terms))
	for i, t := range terms {
		n := firstArg + i
		conds = append(conds, fmt.Sprintf(
			`(%[1]s LIKE $%[2]d || '%%' ESCAPE '\' OR %[1]s LIKE '%% ' || $%[2]d || '%%' ESCAPE '\')`, column, n))
		args = append(args, escapeLike(t))
	}
	return strings.Join(conds, " AND "), args
}
