package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/sbilibin2017/gw-game-roster/internal/logger"
)

// logQuery logs the query in a single line with its args, result and error.
func logQuery(ctx context.Context, query string, args []any, result any, err error) {
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		logger.FromContext(ctx).Errorw("query failed",
			"query", strings.Join(strings.Fields(query), " "),
			"args", args,
			"error", err,
		)
		return
	}
	logger.FromContext(ctx).Debugw("query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", result,
	)
}

// isUniqueViolation reports whether err is a postgres unique constraint violation.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
