package db

import (
	"context"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
)

type contextKey string

const ConnKey contextKey = "db_conn"

// SearchPath lists the schemas holding the compendium, concept-hierarchy,
// and clinical tables, in lookup order. Queries throughout the repos name
// bare tables and rely on this path.
const SearchPath = "drug_interaction_compendia_v2, cdmv5, mimic_iii_clinical_database_1_4, public"

// SessionMiddleware scopes one pooled connection to each request: acquire
// on entry, pin the search path, release unconditionally on exit. Repos
// pick the connection up via ConnFromContext and fall back to the pool
// when no request scope exists.
func SessionMiddleware(pool *pgxpool.Pool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			conn, err := pool.Acquire(ctx)
			if err != nil {
				return echo.NewHTTPError(http.StatusServiceUnavailable, "database unavailable")
			}
			defer conn.Release()

			if _, err := conn.Exec(ctx, "SET search_path TO "+SearchPath); err != nil {
				return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
			}

			ctx = context.WithValue(ctx, ConnKey, conn)
			c.SetRequest(c.Request().WithContext(ctx))
			c.Set("db", conn)

			return next(c)
		}
	}
}

// ConnFromContext retrieves the request-scoped database connection, or nil
// outside a request.
func ConnFromContext(ctx context.Context) *pgxpool.Conn {
	conn, _ := ctx.Value(ConnKey).(*pgxpool.Conn)
	return conn
}
