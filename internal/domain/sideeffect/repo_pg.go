package sideeffect

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hannahwhyatt/ddi-api/internal/platform/db"
)

type queryable interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

type sideEffectRepoPG struct{ pool *pgxpool.Pool }

func NewSideEffectRepoPG(pool *pgxpool.Pool) SideEffectRepository {
	return &sideEffectRepoPG{pool: pool}
}

func (r *sideEffectRepoPG) conn(ctx context.Context) queryable {
	if c := db.ConnFromContext(ctx); c != nil {
		return c
	}
	return r.pool
}

func (r *sideEffectRepoPG) ListBNF(ctx context.Context, drugs []string) ([]*SideEffect, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT drug_concept_name, event_concept_name, frequency, source
		FROM single_drug_positive_controls
		WHERE drug_concept_name = ANY($1)
		  AND source = $2
		  AND frequency <> $3`, drugs, sourceBNF, interactionEffectFrequency)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*SideEffect
	for rows.Next() {
		var se SideEffect
		if err := rows.Scan(&se.DrugConceptName, &se.EventConceptName, &se.Frequency, &se.Source); err != nil {
			return nil, err
		}
		items = append(items, &se)
	}
	return items, rows.Err()
}

func (r *sideEffectRepoPG) DistinctEventNames(ctx context.Context) ([]string, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT DISTINCT event_concept_name
		FROM single_drug_positive_controls
		WHERE event_concept_name IS NOT NULL`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, err
		}
		names = append(names, n)
	}
	return names, rows.Err()
}
