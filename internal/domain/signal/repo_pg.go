package signal

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

type rateRepoPG struct{ pool *pgxpool.Pool }

func NewRateRepoPG(pool *pgxpool.Pool) RateRepository {
	return &rateRepoPG{pool: pool}
}

func (r *rateRepoPG) conn(ctx context.Context) queryable {
	if c := db.ConnFromContext(ctx); c != nil {
		return c
	}
	return r.pool
}

func (r *rateRepoPG) scanWeighted(rows pgx.Rows) ([]WeightedRate, error) {
	defer rows.Close()
	var items []WeightedRate
	for rows.Next() {
		var w WeightedRate
		if err := rows.Scan(&w.SideEffect, &w.DrugName, &w.CombinedRate); err != nil {
			return nil, err
		}
		items = append(items, w)
	}
	return items, rows.Err()
}

func (r *rateRepoPG) scanNames(rows pgx.Rows) ([]string, error) {
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

func (r *rateRepoPG) WeightedBySideEffect(ctx context.Context, sideEffect string, drugs []string) ([]WeightedRate, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT side_effect, drug_name, combined_rate
		FROM barkla_weighted_rate
		WHERE side_effect = $1
		  AND drug_name = ANY($2)`, sideEffect, drugs)
	if err != nil {
		return nil, err
	}
	return r.scanWeighted(rows)
}

func (r *rateRepoPG) WeightedByDrugs(ctx context.Context, drugs []string) ([]WeightedRate, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT side_effect, drug_name, combined_rate
		FROM barkla_weighted_rate
		WHERE drug_name = ANY($1)`, drugs)
	if err != nil {
		return nil, err
	}
	return r.scanWeighted(rows)
}

func (r *rateRepoPG) OccurrencesByDrugs(ctx context.Context, drugs []string) ([]OccurrenceRate, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT drug_name, side_effect, drug_side_effect_occurrence_count,
			case_count_with_drug, rate, wilson_interval
		FROM faers_counts_2024
		WHERE drug_name = ANY($1)`, drugs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []OccurrenceRate
	for rows.Next() {
		var o OccurrenceRate
		if err := rows.Scan(&o.DrugName, &o.SideEffect, &o.OccurrenceCount,
			&o.CaseCount, &o.Rate, &o.WilsonInterval); err != nil {
			return nil, err
		}
		items = append(items, o)
	}
	return items, rows.Err()
}

func (r *rateRepoPG) DistinctWeightedDrugs(ctx context.Context) ([]string, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT DISTINCT drug_name FROM barkla_weighted_rate
		WHERE drug_name IS NOT NULL`)
	if err != nil {
		return nil, err
	}
	return r.scanNames(rows)
}

func (r *rateRepoPG) DistinctWeightedSideEffects(ctx context.Context) ([]string, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT DISTINCT side_effect FROM barkla_weighted_rate
		WHERE side_effect IS NOT NULL`)
	if err != nil {
		return nil, err
	}
	return r.scanNames(rows)
}

func (r *rateRepoPG) DistinctOccurrenceDrugs(ctx context.Context) ([]string, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT DISTINCT drug_name FROM faers_counts_2024
		WHERE drug_name IS NOT NULL`)
	if err != nil {
		return nil, err
	}
	return r.scanNames(rows)
}
