package interaction

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

type interactionRepoPG struct{ pool *pgxpool.Pool }

func NewInteractionRepoPG(pool *pgxpool.Pool) InteractionRepository {
	return &interactionRepoPG{pool: pool}
}

func (r *interactionRepoPG) conn(ctx context.Context) queryable {
	if c := db.ConnFromContext(ctx); c != nil {
		return c
	}
	return r.pool
}

const ddiCols = `drug_a_concept_name, drug_b_concept_name, event_concept_name,
	severity_bnf, severity_ansm, severity_code, evidence, description`

func (r *interactionRepoPG) scanRows(rows pgx.Rows) ([]*Interaction, error) {
	defer rows.Close()
	var items []*Interaction
	for rows.Next() {
		var in Interaction
		if err := rows.Scan(&in.DrugA, &in.DrugB, &in.Event,
			&in.SeverityBNF, &in.SeverityANSM, &in.SeverityCode, &in.Evidence, &in.Description); err != nil {
			return nil, err
		}
		items = append(items, &in)
	}
	return items, rows.Err()
}

func (r *interactionRepoPG) ListBetween(ctx context.Context, drugs []string) ([]*Interaction, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT `+ddiCols+` FROM all_drug_drug_interactions
		WHERE drug_a_concept_name = ANY($1)
		  AND drug_b_concept_name = ANY($1)`, drugs)
	if err != nil {
		return nil, err
	}
	return r.scanRows(rows)
}

func (r *interactionRepoPG) ListForReplacement(ctx context.Context, replaced, replacement string, portfolio []string) ([]*Interaction, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT `+ddiCols+` FROM all_drug_drug_interactions
		WHERE drug_a_concept_name <> $1
		  AND drug_b_concept_name <> $1
		  AND ((drug_a_concept_name = $2 AND drug_b_concept_name = ANY($3))
		    OR (drug_b_concept_name = $2 AND drug_a_concept_name = ANY($3)))`,
		replaced, replacement, portfolio)
	if err != nil {
		return nil, err
	}
	return r.scanRows(rows)
}

func (r *interactionRepoPG) DistinctDrugNames(ctx context.Context) ([]string, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT drug_a_concept_name FROM all_drug_drug_interactions
		WHERE drug_a_concept_name IS NOT NULL
		UNION
		SELECT drug_b_concept_name FROM all_drug_drug_interactions
		WHERE drug_b_concept_name IS NOT NULL`)
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
