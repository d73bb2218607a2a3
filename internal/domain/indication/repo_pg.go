package indication

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

type indicationRepoPG struct{ pool *pgxpool.Pool }

func NewIndicationRepoPG(pool *pgxpool.Pool) IndicationRepository {
	return &indicationRepoPG{pool: pool}
}

func (r *indicationRepoPG) conn(ctx context.Context) queryable {
	if c := db.ConnFromContext(ctx); c != nil {
		return c
	}
	return r.pool
}

func (r *indicationRepoPG) scanRows(rows pgx.Rows) ([]*Indication, error) {
	defer rows.Close()
	var items []*Indication
	for rows.Next() {
		var in Indication
		if err := rows.Scan(&in.DrugConceptName, &in.EventConceptName); err != nil {
			return nil, err
		}
		items = append(items, &in)
	}
	return items, rows.Err()
}

func (r *indicationRepoPG) ListForDrugs(ctx context.Context, drugs []string) ([]*Indication, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT drug_concept_name, event_concept_name
		FROM sider_drug_indications
		WHERE drug_concept_name = ANY($1)
		  AND event_concept_name <> $2`, drugs, excludedIndication)
	if err != nil {
		return nil, err
	}
	return r.scanRows(rows)
}

func (r *indicationRepoPG) MatchRows(ctx context.Context, replacedDrug string, indications []string) ([]*Indication, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT drug_concept_name, event_concept_name
		FROM sider_drug_indications
		WHERE event_concept_name = ANY($1)
		  AND event_concept_name <> $2
		  AND drug_concept_name <> $3
		  AND drug_concept_name IS NOT NULL`, indications, excludedIndication, replacedDrug)
	if err != nil {
		return nil, err
	}
	return r.scanRows(rows)
}
