package drugclass

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

type drugClassRepoPG struct{ pool *pgxpool.Pool }

func NewDrugClassRepoPG(pool *pgxpool.Pool) DrugClassRepository {
	return &drugClassRepoPG{pool: pool}
}

func (r *drugClassRepoPG) conn(ctx context.Context) queryable {
	if c := db.ConnFromContext(ctx); c != nil {
		return c
	}
	return r.pool
}

func (r *drugClassRepoPG) ListByLoweredNames(ctx context.Context, lowered []string) ([]*DrugClass, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT drug_name, bnf_order, title
		FROM bnf_drug_classes
		WHERE lower(drug_name) = ANY($1)`, lowered)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*DrugClass
	for rows.Next() {
		var dc DrugClass
		if err := rows.Scan(&dc.DrugName, &dc.BNFOrder, &dc.Title); err != nil {
			return nil, err
		}
		items = append(items, &dc)
	}
	return items, rows.Err()
}
