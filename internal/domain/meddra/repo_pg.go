package meddra

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

type mappingRepoPG struct{ pool *pgxpool.Pool }

func NewMappingRepoPG(pool *pgxpool.Pool) MappingRepository {
	return &mappingRepoPG{pool: pool}
}

func (r *mappingRepoPG) conn(ctx context.Context) queryable {
	if c := db.ConnFromContext(ctx); c != nil {
		return c
	}
	return r.pool
}

const mappingCols = `descendant_concept_name, ancestor_concept_name, ancestor_concept_class_id`

func (r *mappingRepoPG) scanRows(rows pgx.Rows) ([]Mapping, error) {
	defer rows.Close()
	var items []Mapping
	for rows.Next() {
		var m Mapping
		if err := rows.Scan(&m.Descendant, &m.Ancestor, &m.AncestorClass); err != nil {
			return nil, err
		}
		items = append(items, m)
	}
	return items, rows.Err()
}

func (r *mappingRepoPG) ForDescendants(ctx context.Context, descendants []string) ([]Mapping, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT `+mappingCols+` FROM pt_to_hlt_or_hlgt
		WHERE descendant_concept_name = ANY($1)`, descendants)
	if err != nil {
		return nil, err
	}
	return r.scanRows(rows)
}

func (r *mappingRepoPG) HLGTForDescendants(ctx context.Context, descendants []string) ([]Mapping, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT `+mappingCols+` FROM pt_to_hlt_or_hlgt
		WHERE descendant_concept_name = ANY($1)
		  AND ancestor_concept_class_id = $2`, descendants, ancestorClassHLGT)
	if err != nil {
		return nil, err
	}
	return r.scanRows(rows)
}
