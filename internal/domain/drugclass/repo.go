package drugclass

import "context"

type DrugClassRepository interface {
	// ListByLoweredNames matches lower(drug_name) against an
	// already-lower-cased list.
	ListByLoweredNames(ctx context.Context, lowered []string) ([]*DrugClass, error)
}
