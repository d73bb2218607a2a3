package indication

import "context"

type IndicationRepository interface {
	// ListForDrugs returns the rows for the drugs, excluded indication
	// filtered out.
	ListForDrugs(ctx context.Context, drugs []string) ([]*Indication, error)
	// MatchRows returns the (drug, indication) rows eligible for an
	// alternative search: indication in the required set, drug not the
	// replaced one, NULL drugs discarded. Duplicate rows are preserved.
	MatchRows(ctx context.Context, replacedDrug string, indications []string) ([]*Indication, error)
}
