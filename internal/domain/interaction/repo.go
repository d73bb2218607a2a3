package interaction

import "context"

type InteractionRepository interface {
	// ListBetween returns the rows where both sides of the pair are in the
	// drug list, in either orientation.
	ListBetween(ctx context.Context, drugs []string) ([]*Interaction, error)
	// ListForReplacement returns the rows pairing the replacement drug with
	// any portfolio drug, skipping every row that still involves the
	// replaced drug.
	ListForReplacement(ctx context.Context, replaced, replacement string, portfolio []string) ([]*Interaction, error)
	// DistinctDrugNames returns the union of both pair sides, NULLs
	// discarded.
	DistinctDrugNames(ctx context.Context) ([]string, error)
}
