package signal

import "context"

// RateRepository serves both rate tables. The weighted table stores
// lower-case drug and side-effect names; callers normalize inputs before
// querying.
type RateRepository interface {
	WeightedBySideEffect(ctx context.Context, sideEffect string, drugs []string) ([]WeightedRate, error)
	WeightedByDrugs(ctx context.Context, drugs []string) ([]WeightedRate, error)
	OccurrencesByDrugs(ctx context.Context, drugs []string) ([]OccurrenceRate, error)

	DistinctWeightedDrugs(ctx context.Context) ([]string, error)
	DistinctWeightedSideEffects(ctx context.Context) ([]string, error)
	DistinctOccurrenceDrugs(ctx context.Context) ([]string, error)
}
