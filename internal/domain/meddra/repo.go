package meddra

import "context"

type MappingRepository interface {
	// ForDescendants returns every mapping whose descendant is in the list,
	// regardless of ancestor class.
	ForDescendants(ctx context.Context, descendants []string) ([]Mapping, error)
	// HLGTForDescendants returns only the HLGT-tier mappings for the list.
	HLGTForDescendants(ctx context.Context, descendants []string) ([]Mapping, error)
}
