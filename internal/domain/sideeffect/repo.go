package sideeffect

import "context"

type SideEffectRepository interface {
	// ListBNF returns the BNF-sourced rows for the drugs, excluding
	// interaction-effect frequencies.
	ListBNF(ctx context.Context, drugs []string) ([]*SideEffect, error)
	// DistinctEventNames returns every distinct event name across all
	// sources, NULLs discarded.
	DistinctEventNames(ctx context.Context) ([]string, error)
}
