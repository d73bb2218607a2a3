package sideeffect

import "context"

// AncestorResolver filters a list of preferred terms down to those with
// concept-hierarchy ancestors. Satisfied by the meddra service.
type AncestorResolver interface {
	Labels(ctx context.Context, ptList []string) ([]string, error)
}

type Service struct {
	repo     SideEffectRepository
	resolver AncestorResolver
}

func NewService(repo SideEffectRepository, resolver AncestorResolver) *Service {
	return &Service{repo: repo, resolver: resolver}
}

func (s *Service) List(ctx context.Context, drugs []string) ([]*SideEffect, error) {
	items, err := s.repo.ListBNF(ctx, drugs)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []*SideEffect{}
	}
	return items, nil
}

// VocabularyNames is the side-effect vocabulary: every distinct event name
// that resolves through the concept hierarchy.
func (s *Service) VocabularyNames(ctx context.Context) ([]string, error) {
	names, err := s.repo.DistinctEventNames(ctx)
	if err != nil {
		return nil, err
	}
	labels, err := s.resolver.Labels(ctx, names)
	if err != nil {
		return nil, err
	}
	if labels == nil {
		labels = []string{}
	}
	return labels, nil
}
