package interaction

import "context"

type Service struct {
	repo InteractionRepository
}

func NewService(repo InteractionRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListBetween(ctx context.Context, drugs []string) ([]*Interaction, error) {
	items, err := s.repo.ListBetween(ctx, drugs)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []*Interaction{}
	}
	return items, nil
}

// ReplacementCheck returns the interactions a candidate replacement would
// introduce against the remaining portfolio. Rows involving the replaced
// drug are excluded: that drug is leaving the portfolio.
func (s *Service) ReplacementCheck(ctx context.Context, replaced, replacement string, portfolio []string) ([]*Interaction, error) {
	items, err := s.repo.ListForReplacement(ctx, replaced, replacement, portfolio)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []*Interaction{}
	}
	return items, nil
}

func (s *Service) DrugNames(ctx context.Context) ([]string, error) {
	names, err := s.repo.DistinctDrugNames(ctx)
	if err != nil {
		return nil, err
	}
	if names == nil {
		names = []string{}
	}
	return names, nil
}
