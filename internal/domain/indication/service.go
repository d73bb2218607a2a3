package indication

import "context"

type Service struct {
	repo IndicationRepository
}

func NewService(repo IndicationRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListForDrug(ctx context.Context, drug string) ([]*Indication, error) {
	items, err := s.repo.ListForDrugs(ctx, []string{drug})
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []*Indication{}
	}
	return items, nil
}

// ListGrouped returns the rows for a drug list keyed by drug name, in the
// shape clients use to show per-drug indication panels.
func (s *Service) ListGrouped(ctx context.Context, drugs []string) (map[string][]*Indication, error) {
	items, err := s.repo.ListForDrugs(ctx, drugs)
	if err != nil {
		return nil, err
	}
	grouped := make(map[string][]*Indication)
	for _, in := range items {
		if in.DrugConceptName == nil {
			continue
		}
		grouped[*in.DrugConceptName] = append(grouped[*in.DrugConceptName], in)
	}
	return grouped, nil
}

// AlternativeSearch finds drugs whose matching rows cover the required
// indication set. A drug qualifies when its matching row count equals the
// length of the required list; neither side is deduplicated first, so a
// drug with two rows for one indication can qualify against a two-entry
// list. The replaced drug never appears in the result.
func (s *Service) AlternativeSearch(ctx context.Context, replacedDrug string, required []string) ([]AlternativeDrug, error) {
	rows, err := s.repo.MatchRows(ctx, replacedDrug, required)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	var order []string
	for _, row := range rows {
		if row.DrugConceptName == nil {
			continue
		}
		drug := *row.DrugConceptName
		if counts[drug] == 0 {
			order = append(order, drug)
		}
		counts[drug]++
	}

	result := []AlternativeDrug{}
	for _, drug := range order {
		if counts[drug] == len(required) {
			result = append(result, AlternativeDrug{DrugConceptName: drug})
		}
	}
	return result, nil
}
