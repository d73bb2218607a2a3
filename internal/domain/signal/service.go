package signal

import (
	"context"
	"sort"
	"strings"

	"github.com/hannahwhyatt/ddi-api/internal/platform/httpx"
)

const (
	topSideEffects        = 10
	topSideEffectsPerDrug = 5
)

type Service struct {
	repo RateRepository
}

func NewService(repo RateRepository) *Service {
	return &Service{repo: repo}
}

// RankCulpritDrugs scores each portfolio drug by its share of the summed
// weighted rate for the side effect, most likely culprit first. Ties keep
// retrieval order. A zero total leaves every score at 0.
func (s *Service) RankCulpritDrugs(ctx context.Context, sideEffect string, drugs []string) ([]CulpritScore, error) {
	rows, err := s.repo.WeightedBySideEffect(ctx, strings.ToLower(sideEffect), httpx.LowerAll(drugs))
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return []CulpritScore{}, nil
	}

	var total float64
	for _, row := range rows {
		total += row.CombinedRate
	}

	scores := make([]CulpritScore, len(rows))
	for i, row := range rows {
		score := 0.0
		if total != 0 {
			score = row.CombinedRate / total
		}
		scores[i] = CulpritScore{DrugName: row.DrugName, CombinedRate: row.CombinedRate, Score: score}
	}

	sort.SliceStable(scores, func(i, j int) bool { return scores[i].Score > scores[j].Score })
	return scores, nil
}

// MostLikelySideEffects sums the weighted rates per side effect across the
// portfolio and returns the top entries, each attributed to the single
// drug contributing the highest rate. Group order follows first
// appearance in the retrieved rows, so equal totals rank deterministically.
func (s *Service) MostLikelySideEffects(ctx context.Context, drugs []string) ([]LikelySideEffect, error) {
	rows, err := s.repo.WeightedByDrugs(ctx, httpx.LowerAll(drugs))
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return []LikelySideEffect{}, nil
	}

	totals := make(map[string]float64)
	topDrug := make(map[string]string)
	topRate := make(map[string]float64)
	var order []string
	for _, row := range rows {
		if _, seen := totals[row.SideEffect]; !seen {
			order = append(order, row.SideEffect)
			topDrug[row.SideEffect] = row.DrugName
			topRate[row.SideEffect] = row.CombinedRate
		} else if row.CombinedRate > topRate[row.SideEffect] {
			topDrug[row.SideEffect] = row.DrugName
			topRate[row.SideEffect] = row.CombinedRate
		}
		totals[row.SideEffect] += row.CombinedRate
	}

	sort.SliceStable(order, func(i, j int) bool { return totals[order[i]] > totals[order[j]] })
	if len(order) > topSideEffects {
		order = order[:topSideEffects]
	}

	results := make([]LikelySideEffect, len(order))
	for i, se := range order {
		results[i] = LikelySideEffect{SideEffect: se, TotalRate: totals[se], MostLikelyDrug: topDrug[se]}
	}
	return results, nil
}

// MostLikelySideEffectsFAERS returns, per portfolio drug, its highest-rate
// occurrence rows, drugs in name order and at most five rows each.
func (s *Service) MostLikelySideEffectsFAERS(ctx context.Context, drugs []string) ([]OccurrenceRate, error) {
	rows, err := s.repo.OccurrencesByDrugs(ctx, httpx.LowerAll(drugs))
	if err != nil {
		return nil, err
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].DrugName != rows[j].DrugName {
			return rows[i].DrugName < rows[j].DrugName
		}
		return rows[i].Rate > rows[j].Rate
	})

	results := []OccurrenceRate{}
	perDrug := make(map[string]int)
	for _, row := range rows {
		if perDrug[row.DrugName] >= topSideEffectsPerDrug {
			continue
		}
		perDrug[row.DrugName]++
		results = append(results, row)
	}
	return results, nil
}

func (s *Service) WeightedDrugNames(ctx context.Context) ([]string, error) {
	names, err := s.repo.DistinctWeightedDrugs(ctx)
	if err != nil {
		return nil, err
	}
	if names == nil {
		names = []string{}
	}
	return names, nil
}

func (s *Service) WeightedSideEffectNames(ctx context.Context) ([]string, error) {
	names, err := s.repo.DistinctWeightedSideEffects(ctx)
	if err != nil {
		return nil, err
	}
	if names == nil {
		names = []string{}
	}
	sort.Strings(names)
	return names, nil
}

func (s *Service) OccurrenceDrugNames(ctx context.Context) ([]string, error) {
	names, err := s.repo.DistinctOccurrenceDrugs(ctx)
	if err != nil {
		return nil, err
	}
	if names == nil {
		names = []string{}
	}
	return names, nil
}
