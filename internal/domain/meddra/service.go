package meddra

import "context"

type Service struct {
	repo MappingRepository
}

func NewService(repo MappingRepository) *Service {
	return &Service{repo: repo}
}

// ResolveAncestors maps each preferred term to its HLGT-tier ancestor
// labels, deduplicated and joined with "/". Terms with no mapping at all,
// and terms whose mappings never reach the HLGT tier, are absent from the
// result.
func (s *Service) ResolveAncestors(ctx context.Context, ptList []string) (map[string]string, error) {
	matched, err := s.repo.ForDescendants(ctx, ptList)
	if err != nil {
		return nil, err
	}

	descendants := make([]string, 0, len(matched))
	for _, m := range matched {
		descendants = append(descendants, m.Descendant)
	}

	mappings, err := s.repo.HLGTForDescendants(ctx, descendants)
	if err != nil {
		return nil, err
	}

	grouped := make(map[string][]string)
	for _, m := range mappings {
		grouped[m.Descendant] = append(grouped[m.Descendant], m.Ancestor)
	}

	result := make(map[string]string, len(grouped))
	for descendant, ancestors := range grouped {
		result[descendant] = joinUnique(ancestors)
	}
	return result, nil
}

// Labels returns the deduplicated set of terms that resolved to at least
// one HLGT ancestor. The side-effect vocabulary is built from these.
func (s *Service) Labels(ctx context.Context, ptList []string) ([]string, error) {
	resolved, err := s.ResolveAncestors(ctx, ptList)
	if err != nil {
		return nil, err
	}
	labels := make([]string, 0, len(resolved))
	for _, pt := range ptList {
		if _, ok := resolved[pt]; ok {
			labels = append(labels, pt)
			delete(resolved, pt)
		}
	}
	return labels, nil
}

// joinUnique joins names with "/", keeping the first occurrence of each.
func joinUnique(names []string) string {
	seen := make(map[string]struct{}, len(names))
	out := ""
	for _, n := range names {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		if out != "" {
			out += "/"
		}
		out += n
	}
	return out
}
