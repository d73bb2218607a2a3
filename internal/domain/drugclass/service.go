package drugclass

import (
	"context"

	"github.com/hannahwhyatt/ddi-api/internal/platform/httpx"
)

type Service struct {
	repo DrugClassRepository
}

func NewService(repo DrugClassRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, drugs []string) ([]*DrugClass, error) {
	items, err := s.repo.ListByLoweredNames(ctx, httpx.LowerAll(drugs))
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []*DrugClass{}
	}
	return items, nil
}
