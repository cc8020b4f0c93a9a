package tracking

import (
	"context"
	"fmt"

	"github.com/ougirez/rifmis/internal/domain"
	"github.com/ougirez/rifmis/internal/pkg/filter"
	"github.com/ougirez/rifmis/internal/pkg/store"
)

type Service struct {
	store store.TrackingStore
}

func NewTrackingService(store store.TrackingStore) *Service {
	return &Service{store: store}
}

func (s *Service) ListTrackingSheet(ctx context.Context, values filter.Values) ([]*domain.TrackingRow, error) {
	rows, err := s.store.ListTrackingSheet(ctx, values)
	if err != nil {
		return nil, fmt.Errorf("store.ListTrackingSheet: %w", err)
	}
	return rows, nil
}

func (s *Service) ListActivityProgress(ctx context.Context) ([]*domain.ActivityProgress, error) {
	rows, err := s.store.ListActivityProgress(ctx)
	if err != nil {
		return nil, fmt.Errorf("store.ListActivityProgress: %w", err)
	}
	return rows, nil
}

func (s *Service) OutputWeightage(ctx context.Context) ([]domain.OutputWeightage, error) {
	activities, err := s.store.ListActivityWeightage(ctx)
	if err != nil {
		return nil, fmt.Errorf("store.ListActivityWeightage: %w", err)
	}
	return domain.RollupOutputWeightage(activities), nil
}
