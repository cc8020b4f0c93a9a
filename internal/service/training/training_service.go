package training

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/ougirez/rifmis/internal/domain"
	"github.com/ougirez/rifmis/internal/domain/dto"
	"github.com/ougirez/rifmis/internal/pkg/constants"
	"github.com/ougirez/rifmis/internal/pkg/filter"
	"github.com/ougirez/rifmis/internal/pkg/logger"
	"github.com/ougirez/rifmis/internal/pkg/projector"
	"github.com/ougirez/rifmis/internal/pkg/store"
	"github.com/ougirez/rifmis/internal/pkg/utils"
	"golang.org/x/sync/errgroup"
)

var (
	ErrNotFound         = constants.NewCodedError(http.StatusNotFound, "Training event not found")
	ErrNotFoundToUpdate = constants.NewCodedError(http.StatusNotFound, "No training event found to update")
	ErrNotFoundToDelete = constants.NewCodedError(http.StatusNotFound, "No training event found to delete")
)

type Service struct {
	store store.TrainingStore
}

func NewTrainingService(store store.TrainingStore) *Service {
	return &Service{store: store}
}

func (s *Service) List(ctx context.Context, values filter.Values) ([]*domain.TrainingEvent, error) {
	events, err := s.store.ListTrainingEvents(ctx, values)
	if err != nil {
		return nil, fmt.Errorf("store.ListTrainingEvents: %w", err)
	}
	return events, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.TrainingEvent, error) {
	event, err := s.store.GetTrainingEvent(ctx, id)
	if errors.Is(err, constants.ErrDBNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("store.GetTrainingEvent: %w", err)
	}
	return event, nil
}

func (s *Service) Add(ctx context.Context, callerID string, req *dto.TrainingEventRequest) error {
	w := newWrite(req)
	// the caller is only the default author of a new event
	if w.DataCompilerName == nil {
		w.DataCompilerName = utils.NullString(callerID)
	}
	if err := s.store.InsertTrainingEvent(ctx, w); err != nil {
		return fmt.Errorf("store.InsertTrainingEvent: %w", err)
	}
	logger.Infof(ctx, "training event added by %s: total_days=%d participants=%d", callerID, w.TotalDays, w.Totals.All)
	return nil
}

func (s *Service) Update(ctx context.Context, callerID string, req *dto.UpdateTrainingEventRequest) error {
	err := s.store.UpdateTrainingEvent(ctx, req.ID.Int64(), newWrite(&req.TrainingEventRequest))
	if errors.Is(err, constants.ErrDBNotFound) {
		return ErrNotFoundToUpdate
	}
	if err != nil {
		return fmt.Errorf("store.UpdateTrainingEvent: %w", err)
	}
	logger.Infof(ctx, "training event %d updated by %s", req.ID.Int64(), callerID)
	return nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	err := s.store.DeleteTrainingEvent(ctx, id)
	if errors.Is(err, constants.ErrDBNotFound) {
		return ErrNotFoundToDelete
	}
	if err != nil {
		return fmt.Errorf("store.DeleteTrainingEvent: %w", err)
	}
	return nil
}

// Dashboard runs the three independent aggregates concurrently.
func (s *Service) Dashboard(ctx context.Context) (*domain.Dashboard, error) {
	var (
		overall     domain.DashboardTotals
		byEventType []domain.DashboardGroupRow
		byDistrict  []domain.DashboardGroupRow
	)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() (err error) {
		overall, err = s.store.DashboardOverall(egCtx)
		if err != nil {
			return fmt.Errorf("store.DashboardOverall: %w", err)
		}
		return nil
	})
	eg.Go(func() (err error) {
		byEventType, err = s.store.DashboardByEventType(egCtx)
		if err != nil {
			return fmt.Errorf("store.DashboardByEventType: %w", err)
		}
		return nil
	})
	eg.Go(func() (err error) {
		byDistrict, err = s.store.DashboardByDistrict(egCtx)
		if err != nil {
			return fmt.Errorf("store.DashboardByDistrict: %w", err)
		}
		return nil
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return domain.NewDashboard(overall, byEventType, byDistrict), nil
}

// newWrite derives totals and TotalDays from the request. The caller becomes the data
// compiler when none is given.
func newWrite(req *dto.TrainingEventRequest) *domain.TrainingEventWrite {
	start := projector.ParseDate(req.StartDate)
	end := projector.ParseDate(req.EndDate)
	counts := req.Counts()

	return &domain.TrainingEventWrite{
		TrainingTitle:                utils.NullString(req.TrainingTitle),
		Output:                       utils.NullString(req.Output),
		SubNo:                        utils.NullString(req.SubNo),
		SubActivityName:              utils.NullString(req.SubActivityName),
		EventType:                    utils.NullString(req.EventType),
		Venue:                        utils.NullString(req.Venue),
		LocationTehsil:               utils.NullString(req.LocationTehsil),
		District:                     utils.NullString(req.District),
		StartDate:                    start,
		EndDate:                      end,
		TotalDays:                    domain.InclusiveDays(start, end),
		TrainingFacilitatorName:      utils.NullString(req.TrainingFacilitatorName),
		Counts:                       counts,
		AnyOtherSpecify:              utils.NullString(req.AnyOtherSpecify),
		Totals:                       counts.Totals(),
		PreTrainingEvaluation:        utils.NullString(req.PreTrainingEvaluation),
		PostTrainingEvaluation:       utils.NullString(req.PostTrainingEvaluation),
		EventAgendas:                 utils.NullString(req.EventAgendas),
		ExpectedOutcomes:             utils.NullString(req.ExpectedOutcomes),
		ChallengesFaced:              utils.NullString(req.ChallengesFaced),
		SuggestedActions:             utils.NullString(req.SuggestedActions),
		ActivityCompletionReportLink: utils.NullString(req.ActivityCompletionReportLink),
		ParticipantListAttachment:    utils.NullString(req.ParticipantListAttachment),
		PictureAttachment:            utils.NullString(req.PictureAttachment),
		Remarks:                      utils.NullString(req.Remarks),
		DataCompilerName:             utils.NullString(req.DataCompilerName),
		DataVerifiedBy:               utils.NullString(req.DataVerifiedBy),
	}
}
