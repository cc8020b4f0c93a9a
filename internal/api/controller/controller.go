package controller

import (
	"context"
	"io"

	"github.com/labstack/echo/v4"
	"github.com/ougirez/rifmis/internal/domain"
	"github.com/ougirez/rifmis/internal/domain/dto"
	"github.com/ougirez/rifmis/internal/pkg/constants"
	"github.com/ougirez/rifmis/internal/pkg/filter"
)

type TrackingService interface {
	ListTrackingSheet(ctx context.Context, values filter.Values) ([]*domain.TrackingRow, error)
	ListActivityProgress(ctx context.Context) ([]*domain.ActivityProgress, error)
	OutputWeightage(ctx context.Context) ([]domain.OutputWeightage, error)
}

type TrainingService interface {
	List(ctx context.Context, values filter.Values) ([]*domain.TrainingEvent, error)
	Get(ctx context.Context, id int64) (*domain.TrainingEvent, error)
	Add(ctx context.Context, callerID string, req *dto.TrainingEventRequest) error
	Update(ctx context.Context, callerID string, req *dto.UpdateTrainingEventRequest) error
	Delete(ctx context.Context, id int64) error
	Dashboard(ctx context.Context) (*domain.Dashboard, error)
}

type ParticipantsService interface {
	List(ctx context.Context, values filter.Values) ([]*domain.Participant, error)
	Export(ctx context.Context, values filter.Values, w io.Writer) error
	Add(ctx context.Context, callerID string, req *dto.ParticipantRequest) (int64, error)
	Update(ctx context.Context, callerID string, req *dto.UpdateParticipantRequest) error
	Delete(ctx context.Context, sn int64) error
}

type Pinger interface {
	Ping(ctx context.Context) error
}

type Controller struct {
	tracking     TrackingService
	training     TrainingService
	participants ParticipantsService
	db           Pinger
}

func NewController(tracking TrackingService, training TrainingService, participants ParticipantsService, db Pinger) *Controller {
	return &Controller{
		tracking:     tracking,
		training:     training,
		participants: participants,
		db:           db,
	}
}

// callerID is set by the RequireCaller middleware.
func callerID(ctx echo.Context) string {
	id, _ := ctx.Get(constants.CtxKeyCallerID).(string)
	return id
}
