package store

import (
	"context"

	"github.com/ougirez/rifmis/internal/domain"
	"github.com/ougirez/rifmis/internal/pkg/filter"
	"github.com/ougirez/rifmis/internal/pkg/store/xpgx"
)

type Pool = xpgx.Pool

type TrackingStore interface {
	ListTrackingSheet(ctx context.Context, values filter.Values) ([]*domain.TrackingRow, error)
	ListActivityProgress(ctx context.Context) ([]*domain.ActivityProgress, error)
	ListActivityWeightage(ctx context.Context) ([]domain.ActivityWeightage, error)
}

type TrainingStore interface {
	ListTrainingEvents(ctx context.Context, values filter.Values) ([]*domain.TrainingEvent, error)
	GetTrainingEvent(ctx context.Context, sn int64) (*domain.TrainingEvent, error)
	InsertTrainingEvent(ctx context.Context, w *domain.TrainingEventWrite) error
	UpdateTrainingEvent(ctx context.Context, sn int64, w *domain.TrainingEventWrite) error
	DeleteTrainingEvent(ctx context.Context, sn int64) error
	DashboardOverall(ctx context.Context) (domain.DashboardTotals, error)
	DashboardByEventType(ctx context.Context) ([]domain.DashboardGroupRow, error)
	DashboardByDistrict(ctx context.Context) ([]domain.DashboardGroupRow, error)
}

type ParticipantStore interface {
	ListParticipants(ctx context.Context, values filter.Values) ([]*domain.Participant, error)
	InsertParticipant(ctx context.Context, w *domain.ParticipantWrite) (int64, error)
	UpdateParticipant(ctx context.Context, sn int64, w *domain.ParticipantWrite) error
	DeleteParticipant(ctx context.Context, sn int64) error
}

type Store interface {
	TrackingStore
	TrainingStore
	ParticipantStore
	Ping(ctx context.Context) error
}

type Options struct {
	// Schema holds the MIS tables and views.
	Schema string
	// ReferenceSchema holds Tracking_Sheet_Main_Activities.
	ReferenceSchema string
}

type store struct {
	pool Pool
	opts Options
}

func NewStore(pool Pool, opts Options) Store {
	if opts.Schema == "" {
		opts.Schema = defaultSchema
	}
	if opts.ReferenceSchema == "" {
		opts.ReferenceSchema = defaultReferenceSchema
	}
	return &store{pool: pool, opts: opts}
}

func (s *store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *store) table(name string) string {
	return filter.Quote(s.opts.Schema, name)
}

func (s *store) referenceTable(name string) string {
	return filter.Quote(s.opts.ReferenceSchema, name)
}
