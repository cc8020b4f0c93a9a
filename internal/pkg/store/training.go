package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/ougirez/rifmis/internal/domain"
	"github.com/ougirez/rifmis/internal/pkg/constants"
	"github.com/ougirez/rifmis/internal/pkg/filter"
)

var trainingEventColumns = []column{
	{"SN", asIs},
	{"TrainingTitle", asText},
	{"Output", asText},
	{"SubNo", asText},
	{"SubActivityName", asText},
	{"EventType", asText},
	{"Venue", asText},
	{"LocationTehsil", asText},
	{"District", asText},
	{"StartDate", asDate},
	{"EndDate", asDate},
	{"TotalDays", asCount},
	{"TrainingFacilitatorName", asText},
	{"TMAMale", asCount},
	{"TMAFemale", asCount},
	{"PHEDMale", asCount},
	{"PHEDFemale", asCount},
	{"LGRDMale", asCount},
	{"LGRDFemale", asCount},
	{"PDDMale", asCount},
	{"PDDFemale", asCount},
	{"CommunityMale", asCount},
	{"CommunityFemale", asCount},
	{"AnyOtherMale", asCount},
	{"AnyOtherFemale", asCount},
	{"AnyOtherSpecify", asText},
	{"TotalMale", asCount},
	{"TotalFemale", asCount},
	{"TotalParticipants", asCount},
	{"PreTrainingEvaluation", asText},
	{"PostTrainingEvaluation", asText},
	{"EventAgendas", asText},
	{"ExpectedOutcomes", asText},
	{"ChallengesFaced", asText},
	{"SuggestedActions", asText},
	{"ActivityCompletionReportLink", asText},
	{"ParticipantListAttachment", asText},
	{"PictureAttachment", asText},
	{"Remarks", asText},
	{"DataCompilerName", asText},
	{"DataVerifiedBy", asText},
	{"CreatedDate", asDate},
	{"LastModifiedDate", asDate},
}

const dashboardAggregates = `COUNT(*)::bigint AS "totalTrainings", ` +
	`COALESCE(SUM("TotalDays"), 0)::bigint AS "totalDays", ` +
	`COALESCE(SUM("TotalMale"), 0)::bigint AS "totalMale", ` +
	`COALESCE(SUM("TotalFemale"), 0)::bigint AS "totalFemale", ` +
	`COALESCE(SUM("TotalParticipants"), 0)::bigint AS "totalParticipants"`

func trainingEventSetMap(w *domain.TrainingEventWrite) map[string]interface{} {
	return map[string]interface{}{
		filter.Quote("TrainingTitle"):                w.TrainingTitle,
		filter.Quote("Output"):                       w.Output,
		filter.Quote("SubNo"):                        w.SubNo,
		filter.Quote("SubActivityName"):              w.SubActivityName,
		filter.Quote("EventType"):                    w.EventType,
		filter.Quote("Venue"):                        w.Venue,
		filter.Quote("LocationTehsil"):               w.LocationTehsil,
		filter.Quote("District"):                     w.District,
		filter.Quote("StartDate"):                    w.StartDate,
		filter.Quote("EndDate"):                      w.EndDate,
		filter.Quote("TotalDays"):                    w.TotalDays,
		filter.Quote("TrainingFacilitatorName"):      w.TrainingFacilitatorName,
		filter.Quote("TMAMale"):                      w.Counts.TMAMale,
		filter.Quote("TMAFemale"):                    w.Counts.TMAFemale,
		filter.Quote("PHEDMale"):                     w.Counts.PHEDMale,
		filter.Quote("PHEDFemale"):                   w.Counts.PHEDFemale,
		filter.Quote("LGRDMale"):                     w.Counts.LGRDMale,
		filter.Quote("LGRDFemale"):                   w.Counts.LGRDFemale,
		filter.Quote("PDDMale"):                      w.Counts.PDDMale,
		filter.Quote("PDDFemale"):                    w.Counts.PDDFemale,
		filter.Quote("CommunityMale"):                w.Counts.CommunityMale,
		filter.Quote("CommunityFemale"):              w.Counts.CommunityFemale,
		filter.Quote("AnyOtherMale"):                 w.Counts.AnyOtherMale,
		filter.Quote("AnyOtherFemale"):               w.Counts.AnyOtherFemale,
		filter.Quote("AnyOtherSpecify"):              w.AnyOtherSpecify,
		filter.Quote("TotalMale"):                    w.Totals.Male,
		filter.Quote("TotalFemale"):                  w.Totals.Female,
		filter.Quote("TotalParticipants"):            w.Totals.All,
		filter.Quote("PreTrainingEvaluation"):        w.PreTrainingEvaluation,
		filter.Quote("PostTrainingEvaluation"):       w.PostTrainingEvaluation,
		filter.Quote("EventAgendas"):                 w.EventAgendas,
		filter.Quote("ExpectedOutcomes"):             w.ExpectedOutcomes,
		filter.Quote("ChallengesFaced"):              w.ChallengesFaced,
		filter.Quote("SuggestedActions"):             w.SuggestedActions,
		filter.Quote("ActivityCompletionReportLink"): w.ActivityCompletionReportLink,
		filter.Quote("ParticipantListAttachment"):    w.ParticipantListAttachment,
		filter.Quote("PictureAttachment"):            w.PictureAttachment,
		filter.Quote("Remarks"):                      w.Remarks,
		filter.Quote("DataCompilerName"):             w.DataCompilerName,
		filter.Quote("DataVerifiedBy"):               w.DataVerifiedBy,
	}
}

func (s *store) ListTrainingEvents(ctx context.Context, values filter.Values) ([]*domain.TrainingEvent, error) {
	table := s.table(tableTrainingEvents)
	order := sourceOrder(table, "StartDate", "SN")
	query := filter.TrainingEvents.Select(
		builder().Select(selectList(trainingEventColumns)...).From(table),
		values,
		desc(order[0]), desc(order[1]),
	)

	rows := make([]*domain.TrainingEvent, 0)
	if err := s.pool.Selectx(ctx, &rows, query); err != nil {
		return nil, wrapErr(err)
	}
	return rows, nil
}

func (s *store) GetTrainingEvent(ctx context.Context, sn int64) (*domain.TrainingEvent, error) {
	query := builder().Select(selectList(trainingEventColumns)...).
		From(s.table(tableTrainingEvents)).
		Where(sq.Eq{filter.Quote("SN"): sn})

	var selected domain.TrainingEvent
	if err := s.pool.Getx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}
	return &selected, nil
}

func (s *store) InsertTrainingEvent(ctx context.Context, w *domain.TrainingEventWrite) error {
	set := trainingEventSetMap(w)
	set[filter.Quote("CreatedDate")] = sq.Expr("NOW()")
	set[filter.Quote("LastModifiedDate")] = sq.Expr("NOW()")

	query := builder().Insert(s.table(tableTrainingEvents)).SetMap(set)

	_, err := s.pool.Execx(ctx, query)
	return wrapErr(err)
}

// UpdateTrainingEvent rewrites every recognized column of one event. CreatedDate is kept.
func (s *store) UpdateTrainingEvent(ctx context.Context, sn int64, w *domain.TrainingEventWrite) error {
	set := trainingEventSetMap(w)
	set[filter.Quote("LastModifiedDate")] = sq.Expr("NOW()")

	query := builder().Update(s.table(tableTrainingEvents)).
		SetMap(set).
		Where(sq.Eq{filter.Quote("SN"): sn})

	tag, err := s.pool.Execx(ctx, query)
	if err != nil {
		return wrapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return constants.ErrDBNotFound
	}
	return nil
}

func (s *store) DeleteTrainingEvent(ctx context.Context, sn int64) error {
	query := builder().Delete(s.table(tableTrainingEvents)).
		Where(sq.Eq{filter.Quote("SN"): sn})

	tag, err := s.pool.Execx(ctx, query)
	if err != nil {
		return wrapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return constants.ErrDBNotFound
	}
	return nil
}

func (s *store) DashboardOverall(ctx context.Context) (domain.DashboardTotals, error) {
	query := builder().Select(dashboardAggregates).From(s.table(tableTrainingEvents))

	var totals domain.DashboardTotals
	if err := s.pool.Getx(ctx, &totals, query); err != nil {
		return domain.DashboardTotals{}, wrapErr(err)
	}
	return totals, nil
}

func (s *store) DashboardByEventType(ctx context.Context) ([]domain.DashboardGroupRow, error) {
	return s.dashboardGroupedBy(ctx, "EventType")
}

func (s *store) DashboardByDistrict(ctx context.Context) ([]domain.DashboardGroupRow, error) {
	return s.dashboardGroupedBy(ctx, "District")
}

func (s *store) dashboardGroupedBy(ctx context.Context, col string) ([]domain.DashboardGroupRow, error) {
	key := filter.Quote(col)
	query := builder().Select(key+`::text AS "groupKey"`, dashboardAggregates).
		From(s.table(tableTrainingEvents)).
		GroupBy(key).
		OrderBy(`"totalTrainings" DESC`)

	rows := make([]domain.DashboardGroupRow, 0)
	if err := s.pool.Selectx(ctx, &rows, query); err != nil {
		return nil, wrapErr(err)
	}
	return rows, nil
}
