package store

import (
	"context"

	"github.com/ougirez/rifmis/internal/domain"
	"github.com/ougirez/rifmis/internal/pkg/filter"
)

var trackingSheetColumns = []column{
	{"OutputID", asText},
	{"Output", asText},
	{"MainActivityName", asText},
	{"SubActivityName", asText},
	{"Sub_Sub_ActivityID_ID", asText},
	{"Sub_Sub_ActivityName", asText},
	{"UnitName", asText},
	{"PlannedTargets", asFloat},
	{"AchievedTargets", asFloat},
	{"ActivityProgress", asFloat},
	{"ActivityWeightage", asFloat},
	{"ActivityWeightageProgress", asFloat},
	{"PlannedStartDate", asDate},
	{"PlannedEndDate", asDate},
	{"Remarks", asText},
	{"Links", asText},
	{"Sector_Name", asText},
	{"District", asText},
	{"Tehsil", asText},
	{"Beneficiaries_Male", asFloat},
	{"Beneficiaries_Female", asFloat},
	{"Total_Beneficiaries", asFloat},
	{"Beneficiary_Types", asText},
	{"SubActivityID", asText},
	{"ActivityID", asText},
	{"Sub_Sub_ActivityID", asText},
}

var activityProgressColumns = []column{
	{"ActivityID", asText},
	{"MainActivityName", asText},
	{"OutputID", asText},
	{"Weightage_of_Main_Activity", asFloat},
	{"TotalActivityWeightageProgress", asFloat},
	{"OutputWeightage", asFloat},
}

func (s *store) ListTrackingSheet(ctx context.Context, values filter.Values) ([]*domain.TrackingRow, error) {
	view := s.table(viewTrackingSheet)
	query := filter.TrackingSheet.Select(
		builder().Select(selectList(trackingSheetColumns)...).From(view),
		values,
		sourceOrder(view, "OutputID", "MainActivityName", "SubActivityName")...,
	)

	rows := make([]*domain.TrackingRow, 0)
	if err := s.pool.Selectx(ctx, &rows, query); err != nil {
		return nil, wrapErr(err)
	}
	return rows, nil
}

func (s *store) ListActivityProgress(ctx context.Context) ([]*domain.ActivityProgress, error) {
	view := s.table(viewActivityProgressSummary)
	query := builder().Select(selectList(activityProgressColumns)...).
		From(view).
		OrderBy(sourceOrder(view, "OutputID", "ActivityID")...).
		Limit(filter.Cap)

	rows := make([]*domain.ActivityProgress, 0)
	if err := s.pool.Selectx(ctx, &rows, query); err != nil {
		return nil, wrapErr(err)
	}
	return rows, nil
}

// ListActivityWeightage returns every main activity's weightage, rendered as text so the
// rollup keeps the database's exact decimal value.
func (s *store) ListActivityWeightage(ctx context.Context) ([]domain.ActivityWeightage, error) {
	query := builder().Select(
		`COALESCE("OutputID"::text, '') AS "OutputID"`,
		`COALESCE("Weightage_of_Main_Activity", 0)::text AS "Weightage"`,
	).From(s.referenceTable(tableMainActivities))

	rows := make([]domain.ActivityWeightage, 0)
	if err := s.pool.Selectx(ctx, &rows, query); err != nil {
		return nil, wrapErr(err)
	}
	return rows, nil
}
