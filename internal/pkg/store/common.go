package store

import (
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/ougirez/rifmis/internal/pkg/constants"
	"github.com/ougirez/rifmis/internal/pkg/filter"
)

const (
	defaultSchema          = "rifiiorg"
	defaultReferenceSchema = "dbo"

	tableTrainingEvents         = "TrainingEvents"
	tableWorkshopParticipants   = "workshop_participants"
	tableMainActivities         = "Tracking_Sheet_Main_Activities"
	viewTrackingSheet           = "View_Tracking_Sheet"
	viewActivityProgressSummary = "View_Activity_Progress_Summary_v1"
)

func wrapErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) || pgxscan.NotFound(err) {
		return constants.ErrDBNotFound
	}
	return err
}

// builder возвращает squirrel SQL Builder обьект.
func builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

type cast int

const (
	asIs cast = iota
	asText
	asFloat
	asDate
	asCount
)

// column is a selected column, normalized so the driver scans it the same way
// whatever numeric or character type the view declares.
type column struct {
	name string
	cast cast
}

func (c column) expr() string {
	q := filter.Quote(c.name)
	switch c.cast {
	case asText:
		return q + "::text AS " + q
	case asFloat:
		return q + "::float8 AS " + q
	case asDate:
		return q + "::date AS " + q
	case asCount:
		return "COALESCE(" + q + ", 0)::bigint AS " + q
	}
	return q
}

func selectList(cols []column) []string {
	out := make([]string, 0, len(cols))
	for _, c := range cols {
		out = append(out, c.expr())
	}
	return out
}

// sourceOrder qualifies ORDER BY keys with the source table. A bare name would bind to
// the casted output column of the same name and sort, say, ids as text.
func sourceOrder(table string, names ...string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		out = append(out, table+"."+filter.Quote(n))
	}
	return out
}

func desc(key string) string {
	return key + " DESC"
}
