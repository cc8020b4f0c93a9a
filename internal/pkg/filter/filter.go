// Package filter turns whitelisted query-string filters into bound squirrel predicates.
package filter

import (
	"net/url"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/ougirez/rifmis/internal/pkg/constants"
)

// Cap bounds every list read. It is applied silently.
const Cap = constants.ReadCap

type Kind int

const (
	Equal Kind = iota
	Contains
)

type Field struct {
	Param   string
	Columns []string
	Kind    Kind
}

// Whitelist is the closed set of filters an endpoint understands, in predicate order.
type Whitelist []Field

// Values holds one raw value per request parameter.
type Values map[string]string

func FromQuery(q url.Values) Values {
	v := make(Values, len(q))
	for key := range q {
		v[key] = q.Get(key)
	}
	return v
}

// Quote returns the identifier quoted bit-exact, e.g. Quote("rifiiorg", "View_Tracking_Sheet").
func Quote(parts ...string) string {
	return pgx.Identifier(parts).Sanitize()
}

// Apply appends one predicate per non-empty supplied whitelisted value. Unknown keys are ignored.
func (w Whitelist) Apply(b sq.SelectBuilder, values Values) sq.SelectBuilder {
	b = b.Where("1=1")
	for _, f := range w {
		value, ok := values[f.Param]
		if !ok || value == "" {
			continue
		}
		if pred := f.predicate(value); pred != nil {
			b = b.Where(pred)
		}
	}
	return b
}

// Select applies the filters, the fixed ordering and the read cap.
func (w Whitelist) Select(b sq.SelectBuilder, values Values, orderBy ...string) sq.SelectBuilder {
	return w.Apply(b, values).
		OrderBy(orderBy...).
		Limit(Cap)
}

func (f Field) predicate(value string) sq.Sqlizer {
	switch f.Kind {
	case Equal:
		if len(f.Columns) == 0 {
			return nil
		}
		return sq.Eq{Quote(f.Columns[0]) + "::text": value}
	case Contains:
		if len(f.Columns) == 0 {
			return nil
		}
		pattern := "%" + value + "%"
		or := make(sq.Or, 0, len(f.Columns))
		for _, col := range f.Columns {
			or = append(or, sq.ILike{Quote(col) + "::text": pattern})
		}
		return or
	}
	return nil
}

var TrackingSheet = Whitelist{
	{Param: "sector", Columns: []string{"Sector_Name"}},
	{Param: "district", Columns: []string{"District"}},
	{Param: "tehsil", Columns: []string{"Tehsil"}},
	{Param: "outputID", Columns: []string{"OutputID"}},
	{Param: "activityID", Columns: []string{"ActivityID"}},
	{Param: "subActivityID", Columns: []string{"SubActivityID"}},
	{Param: "subSubActivityID", Columns: []string{"Sub_Sub_ActivityID"}},
	{Param: "search", Kind: Contains, Columns: []string{"MainActivityName", "SubActivityName", "Sub_Sub_ActivityName", "Output"}},
}

var Participants = Whitelist{
	{Param: "district", Columns: []string{"district"}},
	{Param: "tehsil", Columns: []string{"tehsil"}},
	{Param: "gender", Columns: []string{"gender"}},
	{Param: "organizationDepartment", Columns: []string{"organization_department"}},
	{Param: "workshopTrainingName", Columns: []string{"workshop_training_name"}},
}

var TrainingEvents = Whitelist{
	{Param: "district", Columns: []string{"District"}},
	{Param: "eventType", Columns: []string{"EventType"}},
	{Param: "output", Columns: []string{"Output"}},
	{Param: "search", Kind: Contains, Columns: []string{"TrainingTitle", "SubActivityName", "Venue"}},
}
