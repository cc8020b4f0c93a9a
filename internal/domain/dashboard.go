package domain

import "github.com/ougirez/rifmis/internal/pkg/projector"

type DashboardTotals struct {
	TotalTrainings    int64 `db:"totalTrainings" json:"totalTrainings"`
	TotalDays         int64 `db:"totalDays" json:"totalDays"`
	TotalMale         int64 `db:"totalMale" json:"totalMale"`
	TotalFemale       int64 `db:"totalFemale" json:"totalFemale"`
	TotalParticipants int64 `db:"totalParticipants" json:"totalParticipants"`
}

func (t *DashboardTotals) Add(o DashboardTotals) {
	t.TotalTrainings += o.TotalTrainings
	t.TotalDays += o.TotalDays
	t.TotalMale += o.TotalMale
	t.TotalFemale += o.TotalFemale
	t.TotalParticipants += o.TotalParticipants
}

// DashboardGroupRow is an aggregate keyed by a nullable column value.
type DashboardGroupRow struct {
	Key *string `db:"groupKey"`
	DashboardTotals
}

type EventTypeBucket struct {
	EventType string `json:"eventType"`
	DashboardTotals
}

type DistrictBucket struct {
	District string `json:"district"`
	DashboardTotals
}

type Dashboard struct {
	Overall     DashboardTotals   `json:"overall"`
	ByEventType []EventTypeBucket `json:"byEventType"`
	ByDistrict  []DistrictBucket  `json:"byDistrict"`
}

func foldTotals(rows []DashboardGroupRow) []projector.Group[DashboardTotals] {
	keyed := make([]projector.Keyed[DashboardTotals], 0, len(rows))
	for _, r := range rows {
		keyed = append(keyed, projector.Keyed[DashboardTotals]{Key: r.Key, Value: r.DashboardTotals})
	}
	return projector.Fold(keyed,
		func(into *DashboardTotals, from DashboardTotals) { into.Add(from) },
		func(t DashboardTotals) int64 { return t.TotalTrainings },
	)
}

// NewDashboard folds null or blank group keys into one Unknown bucket per breakdown
// and orders buckets by training count.
func NewDashboard(overall DashboardTotals, byEventType, byDistrict []DashboardGroupRow) *Dashboard {
	d := &Dashboard{
		Overall:     overall,
		ByEventType: make([]EventTypeBucket, 0, len(byEventType)),
		ByDistrict:  make([]DistrictBucket, 0, len(byDistrict)),
	}
	for _, g := range foldTotals(byEventType) {
		d.ByEventType = append(d.ByEventType, EventTypeBucket{EventType: g.Key, DashboardTotals: g.Value})
	}
	for _, g := range foldTotals(byDistrict) {
		d.ByDistrict = append(d.ByDistrict, DistrictBucket{District: g.Key, DashboardTotals: g.Value})
	}
	return d
}
