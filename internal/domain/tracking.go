package domain

import (
	"sort"

	"github.com/ougirez/rifmis/internal/pkg/projector"
	"github.com/shopspring/decimal"
)

// TrackingRow is one line of the program tracking sheet view.
type TrackingRow struct {
	OutputID                  *string        `db:"OutputID" json:"OutputID"`
	Output                    *string        `db:"Output" json:"Output"`
	MainActivityName          *string        `db:"MainActivityName" json:"MainActivityName"`
	SubActivityName           *string        `db:"SubActivityName" json:"SubActivityName"`
	SubSubActivityIDID        *string        `db:"Sub_Sub_ActivityID_ID" json:"Sub_Sub_ActivityID_ID"`
	SubSubActivityName        *string        `db:"Sub_Sub_ActivityName" json:"Sub_Sub_ActivityName"`
	UnitName                  *string        `db:"UnitName" json:"UnitName"`
	PlannedTargets            *float64       `db:"PlannedTargets" json:"PlannedTargets"`
	AchievedTargets           *float64       `db:"AchievedTargets" json:"AchievedTargets"`
	ActivityProgress          *float64       `db:"ActivityProgress" json:"ActivityProgress"`
	ActivityWeightage         *float64       `db:"ActivityWeightage" json:"ActivityWeightage"`
	ActivityWeightageProgress *float64       `db:"ActivityWeightageProgress" json:"ActivityWeightageProgress"`
	PlannedStartDate          projector.Date `db:"PlannedStartDate" json:"PlannedStartDate"`
	PlannedEndDate            projector.Date `db:"PlannedEndDate" json:"PlannedEndDate"`
	Remarks                   *string        `db:"Remarks" json:"Remarks"`
	Links                     *string        `db:"Links" json:"Links"`
	SectorName                *string        `db:"Sector_Name" json:"Sector_Name"`
	District                  *string        `db:"District" json:"District"`
	Tehsil                    *string        `db:"Tehsil" json:"Tehsil"`
	BeneficiariesMale         *float64       `db:"Beneficiaries_Male" json:"Beneficiaries_Male"`
	BeneficiariesFemale       *float64       `db:"Beneficiaries_Female" json:"Beneficiaries_Female"`
	TotalBeneficiaries        *float64       `db:"Total_Beneficiaries" json:"Total_Beneficiaries"`
	BeneficiaryTypes          *string        `db:"Beneficiary_Types" json:"Beneficiary_Types"`
	SubActivityID             *string        `db:"SubActivityID" json:"SubActivityID"`
	ActivityID                *string        `db:"ActivityID" json:"ActivityID"`
	SubSubActivityID          *string        `db:"Sub_Sub_ActivityID" json:"Sub_Sub_ActivityID"`
}

type ActivityProgress struct {
	ActivityID                     *string  `db:"ActivityID" json:"ActivityID"`
	MainActivityName               *string  `db:"MainActivityName" json:"MainActivityName"`
	OutputID                       *string  `db:"OutputID" json:"OutputID"`
	WeightageOfMainActivity        *float64 `db:"Weightage_of_Main_Activity" json:"Weightage_of_Main_Activity"`
	TotalActivityWeightageProgress *float64 `db:"TotalActivityWeightageProgress" json:"TotalActivityWeightageProgress"`
	OutputWeightage                *float64 `db:"OutputWeightage" json:"OutputWeightage"`
}

// ActivityWeightage is a main activity's share of its output, as text off the wire.
type ActivityWeightage struct {
	OutputID  string `db:"OutputID"`
	Weightage string `db:"Weightage"`
}

type OutputWeightage struct {
	OutputID       string `json:"OutputID"`
	TotalWeightage int64  `json:"TotalWeightage"`
}

// RollupOutputWeightage sums weightage per output and rounds each sum up to a whole number.
// Outputs are ordered by id, numerically when both ids are numbers.
func RollupOutputWeightage(activities []ActivityWeightage) []OutputWeightage {
	sums := make(map[string]decimal.Decimal)
	order := make([]string, 0)
	for _, a := range activities {
		if _, ok := sums[a.OutputID]; !ok {
			order = append(order, a.OutputID)
			sums[a.OutputID] = decimal.Zero
		}
		sums[a.OutputID] = sums[a.OutputID].Add(projector.Decimal(a.Weightage))
	}

	sort.SliceStable(order, func(i, j int) bool {
		return lessOutputID(order[i], order[j])
	})

	out := make([]OutputWeightage, 0, len(order))
	for _, id := range order {
		out = append(out, OutputWeightage{
			OutputID:       id,
			TotalWeightage: sums[id].Ceil().IntPart(),
		})
	}
	return out
}

func lessOutputID(a, b string) bool {
	da, errA := decimal.NewFromString(a)
	db, errB := decimal.NewFromString(b)
	if errA == nil && errB == nil && !da.Equal(db) {
		return da.LessThan(db)
	}
	return a < b
}
