package domain

import (
	"math"
	"time"

	"github.com/ougirez/rifmis/internal/pkg/projector"
)

// TrainingEvent is a stored training or workshop event. Dates render as DD/MM/YYYY.
type TrainingEvent struct {
	SN                           int64               `db:"SN" json:"SN"`
	TrainingTitle                *string             `db:"TrainingTitle" json:"TrainingTitle"`
	Output                       *string             `db:"Output" json:"Output"`
	SubNo                        *string             `db:"SubNo" json:"SubNo"`
	SubActivityName              *string             `db:"SubActivityName" json:"SubActivityName"`
	EventType                    *string             `db:"EventType" json:"EventType"`
	Venue                        *string             `db:"Venue" json:"Venue"`
	LocationTehsil               *string             `db:"LocationTehsil" json:"LocationTehsil"`
	District                     *string             `db:"District" json:"District"`
	StartDate                    projector.SlashDate `db:"StartDate" json:"StartDate"`
	EndDate                      projector.SlashDate `db:"EndDate" json:"EndDate"`
	TotalDays                    int64               `db:"TotalDays" json:"TotalDays"`
	TrainingFacilitatorName      *string             `db:"TrainingFacilitatorName" json:"TrainingFacilitatorName"`
	TMAMale                      int64               `db:"TMAMale" json:"TMAMale"`
	TMAFemale                    int64               `db:"TMAFemale" json:"TMAFemale"`
	PHEDMale                     int64               `db:"PHEDMale" json:"PHEDMale"`
	PHEDFemale                   int64               `db:"PHEDFemale" json:"PHEDFemale"`
	LGRDMale                     int64               `db:"LGRDMale" json:"LGRDMale"`
	LGRDFemale                   int64               `db:"LGRDFemale" json:"LGRDFemale"`
	PDDMale                      int64               `db:"PDDMale" json:"PDDMale"`
	PDDFemale                    int64               `db:"PDDFemale" json:"PDDFemale"`
	CommunityMale                int64               `db:"CommunityMale" json:"CommunityMale"`
	CommunityFemale              int64               `db:"CommunityFemale" json:"CommunityFemale"`
	AnyOtherMale                 int64               `db:"AnyOtherMale" json:"AnyOtherMale"`
	AnyOtherFemale               int64               `db:"AnyOtherFemale" json:"AnyOtherFemale"`
	AnyOtherSpecify              *string             `db:"AnyOtherSpecify" json:"AnyOtherSpecify"`
	TotalMale                    int64               `db:"TotalMale" json:"TotalMale"`
	TotalFemale                  int64               `db:"TotalFemale" json:"TotalFemale"`
	TotalParticipants            int64               `db:"TotalParticipants" json:"TotalParticipants"`
	PreTrainingEvaluation        *string             `db:"PreTrainingEvaluation" json:"PreTrainingEvaluation"`
	PostTrainingEvaluation       *string             `db:"PostTrainingEvaluation" json:"PostTrainingEvaluation"`
	EventAgendas                 *string             `db:"EventAgendas" json:"EventAgendas"`
	ExpectedOutcomes             *string             `db:"ExpectedOutcomes" json:"ExpectedOutcomes"`
	ChallengesFaced              *string             `db:"ChallengesFaced" json:"ChallengesFaced"`
	SuggestedActions             *string             `db:"SuggestedActions" json:"SuggestedActions"`
	ActivityCompletionReportLink *string             `db:"ActivityCompletionReportLink" json:"ActivityCompletionReportLink"`
	ParticipantListAttachment    *string             `db:"ParticipantListAttachment" json:"ParticipantListAttachment"`
	PictureAttachment            *string             `db:"PictureAttachment" json:"PictureAttachment"`
	Remarks                      *string             `db:"Remarks" json:"Remarks"`
	DataCompilerName             *string             `db:"DataCompilerName" json:"DataCompilerName"`
	DataVerifiedBy               *string             `db:"DataVerifiedBy" json:"DataVerifiedBy"`
	CreatedDate                  projector.Date      `db:"CreatedDate" json:"CreatedDate"`
	LastModifiedDate             projector.Date      `db:"LastModifiedDate" json:"LastModifiedDate"`
}

// ParticipantCounts is the per-stakeholder attendance breakdown of an event.
type ParticipantCounts struct {
	TMAMale         int64
	TMAFemale       int64
	PHEDMale        int64
	PHEDFemale      int64
	LGRDMale        int64
	LGRDFemale      int64
	PDDMale         int64
	PDDFemale       int64
	CommunityMale   int64
	CommunityFemale int64
	AnyOtherMale    int64
	AnyOtherFemale  int64
}

type ParticipantTotals struct {
	Male   int64
	Female int64
	All    int64
}

func (c ParticipantCounts) Totals() ParticipantTotals {
	male := c.TMAMale + c.PHEDMale + c.LGRDMale + c.PDDMale + c.CommunityMale + c.AnyOtherMale
	female := c.TMAFemale + c.PHEDFemale + c.LGRDFemale + c.PDDFemale + c.CommunityFemale + c.AnyOtherFemale
	return ParticipantTotals{Male: male, Female: female, All: male + female}
}

// InclusiveDays counts calendar days covered by [start, end], both ends included.
// A reversed range counts the same as its forward form. Missing dates give 0.
func InclusiveDays(start, end *time.Time) int64 {
	if start == nil || end == nil {
		return 0
	}
	diff := end.Sub(*start)
	if diff < 0 {
		diff = -diff
	}
	return int64(math.Ceil(diff.Hours()/24)) + 1
}

// TrainingEventWrite carries the recognized columns of an insert or full update.
// Nil text and dates are stored as NULL.
type TrainingEventWrite struct {
	TrainingTitle                *string
	Output                       *string
	SubNo                        *string
	SubActivityName              *string
	EventType                    *string
	Venue                        *string
	LocationTehsil               *string
	District                     *string
	StartDate                    *time.Time
	EndDate                      *time.Time
	TotalDays                    int64
	TrainingFacilitatorName      *string
	Counts                       ParticipantCounts
	AnyOtherSpecify              *string
	Totals                       ParticipantTotals
	PreTrainingEvaluation        *string
	PostTrainingEvaluation       *string
	EventAgendas                 *string
	ExpectedOutcomes             *string
	ChallengesFaced              *string
	SuggestedActions             *string
	ActivityCompletionReportLink *string
	ParticipantListAttachment    *string
	PictureAttachment            *string
	Remarks                      *string
	DataCompilerName             *string
	DataVerifiedBy               *string
}
