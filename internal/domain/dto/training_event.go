package dto

import "github.com/ougirez/rifmis/internal/domain"

type TrainingEventRequest struct {
	TrainingTitle                string  `json:"trainingTitle"`
	Output                       string  `json:"output"`
	SubNo                        string  `json:"subNo"`
	SubActivityName              string  `json:"subActivityName"`
	EventType                    string  `json:"eventType"`
	Venue                        string  `json:"venue"`
	LocationTehsil               string  `json:"locationTehsil"`
	District                     string  `json:"district"`
	StartDate                    string  `json:"startDate"`
	EndDate                      string  `json:"endDate"`
	TrainingFacilitatorName      string  `json:"trainingFacilitatorName"`
	TMAMale                      FlexInt `json:"tmaMale"`
	TMAFemale                    FlexInt `json:"tmaFemale"`
	PHEDMale                     FlexInt `json:"phedMale"`
	PHEDFemale                   FlexInt `json:"phedFemale"`
	LGRDMale                     FlexInt `json:"lgrdMale"`
	LGRDFemale                   FlexInt `json:"lgrdFemale"`
	PDDMale                      FlexInt `json:"pddMale"`
	PDDFemale                    FlexInt `json:"pddFemale"`
	CommunityMale                FlexInt `json:"communityMale"`
	CommunityFemale              FlexInt `json:"communityFemale"`
	AnyOtherMale                 FlexInt `json:"anyOtherMale"`
	AnyOtherFemale               FlexInt `json:"anyOtherFemale"`
	AnyOtherSpecify              string  `json:"anyOtherSpecify"`
	PreTrainingEvaluation        string  `json:"preTrainingEvaluation"`
	PostTrainingEvaluation       string  `json:"postTrainingEvaluation"`
	EventAgendas                 string  `json:"eventAgendas"`
	ExpectedOutcomes             string  `json:"expectedOutcomes"`
	ChallengesFaced              string  `json:"challengesFaced"`
	SuggestedActions             string  `json:"suggestedActions"`
	ActivityCompletionReportLink string  `json:"activityCompletionReportLink"`
	ParticipantListAttachment    string  `json:"participantListAttachment"`
	PictureAttachment            string  `json:"pictureAttachment"`
	Remarks                      string  `json:"remarks"`
	DataCompilerName             string  `json:"dataCompilerName"`
	DataVerifiedBy               string  `json:"dataVerifiedBy"`
}

func (r *TrainingEventRequest) Counts() domain.ParticipantCounts {
	return domain.ParticipantCounts{
		TMAMale:         r.TMAMale.Int64(),
		TMAFemale:       r.TMAFemale.Int64(),
		PHEDMale:        r.PHEDMale.Int64(),
		PHEDFemale:      r.PHEDFemale.Int64(),
		LGRDMale:        r.LGRDMale.Int64(),
		LGRDFemale:      r.LGRDFemale.Int64(),
		PDDMale:         r.PDDMale.Int64(),
		PDDFemale:       r.PDDFemale.Int64(),
		CommunityMale:   r.CommunityMale.Int64(),
		CommunityFemale: r.CommunityFemale.Int64(),
		AnyOtherMale:    r.AnyOtherMale.Int64(),
		AnyOtherFemale:  r.AnyOtherFemale.Int64(),
	}
}

type UpdateTrainingEventRequest struct {
	ID FlexInt `json:"id" validate:"gt=0" message:"Missing required field: ID is required"`
	TrainingEventRequest
}

type DeleteTrainingEventRequest struct {
	ID FlexInt `json:"id" query:"id" validate:"gt=0" message:"Missing required field: ID is required"`
}

type GetTrainingEventRequest struct {
	ID FlexInt `query:"id"`
}
