package domain

import (
	"time"

	"github.com/ougirez/rifmis/internal/pkg/projector"
)

type Participant struct {
	SN                        int64          `db:"sn" json:"sn"`
	ParticipantName           *string        `db:"participant_name" json:"participant_name"`
	SoDoWoHo                  *string        `db:"so_do_wo_ho" json:"so_do_wo_ho"`
	Gender                    *string        `db:"gender" json:"gender"`
	OrganizationDepartment    *string        `db:"organization_department" json:"organization_department"`
	Designation               *string        `db:"designation" json:"designation"`
	Profession                *string        `db:"profession" json:"profession"`
	CNICNumber                *string        `db:"cnic_number" json:"cnic_number"`
	ContactNumber             *string        `db:"contact_number" json:"contact_number"`
	Tehsil                    *string        `db:"tehsil" json:"tehsil"`
	District                  *string        `db:"district" json:"district"`
	WorkshopTrainingName      *string        `db:"workshop_training_name" json:"workshop_training_name"`
	WorkshopSessionConference *string        `db:"workshop_session_conference" json:"workshop_session_conference"`
	StartDate                 projector.Date `db:"start_date" json:"start_date"`
	EndDate                   projector.Date `db:"end_date" json:"end_date"`
	DateEnteredBy             *string        `db:"date_entered_by" json:"date_entered_by"`
	EntryTimestamp            projector.Date `db:"entry_timestamp" json:"entry_timestamp"`
}

type ParticipantWrite struct {
	ParticipantName           *string
	SoDoWoHo                  *string
	Gender                    *string
	OrganizationDepartment    *string
	Designation               *string
	Profession                *string
	CNICNumber                *string
	ContactNumber             *string
	Tehsil                    *string
	District                  *string
	WorkshopTrainingName      *string
	WorkshopSessionConference *string
	StartDate                 *time.Time
	EndDate                   *time.Time
	DateEnteredBy             *string
}
