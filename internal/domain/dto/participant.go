package dto

type ParticipantRequest struct {
	ParticipantName           string `json:"participant_name"`
	SoDoWoHo                  string `json:"so_do_wo_ho"`
	Gender                    string `json:"gender"`
	OrganizationDepartment    string `json:"organization_department"`
	Designation               string `json:"designation"`
	Profession                string `json:"profession"`
	CNICNumber                string `json:"cnic_number"`
	ContactNumber             string `json:"contact_number"`
	Tehsil                    string `json:"tehsil"`
	District                  string `json:"district"`
	WorkshopTrainingName      string `json:"workshop_training_name"`
	WorkshopSessionConference string `json:"workshop_session_conference"`
	StartDate                 string `json:"start_date"`
	EndDate                   string `json:"end_date"`
	DateEnteredBy             string `json:"date_entered_by"`
}

type UpdateParticipantRequest struct {
	SN FlexInt `json:"sn" validate:"gt=0" message:"Record ID (sn) is required"`
	ParticipantRequest
}

type DeleteParticipantRequest struct {
	SN FlexInt `query:"sn" validate:"gt=0" message:"Record ID (sn) is required"`
}
