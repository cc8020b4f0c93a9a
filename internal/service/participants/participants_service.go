package participants

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/ougirez/rifmis/internal/domain"
	"github.com/ougirez/rifmis/internal/domain/dto"
	"github.com/ougirez/rifmis/internal/pkg/constants"
	"github.com/ougirez/rifmis/internal/pkg/filter"
	"github.com/ougirez/rifmis/internal/pkg/logger"
	"github.com/ougirez/rifmis/internal/pkg/projector"
	"github.com/ougirez/rifmis/internal/pkg/store"
	"github.com/ougirez/rifmis/internal/pkg/utils"
	"github.com/xuri/excelize/v2"
)

var (
	ErrNotFoundToUpdate = constants.NewCodedError(http.StatusNotFound, "No participant record found to update")
	ErrNotFoundToDelete = constants.NewCodedError(http.StatusNotFound, "No participant record found to delete")
)

type Service struct {
	store store.ParticipantStore
}

func NewParticipantsService(store store.ParticipantStore) *Service {
	return &Service{store: store}
}

func (s *Service) List(ctx context.Context, values filter.Values) ([]*domain.Participant, error) {
	rows, err := s.store.ListParticipants(ctx, values)
	if err != nil {
		return nil, fmt.Errorf("store.ListParticipants: %w", err)
	}
	return rows, nil
}

func (s *Service) Add(ctx context.Context, callerID string, req *dto.ParticipantRequest) (int64, error) {
	w := newWrite(req)
	// the caller is only the default author of a new record
	if w.DateEnteredBy == nil {
		w.DateEnteredBy = utils.NullString(callerID)
	}
	sn, err := s.store.InsertParticipant(ctx, w)
	if err != nil {
		return 0, fmt.Errorf("store.InsertParticipant: %w", err)
	}
	return sn, nil
}

func (s *Service) Update(ctx context.Context, callerID string, req *dto.UpdateParticipantRequest) error {
	err := s.store.UpdateParticipant(ctx, req.SN.Int64(), newWrite(&req.ParticipantRequest))
	if errors.Is(err, constants.ErrDBNotFound) {
		return ErrNotFoundToUpdate
	}
	if err != nil {
		return fmt.Errorf("store.UpdateParticipant: %w", err)
	}
	logger.Infof(ctx, "participant %d updated by %s", req.SN.Int64(), callerID)
	return nil
}

func (s *Service) Delete(ctx context.Context, sn int64) error {
	err := s.store.DeleteParticipant(ctx, sn)
	if errors.Is(err, constants.ErrDBNotFound) {
		return ErrNotFoundToDelete
	}
	if err != nil {
		return fmt.Errorf("store.DeleteParticipant: %w", err)
	}
	return nil
}

const exportSheet = "Participants"

var exportHeader = []interface{}{
	"S.No", "Participant Name", "S/O, D/O, W/O, H/O", "Gender", "Organization/Department",
	"Designation", "Profession", "CNIC Number", "Contact Number", "Tehsil", "District",
	"Workshop/Training Name", "Workshop Session/Conference", "Start Date", "End Date",
	"Entered By", "Entry Date",
}

// Export writes the filtered participant list as an XLSX workbook.
func (s *Service) Export(ctx context.Context, values filter.Values, w io.Writer) error {
	rows, err := s.List(ctx, values)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err = f.SetSheetName("Sheet1", exportSheet); err != nil {
		return fmt.Errorf("f.SetSheetName: %w", err)
	}
	if err = f.SetSheetRow(exportSheet, "A1", &exportHeader); err != nil {
		return fmt.Errorf("f.SetSheetRow: %w", err)
	}

	for i, p := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("excelize.CoordinatesToCellName: %w", err)
		}
		row := []interface{}{
			p.SN,
			projector.Text(p.ParticipantName),
			projector.Text(p.SoDoWoHo),
			projector.Text(p.Gender),
			projector.Text(p.OrganizationDepartment),
			projector.Text(p.Designation),
			projector.Text(p.Profession),
			projector.Text(p.CNICNumber),
			projector.Text(p.ContactNumber),
			projector.Text(p.Tehsil),
			projector.Text(p.District),
			projector.Text(p.WorkshopTrainingName),
			projector.Text(p.WorkshopSessionConference),
			p.StartDate.String(),
			p.EndDate.String(),
			projector.Text(p.DateEnteredBy),
			p.EntryTimestamp.String(),
		}
		if err = f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return fmt.Errorf("f.SetSheetRow: %w", err)
		}
	}

	if err = f.Write(w); err != nil {
		return fmt.Errorf("f.Write: %w", err)
	}
	return nil
}

func newWrite(req *dto.ParticipantRequest) *domain.ParticipantWrite {
	return &domain.ParticipantWrite{
		ParticipantName:           utils.NullString(req.ParticipantName),
		SoDoWoHo:                  utils.NullString(req.SoDoWoHo),
		Gender:                    utils.NullString(req.Gender),
		OrganizationDepartment:    utils.NullString(req.OrganizationDepartment),
		Designation:               utils.NullString(req.Designation),
		Profession:                utils.NullString(req.Profession),
		CNICNumber:                utils.NullString(req.CNICNumber),
		ContactNumber:             utils.NullString(req.ContactNumber),
		Tehsil:                    utils.NullString(req.Tehsil),
		District:                  utils.NullString(req.District),
		WorkshopTrainingName:      utils.NullString(req.WorkshopTrainingName),
		WorkshopSessionConference: utils.NullString(req.WorkshopSessionConference),
		StartDate:                 projector.ParseDate(req.StartDate),
		EndDate:                   projector.ParseDate(req.EndDate),
		DateEnteredBy:             utils.NullString(req.DateEnteredBy),
	}
}
