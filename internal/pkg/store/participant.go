package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/ougirez/rifmis/internal/domain"
	"github.com/ougirez/rifmis/internal/pkg/constants"
	"github.com/ougirez/rifmis/internal/pkg/filter"
)

var participantColumns = []column{
	{"sn", asIs},
	{"participant_name", asText},
	{"so_do_wo_ho", asText},
	{"gender", asText},
	{"organization_department", asText},
	{"designation", asText},
	{"profession", asText},
	{"cnic_number", asText},
	{"contact_number", asText},
	{"tehsil", asText},
	{"district", asText},
	{"workshop_training_name", asText},
	{"workshop_session_conference", asText},
	{"start_date", asDate},
	{"end_date", asDate},
	{"date_entered_by", asText},
	{"entry_timestamp", asDate},
}

func participantSetMap(w *domain.ParticipantWrite) map[string]interface{} {
	return map[string]interface{}{
		filter.Quote("participant_name"):            w.ParticipantName,
		filter.Quote("so_do_wo_ho"):                 w.SoDoWoHo,
		filter.Quote("gender"):                      w.Gender,
		filter.Quote("organization_department"):     w.OrganizationDepartment,
		filter.Quote("designation"):                 w.Designation,
		filter.Quote("profession"):                  w.Profession,
		filter.Quote("cnic_number"):                 w.CNICNumber,
		filter.Quote("contact_number"):              w.ContactNumber,
		filter.Quote("tehsil"):                      w.Tehsil,
		filter.Quote("district"):                    w.District,
		filter.Quote("workshop_training_name"):      w.WorkshopTrainingName,
		filter.Quote("workshop_session_conference"): w.WorkshopSessionConference,
		filter.Quote("start_date"):                  w.StartDate,
		filter.Quote("end_date"):                    w.EndDate,
		filter.Quote("date_entered_by"):             w.DateEnteredBy,
	}
}

func (s *store) ListParticipants(ctx context.Context, values filter.Values) ([]*domain.Participant, error) {
	table := s.table(tableWorkshopParticipants)
	order := sourceOrder(table, "entry_timestamp", "participant_name")
	query := filter.Participants.Select(
		builder().Select(selectList(participantColumns)...).From(table),
		values,
		desc(order[0]), order[1],
	)

	rows := make([]*domain.Participant, 0)
	if err := s.pool.Selectx(ctx, &rows, query); err != nil {
		return nil, wrapErr(err)
	}
	return rows, nil
}

// InsertParticipant stores a participant, stamps entry_timestamp and returns the new sn.
func (s *store) InsertParticipant(ctx context.Context, w *domain.ParticipantWrite) (int64, error) {
	set := participantSetMap(w)
	set[filter.Quote("entry_timestamp")] = sq.Expr("NOW()")

	query := builder().Insert(s.table(tableWorkshopParticipants)).
		SetMap(set).
		Suffix(`RETURNING "sn"`)

	var sn int64
	if err := s.pool.Getx(ctx, &sn, query); err != nil {
		return 0, wrapErr(err)
	}
	return sn, nil
}

// UpdateParticipant rewrites every editable column. entry_timestamp is never touched.
func (s *store) UpdateParticipant(ctx context.Context, sn int64, w *domain.ParticipantWrite) error {
	query := builder().Update(s.table(tableWorkshopParticipants)).
		SetMap(participantSetMap(w)).
		Where(sq.Eq{filter.Quote("sn"): sn})

	tag, err := s.pool.Execx(ctx, query)
	if err != nil {
		return wrapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return constants.ErrDBNotFound
	}
	return nil
}

func (s *store) DeleteParticipant(ctx context.Context, sn int64) error {
	query := builder().Delete(s.table(tableWorkshopParticipants)).
		Where(sq.Eq{filter.Quote("sn"): sn})

	tag, err := s.pool.Execx(ctx, query)
	if err != nil {
		return wrapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return constants.ErrDBNotFound
	}
	return nil
}
