package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/ougirez/rifmis/internal/domain"
	"github.com/ougirez/rifmis/internal/pkg/constants"
	"github.com/ougirez/rifmis/internal/pkg/filter"
	"github.com/ougirez/rifmis/internal/pkg/projector"
	"github.com/ougirez/rifmis/internal/service/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

type mockStore struct {
	mu sync.Mutex

	calls    []string
	values   filter.Values
	err      error
	writeErr error

	trackingRows []*domain.TrackingRow
	weightages   []domain.ActivityWeightage
	event        *domain.TrainingEvent
	insertedTE   *domain.TrainingEventWrite
	insertedP    *domain.ParticipantWrite
	deletedSN    int64
	byType       []domain.DashboardGroupRow
}

func (m *mockStore) record(call string) {
	m.mu.Lock()
	m.calls = append(m.calls, call)
	m.mu.Unlock()
}

func (m *mockStore) ListTrackingSheet(ctx context.Context, values filter.Values) ([]*domain.TrackingRow, error) {
	m.record("ListTrackingSheet")
	m.values = values
	if m.err != nil {
		return nil, m.err
	}
	if m.trackingRows == nil {
		return []*domain.TrackingRow{}, nil
	}
	return m.trackingRows, nil
}

func (m *mockStore) ListActivityProgress(ctx context.Context) ([]*domain.ActivityProgress, error) {
	m.record("ListActivityProgress")
	return []*domain.ActivityProgress{}, m.err
}

func (m *mockStore) ListActivityWeightage(ctx context.Context) ([]domain.ActivityWeightage, error) {
	m.record("ListActivityWeightage")
	return m.weightages, m.err
}

func (m *mockStore) ListTrainingEvents(ctx context.Context, values filter.Values) ([]*domain.TrainingEvent, error) {
	m.record("ListTrainingEvents")
	m.values = values
	return []*domain.TrainingEvent{}, m.err
}

func (m *mockStore) GetTrainingEvent(ctx context.Context, sn int64) (*domain.TrainingEvent, error) {
	m.record("GetTrainingEvent")
	if m.event == nil || m.event.SN != sn {
		return nil, constants.ErrDBNotFound
	}
	return m.event, nil
}

func (m *mockStore) InsertTrainingEvent(ctx context.Context, w *domain.TrainingEventWrite) error {
	m.record("InsertTrainingEvent")
	m.insertedTE = w
	return m.writeErr
}

func (m *mockStore) UpdateTrainingEvent(ctx context.Context, sn int64, w *domain.TrainingEventWrite) error {
	m.record("UpdateTrainingEvent")
	return m.writeErr
}

func (m *mockStore) DeleteTrainingEvent(ctx context.Context, sn int64) error {
	m.record("DeleteTrainingEvent")
	m.deletedSN = sn
	return m.writeErr
}

func (m *mockStore) DashboardOverall(ctx context.Context) (domain.DashboardTotals, error) {
	m.record("DashboardOverall")
	return domain.DashboardTotals{TotalTrainings: 2, TotalParticipants: 9}, m.err
}

func (m *mockStore) DashboardByEventType(ctx context.Context) ([]domain.DashboardGroupRow, error) {
	m.record("DashboardByEventType")
	return m.byType, m.err
}

func (m *mockStore) DashboardByDistrict(ctx context.Context) ([]domain.DashboardGroupRow, error) {
	m.record("DashboardByDistrict")
	return nil, m.err
}

func (m *mockStore) ListParticipants(ctx context.Context, values filter.Values) ([]*domain.Participant, error) {
	m.record("ListParticipants")
	m.values = values
	return []*domain.Participant{}, m.err
}

func (m *mockStore) InsertParticipant(ctx context.Context, w *domain.ParticipantWrite) (int64, error) {
	m.record("InsertParticipant")
	m.insertedP = w
	return 501, m.writeErr
}

func (m *mockStore) UpdateParticipant(ctx context.Context, sn int64, w *domain.ParticipantWrite) error {
	m.record("UpdateParticipant")
	return m.writeErr
}

func (m *mockStore) DeleteParticipant(ctx context.Context, sn int64) error {
	m.record("DeleteParticipant")
	m.deletedSN = sn
	return m.writeErr
}

func (m *mockStore) Ping(ctx context.Context) error {
	return m.err
}

func newTestAPI(t *testing.T, st *mockStore) *APIService {
	t.Helper()
	svc, err := NewAPIService(st, auth.NewService(testSecret, "", time.Hour), Options{})
	require.NoError(t, err)
	return svc
}

func token(t *testing.T) string {
	t.Helper()
	tok, err := auth.NewService(testSecret, "", time.Hour).IssueToken("compiler-1")
	require.NoError(t, err)
	return tok
}

type call struct {
	method string
	target string
	body   string
	token  string
}

func do(t *testing.T, svc *APIService, c call) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	var body io.Reader
	if c.body != "" {
		body = strings.NewReader(c.body)
	}
	req := httptest.NewRequest(c.method, c.target, body)
	if c.body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	rec := httptest.NewRecorder()
	svc.ServeHTTP(rec, req)

	var decoded map[string]interface{}
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded), rec.Body.String())
	}
	return rec, decoded
}

func TestTrackingSheet(t *testing.T) {
	out := "1"
	st := &mockStore{trackingRows: []*domain.TrackingRow{{OutputID: &out}}}
	svc := newTestAPI(t, st)

	rec, body := do(t, svc, call{method: http.MethodGet, target: "/api/tracking-sheet?district=Swat&tehsil=&bogus=1"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])
	rows := body["trackingData"].([]interface{})
	require.Len(t, rows, 1)
	assert.Equal(t, "1", rows[0].(map[string]interface{})["OutputID"])
	assert.Equal(t, "Swat", st.values["district"])
	assert.Equal(t, "", st.values["tehsil"])
}

func TestTrackingSheet_DatabaseFault(t *testing.T) {
	st := &mockStore{err: fmt.Errorf("store.ListTrackingSheet: %w", &pgconn.PgError{Code: "42P01", Message: `relation "View_Tracking_Sheet" does not exist`})}
	svc := newTestAPI(t, st)

	rec, body := do(t, svc, call{method: http.MethodGet, target: "/api/tracking-sheet"})
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, map[string]interface{}{
		"success": false,
		"message": "Failed to fetch tracking sheet data",
		"error":   `relation "View_Tracking_Sheet" does not exist`,
	}, body)
}

func TestOutputWeightage(t *testing.T) {
	st := &mockStore{weightages: []domain.ActivityWeightage{{OutputID: "1", Weightage: "2.1"}, {OutputID: "1", Weightage: "3.4"}}}
	svc := newTestAPI(t, st)

	rec, body := do(t, svc, call{method: http.MethodGet, target: "/api/tracking-sheet/output-weightage"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []interface{}{map[string]interface{}{"OutputID": "1", "TotalWeightage": float64(6)}}, body["outputWeightage"])
}

func TestActivityProgressSummary_Failure(t *testing.T) {
	st := &mockStore{err: errors.New("i/o timeout")}
	svc := newTestAPI(t, st)

	rec, body := do(t, svc, call{method: http.MethodGet, target: "/api/tracking-sheet/activity-progress-summary"})
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Failed to fetch activity progress summary", body["message"])
	assert.Equal(t, "i/o timeout", body["error"])
}

func TestMutationsRequireCaller(t *testing.T) {
	calls := []call{
		{method: http.MethodPost, target: "/api/training/add", body: `{"trainingTitle":"x"}`},
		{method: http.MethodPut, target: "/api/training/update", body: `{"id":1}`},
		{method: http.MethodDelete, target: "/api/training/delete", body: `{"id":1}`},
		{method: http.MethodPost, target: "/api/training/participants/add", body: `{}`},
		{method: http.MethodPut, target: "/api/training/participants/update", body: `{"sn":1}`},
		{method: http.MethodDelete, target: "/api/training/participants/delete?sn=1"},
		{method: http.MethodPost, target: "/api/training/add", body: `{}`, token: "forged"},
	}

	for _, c := range calls {
		t.Run(c.method+" "+c.target, func(t *testing.T) {
			st := &mockStore{}
			svc := newTestAPI(t, st)

			rec, body := do(t, svc, c)
			require.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, map[string]interface{}{"success": false, "message": "Unauthorized"}, body)
			assert.Empty(t, st.calls)
		})
	}
}

func TestAddTrainingEvent(t *testing.T) {
	st := &mockStore{}
	svc := newTestAPI(t, st)

	rec, body := do(t, svc, call{
		method: http.MethodPost,
		target: "/api/training/add",
		body:   `{"trainingTitle":"GIS","startDate":"2024-01-01","endDate":"2024-01-05","tmaMale":"2","phedMale":3,"venue":""}`,
		token:  token(t),
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]interface{}{"success": true, "message": "Training event added successfully"}, body)

	w := st.insertedTE
	require.NotNil(t, w)
	assert.Equal(t, int64(5), w.TotalDays)
	assert.Equal(t, int64(5), w.Totals.Male)
	assert.Equal(t, int64(5), w.Totals.All)
	assert.Nil(t, w.Venue)
	assert.Equal(t, "compiler-1", *w.DataCompilerName)
}

func TestAddTrainingEvent_Failure(t *testing.T) {
	st := &mockStore{writeErr: errors.New(`null value in column "SN" violates not-null constraint`)}
	svc := newTestAPI(t, st)

	rec, body := do(t, svc, call{method: http.MethodPost, target: "/api/training/add", body: `{}`, token: token(t)})
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Failed to add training event", body["message"])
	assert.Equal(t, `null value in column "SN" violates not-null constraint`, body["error"])
}

func TestAddTrainingEvent_MalformedJSON(t *testing.T) {
	st := &mockStore{}
	svc := newTestAPI(t, st)

	rec, body := do(t, svc, call{method: http.MethodPost, target: "/api/training/add", body: `{"trainingTitle":`, token: token(t)})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, false, body["success"])
	assert.NotContains(t, body, "error")
	assert.Empty(t, st.calls)
}

func TestDeleteTrainingEvent(t *testing.T) {
	t.Run("missing id", func(t *testing.T) {
		st := &mockStore{}
		svc := newTestAPI(t, st)

		rec, body := do(t, svc, call{method: http.MethodDelete, target: "/api/training/delete", body: `{}`, token: token(t)})
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, map[string]interface{}{"success": false, "message": "Missing required field: ID is required"}, body)
		assert.Empty(t, st.calls)
	})

	t.Run("no row", func(t *testing.T) {
		st := &mockStore{writeErr: constants.ErrDBNotFound}
		svc := newTestAPI(t, st)

		rec, body := do(t, svc, call{method: http.MethodDelete, target: "/api/training/delete", body: `{"id":"99"}`, token: token(t)})
		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, map[string]interface{}{"success": false, "message": "No training event found to delete"}, body)
		assert.Equal(t, int64(99), st.deletedSN)
	})

	t.Run("deleted", func(t *testing.T) {
		st := &mockStore{}
		svc := newTestAPI(t, st)

		rec, body := do(t, svc, call{method: http.MethodDelete, target: "/api/training/delete", body: `{"id":12}`, token: token(t)})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Training event deleted successfully", body["message"])
	})
}

func TestUpdateTrainingEvent_MissingID(t *testing.T) {
	st := &mockStore{}
	svc := newTestAPI(t, st)

	rec, body := do(t, svc, call{method: http.MethodPut, target: "/api/training/update", body: `{"trainingTitle":"x"}`, token: token(t)})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Missing required field: ID is required", body["message"])
	assert.Empty(t, st.calls)
}

func TestUpdateTrainingEvent_NotFound(t *testing.T) {
	st := &mockStore{writeErr: constants.ErrDBNotFound}
	svc := newTestAPI(t, st)

	rec, body := do(t, svc, call{method: http.MethodPut, target: "/api/training/update", body: `{"id":3}`, token: token(t)})
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "No training event found to update", body["message"])
}

func TestGetTrainingEvent(t *testing.T) {
	start := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	title := "GIS"
	st := &mockStore{event: &domain.TrainingEvent{SN: 5, TrainingTitle: &title, StartDate: projector.SlashDate{Date: projector.NewDate(&start)}}}
	svc := newTestAPI(t, st)

	rec, body := do(t, svc, call{method: http.MethodGet, target: "/api/training?id=5"})
	require.Equal(t, http.StatusOK, rec.Code)
	data := body["trainingData"].(map[string]interface{})
	assert.Equal(t, float64(5), data["SN"])
	assert.Equal(t, "05/01/2024", data["StartDate"])
	assert.Nil(t, data["EndDate"])

	rec, body = do(t, svc, call{method: http.MethodGet, target: "/api/training?id=6"})
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Training event not found", body["message"])

	rec, _ = do(t, svc, call{method: http.MethodGet, target: "/api/training?id=abc"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListTrainingEvents(t *testing.T) {
	st := &mockStore{}
	svc := newTestAPI(t, st)

	rec, body := do(t, svc, call{method: http.MethodGet, target: "/api/training?eventType=Workshop"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []interface{}{}, body["trainingEvents"])
	assert.Equal(t, "Workshop", st.values["eventType"])
}

func TestTrainingDashboard(t *testing.T) {
	workshop := "Workshop"
	st := &mockStore{byType: []domain.DashboardGroupRow{
		{Key: nil, DashboardTotals: domain.DashboardTotals{TotalTrainings: 1}},
		{Key: &workshop, DashboardTotals: domain.DashboardTotals{TotalTrainings: 1}},
	}}
	svc := newTestAPI(t, st)

	rec, body := do(t, svc, call{method: http.MethodGet, target: "/api/training/dashboard"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(2), body["overall"].(map[string]interface{})["totalTrainings"])

	byType := body["byEventType"].([]interface{})
	require.Len(t, byType, 2)
	assert.Equal(t, "Unknown", byType[0].(map[string]interface{})["eventType"])
	assert.Equal(t, []interface{}{}, body["byDistrict"])
}

func TestParticipants(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		st := &mockStore{}
		svc := newTestAPI(t, st)

		rec, body := do(t, svc, call{method: http.MethodGet, target: "/api/training/participants?gender=Female"})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, []interface{}{}, body["participants"])
		assert.Equal(t, "Female", st.values["gender"])
	})

	t.Run("add returns sn", func(t *testing.T) {
		st := &mockStore{}
		svc := newTestAPI(t, st)

		rec, body := do(t, svc, call{
			method: http.MethodPost,
			target: "/api/training/participants/add",
			body:   `{"participant_name":"Ayesha","start_date":"2024-05-02"}`,
			token:  token(t),
		})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, map[string]interface{}{
			"success": true,
			"message": "Participant record added successfully",
			"sn":      float64(501),
		}, body)
		assert.Equal(t, "compiler-1", *st.insertedP.DateEnteredBy)
	})

	t.Run("update without sn", func(t *testing.T) {
		st := &mockStore{}
		svc := newTestAPI(t, st)

		rec, body := do(t, svc, call{method: http.MethodPut, target: "/api/training/participants/update", body: `{"participant_name":"x"}`, token: token(t)})
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, map[string]interface{}{"success": false, "message": "Record ID (sn) is required"}, body)
		assert.Empty(t, st.calls)
	})

	t.Run("delete without sn", func(t *testing.T) {
		st := &mockStore{}
		svc := newTestAPI(t, st)

		rec, body := do(t, svc, call{method: http.MethodDelete, target: "/api/training/participants/delete", token: token(t)})
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Record ID (sn) is required", body["message"])
		assert.Empty(t, st.calls)
	})

	t.Run("delete missing row", func(t *testing.T) {
		st := &mockStore{writeErr: constants.ErrDBNotFound}
		svc := newTestAPI(t, st)

		rec, body := do(t, svc, call{method: http.MethodDelete, target: "/api/training/participants/delete?sn=44", token: token(t)})
		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "No participant record found to delete", body["message"])
		assert.Equal(t, int64(44), st.deletedSN)
	})

	t.Run("delete", func(t *testing.T) {
		st := &mockStore{}
		svc := newTestAPI(t, st)

		rec, body := do(t, svc, call{method: http.MethodDelete, target: "/api/training/participants/delete?sn=44", token: token(t)})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Participant record deleted successfully", body["message"])
	})
}

func TestExportParticipants(t *testing.T) {
	svc := newTestAPI(t, &mockStore{})

	rec, _ := do(t, svc, call{method: http.MethodGet, target: "/api/training/participants/export"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), ".xlsx")
	// xlsx is a zip archive
	assert.True(t, strings.HasPrefix(rec.Body.String(), "PK"))
}

func TestHealthAndMetrics(t *testing.T) {
	svc := newTestAPI(t, &mockStore{})

	rec, body := do(t, svc, call{method: http.MethodGet, target: "/healthz"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", body["status"])

	rec, _ = do(t, svc, call{method: http.MethodGet, target: "/metrics"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `http_requests_total{method="GET",route="/healthz",status="200"} 1`)
}

func TestHealth_Down(t *testing.T) {
	svc := newTestAPI(t, &mockStore{err: errors.New("connection refused")})

	rec, body := do(t, svc, call{method: http.MethodGet, target: "/healthz"})
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Database unavailable", body["message"])
	assert.Equal(t, "connection refused", body["error"])
}

func TestUnknownRoute(t *testing.T) {
	svc := newTestAPI(t, &mockStore{})

	rec, body := do(t, svc, call{method: http.MethodGet, target: "/api/nope"})
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, false, body["success"])
	assert.NotContains(t, body, "error")
}

func TestDiagnostic(t *testing.T) {
	assert.Equal(t, "deadlock detected",
		diagnostic(constants.Fail("Failed", fmt.Errorf("a: %w", &pgconn.PgError{Message: "deadlock detected"}))))
	assert.Equal(t, "root cause",
		diagnostic(constants.Fail("Failed", fmt.Errorf("a: %w", fmt.Errorf("b: %w", errors.New("root cause"))))))
	assert.Equal(t, "Failed", diagnostic(constants.Fail("Failed", nil)))
}
