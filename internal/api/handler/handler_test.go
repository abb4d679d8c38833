package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Gusi-ui/sadmini-sub001/internal/dto"
	"github.com/Gusi-ui/sadmini-sub001/internal/schedule"
	"github.com/Gusi-ui/sadmini-sub001/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ── mock AssignmentService ──

type mockAssignmentService struct {
	createResult   *dto.AssignmentResponse
	createErr      error
	activateResult *dto.AssignmentResponse
	activateErr    error
	addSlotResult  *dto.TimeSlotResponse
	addSlotErr     error
}

func (m *mockAssignmentService) Create(_ context.Context, _ *dto.CreateAssignmentRequest, _ string) (*dto.AssignmentResponse, error) {
	return m.createResult, m.createErr
}
func (m *mockAssignmentService) GetByID(_ context.Context, _ string) (*dto.AssignmentResponse, error) {
	return nil, service.ErrAssignmentNotFound
}
func (m *mockAssignmentService) List(_ context.Context, _ *dto.AssignmentListRequest) ([]dto.AssignmentResponse, int64, error) {
	return nil, 0, nil
}
func (m *mockAssignmentService) Update(_ context.Context, _ string, _ *dto.UpdateAssignmentRequest, _ string) (*dto.AssignmentResponse, error) {
	return nil, service.ErrAssignmentNotFound
}
func (m *mockAssignmentService) Activate(_ context.Context, _ string, _ string) (*dto.AssignmentResponse, error) {
	return m.activateResult, m.activateErr
}
func (m *mockAssignmentService) End(_ context.Context, _ string, _ *dto.EndAssignmentRequest, _ string) (*dto.AssignmentResponse, error) {
	return nil, service.ErrAssignmentNotFound
}
func (m *mockAssignmentService) AddTimeSlot(_ context.Context, _ string, _ *dto.CreateTimeSlotRequest, _ string) (*dto.TimeSlotResponse, error) {
	return m.addSlotResult, m.addSlotErr
}
func (m *mockAssignmentService) ListTimeSlots(_ context.Context, _ string) ([]dto.TimeSlotResponse, error) {
	return nil, nil
}
func (m *mockAssignmentService) UpdateTimeSlot(_ context.Context, _ string, _ string, _ *dto.UpdateTimeSlotRequest, _ string) (*dto.TimeSlotResponse, error) {
	return nil, service.ErrTimeSlotNotFound
}
func (m *mockAssignmentService) DeactivateTimeSlot(_ context.Context, _ string, _ string, _ string) error {
	return service.ErrTimeSlotNotFound
}

// ── mock ScheduleService ──

type mockScheduleService struct {
	result *dto.ScheduleResponse
	err    error
}

func (m *mockScheduleService) ResolveAssignment(_ context.Context, _ string, _ *dto.ResolveRequest) (*dto.ScheduleResponse, error) {
	return m.result, m.err
}
func (m *mockScheduleService) ResolveWorker(_ context.Context, _ string, _ *dto.ResolveRequest) (*dto.ScheduleResponse, error) {
	return m.result, m.err
}
func (m *mockScheduleService) ResolveClient(_ context.Context, _ string, _ *dto.ResolveRequest) (*dto.ScheduleResponse, error) {
	return m.result, m.err
}

// ── helpers ──

func injectIdentity(c *gin.Context) {
	c.Set("user_id", "admin-001")
	c.Set("role", "admin")
}

func assignmentRouter(svc service.AssignmentService) *gin.Engine {
	h := NewAssignmentHandler(svc)
	r := gin.New()
	r.Use(func(c *gin.Context) { injectIdentity(c); c.Next() })
	r.POST("/assignments", h.Create)
	r.PUT("/assignments/:id/activate", h.Activate)
	r.POST("/assignments/:id/time-slots", h.AddTimeSlot)
	return r
}

func scheduleRouter(svc service.ScheduleService) *gin.Engine {
	h := NewScheduleHandler(svc)
	r := gin.New()
	r.GET("/schedule/workers/:id", h.ResolveWorker)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshaling body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// ── error mapping ──

func TestAssignmentHandler_Activate_ConflictMapsTo409(t *testing.T) {
	svc := &mockAssignmentService{
		activateErr: &schedule.ConflictError{WorkerID: "w1", ClientID: "c1", Reason: "an active assignment already exists for this worker and client"},
	}
	r := assignmentRouter(svc)

	w := doJSON(t, r, http.MethodPut, "/assignments/a1/activate", nil)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", w.Code, w.Body.String())
	}
}

func TestAssignmentHandler_AddTimeSlot_OverlapMapsTo422(t *testing.T) {
	svc := &mockAssignmentService{
		addSlotErr: &schedule.OverlapError{Weekday: 3, DayType: schedule.DayTypeWorkday, Proposed: "[10:00,12:00)", Existing: "[09:00,11:00)"},
	}
	r := assignmentRouter(svc)

	w := doJSON(t, r, http.MethodPost, "/assignments/a1/time-slots", dto.CreateTimeSlotRequest{
		Weekday: 3, DayType: "workday", StartTime: "10:00", EndTime: "12:00",
	})
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", w.Code, w.Body.String())
	}
}

func TestAssignmentHandler_Create_InvalidDateMapsTo400(t *testing.T) {
	svc := &mockAssignmentService{
		createErr: &schedule.InvalidDateError{Value: "01/01/2025", Reason: "expected YYYY-MM-DD"},
	}
	r := assignmentRouter(svc)

	w := doJSON(t, r, http.MethodPost, "/assignments", dto.CreateAssignmentRequest{
		WorkerID:  "3f1f1a32-54f7-41c2-9a1a-86d86e3f4ab1",
		ClientID:  "9a6a6f6f-1f2a-4f6e-bf2b-aaad51d1df6e",
		StartDate: "01/01/2025",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestAssignmentHandler_Activate_EndedMapsTo409(t *testing.T) {
	svc := &mockAssignmentService{activateErr: service.ErrAssignmentEnded}
	r := assignmentRouter(svc)

	w := doJSON(t, r, http.MethodPut, "/assignments/a1/activate", nil)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", w.Code, w.Body.String())
	}
}

func TestScheduleHandler_RangeTooLargeMapsTo400(t *testing.T) {
	svc := &mockScheduleService{err: &schedule.RangeTooLargeError{Days: 732, MaxDays: 366}}
	r := scheduleRouter(svc)

	w := doJSON(t, r, http.MethodGet, "/schedule/workers/w1?from=2025-01-01&to=2027-01-01", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestScheduleHandler_MissingRangeMapsTo400(t *testing.T) {
	svc := &mockScheduleService{result: &dto.ScheduleResponse{}}
	r := scheduleRouter(svc)

	w := doJSON(t, r, http.MethodGet, "/schedule/workers/w1", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 when from/to are missing, got %d", w.Code)
	}
}

func TestScheduleHandler_WorkerNotFoundMapsTo404(t *testing.T) {
	svc := &mockScheduleService{err: service.ErrWorkerNotFound}
	r := scheduleRouter(svc)

	w := doJSON(t, r, http.MethodGet, "/schedule/workers/w1?from=2025-01-01&to=2025-01-31", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

// ── success paths ──

func TestScheduleHandler_ResolveWorker_OK(t *testing.T) {
	svc := &mockScheduleService{result: &dto.ScheduleResponse{
		From: "2025-01-01",
		To:   "2025-01-31",
		Visits: []dto.ResolvedVisitResponse{
			{Date: "2025-01-01", AssignmentID: "a1", StartTime: "10:00", EndTime: "11:00", DayType: "holiday"},
		},
	}}
	r := scheduleRouter(svc)

	w := doJSON(t, r, http.MethodGet, "/schedule/workers/w1?from=2025-01-01&to=2025-01-31", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var envelope struct {
		Code int                  `json:"code"`
		Data dto.ScheduleResponse `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(envelope.Data.Visits) != 1 || envelope.Data.Visits[0].DayType != "holiday" {
		t.Errorf("unexpected payload: %+v", envelope.Data)
	}
}

func TestAssignmentHandler_Create_Created(t *testing.T) {
	svc := &mockAssignmentService{createResult: &dto.AssignmentResponse{
		ID: "a1", Status: "draft",
	}}
	r := assignmentRouter(svc)

	w := doJSON(t, r, http.MethodPost, "/assignments", dto.CreateAssignmentRequest{
		WorkerID:  "3f1f1a32-54f7-41c2-9a1a-86d86e3f4ab1",
		ClientID:  "9a6a6f6f-1f2a-4f6e-bf2b-aaad51d1df6e",
		StartDate: "2025-01-01",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
}
