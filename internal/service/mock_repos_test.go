package service

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/Gusi-ui/sadmini-sub001/internal/model"
)

// ── mock UserRepository ──

type mockUserRepo struct {
	users map[string]*model.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	if user.UserID == "" {
		user.UserID = "user-" + user.Email
	}
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) Update(_ context.Context, user *model.User) error {
	m.users[user.UserID] = user
	return nil
}

// ── mock WorkerRepository ──

type mockWorkerRepo struct {
	workers map[string]*model.Worker
}

func newMockWorkerRepo() *mockWorkerRepo {
	return &mockWorkerRepo{workers: make(map[string]*model.Worker)}
}

func (m *mockWorkerRepo) Create(_ context.Context, worker *model.Worker) error {
	if worker.WorkerID == "" {
		worker.WorkerID = "worker-" + worker.EmployeeCode
	}
	m.workers[worker.WorkerID] = worker
	return nil
}

func (m *mockWorkerRepo) GetByID(_ context.Context, id string) (*model.Worker, error) {
	if w, ok := m.workers[id]; ok {
		return w, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockWorkerRepo) List(_ context.Context, municipality string, page, pageSize int) ([]model.Worker, int64, error) {
	var result []model.Worker
	for _, w := range m.workers {
		if municipality != "" && w.Municipality != municipality {
			continue
		}
		result = append(result, *w)
	}
	return result, int64(len(result)), nil
}

func (m *mockWorkerRepo) Update(_ context.Context, worker *model.Worker) error {
	m.workers[worker.WorkerID] = worker
	return nil
}

func (m *mockWorkerRepo) Delete(_ context.Context, id string, _ string) error {
	delete(m.workers, id)
	return nil
}

// ── mock ClientRepository ──

type mockClientRepo struct {
	clients map[string]*model.Client
}

func newMockClientRepo() *mockClientRepo {
	return &mockClientRepo{clients: make(map[string]*model.Client)}
}

func (m *mockClientRepo) Create(_ context.Context, client *model.Client) error {
	if client.ClientID == "" {
		client.ClientID = "client-" + client.Name
	}
	m.clients[client.ClientID] = client
	return nil
}

func (m *mockClientRepo) GetByID(_ context.Context, id string) (*model.Client, error) {
	if c, ok := m.clients[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockClientRepo) List(_ context.Context, municipality string, page, pageSize int) ([]model.Client, int64, error) {
	var result []model.Client
	for _, c := range m.clients {
		if municipality != "" && c.Municipality != municipality {
			continue
		}
		result = append(result, *c)
	}
	return result, int64(len(result)), nil
}

func (m *mockClientRepo) Update(_ context.Context, client *model.Client) error {
	m.clients[client.ClientID] = client
	return nil
}

func (m *mockClientRepo) Delete(_ context.Context, id string, _ string) error {
	delete(m.clients, id)
	return nil
}

// ── mock HolidayRepository ──

type mockHolidayRepo struct {
	holidays map[string]*model.Holiday
	seq      int
}

func newMockHolidayRepo() *mockHolidayRepo {
	return &mockHolidayRepo{holidays: make(map[string]*model.Holiday)}
}

func (m *mockHolidayRepo) Create(_ context.Context, holiday *model.Holiday) error {
	if holiday.HolidayID == "" {
		m.seq++
		holiday.HolidayID = fmt.Sprintf("holiday-%03d", m.seq)
	}
	m.holidays[holiday.HolidayID] = holiday
	return nil
}

func (m *mockHolidayRepo) GetByID(_ context.Context, id string) (*model.Holiday, error) {
	if h, ok := m.holidays[id]; ok {
		return h, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockHolidayRepo) List(_ context.Context, municipality string, year int) ([]model.Holiday, error) {
	var result []model.Holiday
	for _, h := range m.holidays {
		if municipality != "" && h.Municipality != municipality && h.Municipality != "" {
			continue
		}
		if year != 0 && h.Day.Year() != year {
			continue
		}
		result = append(result, *h)
	}
	return result, nil
}

func (m *mockHolidayRepo) ListForMunicipality(_ context.Context, municipality string) ([]model.Holiday, error) {
	var result []model.Holiday
	for _, h := range m.holidays {
		if !h.IsActive {
			continue
		}
		if h.Municipality == "" || h.Municipality == municipality {
			result = append(result, *h)
		}
	}
	return result, nil
}

func (m *mockHolidayRepo) ActiveOn(_ context.Context, day time.Time, municipality string) (*model.Holiday, error) {
	for _, h := range m.holidays {
		if h.IsActive && h.Municipality == municipality && h.Day.Equal(day) {
			return h, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockHolidayRepo) Update(_ context.Context, holiday *model.Holiday) error {
	m.holidays[holiday.HolidayID] = holiday
	return nil
}

func (m *mockHolidayRepo) Deactivate(_ context.Context, id string, _ string) error {
	if h, ok := m.holidays[id]; ok {
		h.IsActive = false
		return nil
	}
	return gorm.ErrRecordNotFound
}

// ── mock AssignmentRepository ──

type mockAssignmentRepo struct {
	assignments map[string]*model.Assignment
	seq         int
}

func newMockAssignmentRepo() *mockAssignmentRepo {
	return &mockAssignmentRepo{assignments: make(map[string]*model.Assignment)}
}

func (m *mockAssignmentRepo) Create(_ context.Context, assignment *model.Assignment) error {
	if assignment.AssignmentID == "" {
		m.seq++
		assignment.AssignmentID = fmt.Sprintf("assignment-%03d", m.seq)
	}
	m.assignments[assignment.AssignmentID] = assignment
	return nil
}

func (m *mockAssignmentRepo) GetByID(_ context.Context, id string) (*model.Assignment, error) {
	if a, ok := m.assignments[id]; ok {
		return a, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAssignmentRepo) List(_ context.Context, workerID, clientID, status string, page, pageSize int) ([]model.Assignment, int64, error) {
	var result []model.Assignment
	for _, a := range m.assignments {
		if workerID != "" && a.WorkerID != workerID {
			continue
		}
		if clientID != "" && a.ClientID != clientID {
			continue
		}
		if status != "" && a.Status != status {
			continue
		}
		result = append(result, *a)
	}
	return result, int64(len(result)), nil
}

func (m *mockAssignmentRepo) ListActive(_ context.Context, workerID, clientID string) ([]model.Assignment, error) {
	var result []model.Assignment
	for _, a := range m.assignments {
		if !a.IsActive {
			continue
		}
		if workerID != "" && a.WorkerID != workerID {
			continue
		}
		if clientID != "" && a.ClientID != clientID {
			continue
		}
		result = append(result, *a)
	}
	return result, nil
}

func (m *mockAssignmentRepo) ListActiveByWorker(_ context.Context, workerID string) ([]model.Assignment, error) {
	var result []model.Assignment
	for _, a := range m.assignments {
		if a.IsActive && a.WorkerID == workerID {
			result = append(result, *a)
		}
	}
	return result, nil
}

func (m *mockAssignmentRepo) ListActiveByClient(_ context.Context, clientID string) ([]model.Assignment, error) {
	var result []model.Assignment
	for _, a := range m.assignments {
		if a.IsActive && a.ClientID == clientID {
			result = append(result, *a)
		}
	}
	return result, nil
}

func (m *mockAssignmentRepo) Update(_ context.Context, assignment *model.Assignment) error {
	m.assignments[assignment.AssignmentID] = assignment
	return nil
}

func (m *mockAssignmentRepo) EndExpired(_ context.Context, today time.Time) (int64, error) {
	var n int64
	for _, a := range m.assignments {
		if a.IsActive && a.EndDate != nil && a.EndDate.Before(today) {
			a.IsActive = false
			a.Status = model.AssignmentStatusEnded
			n++
		}
	}
	return n, nil
}

// ── mock TimeSlotRepository ──

type mockTimeSlotRepo struct {
	slots map[string]*model.TimeSlot
	seq   int
}

func newMockTimeSlotRepo() *mockTimeSlotRepo {
	return &mockTimeSlotRepo{slots: make(map[string]*model.TimeSlot)}
}

func (m *mockTimeSlotRepo) Create(_ context.Context, slot *model.TimeSlot) error {
	if slot.TimeSlotID == "" {
		m.seq++
		slot.TimeSlotID = fmt.Sprintf("slot-%03d", m.seq)
	}
	m.slots[slot.TimeSlotID] = slot
	return nil
}

func (m *mockTimeSlotRepo) GetByID(_ context.Context, id string) (*model.TimeSlot, error) {
	if s, ok := m.slots[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTimeSlotRepo) ListByAssignment(_ context.Context, assignmentID string) ([]model.TimeSlot, error) {
	var result []model.TimeSlot
	for _, s := range m.slots {
		if s.AssignmentID == assignmentID {
			result = append(result, *s)
		}
	}
	return result, nil
}

func (m *mockTimeSlotRepo) Update(_ context.Context, slot *model.TimeSlot) error {
	m.slots[slot.TimeSlotID] = slot
	return nil
}

func (m *mockTimeSlotRepo) Deactivate(_ context.Context, id string, _ string) error {
	if s, ok := m.slots[id]; ok {
		s.IsActive = false
		return nil
	}
	return gorm.ErrRecordNotFound
}
