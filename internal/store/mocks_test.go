package store

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/buildpro/buildpro-go/internal/backend"
)

// backendMock is a mock for the Backend interface.
type backendMock struct {
	mock.Mock
}

func (m *backendMock) ListProjects(ctx context.Context) ([]backend.ProjectRecord, error) {
	args := m.Called(ctx)
	if recs, ok := args.Get(0).([]backend.ProjectRecord); ok {
		return recs, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *backendMock) ListTasks(ctx context.Context, projectID string) ([]backend.TaskRecord, error) {
	args := m.Called(ctx, projectID)
	if recs, ok := args.Get(0).([]backend.TaskRecord); ok {
		return recs, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *backendMock) ListRisks(ctx context.Context, projectID string) ([]backend.RiskRecord, error) {
	args := m.Called(ctx, projectID)
	if recs, ok := args.Get(0).([]backend.RiskRecord); ok {
		return recs, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *backendMock) ListExpenses(ctx context.Context, projectID string) ([]backend.ExpenseRecord, error) {
	args := m.Called(ctx, projectID)
	if recs, ok := args.Get(0).([]backend.ExpenseRecord); ok {
		return recs, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *backendMock) ListDocuments(ctx context.Context, projectID string) ([]backend.DocumentRecord, error) {
	args := m.Called(ctx, projectID)
	if recs, ok := args.Get(0).([]backend.DocumentRecord); ok {
		return recs, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *backendMock) ListMilestones(ctx context.Context, projectID string) ([]backend.MilestoneRecord, error) {
	args := m.Called(ctx, projectID)
	if recs, ok := args.Get(0).([]backend.MilestoneRecord); ok {
		return recs, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *backendMock) ListMessages(ctx context.Context) ([]backend.MessageRecord, error) {
	args := m.Called(ctx)
	if recs, ok := args.Get(0).([]backend.MessageRecord); ok {
		return recs, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *backendMock) CreateProject(ctx context.Context, p backend.ProjectPayload) error {
	return m.Called(ctx, p).Error(0)
}

func (m *backendMock) UpdateProject(ctx context.Context, id string, p backend.ProjectPayload) error {
	return m.Called(ctx, id, p).Error(0)
}

func (m *backendMock) DeleteProject(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *backendMock) CreateTask(ctx context.Context, projectID string, p backend.TaskPayload) error {
	return m.Called(ctx, projectID, p).Error(0)
}

func (m *backendMock) UpdateTask(ctx context.Context, projectID, taskID string, p backend.TaskPayload) error {
	return m.Called(ctx, projectID, taskID, p).Error(0)
}

func (m *backendMock) DeleteTask(ctx context.Context, projectID, taskID string) error {
	return m.Called(ctx, projectID, taskID).Error(0)
}

func (m *backendMock) CreateRisk(ctx context.Context, projectID string, p backend.RiskPayload) error {
	return m.Called(ctx, projectID, p).Error(0)
}

func (m *backendMock) UpdateRisk(ctx context.Context, projectID, riskID string, p backend.RiskPayload) error {
	return m.Called(ctx, projectID, riskID, p).Error(0)
}

func (m *backendMock) DeleteRisk(ctx context.Context, projectID, riskID string) error {
	return m.Called(ctx, projectID, riskID).Error(0)
}

func (m *backendMock) CreateExpense(ctx context.Context, projectID string, p backend.ExpensePayload) error {
	return m.Called(ctx, projectID, p).Error(0)
}

func (m *backendMock) UpdateExpense(ctx context.Context, projectID, expenseID string, p backend.ExpensePayload) error {
	return m.Called(ctx, projectID, expenseID, p).Error(0)
}

func (m *backendMock) DeleteExpense(ctx context.Context, projectID, expenseID string) error {
	return m.Called(ctx, projectID, expenseID).Error(0)
}

func (m *backendMock) CreateDocument(ctx context.Context, projectID string, p backend.DocumentPayload) error {
	return m.Called(ctx, projectID, p).Error(0)
}

func (m *backendMock) UpdateDocument(ctx context.Context, projectID, documentID string, p backend.DocumentPayload) error {
	return m.Called(ctx, projectID, documentID, p).Error(0)
}

func (m *backendMock) DeleteDocument(ctx context.Context, projectID, documentID string) error {
	return m.Called(ctx, projectID, documentID).Error(0)
}

func (m *backendMock) CreateMilestone(ctx context.Context, projectID string, p backend.MilestonePayload) error {
	return m.Called(ctx, projectID, p).Error(0)
}

func (m *backendMock) UpdateMilestone(ctx context.Context, projectID, milestoneID string, p backend.MilestonePayload) error {
	return m.Called(ctx, projectID, milestoneID, p).Error(0)
}

func (m *backendMock) DeleteMilestone(ctx context.Context, projectID, milestoneID string) error {
	return m.Called(ctx, projectID, milestoneID).Error(0)
}

func (m *backendMock) CreateMessage(ctx context.Context, p backend.MessagePayload) error {
	return m.Called(ctx, p).Error(0)
}

func (m *backendMock) MarkMessageRead(ctx context.Context, messageID string) error {
	return m.Called(ctx, messageID).Error(0)
}

// tokenMock is a mock for TokenSource.
type tokenMock struct {
	mock.Mock
}

func (m *tokenMock) AccessToken() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}
