package store

import (
	"context"

	"github.com/buildpro/buildpro-go/internal/backend"
)

// Backend is the slice of the API surface the store consumes.
// *backend.Client satisfies it.
type Backend interface {
	ListProjects(ctx context.Context) ([]backend.ProjectRecord, error)
	ListTasks(ctx context.Context, projectID string) ([]backend.TaskRecord, error)
	ListRisks(ctx context.Context, projectID string) ([]backend.RiskRecord, error)
	ListExpenses(ctx context.Context, projectID string) ([]backend.ExpenseRecord, error)
	ListDocuments(ctx context.Context, projectID string) ([]backend.DocumentRecord, error)
	ListMilestones(ctx context.Context, projectID string) ([]backend.MilestoneRecord, error)
	ListMessages(ctx context.Context) ([]backend.MessageRecord, error)

	CreateProject(ctx context.Context, p backend.ProjectPayload) error
	UpdateProject(ctx context.Context, id string, p backend.ProjectPayload) error
	DeleteProject(ctx context.Context, id string) error

	CreateTask(ctx context.Context, projectID string, p backend.TaskPayload) error
	UpdateTask(ctx context.Context, projectID, taskID string, p backend.TaskPayload) error
	DeleteTask(ctx context.Context, projectID, taskID string) error

	CreateRisk(ctx context.Context, projectID string, p backend.RiskPayload) error
	UpdateRisk(ctx context.Context, projectID, riskID string, p backend.RiskPayload) error
	DeleteRisk(ctx context.Context, projectID, riskID string) error

	CreateExpense(ctx context.Context, projectID string, p backend.ExpensePayload) error
	UpdateExpense(ctx context.Context, projectID, expenseID string, p backend.ExpensePayload) error
	DeleteExpense(ctx context.Context, projectID, expenseID string) error

	CreateDocument(ctx context.Context, projectID string, p backend.DocumentPayload) error
	UpdateDocument(ctx context.Context, projectID, documentID string, p backend.DocumentPayload) error
	DeleteDocument(ctx context.Context, projectID, documentID string) error

	CreateMilestone(ctx context.Context, projectID string, p backend.MilestonePayload) error
	UpdateMilestone(ctx context.Context, projectID, milestoneID string, p backend.MilestonePayload) error
	DeleteMilestone(ctx context.Context, projectID, milestoneID string) error

	CreateMessage(ctx context.Context, p backend.MessagePayload) error
	MarkMessageRead(ctx context.Context, messageID string) error
}

// TokenSource reports the persisted access token, used to distinguish a
// logged-out client from an unreachable backend.
type TokenSource interface {
	AccessToken() (string, error)
}
