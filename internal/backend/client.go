// Package backend is the typed REST surface of the BuildPro API, one
// method per endpoint, built on the transport client.
package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/buildpro/buildpro-go/internal/transport"
)

// Client exposes the API endpoints the dashboard consumes.
type Client struct {
	t *transport.Client
}

// New wraps a transport client.
func New(t *transport.Client) *Client {
	return &Client{t: t}
}

// Transport returns the underlying transport client.
func (c *Client) Transport() *transport.Client {
	return c.t
}

// HasSession reports whether an access token is persisted.
func (c *Client) HasSession() bool {
	return c.t.HasSession()
}

// Login authenticates and persists the returned tokens and active
// organization.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	data, err := c.t.DoOnce(ctx, http.MethodPost, "/auth/login", nil, map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return nil, err
	}

	var result LoginResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("decoding login response: %w", err)
	}

	tokens := c.t.Tokens()
	if err := tokens.SetTokens(result.AccessToken, result.RefreshToken); err != nil {
		return nil, err
	}
	if setter, ok := tokens.(orgSetter); ok && result.ActiveOrganizationID != "" {
		if err := setter.SetOrgID(result.ActiveOrganizationID); err != nil {
			return nil, err
		}
	}
	return &result, nil
}

type orgSetter interface {
	SetOrgID(orgID string) error
}

// Logout ends the server session and clears persisted state. Local state
// is cleared even when the server call fails.
func (c *Client) Logout(ctx context.Context) error {
	_, callErr := c.t.DoOnce(ctx, http.MethodPost, "/auth/logout", nil, nil)
	if err := c.t.Tokens().ClearSession(); err != nil {
		return err
	}
	return callErr
}

// Me returns the authenticated user.
func (c *Client) Me(ctx context.Context) (*UserRecord, error) {
	return get[UserRecord](ctx, c, "/auth/me")
}

// Projects

func (c *Client) ListProjects(ctx context.Context) ([]ProjectRecord, error) {
	return list[ProjectRecord](ctx, c, "/projects")
}

func (c *Client) CreateProject(ctx context.Context, p ProjectPayload) error {
	return c.send(ctx, http.MethodPost, "/projects", p)
}

func (c *Client) UpdateProject(ctx context.Context, id string, p ProjectPayload) error {
	return c.send(ctx, http.MethodPut, "/projects/"+id, p)
}

func (c *Client) DeleteProject(ctx context.Context, id string) error {
	return c.send(ctx, http.MethodDelete, "/projects/"+id, nil)
}

// Project sub-resources

func (c *Client) ListTasks(ctx context.Context, projectID string) ([]TaskRecord, error) {
	return list[TaskRecord](ctx, c, subPath(projectID, "tasks", ""))
}

func (c *Client) CreateTask(ctx context.Context, projectID string, p TaskPayload) error {
	return c.send(ctx, http.MethodPost, subPath(projectID, "tasks", ""), p)
}

func (c *Client) UpdateTask(ctx context.Context, projectID, taskID string, p TaskPayload) error {
	return c.send(ctx, http.MethodPut, subPath(projectID, "tasks", taskID), p)
}

func (c *Client) DeleteTask(ctx context.Context, projectID, taskID string) error {
	return c.send(ctx, http.MethodDelete, subPath(projectID, "tasks", taskID), nil)
}

func (c *Client) ListRisks(ctx context.Context, projectID string) ([]RiskRecord, error) {
	return list[RiskRecord](ctx, c, subPath(projectID, "risks", ""))
}

func (c *Client) CreateRisk(ctx context.Context, projectID string, p RiskPayload) error {
	return c.send(ctx, http.MethodPost, subPath(projectID, "risks", ""), p)
}

func (c *Client) UpdateRisk(ctx context.Context, projectID, riskID string, p RiskPayload) error {
	return c.send(ctx, http.MethodPut, subPath(projectID, "risks", riskID), p)
}

func (c *Client) DeleteRisk(ctx context.Context, projectID, riskID string) error {
	return c.send(ctx, http.MethodDelete, subPath(projectID, "risks", riskID), nil)
}

func (c *Client) ListExpenses(ctx context.Context, projectID string) ([]ExpenseRecord, error) {
	return list[ExpenseRecord](ctx, c, subPath(projectID, "expenses", ""))
}

func (c *Client) CreateExpense(ctx context.Context, projectID string, p ExpensePayload) error {
	return c.send(ctx, http.MethodPost, subPath(projectID, "expenses", ""), p)
}

func (c *Client) UpdateExpense(ctx context.Context, projectID, expenseID string, p ExpensePayload) error {
	return c.send(ctx, http.MethodPut, subPath(projectID, "expenses", expenseID), p)
}

func (c *Client) DeleteExpense(ctx context.Context, projectID, expenseID string) error {
	return c.send(ctx, http.MethodDelete, subPath(projectID, "expenses", expenseID), nil)
}

func (c *Client) ListDocuments(ctx context.Context, projectID string) ([]DocumentRecord, error) {
	return list[DocumentRecord](ctx, c, subPath(projectID, "documents", ""))
}

func (c *Client) CreateDocument(ctx context.Context, projectID string, p DocumentPayload) error {
	return c.send(ctx, http.MethodPost, subPath(projectID, "documents", ""), p)
}

func (c *Client) UpdateDocument(ctx context.Context, projectID, documentID string, p DocumentPayload) error {
	return c.send(ctx, http.MethodPut, subPath(projectID, "documents", documentID), p)
}

func (c *Client) DeleteDocument(ctx context.Context, projectID, documentID string) error {
	return c.send(ctx, http.MethodDelete, subPath(projectID, "documents", documentID), nil)
}

func (c *Client) ListMilestones(ctx context.Context, projectID string) ([]MilestoneRecord, error) {
	return list[MilestoneRecord](ctx, c, subPath(projectID, "milestones", ""))
}

func (c *Client) CreateMilestone(ctx context.Context, projectID string, p MilestonePayload) error {
	return c.send(ctx, http.MethodPost, subPath(projectID, "milestones", ""), p)
}

func (c *Client) UpdateMilestone(ctx context.Context, projectID, milestoneID string, p MilestonePayload) error {
	return c.send(ctx, http.MethodPut, subPath(projectID, "milestones", milestoneID), p)
}

func (c *Client) DeleteMilestone(ctx context.Context, projectID, milestoneID string) error {
	return c.send(ctx, http.MethodDelete, subPath(projectID, "milestones", milestoneID), nil)
}

// Messages

func (c *Client) ListMessages(ctx context.Context) ([]MessageRecord, error) {
	return list[MessageRecord](ctx, c, "/messages")
}

func (c *Client) CreateMessage(ctx context.Context, p MessagePayload) error {
	return c.send(ctx, http.MethodPost, "/messages", p)
}

func (c *Client) MarkMessageRead(ctx context.Context, messageID string) error {
	return c.send(ctx, http.MethodPatch, "/messages/"+messageID+"/read", nil)
}

// Notifications

func (c *Client) ListNotifications(ctx context.Context) ([]NotificationRecord, error) {
	return list[NotificationRecord](ctx, c, "/notifications")
}

func (c *Client) MarkNotificationRead(ctx context.Context, notificationID string) error {
	return c.send(ctx, http.MethodPost, "/notifications/"+notificationID+"/read", nil)
}

func (c *Client) MarkAllNotificationsRead(ctx context.Context) error {
	return c.send(ctx, http.MethodPost, "/notifications/read-all", nil)
}

// ExportReport fetches the analytics report as a binary download.
func (c *Client) ExportReport(ctx context.Context, query url.Values) (*transport.Download, error) {
	return c.t.Download(ctx, "/analytics/reports/export", transport.DownloadOptions{
		Query:           query,
		DefaultFilename: "report.pdf",
	})
}

func (c *Client) send(ctx context.Context, method, path string, body any) error {
	_, err := c.t.Do(ctx, method, path, nil, body)
	return err
}

func subPath(projectID, kind, itemID string) string {
	path := "/projects/" + projectID + "/" + kind
	if itemID != "" {
		path += "/" + itemID
	}
	return path
}

func get[T any](ctx context.Context, c *Client, path string) (*T, error) {
	data, err := c.t.Do(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}
	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("decoding %s response: %w", path, err)
	}
	return &out, nil
}

// list decodes either a bare array or an {items: [...]} wrapper; the API
// uses both shapes depending on the endpoint.
func list[T any](ctx context.Context, c *Client, path string) ([]T, error) {
	data, err := c.t.Do(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}

	var items []T
	if err := json.Unmarshal(data, &items); err == nil {
		return items, nil
	}

	var wrapped struct {
		Items []T `json:"items"`
	}
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return nil, fmt.Errorf("decoding %s response: %w", path, err)
	}
	return wrapped.Items, nil
}
