package backend_test

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"testing"

	"github.com/buildpro/buildpro-go/internal/backend"
	"github.com/buildpro/buildpro-go/internal/transport"
	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const apiBase = "https://api.buildpro.test/api/v1"

type memTokens struct {
	mu      sync.Mutex
	access  string
	refresh string
	orgID   string
}

func (m *memTokens) AccessToken() (string, error)  { m.mu.Lock(); defer m.mu.Unlock(); return m.access, nil }
func (m *memTokens) RefreshToken() (string, error) { m.mu.Lock(); defer m.mu.Unlock(); return m.refresh, nil }
func (m *memTokens) OrgID() (string, error)        { m.mu.Lock(); defer m.mu.Unlock(); return m.orgID, nil }

func (m *memTokens) SetTokens(access, refresh string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.access = access
	if refresh != "" {
		m.refresh = refresh
	}
	return nil
}

func (m *memTokens) SetOrgID(orgID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.orgID = orgID
	return nil
}

func (m *memTokens) ClearSession() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.access, m.refresh, m.orgID = "", "", ""
	return nil
}

func newClient(t *testing.T, tokens *memTokens) *backend.Client {
	t.Helper()
	httpClient := &http.Client{}
	httpmock.ActivateNonDefault(httpClient)
	t.Cleanup(httpmock.DeactivateAndReset)

	return backend.New(transport.New(transport.Config{
		BaseURL:    apiBase,
		Tokens:     tokens,
		HTTPClient: httpClient,
	}))
}

func TestClient_Login_PersistsSession(t *testing.T) {
	tokens := &memTokens{}
	client := newClient(t, tokens)

	httpmock.RegisterResponder(http.MethodPost, apiBase+"/auth/login",
		httpmock.NewStringResponder(http.StatusOK, `{
			"success": true,
			"data": {
				"access_token": "access-1",
				"refresh_token": "refresh-1",
				"token_type": "bearer",
				"active_organization_id": "org-1",
				"user": {"id": "u-1", "email": "pm@example.com", "first_name": "Dana", "last_name": "Kim", "role": "Project_Manager"}
			}
		}`))

	result, err := client.Login(context.Background(), "pm@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "Dana", result.User.FirstName)

	assert.Equal(t, "access-1", tokens.access)
	assert.Equal(t, "refresh-1", tokens.refresh)
	assert.Equal(t, "org-1", tokens.orgID)
}

func TestClient_Login_InvalidCredentials(t *testing.T) {
	tokens := &memTokens{}
	client := newClient(t, tokens)

	httpmock.RegisterResponder(http.MethodPost, apiBase+"/auth/login",
		httpmock.NewStringResponder(http.StatusUnauthorized,
			`{"success": false, "error": {"code": "INVALID_CREDENTIALS", "message": "Invalid email or password"}}`))

	_, err := client.Login(context.Background(), "pm@example.com", "wrong")
	var apiErr *transport.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "INVALID_CREDENTIALS", apiErr.Code)
	assert.Empty(t, tokens.access)
}

func TestClient_Login_ExpiredCodeDoesNotRefresh(t *testing.T) {
	tokens := &memTokens{access: "stale", refresh: "ref"}
	client := newClient(t, tokens)

	httpmock.RegisterResponder(http.MethodPost, apiBase+"/auth/login",
		httpmock.NewStringResponder(http.StatusUnauthorized,
			`{"success": false, "error": {"code": "TOKEN_EXPIRED", "message": "Token has expired"}}`))

	_, err := client.Login(context.Background(), "pm@example.com", "secret")
	require.Error(t, err)

	// The auth endpoints bypass the refresh-and-retry cycle.
	info := httpmock.GetCallCountInfo()
	assert.Zero(t, info["POST "+apiBase+"/auth/refresh"])
	assert.Equal(t, 1, info["POST "+apiBase+"/auth/login"])
}

func TestClient_Logout_ClearsSessionEvenOnServerError(t *testing.T) {
	tokens := &memTokens{access: "tok", refresh: "ref", orgID: "org"}
	client := newClient(t, tokens)

	httpmock.RegisterResponder(http.MethodPost, apiBase+"/auth/logout",
		httpmock.NewStringResponder(http.StatusInternalServerError,
			`{"success": false, "error": {"code": "INTERNAL_ERROR", "message": "boom"}}`))

	err := client.Logout(context.Background())
	require.Error(t, err)
	assert.Empty(t, tokens.access)
	assert.Empty(t, tokens.refresh)
}

func TestClient_ListProjects_BareArray(t *testing.T) {
	client := newClient(t, &memTokens{access: "tok"})

	httpmock.RegisterResponder(http.MethodGet, apiBase+"/projects",
		httpmock.NewStringResponder(http.StatusOK, `{
			"success": true,
			"data": [
				{"id": "p-1", "project_name": "Harbor Tower", "status": "In_Progress", "total_budget": 1250000.5},
				{"id": "p-2", "project_name": "Depot Refit", "status": "Planning", "total_budget": 90000}
			]
		}`))

	projects, err := client.ListProjects(context.Background())
	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, "Harbor Tower", projects[0].ProjectName)
	assert.Equal(t, "In_Progress", projects[0].Status)
	assert.InDelta(t, 1250000.5, projects[0].TotalBudget, 0.001)
}

func TestClient_ListRisks_ItemsWrapper(t *testing.T) {
	client := newClient(t, &memTokens{access: "tok"})

	httpmock.RegisterResponder(http.MethodGet, apiBase+"/projects/p-1/risks",
		httpmock.NewStringResponder(http.StatusOK, `{
			"success": true,
			"data": {
				"items": [
					{"id": "r-1", "project_id": "p-1", "title": "Ground water", "probability": "Very_High", "impact": "High", "status": "Open"}
				],
				"total": 1
			}
		}`))

	risks, err := client.ListRisks(context.Background(), "p-1")
	require.NoError(t, err)
	require.Len(t, risks, 1)
	assert.Equal(t, "Very_High", risks[0].Probability)
}

func TestClient_CreateTask_SendsWirePayload(t *testing.T) {
	client := newClient(t, &memTokens{access: "tok"})

	httpmock.RegisterResponder(http.MethodPost, apiBase+"/projects/p-1/tasks",
		func(req *http.Request) (*http.Response, error) {
			var payload map[string]any
			if err := json.NewDecoder(req.Body).Decode(&payload); err != nil {
				return httpmock.NewStringResponse(http.StatusBadRequest, "bad body"), nil
			}
			assert.Equal(t, "Pour foundation", payload["name"])
			assert.Equal(t, "In_Progress", payload["status"])
			return httpmock.NewStringResponse(http.StatusOK, `{"success": true, "data": {"id": "t-9"}}`), nil
		})

	err := client.CreateTask(context.Background(), "p-1", backend.TaskPayload{
		Name:    "Pour foundation",
		Status:  "In_Progress",
		DueDate: "2026-09-15",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, httpmock.GetTotalCallCount())
}

func TestClient_ExportReport_Download(t *testing.T) {
	client := newClient(t, &memTokens{access: "tok"})

	responder := func(req *http.Request) (*http.Response, error) {
		resp := httpmock.NewStringResponse(http.StatusOK, "%PDF-1.7")
		resp.Header.Set("Content-Disposition", `attachment; filename="analytics-2026-08.pdf"`)
		return resp, nil
	}
	httpmock.RegisterResponder(http.MethodGet, apiBase+"/analytics/reports/export", responder)

	dl, err := client.ExportReport(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "analytics-2026-08.pdf", dl.Filename)
	assert.Equal(t, []byte("%PDF-1.7"), dl.Data)
}
