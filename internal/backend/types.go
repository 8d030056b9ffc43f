package backend

// Wire shapes as the BuildPro API returns them. Status-like vocabularies
// arrive underscore-separated (In_Progress, Very_High); the mapper owns
// translating them for display.

type ManagerRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ProjectRecord struct {
	ID          string      `json:"id"`
	ProjectName string      `json:"project_name"`
	Description string      `json:"description"`
	Status      string      `json:"status"`
	Priority    string      `json:"priority"`
	StartDate   string      `json:"start_date"`
	EndDate     string      `json:"end_date"`
	TotalBudget float64     `json:"total_budget"`
	Location    string      `json:"location"`
	ClientName  string      `json:"client_name"`
	Manager     *ManagerRef `json:"manager"`
}

type TaskRecord struct {
	ID             string  `json:"id"`
	ProjectID      string  `json:"project_id"`
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	Status         string  `json:"status"`
	Priority       string  `json:"priority"`
	AssigneeName   string  `json:"assignee_name"`
	StartDate      string  `json:"start_date"`
	DueDate        string  `json:"due_date"`
	EstimatedHours float64 `json:"estimated_hours"`
	ActualHours    float64 `json:"actual_hours"`
	Progress       int     `json:"progress"`
}

type RiskRecord struct {
	ID             string `json:"id"`
	ProjectID      string `json:"project_id"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	Category       string `json:"category"`
	Probability    string `json:"probability"`
	Impact         string `json:"impact"`
	RiskScore      int    `json:"risk_score"`
	Status         string `json:"status"`
	MitigationPlan string `json:"mitigation_plan"`
	OwnerName      string `json:"owner_name"`
}

type ExpenseRecord struct {
	ID           string  `json:"id"`
	ProjectID    string  `json:"project_id"`
	Description  string  `json:"description"`
	Category     string  `json:"category"`
	Amount       float64 `json:"amount"`
	Vendor       string  `json:"vendor"`
	ExpenseDate  string  `json:"expense_date"`
	Status       string  `json:"status"`
	LoggedByName string  `json:"logged_by_name"`
	Notes        string  `json:"notes"`
}

type DocumentRecord struct {
	ID             string `json:"id"`
	ProjectID      string `json:"project_id"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	DocumentType   string `json:"document_type"`
	FileSize       int64  `json:"file_size"`
	MimeType       string `json:"mime_type"`
	Version        int    `json:"version"`
	UploadedByName string `json:"uploaded_by_name"`
	FileURL        string `json:"file_url"`
	CreatedAt      string `json:"created_at"`
}

type MessageRecord struct {
	ID          string `json:"id"`
	ProjectID   string `json:"project_id"`
	TaskID      string `json:"task_id"`
	SenderID    string `json:"sender_id"`
	SenderName  string `json:"sender_name"`
	Content     string `json:"content"`
	MessageType string `json:"message_type"`
	IsRead      bool   `json:"is_read"`
	CreatedAt   string `json:"created_at"`
}

type MilestoneRecord struct {
	ID                   string `json:"id"`
	ProjectID            string `json:"project_id"`
	Name                 string `json:"name"`
	Description          string `json:"description"`
	TargetDate           string `json:"target_date"`
	ActualDate           string `json:"actual_date"`
	Status               string `json:"status"`
	CompletionPercentage int    `json:"completion_percentage"`
}

type NotificationRecord struct {
	ID               string `json:"id"`
	ProjectID        string `json:"project_id"`
	NotificationType string `json:"notification_type"`
	Title            string `json:"title"`
	Body             string `json:"body"`
	IsRead           bool   `json:"is_read"`
	CreatedAt        string `json:"created_at"`
}

type OrgMembership struct {
	OrganizationID   string `json:"organization_id"`
	OrganizationName string `json:"organization_name"`
	OrgRole          string `json:"org_role"`
	Status           string `json:"status"`
}

type UserRecord struct {
	ID            string          `json:"id"`
	Email         string          `json:"email"`
	FirstName     string          `json:"first_name"`
	LastName      string          `json:"last_name"`
	Role          string          `json:"role"`
	Organizations []OrgMembership `json:"organizations"`
}

// LoginResult is the payload of POST /auth/login.
type LoginResult struct {
	AccessToken          string     `json:"access_token"`
	RefreshToken         string     `json:"refresh_token"`
	TokenType            string     `json:"token_type"`
	ActiveOrganizationID string     `json:"active_organization_id"`
	User                 UserRecord `json:"user"`
}

// Mutation payloads. Optional fields use omitempty so partial updates only
// send what changed.

type ProjectPayload struct {
	ProjectName string  `json:"project_name,omitempty"`
	Description string  `json:"description,omitempty"`
	Status      string  `json:"status,omitempty"`
	Priority    string  `json:"priority,omitempty"`
	StartDate   string  `json:"start_date,omitempty"`
	EndDate     string  `json:"end_date,omitempty"`
	TotalBudget float64 `json:"total_budget,omitempty"`
	Location    string  `json:"location,omitempty"`
	ClientName  string  `json:"client_name,omitempty"`
}

type TaskPayload struct {
	Name           string  `json:"name,omitempty"`
	Description    string  `json:"description,omitempty"`
	Status         string  `json:"status,omitempty"`
	Priority       string  `json:"priority,omitempty"`
	StartDate      string  `json:"start_date,omitempty"`
	DueDate        string  `json:"due_date,omitempty"`
	EstimatedHours float64 `json:"estimated_hours,omitempty"`
	ActualHours    float64 `json:"actual_hours,omitempty"`
	Progress       int     `json:"progress,omitempty"`
}

type RiskPayload struct {
	Title          string `json:"title,omitempty"`
	Description    string `json:"description,omitempty"`
	Category       string `json:"category,omitempty"`
	Probability    string `json:"probability,omitempty"`
	Impact         string `json:"impact,omitempty"`
	Status         string `json:"status,omitempty"`
	MitigationPlan string `json:"mitigation_plan,omitempty"`
}

type ExpensePayload struct {
	Description string  `json:"description,omitempty"`
	Category    string  `json:"category,omitempty"`
	Amount      float64 `json:"amount,omitempty"`
	Vendor      string  `json:"vendor,omitempty"`
	ExpenseDate string  `json:"expense_date,omitempty"`
	Notes       string  `json:"notes,omitempty"`
}

type DocumentPayload struct {
	Name         string `json:"name,omitempty"`
	Description  string `json:"description,omitempty"`
	DocumentType string `json:"document_type,omitempty"`
}

type MilestonePayload struct {
	Name                 string `json:"name,omitempty"`
	Description          string `json:"description,omitempty"`
	TargetDate           string `json:"target_date,omitempty"`
	ActualDate           string `json:"actual_date,omitempty"`
	Status               string `json:"status,omitempty"`
	CompletionPercentage int    `json:"completion_percentage,omitempty"`
}

type MessagePayload struct {
	ProjectID   string `json:"project_id,omitempty"`
	Content     string `json:"content"`
	MessageType string `json:"message_type,omitempty"`
}
