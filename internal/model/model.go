// Package model holds the local view-model types the UI layer reads.
//
// Every record carries two identities: ID is a small ordinal assigned
// during a synchronization pass (unique per kind within that pass, used
// by the UI and as the local foreign key), and CanonicalID is the stable
// server identifier, empty until the backend has confirmed the record.
package model

// SyncState tags a record's relationship to the backend.
type SyncState string

const (
	// SyncConfirmed means the record matches the last server response.
	SyncConfirmed SyncState = "confirmed"
	// SyncPending means a local mutation has not been confirmed yet.
	SyncPending SyncState = "pending"
	// SyncFailed means the last mutation was rejected and rolled back.
	SyncFailed SyncState = "failed"
)

type Project struct {
	ID          int
	CanonicalID string
	Name        string
	Description string
	Status      string
	Priority    string
	StartDate   string
	EndDate     string
	Budget      float64
	Location    string
	Client      string
	Manager     string
	Sync        SyncState
}

type Task struct {
	ID          int
	CanonicalID string
	// ProjectID is the parent project's ordinal; 0 means orphaned.
	ProjectID      int
	Project        string
	Name           string
	Description    string
	Status         string
	Priority       string
	Assignee       string
	StartDate      string
	DueDate        string
	EstimatedHours float64
	ActualHours    float64
	Progress       int
	Sync           SyncState
}

type Risk struct {
	ID          int
	CanonicalID string
	ProjectID   int
	Project     string
	Title       string
	Description string
	Category    string
	Probability string
	Impact      string
	Score       int
	Status      string
	Mitigation  string
	Owner       string
	Sync        SyncState
}

type Expense struct {
	ID          int
	CanonicalID string
	ProjectID   int
	Project     string
	Description string
	Category    string
	Amount      float64
	Vendor      string
	Date        string
	Status      string
	LoggedBy    string
	Notes       string
	Sync        SyncState
}

type Document struct {
	ID          int
	CanonicalID string
	ProjectID   int
	Project     string
	Name        string
	Description string
	Type        string
	Size        int64
	MimeType    string
	Version     int
	UploadedBy  string
	URL         string
	Uploaded    string
	Sync        SyncState
}

type Message struct {
	ID          int
	CanonicalID string
	ProjectID   int
	Project     string
	Sender      string
	Content     string
	Type        string
	Read        bool
	SentAt      string
	Sync        SyncState
}

type Milestone struct {
	ID          int
	CanonicalID string
	ProjectID   int
	Project     string
	Name        string
	Description string
	TargetDate  string
	ActualDate  string
	Status      string
	Completion  int
	Sync        SyncState
}

type Notification struct {
	ID          int
	CanonicalID string
	Type        string
	Title       string
	Body        string
	Read        bool
	CreatedAt   string
}
