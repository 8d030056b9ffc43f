// Package mapper translates backend wire records into local view models.
//
// Mapping is pure: ordinals derive from list position (position + 1),
// vocabularies are normalized from the backend's underscore spelling to
// the display spelling, and child records resolve their parent project by
// canonical ID against the already-mapped project collection. Projects
// must therefore always be mapped first.
package mapper

import (
	"math"
	"strings"

	"github.com/buildpro/buildpro-go/internal/backend"
	"github.com/buildpro/buildpro-go/internal/model"
)

// NormalizeVocab converts a backend vocabulary value to display form
// (In_Progress -> "In Progress").
func NormalizeVocab(s string) string {
	return strings.ReplaceAll(s, "_", " ")
}

// DenormalizeVocab converts a display vocabulary value back to the
// backend spelling ("In Progress" -> In_Progress).
func DenormalizeVocab(s string) string {
	return strings.ReplaceAll(s, " ", "_")
}

// money coerces a backend amount, falling back to zero for negative or
// non-finite values.
func money(v float64) float64 {
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// clampPercent bounds a progress value to [0, 100].
func clampPercent(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// parentRef resolves a child's project by canonical ID. An unknown parent
// yields ordinal 0, which the UI treats as orphaned.
func parentRef(canonicalID string, projects []model.Project) (int, string) {
	if canonicalID == "" {
		return 0, ""
	}
	for _, p := range projects {
		if p.CanonicalID == canonicalID {
			return p.ID, p.Name
		}
	}
	return 0, ""
}

func Project(rec backend.ProjectRecord, pos int) model.Project {
	manager := ""
	if rec.Manager != nil {
		manager = rec.Manager.Name
	}
	return model.Project{
		ID:          pos + 1,
		CanonicalID: rec.ID,
		Name:        rec.ProjectName,
		Description: rec.Description,
		Status:      NormalizeVocab(rec.Status),
		Priority:    NormalizeVocab(rec.Priority),
		StartDate:   rec.StartDate,
		EndDate:     rec.EndDate,
		Budget:      money(rec.TotalBudget),
		Location:    rec.Location,
		Client:      rec.ClientName,
		Manager:     manager,
		Sync:        model.SyncConfirmed,
	}
}

func Task(rec backend.TaskRecord, pos int, projects []model.Project) model.Task {
	projectID, projectName := parentRef(rec.ProjectID, projects)
	return model.Task{
		ID:             pos + 1,
		CanonicalID:    rec.ID,
		ProjectID:      projectID,
		Project:        projectName,
		Name:           rec.Name,
		Description:    rec.Description,
		Status:         NormalizeVocab(rec.Status),
		Priority:       NormalizeVocab(rec.Priority),
		Assignee:       rec.AssigneeName,
		StartDate:      rec.StartDate,
		DueDate:        rec.DueDate,
		EstimatedHours: money(rec.EstimatedHours),
		ActualHours:    money(rec.ActualHours),
		Progress:       clampPercent(rec.Progress),
		Sync:           model.SyncConfirmed,
	}
}

func Risk(rec backend.RiskRecord, pos int, projects []model.Project) model.Risk {
	projectID, projectName := parentRef(rec.ProjectID, projects)
	return model.Risk{
		ID:          pos + 1,
		CanonicalID: rec.ID,
		ProjectID:   projectID,
		Project:     projectName,
		Title:       rec.Title,
		Description: rec.Description,
		Category:    NormalizeVocab(rec.Category),
		Probability: NormalizeVocab(rec.Probability),
		Impact:      NormalizeVocab(rec.Impact),
		Score:       rec.RiskScore,
		Status:      NormalizeVocab(rec.Status),
		Mitigation:  rec.MitigationPlan,
		Owner:       rec.OwnerName,
		Sync:        model.SyncConfirmed,
	}
}

func Expense(rec backend.ExpenseRecord, pos int, projects []model.Project) model.Expense {
	projectID, projectName := parentRef(rec.ProjectID, projects)
	return model.Expense{
		ID:          pos + 1,
		CanonicalID: rec.ID,
		ProjectID:   projectID,
		Project:     projectName,
		Description: rec.Description,
		Category:    NormalizeVocab(rec.Category),
		Amount:      money(rec.Amount),
		Vendor:      rec.Vendor,
		Date:        rec.ExpenseDate,
		Status:      NormalizeVocab(rec.Status),
		LoggedBy:    rec.LoggedByName,
		Notes:       rec.Notes,
		Sync:        model.SyncConfirmed,
	}
}

func Document(rec backend.DocumentRecord, pos int, projects []model.Project) model.Document {
	projectID, projectName := parentRef(rec.ProjectID, projects)
	return model.Document{
		ID:          pos + 1,
		CanonicalID: rec.ID,
		ProjectID:   projectID,
		Project:     projectName,
		Name:        rec.Name,
		Description: rec.Description,
		Type:        NormalizeVocab(rec.DocumentType),
		Size:        rec.FileSize,
		MimeType:    rec.MimeType,
		Version:     rec.Version,
		UploadedBy:  rec.UploadedByName,
		URL:         rec.FileURL,
		Uploaded:    rec.CreatedAt,
		Sync:        model.SyncConfirmed,
	}
}

func Message(rec backend.MessageRecord, pos int, projects []model.Project) model.Message {
	projectID, projectName := parentRef(rec.ProjectID, projects)
	return model.Message{
		ID:          pos + 1,
		CanonicalID: rec.ID,
		ProjectID:   projectID,
		Project:     projectName,
		Sender:      rec.SenderName,
		Content:     rec.Content,
		Type:        rec.MessageType,
		Read:        rec.IsRead,
		SentAt:      rec.CreatedAt,
		Sync:        model.SyncConfirmed,
	}
}

func Milestone(rec backend.MilestoneRecord, pos int, projects []model.Project) model.Milestone {
	projectID, projectName := parentRef(rec.ProjectID, projects)
	return model.Milestone{
		ID:          pos + 1,
		CanonicalID: rec.ID,
		ProjectID:   projectID,
		Project:     projectName,
		Name:        rec.Name,
		Description: rec.Description,
		TargetDate:  rec.TargetDate,
		ActualDate:  rec.ActualDate,
		Status:      NormalizeVocab(rec.Status),
		Completion:  clampPercent(rec.CompletionPercentage),
		Sync:        model.SyncConfirmed,
	}
}

func Notification(rec backend.NotificationRecord, pos int) model.Notification {
	return model.Notification{
		ID:          pos + 1,
		CanonicalID: rec.ID,
		Type:        NormalizeVocab(rec.NotificationType),
		Title:       rec.Title,
		Body:        rec.Body,
		Read:        rec.IsRead,
		CreatedAt:   rec.CreatedAt,
	}
}
