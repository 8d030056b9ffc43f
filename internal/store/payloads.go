package store

import (
	"github.com/buildpro/buildpro-go/internal/backend"
	"github.com/buildpro/buildpro-go/internal/mapper"
	"github.com/buildpro/buildpro-go/internal/model"
)

// Payload builders translate local view models back into the backend's
// field names and underscore vocabularies.

func projectPayload(p model.Project) backend.ProjectPayload {
	return backend.ProjectPayload{
		ProjectName: p.Name,
		Description: p.Description,
		Status:      mapper.DenormalizeVocab(p.Status),
		Priority:    mapper.DenormalizeVocab(p.Priority),
		StartDate:   p.StartDate,
		EndDate:     p.EndDate,
		TotalBudget: p.Budget,
		Location:    p.Location,
		ClientName:  p.Client,
	}
}

func taskPayload(t model.Task) backend.TaskPayload {
	return backend.TaskPayload{
		Name:           t.Name,
		Description:    t.Description,
		Status:         mapper.DenormalizeVocab(t.Status),
		Priority:       mapper.DenormalizeVocab(t.Priority),
		StartDate:      t.StartDate,
		DueDate:        t.DueDate,
		EstimatedHours: t.EstimatedHours,
		ActualHours:    t.ActualHours,
		Progress:       t.Progress,
	}
}

func riskPayload(r model.Risk) backend.RiskPayload {
	return backend.RiskPayload{
		Title:          r.Title,
		Description:    r.Description,
		Category:       mapper.DenormalizeVocab(r.Category),
		Probability:    mapper.DenormalizeVocab(r.Probability),
		Impact:         mapper.DenormalizeVocab(r.Impact),
		Status:         mapper.DenormalizeVocab(r.Status),
		MitigationPlan: r.Mitigation,
	}
}

func expensePayload(e model.Expense) backend.ExpensePayload {
	return backend.ExpensePayload{
		Description: e.Description,
		Category:    mapper.DenormalizeVocab(e.Category),
		Amount:      e.Amount,
		Vendor:      e.Vendor,
		ExpenseDate: e.Date,
		Notes:       e.Notes,
	}
}

func documentPayload(d model.Document) backend.DocumentPayload {
	return backend.DocumentPayload{
		Name:         d.Name,
		Description:  d.Description,
		DocumentType: mapper.DenormalizeVocab(d.Type),
	}
}

func messagePayload(m model.Message) backend.MessagePayload {
	return backend.MessagePayload{
		Content:     m.Content,
		MessageType: mapper.DenormalizeVocab(m.Type),
	}
}

func milestonePayload(m model.Milestone) backend.MilestonePayload {
	return backend.MilestonePayload{
		Name:                 m.Name,
		Description:          m.Description,
		TargetDate:           m.TargetDate,
		ActualDate:           m.ActualDate,
		Status:               mapper.DenormalizeVocab(m.Status),
		CompletionPercentage: m.Completion,
	}
}
