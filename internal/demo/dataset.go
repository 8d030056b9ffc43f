// Package demo holds the static fallback dataset shown when the backend
// is unreachable and demo mode is enabled.
package demo

import "github.com/buildpro/buildpro-go/internal/model"

// Data is one full set of collections, shaped exactly like a successful
// synchronization pass.
type Data struct {
	Projects   []model.Project
	Tasks      []model.Task
	Risks      []model.Risk
	Expenses   []model.Expense
	Documents  []model.Document
	Messages   []model.Message
	Milestones []model.Milestone
}

// Dataset returns a fresh copy of the illustrative dataset. Canonical IDs
// are fixed fixtures so lookups behave the same as with live data.
func Dataset() Data {
	return Data{
		Projects: []model.Project{
			{
				ID: 1, CanonicalID: "5f7b9c1e-8d43-4a6b-9f21-0c8a7d3e5b12",
				Name: "Harbor Tower", Description: "22-story mixed-use tower at Pier 4",
				Status: "In Progress", Priority: "High",
				StartDate: "2026-01-15", EndDate: "2027-06-30",
				Budget: 12500000, Location: "Pier 4, Eastside",
				Client: "Harbor Authority", Manager: "Dana Kim",
				Sync: model.SyncConfirmed,
			},
			{
				ID: 2, CanonicalID: "a3e1d8f4-2b6c-4e9a-8d17-64f0b2c9e3a5",
				Name: "Depot Refit", Description: "Seismic retrofit of the central bus depot",
				Status: "Planning", Priority: "Medium",
				StartDate: "2026-09-01", EndDate: "2027-03-31",
				Budget: 900000, Location: "Central Depot",
				Client: "Transit District", Manager: "Ravi Patel",
				Sync: model.SyncConfirmed,
			},
		},
		Tasks: []model.Task{
			{
				ID: 1, CanonicalID: "0c2f4a6e-9b13-4d58-a7e2-3f81c5d90b47",
				ProjectID: 1, Project: "Harbor Tower",
				Name: "Pour foundation", Status: "In Progress", Priority: "Critical",
				Assignee: "M. Alvarez", StartDate: "2026-02-01", DueDate: "2026-04-15",
				EstimatedHours: 320, ActualHours: 190, Progress: 60,
				Sync: model.SyncConfirmed,
			},
			{
				ID: 2, CanonicalID: "7d4b2e90-1f6a-4c38-b5d9-8a2e0c47f613",
				ProjectID: 1, Project: "Harbor Tower",
				Name: "Curtain wall procurement", Status: "Pending", Priority: "High",
				Assignee: "J. Osei", DueDate: "2026-05-30",
				EstimatedHours: 80, Progress: 0,
				Sync: model.SyncConfirmed,
			},
			{
				ID: 3, CanonicalID: "e8a5c317-6d20-44fb-92c4-b1d7e9f0a258",
				ProjectID: 2, Project: "Depot Refit",
				Name: "Structural survey", Status: "Completed", Priority: "Medium",
				Assignee: "L. Chen", StartDate: "2026-09-05", DueDate: "2026-09-20",
				EstimatedHours: 40, ActualHours: 44, Progress: 100,
				Sync: model.SyncConfirmed,
			},
		},
		Risks: []model.Risk{
			{
				ID: 1, CanonicalID: "b9f01d6c-3a84-4e72-85b1-c4d2e6f90a38",
				ProjectID: 1, Project: "Harbor Tower",
				Title: "Ground water ingress", Category: "Technical",
				Probability: "High", Impact: "Very High", Score: 20, Status: "Open",
				Mitigation: "Dewatering wells before excavation", Owner: "Dana Kim",
				Sync: model.SyncConfirmed,
			},
			{
				ID: 2, CanonicalID: "4e7a9b2d-0c15-4f68-a3d7-91b5c8e2f046",
				ProjectID: 2, Project: "Depot Refit",
				Title: "Steel price escalation", Category: "Financial",
				Probability: "Medium", Impact: "High", Score: 12, Status: "Monitoring",
				Mitigation: "Lock supplier pricing in Q4", Owner: "Ravi Patel",
				Sync: model.SyncConfirmed,
			},
		},
		Expenses: []model.Expense{
			{
				ID: 1, CanonicalID: "1a8d5f3b-7e29-4c60-b8f4-d2a6c0e9b517",
				ProjectID: 1, Project: "Harbor Tower",
				Description: "Ready-mix concrete, batch 12", Category: "Materials",
				Amount: 48200, Vendor: "Bayside Concrete", Date: "2026-03-02",
				Status: "Approved", LoggedBy: "M. Alvarez",
				Sync: model.SyncConfirmed,
			},
			{
				ID: 2, CanonicalID: "c6b3e0a9-4d17-4582-9f2c-e8a1d5b70346",
				ProjectID: 1, Project: "Harbor Tower",
				Description: "Tower crane rental, March", Category: "Equipment",
				Amount: 21500, Vendor: "Skyline Cranes", Date: "2026-03-10",
				Status: "Pending", LoggedBy: "J. Osei",
				Sync: model.SyncConfirmed,
			},
		},
		Documents: []model.Document{
			{
				ID: 1, CanonicalID: "9d2c7f4a-5b08-4e31-86d9-f0b3a6c1e825",
				ProjectID: 1, Project: "Harbor Tower",
				Name: "Foundation drawings rev C", Type: "Drawing",
				Size: 48234567, MimeType: "application/pdf", Version: 3,
				UploadedBy: "Dana Kim", Uploaded: "2026-02-20T10:14:00Z",
				Sync: model.SyncConfirmed,
			},
			{
				ID: 2, CanonicalID: "f5a0b8d3-6c42-4917-b2e8-a9d1c7e30f64",
				ProjectID: 2, Project: "Depot Refit",
				Name: "Seismic assessment report", Type: "Report",
				Size: 1234567, MimeType: "application/pdf", Version: 1,
				UploadedBy: "L. Chen", Uploaded: "2026-09-22T15:40:00Z",
				Sync: model.SyncConfirmed,
			},
		},
		Messages: []model.Message{
			{
				ID: 1, CanonicalID: "2e9b6d0f-8a35-4c71-95e3-b7d4f1a8c026",
				ProjectID: 1, Project: "Harbor Tower",
				Sender: "Dana Kim", Content: "Foundation pour slips one week, updated schedule attached.",
				Type: "announcement", Read: true, SentAt: "2026-03-05T09:02:00Z",
				Sync: model.SyncConfirmed,
			},
			{
				ID: 2, CanonicalID: "8c4f1a7e-3d60-4b29-a1f8-56e9d2b0c473",
				ProjectID: 0,
				Sender: "System", Content: "Quarterly safety training due by end of month.",
				Type: "system", Read: false, SentAt: "2026-03-12T08:00:00Z",
				Sync: model.SyncConfirmed,
			},
		},
		Milestones: []model.Milestone{
			{
				ID: 1, CanonicalID: "6b0e3c9a-1f57-4d84-b6a0-c2f8e5d17b39",
				ProjectID: 1, Project: "Harbor Tower",
				Name: "Foundation complete", TargetDate: "2026-04-30",
				Status: "In Progress", Completion: 60,
				Sync: model.SyncConfirmed,
			},
			{
				ID: 2, CanonicalID: "d7c2a5f0-9e43-4861-83b5-f1e6a0d92c78",
				ProjectID: 2, Project: "Depot Refit",
				Name: "Permits approved", TargetDate: "2026-11-15",
				Status: "Pending", Completion: 10,
				Sync: model.SyncConfirmed,
			},
		},
	}
}
