package mapper_test

import (
	"testing"

	"github.com/buildpro/buildpro-go/internal/backend"
	"github.com/buildpro/buildpro-go/internal/mapper"
	"github.com/buildpro/buildpro-go/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProject_MapsFieldsAndVocabulary(t *testing.T) {
	rec := backend.ProjectRecord{
		ID:          "p-uuid",
		ProjectName: "Harbor Tower",
		Status:      "In_Progress",
		Priority:    "High",
		StartDate:   "2026-01-15",
		EndDate:     "2027-06-30",
		TotalBudget: 1250000.5,
		Location:    "Pier 4",
		ClientName:  "Harbor Authority",
		Manager:     &backend.ManagerRef{ID: "u-1", Name: "Dana Kim"},
	}

	p := mapper.Project(rec, 0)
	assert.Equal(t, 1, p.ID)
	assert.Equal(t, "p-uuid", p.CanonicalID)
	assert.Equal(t, "Harbor Tower", p.Name)
	assert.Equal(t, "In Progress", p.Status)
	assert.Equal(t, "Dana Kim", p.Manager)
	assert.Equal(t, model.SyncConfirmed, p.Sync)
}

func TestProject_NegativeBudgetFallsBackToZero(t *testing.T) {
	p := mapper.Project(backend.ProjectRecord{ID: "p", TotalBudget: -500}, 0)
	assert.Zero(t, p.Budget)
}

func TestTask_ResolvesParentByCanonicalID(t *testing.T) {
	projects := []model.Project{
		{ID: 1, CanonicalID: "p-1", Name: "Harbor Tower"},
		{ID: 2, CanonicalID: "p-2", Name: "Depot Refit"},
	}

	task := mapper.Task(backend.TaskRecord{
		ID:        "t-1",
		ProjectID: "p-2",
		Name:      "Pour foundation",
		Status:    "In_Progress",
		Progress:  140,
	}, 4, projects)

	assert.Equal(t, 5, task.ID)
	assert.Equal(t, 2, task.ProjectID)
	assert.Equal(t, "Depot Refit", task.Project, "parent name is denormalized")
	assert.Equal(t, "In Progress", task.Status)
	assert.Equal(t, 100, task.Progress, "progress clamps to 100")
}

func TestTask_UnknownParentIsOrphaned(t *testing.T) {
	projects := []model.Project{{ID: 1, CanonicalID: "p-1", Name: "Harbor Tower"}}

	task := mapper.Task(backend.TaskRecord{ID: "t-1", ProjectID: "p-gone"}, 0, projects)
	assert.Zero(t, task.ProjectID)
	assert.Empty(t, task.Project)
}

func TestRisk_NormalizesProbabilityAndImpact(t *testing.T) {
	risk := mapper.Risk(backend.RiskRecord{
		ID:          "r-1",
		ProjectID:   "p-1",
		Title:       "Ground water",
		Probability: "Very_High",
		Impact:      "Very_Low",
		Status:      "Open",
	}, 0, []model.Project{{ID: 1, CanonicalID: "p-1", Name: "Harbor Tower"}})

	assert.Equal(t, "Very High", risk.Probability)
	assert.Equal(t, "Very Low", risk.Impact)
	assert.Equal(t, 1, risk.ProjectID)
}

func TestMessage_WithoutProjectIsOrphaned(t *testing.T) {
	msg := mapper.Message(backend.MessageRecord{ID: "m-1", Content: "hello"}, 2, nil)
	assert.Equal(t, 3, msg.ID)
	assert.Zero(t, msg.ProjectID)
}

func TestOrdinals_UniqueWithinPass(t *testing.T) {
	recs := []backend.ProjectRecord{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	seen := map[int]bool{}
	for i, rec := range recs {
		p := mapper.Project(rec, i)
		require.False(t, seen[p.ID], "duplicate ordinal %d", p.ID)
		seen[p.ID] = true
	}
}

func TestVocabRoundTrip(t *testing.T) {
	assert.Equal(t, "On Hold", mapper.NormalizeVocab("On_Hold"))
	assert.Equal(t, "On_Hold", mapper.DenormalizeVocab("On Hold"))
}
