package store

import (
	"context"
	"slices"

	"github.com/google/uuid"

	"github.com/buildpro/buildpro-go/internal/model"
)

// demoRepository mutates the in-memory demo collections directly. New
// records get a locally generated canonical ID and the next free ordinal,
// so the demo session behaves like a confirmed live one.
type demoRepository struct {
	s *Store
}

// nextOrdinal returns one past the highest ordinal in the collection.
func nextOrdinal[T any](items []T, id func(T) int) int {
	max := 0
	for _, it := range items {
		if v := id(it); v > max {
			max = v
		}
	}
	return max + 1
}

// projectName resolves a project ordinal to its display name.
func (r demoRepository) projectName(ordinal int) string {
	for _, p := range r.s.projects {
		if p.ID == ordinal {
			return p.Name
		}
	}
	return ""
}

func (r demoRepository) addProject(_ context.Context, p model.Project) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = nextOrdinal(s.projects, func(e model.Project) int { return e.ID })
	p.CanonicalID = uuid.NewString()
	p.Sync = model.SyncConfirmed
	s.projects = append(s.projects, p)
	return nil
}

func (r demoRepository) updateProject(_ context.Context, p model.Project) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := slices.IndexFunc(s.projects, func(e model.Project) bool { return e.ID == p.ID })
	if idx < 0 {
		return ErrNotFound
	}
	p.CanonicalID = s.projects[idx].CanonicalID
	p.Sync = model.SyncConfirmed
	s.projects[idx] = p
	return nil
}

func (r demoRepository) deleteProject(_ context.Context, id int) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	before := len(s.projects)
	s.projects = slices.DeleteFunc(s.projects, func(e model.Project) bool { return e.ID == id })
	if len(s.projects) == before {
		return ErrNotFound
	}
	return nil
}

func (r demoRepository) addTask(_ context.Context, t model.Task) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	t.ID = nextOrdinal(s.tasks, func(e model.Task) int { return e.ID })
	t.CanonicalID = uuid.NewString()
	t.Project = r.projectName(t.ProjectID)
	t.Sync = model.SyncConfirmed
	s.tasks = append(s.tasks, t)
	return nil
}

func (r demoRepository) updateTask(_ context.Context, t model.Task) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := slices.IndexFunc(s.tasks, func(e model.Task) bool { return e.ID == t.ID })
	if idx < 0 {
		return ErrNotFound
	}
	t.CanonicalID = s.tasks[idx].CanonicalID
	t.Project = r.projectName(t.ProjectID)
	t.Sync = model.SyncConfirmed
	s.tasks[idx] = t
	return nil
}

func (r demoRepository) deleteTask(_ context.Context, id int) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	before := len(s.tasks)
	s.tasks = slices.DeleteFunc(s.tasks, func(e model.Task) bool { return e.ID == id })
	if len(s.tasks) == before {
		return ErrNotFound
	}
	return nil
}

func (r demoRepository) addRisk(_ context.Context, rk model.Risk) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	rk.ID = nextOrdinal(s.risks, func(e model.Risk) int { return e.ID })
	rk.CanonicalID = uuid.NewString()
	rk.Project = r.projectName(rk.ProjectID)
	rk.Sync = model.SyncConfirmed
	s.risks = append(s.risks, rk)
	return nil
}

func (r demoRepository) updateRisk(_ context.Context, rk model.Risk) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := slices.IndexFunc(s.risks, func(e model.Risk) bool { return e.ID == rk.ID })
	if idx < 0 {
		return ErrNotFound
	}
	rk.CanonicalID = s.risks[idx].CanonicalID
	rk.Project = r.projectName(rk.ProjectID)
	rk.Sync = model.SyncConfirmed
	s.risks[idx] = rk
	return nil
}

func (r demoRepository) deleteRisk(_ context.Context, id int) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	before := len(s.risks)
	s.risks = slices.DeleteFunc(s.risks, func(e model.Risk) bool { return e.ID == id })
	if len(s.risks) == before {
		return ErrNotFound
	}
	return nil
}

func (r demoRepository) addExpense(_ context.Context, e model.Expense) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	e.ID = nextOrdinal(s.expenses, func(x model.Expense) int { return x.ID })
	e.CanonicalID = uuid.NewString()
	e.Project = r.projectName(e.ProjectID)
	e.Sync = model.SyncConfirmed
	s.expenses = append(s.expenses, e)
	return nil
}

func (r demoRepository) updateExpense(_ context.Context, e model.Expense) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := slices.IndexFunc(s.expenses, func(x model.Expense) bool { return x.ID == e.ID })
	if idx < 0 {
		return ErrNotFound
	}
	e.CanonicalID = s.expenses[idx].CanonicalID
	e.Project = r.projectName(e.ProjectID)
	e.Sync = model.SyncConfirmed
	s.expenses[idx] = e
	return nil
}

func (r demoRepository) deleteExpense(_ context.Context, id int) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	before := len(s.expenses)
	s.expenses = slices.DeleteFunc(s.expenses, func(e model.Expense) bool { return e.ID == id })
	if len(s.expenses) == before {
		return ErrNotFound
	}
	return nil
}

func (r demoRepository) addDocument(_ context.Context, d model.Document) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	d.ID = nextOrdinal(s.documents, func(e model.Document) int { return e.ID })
	d.CanonicalID = uuid.NewString()
	d.Project = r.projectName(d.ProjectID)
	d.Sync = model.SyncConfirmed
	s.documents = append(s.documents, d)
	return nil
}

func (r demoRepository) updateDocument(_ context.Context, d model.Document) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := slices.IndexFunc(s.documents, func(e model.Document) bool { return e.ID == d.ID })
	if idx < 0 {
		return ErrNotFound
	}
	d.CanonicalID = s.documents[idx].CanonicalID
	d.Project = r.projectName(d.ProjectID)
	d.Sync = model.SyncConfirmed
	s.documents[idx] = d
	return nil
}

func (r demoRepository) deleteDocument(_ context.Context, id int) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	before := len(s.documents)
	s.documents = slices.DeleteFunc(s.documents, func(e model.Document) bool { return e.ID == id })
	if len(s.documents) == before {
		return ErrNotFound
	}
	return nil
}

func (r demoRepository) addMilestone(_ context.Context, m model.Milestone) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	m.ID = nextOrdinal(s.milestones, func(e model.Milestone) int { return e.ID })
	m.CanonicalID = uuid.NewString()
	m.Project = r.projectName(m.ProjectID)
	m.Sync = model.SyncConfirmed
	s.milestones = append(s.milestones, m)
	return nil
}

func (r demoRepository) updateMilestone(_ context.Context, m model.Milestone) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := slices.IndexFunc(s.milestones, func(e model.Milestone) bool { return e.ID == m.ID })
	if idx < 0 {
		return ErrNotFound
	}
	m.CanonicalID = s.milestones[idx].CanonicalID
	m.Project = r.projectName(m.ProjectID)
	m.Sync = model.SyncConfirmed
	s.milestones[idx] = m
	return nil
}

func (r demoRepository) deleteMilestone(_ context.Context, id int) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	before := len(s.milestones)
	s.milestones = slices.DeleteFunc(s.milestones, func(e model.Milestone) bool { return e.ID == id })
	if len(s.milestones) == before {
		return ErrNotFound
	}
	return nil
}

func (r demoRepository) addMessage(_ context.Context, m model.Message) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	m.ID = nextOrdinal(s.messages, func(e model.Message) int { return e.ID })
	m.CanonicalID = uuid.NewString()
	m.Project = r.projectName(m.ProjectID)
	m.Sync = model.SyncConfirmed
	s.messages = append(s.messages, m)
	return nil
}

func (r demoRepository) markMessageRead(_ context.Context, id int) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := slices.IndexFunc(s.messages, func(e model.Message) bool { return e.ID == id })
	if idx < 0 {
		return ErrNotFound
	}
	s.messages[idx].Read = true
	return nil
}
