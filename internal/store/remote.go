package store

import (
	"context"
	"slices"

	"github.com/buildpro/buildpro-go/internal/model"
)

// remoteRepository sends mutations to the backend. Creates and deletes
// trigger a full resynchronization afterwards so the server-issued
// canonical identifiers flow back in; updates patch the local record
// optimistically, then confirm or revert once the call settles.
type remoteRepository struct {
	s *Store
}

// fail records the failure on the store's error field and returns it.
func (r remoteRepository) fail(err error) error {
	r.s.setError(err.Error())
	return err
}

// projectCanonical resolves a project ordinal to its canonical ID.
func (r remoteRepository) projectCanonical(ordinal int) (string, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.projects {
		if p.ID == ordinal {
			if p.CanonicalID == "" {
				return "", ErrUnconfirmed
			}
			return p.CanonicalID, nil
		}
	}
	return "", ErrNotFound
}

// Projects

func (r remoteRepository) addProject(ctx context.Context, p model.Project) error {
	if err := r.s.api.CreateProject(ctx, projectPayload(p)); err != nil {
		return r.fail(err)
	}
	return r.s.Resynchronize(ctx)
}

func (r remoteRepository) updateProject(ctx context.Context, p model.Project) error {
	s := r.s
	s.mu.Lock()
	idx := slices.IndexFunc(s.projects, func(e model.Project) bool { return e.ID == p.ID })
	if idx < 0 {
		s.mu.Unlock()
		return ErrNotFound
	}
	prev := s.projects[idx]
	if prev.CanonicalID == "" {
		s.mu.Unlock()
		return ErrUnconfirmed
	}
	next := p
	next.CanonicalID = prev.CanonicalID
	next.Sync = model.SyncPending
	s.projects[idx] = next
	s.mu.Unlock()

	err := s.api.UpdateProject(ctx, prev.CanonicalID, projectPayload(next))
	r.reconcileProject(prev, err == nil)
	if err != nil {
		return r.fail(err)
	}
	return nil
}

func (r remoteRepository) reconcileProject(prev model.Project, confirmed bool) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := slices.IndexFunc(s.projects, func(e model.Project) bool { return e.CanonicalID == prev.CanonicalID })
	if idx < 0 {
		// Superseded by a resynchronization pass in the meantime.
		return
	}
	if confirmed {
		s.projects[idx].Sync = model.SyncConfirmed
		return
	}
	restored := prev
	restored.Sync = model.SyncFailed
	s.projects[idx] = restored
}

func (r remoteRepository) deleteProject(ctx context.Context, id int) error {
	canonical, err := r.projectCanonical(id)
	if err != nil {
		return err
	}
	if err := r.s.api.DeleteProject(ctx, canonical); err != nil {
		return r.fail(err)
	}
	return r.s.Resynchronize(ctx)
}

// Tasks

func (r remoteRepository) addTask(ctx context.Context, t model.Task) error {
	projectID, err := r.projectCanonical(t.ProjectID)
	if err != nil {
		return err
	}
	if err := r.s.api.CreateTask(ctx, projectID, taskPayload(t)); err != nil {
		return r.fail(err)
	}
	return r.s.Resynchronize(ctx)
}

func (r remoteRepository) updateTask(ctx context.Context, t model.Task) error {
	s := r.s
	s.mu.Lock()
	idx := slices.IndexFunc(s.tasks, func(e model.Task) bool { return e.ID == t.ID })
	if idx < 0 {
		s.mu.Unlock()
		return ErrNotFound
	}
	prev := s.tasks[idx]
	if prev.CanonicalID == "" {
		s.mu.Unlock()
		return ErrUnconfirmed
	}
	next := t
	next.CanonicalID = prev.CanonicalID
	next.ProjectID = prev.ProjectID
	next.Project = prev.Project
	next.Sync = model.SyncPending
	s.tasks[idx] = next
	s.mu.Unlock()

	projectID, err := r.projectCanonical(prev.ProjectID)
	if err != nil {
		r.reconcileTask(prev, false)
		return err
	}
	err = s.api.UpdateTask(ctx, projectID, prev.CanonicalID, taskPayload(next))
	r.reconcileTask(prev, err == nil)
	if err != nil {
		return r.fail(err)
	}
	return nil
}

func (r remoteRepository) reconcileTask(prev model.Task, confirmed bool) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := slices.IndexFunc(s.tasks, func(e model.Task) bool { return e.CanonicalID == prev.CanonicalID })
	if idx < 0 {
		return
	}
	if confirmed {
		s.tasks[idx].Sync = model.SyncConfirmed
		return
	}
	restored := prev
	restored.Sync = model.SyncFailed
	s.tasks[idx] = restored
}

func (r remoteRepository) deleteTask(ctx context.Context, id int) error {
	s := r.s
	s.mu.RLock()
	idx := slices.IndexFunc(s.tasks, func(e model.Task) bool { return e.ID == id })
	var prev model.Task
	if idx >= 0 {
		prev = s.tasks[idx]
	}
	s.mu.RUnlock()
	if idx < 0 {
		return ErrNotFound
	}
	if prev.CanonicalID == "" {
		return ErrUnconfirmed
	}

	projectID, err := r.projectCanonical(prev.ProjectID)
	if err != nil {
		return err
	}
	if err := s.api.DeleteTask(ctx, projectID, prev.CanonicalID); err != nil {
		return r.fail(err)
	}
	return s.Resynchronize(ctx)
}

// Risks

func (r remoteRepository) addRisk(ctx context.Context, rk model.Risk) error {
	projectID, err := r.projectCanonical(rk.ProjectID)
	if err != nil {
		return err
	}
	if err := r.s.api.CreateRisk(ctx, projectID, riskPayload(rk)); err != nil {
		return r.fail(err)
	}
	return r.s.Resynchronize(ctx)
}

func (r remoteRepository) updateRisk(ctx context.Context, rk model.Risk) error {
	s := r.s
	s.mu.Lock()
	idx := slices.IndexFunc(s.risks, func(e model.Risk) bool { return e.ID == rk.ID })
	if idx < 0 {
		s.mu.Unlock()
		return ErrNotFound
	}
	prev := s.risks[idx]
	if prev.CanonicalID == "" {
		s.mu.Unlock()
		return ErrUnconfirmed
	}
	next := rk
	next.CanonicalID = prev.CanonicalID
	next.ProjectID = prev.ProjectID
	next.Project = prev.Project
	next.Sync = model.SyncPending
	s.risks[idx] = next
	s.mu.Unlock()

	projectID, err := r.projectCanonical(prev.ProjectID)
	if err != nil {
		r.reconcileRisk(prev, false)
		return err
	}
	err = s.api.UpdateRisk(ctx, projectID, prev.CanonicalID, riskPayload(next))
	r.reconcileRisk(prev, err == nil)
	if err != nil {
		return r.fail(err)
	}
	return nil
}

func (r remoteRepository) reconcileRisk(prev model.Risk, confirmed bool) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := slices.IndexFunc(s.risks, func(e model.Risk) bool { return e.CanonicalID == prev.CanonicalID })
	if idx < 0 {
		return
	}
	if confirmed {
		s.risks[idx].Sync = model.SyncConfirmed
		return
	}
	restored := prev
	restored.Sync = model.SyncFailed
	s.risks[idx] = restored
}

func (r remoteRepository) deleteRisk(ctx context.Context, id int) error {
	s := r.s
	s.mu.RLock()
	idx := slices.IndexFunc(s.risks, func(e model.Risk) bool { return e.ID == id })
	var prev model.Risk
	if idx >= 0 {
		prev = s.risks[idx]
	}
	s.mu.RUnlock()
	if idx < 0 {
		return ErrNotFound
	}
	if prev.CanonicalID == "" {
		return ErrUnconfirmed
	}

	projectID, err := r.projectCanonical(prev.ProjectID)
	if err != nil {
		return err
	}
	if err := s.api.DeleteRisk(ctx, projectID, prev.CanonicalID); err != nil {
		return r.fail(err)
	}
	return s.Resynchronize(ctx)
}

// Expenses

func (r remoteRepository) addExpense(ctx context.Context, e model.Expense) error {
	projectID, err := r.projectCanonical(e.ProjectID)
	if err != nil {
		return err
	}
	if err := r.s.api.CreateExpense(ctx, projectID, expensePayload(e)); err != nil {
		return r.fail(err)
	}
	return r.s.Resynchronize(ctx)
}

func (r remoteRepository) updateExpense(ctx context.Context, e model.Expense) error {
	s := r.s
	s.mu.Lock()
	idx := slices.IndexFunc(s.expenses, func(x model.Expense) bool { return x.ID == e.ID })
	if idx < 0 {
		s.mu.Unlock()
		return ErrNotFound
	}
	prev := s.expenses[idx]
	if prev.CanonicalID == "" {
		s.mu.Unlock()
		return ErrUnconfirmed
	}
	next := e
	next.CanonicalID = prev.CanonicalID
	next.ProjectID = prev.ProjectID
	next.Project = prev.Project
	next.Sync = model.SyncPending
	s.expenses[idx] = next
	s.mu.Unlock()

	projectID, err := r.projectCanonical(prev.ProjectID)
	if err != nil {
		r.reconcileExpense(prev, false)
		return err
	}
	err = s.api.UpdateExpense(ctx, projectID, prev.CanonicalID, expensePayload(next))
	r.reconcileExpense(prev, err == nil)
	if err != nil {
		return r.fail(err)
	}
	return nil
}

func (r remoteRepository) reconcileExpense(prev model.Expense, confirmed bool) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := slices.IndexFunc(s.expenses, func(e model.Expense) bool { return e.CanonicalID == prev.CanonicalID })
	if idx < 0 {
		return
	}
	if confirmed {
		s.expenses[idx].Sync = model.SyncConfirmed
		return
	}
	restored := prev
	restored.Sync = model.SyncFailed
	s.expenses[idx] = restored
}

func (r remoteRepository) deleteExpense(ctx context.Context, id int) error {
	s := r.s
	s.mu.RLock()
	idx := slices.IndexFunc(s.expenses, func(e model.Expense) bool { return e.ID == id })
	var prev model.Expense
	if idx >= 0 {
		prev = s.expenses[idx]
	}
	s.mu.RUnlock()
	if idx < 0 {
		return ErrNotFound
	}
	if prev.CanonicalID == "" {
		return ErrUnconfirmed
	}

	projectID, err := r.projectCanonical(prev.ProjectID)
	if err != nil {
		return err
	}
	if err := s.api.DeleteExpense(ctx, projectID, prev.CanonicalID); err != nil {
		return r.fail(err)
	}
	return s.Resynchronize(ctx)
}

// Documents

func (r remoteRepository) addDocument(ctx context.Context, d model.Document) error {
	projectID, err := r.projectCanonical(d.ProjectID)
	if err != nil {
		return err
	}
	if err := r.s.api.CreateDocument(ctx, projectID, documentPayload(d)); err != nil {
		return r.fail(err)
	}
	return r.s.Resynchronize(ctx)
}

func (r remoteRepository) updateDocument(ctx context.Context, d model.Document) error {
	s := r.s
	s.mu.Lock()
	idx := slices.IndexFunc(s.documents, func(e model.Document) bool { return e.ID == d.ID })
	if idx < 0 {
		s.mu.Unlock()
		return ErrNotFound
	}
	prev := s.documents[idx]
	if prev.CanonicalID == "" {
		s.mu.Unlock()
		return ErrUnconfirmed
	}
	next := d
	next.CanonicalID = prev.CanonicalID
	next.ProjectID = prev.ProjectID
	next.Project = prev.Project
	next.Sync = model.SyncPending
	s.documents[idx] = next
	s.mu.Unlock()

	projectID, err := r.projectCanonical(prev.ProjectID)
	if err != nil {
		r.reconcileDocument(prev, false)
		return err
	}
	err = s.api.UpdateDocument(ctx, projectID, prev.CanonicalID, documentPayload(next))
	r.reconcileDocument(prev, err == nil)
	if err != nil {
		return r.fail(err)
	}
	return nil
}

func (r remoteRepository) reconcileDocument(prev model.Document, confirmed bool) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := slices.IndexFunc(s.documents, func(e model.Document) bool { return e.CanonicalID == prev.CanonicalID })
	if idx < 0 {
		return
	}
	if confirmed {
		s.documents[idx].Sync = model.SyncConfirmed
		return
	}
	restored := prev
	restored.Sync = model.SyncFailed
	s.documents[idx] = restored
}

func (r remoteRepository) deleteDocument(ctx context.Context, id int) error {
	s := r.s
	s.mu.RLock()
	idx := slices.IndexFunc(s.documents, func(e model.Document) bool { return e.ID == id })
	var prev model.Document
	if idx >= 0 {
		prev = s.documents[idx]
	}
	s.mu.RUnlock()
	if idx < 0 {
		return ErrNotFound
	}
	if prev.CanonicalID == "" {
		return ErrUnconfirmed
	}

	projectID, err := r.projectCanonical(prev.ProjectID)
	if err != nil {
		return err
	}
	if err := s.api.DeleteDocument(ctx, projectID, prev.CanonicalID); err != nil {
		return r.fail(err)
	}
	return s.Resynchronize(ctx)
}

// Milestones

func (r remoteRepository) addMilestone(ctx context.Context, m model.Milestone) error {
	projectID, err := r.projectCanonical(m.ProjectID)
	if err != nil {
		return err
	}
	if err := r.s.api.CreateMilestone(ctx, projectID, milestonePayload(m)); err != nil {
		return r.fail(err)
	}
	return r.s.Resynchronize(ctx)
}

func (r remoteRepository) updateMilestone(ctx context.Context, m model.Milestone) error {
	s := r.s
	s.mu.Lock()
	idx := slices.IndexFunc(s.milestones, func(e model.Milestone) bool { return e.ID == m.ID })
	if idx < 0 {
		s.mu.Unlock()
		return ErrNotFound
	}
	prev := s.milestones[idx]
	if prev.CanonicalID == "" {
		s.mu.Unlock()
		return ErrUnconfirmed
	}
	next := m
	next.CanonicalID = prev.CanonicalID
	next.ProjectID = prev.ProjectID
	next.Project = prev.Project
	next.Sync = model.SyncPending
	s.milestones[idx] = next
	s.mu.Unlock()

	projectID, err := r.projectCanonical(prev.ProjectID)
	if err != nil {
		r.reconcileMilestone(prev, false)
		return err
	}
	err = s.api.UpdateMilestone(ctx, projectID, prev.CanonicalID, milestonePayload(next))
	r.reconcileMilestone(prev, err == nil)
	if err != nil {
		return r.fail(err)
	}
	return nil
}

func (r remoteRepository) reconcileMilestone(prev model.Milestone, confirmed bool) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := slices.IndexFunc(s.milestones, func(e model.Milestone) bool { return e.CanonicalID == prev.CanonicalID })
	if idx < 0 {
		return
	}
	if confirmed {
		s.milestones[idx].Sync = model.SyncConfirmed
		return
	}
	restored := prev
	restored.Sync = model.SyncFailed
	s.milestones[idx] = restored
}

func (r remoteRepository) deleteMilestone(ctx context.Context, id int) error {
	s := r.s
	s.mu.RLock()
	idx := slices.IndexFunc(s.milestones, func(e model.Milestone) bool { return e.ID == id })
	var prev model.Milestone
	if idx >= 0 {
		prev = s.milestones[idx]
	}
	s.mu.RUnlock()
	if idx < 0 {
		return ErrNotFound
	}
	if prev.CanonicalID == "" {
		return ErrUnconfirmed
	}

	projectID, err := r.projectCanonical(prev.ProjectID)
	if err != nil {
		return err
	}
	if err := s.api.DeleteMilestone(ctx, projectID, prev.CanonicalID); err != nil {
		return r.fail(err)
	}
	return s.Resynchronize(ctx)
}

// Messages

func (r remoteRepository) addMessage(ctx context.Context, m model.Message) error {
	payload := messagePayload(m)
	if m.ProjectID > 0 {
		projectID, err := r.projectCanonical(m.ProjectID)
		if err != nil {
			return err
		}
		payload.ProjectID = projectID
	}
	if err := r.s.api.CreateMessage(ctx, payload); err != nil {
		return r.fail(err)
	}
	return r.s.Resynchronize(ctx)
}

func (r remoteRepository) markMessageRead(ctx context.Context, id int) error {
	s := r.s
	s.mu.Lock()
	idx := slices.IndexFunc(s.messages, func(e model.Message) bool { return e.ID == id })
	if idx < 0 {
		s.mu.Unlock()
		return ErrNotFound
	}
	prev := s.messages[idx]
	if prev.CanonicalID == "" {
		s.mu.Unlock()
		return ErrUnconfirmed
	}
	s.messages[idx].Read = true
	s.messages[idx].Sync = model.SyncPending
	s.mu.Unlock()

	err := s.api.MarkMessageRead(ctx, prev.CanonicalID)

	s.mu.Lock()
	idx = slices.IndexFunc(s.messages, func(e model.Message) bool { return e.CanonicalID == prev.CanonicalID })
	if idx >= 0 {
		if err == nil {
			s.messages[idx].Sync = model.SyncConfirmed
		} else {
			restored := prev
			restored.Sync = model.SyncFailed
			s.messages[idx] = restored
		}
	}
	s.mu.Unlock()

	if err != nil {
		return r.fail(err)
	}
	return nil
}
