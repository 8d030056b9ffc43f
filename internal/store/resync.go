package store

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/buildpro/buildpro-go/internal/backend"
	"github.com/buildpro/buildpro-go/internal/demo"
	"github.com/buildpro/buildpro-go/internal/mapper"
	"github.com/buildpro/buildpro-go/internal/model"
)

// childRecords holds one project's sub-collections, fetched concurrently.
type childRecords struct {
	tasks      []backend.TaskRecord
	risks      []backend.RiskRecord
	expenses   []backend.ExpenseRecord
	documents  []backend.DocumentRecord
	milestones []backend.MilestoneRecord
}

// Resynchronize replaces every collection from the backend in one pass.
//
// With no persisted session and the demo fallback off, the store simply
// empties and reports disconnected. If live data cannot be obtained
// (no session, or the project list fetch fails) the store falls back to
// the demo dataset when enabled, otherwise it clears and surfaces the
// failure. Sub-collection fetch failures do not abort the pass; the
// affected project just contributes empty children.
func (s *Store) Resynchronize(ctx context.Context) error {
	token, err := s.tokens.AccessToken()
	if err != nil || token == "" {
		if s.demoEnabled {
			return s.fallback(errors.New("no persisted session"))
		}
		s.mu.Lock()
		s.clearLocked()
		s.state = StateDisconnected
		s.errMsg = ""
		s.notice = ""
		s.repo = disabledRepository{s}
		s.mu.Unlock()
		return nil
	}

	projectRecs, err := s.api.ListProjects(ctx)
	if err != nil {
		return s.fallback(err)
	}

	children := s.fetchChildren(ctx, projectRecs)

	messageRecs, err := s.api.ListMessages(ctx)
	if err != nil {
		s.logger.Debug("message fetch failed during resync", "error", err)
		messageRecs = nil
	}

	projects := make([]model.Project, 0, len(projectRecs))
	for i, rec := range projectRecs {
		projects = append(projects, mapper.Project(rec, i))
	}

	var (
		tasks      []model.Task
		risks      []model.Risk
		expenses   []model.Expense
		documents  []model.Document
		milestones []model.Milestone
	)
	for _, ch := range children {
		for _, rec := range ch.tasks {
			tasks = append(tasks, mapper.Task(rec, len(tasks), projects))
		}
		for _, rec := range ch.risks {
			risks = append(risks, mapper.Risk(rec, len(risks), projects))
		}
		for _, rec := range ch.expenses {
			expenses = append(expenses, mapper.Expense(rec, len(expenses), projects))
		}
		for _, rec := range ch.documents {
			documents = append(documents, mapper.Document(rec, len(documents), projects))
		}
		for _, rec := range ch.milestones {
			milestones = append(milestones, mapper.Milestone(rec, len(milestones), projects))
		}
	}

	messages := make([]model.Message, 0, len(messageRecs))
	for i, rec := range messageRecs {
		messages = append(messages, mapper.Message(rec, i, projects))
	}

	s.mu.Lock()
	s.projects = projects
	s.tasks = tasks
	s.risks = risks
	s.expenses = expenses
	s.documents = documents
	s.messages = messages
	s.milestones = milestones
	s.state = StateConnected
	s.errMsg = ""
	s.notice = ""
	s.repo = remoteRepository{s}
	s.mu.Unlock()

	s.logger.Debug("resynchronized",
		"projects", len(projects), "tasks", len(tasks), "risks", len(risks),
		"expenses", len(expenses), "documents", len(documents),
		"messages", len(messages), "milestones", len(milestones))
	return nil
}

// fetchChildren fans out the five sub-collection fetches per project.
// Results keep project order; a failed fetch leaves its slot empty.
func (s *Store) fetchChildren(ctx context.Context, projects []backend.ProjectRecord) []childRecords {
	children := make([]childRecords, len(projects))
	var wg sync.WaitGroup
	for i, p := range projects {
		i, p := i, p
		wg.Add(5)
		go func() {
			defer wg.Done()
			recs, err := s.api.ListTasks(ctx, p.ID)
			if err != nil {
				s.logger.Debug("task fetch failed during resync", "project", p.ID, "error", err)
				return
			}
			children[i].tasks = recs
		}()
		go func() {
			defer wg.Done()
			recs, err := s.api.ListRisks(ctx, p.ID)
			if err != nil {
				s.logger.Debug("risk fetch failed during resync", "project", p.ID, "error", err)
				return
			}
			children[i].risks = recs
		}()
		go func() {
			defer wg.Done()
			recs, err := s.api.ListExpenses(ctx, p.ID)
			if err != nil {
				s.logger.Debug("expense fetch failed during resync", "project", p.ID, "error", err)
				return
			}
			children[i].expenses = recs
		}()
		go func() {
			defer wg.Done()
			recs, err := s.api.ListDocuments(ctx, p.ID)
			if err != nil {
				s.logger.Debug("document fetch failed during resync", "project", p.ID, "error", err)
				return
			}
			children[i].documents = recs
		}()
		go func() {
			defer wg.Done()
			recs, err := s.api.ListMilestones(ctx, p.ID)
			if err != nil {
				s.logger.Debug("milestone fetch failed during resync", "project", p.ID, "error", err)
				return
			}
			children[i].milestones = recs
		}()
	}
	wg.Wait()
	return children
}

// fallback reacts to a failed project fetch: seed the demo dataset when
// enabled, otherwise clear out and report the backend as unavailable.
func (s *Store) fallback(cause error) error {
	if s.demoEnabled {
		data := demo.Dataset()
		s.mu.Lock()
		s.projects = data.Projects
		s.tasks = data.Tasks
		s.risks = data.Risks
		s.expenses = data.Expenses
		s.documents = data.Documents
		s.messages = data.Messages
		s.milestones = data.Milestones
		s.state = StateDemo
		s.errMsg = ""
		s.notice = "Live API unavailable, showing demo data"
		s.repo = demoRepository{s}
		s.mu.Unlock()
		s.logger.Info("backend unreachable, demo dataset active", "error", cause)
		return nil
	}

	s.mu.Lock()
	s.clearLocked()
	s.state = StateDisconnected
	s.errMsg = ErrLiveUnavailable.Error()
	s.notice = ""
	s.repo = disabledRepository{s}
	s.mu.Unlock()
	return fmt.Errorf("%w: %w", ErrLiveUnavailable, cause)
}
