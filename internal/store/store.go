// Package store maintains the client-side read model of the BuildPro
// backend: one collection per entity kind, refreshed wholesale by
// resynchronization passes and mutated through a repository that is
// selected once per mode change (live, demo, or refusing), so mutation
// call sites never branch on connection mode.
package store

import (
	"context"
	"io"
	"log/slog"
	"slices"
	"sync"

	"github.com/buildpro/buildpro-go/internal/model"
)

// ConnState describes the store's relationship to the backend.
type ConnState string

const (
	// StateConnected means the collections mirror the live backend.
	StateConnected ConnState = "connected"
	// StateDisconnected means no live data is available (logged out or
	// backend unreachable with demo mode off).
	StateDisconnected ConnState = "disconnected"
	// StateDemo means the backend was unreachable and the static demo
	// dataset is active.
	StateDemo ConnState = "demo"
)

// Config configures a Store.
type Config struct {
	API         Backend
	Tokens      TokenSource
	DemoEnabled bool
	Logger      *slog.Logger
}

// Store owns the entity collections and their connection state.
type Store struct {
	api         Backend
	tokens      TokenSource
	demoEnabled bool
	logger      *slog.Logger

	mu     sync.RWMutex
	state  ConnState
	errMsg string
	notice string
	repo   repository

	projects   []model.Project
	tasks      []model.Task
	risks      []model.Risk
	expenses   []model.Expense
	documents  []model.Document
	messages   []model.Message
	milestones []model.Milestone
}

// New creates a Store. It starts disconnected; the first call to
// Resynchronize establishes the operating mode.
func New(cfg Config) *Store {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	s := &Store{
		api:         cfg.API,
		tokens:      cfg.Tokens,
		demoEnabled: cfg.DemoEnabled,
		logger:      logger,
		state:       StateDisconnected,
	}
	s.repo = disabledRepository{s}
	return s
}

// State returns the current connection state.
func (s *Store) State() ConnState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Err returns the error message the UI should render, if any.
func (s *Store) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.errMsg
}

// Notice returns the informational, non-blocking message, if any.
func (s *Store) Notice() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.notice
}

func (s *Store) Projects() []model.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.projects)
}

func (s *Store) Tasks() []model.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.tasks)
}

func (s *Store) Risks() []model.Risk {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.risks)
}

func (s *Store) Expenses() []model.Expense {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.expenses)
}

func (s *Store) Documents() []model.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.documents)
}

func (s *Store) Messages() []model.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.messages)
}

func (s *Store) Milestones() []model.Milestone {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.milestones)
}

// currentRepo returns the repository for the active mode.
func (s *Store) currentRepo() repository {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.repo
}

// clearLocked empties every collection. Caller holds the write lock.
func (s *Store) clearLocked() {
	s.projects = nil
	s.tasks = nil
	s.risks = nil
	s.expenses = nil
	s.documents = nil
	s.messages = nil
	s.milestones = nil
}

// setError records a message on the UI error field.
func (s *Store) setError(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errMsg = msg
}

// Mutations. Call sites are mode-agnostic; the selected repository decides
// whether the operation goes to the backend, the in-memory demo data, or
// is refused.

func (s *Store) AddProject(ctx context.Context, p model.Project) error {
	return s.currentRepo().addProject(ctx, p)
}

func (s *Store) UpdateProject(ctx context.Context, p model.Project) error {
	return s.currentRepo().updateProject(ctx, p)
}

func (s *Store) DeleteProject(ctx context.Context, id int) error {
	return s.currentRepo().deleteProject(ctx, id)
}

func (s *Store) AddTask(ctx context.Context, t model.Task) error {
	return s.currentRepo().addTask(ctx, t)
}

func (s *Store) UpdateTask(ctx context.Context, t model.Task) error {
	return s.currentRepo().updateTask(ctx, t)
}

func (s *Store) DeleteTask(ctx context.Context, id int) error {
	return s.currentRepo().deleteTask(ctx, id)
}

func (s *Store) AddRisk(ctx context.Context, r model.Risk) error {
	return s.currentRepo().addRisk(ctx, r)
}

func (s *Store) UpdateRisk(ctx context.Context, r model.Risk) error {
	return s.currentRepo().updateRisk(ctx, r)
}

func (s *Store) DeleteRisk(ctx context.Context, id int) error {
	return s.currentRepo().deleteRisk(ctx, id)
}

func (s *Store) AddExpense(ctx context.Context, e model.Expense) error {
	return s.currentRepo().addExpense(ctx, e)
}

func (s *Store) UpdateExpense(ctx context.Context, e model.Expense) error {
	return s.currentRepo().updateExpense(ctx, e)
}

func (s *Store) DeleteExpense(ctx context.Context, id int) error {
	return s.currentRepo().deleteExpense(ctx, id)
}

func (s *Store) AddDocument(ctx context.Context, d model.Document) error {
	return s.currentRepo().addDocument(ctx, d)
}

func (s *Store) UpdateDocument(ctx context.Context, d model.Document) error {
	return s.currentRepo().updateDocument(ctx, d)
}

func (s *Store) DeleteDocument(ctx context.Context, id int) error {
	return s.currentRepo().deleteDocument(ctx, id)
}

func (s *Store) AddMilestone(ctx context.Context, m model.Milestone) error {
	return s.currentRepo().addMilestone(ctx, m)
}

func (s *Store) UpdateMilestone(ctx context.Context, m model.Milestone) error {
	return s.currentRepo().updateMilestone(ctx, m)
}

func (s *Store) DeleteMilestone(ctx context.Context, id int) error {
	return s.currentRepo().deleteMilestone(ctx, id)
}

func (s *Store) AddMessage(ctx context.Context, m model.Message) error {
	return s.currentRepo().addMessage(ctx, m)
}

func (s *Store) MarkMessageRead(ctx context.Context, id int) error {
	return s.currentRepo().markMessageRead(ctx, id)
}
