package store

import (
	"context"

	"github.com/buildpro/buildpro-go/internal/model"
)

// repository is the mutation capability set behind every Store operation.
// One implementation exists per operating mode: remoteRepository (live),
// demoRepository (in-memory fallback), and disabledRepository (refusing).
// The Store swaps implementations when the mode changes, so the mutual
// exclusion between modes lives in one place.
type repository interface {
	addProject(ctx context.Context, p model.Project) error
	updateProject(ctx context.Context, p model.Project) error
	deleteProject(ctx context.Context, id int) error

	addTask(ctx context.Context, t model.Task) error
	updateTask(ctx context.Context, t model.Task) error
	deleteTask(ctx context.Context, id int) error

	addRisk(ctx context.Context, r model.Risk) error
	updateRisk(ctx context.Context, r model.Risk) error
	deleteRisk(ctx context.Context, id int) error

	addExpense(ctx context.Context, e model.Expense) error
	updateExpense(ctx context.Context, e model.Expense) error
	deleteExpense(ctx context.Context, id int) error

	addDocument(ctx context.Context, d model.Document) error
	updateDocument(ctx context.Context, d model.Document) error
	deleteDocument(ctx context.Context, id int) error

	addMilestone(ctx context.Context, m model.Milestone) error
	updateMilestone(ctx context.Context, m model.Milestone) error
	deleteMilestone(ctx context.Context, id int) error

	addMessage(ctx context.Context, m model.Message) error
	markMessageRead(ctx context.Context, id int) error
}

// disabledRepository refuses every mutation: no live connection exists and
// the demo fallback is off. Collections stay untouched and the fixed
// message lands on the store's error field.
type disabledRepository struct {
	s *Store
}

func (r disabledRepository) refuse() error {
	r.s.setError(ErrFallbackDisabled.Error())
	return ErrFallbackDisabled
}

func (r disabledRepository) addProject(context.Context, model.Project) error   { return r.refuse() }
func (r disabledRepository) updateProject(context.Context, model.Project) error { return r.refuse() }
func (r disabledRepository) deleteProject(context.Context, int) error          { return r.refuse() }

func (r disabledRepository) addTask(context.Context, model.Task) error    { return r.refuse() }
func (r disabledRepository) updateTask(context.Context, model.Task) error { return r.refuse() }
func (r disabledRepository) deleteTask(context.Context, int) error        { return r.refuse() }

func (r disabledRepository) addRisk(context.Context, model.Risk) error    { return r.refuse() }
func (r disabledRepository) updateRisk(context.Context, model.Risk) error { return r.refuse() }
func (r disabledRepository) deleteRisk(context.Context, int) error        { return r.refuse() }

func (r disabledRepository) addExpense(context.Context, model.Expense) error    { return r.refuse() }
func (r disabledRepository) updateExpense(context.Context, model.Expense) error { return r.refuse() }
func (r disabledRepository) deleteExpense(context.Context, int) error           { return r.refuse() }

func (r disabledRepository) addDocument(context.Context, model.Document) error    { return r.refuse() }
func (r disabledRepository) updateDocument(context.Context, model.Document) error { return r.refuse() }
func (r disabledRepository) deleteDocument(context.Context, int) error            { return r.refuse() }

func (r disabledRepository) addMilestone(context.Context, model.Milestone) error    { return r.refuse() }
func (r disabledRepository) updateMilestone(context.Context, model.Milestone) error { return r.refuse() }
func (r disabledRepository) deleteMilestone(context.Context, int) error             { return r.refuse() }

func (r disabledRepository) addMessage(context.Context, model.Message) error { return r.refuse() }
func (r disabledRepository) markMessageRead(context.Context, int) error      { return r.refuse() }
