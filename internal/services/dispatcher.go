package services

//go:generate mockgen -source=dispatcher.go -destination=dispatcher_mock.go -package=services

import (
	"context"

	"github.com/sbilibin2017/habit-tracker/internal/models"
)

// HabitBackend is the operation set shared by every habit store.
type HabitBackend interface {
	Create(ctx context.Context, in models.NewHabit) (models.HabitView, error)
	List(ctx context.Context) ([]models.HabitView, error)
	Toggle(ctx context.Context, name string, date models.Date) (models.ToggleResult, error)
	Delete(ctx context.Context, name string) error
}

// HabitDispatcher sends habit operations to the owner's relational store when a
// session identifies one, and to the anonymous fallback store otherwise.
type HabitDispatcher struct {
	owned     *HabitService
	anonymous HabitBackend
}

// NewHabitDispatcher creates a new HabitDispatcher.
func NewHabitDispatcher(owned *HabitService, anonymous HabitBackend) *HabitDispatcher {
	return &HabitDispatcher{owned: owned, anonymous: anonymous}
}

func (d *HabitDispatcher) pick(ownerID string) HabitBackend {
	if ownerID == "" {
		return d.anonymous
	}
	return ownedHabits{svc: d.owned, ownerID: ownerID}
}

// Create adds a habit. An empty ownerID means an anonymous caller.
func (d *HabitDispatcher) Create(ctx context.Context, ownerID string, in models.NewHabit) (models.HabitView, error) {
	return d.pick(ownerID).Create(ctx, in)
}

// List returns the caller's habits.
func (d *HabitDispatcher) List(ctx context.Context, ownerID string) ([]models.HabitView, error) {
	return d.pick(ownerID).List(ctx)
}

// Toggle flips the completion of a habit on date.
func (d *HabitDispatcher) Toggle(ctx context.Context, ownerID, name string, date models.Date) (models.ToggleResult, error) {
	return d.pick(ownerID).Toggle(ctx, name, date)
}

// Delete removes a habit with its completions.
func (d *HabitDispatcher) Delete(ctx context.Context, ownerID, name string) error {
	return d.pick(ownerID).Delete(ctx, name)
}

// ownedHabits binds a HabitService to one owner.
type ownedHabits struct {
	svc     *HabitService
	ownerID string
}

func (o ownedHabits) Create(ctx context.Context, in models.NewHabit) (models.HabitView, error) {
	return o.svc.Create(ctx, o.ownerID, in)
}

func (o ownedHabits) List(ctx context.Context) ([]models.HabitView, error) {
	return o.svc.List(ctx, o.ownerID)
}

func (o ownedHabits) Toggle(ctx context.Context, name string, date models.Date) (models.ToggleResult, error) {
	return o.svc.Toggle(ctx, o.ownerID, name, date)
}

func (o ownedHabits) Delete(ctx context.Context, name string) error {
	return o.svc.Delete(ctx, o.ownerID, name)
}
