package services

//go:generate mockgen -source=habit.go -destination=habit_mock.go -package=services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/habit-tracker/internal/colors"
	"github.com/sbilibin2017/habit-tracker/internal/logger"
	"github.com/sbilibin2017/habit-tracker/internal/models"
	"github.com/segmentio/kafka-go"
)

// HabitReader reads habit definitions.
type HabitReader interface {
	ListByOwner(ctx context.Context, ownerID string) ([]models.Habit, error)            // Returns owner's habits by creation time
	GetByOwnerAndName(ctx context.Context, ownerID, name string) (*models.Habit, error) // Returns nil when absent
}

// HabitWriter persists habit definitions.
type HabitWriter interface {
	Save(ctx context.Context, habit models.Habit) error       // Inserts one habit
	Delete(ctx context.Context, habitID string) (bool, error) // Reports whether a row was removed
}

// CompletionReader reads completion marks.
type CompletionReader interface {
	ListByHabitIDs(ctx context.Context, habitIDs []string) ([]models.Completion, error)    // Batch load for many habits
	Get(ctx context.Context, habitID string, date models.Date) (*models.Completion, error) // Returns nil when absent
}

// CompletionWriter creates and removes completion marks.
type CompletionWriter interface {
	Save(ctx context.Context, habitID string, date models.Date) (*models.Completion, error) // Fails with ErrConflict on duplicates
	Delete(ctx context.Context, completionID string) (bool, error)                          // Reports whether a row was removed
	DeleteByHabitID(ctx context.Context, habitID string) (int64, error)                     // Removes all marks of a habit
}

// Transactor runs fn inside a single database transaction.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// HabitCache caches an owner's rendered habit list under a generation.
// Invalidate advances the generation, so a Set made with the generation a
// reader saw before a concurrent change is never returned by Get.
type HabitCache interface {
	Get(ctx context.Context, ownerID string) ([]models.HabitView, int64, bool, error)   // Returns the list, its generation and whether it was found
	Set(ctx context.Context, ownerID string, gen int64, views []models.HabitView) error // Stores the list under gen
	Invalidate(ctx context.Context, ownerID string) error                               // Advances the generation
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// HabitService implements habit operations for authenticated owners on the relational store.
type HabitService struct {
	habitReader      HabitReader
	habitWriter      HabitWriter
	completionReader CompletionReader
	completionWriter CompletionWriter
	tx               Transactor
	cache            HabitCache
	kafkaWriter      KafkaWriter
}

// NewHabitService creates a new HabitService. cache and kafkaWriter may be nil.
func NewHabitService(
	habitReader HabitReader,
	habitWriter HabitWriter,
	completionReader CompletionReader,
	completionWriter CompletionWriter,
	tx Transactor,
	cache HabitCache,
	kafkaWriter KafkaWriter,
) *HabitService {
	return &HabitService{
		habitReader:      habitReader,
		habitWriter:      habitWriter,
		completionReader: completionReader,
		completionWriter: completionWriter,
		tx:               tx,
		cache:            cache,
		kafkaWriter:      kafkaWriter,
	}
}

// Create adds a habit for the owner.
func (s *HabitService) Create(ctx context.Context, ownerID string, in models.NewHabit) (models.HabitView, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return models.HabitView{}, fmt.Errorf("%w: habit name is required", models.ErrValidation)
	}

	existing, err := s.habitReader.GetByOwnerAndName(ctx, ownerID, name)
	if err != nil {
		return models.HabitView{}, storageError("failed to look up habit", err)
	}
	if existing != nil {
		return models.HabitView{}, fmt.Errorf("%w: habit %q already exists", models.ErrConflict, name)
	}

	habit := models.Habit{
		ID:          uuid.NewString(),
		OwnerID:     ownerID,
		Name:        name,
		Description: strings.TrimSpace(in.Description),
		Color:       colors.Normalize(in.Color),
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.habitWriter.Save(ctx, habit); err != nil {
		return models.HabitView{}, storageError("failed to save habit", err)
	}

	s.invalidate(ctx, ownerID)
	s.publishEvent(ctx, ownerID, name, models.OperationHabitCreated, "")

	return toView(habit, nil), nil
}

// List returns the owner's habits with their completed dates, oldest habit first.
func (s *HabitService) List(ctx context.Context, ownerID string) ([]models.HabitView, error) {
	var (
		gen       int64
		cacheable bool
	)
	if s.cache != nil {
		views, g, found, err := s.cache.Get(ctx, ownerID)
		switch {
		case err != nil:
			logger.Log.Warnw("habit cache read failed", "user_id", ownerID, "error", err)
		case found:
			return views, nil
		default:
			gen, cacheable = g, true
		}
	}

	habits, err := s.habitReader.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, storageError("failed to list habits", err)
	}

	ids := make([]string, 0, len(habits))
	for _, h := range habits {
		ids = append(ids, h.ID)
	}

	completions, err := s.completionReader.ListByHabitIDs(ctx, ids)
	if err != nil {
		return nil, storageError("failed to list completions", err)
	}

	byHabit := make(map[string][]models.Date, len(habits))
	for _, c := range completions {
		byHabit[c.HabitID] = append(byHabit[c.HabitID], c.Date)
	}

	views := make([]models.HabitView, 0, len(habits))
	for _, h := range habits {
		views = append(views, toView(h, byHabit[h.ID]))
	}

	if cacheable {
		if err := s.cache.Set(ctx, ownerID, gen, views); err != nil {
			logger.Log.Warnw("habit cache write failed", "user_id", ownerID, "error", err)
		}
	}

	return views, nil
}

// Toggle flips the completion of the named habit on date and returns the resulting state.
//
// Losing a race to a concurrent toggle shows up as ErrConflict: either the
// insert hit the unique constraint or the delete found nothing to remove.
// The whole toggle is then re-read and retried once.
func (s *HabitService) Toggle(ctx context.Context, ownerID, name string, date models.Date) (models.ToggleResult, error) {
	name = strings.TrimSpace(name)
	res, err := s.toggleOnce(ctx, ownerID, name, date)
	if errors.Is(err, models.ErrConflict) {
		logger.Log.Infow("toggle raced, retrying", "user_id", ownerID, "habit", name, "date", date.String())
		res, err = s.toggleOnce(ctx, ownerID, name, date)
	}
	if err != nil {
		return models.ToggleResult{}, err
	}

	s.invalidate(ctx, ownerID)
	op := models.OperationHabitUncompleted
	if res.Completed {
		op = models.OperationHabitCompleted
	}
	s.publishEvent(ctx, ownerID, res.HabitName, op, res.Date)

	return res, nil
}

func (s *HabitService) toggleOnce(ctx context.Context, ownerID, name string, date models.Date) (models.ToggleResult, error) {
	habit, err := s.habitReader.GetByOwnerAndName(ctx, ownerID, name)
	if err != nil {
		return models.ToggleResult{}, storageError("failed to look up habit", err)
	}
	if habit == nil {
		return models.ToggleResult{}, fmt.Errorf("%w: habit %q", models.ErrNotFound, name)
	}

	completion, err := s.completionReader.Get(ctx, habit.ID, date)
	if err != nil {
		return models.ToggleResult{}, storageError("failed to look up completion", err)
	}

	res := models.ToggleResult{HabitName: habit.Name, Date: date.String()}

	if completion != nil {
		removed, err := s.completionWriter.Delete(ctx, completion.ID)
		if err != nil {
			return models.ToggleResult{}, storageError("failed to delete completion", err)
		}
		if !removed {
			return models.ToggleResult{}, fmt.Errorf("%w: completion already removed", models.ErrConflict)
		}
		return res, nil
	}

	if _, err := s.completionWriter.Save(ctx, habit.ID, date); err != nil {
		return models.ToggleResult{}, storageError("failed to save completion", err)
	}
	res.Completed = true
	return res, nil
}

// Delete removes the named habit and all its completions in one transaction.
func (s *HabitService) Delete(ctx context.Context, ownerID, name string) error {
	name = strings.TrimSpace(name)
	habit, err := s.habitReader.GetByOwnerAndName(ctx, ownerID, name)
	if err != nil {
		return storageError("failed to look up habit", err)
	}
	if habit == nil {
		return fmt.Errorf("%w: habit %q", models.ErrNotFound, name)
	}

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.completionWriter.DeleteByHabitID(ctx, habit.ID); err != nil {
			return err
		}
		removed, err := s.habitWriter.Delete(ctx, habit.ID)
		if err != nil {
			return err
		}
		if !removed {
			return fmt.Errorf("%w: habit %q", models.ErrNotFound, name)
		}
		return nil
	})
	if err != nil {
		return storageError("failed to delete habit", err)
	}

	s.invalidate(ctx, ownerID)
	s.publishEvent(ctx, ownerID, habit.Name, models.OperationHabitDeleted, "")
	return nil
}

func (s *HabitService) invalidate(ctx context.Context, ownerID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, ownerID); err != nil {
		logger.Log.Warnw("habit cache invalidation failed", "user_id", ownerID, "error", err)
	}
}

// publishEvent publishes a habit change to Kafka. Failures are logged only.
func (s *HabitService) publishEvent(ctx context.Context, ownerID, habitName, operation, date string) {
	event := models.HabitEvent{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		UserID:    ownerID,
		HabitName: habitName,
		Operation: operation,
		Date:      date,
	}

	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal habit event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(ownerID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish habit event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Habit event published to Kafka", "event_id", event.EventID, "operation", operation)
	}
}

func toView(h models.Habit, dates []models.Date) models.HabitView {
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	completed := make([]string, 0, len(dates))
	for _, d := range dates {
		completed = append(completed, d.String())
	}

	return models.HabitView{
		Name:           h.Name,
		Description:    h.Description,
		Color:          h.Color,
		CreatedDate:    h.CreatedAt.UnixMilli(),
		CompletedDates: completed,
	}
}
