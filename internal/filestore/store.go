package filestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/sbilibin2017/habit-tracker/internal/colors"
	"github.com/sbilibin2017/habit-tracker/internal/logger"
	"github.com/sbilibin2017/habit-tracker/internal/models"
	"github.com/spf13/afero"
)

// Store keeps anonymous habits in a single JSON document.
//
// Every mutation re-reads the whole document, changes it and writes it back
// through a temp file and rename. The mutex serializes these cycles inside
// one process; separate processes sharing the file are last-writer-wins.
type Store struct {
	fs   afero.Fs
	path string
	now  func() time.Time
	mu   sync.Mutex
}

// NewStore creates a Store over the file at path.
func NewStore(fs afero.Fs, path string) *Store {
	return &Store{fs: fs, path: path, now: time.Now}
}

// List returns all habits in document order.
func (s *Store) List(ctx context.Context) ([]models.HabitView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}

	views := make([]models.HabitView, 0, len(doc.Habits))
	for _, h := range doc.Habits {
		views = append(views, h.view())
	}
	return views, nil
}

// Create appends a new habit with no completions.
func (s *Store) Create(ctx context.Context, in models.NewHabit) (models.HabitView, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return models.HabitView{}, fmt.Errorf("%w: habit name is required", models.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return models.HabitView{}, err
	}
	if doc.find(name) >= 0 {
		return models.HabitView{}, fmt.Errorf("%w: habit %q already exists", models.ErrConflict, name)
	}

	entry := habitEntry{
		Name:           name,
		Description:    strings.TrimSpace(in.Description),
		Color:          colors.Normalize(in.Color),
		CreatedDate:    s.now().UnixMilli(),
		CompletedDates: dateSet{},
	}
	doc.Habits = append(doc.Habits, entry)

	if err := s.save(doc); err != nil {
		return models.HabitView{}, err
	}
	return entry.view(), nil
}

// Toggle flips the completion of the named habit on date.
func (s *Store) Toggle(ctx context.Context, name string, date models.Date) (models.ToggleResult, error) {
	name = strings.TrimSpace(name)

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return models.ToggleResult{}, err
	}

	i := doc.find(name)
	if i < 0 {
		return models.ToggleResult{}, fmt.Errorf("%w: habit %q", models.ErrNotFound, name)
	}

	entry := &doc.Habits[i]
	completed := false
	if j := entry.CompletedDates.index(date); j >= 0 {
		entry.CompletedDates = entry.CompletedDates.remove(j)
	} else {
		entry.CompletedDates = entry.CompletedDates.add(date)
		completed = true
	}

	if err := s.save(doc); err != nil {
		return models.ToggleResult{}, err
	}
	return models.ToggleResult{HabitName: entry.Name, Date: date.String(), Completed: completed}, nil
}

// Delete removes the named habit together with its completions.
func (s *Store) Delete(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}

	i := doc.find(name)
	if i < 0 {
		return fmt.Errorf("%w: habit %q", models.ErrNotFound, name)
	}
	doc.Habits = append(doc.Habits[:i], doc.Habits[i+1:]...)

	return s.save(doc)
}

func (d *document) find(name string) int {
	for i, h := range d.Habits {
		if h.Name == name {
			return i
		}
	}
	return -1
}

func (s *Store) load() (*document, error) {
	data, err := afero.ReadFile(s.fs, s.path)
	if errors.Is(err, os.ErrNotExist) {
		return &document{Habits: []habitEntry{}}, nil
	}
	if err != nil {
		logger.Log.Errorw("read habits file", "path", s.path, "error", err)
		return nil, fmt.Errorf("%w: read habits file: %v", models.ErrStorage, err)
	}

	doc := &document{}
	if len(strings.TrimSpace(string(data))) > 0 {
		if err := json.Unmarshal(data, doc); err != nil {
			logger.Log.Errorw("decode habits file", "path", s.path, "error", err)
			return nil, fmt.Errorf("%w: decode habits file: %v", models.ErrStorage, err)
		}
	}
	if doc.Habits == nil {
		doc.Habits = []habitEntry{}
	}
	return doc, nil
}

func (s *Store) save(doc *document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode habits file: %v", models.ErrStorage, err)
	}

	if err := s.writeAtomic(data); err != nil {
		logger.Log.Errorw("write habits file", "path", s.path, "error", err)
		return fmt.Errorf("%w: write habits file: %v", models.ErrStorage, err)
	}

	logger.Log.Infow("habits file saved", "path", s.path, "habits", len(doc.Habits))
	return nil
}

func (s *Store) writeAtomic(data []byte) error {
	dir := filepath.Dir(s.path)
	if err := s.fs.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := afero.TempFile(s.fs, dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		s.fs.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		s.fs.Remove(tmpName)
		return err
	}
	if err := s.fs.Rename(tmpName, s.path); err != nil {
		s.fs.Remove(tmpName)
		return err
	}
	return nil
}
