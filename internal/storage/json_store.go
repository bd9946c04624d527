package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/julianstephens/habithero/internal/constants"
	"github.com/julianstephens/habithero/internal/logger"
	"github.com/julianstephens/habithero/internal/models"
)

type jsonFile struct {
	Version int                        `json:"version"`
	Slices  map[string]json.RawMessage `json:"slices"`
}

// JSONStore persists the slices as raw JSON values inside a single file.
// Each slice decodes independently, so one corrupt slice degrades to its
// default without taking the others down.
type JSONStore struct {
	path string
	file *jsonFile
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.file = &jsonFile{
		Version: 1,
		Slices:  make(map[string]json.RawMessage),
	}

	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'habithero init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.file = &jsonFile{}
	if err := json.Unmarshal(data, s.file); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	if s.file.Slices == nil {
		s.file.Slices = make(map[string]json.RawMessage)
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.file, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) setSlice(key string, value any) error {
	if s.file == nil {
		return fmt.Errorf("storage not loaded")
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to serialize slice %s: %w", key, err)
	}

	s.file.Slices[key] = data
	return s.save()
}

// getSlice decodes a slice into out. Returns false when the slice is
// absent or malformed; the caller applies the default in that case.
func (s *JSONStore) getSlice(key string, out any) bool {
	if s.file == nil {
		return false
	}

	raw, ok := s.file.Slices[key]
	if !ok {
		return false
	}

	if err := json.Unmarshal(raw, out); err != nil {
		logger.Warn("Discarding malformed slice", "key", key, "error", err)
		return false
	}

	return true
}

func (s *JSONStore) LoadHabits() []models.Habit {
	var habits []models.Habit
	if !s.getSlice(constants.KeyHabits, &habits) {
		return []models.Habit{}
	}
	return habits
}

func (s *JSONStore) SaveHabits(habits []models.Habit) error {
	return s.setSlice(constants.KeyHabits, habits)
}

func (s *JSONStore) LoadStats(now time.Time) models.Stats {
	var stats models.Stats
	if !s.getSlice(constants.KeyStats, &stats) {
		return models.DefaultStats(now)
	}
	if stats.Completions == nil {
		stats.Completions = map[string][]models.Completion{}
	}
	if stats.Moods == nil {
		stats.Moods = map[string]models.Mood{}
	}
	return stats
}

func (s *JSONStore) SaveStats(stats models.Stats) error {
	return s.setSlice(constants.KeyStats, stats)
}

func (s *JSONStore) LoadMoodMarker() (models.MoodMarker, bool) {
	var marker models.MoodMarker
	if !s.getSlice(constants.KeyMood, &marker) {
		return models.MoodMarker{}, false
	}
	return marker, true
}

func (s *JSONStore) SaveMoodMarker(marker models.MoodMarker) error {
	return s.setSlice(constants.KeyMood, marker)
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
