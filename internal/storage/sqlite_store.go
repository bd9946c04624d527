package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/habithero/internal/constants"
	"github.com/julianstephens/habithero/internal/logger"
	"github.com/julianstephens/habithero/internal/models"
)

// SQLiteStore keeps the slices in a single key/value table. The slice
// values stay JSON so both backends share one wire format and the same
// malformed-data fallback behavior.
type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	_, err = s.db.Exec(`
		CREATE TABLE IF NOT EXISTS slices (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`)
	if err != nil {
		return fmt.Errorf("failed to create slices table: %w", err)
	}

	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'habithero init' first")
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) setSlice(key string, value any) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to serialize slice %s: %w", key, err)
	}

	_, err = s.db.Exec(`
		INSERT INTO slices (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, string(data))
	if err != nil {
		return fmt.Errorf("failed to write slice %s: %w", key, err)
	}

	return nil
}

func (s *SQLiteStore) getSlice(key string, out any) bool {
	if s.db == nil {
		return false
	}

	var raw string
	err := s.db.QueryRow("SELECT value FROM slices WHERE key = ?", key).Scan(&raw)
	if err != nil {
		if err != sql.ErrNoRows {
			logger.Warn("Failed to read slice", "key", key, "error", err)
		}
		return false
	}

	if err := json.Unmarshal([]byte(raw), out); err != nil {
		logger.Warn("Discarding malformed slice", "key", key, "error", err)
		return false
	}

	return true
}

func (s *SQLiteStore) LoadHabits() []models.Habit {
	var habits []models.Habit
	if !s.getSlice(constants.KeyHabits, &habits) {
		return []models.Habit{}
	}
	return habits
}

func (s *SQLiteStore) SaveHabits(habits []models.Habit) error {
	return s.setSlice(constants.KeyHabits, habits)
}

func (s *SQLiteStore) LoadStats(now time.Time) models.Stats {
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

func (s *SQLiteStore) SaveStats(stats models.Stats) error {
	return s.setSlice(constants.KeyStats, stats)
}

func (s *SQLiteStore) LoadMoodMarker() (models.MoodMarker, bool) {
	var marker models.MoodMarker
	if !s.getSlice(constants.KeyMood, &marker) {
		return models.MoodMarker{}, false
	}
	return marker, true
}

func (s *SQLiteStore) SaveMoodMarker(marker models.MoodMarker) error {
	return s.setSlice(constants.KeyMood, marker)
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}
