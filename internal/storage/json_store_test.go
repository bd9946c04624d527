package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/julianstephens/habithero/internal/constants"
	"github.com/julianstephens/habithero/internal/models"
)

func newTestJSONStore(t *testing.T) *JSONStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "habithero.json")
	store := NewJSONStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if err := store.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	return store
}

func TestJSONStoreInitRefusesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "habithero.json")
	store := NewJSONStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if err := NewJSONStore(path).Init(); err == nil {
		t.Errorf("Init() succeeded on an already-initialized path")
	}
}

func TestJSONStoreLoadMissingFile(t *testing.T) {
	store := NewJSONStore(filepath.Join(t.TempDir(), "missing.json"))
	if err := store.Load(); err == nil {
		t.Errorf("Load() succeeded for a missing file")
	}
}

func TestJSONStoreHabitsRoundTrip(t *testing.T) {
	store := newTestJSONStore(t)

	if got := store.LoadHabits(); len(got) != 0 {
		t.Errorf("LoadHabits() = %v on fresh store, want empty", got)
	}

	habits := []models.Habit{
		{ID: "a", Name: "Read", XPValue: models.XPEasy, CreatedAt: time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)},
		{ID: "b", Name: "Run", XPValue: models.XPHard, CreatedAt: time.Date(2026, 3, 16, 10, 0, 0, 0, time.UTC), IsArchived: true},
	}
	if err := store.SaveHabits(habits); err != nil {
		t.Fatalf("SaveHabits() error = %v", err)
	}

	// Reload from disk to prove the write persisted.
	reloaded := NewJSONStore(store.GetConfigPath())
	if err := reloaded.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	got := reloaded.LoadHabits()
	if len(got) != 2 {
		t.Fatalf("len(LoadHabits()) = %d, want 2", len(got))
	}
	if got[0].ID != "a" || got[1].ID != "b" {
		t.Errorf("habit order not preserved: %v, %v", got[0].ID, got[1].ID)
	}
	if got[1].XPValue != models.XPHard || !got[1].IsArchived {
		t.Errorf("habit fields lost: %+v", got[1])
	}
}

func TestJSONStoreStatsDefaultsWhenAbsent(t *testing.T) {
	store := newTestJSONStore(t)
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

	stats := store.LoadStats(now)
	if stats.Profile.CurrentLevel != 1 || stats.Profile.Name != constants.DefaultProfileName {
		t.Errorf("default profile = %+v", stats.Profile)
	}
	if stats.Completions == nil || stats.Moods == nil {
		t.Errorf("default stats maps not initialized")
	}
	if stats.Streak.CurrentStreak != 0 || stats.Streak.LastCompletionDate != nil {
		t.Errorf("default streak = %+v", stats.Streak)
	}
}

func TestJSONStoreMalformedSliceDegradesToDefault(t *testing.T) {
	store := newTestJSONStore(t)
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

	// Poison the stats slice with a value of the wrong shape.
	if err := store.setSlice(constants.KeyStats, "not an object"); err != nil {
		t.Fatalf("setSlice() error = %v", err)
	}

	stats := store.LoadStats(now)
	if stats.Profile.CurrentLevel != 1 {
		t.Errorf("LoadStats() did not fall back to default on malformed data")
	}
}

func TestJSONStoreMoodMarker(t *testing.T) {
	store := newTestJSONStore(t)

	if _, ok := store.LoadMoodMarker(); ok {
		t.Errorf("LoadMoodMarker() found a marker on a fresh store")
	}

	marker := models.MoodMarker{Date: "2026-03-15", Mood: models.MoodFocused}
	if err := store.SaveMoodMarker(marker); err != nil {
		t.Fatalf("SaveMoodMarker() error = %v", err)
	}

	got, ok := store.LoadMoodMarker()
	if !ok || got != marker {
		t.Errorf("LoadMoodMarker() = %+v, %v, want %+v", got, ok, marker)
	}
}

func TestJSONStoreCorruptFileFailsLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "habithero.json")
	if err := os.WriteFile(path, []byte("{{{"), 0600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if err := NewJSONStore(path).Load(); err == nil {
		t.Errorf("Load() succeeded on a corrupt file")
	}
}

func TestLoadSaveStateRoundTrip(t *testing.T) {
	store := newTestJSONStore(t)
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

	state := models.DefaultState(now)
	state.Habits = []models.Habit{{ID: "a", Name: "Read", XPValue: models.XPEasy, CreatedAt: now}}
	state.Profile.CurrentXP = 30
	state.Profile.TotalLifetimeXP = 30
	state.Completions["2026-03-15"] = []models.Completion{{HabitID: "a", CompletedAt: now, XPGained: 30}}
	state.Moods["2026-03-15"] = models.MoodGood
	state.Streak.CurrentStreak = 1
	state.Streak.LongestStreak = 1
	state.Streak.LastCompletionDate = &now
	state.Streak.StreakStartDate = "2026-03-15"

	if err := SaveState(store, state); err != nil {
		t.Fatalf("SaveState() error = %v", err)
	}

	got := LoadState(store, now.Add(time.Hour))
	if got.Profile.CurrentXP != 30 || got.Profile.TotalLifetimeXP != 30 {
		t.Errorf("profile = %+v", got.Profile)
	}
	if len(got.Habits) != 1 || got.Habits[0].ID != "a" {
		t.Errorf("habits = %+v", got.Habits)
	}
	if len(got.Completions["2026-03-15"]) != 1 {
		t.Errorf("completions = %+v", got.Completions)
	}
	if got.Moods["2026-03-15"] != models.MoodGood {
		t.Errorf("moods = %+v", got.Moods)
	}
	if got.Streak.CurrentStreak != 1 || got.Streak.StreakStartDate != "2026-03-15" {
		t.Errorf("streak = %+v", got.Streak)
	}
	if got.Streak.LastCompletionDate == nil || !got.Streak.LastCompletionDate.Equal(now) {
		t.Errorf("LastCompletionDate = %v", got.Streak.LastCompletionDate)
	}
}
