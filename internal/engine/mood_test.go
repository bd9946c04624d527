package engine

import (
	"reflect"
	"testing"
	"time"

	"github.com/julianstephens/habithero/internal/models"
)

func TestNeedsCheckIn(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

	state := models.DefaultState(now)
	if !NeedsCheckIn(state, now) {
		t.Errorf("NeedsCheckIn() = false for a day with no mood")
	}

	state.Moods[LogicDay(now)] = models.MoodGood
	if NeedsCheckIn(state, now) {
		t.Errorf("NeedsCheckIn() = true for a day with a recorded mood")
	}

	// A mood recorded yesterday does not satisfy today's gate.
	tomorrow := now.AddDate(0, 0, 1)
	if !NeedsCheckIn(state, tomorrow) {
		t.Errorf("NeedsCheckIn() = false on the next day")
	}
}

func TestRecordMood(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	state := models.DefaultState(now)

	got, ok := RecordMood(state, now, models.MoodFocused)
	if !ok {
		t.Fatalf("RecordMood() rejected a first write")
	}
	if got.Moods[LogicDay(now)] != models.MoodFocused {
		t.Errorf("mood = %v, want %v", got.Moods[LogicDay(now)], models.MoodFocused)
	}
	if NeedsCheckIn(got, now) {
		t.Errorf("NeedsCheckIn() = true immediately after RecordMood")
	}

	// First write wins: a second check-in the same day changes nothing.
	again, ok := RecordMood(got, now.Add(4*time.Hour), models.MoodFrustrated)
	if ok {
		t.Errorf("RecordMood() accepted a second write for the same day")
	}
	if again.Moods[LogicDay(now)] != models.MoodFocused {
		t.Errorf("mood overwritten to %v", again.Moods[LogicDay(now)])
	}
}

func TestRecordMoodRejectsUnknownTag(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	state := models.DefaultState(now)

	got, ok := RecordMood(state, now, models.Mood("ecstatic"))
	if ok {
		t.Errorf("RecordMood() accepted an unknown mood tag")
	}
	if !reflect.DeepEqual(got, state) {
		t.Errorf("RecordMood() changed state on rejection")
	}
}

func TestRecordMoodDoesNotTouchProgression(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	state := models.DefaultState(now)
	state.Profile.CurrentXP = 42
	state.Streak.CurrentStreak = 3
	state.Streak.LongestStreak = 3

	got, _ := RecordMood(state, now, models.MoodNeutral)
	if got.Profile != state.Profile {
		t.Errorf("RecordMood() modified the profile")
	}
	if got.Streak.CurrentStreak != 3 || got.Streak.LongestStreak != 3 {
		t.Errorf("RecordMood() modified the streak")
	}
}
