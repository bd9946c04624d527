package engine

import (
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/habithero/internal/models"
)

func TestCreateHabit(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		habitName string
		xp        models.XPValue
		wantErr   bool
	}{
		{name: "valid habit", habitName: "Morning run", xp: models.XPMedium, wantErr: false},
		{name: "name is trimmed", habitName: "  Meditate  ", xp: models.XPTrivial, wantErr: false},
		{name: "empty name", habitName: "", xp: models.XPTrivial, wantErr: true},
		{name: "whitespace-only name", habitName: "   ", xp: models.XPTrivial, wantErr: true},
		{name: "name too long", habitName: strings.Repeat("x", 51), xp: models.XPTrivial, wantErr: true},
		{name: "name at max length", habitName: strings.Repeat("x", 50), xp: models.XPTrivial, wantErr: false},
		{name: "xp outside the tiers", habitName: "Stretch", xp: models.XPValue(25), wantErr: true},
		{name: "zero xp", habitName: "Stretch", xp: models.XPValue(0), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := models.DefaultState(now)
			got, habit, err := CreateHabit(state, "id-1", tt.habitName, tt.xp, now)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CreateHabit() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if len(got.Habits) != 0 {
					t.Errorf("CreateHabit() added a habit on rejection")
				}
				return
			}
			if len(got.Habits) != 1 {
				t.Fatalf("len(Habits) = %d, want 1", len(got.Habits))
			}
			if habit.Name != strings.TrimSpace(tt.habitName) {
				t.Errorf("Name = %q, want trimmed %q", habit.Name, strings.TrimSpace(tt.habitName))
			}
			if habit.ID != "id-1" || habit.XPValue != tt.xp || habit.IsArchived {
				t.Errorf("habit = %+v", habit)
			}
		})
	}
}

func TestCreateHabitRejectsDuplicateName(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	state := models.DefaultState(now)

	state, _, err := CreateHabit(state, "id-1", "Read", models.XPEasy, now)
	if err != nil {
		t.Fatalf("CreateHabit() error = %v", err)
	}
	if _, _, err := CreateHabit(state, "id-2", "Read", models.XPEasy, now); err == nil {
		t.Errorf("CreateHabit() accepted a duplicate name")
	}
}

func TestEditHabit(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	state := models.DefaultState(now)
	state, _, _ = CreateHabit(state, "id-1", "Read", models.XPEasy, now)

	// Record a completion, then change the tier: history keeps the old XP.
	state, res := CompleteHabit(state, "id-1", now)
	if !res.Applied {
		t.Fatalf("completion rejected: %v", res.Reason)
	}

	state, err := EditHabit(state, "id-1", "Read fiction", models.XPEpic)
	if err != nil {
		t.Fatalf("EditHabit() error = %v", err)
	}

	habit, _ := state.HabitByID("id-1")
	if habit.Name != "Read fiction" || habit.XPValue != models.XPEpic {
		t.Errorf("habit = %+v", habit)
	}

	comps := state.Completions[LogicDay(now)]
	if len(comps) != 1 || comps[0].XPGained != int(models.XPEasy) {
		t.Errorf("completion history rewritten by edit: %+v", comps)
	}

	if _, err := EditHabit(state, "missing", "X", models.XPEasy); err == nil {
		t.Errorf("EditHabit() accepted an unknown id")
	}
	if _, err := EditHabit(state, "id-1", "X", models.XPValue(99)); err == nil {
		t.Errorf("EditHabit() accepted an invalid tier")
	}
}

func TestArchiveHabit(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	state := models.DefaultState(now)
	state, _, _ = CreateHabit(state, "id-1", "Read", models.XPEasy, now)

	state, err := ArchiveHabit(state, "id-1")
	if err != nil {
		t.Fatalf("ArchiveHabit() error = %v", err)
	}
	if len(state.ActiveHabits()) != 0 {
		t.Errorf("archived habit still in active list")
	}

	// Archived habits cannot be completed.
	if _, res := CompleteHabit(state, "id-1", now); res.Applied {
		t.Errorf("CompleteHabit() applied for an archived habit")
	}

	state, err = UnarchiveHabit(state, "id-1")
	if err != nil {
		t.Fatalf("UnarchiveHabit() error = %v", err)
	}
	if len(state.ActiveHabits()) != 1 {
		t.Errorf("unarchived habit not back in active list")
	}
}

func TestDeleteHabitKeepsHistory(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	state := models.DefaultState(now)
	state, _, _ = CreateHabit(state, "id-1", "Read", models.XPEasy, now)
	state, _ = CompleteHabit(state, "id-1", now)

	state, err := DeleteHabit(state, "id-1")
	if err != nil {
		t.Fatalf("DeleteHabit() error = %v", err)
	}
	if len(state.Habits) != 0 {
		t.Errorf("habit still present after delete")
	}
	if len(state.Completions[LogicDay(now)]) != 1 {
		t.Errorf("completion history removed with the habit")
	}

	if _, err := DeleteHabit(state, "id-1"); err == nil {
		t.Errorf("DeleteHabit() accepted an already-deleted id")
	}
}
