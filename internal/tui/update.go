package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"github.com/julianstephens/habithero/internal/engine"
	"github.com/julianstephens/habithero/internal/logger"
	"github.com/julianstephens/habithero/internal/models"
	"github.com/julianstephens/habithero/internal/storage"
	"github.com/julianstephens/habithero/internal/tui/components/habitlist"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.habitList.SetSize(msg.Width, msg.Height-8)
		m.xpBar.Width = msg.Width - 20
		return m, nil

	case tea.KeyMsg:
		if m.session == StateList {
			switch {
			case key.Matches(msg, m.keys.Quit):
				m.quitting = true
				return m, tea.Quit
			case key.Matches(msg, m.keys.Help):
				m.help.ShowAll = !m.help.ShowAll
				return m, nil
			case key.Matches(msg, m.keys.Mood):
				if engine.NeedsCheckIn(m.state, time.Now()) {
					m.openMoodForm()
					return m, m.form.Init()
				}
				m.statusMessage = "Mood already recorded for today"
				return m, nil
			}
		}

	case habitlist.AddHabitMsg:
		m.openHabitForm()
		return m, m.form.Init()

	case habitlist.CompleteHabitMsg:
		m.completeHabit(msg.ID)
		return m, nil

	case habitlist.ArchiveHabitMsg:
		if next, err := engine.ArchiveHabit(m.state, msg.ID); err == nil {
			m.applyState(next)
		}
		return m, nil

	case habitlist.DeleteHabitMsg:
		if next, err := engine.DeleteHabit(m.state, msg.ID); err == nil {
			m.applyState(next)
		}
		return m, nil
	}

	switch m.session {
	case StateAddHabit:
		return m.updateHabitForm(msg)
	case StateMoodCheckIn:
		return m.updateMoodForm(msg)
	}

	var cmd tea.Cmd
	m.habitList, cmd = m.habitList.Update(msg)
	return m, cmd
}

func (m *Model) updateHabitForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.session = StateList
		m.form = nil
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		now := time.Now()
		next, habit, err := engine.CreateHabit(m.state, uuid.New().String(), m.habitForm.Name, m.habitForm.XP, now)
		if err != nil {
			m.statusMessage = err.Error()
		} else {
			m.applyState(next)
			m.statusMessage = fmt.Sprintf("Added habit %q", habit.Name)
		}
		m.session = StateList
		m.form = nil
	case huh.StateAborted:
		m.session = StateList
		m.form = nil
	}

	return m, cmd
}

func (m *Model) updateMoodForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.session = StateList
		m.form = nil
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		now := time.Now()
		if next, ok := engine.RecordMood(m.state, now, m.moodChoice); ok {
			m.applyState(next)
			marker := models.MoodMarker{Date: engine.LogicDay(now), Mood: m.moodChoice}
			if err := m.store.SaveMoodMarker(marker); err != nil {
				logger.Warn("Failed to save mood marker", "error", err)
			}
			m.statusMessage = fmt.Sprintf("Mood recorded: %s", m.moodChoice)
		}
		m.session = StateList
		m.form = nil
	case huh.StateAborted:
		m.session = StateList
		m.form = nil
	}

	return m, cmd
}

func (m *Model) completeHabit(id string) {
	now := time.Now()
	next, res := engine.CompleteHabit(m.state, id, now)
	if !res.Applied {
		return
	}

	m.applyState(next)
	if res.LeveledUp {
		m.statusMessage = fmt.Sprintf("Level up! You reached level %d", res.NewLevel)
	} else {
		m.statusMessage = fmt.Sprintf("+%d XP", res.XPGained)
	}
}

// applyState swaps in the new state snapshot, persists it, and refreshes
// the list. Persistence failure is logged but never blocks the session.
func (m *Model) applyState(next models.AppState) {
	m.state = next
	if err := storage.SaveState(m.store, next); err != nil {
		logger.Warn("Failed to save state", "error", err)
		m.statusMessage = "Warning: changes could not be written to disk"
	}
	today := engine.LogicDay(time.Now())
	m.habitList.SetHabits(next.Habits, next.Completions[today])
}
