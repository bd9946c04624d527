package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/habithero/internal/engine"
	"github.com/julianstephens/habithero/internal/models"
	"github.com/julianstephens/habithero/internal/storage"
	"github.com/julianstephens/habithero/internal/tui/components/habitlist"
)

type SessionState int

const (
	StateList SessionState = iota
	StateAddHabit
	StateMoodCheckIn
)

type HabitFormModel struct {
	Name string
	XP   models.XPValue
}

type Model struct {
	store         storage.Provider
	state         models.AppState
	session       SessionState
	keys          KeyMap
	help          help.Model
	habitList     habitlist.Model
	xpBar         progress.Model
	form          *huh.Form
	habitForm     *HabitFormModel
	moodChoice    models.Mood
	statusMessage string
	quitting      bool
	width         int
	height        int
}

// NewModel builds the dashboard from already-reconciled state. The mood
// check-in form opens immediately when today has no mood yet.
func NewModel(store storage.Provider, state models.AppState) Model {
	now := time.Now()
	today := engine.LogicDay(now)

	m := Model{
		store:     store,
		state:     state,
		session:   StateList,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		habitList: habitlist.New(state.Habits, state.Completions[today], 0, 0),
		xpBar:     progress.New(progress.WithDefaultGradient()),
	}

	if engine.NeedsCheckIn(state, now) {
		m.openMoodForm()
	}

	return m
}

func (m *Model) openMoodForm() {
	m.moodChoice = models.MoodNeutral
	m.form = newMoodForm(&m.moodChoice)
	m.session = StateMoodCheckIn
}

func (m *Model) openHabitForm() {
	m.habitForm = &HabitFormModel{XP: models.XPMedium}
	m.form = newHabitForm(m.habitForm)
	m.session = StateAddHabit
}

func newHabitForm(fm *HabitFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&fm.Name),
			huh.NewSelect[models.XPValue]().
				Title("XP tier").
				Options(
					huh.NewOption("Trivial (20 XP)", models.XPTrivial),
					huh.NewOption("Easy (30 XP)", models.XPEasy),
					huh.NewOption("Medium (50 XP)", models.XPMedium),
					huh.NewOption("Hard (70 XP)", models.XPHard),
					huh.NewOption("Epic (100 XP)", models.XPEpic),
				).
				Value(&fm.XP),
		),
	)
}

func newMoodForm(mood *models.Mood) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[models.Mood]().
				Title("How are you feeling today?").
				Options(
					huh.NewOption("Focused", models.MoodFocused),
					huh.NewOption("Good", models.MoodGood),
					huh.NewOption("Neutral", models.MoodNeutral),
					huh.NewOption("Frustrated", models.MoodFrustrated),
					huh.NewOption("Low energy", models.MoodLowEnergy),
				).
				Value(mood),
		),
	)
}

func (m Model) ShortHelp() []key.Binding {
	return []key.Binding{m.keys.Mood, m.keys.Quit, m.keys.Help}
}

func (m Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{{m.keys.Mood, m.keys.Quit, m.keys.Help}}
}

func (m Model) Init() tea.Cmd {
	if m.form != nil {
		return m.form.Init()
	}
	return nil
}
