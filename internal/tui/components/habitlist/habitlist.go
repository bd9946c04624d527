package habitlist

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/habithero/internal/models"
)

type AddHabitMsg struct{}

type CompleteHabitMsg struct {
	ID string
}

type ArchiveHabitMsg struct {
	ID string
}

type DeleteHabitMsg struct {
	ID string
}

type Item struct {
	Habit       models.Habit
	IsCompleted bool
}

func (i Item) Title() string {
	title := i.Habit.Name
	if i.Habit.IsArchived {
		title = "[ARCHIVED] " + title
	} else if i.IsCompleted {
		title = "✓ " + title
	} else {
		title = "○ " + title
	}
	return title
}

func (i Item) Description() string {
	if i.Habit.IsArchived {
		return "archived"
	}
	if i.IsCompleted {
		return fmt.Sprintf("completed today (+%d XP)", i.Habit.XPValue)
	}
	return fmt.Sprintf("worth %d XP", i.Habit.XPValue)
}

func (i Item) FilterValue() string { return i.Habit.Name }

type KeyMap struct {
	Add      key.Binding
	Complete key.Binding
	Archive  key.Binding
	Delete   key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Complete: key.NewBinding(
			key.WithKeys("enter", "m"),
			key.WithHelp("enter", "complete"),
		),
		Archive: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "archive"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(habits []models.Habit, todays []models.Completion, width, height int) Model {
	l := list.New(buildItems(habits, todays), list.NewDefaultDelegate(), width, height)
	l.Title = "Habits"
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Complete, keys.Archive, keys.Delete}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Complete, keys.Archive, keys.Delete}
	}

	return Model{
		list: l,
		keys: keys,
	}
}

func buildItems(habits []models.Habit, todays []models.Completion) []list.Item {
	completed := make(map[string]bool)
	for _, c := range todays {
		completed[c.HabitID] = true
	}

	items := make([]list.Item, len(habits))
	for i, h := range habits {
		items[i] = Item{
			Habit:       h,
			IsCompleted: completed[h.ID],
		}
	}
	return items
}

// SetHabits refreshes the list contents after a state transition.
func (m *Model) SetHabits(habits []models.Habit, todays []models.Completion) {
	m.list.SetItems(buildItems(habits, todays))
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Add):
			return m, func() tea.Msg { return AddHabitMsg{} }
		case key.Matches(msg, m.keys.Complete):
			if i, ok := m.list.SelectedItem().(Item); ok {
				if !i.Habit.IsArchived && !i.IsCompleted {
					return m, func() tea.Msg { return CompleteHabitMsg{ID: i.Habit.ID} }
				}
			}
		case key.Matches(msg, m.keys.Archive):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return ArchiveHabitMsg{ID: i.Habit.ID} }
			}
		case key.Matches(msg, m.keys.Delete):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return DeleteHabitMsg{ID: i.Habit.ID} }
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  No habits yet.\n  Press 'a' to add one."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
