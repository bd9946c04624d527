package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/habithero/internal/engine"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.session == StateAddHabit || m.session == StateMoodCheckIn {
		if m.form != nil {
			return m.form.View()
		}
	}

	var b strings.Builder

	threshold := engine.XPForNextLevel(m.state.Profile.CurrentLevel)
	percent := float64(m.state.Profile.CurrentXP) / float64(threshold)

	b.WriteString(headerStyle.Render(fmt.Sprintf("%s — Level %d", m.state.Profile.Name, m.state.Profile.CurrentLevel)))
	b.WriteString("  ")
	b.WriteString(streakStyle.Render(fmt.Sprintf("🔥 %d", m.state.Streak.CurrentStreak)))
	b.WriteString("\n")
	b.WriteString(m.xpBar.ViewAs(percent))
	b.WriteString(subtleStyle.Render(fmt.Sprintf(" %d/%d XP", m.state.Profile.CurrentXP, threshold)))
	b.WriteString("\n")

	today := engine.LogicDay(time.Now())
	if mood, ok := m.state.Moods[today]; ok {
		b.WriteString(subtleStyle.Render(fmt.Sprintf("mood: %s", mood)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(m.habitList.View())
	b.WriteString("\n")

	if m.statusMessage != "" {
		b.WriteString(levelUpStyle.Render(m.statusMessage))
		b.WriteString("\n")
	}

	b.WriteString(m.help.View(m))

	return b.String()
}
