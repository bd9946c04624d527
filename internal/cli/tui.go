package cli

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/habithero/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *Context) error {
	state, err := ctx.OpenSession(time.Now())
	if err != nil {
		return err
	}

	m := tui.NewModel(ctx.Store, state)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
