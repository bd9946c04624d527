package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/habithero/internal/cli"
	apperrors "github.com/julianstephens/habithero/internal/errors"
	"github.com/julianstephens/habithero/internal/logger"
	"github.com/julianstephens/habithero/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Storage file path. A .db extension selects SQLite, anything else JSON." type:"path" default:"~/.config/habithero/habithero.json"`
	Debug   bool   `help:"Enable debug logging to stderr."`

	Init   cli.InitCmd   `cmd:"" help:"Initialize habithero storage."`
	Tui    cli.TuiCmd    `cmd:"" help:"Launch the interactive dashboard." default:"1"`
	Done   cli.DoneCmd   `cmd:"" help:"Mark a habit complete for today."`
	Mood   cli.MoodCmd   `cmd:"" help:"Record today's mood check-in."`
	Stats  cli.StatsCmd  `cmd:"" help:"Show level, XP and streak."`
	Habit  cli.HabitCmd  `cmd:"" help:"Manage habits."`
	Backup struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    cli.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage storage backups."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("habithero"),
		kong.Description("Level up your life, one habit at a time"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{"version": "v0.1.0"},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(CLI.Config),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}

	var store storage.Provider
	if strings.HasSuffix(CLI.Config, ".db") {
		store = storage.NewSQLiteStore(CLI.Config)
	} else {
		store = storage.NewJSONStore(CLI.Config)
	}
	defer store.Close()

	appCtx := &cli.Context{
		Store: store,
	}

	if err := ctx.Run(appCtx); err != nil {
		apperrors.Fatal(err)
	}
}
