package cli

import (
	"fmt"
	"time"

	"github.com/julianstephens/habithero/internal/backup"
	"github.com/julianstephens/habithero/internal/engine"
	"github.com/julianstephens/habithero/internal/logger"
	"github.com/julianstephens/habithero/internal/models"
	"github.com/julianstephens/habithero/internal/storage"
)

type Context struct {
	Store storage.Provider
}

// OpenSession loads the persisted state and runs the daily-reset
// reconciliation. Every command goes through here so reconciliation
// always precedes any other transition in a session.
func (c *Context) OpenSession(now time.Time) (models.AppState, error) {
	if err := c.Store.Load(); err != nil {
		return models.AppState{}, err
	}

	state := storage.LoadState(c.Store, now)
	reconciled := engine.CheckDailyReset(state, now)

	// Persist the reconciliation result so a crashed session does not
	// replay the reset.
	if err := storage.SaveState(c.Store, reconciled); err != nil {
		logger.Warn("Failed to persist reconciled state", "error", err)
	}

	return reconciled, nil
}

// SaveSession writes the state back. Persistence failure is a warning,
// not an error: the in-memory state already applied.
func (c *Context) SaveSession(state models.AppState) {
	if err := storage.SaveState(c.Store, state); err != nil {
		logger.Warn("Failed to save state", "error", err)
		fmt.Println("Warning: changes could not be written to disk")
	}
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(c.Store.GetConfigPath())
	_, err := mgr.CreateBackup()
	if err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}
