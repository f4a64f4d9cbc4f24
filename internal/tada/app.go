// Package tada ties the list transport and the task transformations together
// for the command layer.
package tada

import (
	"github.com/colonyops/tada/internal/core/config"
	"github.com/colonyops/tada/internal/core/item"
	"github.com/colonyops/tada/internal/store"
)

// App is the central entry point for all tada operations. Commands consume App
// instead of cherry-picking raw dependencies.
type App struct {
	Lists   *ListService
	Locator *store.Locator
	Config  *config.Config
}

// NewApp constructs an App from explicit dependencies.
func NewApp(lists *ListService, locator *store.Locator, cfg *config.Config) *App {
	return &App{Lists: lists, Locator: locator, Config: cfg}
}

// Calendar is shorthand for the calendar the list service classifies against.
func (a *App) Calendar() item.Calendar {
	return a.Lists.Calendar()
}
