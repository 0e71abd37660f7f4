package cli

import (
	"io"
	"os"
	"time"

	"timesync/internal/api"
	"timesync/internal/collector"
	"timesync/internal/config"
	"timesync/internal/services"
)

// timeNow is a variable that can be replaced in tests
var timeNow = time.Now

// App bundles everything the command handlers need
type App struct {
	api       api.API
	config    *config.Config
	collector collector.Client
	services  *services.ServiceContainer
	out       io.Writer
}

// NewApp creates a new CLI application instance with dependency injection
func NewApp(apiInstance api.API, cfg *config.Config, client collector.Client, container *services.ServiceContainer) *App {
	return &App{
		api:       apiInstance,
		config:    cfg,
		collector: client,
		services:  container,
		out:       os.Stdout,
	}
}

// SetOutput redirects command output, used in tests
func (a *App) SetOutput(w io.Writer) {
	a.out = w
}
