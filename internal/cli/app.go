// Package cli holds the dependencies shared by the findpopup commands.
package cli

import (
	"context"
	"fmt"

	"github.com/bnema/findpopup/internal/bootstrap"
	"github.com/bnema/findpopup/internal/cli/styles"
	"github.com/bnema/findpopup/internal/domain/build"
	"github.com/bnema/findpopup/internal/infrastructure/config"
	"github.com/bnema/findpopup/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Manager   *config.Manager
	Theme     *styles.Theme
	BuildInfo build.Info

	// Context with logger
	ctx context.Context
}

// NewApp loads the configuration and builds the logger.
func NewApp() (*App, error) {
	mgr, err := config.NewManager()
	if err != nil {
		return nil, fmt.Errorf("create config manager: %w", err)
	}
	if err := mgr.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return newApp(mgr), nil
}

// NewAppForDir is NewApp with the config directory overridden.
func NewAppForDir(dir string) (*App, error) {
	mgr, err := config.NewManagerForDir(dir)
	if err != nil {
		return nil, fmt.Errorf("create config manager: %w", err)
	}
	if err := mgr.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return newApp(mgr), nil
}

func newApp(mgr *config.Manager) *App {
	cfg := mgr.Get()
	return &App{
		Config:  cfg,
		Manager: mgr,
		Theme:   styles.NewTheme(),
		ctx:     logging.WithContext(context.Background(), bootstrap.Logger(cfg)),
	}
}

// Ctx returns the context carrying the logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}
