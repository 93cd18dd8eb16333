package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/achaendus12-spec/my-project-manager/internal/cache"
	"github.com/achaendus12-spec/my-project-manager/internal/config"
	"github.com/achaendus12-spec/my-project-manager/internal/logger"
	"github.com/achaendus12-spec/my-project-manager/internal/model"
	"github.com/achaendus12-spec/my-project-manager/internal/remote"
	"github.com/achaendus12-spec/my-project-manager/internal/store"
	"github.com/achaendus12-spec/my-project-manager/internal/ui"
)

// App bundles the wired core for one CLI invocation
type App struct {
	Config  *config.Config
	Cache   *cache.Cache
	Client  *remote.Client
	Store   *store.Store
	Surface ui.Surface
}

// newApp wires config, cache, remote client and store, then loads the
// logged-in user's projects. The load fails soft: on remote error the store
// warm-starts from the cache mirror so read-only commands keep working.
func newApp() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		logger.Warn("Failed to load config, using defaults", logger.F("error", err))
		cfg = config.DefaultConfig()
	}

	c, err := cache.OpenDefault()
	if err != nil {
		logger.Warn("Failed to open cache, continuing without it", logger.F("error", err))
		c = nil
	}

	client, err := remote.NewClient(cfg.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create remote client: %w", err)
	}

	surface := ui.NewTerminal()
	st := store.New(client, c, surface)

	app := &App{Config: cfg, Cache: c, Client: client, Store: st, Surface: surface}

	if client.IsLoggedIn() {
		if err := st.Load(context.Background(), client.UserID()); err != nil {
			st.WarmStart()
		}
	}

	return app, nil
}

// Close releases the cache handle
func (a *App) Close() {
	if a.Cache != nil {
		_ = a.Cache.Close()
	}
}

// requireAuth returns an error unless a user is logged in
func (a *App) requireAuth() error {
	if !a.Client.IsLoggedIn() {
		return fmt.Errorf("not logged in, run 'pm auth login' first")
	}
	return nil
}

// findProject resolves a full or prefix project id against the collection
func (a *App) findProject(arg string) (model.Project, error) {
	if p, ok := a.Store.Find(arg); ok {
		return p, nil
	}

	var matches []model.Project
	for _, p := range a.Store.Projects() {
		if strings.HasPrefix(p.ID, arg) {
			matches = append(matches, p)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return model.Project{}, fmt.Errorf("project not found: %s", arg)
	default:
		return model.Project{}, fmt.Errorf("ambiguous project id: %s matches %d projects", arg, len(matches))
	}
}
