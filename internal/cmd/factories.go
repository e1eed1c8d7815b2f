package cmd

import (
	"context"
	"fmt"

	"github.com/renato0307/keycap/internal/adapters/listener"
	"github.com/renato0307/keycap/internal/adapters/lock"
	"github.com/renato0307/keycap/internal/adapters/settingsfile"
	adapterstorage "github.com/renato0307/keycap/internal/adapters/storage"
	"github.com/renato0307/keycap/internal/config"
	"github.com/renato0307/keycap/internal/logging"
	"github.com/renato0307/keycap/internal/paths"
	"github.com/renato0307/keycap/internal/ports"
	"github.com/renato0307/keycap/internal/services"
)

// Container holds all dependencies for the application
type Container struct {
	Listener        *listener.Marker
	RecorderLock    *lock.File
	Settings        *config.Settings
	ShortcutService *services.ShortcutService

	// Internal - for cleanup only
	store ports.BindingStore
}

// NewContainer creates a new Container with all dependencies wired.
// Shortcuts are loaded from the configured store.
func NewContainer(settings *config.Settings) (*Container, error) {
	store, err := newBindingStore(settings)
	if err != nil {
		return nil, err
	}

	shortcutService := services.NewShortcutService(store)
	shortcutService.Load(context.Background())

	return &Container{
		Listener:        listener.NewMarker(settings.ResolveListenerMarker()),
		RecorderLock:    lock.NewFile(paths.GetCaptureLockPath()),
		Settings:        settings,
		ShortcutService: shortcutService,
		store:           store,
	}, nil
}

// NewCaptureManager creates a capture manager issuing its requests through dispatcher
func (c *Container) NewCaptureManager(dispatcher services.Dispatcher) *services.CaptureManager {
	return services.NewCaptureManager(c.ShortcutService, c.Listener, c.RecorderLock, dispatcher)
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.store != nil {
		return c.store.Close()
	}
	return nil
}

func newBindingStore(settings *config.Settings) (ports.BindingStore, error) {
	kind, err := settings.ResolveStore()
	if err != nil {
		return nil, err
	}

	switch kind {
	case config.StoreSettings:
		path := config.GetSettingsFilePath()
		logging.Logger.Debug("Using settings file shortcut store", "path", path)
		return settingsfile.NewStore(path), nil
	case config.StoreSQLite:
		dbPath := settings.ResolveDBPath()
		logging.Logger.Debug("Using SQLite shortcut store", "path", dbPath)
		repo, err := adapterstorage.NewSQLiteRepository(dbPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open shortcut database: %w", err)
		}
		return repo, nil
	default:
		return nil, fmt.Errorf("unknown store '%s'", kind)
	}
}
