package app

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/five82/shelf/internal/config"
	"github.com/five82/shelf/internal/entity"
	"github.com/five82/shelf/internal/logging"
	"github.com/five82/shelf/internal/prefs"
	"github.com/five82/shelf/internal/seed"
	"github.com/five82/shelf/internal/state"
	"github.com/five82/shelf/internal/ui"
	"github.com/five82/shelf/internal/views"
)

// Options configure the shelf application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/shelf/prefs.toml
	App        string // films or people; empty uses the config value
	Debug      bool
}

// Stores bundles the two lists.
type Stores struct {
	Films  *state.FilmStore
	People *state.PersonStore
}

// Run boots the shelf TUI until the context is cancelled or the user quits.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	start := cfg.StartApp
	if strings.TrimSpace(opts.App) != "" {
		start, err = config.ParseApp(opts.App)
		if err != nil {
			return err
		}
	}

	logger, err := logging.New(cfg.LogPath, opts.Debug)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	stores, err := NewStores(cfg.SeedPath, entity.DefaultIDFunc)
	if err != nil {
		return fmt.Errorf("load seed: %w", err)
	}
	stop := Audit(logger, stores)
	defer stop()

	userPrefs := prefs.Load(opts.PrefsPath)
	mode, err := views.ParseMode(userPrefs.FilmFilter)
	if err != nil {
		logger.Warn("ignoring saved film filter", zap.Error(err))
	}

	logger.Info("shelf starting",
		zap.String("app", string(start)),
		zap.Int("films", stores.Films.Snapshot().Len()),
		zap.Int("people", stores.People.Snapshot().Len()))

	return ui.Run(ui.Options{
		Context:    ctx,
		Films:      stores.Films,
		People:     stores.People,
		Logger:     logger,
		StartApp:   start,
		ThemeName:  userPrefs.Theme,
		FilmFilter: mode,
		PrefsPath:  opts.PrefsPath,
		LogPath:    cfg.LogPath,
		NewID:      entity.DefaultIDFunc,
	})
}

// NewStores builds both stores from the seed file at path, or from the
// built-in seed when path is empty or missing.
func NewStores(path string, newID entity.IDFunc) (Stores, error) {
	data, err := seed.Load(path, newID)
	if err != nil {
		return Stores{}, err
	}
	return Stores{
		Films:  state.NewFilmStore(data.Films),
		People: state.NewPersonStore(data.People),
	}, nil
}
