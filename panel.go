package sigridpanel

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"

	"github.com/Software-Improvement-Group/sigrid-mendix-studio-pro/api"
	"github.com/Software-Improvement-Group/sigrid-mendix-studio-pro/config"
	"github.com/Software-Improvement-Group/sigrid-mendix-studio-pro/mendix"
	"github.com/Software-Improvement-Group/sigrid-mendix-studio-pro/storage"
	"github.com/Software-Improvement-Group/sigrid-mendix-studio-pro/store"
)

// Panel is the assembled extension core.
type Panel struct {
	store     *store.Store
	navigator *mendix.Navigator
	watcher   *mendix.Watcher
	cache     storage.Store
	logger    *slog.Logger
}

// New assembles a Panel from the given options.
//
// Example:
//
//	panel, err := sigridpanel.New(
//	    sigridpanel.WithConfigPath("sigrid-panel.yaml"),
//	    sigridpanel.WithProjectModel(hostProject),
//	)
//	if err != nil {
//	    return err
//	}
//	defer panel.Close()
//	panel.Store().LoadSettingsFromStorage(ctx)
func New(opts ...Option) (*Panel, error) {
	cfg := &panelConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.logger == nil {
		cfg.logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))
	}

	fileCfg := cfg.fileConfig
	if fileCfg == nil && cfg.configPath != "" {
		loaded, err := config.Load(cfg.configPath)
		if err != nil {
			return nil, &PanelError{Op: "New", Kind: KindConfiguration, Err: err}
		}
		fileCfg = loaded
	}
	if fileCfg == nil {
		fileCfg = &config.Config{}
	}

	cache := cfg.cache
	if cache == nil {
		built, err := buildCache(fileCfg.Storage)
		if err != nil {
			return nil, &PanelError{Op: "New", Kind: KindStorage, Err: err}
		}
		cache = built
	}

	fetcher := cfg.fetcher
	if fetcher == nil {
		clientOpts := []api.Option{
			api.WithHTTPClient(&http.Client{Timeout: fileCfg.API.GetTimeout()}),
		}
		if baseURL := fileCfg.API.GetBaseURL(); baseURL != "" {
			clientOpts = append(clientOpts, api.WithBaseURL(baseURL))
		}
		if cfg.tracer != nil {
			clientOpts = append(clientOpts, api.WithTracer(cfg.tracer))
		}
		fetcher = api.NewClient(clientOpts...)
	}

	panel := &Panel{
		store:  store.New(fetcher, cache, cfg.logger),
		cache:  cache,
		logger: cfg.logger,
	}
	if cfg.project != nil {
		panel.navigator = mendix.NewNavigator(cfg.project, cfg.logger)
	}
	if cfg.notifier != nil {
		panel.watcher = mendix.WatchActiveDocument(cfg.notifier)
	}
	return panel, nil
}

// Store returns the data store holding settings and analysis collections.
func (p *Panel) Store() *store.Store {
	return p.store
}

// Navigator returns the document navigator, or nil when no project model
// was supplied (e.g. in headless tests).
func (p *Panel) Navigator() *mendix.Navigator {
	return p.navigator
}

// InActiveDocument reports whether a finding's file path refers to the
// document currently open in the editor. Always false without an
// active-document notifier.
func (p *Panel) InActiveDocument(filePath string) bool {
	if p.watcher == nil {
		return false
	}
	return p.watcher.Matches(filePath)
}

// Refresh loads all analysis collections through the store. The store's
// snapshot carries the user-facing error state; the returned error
// classifies the failure for programmatic callers: configuration when
// required settings are missing, network when a fetch aborted the load.
func (p *Panel) Refresh(ctx context.Context, opts store.LoadOptions) error {
	err := p.store.LoadAllData(ctx, opts)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrNoSettings):
		return &PanelError{Op: "Panel.Refresh", Kind: KindConfiguration, Err: err}
	default:
		return &PanelError{Op: "Panel.Refresh", Kind: KindNetwork, Err: err}
	}
}

// OpenFinding navigates the editor to the document a finding's file path
// resolves to. Paths that match no document are a silent no-op.
func (p *Panel) OpenFinding(ctx context.Context, filePath string) error {
	if p.navigator == nil {
		return ErrNoProjectModel
	}
	if err := p.navigator.OpenFile(ctx, filePath); err != nil {
		wrapped := &PanelError{Op: "Panel.OpenFinding", Kind: KindNavigation, Err: err}
		return wrapped.WithContext(map[string]any{"path": filePath})
	}
	return nil
}

// Close releases the active-document subscription and the cache backend.
func (p *Panel) Close() error {
	if p.watcher != nil {
		p.watcher.Close()
	}
	if p.cache == nil {
		return nil
	}
	return p.cache.Close()
}

func buildCache(cfg *config.StorageConfig) (storage.Store, error) {
	switch cfg.GetBackend() {
	case config.BackendRedis:
		return storage.NewRedisStore(storage.RedisOptions{
			URL:       cfg.GetRedisURL(),
			KeyPrefix: cfg.GetRedisKeyPrefix(),
		})
	default:
		return storage.NewFileStore(cfg.GetPath())
	}
}
