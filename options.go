package sigridpanel

import (
	"log/slog"

	"github.com/Software-Improvement-Group/sigrid-mendix-studio-pro/config"
	"github.com/Software-Improvement-Group/sigrid-mendix-studio-pro/mendix"
	"github.com/Software-Improvement-Group/sigrid-mendix-studio-pro/storage"
	"github.com/Software-Improvement-Group/sigrid-mendix-studio-pro/store"
	"go.opentelemetry.io/otel/trace"
)

// Option configures the Panel.
type Option func(*panelConfig)

// panelConfig holds configuration for assembling a Panel.
type panelConfig struct {
	configPath string
	fileConfig *config.Config
	logger     *slog.Logger
	tracer     trace.Tracer
	cache      storage.Store
	fetcher    store.Fetcher
	project    mendix.ProjectModel
	notifier   mendix.ActiveDocumentNotifier
}

// WithConfigPath sets the path of a YAML configuration file describing the
// API endpoint and the cache backend. The file is loaded during New.
func WithConfigPath(path string) Option {
	return func(c *panelConfig) {
		c.configPath = path
	}
}

// WithConfig supplies an already-loaded configuration. It takes precedence
// over WithConfigPath.
func WithConfig(cfg *config.Config) Option {
	return func(c *panelConfig) {
		c.fileConfig = cfg
	}
}

// WithLogger sets a custom logger for the panel.
// If not provided, a default logger will be created.
func WithLogger(logger *slog.Logger) Option {
	return func(c *panelConfig) {
		c.logger = logger
	}
}

// WithTracer sets an OpenTelemetry tracer for API request spans.
func WithTracer(tracer trace.Tracer) Option {
	return func(c *panelConfig) {
		c.tracer = tracer
	}
}

// WithCache sets the cache backend directly, bypassing the configured
// file or redis backend. Useful for tests.
func WithCache(cache storage.Store) Option {
	return func(c *panelConfig) {
		c.cache = cache
	}
}

// WithFetcher replaces the API client, e.g. with a fake in tests.
func WithFetcher(fetcher store.Fetcher) Option {
	return func(c *panelConfig) {
		c.fetcher = fetcher
	}
}

// WithProjectModel sets the host project model used for document matching
// and navigation. Without it the Panel has no Navigator.
func WithProjectModel(project mendix.ProjectModel) Option {
	return func(c *panelConfig) {
		c.project = project
	}
}

// WithActiveDocumentNotifier subscribes the panel to the host's
// active-document events so finding rows can be scoped to the document
// open in the editor. Hosts without the capability omit this option.
func WithActiveDocumentNotifier(notifier mendix.ActiveDocumentNotifier) Option {
	return func(c *panelConfig) {
		c.notifier = notifier
	}
}
