package petvalues

import (
	"io"
	"io/fs"
	"strings"
	"time"

	"github.com/agentstation/petvalues/internal/sources/registry"
	"github.com/agentstation/petvalues/pkg/constants"
	"github.com/agentstation/petvalues/pkg/errors"
	"github.com/agentstation/petvalues/pkg/reconciler"
	"github.com/agentstation/petvalues/pkg/save"
	"github.com/agentstation/petvalues/pkg/sources"
)

// Option is a function that configures an Importer.
type Option func(*config) error

// config holds importer settings.
type config struct {
	catalogDir  string
	catalogFS   fs.FS
	extensions  []string
	imagePrefix string

	outputPath string
	format     *save.Format
	dryRun     io.Writer

	sourceConfigs []sources.Config
	sources       []sources.Source
	httpTimeout   time.Duration
	userAgent     string

	clock      func() time.Time
	reconciler reconciler.Reconciler
}

func defaultConfig() *config {
	return &config{
		catalogDir:    constants.DefaultCatalogDir,
		extensions:    []string{constants.DefaultImageExtension},
		outputPath:    constants.DefaultOutputPath,
		sourceConfigs: registry.DefaultConfigs(),
		httpTimeout:   constants.DefaultHTTPTimeout,
		userAgent:     constants.DefaultUserAgent,
		clock:         time.Now,
	}
}

// WithCatalogDir sets the directory holding the pet images.
func WithCatalogDir(dir string) Option {
	return func(c *config) error {
		if strings.TrimSpace(dir) == "" {
			return &errors.ValidationError{Field: "catalog_dir", Message: "cannot be empty"}
		}
		c.catalogDir = dir
		return nil
	}
}

// WithCatalogFS reads the catalog from fsys instead of the catalog
// directory. The directory is still used as the default image prefix.
func WithCatalogFS(fsys fs.FS) Option {
	return func(c *config) error {
		c.catalogFS = fsys
		return nil
	}
}

// WithExtensions sets the qualifying image extensions.
func WithExtensions(exts ...string) Option {
	return func(c *config) error {
		if len(exts) == 0 {
			return &errors.ValidationError{Field: "extensions", Message: "at least one extension is required"}
		}
		c.extensions = exts
		return nil
	}
}

// WithImagePrefix sets the prefix of each pet's image reference.
func WithImagePrefix(prefix string) Option {
	return func(c *config) error {
		c.imagePrefix = prefix
		return nil
	}
}

// WithOutputPath sets the dataset file path.
func WithOutputPath(path string) Option {
	return func(c *config) error {
		if strings.TrimSpace(path) == "" {
			return &errors.ValidationError{Field: "output", Message: "cannot be empty"}
		}
		c.outputPath = path
		return nil
	}
}

// WithFormat forces the output format instead of inferring it from the path.
func WithFormat(f save.Format) Option {
	return func(c *config) error {
		if !f.IsValid() {
			return &errors.ValidationError{Field: "format", Value: f, Message: "unsupported format"}
		}
		c.format = &f
		return nil
	}
}

// WithDryRun writes the dataset to w instead of the output path.
func WithDryRun(w io.Writer) Option {
	return func(c *config) error {
		c.dryRun = w
		return nil
	}
}

// WithSources sets the source configuration list, in priority order.
func WithSources(cfgs []sources.Config) Option {
	return func(c *config) error {
		if err := registry.Validate(cfgs); err != nil {
			return err
		}
		c.sourceConfigs = cfgs
		return nil
	}
}

// WithSourceList uses already built sources instead of configurations.
func WithSourceList(srcs ...sources.Source) Option {
	return func(c *config) error {
		c.sources = append([]sources.Source{}, srcs...)
		return nil
	}
}

// WithHTTPTimeout sets the timeout of each source request.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *config) error {
		if d <= 0 {
			return &errors.ValidationError{Field: "http_timeout", Value: d, Message: "must be positive"}
		}
		c.httpTimeout = d
		return nil
	}
}

// WithUserAgent sets the User-Agent sent to sources.
func WithUserAgent(ua string) Option {
	return func(c *config) error {
		c.userAgent = ua
		return nil
	}
}

// WithClock sets the time source used to stamp the dataset.
func WithClock(now func() time.Time) Option {
	return func(c *config) error {
		if now == nil {
			return &errors.ValidationError{Field: "clock", Message: "cannot be nil"}
		}
		c.clock = now
		return nil
	}
}

// WithReconciler replaces the default median reconciler.
func WithReconciler(r reconciler.Reconciler) Option {
	return func(c *config) error {
		if r == nil {
			return &errors.ValidationError{Field: "reconciler", Message: "cannot be nil"}
		}
		c.reconciler = r
		return nil
	}
}
