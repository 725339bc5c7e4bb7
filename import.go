package petvalues

import (
	"context"
	"os"
	"time"

	"github.com/agentstation/petvalues/pkg/catalogs"
	"github.com/agentstation/petvalues/pkg/dataset"
	"github.com/agentstation/petvalues/pkg/errors"
	"github.com/agentstation/petvalues/pkg/logging"
	"github.com/agentstation/petvalues/pkg/save"
	"github.com/agentstation/petvalues/pkg/sources"
)

// Import runs the pipeline once.
func (i *importer) Import(ctx context.Context) (*Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logging.WithOperation(ctx, "import")
	logger := logging.FromContext(ctx)
	start := time.Now()

	// Step 1: Fetch all sources; failures contribute nothing
	collection := sources.Collect(ctx, i.sources...)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Step 2: Enumerate the local catalog; a failure here is fatal
	catalog, err := i.loadCatalog()
	if err != nil {
		return nil, errors.WrapResource("load", "catalog", i.config.catalogDir, err)
	}
	logger.Info().
		Str("dir", i.config.catalogDir).
		Int("entries", catalog.Len()).
		Msg("Loaded catalog")

	// Step 3: Reconcile records into the catalog
	rec, err := i.reconciler.Reconcile(ctx, catalog.Entries(), collection.Records())
	if err != nil {
		return nil, errors.WrapResource("reconcile", "dataset", "", err)
	}
	ds := dataset.New(i.config.clock(), rec.Method, rec.Pets)

	// Step 4: Compare against the previous dataset
	changes := i.hooks.compare(i.baseline(ctx), ds.Pets)

	// Step 5: Write the dataset
	result := &Result{
		Dataset:   ds,
		Sources:   collection.Stats(),
		Reconcile: rec.Stats,
		Changes:   changes,
	}
	if err := i.write(ds, result); err != nil {
		return nil, errors.WrapResource("save", "dataset", i.config.outputPath, err)
	}
	result.Duration = time.Since(start)

	logger.Info().
		Int("pets", len(ds.Pets)).
		Int("valued", ds.Valued()).
		Int("failed_sources", collection.Failed()).
		Int("added", changes.Added).
		Int("updated", changes.Updated).
		Int("removed", changes.Removed).
		Str("output", result.Output).
		Bool("dry_run", result.DryRun).
		Dur("duration", result.Duration).
		Msg("Import complete")

	return result, nil
}

func (i *importer) loadCatalog() (*catalogs.Catalog, error) {
	opts := []catalogs.Option{
		catalogs.WithPath(i.config.catalogDir),
		catalogs.WithExtensions(i.config.extensions...),
	}
	if i.config.catalogFS != nil {
		opts = append(opts, catalogs.WithFS(i.config.catalogFS))
	}
	if i.config.imagePrefix != "" {
		opts = append(opts, catalogs.WithImagePrefix(i.config.imagePrefix))
	}
	return catalogs.New(opts...)
}

// baseline returns the pets of the dataset currently at the output path.
// A missing or unreadable file is an empty baseline.
func (i *importer) baseline(ctx context.Context) []dataset.Pet {
	logger := logging.FromContext(ctx)

	prev, err := dataset.Load(i.config.outputPath)
	switch {
	case err == nil:
		return prev.Pets
	case errors.Is(err, os.ErrNotExist):
		logger.Debug().Str("path", i.config.outputPath).Msg("No previous dataset, using empty baseline")
	default:
		logger.Warn().Err(err).Str("path", i.config.outputPath).Msg("Ignoring unreadable previous dataset")
	}
	return nil
}

func (i *importer) write(ds *dataset.Dataset, result *Result) error {
	opts := []save.Option{save.WithPath(i.config.outputPath)}
	if i.config.format != nil {
		opts = append(opts, save.WithFormat(*i.config.format))
	}
	if i.config.dryRun != nil {
		opts = append(opts, save.WithWriter(i.config.dryRun))
		result.DryRun = true
	} else {
		result.Output = i.config.outputPath
	}
	return ds.Save(opts...)
}
