// Package petvalues builds the canonical pet value dataset. One import
// fetches every configured source concurrently, enumerates the local image
// catalog, reconciles source records into one pet per catalog entry using
// the median of the reported values, and writes the dataset atomically.
//
// Example usage:
//
//	result, err := petvalues.Import(ctx,
//	    petvalues.WithCatalogDir("pets"),
//	    petvalues.WithOutputPath("data/pets.json"),
//	)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d pets, %d valued\n", len(result.Dataset.Pets), result.Dataset.Valued())
package petvalues

import (
	"context"
	"fmt"

	"github.com/agentstation/petvalues/internal/sources/registry"
	"github.com/agentstation/petvalues/internal/transport"
	"github.com/agentstation/petvalues/pkg/reconciler"
	"github.com/agentstation/petvalues/pkg/sources"
)

// Importer runs the import pipeline and exposes change hooks.
type Importer interface {
	// Import runs one full import
	Import(ctx context.Context) (*Result, error)

	// Sources returns the sources in priority order
	Sources() []sources.Source

	// OnPetAdded registers a callback for when pets are added
	OnPetAdded(PetAddedHook)

	// OnPetUpdated registers a callback for when pets are updated
	OnPetUpdated(PetUpdatedHook)

	// OnPetRemoved registers a callback for when pets are removed
	OnPetRemoved(PetRemovedHook)
}

// importer is the internal implementation of the Importer interface
type importer struct {
	config     *config
	sources    []sources.Source
	reconciler reconciler.Reconciler
	*hooks
}

// New creates a new Importer with the given options.
func New(opts ...Option) (Importer, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("applying options: %w", err)
		}
	}

	srcs := cfg.sources
	if srcs == nil {
		client := transport.New(
			transport.WithTimeout(cfg.httpTimeout),
			transport.WithUserAgent(cfg.userAgent),
		)
		var err error
		srcs, err = registry.Build(cfg.sourceConfigs, client)
		if err != nil {
			return nil, fmt.Errorf("building sources: %w", err)
		}
	}

	rec := cfg.reconciler
	if rec == nil {
		var err error
		rec, err = reconciler.New()
		if err != nil {
			return nil, fmt.Errorf("creating reconciler: %w", err)
		}
	}

	return &importer{
		config:     cfg,
		sources:    srcs,
		reconciler: rec,
		hooks:      newHooks(),
	}, nil
}

// Import is a convenience that creates an Importer and runs it once.
func Import(ctx context.Context, opts ...Option) (*Result, error) {
	imp, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return imp.Import(ctx)
}

// Sources returns the sources in priority order.
func (i *importer) Sources() []sources.Source {
	out := make([]sources.Source, len(i.sources))
	copy(out, i.sources)
	return out
}
