// Package reconciler merges raw source records into the local catalog.
// Records are joined to catalog entries on their normalized names; each
// entry becomes exactly one pet whose value is the aggregate of every
// positive value reported for it.
package reconciler

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/agentstation/petvalues/pkg/catalogs"
	"github.com/agentstation/petvalues/pkg/dataset"
	"github.com/agentstation/petvalues/pkg/logging"
	"github.com/agentstation/petvalues/pkg/names"
	"github.com/agentstation/petvalues/pkg/sources"
)

// Reconciler is the main interface for reconciling source records against
// the catalog.
type Reconciler interface {
	// Reconcile produces one pet per entry, in entry order
	Reconcile(ctx context.Context, entries []catalogs.Entry, records []sources.Record) (*Result, error)

	// Method returns the aggregation method name
	Method() string
}

// reconciler is the default implementation of Reconciler.
type reconciler struct {
	aggregator    Aggregator
	unknownRarity string
	logger        *zerolog.Logger
}

// New creates a new Reconciler with options.
func New(opts ...Option) (Reconciler, error) {
	options, err := newOptions(opts...)
	if err != nil {
		return nil, err
	}
	return &reconciler{
		aggregator:    options.aggregator,
		unknownRarity: options.unknownRarity,
		logger:        options.logger,
	}, nil
}

// Method returns the aggregator name.
func (r *reconciler) Method() string {
	return r.aggregator.Name()
}

// Reconcile merges records into entries.
func (r *reconciler) Reconcile(ctx context.Context, entries []catalogs.Entry, records []sources.Record) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	logger := r.log(ctx)

	g := groupRecords(records)
	stats := Stats{
		Entries:      len(entries),
		RecordsIn:    len(records),
		RecordsKeyed: g.keyed,
	}

	pets := make([]dataset.Pet, 0, len(entries))
	claimed := make(map[names.Key]struct{}, len(entries))
	for _, entry := range entries {
		group := g.byKey[entry.Key]
		if entry.Key.Empty() {
			group = nil
		}
		if len(group) > 0 {
			stats.Matched++
			claimed[entry.Key] = struct{}{}
		} else {
			stats.Unmatched++
		}
		pets = append(pets, r.merge(logger, entry, group))
	}

	for _, key := range g.order {
		if _, ok := claimed[key]; ok {
			continue
		}
		n := len(g.byKey[key])
		stats.Orphans += n
		logger.Debug().
			Str("key", key.String()).
			Int("records", n).
			Msg("Dropping records with no catalog entry")
	}

	logger.Info().
		Int("entries", stats.Entries).
		Int("matched", stats.Matched).
		Int("unmatched", stats.Unmatched).
		Int("orphans", stats.Orphans).
		Str("method", r.aggregator.Name()).
		Msg("Reconciled records into catalog")

	return &Result{
		Pets:   pets,
		Method: r.aggregator.Name(),
		Stats:  stats,
	}, nil
}

// merge builds the pet for one entry from its matching records.
func (r *reconciler) merge(logger *zerolog.Logger, entry catalogs.Entry, group []sources.Record) dataset.Pet {
	values := make([]float64, 0, len(group))
	bySource := make(map[sources.ID]float64, len(group))
	rarity := ""

	for _, rec := range group {
		v := sources.Coerce(rec.Value)
		bySource[rec.Source] = v
		if v > 0 {
			values = append(values, v)
		}
		if rarity == "" && strings.TrimSpace(rec.Rarity) != "" {
			rarity = rec.Rarity
		}
	}
	if rarity == "" {
		rarity = r.unknownRarity
	}

	if fractionalMedian(values) {
		logger.Debug().
			Str("pet", entry.Name).
			Floats64("values", values).
			Msg("Rounding fractional median")
	}

	return dataset.Pet{
		Name:    entry.Name,
		Rarity:  rarity,
		Value:   r.aggregator.Aggregate(values),
		Sources: bySource,
		Image:   entry.Image,
	}
}

func (r *reconciler) log(ctx context.Context) *zerolog.Logger {
	if r.logger != nil {
		return r.logger
	}
	return logging.FromContext(ctx)
}
