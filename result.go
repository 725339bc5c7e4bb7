package petvalues

import (
	"fmt"
	"time"

	"github.com/agentstation/petvalues/pkg/dataset"
	"github.com/agentstation/petvalues/pkg/reconciler"
	"github.com/agentstation/petvalues/pkg/sources"
)

// Result represents the outcome of one import.
type Result struct {
	// Dataset is the dataset that was written
	Dataset *dataset.Dataset

	// Output is the path written, empty on a dry run
	Output string

	// DryRun is true when the dataset went to a writer instead of disk
	DryRun bool

	// Sources holds one entry per source, in priority order
	Sources []sources.Stats

	// Reconcile holds the reconciliation counters
	Reconcile reconciler.Stats

	// Changes relative to the previous dataset at the output path
	Changes Changes

	// Duration of the whole import
	Duration time.Duration
}

// FailedSources returns the IDs of sources that contributed nothing
// because of an error.
func (r *Result) FailedSources() []sources.ID {
	var ids []sources.ID
	for _, s := range r.Sources {
		if s.Failed() {
			ids = append(ids, s.ID)
		}
	}
	return ids
}

// Summary returns a one-line description of the import.
func (r *Result) Summary() string {
	return fmt.Sprintf("%d pets (%d valued, %d matched), %d sources (%d failed), +%d ~%d -%d",
		len(r.Dataset.Pets),
		r.Dataset.Valued(),
		r.Reconcile.Matched,
		len(r.Sources),
		len(r.FailedSources()),
		r.Changes.Added,
		r.Changes.Updated,
		r.Changes.Removed,
	)
}
