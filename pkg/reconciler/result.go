package reconciler

import (
	"github.com/agentstation/petvalues/pkg/dataset"
)

// Result represents the outcome of a reconciliation.
type Result struct {
	// Pets holds one merged record per catalog entry, in catalog order
	Pets []dataset.Pet

	// Method is the aggregator name
	Method string

	// Stats about the reconciliation
	Stats Stats
}

// Stats contains counters about one reconciliation.
type Stats struct {
	Entries      int // catalog entries processed
	Matched      int // entries with at least one record
	Unmatched    int // entries with no record
	RecordsIn    int // records received
	RecordsKeyed int // records with a non-empty key
	Orphans      int // keyed records matching no entry
}

// Coverage returns the fraction of entries that matched at least one record.
func (s Stats) Coverage() float64 {
	if s.Entries == 0 {
		return 0
	}
	return float64(s.Matched) / float64(s.Entries)
}
