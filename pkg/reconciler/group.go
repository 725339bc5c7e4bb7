package reconciler

import (
	"github.com/agentstation/petvalues/pkg/names"
	"github.com/agentstation/petvalues/pkg/sources"
)

// grouping holds records bucketed by normalized name.
type grouping struct {
	byKey map[names.Key][]sources.Record
	order []names.Key // first-seen key order
	keyed int
}

// groupRecords buckets records by normalized name, preserving input order
// within each bucket. Records whose name normalizes to empty are skipped.
func groupRecords(records []sources.Record) grouping {
	g := grouping{byKey: make(map[names.Key][]sources.Record)}
	for _, rec := range records {
		key := names.Normalize(rec.Name)
		if key.Empty() {
			continue
		}
		if _, seen := g.byKey[key]; !seen {
			g.order = append(g.order, key)
		}
		g.byKey[key] = append(g.byKey[key], rec)
		g.keyed++
	}
	return g
}
