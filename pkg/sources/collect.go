package sources

import (
	"context"
	"time"

	"github.com/sourcegraph/conc/panics"
	"github.com/sourcegraph/conc/pool"

	"github.com/agentstation/petvalues/pkg/constants"
	"github.com/agentstation/petvalues/pkg/logging"
)

// Stats describes one source's contribution to a collection.
type Stats struct {
	ID       ID
	Records  int
	Err      error
	Duration time.Duration
}

// Failed reports whether the source contributed nothing because of an error.
func (s Stats) Failed() bool {
	return s.Err != nil
}

// Collection holds the settled output of every source, in source order.
type Collection struct {
	records [][]Record
	stats   []Stats
}

// Records returns all records concatenated in source priority order.
func (c *Collection) Records() []Record {
	total := 0
	for _, recs := range c.records {
		total += len(recs)
	}
	out := make([]Record, 0, total)
	for _, recs := range c.records {
		out = append(out, recs...)
	}
	return out
}

// Stats returns per-source statistics in source priority order.
func (c *Collection) Stats() []Stats {
	return c.stats
}

// Failed returns the number of sources that errored.
func (c *Collection) Failed() int {
	n := 0
	for _, s := range c.stats {
		if s.Failed() {
			n++
		}
	}
	return n
}

// Collect fetches every source concurrently and waits for all of them to
// settle. A source that errors or panics contributes zero records and is
// logged; it never affects the other sources.
func Collect(ctx context.Context, srcs ...Source) *Collection {
	c := &Collection{
		records: make([][]Record, len(srcs)),
		stats:   make([]Stats, len(srcs)),
	}

	p := pool.New().WithMaxGoroutines(constants.MaxConcurrentSources)
	for idx, src := range srcs {
		p.Go(func() {
			c.records[idx], c.stats[idx] = fetchOne(ctx, src)
		})
	}
	p.Wait()

	return c
}

// fetchOne runs a single source behind the adapter boundary.
func fetchOne(ctx context.Context, src Source) ([]Record, Stats) {
	stats := Stats{ID: src.ID()}
	logger := logging.FromContext(logging.WithSource(ctx, src.ID().String()))
	start := time.Now()

	var (
		records []Record
		err     error
	)
	var catcher panics.Catcher
	catcher.Try(func() {
		records, err = src.Fetch(ctx)
	})
	if recovered := catcher.Recovered(); recovered != nil {
		err = recovered.AsError()
	}
	stats.Duration = time.Since(start)

	if err != nil {
		stats.Err = err
		logger.Warn().
			Err(err).
			Dur("duration", stats.Duration).
			Msg("Source failed, contributing no records")
		return nil, stats
	}

	// records always carry the ID of the source that produced them
	for i := range records {
		records[i].Source = src.ID()
	}
	stats.Records = len(records)
	logger.Info().
		Int("records", stats.Records).
		Dur("duration", stats.Duration).
		Msg("Source fetched")
	return records, stats
}
