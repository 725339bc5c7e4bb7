// Package placeholder implements a named source that has no known
// endpoint yet. It always contributes zero records.
package placeholder

import (
	"context"

	"github.com/agentstation/petvalues/pkg/logging"
	"github.com/agentstation/petvalues/pkg/sources"
)

// Source is a source without an endpoint.
type Source struct {
	id sources.ID
}

// New creates a new placeholder source.
func New(id sources.ID) *Source {
	return &Source{id: id}
}

// ID returns the source ID.
func (s *Source) ID() sources.ID {
	return s.id
}

// Fetch returns no records.
func (s *Source) Fetch(ctx context.Context) ([]sources.Record, error) {
	logging.FromContext(ctx).Debug().
		Str("source", string(s.id)).
		Msg("Source has no endpoint, skipping")
	return nil, nil
}
