// Package registry builds configured sources. Each kind maps to a
// constructor; the order of the configuration list is the priority order
// of the built sources.
package registry

import (
	"fmt"

	"github.com/agentstation/petvalues/internal/sources/embedded"
	"github.com/agentstation/petvalues/internal/sources/htmlpattern"
	"github.com/agentstation/petvalues/internal/sources/placeholder"
	"github.com/agentstation/petvalues/internal/transport"
	"github.com/agentstation/petvalues/pkg/errors"
	"github.com/agentstation/petvalues/pkg/sources"
)

// ZackURL is the page scraped by the default "zack" source.
const ZackURL = "https://notrealzack.github.io/tap-simulator-values/"

// constructors maps kinds to their source constructors.
var constructors = map[sources.Kind]func(sources.Config, *transport.Client) sources.Source{
	sources.KindHTMLPattern: func(c sources.Config, t *transport.Client) sources.Source {
		return htmlpattern.New(c.ID, c.URL, t)
	},
	sources.KindEmbeddedJSON: func(c sources.Config, t *transport.Client) sources.Source {
		return embedded.New(c.ID, c.URL, c.Selector, t)
	},
	sources.KindPlaceholder: func(c sources.Config, _ *transport.Client) sources.Source {
		return placeholder.New(c.ID)
	},
}

// DefaultConfigs returns the built-in source list in priority order.
func DefaultConfigs() []sources.Config {
	return []sources.Config{
		{ID: "zack", Kind: sources.KindHTMLPattern, URL: ZackURL},
		{ID: "moonvalues", Kind: sources.KindPlaceholder},
		{ID: "cosmovalues", Kind: sources.KindPlaceholder},
		{ID: "valuesking", Kind: sources.KindPlaceholder},
	}
}

// Validate checks a configuration list without building it.
func Validate(cfgs []sources.Config) error {
	seen := make(map[sources.ID]struct{}, len(cfgs))
	for i, c := range cfgs {
		field := fmt.Sprintf("sources[%d]", i)
		if c.ID == "" {
			return &errors.ValidationError{Field: field + ".id", Message: "cannot be empty"}
		}
		if _, dup := seen[c.ID]; dup {
			return &errors.ValidationError{
				Field:   field + ".id",
				Value:   c.ID,
				Message: fmt.Sprintf("duplicate source id %q", c.ID),
			}
		}
		seen[c.ID] = struct{}{}

		if !c.Kind.IsValid() {
			return &errors.ValidationError{
				Field:   field + ".kind",
				Value:   c.Kind,
				Message: fmt.Sprintf("unsupported kind %q (want one of %v)", c.Kind, sources.Kinds()),
			}
		}
		if c.Kind != sources.KindPlaceholder && c.URL == "" {
			return &errors.ValidationError{
				Field:   field + ".url",
				Message: fmt.Sprintf("required for kind %q", c.Kind),
			}
		}
	}
	return nil
}

// Build creates the enabled sources in configuration order. A nil client
// gets a default transport.
func Build(cfgs []sources.Config, client *transport.Client) ([]sources.Source, error) {
	if err := Validate(cfgs); err != nil {
		return nil, err
	}
	if client == nil {
		client = transport.New()
	}

	srcs := make([]sources.Source, 0, len(cfgs))
	for _, c := range cfgs {
		if c.Disabled {
			continue
		}
		srcs = append(srcs, constructors[c.Kind](c, client))
	}
	return srcs, nil
}
