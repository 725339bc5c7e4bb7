// Package sources defines the value source abstraction and the raw records
// sources produce. A source fetches one remote document and turns it into
// a flat list of Records; sources know nothing about the local catalog.
//
// Example usage:
//
//	srcs := []sources.Source{zack, moon}
//	collection := sources.Collect(ctx, srcs...)
//	for _, rec := range collection.Records() {
//	    fmt.Println(rec.Source, rec.Name, rec.Value)
//	}
package sources

import (
	"context"
	"math"
	"slices"
	"strconv"
	"strings"
)

// ID identifies a value source. It is the key of a pet's "sources" map.
type ID string

// String returns the string representation of a source ID.
func (id ID) String() string {
	return string(id)
}

// Record is one raw (name, value, rarity) observation from a source.
// A zero Value means unknown or unparsed; an empty Rarity means absent.
type Record struct {
	Name   string
	Value  float64
	Rarity string
	Source ID
}

// Source represents a remote provider of pet values.
type Source interface {
	// ID returns the identifier of this source
	ID() ID

	// Fetch retrieves the source's records. Implementations return an
	// error on any failure; Collect turns that into an empty contribution.
	Fetch(ctx context.Context) ([]Record, error)
}

// Kind selects the adapter used for a configured source.
type Kind string

// Known source kinds.
const (
	// KindHTMLPattern pairs <h3> names with "Value:" numerals in page markup.
	KindHTMLPattern Kind = "html-pattern"
	// KindEmbeddedJSON decodes a JSON array embedded in a <script> element.
	KindEmbeddedJSON Kind = "embedded-json"
	// KindPlaceholder is a source without a known endpoint.
	KindPlaceholder Kind = "placeholder"
)

// Kinds returns all known source kinds.
func Kinds() []Kind {
	return []Kind{KindHTMLPattern, KindEmbeddedJSON, KindPlaceholder}
}

// IsValid returns true if the kind is one of the defined constants.
func (k Kind) IsValid() bool {
	return slices.Contains(Kinds(), k)
}

// Config describes one configured source. The order of a Config list is
// the source priority order.
type Config struct {
	ID       ID     `mapstructure:"id" yaml:"id"`
	Kind     Kind   `mapstructure:"kind" yaml:"kind"`
	URL      string `mapstructure:"url" yaml:"url,omitempty"`
	Selector string `mapstructure:"selector" yaml:"selector,omitempty"`
	Disabled bool   `mapstructure:"disabled" yaml:"disabled,omitempty"`
}

// ParseValue coerces a possibly comma-grouped numeral ("12,345") to a
// number. Anything unparseable, negative or non-finite yields 0.
func ParseValue(s string) float64 {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return Coerce(v)
}

// Coerce maps NaN, infinities and negatives to 0.
func Coerce(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
