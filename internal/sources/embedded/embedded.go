// Package embedded implements a source whose page carries its values as a
// JSON array inside a <script> element.
package embedded

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/agentstation/petvalues/pkg/errors"
	"github.com/agentstation/petvalues/pkg/logging"
	"github.com/agentstation/petvalues/pkg/sources"
)

// DefaultSelector locates the data script when none is configured.
const DefaultSelector = `script[type="application/json"]#pet-values`

// Getter fetches a document.
type Getter interface {
	Get(ctx context.Context, source, url string) ([]byte, error)
}

// Source reads an embedded JSON payload.
type Source struct {
	id       sources.ID
	url      string
	selector string
	client   Getter
}

// New creates a new embedded-json source. An empty selector uses
// DefaultSelector.
func New(id sources.ID, url, selector string, client Getter) *Source {
	if selector == "" {
		selector = DefaultSelector
	}
	return &Source{id: id, url: url, selector: selector, client: client}
}

// ID returns the source ID.
func (s *Source) ID() sources.ID {
	return s.id
}

// Selector returns the CSS selector of the data script.
func (s *Source) Selector() string {
	return s.selector
}

// Fetch downloads the page and decodes its payload.
func (s *Source) Fetch(ctx context.Context) ([]sources.Record, error) {
	body, err := s.client.Get(ctx, string(s.id), s.url)
	if err != nil {
		return nil, err
	}
	records, err := Parse(body, s.selector)
	if err != nil {
		return nil, err
	}

	logging.FromContext(ctx).Debug().
		Str("source", string(s.id)).
		Int("records", len(records)).
		Msg("Decoded embedded payload")
	return records, nil
}

// entry is one element of the embedded array.
type entry struct {
	Name   string `json:"name"`
	Value  value  `json:"value"`
	Rarity string `json:"rarity"`
}

// value accepts a JSON number or a comma-grouped numeral string.
type value float64

// UnmarshalJSON implements json.Unmarshaler.
func (v *value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = value(sources.ParseValue(s))
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		// null, booleans and other shapes count as unknown
		*v = 0
		return nil
	}
	*v = value(sources.Coerce(f))
	return nil
}

// Parse finds the script matching selector and decodes its array.
// Entries without a name are skipped. A missing script is an error that
// wraps errors.ErrNoData.
func Parse(body []byte, selector string) ([]sources.Record, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, errors.WrapParse("html", "", err)
	}

	script := doc.Find(selector).First()
	if script.Length() == 0 {
		return nil, fmt.Errorf("no element matches %q: %w", selector, errors.ErrNoData)
	}

	var entries []entry
	if err := json.Unmarshal([]byte(script.Text()), &entries); err != nil {
		return nil, errors.WrapParse("json", "", err)
	}

	records := make([]sources.Record, 0, len(entries))
	for _, e := range entries {
		if strings.TrimSpace(e.Name) == "" {
			continue
		}
		records = append(records, sources.Record{
			Name:   e.Name,
			Value:  float64(e.Value),
			Rarity: strings.TrimSpace(e.Rarity),
		})
	}
	return records, nil
}
