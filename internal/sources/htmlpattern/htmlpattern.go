// Package htmlpattern implements a source that scrapes a value page laid
// out as a sequence of <h3> pet names, each followed somewhere later by a
// "Value:" label and a comma-grouped numeral.
package htmlpattern

import (
	"bytes"
	"context"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/agentstation/petvalues/pkg/errors"
	"github.com/agentstation/petvalues/pkg/logging"
	"github.com/agentstation/petvalues/pkg/sources"
)

// valuePattern matches the numeral after a "Value:" label whose closing
// tag sits between the label and the number.
var valuePattern = regexp.MustCompile(`Value:\s*</[^>]+>\s*([0-9,]+)`)

// Getter fetches a document.
type Getter interface {
	Get(ctx context.Context, source, url string) ([]byte, error)
}

// Source scrapes one page.
type Source struct {
	id     sources.ID
	url    string
	client Getter
}

// New creates a new html-pattern source.
func New(id sources.ID, url string, client Getter) *Source {
	return &Source{id: id, url: url, client: client}
}

// ID returns the source ID.
func (s *Source) ID() sources.ID {
	return s.id
}

// URL returns the page address.
func (s *Source) URL() string {
	return s.url
}

// Fetch downloads the page and parses it.
func (s *Source) Fetch(ctx context.Context) ([]sources.Record, error) {
	body, err := s.client.Get(ctx, string(s.id), s.url)
	if err != nil {
		return nil, err
	}
	records, err := Parse(body)
	if err != nil {
		return nil, err
	}

	logging.FromContext(ctx).Debug().
		Str("source", string(s.id)).
		Int("records", len(records)).
		Msg("Parsed html-pattern page")
	return records, nil
}

// Parse extracts records from page markup. Names are the text of every
// <h3> that holds only text; values are every numeral following a
// "Value:" label. The two lists are paired by position and truncated to
// the shorter one. Rarity is never present.
func Parse(body []byte) ([]sources.Record, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, errors.WrapParse("html", "", err)
	}

	var names []string
	doc.Find("h3").Each(func(_ int, s *goquery.Selection) {
		if s.Children().Length() > 0 {
			return
		}
		text := s.Text()
		if text == "" {
			return
		}
		names = append(names, strings.TrimSpace(text))
	})

	var values []float64
	for _, m := range valuePattern.FindAllSubmatch(body, -1) {
		values = append(values, sources.ParseValue(string(m[1])))
	}

	n := min(len(names), len(values))
	records := make([]sources.Record, 0, n)
	for i := range n {
		records = append(records, sources.Record{
			Name:  names[i],
			Value: values[i],
		})
	}
	return records, nil
}
