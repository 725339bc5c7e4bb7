// Package table converts datasets and source lists into table rows.
package table

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/agentstation/petvalues/pkg/dataset"
	"github.com/agentstation/petvalues/pkg/sources"
)

// Align represents column alignment in tables.
type Align int

const (
	// AlignDefault uses the default alignment (skip).
	AlignDefault Align = iota
	// AlignLeft aligns content to the left.
	AlignLeft
	// AlignCenter centers content.
	AlignCenter
	// AlignRight aligns content to the right.
	AlignRight
)

// Data represents table formatting data.
type Data struct {
	Headers         []string
	Rows            [][]string
	ColumnAlignment []Align // optional, one per column
}

// SortKey orders pets in a table.
type SortKey string

// Sort keys.
const (
	SortNone  SortKey = ""
	SortName  SortKey = "name"
	SortValue SortKey = "value"
)

// ParseSortKey validates a sort key.
func ParseSortKey(s string) (SortKey, error) {
	switch k := SortKey(strings.ToLower(strings.TrimSpace(s))); k {
	case SortNone, SortName, SortValue:
		return k, nil
	default:
		return SortNone, fmt.Errorf("invalid sort %q: must be one of: name, value", s)
	}
}

var printer = message.NewPrinter(language.English)

// FormatValue renders a value with thousands separators. Fractional
// values keep two decimals.
func FormatValue(v float64) string {
	if v == float64(int64(v)) {
		return printer.Sprintf("%d", int64(v))
	}
	return printer.Sprintf("%.2f", v)
}

// SortPets returns a sorted copy of pets. Value sorts descending with ties
// broken by name; name sorts case-insensitively.
func SortPets(pets []dataset.Pet, key SortKey) []dataset.Pet {
	out := make([]dataset.Pet, len(pets))
	copy(out, pets)

	switch key {
	case SortName:
		sort.SliceStable(out, func(i, j int) bool {
			return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
		})
	case SortValue:
		sort.SliceStable(out, func(i, j int) bool {
			if out[i].Value != out[j].Value {
				return out[i].Value > out[j].Value
			}
			return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
		})
	}
	return out
}

// PetsToTableData converts pets to table format.
func PetsToTableData(pets []dataset.Pet) Data {
	rows := make([][]string, 0, len(pets))
	for _, p := range pets {
		rows = append(rows, []string{
			p.Name,
			p.Rarity,
			FormatValue(p.Value),
			formatSources(p),
		})
	}
	return Data{
		Headers:         []string{"Name", "Rarity", "Value", "Sources"},
		Rows:            rows,
		ColumnAlignment: []Align{AlignLeft, AlignLeft, AlignRight, AlignLeft},
	}
}

func formatSources(p dataset.Pet) string {
	ids := p.SourceIDs()
	if len(ids) == 0 {
		return "-"
	}
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, fmt.Sprintf("%s=%s", id, FormatValue(p.Sources[id])))
	}
	return strings.Join(parts, ", ")
}

// SourcesToTableData converts source configurations to table format.
// Rows follow priority order.
func SourcesToTableData(cfgs []sources.Config) Data {
	caser := cases.Title(language.English)
	rows := make([][]string, 0, len(cfgs))
	for i, c := range cfgs {
		status := "enabled"
		if c.Disabled {
			status = "disabled"
		}
		url := c.URL
		if url == "" {
			url = "-"
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			string(c.ID),
			caser.String(strings.ReplaceAll(string(c.Kind), "-", " ")),
			url,
			status,
		})
	}
	return Data{
		Headers:         []string{"Priority", "ID", "Kind", "URL", "Status"},
		Rows:            rows,
		ColumnAlignment: []Align{AlignRight, AlignLeft, AlignLeft, AlignLeft, AlignLeft},
	}
}
