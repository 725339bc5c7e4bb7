// Package dataset defines the persisted pet value dataset and reads and
// writes it. Writes are all-or-nothing: the document is rendered in full,
// written to a temporary file next to the target and renamed into place.
package dataset

import (
	"slices"
	"strings"
	"time"

	"github.com/agentstation/petvalues/pkg/constants"
	"github.com/agentstation/petvalues/pkg/sources"
)

// Pet is one merged record. Field order is the serialized key order.
type Pet struct {
	Name    string                 `json:"name" yaml:"name"`
	Rarity  string                 `json:"rarity" yaml:"rarity"`
	Value   float64                `json:"value" yaml:"value"`
	Sources map[sources.ID]float64 `json:"sources" yaml:"sources"`
	Image   string                 `json:"image" yaml:"image"`
}

// SourceIDs returns the contributing source IDs in sorted order.
func (p Pet) SourceIDs() []sources.ID {
	ids := make([]sources.ID, 0, len(p.Sources))
	for id := range p.Sources {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// HasValue reports whether any source produced a usable value.
func (p Pet) HasValue() bool {
	return p.Value > 0
}

// Dataset is the top-level persisted document.
type Dataset struct {
	Updated string `json:"updated" yaml:"updated"`
	Method  string `json:"method" yaml:"method"`
	Pets    []Pet  `json:"pets" yaml:"pets"`
}

// New builds a dataset stamped with the UTC calendar date of now.
func New(now time.Time, method string, pets []Pet) *Dataset {
	if pets == nil {
		pets = []Pet{}
	}
	for i := range pets {
		if pets[i].Sources == nil {
			pets[i].Sources = map[sources.ID]float64{}
		}
	}
	return &Dataset{
		Updated: now.UTC().Format(constants.DateFormat),
		Method:  method,
		Pets:    pets,
	}
}

// Find returns the pet with the given display name, case-insensitively.
func (d *Dataset) Find(name string) (Pet, bool) {
	for _, p := range d.Pets {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return Pet{}, false
}

// Valued returns the number of pets with a non-zero value.
func (d *Dataset) Valued() int {
	n := 0
	for _, p := range d.Pets {
		if p.HasValue() {
			n++
		}
	}
	return n
}
