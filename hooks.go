package petvalues

import (
	"reflect"
	"sync"

	"github.com/agentstation/petvalues/pkg/dataset"
)

// Hook function types for pet events, relative to the dataset previously
// written at the output path.
type (
	// PetAddedHook is called for a pet absent from the previous dataset
	PetAddedHook func(pet dataset.Pet)

	// PetUpdatedHook is called for a pet whose record changed
	PetUpdatedHook func(old, new dataset.Pet)

	// PetRemovedHook is called for a pet no longer in the catalog
	PetRemovedHook func(pet dataset.Pet)
)

// hooks manages event callbacks for dataset changes
type hooks struct {
	mu           sync.RWMutex
	onPetAdded   []PetAddedHook
	onPetUpdated []PetUpdatedHook
	onPetRemoved []PetRemovedHook
}

// newHooks creates a new hooks instance
func newHooks() *hooks {
	return &hooks{}
}

// OnPetAdded registers a callback for when pets are added
func (h *hooks) OnPetAdded(fn PetAddedHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onPetAdded = append(h.onPetAdded, fn)
}

// OnPetUpdated registers a callback for when pets are updated
func (h *hooks) OnPetUpdated(fn PetUpdatedHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onPetUpdated = append(h.onPetUpdated, fn)
}

// OnPetRemoved registers a callback for when pets are removed
func (h *hooks) OnPetRemoved(fn PetRemovedHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onPetRemoved = append(h.onPetRemoved, fn)
}

// Changes counts the differences between two datasets.
type Changes struct {
	Added   int
	Updated int
	Removed int
}

// HasChanges returns true if any pet was added, updated or removed.
func (c Changes) HasChanges() bool {
	return c.Added+c.Updated+c.Removed > 0
}

// compare diffs old and new by pet name and triggers the matching hooks.
// The update date is not part of a pet, so a re-run with identical values
// reports no changes.
func (h *hooks) compare(old, new []dataset.Pet) Changes {
	h.mu.RLock()
	defer h.mu.RUnlock()

	var changes Changes

	oldByName := make(map[string]dataset.Pet, len(old))
	for _, p := range old {
		oldByName[p.Name] = p
	}
	newByName := make(map[string]struct{}, len(new))

	for _, p := range new {
		newByName[p.Name] = struct{}{}
		prev, exists := oldByName[p.Name]
		if !exists {
			changes.Added++
			for _, hook := range h.onPetAdded {
				hook(p)
			}
			continue
		}
		if !samePet(prev, p) {
			changes.Updated++
			for _, hook := range h.onPetUpdated {
				hook(prev, p)
			}
		}
	}

	for _, p := range old {
		if _, exists := newByName[p.Name]; exists {
			continue
		}
		changes.Removed++
		for _, hook := range h.onPetRemoved {
			hook(p)
		}
	}
	return changes
}

// samePet compares two pets treating nil and empty source maps as equal.
func samePet(a, b dataset.Pet) bool {
	if len(a.Sources) == 0 && len(b.Sources) == 0 {
		a.Sources, b.Sources = nil, nil
	}
	return reflect.DeepEqual(a, b)
}
