// Package hints provides actionable user guidance for CLI operations.
package hints

import (
	"fmt"
	"io"
	"strings"
)

// Hint represents actionable user guidance.
type Hint struct {
	Message string // Human-readable guidance message
	Command string // Optional specific command to run
}

// New creates a new hint with the given message.
func New(message string) *Hint {
	return &Hint{Message: message}
}

// NewCommand creates a new hint with a specific command.
func NewCommand(message, command string) *Hint {
	return &Hint{Message: message, Command: command}
}

// String returns a string representation of the hint.
func (h *Hint) String() string {
	parts := []string{"Hint: " + h.Message}
	if h.Command != "" {
		parts = append(parts, fmt.Sprintf("   Run: %s", h.Command))
	}
	return strings.Join(parts, "\n")
}

// Context provides information for generating contextual hints.
type Context struct {
	Command       string // Current command being executed
	Succeeded     bool   // Whether the operation succeeded
	Output        string // Dataset path written, if any
	Pets          int    // Pets in the dataset
	Valued        int    // Pets with a positive value
	Sources       int    // Sources attempted
	FailedSources int    // Sources that contributed nothing because of an error
}

// Provider generates contextual hints based on the current context.
type Provider func(ctx Context) []*Hint

// Registry manages hint providers and generates contextual hints.
type Registry struct {
	providers []Provider
	maxHints  int
}

// NewRegistry creates a registry holding the default providers.
func NewRegistry() *Registry {
	r := &Registry{maxHints: 3}
	r.Register(importProvider)
	return r
}

// Register adds a hint provider to the registry.
func (r *Registry) Register(p Provider) {
	r.providers = append(r.providers, p)
}

// GetHints generates hints for the given context.
func (r *Registry) GetHints(ctx Context) []*Hint {
	var all []*Hint
	for _, p := range r.providers {
		all = append(all, p(ctx)...)
	}
	if r.maxHints > 0 && len(all) > r.maxHints {
		all = all[:r.maxHints]
	}
	return all
}

// Write prints hints one per paragraph. Nothing is written for no hints.
func Write(w io.Writer, hs []*Hint) error {
	for _, h := range hs {
		if _, err := fmt.Fprintln(w, h.String()); err != nil {
			return err
		}
	}
	return nil
}

func importProvider(ctx Context) []*Hint {
	if ctx.Command != "import" || !ctx.Succeeded {
		return nil
	}

	var hs []*Hint
	switch {
	case ctx.Sources > 0 && ctx.FailedSources == ctx.Sources:
		hs = append(hs, NewCommand("Every source failed, so all values are 0. Check connectivity and rerun with debug logs", "petvalues import -v"))
	case ctx.FailedSources > 0:
		hs = append(hs, NewCommand("Some sources failed and contributed no values", "petvalues import -v"))
	}
	if ctx.Pets == 0 {
		hs = append(hs, New("The catalog directory holds no qualifying images. Check --catalog-dir and --ext"))
	} else if ctx.Valued == 0 && ctx.FailedSources < ctx.Sources {
		hs = append(hs, New("No catalog pet matched a source record. Image file names must match source names after normalization"))
	}
	if ctx.Output != "" {
		hs = append(hs, NewCommand("View the dataset", "petvalues show "+ctx.Output))
	}
	return hs
}
