// Package save holds the options shared by everything that persists a
// dataset: destination path or writer, and serialization format.
package save

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/agentstation/petvalues/pkg/errors"
)

// Format is a serialization format.
type Format int

// Format constants.
const (
	FormatJSON Format = iota
	FormatYAML
)

// IsValid checks if the format is valid.
func (f Format) IsValid() bool {
	switch f {
	case FormatJSON, FormatYAML:
		return true
	default:
		return false
	}
}

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	}
	return "unknown"
}

// ParseFormat converts a format name to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return FormatJSON, &errors.ValidationError{
		Field:   "format",
		Value:   s,
		Message: "must be json or yaml",
	}
}

// FormatFromPath infers the format from a file extension, defaulting to JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Options is the configuration for save.
type Options struct {
	path      string
	writer    io.Writer
	format    Format
	formatSet bool
}

// Path returns the path for the save options.
func (s *Options) Path() string {
	return s.path
}

// Writer returns the writer for the save options.
func (s *Options) Writer() io.Writer {
	return s.writer
}

// Format returns the explicit format, or the one implied by the path.
func (s *Options) Format() Format {
	if !s.formatSet && s.path != "" {
		return FormatFromPath(s.path)
	}
	return s.format
}

// Defaults returns the default save options.
func Defaults() *Options {
	return &Options{format: FormatJSON}
}

// Apply applies the given options to the save options.
func (s *Options) Apply(opts ...Option) Options {
	for _, opt := range opts {
		opt(s)
	}
	return *s
}

// Option is a function that configures save options.
type Option func(*Options)

// WithFormat for custom output format.
func WithFormat(f Format) Option {
	return func(s *Options) {
		s.format = f
		s.formatSet = true
	}
}

// WithPath for filesystem saves.
func WithPath(path string) Option {
	return func(s *Options) {
		s.path = path
	}
}

// WithWriter for custom outputs.
func WithWriter(w io.Writer) Option {
	return func(s *Options) {
		s.writer = w
	}
}
