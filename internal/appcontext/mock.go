package appcontext

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/petvalues"
	"github.com/agentstation/petvalues/pkg/logging"
	"github.com/agentstation/petvalues/pkg/sources"
)

// Mock provides a mock implementation of Interface for testing.
// Each method can be customized by setting the corresponding function field.
// If a function field is nil, the method returns a default value.
type Mock struct {
	ImporterFunc      func(...petvalues.Option) (petvalues.Importer, error)
	SourceConfigsFunc func() []sources.Config
	DatasetPathFunc   func() string
	LoggerFunc        func() *zerolog.Logger
	VersionFunc       func() string
}

// Importer returns an importer using the mock function or petvalues.New.
func (m *Mock) Importer(opts ...petvalues.Option) (petvalues.Importer, error) {
	if m.ImporterFunc != nil {
		return m.ImporterFunc(opts...)
	}
	return petvalues.New(opts...)
}

// SourceConfigs returns source configs using the mock function or nil.
func (m *Mock) SourceConfigs() []sources.Config {
	if m.SourceConfigsFunc != nil {
		return m.SourceConfigsFunc()
	}
	return nil
}

// DatasetPath returns the dataset path using the mock function or "".
func (m *Mock) DatasetPath() string {
	if m.DatasetPathFunc != nil {
		return m.DatasetPathFunc()
	}
	return ""
}

// Logger returns a logger using the mock function or the default logger.
func (m *Mock) Logger() *zerolog.Logger {
	if m.LoggerFunc != nil {
		return m.LoggerFunc()
	}
	return logging.Default()
}

// Version returns version using the mock function or "test".
func (m *Mock) Version() string {
	if m.VersionFunc != nil {
		return m.VersionFunc()
	}
	return "test"
}

// Commit returns "test".
func (m *Mock) Commit() string {
	return "test"
}

// Date returns "test".
func (m *Mock) Date() string {
	return "test"
}

// BuiltBy returns "test".
func (m *Mock) BuiltBy() string {
	return "test"
}

var _ Interface = (*Mock)(nil)
