package errors_test

import (
	"errors"
	"fmt"
	"testing"

	pkgerrors "github.com/agentstation/petvalues/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := pkgerrors.New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestNotFoundError(t *testing.T) {
	t.Run("basic error", func(t *testing.T) {
		err := &pkgerrors.NotFoundError{
			Resource: "source",
			ID:       "zack",
		}
		assert.Equal(t, "source with ID zack not found", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrNotFound))
	})

	t.Run("wrapped error", func(t *testing.T) {
		base := pkgerrors.NewNotFoundError("source", "moonvalues")
		wrapped := errors.Join(errors.New("failed"), base)
		assert.True(t, pkgerrors.IsNotFound(wrapped))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("with field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{
			Field:   "catalog_dir",
			Message: "cannot be empty",
		}
		assert.Equal(t, "validation failed for field catalog_dir: cannot be empty", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrInvalidInput))
	})

	t.Run("without field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{Message: "invalid configuration"}
		assert.Equal(t, "validation failed: invalid configuration", err.Error())
		assert.True(t, pkgerrors.IsValidationError(err))
	})
}

func TestAPIError(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		unavailable bool
		rateLimited bool
	}{
		{name: "not found", status: 404},
		{name: "rate limited", status: 429, rateLimited: true},
		{name: "server error", status: 502, unavailable: true},
		{name: "transport failure", status: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := pkgerrors.NewAPIError("zack", tt.status, "boom")
			assert.Contains(t, err.Error(), "zack")
			assert.Equal(t, tt.unavailable, pkgerrors.IsSourceUnavailable(err))
			assert.Equal(t, tt.rateLimited, pkgerrors.IsRateLimited(err))
		})
	}

	t.Run("unwraps cause", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := &pkgerrors.APIError{Source: "zack", Message: "request failed", Err: cause}
		assert.Equal(t, "API error from zack: request failed", err.Error())
		assert.ErrorIs(t, err, cause)
	})
}

func TestIOError(t *testing.T) {
	cause := errors.New("permission denied")
	err := pkgerrors.NewIOError("write", "data/pets.json", cause)
	assert.Equal(t, "IO error during write of data/pets.json: permission denied", err.Error())
	assert.ErrorIs(t, err, cause)

	noPath := &pkgerrors.IOError{Operation: "read", Message: "eof"}
	assert.Equal(t, "IO error during read: eof", noPath.Error())
}

func TestResourceError(t *testing.T) {
	err := pkgerrors.NewResourceError("load", "catalog", "pets", errors.New("missing"))
	assert.Equal(t, "failed to load catalog pets: missing", err.Error())

	err = pkgerrors.NewResourceError("save", "dataset", "", errors.New("disk full"))
	assert.Equal(t, "failed to save dataset: disk full", err.Error())
}

func TestParseError(t *testing.T) {
	err := pkgerrors.NewParseError("json", "pets.json", "unexpected end", nil)
	assert.Equal(t, "parse error in json file pets.json: unexpected end", err.Error())

	err = pkgerrors.NewParseError("html", "", "no script element", nil)
	assert.Equal(t, "html parse error: no script element", err.Error())
}

func TestConfigError(t *testing.T) {
	cause := errors.New("unknown kind")
	err := pkgerrors.NewConfigError("sources", "invalid source entry", cause)
	assert.Equal(t, "configuration error in sources: invalid source entry", err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestWrapHelpers(t *testing.T) {
	t.Run("nil passthrough", func(t *testing.T) {
		assert.NoError(t, pkgerrors.WrapIO("read", "x", nil))
		assert.NoError(t, pkgerrors.WrapResource("load", "catalog", "", nil))
		assert.NoError(t, pkgerrors.WrapParse("json", "", nil))
		assert.NoError(t, pkgerrors.WrapAPI("zack", 500, nil))
		assert.NoError(t, pkgerrors.WrapValidation("field", nil))
	})

	t.Run("typed results", func(t *testing.T) {
		cause := errors.New("cause")

		var ioErr *pkgerrors.IOError
		require.True(t, errors.As(pkgerrors.WrapIO("read", "x", cause), &ioErr))
		assert.Equal(t, "x", ioErr.Path)

		var apiErr *pkgerrors.APIError
		require.True(t, errors.As(pkgerrors.WrapAPI("zack", 503, cause), &apiErr))
		assert.True(t, pkgerrors.IsSourceUnavailable(apiErr))

		assert.True(t, pkgerrors.IsValidationError(pkgerrors.WrapValidation("field", cause)))
	})
}

func TestSentinelErrors(t *testing.T) {
	wrapped := fmt.Errorf("embedded source: %w", pkgerrors.ErrNoData)
	assert.True(t, pkgerrors.IsNoData(wrapped))
	assert.False(t, pkgerrors.IsNotFound(wrapped))
}
