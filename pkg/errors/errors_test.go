package errors_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	pkgerrors "github.com/stellarview/exomap/pkg/errors"
)

func TestNew(t *testing.T) {
	err := pkgerrors.New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestNotFoundError(t *testing.T) {
	t.Run("basic error", func(t *testing.T) {
		err := &pkgerrors.NotFoundError{
			Resource: "NASA archive CSV",
			Path:     "data/01-raw",
		}
		assert.Equal(t, "NASA archive CSV not found in data/01-raw", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrNotFound))
	})

	t.Run("constructor", func(t *testing.T) {
		err := pkgerrors.NewNotFoundError("narrative table", "narrative")
		assert.Equal(t, "narrative table not found in narrative", err.Error())
		assert.True(t, pkgerrors.IsNotFound(err))
	})

	t.Run("wrapped error", func(t *testing.T) {
		base := pkgerrors.NewNotFoundError("NASA archive CSV", "data/01-raw")
		wrapped := errors.Join(errors.New("discover failed"), base)
		assert.True(t, pkgerrors.IsNotFound(wrapped))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("with field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{
			Field:   "download_date",
			Message: "cannot be empty",
		}
		assert.Equal(t, "validation failed for field download_date: cannot be empty", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrInvalidInput))
	})

	t.Run("without field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{
			Message: "invalid configuration",
		}
		assert.Equal(t, "validation failed: invalid configuration", err.Error())
		assert.True(t, pkgerrors.IsValidationError(err))
	})

	t.Run("constructor", func(t *testing.T) {
		err := pkgerrors.NewValidationError("data_dir", "", "cannot be empty")
		assert.Contains(t, err.Error(), "data_dir")
		assert.Contains(t, err.Error(), "cannot be empty")
	})
}

func TestParseError(t *testing.T) {
	t.Run("with file and line", func(t *testing.T) {
		err := &pkgerrors.ParseError{
			Format:  "csv",
			File:    "extract.csv",
			Line:    42,
			Message: "wrong number of fields",
		}
		assert.Equal(t, "parse error in csv at extract.csv:42: wrong number of fields", err.Error())
	})

	t.Run("with file only", func(t *testing.T) {
		err := pkgerrors.NewParseError("yaml", "notable-planets.yaml", "bad indent", nil)
		assert.Equal(t, "parse error in yaml file notable-planets.yaml: bad indent", err.Error())
	})

	t.Run("unwrap", func(t *testing.T) {
		base := errors.New("unexpected EOF")
		err := pkgerrors.WrapParse("csv", "extract.csv", base)
		assert.Equal(t, base, errors.Unwrap(err))
	})
}

func TestIOError(t *testing.T) {
	t.Run("basic error", func(t *testing.T) {
		err := &pkgerrors.IOError{
			Operation: "write",
			Path:      "data/04-final/exoplanets.json",
			Message:   "disk full",
		}
		assert.Contains(t, err.Error(), "write")
		assert.Contains(t, err.Error(), "exoplanets.json")
		assert.Contains(t, err.Error(), "disk full")
	})

	t.Run("unwrap", func(t *testing.T) {
		base := errors.New("permission denied")
		err := pkgerrors.NewIOError("create", "/readonly", base)
		assert.Equal(t, base, err.Unwrap())
	})
}

func TestWrapNil(t *testing.T) {
	assert.NoError(t, pkgerrors.WrapIO("write", "out.csv", nil))
	assert.NoError(t, pkgerrors.WrapParse("csv", "in.csv", nil))
}
