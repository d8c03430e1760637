package errors_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	pkgerrors "github.com/agentstation/langsync/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := pkgerrors.New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestMissingDefaultFileError(t *testing.T) {
	t.Run("with dir", func(t *testing.T) {
		err := pkgerrors.NewMissingDefaultFileError("lang", "en.json")
		assert.Equal(t, "failed to load default lang file en.json in lang", err.Error())
		assert.True(t, pkgerrors.IsMissingDefault(err))
		assert.False(t, pkgerrors.IsValidationError(err))
	})

	t.Run("without dir", func(t *testing.T) {
		err := &pkgerrors.MissingDefaultFileError{File: "en.json"}
		assert.Equal(t, "failed to load default lang file en.json", err.Error())
	})

	t.Run("wrapped error", func(t *testing.T) {
		wrapped := fmt.Errorf("loading workspace: %w", pkgerrors.NewMissingDefaultFileError("", "en.json"))
		assert.True(t, pkgerrors.IsMissingDefault(wrapped))

		var target *pkgerrors.MissingDefaultFileError
		require.True(t, errors.As(wrapped, &target))
		assert.Equal(t, "en.json", target.File)
	})
}

func TestMissingCompiledHistoryError(t *testing.T) {
	err := pkgerrors.NewMissingCompiledHistoryError("ko")
	assert.Equal(t, "the language file for 'ko' could not be found", err.Error())
	assert.True(t, pkgerrors.IsMissingHistory(err))
	assert.False(t, pkgerrors.IsMissingDefault(err))
}

func TestParseError(t *testing.T) {
	t.Run("with file", func(t *testing.T) {
		base := errors.New("invalid character '}'")
		err := pkgerrors.WrapParse("json", "ko.json", base)
		assert.Equal(t, "parse error in json file ko.json: invalid character '}'", err.Error())
		assert.True(t, pkgerrors.IsMalformedInput(err))
		assert.ErrorIs(t, err, base)
	})

	t.Run("without file", func(t *testing.T) {
		err := pkgerrors.NewParseError("json", "", "empty document", nil)
		assert.Equal(t, "json parse error: empty document", err.Error())
	})

	t.Run("nil passthrough", func(t *testing.T) {
		assert.NoError(t, pkgerrors.WrapParse("json", "x", nil))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("with field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{
			Field:   "end-with",
			Message: "cannot be empty",
		}
		assert.Equal(t, "validation failed for field end-with: cannot be empty", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrInvalidInput))
	})

	t.Run("without field", func(t *testing.T) {
		err := pkgerrors.NewValidationError("", nil, "invalid configuration")
		assert.Equal(t, "validation failed: invalid configuration", err.Error())
		assert.True(t, pkgerrors.IsValidationError(err))
	})
}

func TestConfigError(t *testing.T) {
	base := pkgerrors.NewValidationError("backup-suffix", ".editable", "must differ from editable-suffix")
	err := pkgerrors.NewConfigError("sync", "invalid naming conventions", base)
	assert.Equal(t, "configuration error in sync: invalid naming conventions", err.Error())
	assert.True(t, pkgerrors.IsValidationError(err))

	var target *pkgerrors.ValidationError
	require.True(t, errors.As(err, &target))
	assert.Equal(t, "backup-suffix", target.Field)
}

func TestIOError(t *testing.T) {
	base := errors.New("permission denied")
	err := pkgerrors.WrapIO("write", "lang/ko.json", base)
	assert.Equal(t, "IO error during write of lang/ko.json: permission denied", err.Error())
	assert.ErrorIs(t, err, base)
	assert.NoError(t, pkgerrors.WrapIO("write", "x", nil))

	noPath := pkgerrors.NewIOError("list", "", base)
	assert.Equal(t, "IO error during list: permission denied", noPath.Error())
}

func TestStaleTranslationsError(t *testing.T) {
	err := &pkgerrors.StaleTranslationsError{Locales: []string{"de", "ko"}, Keys: 3}
	assert.Equal(t, "3 stale translation(s) need retranslation in: de, ko", err.Error())
	assert.ErrorIs(t, err, pkgerrors.ErrStaleTranslations)
}

func TestWrapCanceled(t *testing.T) {
	err := pkgerrors.WrapCanceled("sync", context.Canceled)
	assert.True(t, pkgerrors.IsCanceled(err))
	assert.ErrorIs(t, err, context.Canceled)
	assert.NoError(t, pkgerrors.WrapCanceled("sync", nil))
}
