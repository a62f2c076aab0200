package utils

import (
	"errors"
	"fmt"
	"testing"

	"github.com/itsatony/go-cuserr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMissingValueError(t *testing.T) {
	t.Run("with key", func(t *testing.T) {
		err := NewMissingValueError("user.name")

		assert.Equal(t, "user.name", err.Key)
		assert.Equal(t, ErrMsgMissingValue+": user.name", err.Error())

		var customErr *cuserr.CustomError
		require.True(t, errors.As(err, &customErr))
		key, ok := customErr.GetMetadata(MetaKeyKey)
		assert.True(t, ok)
		assert.Equal(t, "user.name", key)
	})

	t.Run("with suggestions", func(t *testing.T) {
		err := NewMissingValueError("user.nme", "user.name", "user.names")

		assert.Equal(t, []string{"user.name", "user.names"}, err.Suggestions)
		assert.Equal(t, ErrMsgMissingValue+": user.nme", err.Error())

		var customErr *cuserr.CustomError
		require.True(t, errors.As(err, &customErr))
		suggestions, ok := customErr.GetMetadata(MetaKeySuggestions)
		assert.True(t, ok)
		assert.Equal(t, "user.name, user.names", suggestions)
	})

	t.Run("without key", func(t *testing.T) {
		err := NewMissingValueError("")
		assert.Equal(t, ErrMsgMissingValueNoKey, err.Error())
	})

	t.Run("detected through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("rendering header: %w", NewMissingValueError("title"))

		assert.True(t, IsMissingValueError(wrapped))
		key, ok := MissingKey(wrapped)
		assert.True(t, ok)
		assert.Equal(t, "title", key)
	})

	t.Run("other errors", func(t *testing.T) {
		assert.False(t, IsMissingValueError(errors.New("x")))
		assert.False(t, IsMissingValueError(nil))
		_, ok := MissingKey(errors.New("x"))
		assert.False(t, ok)
	})
}

func TestNewInvalidOptionError(t *testing.T) {
	err := NewInvalidOptionError(OptionNameEscaper, ErrMsgNilEscaper)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgInvalidOption)

	var customErr *cuserr.CustomError
	require.True(t, errors.As(err, &customErr))
	option, ok := customErr.GetMetadata(MetaKeyOption)
	assert.True(t, ok)
	assert.Equal(t, OptionNameEscaper, option)
	reason, ok := customErr.GetMetadata(MetaKeyReason)
	assert.True(t, ok)
	assert.Equal(t, ErrMsgNilEscaper, reason)
}

func TestNewBase64DecodeError(t *testing.T) {
	cause := errors.New("illegal base64 data")
	err := NewBase64DecodeError(cause)

	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), ErrMsgInvalidBase64)
}
