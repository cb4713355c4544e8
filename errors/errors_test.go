package errors_test

import (
	goerrors "errors"
	"fmt"
	"testing"

	rerrors "github.com/masterkusok/rijndaelbox/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnnotate(t *testing.T) {
	t.Run("nil error", func(t *testing.T) {
		var err error
		err = rerrors.Annotate(err, "annotaton: %w")

		require.NoError(t, err)
	})

	t.Run("actual error", func(t *testing.T) {
		err := fmt.Errorf("minus vibe")
		err = rerrors.Annotate(err, "annotaton with format %d %s: %w", 5, "aboba")
		require.Error(t, err)

		assert.EqualError(t, err, "annotaton with format 5 aboba: minus vibe")
	})
}

func TestSentinelErrorsWrapCorrectly(t *testing.T) {
	wrapped := fmt.Errorf("decrypt: %w", rerrors.ErrAuthenticationFailed)

	assert.True(t, goerrors.Is(wrapped, rerrors.ErrAuthenticationFailed))
	assert.False(t, goerrors.Is(wrapped, rerrors.ErrBadHeader))
	assert.Equal(t, "rijndaelbox: authentication failed", rerrors.ErrAuthenticationFailed.Error())
}
