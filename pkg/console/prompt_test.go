//go:build !integration

package console

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromptText(t *testing.T) {
	// Interactive Huh forms cannot be driven without a terminal; these tests
	// cover the non-interactive guard.
	t.Run("function signature", func(t *testing.T) {
		_ = PromptText
	})

	t.Run("requires a TTY", func(t *testing.T) {
		called := false
		_, err := PromptText(context.Background(), "Please input project name", "up-web-vue", func(string) { called = true })
		require.Error(t, err, "Should error when not in TTY")
		assert.Contains(t, err.Error(), "not a TTY", "Error should mention TTY")
		assert.NotErrorIs(t, err, ErrPromptAborted, "Missing TTY is not an abort")
		assert.False(t, called, "Observer should not run without a prompt")
	})
}

func TestNewTextInput(t *testing.T) {
	var observed []string
	input, value := newTextInput("Please input project name", "up-web-vue", func(s string) { observed = append(observed, s) })
	require.NotNil(t, input, "Input field should be created")
	assert.Equal(t, "up-web-vue", *value, "Answer should be prefilled with the initial value")

	assert.Equal(t, "up-web-vue", input.GetValue(), "Field should show the initial value")
	assert.Empty(t, observed, "Observer should not run before huh validates")

	_, empty := newTextInput("Name", "", nil)
	assert.Empty(t, *empty, "Empty initial value leaves the answer empty")
}

func TestPromptConfirm(t *testing.T) {
	t.Run("function signature", func(t *testing.T) {
		_ = PromptConfirm
	})

	t.Run("requires a TTY", func(t *testing.T) {
		_, err := PromptConfirm(context.Background(), "Continue?", false)
		require.Error(t, err, "Should error when not in TTY")
		assert.Contains(t, err.Error(), "not a TTY", "Error should mention TTY")
	})
}

func TestIsAccessibleMode(t *testing.T) {
	t.Setenv("ACCESSIBLE", "")
	t.Setenv("NO_COLOR", "")
	t.Setenv("TERM", "xterm-256color")
	t.Cleanup(func() { SetAccessibleMode(false) })

	assert.False(t, IsAccessibleMode(), "Plain terminal should not be accessible mode")

	t.Setenv("ACCESSIBLE", "1")
	assert.True(t, IsAccessibleMode(), "ACCESSIBLE should enable accessible mode")

	t.Setenv("ACCESSIBLE", "")
	t.Setenv("TERM", "dumb")
	assert.True(t, IsAccessibleMode(), "Dumb terminal should enable accessible mode")

	t.Setenv("TERM", "xterm-256color")
	SetAccessibleMode(true)
	assert.True(t, IsAccessibleMode(), "Override should enable accessible mode")
}
