package console

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/up-web-vue/create-up-web-vue/pkg/logger"
	"github.com/up-web-vue/create-up-web-vue/pkg/tty"
)

var promptLog = logger.New("console:prompt")

// ErrPromptAborted is returned when the user aborts a prompt or its context ends.
var ErrPromptAborted = errors.New("prompt aborted")

var accessibleOverride bool

// SetAccessibleMode forces huh's accessible mode regardless of the environment.
func SetAccessibleMode(enabled bool) {
	accessibleOverride = enabled
}

// IsAccessibleMode reports whether prompts should use plain line-based input.
func IsAccessibleMode() bool {
	return accessibleOverride ||
		os.Getenv("ACCESSIBLE") != "" ||
		os.Getenv("TERM") == "dumb" ||
		os.Getenv("NO_COLOR") != ""
}

// PromptText asks for one line of text, prefilled with initial so that accepting
// the prompt unchanged returns initial. onChange, when set, observes the value
// whenever huh validates it, which is on submit and when the field loses focus.
func PromptText(ctx context.Context, title, initial string, onChange func(string)) (string, error) {
	promptLog.Printf("Prompting for text: %s", title)

	if !tty.IsStdinTerminal() {
		return "", errors.New("cannot prompt for input: stdin is not a TTY")
	}

	input, value := newTextInput(title, initial, onChange)
	if err := runForm(ctx, huh.NewGroup(input)); err != nil {
		return "", err
	}
	return *value, nil
}

// newTextInput builds the input field and the value it edits, seeded with initial.
func newTextInput(title, initial string, onChange func(string)) (*huh.Input, *string) {
	value := initial
	input := huh.NewInput().
		Title(title).
		Value(&value).
		Validate(func(s string) error {
			if onChange != nil {
				onChange(s)
			}
			return nil
		})
	return input, &value
}

// PromptConfirm asks a yes/no question, preselecting defaultValue.
func PromptConfirm(ctx context.Context, title string, defaultValue bool) (bool, error) {
	promptLog.Printf("Prompting for confirmation: %s", title)

	if !tty.IsStdinTerminal() {
		return false, errors.New("cannot prompt for confirmation: stdin is not a TTY")
	}

	confirmed := defaultValue
	confirm := huh.NewConfirm().
		Title(title).
		Affirmative("Yes").
		Negative("No").
		Value(&confirmed)

	if err := runForm(ctx, huh.NewGroup(confirm)); err != nil {
		return false, err
	}
	return confirmed, nil
}

func runForm(ctx context.Context, group *huh.Group) error {
	form := huh.NewForm(group).
		WithAccessible(IsAccessibleMode()).
		WithProgramOptions(tea.WithOutput(os.Stderr))

	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) || ctx.Err() != nil {
			promptLog.Printf("Prompt aborted: %v", err)
			return fmt.Errorf("%w: %w", ErrPromptAborted, err)
		}
		return fmt.Errorf("prompt failed: %w", err)
	}
	return nil
}
