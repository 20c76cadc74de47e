package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/up-web-vue/create-up-web-vue/pkg/console"
	"github.com/up-web-vue/create-up-web-vue/pkg/wizard"
)

// consolePrompter asks the wizard's questions through huh forms on the terminal.
type consolePrompter struct{}

func (consolePrompter) Text(ctx context.Context, req wizard.TextRequest) (string, error) {
	value, err := console.PromptText(ctx, req.Title, req.Initial, req.OnChange)
	return value, translatePromptError(err)
}

func (consolePrompter) Confirm(ctx context.Context, req wizard.ConfirmRequest) (bool, error) {
	confirmed, err := console.PromptConfirm(ctx, req.Title, req.Default)
	return confirmed, translatePromptError(err)
}

// translatePromptError marks aborted prompts as interruptions of the sequence.
func translatePromptError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, console.ErrPromptAborted) {
		return fmt.Errorf("%w: %w", wizard.ErrInterrupted, err)
	}
	return err
}
